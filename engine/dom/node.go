package dom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/quire/engine/dom/style"
)

// Kind is the type of a node.
type Kind int8

// Node kinds. Consumers are expected to switch over all of them.
const (
	DocumentNode Kind = iota
	ElementNode
	TextNode
)

func (k Kind) String() string {
	switch k {
	case DocumentNode:
		return "document"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	}
	return "?"
}

// Node is a node of a document tree.
type Node struct {
	kind     Kind
	tag      string            // element only
	attrs    map[string]string // element only
	text     string            // text only
	children []*Node
	parent   *Node
	styles   *style.PropertyMap
}

// NewDocument creates an empty document root.
func NewDocument() *Node {
	return &Node{kind: DocumentNode}
}

// NewElement creates an element. attrs may be nil.
func NewElement(tag string, attrs map[string]string) *Node {
	n := &Node{kind: ElementNode, tag: tag}
	for k, v := range attrs {
		n.SetAttr(k, v)
	}
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{kind: TextNode, text: text}
}

// Kind returns the kind of n.
func (n *Node) Kind() Kind {
	return n.kind
}

// Tag returns the tag name of an element, or "" for other kinds.
func (n *Node) Tag() string {
	return n.tag
}

// Text returns the content of a text node, or "" for other kinds.
func (n *Node) Text() string {
	return n.text
}

// Attr returns the value of an attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr sets an attribute of an element.
func (n *Node) SetAttr(key, value string) {
	if n.kind != ElementNode {
		tracer().Errorf("cannot set attribute %q on %s node", key, n.kind)
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// AttrKeys returns the attribute keys of n in lexical order.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parent returns the parent of n, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of n, in document order.
// Clients must not modify the returned slice.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at position i.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// ErrIllegalChild is returned when appending would violate the tree structure.
var ErrIllegalChild = errors.New("illegal child node")

// AppendChild adds ch as the last child of n. Text nodes cannot have
// children, documents cannot be children, and ch must not yet be attached
// to a parent.
func (n *Node) AppendChild(ch *Node) error {
	if ch == nil || n.kind == TextNode || ch.kind == DocumentNode || ch.parent != nil {
		return ErrIllegalChild
	}
	for a := n; a != nil; a = a.parent {
		if a == ch {
			return ErrIllegalChild
		}
	}
	ch.parent = n
	n.children = append(n.children, ch)
	return nil
}

// Styles returns the computed style map of n. It is never nil.
func (n *Node) Styles() *style.PropertyMap {
	if n.styles == nil {
		n.styles = style.NewPropertyMap()
	}
	return n.styles
}

// SetStyles replaces the computed style map of n.
func (n *Node) SetStyles(m *style.PropertyMap) {
	n.styles = m
}

// Style returns the computed value of a single property.
func (n *Node) Style(key string) style.Property {
	p, _ := n.styles.Get(key)
	return p
}

// ErrSkipChildren may be returned by a walker function to leave out the
// subtree of the current node.
var ErrSkipChildren = errors.New("skip children")

// Walk visits n and its descendants in pre-order. If f returns an error
// other than ErrSkipChildren, walking stops and the error is returned.
func (n *Node) Walk(f func(*Node) error) error {
	if err := f(n); err != nil {
		if err == ErrSkipChildren {
			return nil
		}
		return err
	}
	for _, ch := range n.children {
		if err := ch.Walk(f); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) String() string {
	switch n.kind {
	case DocumentNode:
		return "#document"
	case ElementNode:
		return fmt.Sprintf("<%s>", n.tag)
	case TextNode:
		if r := []rune(n.text); len(r) > 20 {
			return fmt.Sprintf("%q…", string(r[:20]))
		}
		return fmt.Sprintf("%q", n.text)
	}
	return "?"
}
