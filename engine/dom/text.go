package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cords"
)

// InnerText creates a text cord for the textual content of a node and all
// its descendants, similar to
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that styling is not respected).
//
// Every leaf of the resulting cord references the element enclosing its
// text fragment.
func InnerText(n *Node) (cords.Cord, error) {
	if n == nil {
		return cords.Cord{}, cords.ErrIllegalArguments
	}
	b := cords.NewBuilder()
	collectText(n, nil, b)
	return b.Cord(), nil
}

// StyleText collects the text content of all <style> elements of a tree,
// in document order. Style sheets of separate elements are separated by a
// newline.
func StyleText(root *Node) string {
	if root == nil {
		return ""
	}
	b := cords.NewBuilder()
	root.Walk(func(n *Node) error {
		if n.kind == ElementNode && n.tag == "style" {
			collectText(n, n, b)
			b.Append(&Leaf{element: n, content: "\n"})
			return ErrSkipChildren
		}
		return nil
	})
	cord := b.Cord()
	if cord.IsVoid() {
		return ""
	}
	text := cord.String()
	tracer().Debugf("style text has %d bytes", len(text))
	return text
}

func collectText(n *Node, enclosing *Node, b *cords.Builder) {
	switch n.kind {
	case ElementNode:
		enclosing = n
	case TextNode:
		if n.text != "" {
			b.Append(&Leaf{element: enclosing, content: n.text})
		}
		return
	}
	for _, ch := range n.children {
		collectText(ch, enclosing, b)
	}
}

// Leaf is the leaf type of cords created by InnerText and StyleText.
type Leaf struct {
	element *Node
	content string
}

// Element returns the element enclosing the text fragment.
func (l *Leaf) Element() *Node {
	return l.element
}

// Weight of a leaf is its string length in bytes.
func (l *Leaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l *Leaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l *Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &Leaf{element: l.element, content: l.content[:i]}
	right := &Leaf{element: l.element, content: l.content[i:]}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l *Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = &Leaf{}

func (l *Leaf) dbgString() string {
	e := "?"
	if l.element != nil {
		e = l.element.tag
	}
	return fmt.Sprintf("{<%s> %q}", e, strings.ReplaceAll(l.content, "\n", "_"))
}
