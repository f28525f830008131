package dom

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/quire/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlTree is a mirror of a document tree, made from golang.org/x/net/html
// nodes. It remembers the origin of each mirrored node.
type htmlTree struct {
	root   *html.Node
	origin map[*html.Node]*Node
}

func mirror(n *Node) htmlTree {
	t := htmlTree{origin: make(map[*html.Node]*Node)}
	t.root = t.mirrorNode(n)
	return t
}

func (t htmlTree) mirrorNode(n *Node) *html.Node {
	h := &html.Node{}
	switch n.kind {
	case DocumentNode:
		h.Type = html.DocumentNode
	case ElementNode:
		h.Type = html.ElementNode
		h.Data = n.tag
		h.DataAtom = atom.Lookup([]byte(n.tag))
		for _, k := range n.AttrKeys() {
			h.Attr = append(h.Attr, html.Attribute{Key: k, Val: n.attrs[k]})
		}
	case TextNode:
		h.Type = html.TextNode
		h.Data = n.text
	}
	t.origin[h] = n
	for _, ch := range n.children {
		h.AppendChild(t.mirrorNode(ch))
	}
	return h
}

// Render writes the tree rooted at n as HTML. Attributes are written in
// lexical order, void elements in self-closing notation.
func Render(w io.Writer, n *Node) error {
	if n == nil {
		return core.Error(core.EINVALID, "cannot render nil node")
	}
	t := mirror(n)
	if err := html.Render(w, t.root); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot render %s", n)
	}
	return nil
}

// RenderString is a convenience wrapper for Render.
func RenderString(n *Node) string {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		tracer().Errorf(err.Error())
	}
	return b.String()
}

// Query returns the elements below n (including n) matching a CSS selector,
// in document order. Selectors use the full syntax of
// github.com/andybalholm/cascadia, which is a superset of the selectors the
// cascade understands.
func Query(n *Node, selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile selector %q", selector)
	}
	t := mirror(n)
	matches := sel.MatchAll(t.root)
	result := make([]*Node, 0, len(matches))
	for _, h := range matches {
		result = append(result, t.origin[h])
	}
	return result, nil
}
