package layout

import (
	"math"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/core/font"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/text"
)

// Default viewport size in pixels.
const (
	DefaultViewportW = 800.0
	DefaultViewportH = 600.0
)

// Layouter creates box trees from styled DOM trees. A Layouter does not
// hold any state between calls of Layout.
type Layouter struct {
	tables *style.Tables
	fonts  text.FontProvider
	viewW  float64
	viewH  float64
}

// Option configures a Layouter.
type Option func(*Layouter)

// WithTables sets the style tables for colors and the root font size.
func WithTables(tables *style.Tables) Option {
	return func(l *Layouter) {
		if tables != nil {
			l.tables = tables
		}
	}
}

// WithFontProvider sets the source of font metrics for text flow.
func WithFontProvider(fonts text.FontProvider) Option {
	return func(l *Layouter) {
		if fonts != nil {
			l.fonts = fonts
		}
	}
}

// WithViewport sets the size of the viewport in pixels.
func WithViewport(w, h float64) Option {
	return func(l *Layouter) {
		if w > 0 && h > 0 {
			l.viewW, l.viewH = w, h
		}
	}
}

// New creates a Layouter. Without options, it uses the default style tables,
// the global font registry and a viewport of DefaultViewportW × DefaultViewportH.
func New(opts ...Option) *Layouter {
	l := &Layouter{
		tables: style.DefaultTables(),
		viewW:  DefaultViewportW,
		viewH:  DefaultViewportH,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fonts == nil {
		l.fonts = font.GlobalRegistry()
	}
	return l
}

// Viewport returns the size of the viewport in pixels.
func (l *Layouter) Viewport() (float64, float64) {
	return l.viewW, l.viewH
}

// Layout creates a box for node and, recursively, for its children.
// Relative components of availW refer to the width of the viewport.
// availH is the vertical space left for node. Vertical distances are
// relative to the height of the nearest ancestor with an explicit height,
// or to the height of the viewport.
func (l *Layouter) Layout(node *dom.Node, availW, availH dimen.Distance) *frame.Box {
	if node == nil {
		return nil
	}
	tracer().Debugf("layout of %v in %v × %v", node, availW, availH)
	return l.layout(node, availW, availH, l.viewW)
}

// layout dispatches on the kind of n. Relative components of availW refer
// to a container of pixel width cw.
func (l *Layouter) layout(n *dom.Node, availW, availH dimen.Distance, cw float64) *frame.Box {
	switch n.Kind() {
	case dom.TextNode:
		return l.layoutText(n, availW, cw)
	case dom.ElementNode:
		return l.layoutElement(n, availW, availH, cw)
	case dom.DocumentNode:
		box := frame.NewBox(n.String())
		box.W = availW
		l.flow(box, n, availH, availW.ResolveOr(cw, cw))
		box.H = box.ContentH
		return box
	}
	panic("unknown node kind")
}

func (l *Layouter) layoutElement(n *dom.Node, availW, availH dimen.Distance, cw float64) *frame.Box {
	box := frame.NewBox(n.String())
	if n.Style("display") == "none" {
		box.Hide()
		return box
	}
	root := l.tables.RootFontSize()
	margins, padding := edges(n, "margin", root), edges(n, "padding", root)
	if n.Tag() == "body" {
		// Quirk: body margins act as padding.
		for i := range padding {
			padding[i] = padding[i].Add(margins[i])
			margins[i] = dimen.Zero
		}
	}
	box.Margins, box.Padding = margins, padding
	box.W = distance(n, "width", root)
	if box.W.IsAuto() {
		box.W = availW.Sub(dimen.Sum(margins[frame.Left], margins[frame.Right],
			padding[frame.Left], padding[frame.Right]))
	}
	contentW := math.Max(0, box.W.ResolveOr(cw, 0))
	box.H = distance(n, "height", root)
	box.FixedH = !box.H.IsAuto()
	childH := availH.Sub(dimen.Sum(margins[frame.Top], margins[frame.Bottom],
		padding[frame.Top], padding[frame.Bottom]))
	if box.FixedH {
		// vertical distances of children refer to H from here on
		childH = dimen.Rel(1)
	}
	l.flow(box, n, childH, contentW)
	if box.FixedH {
		box.ContentH = box.ContentH.Rebase(box.H)
	} else {
		box.H = box.ContentH
	}
	bg := style.Transparent
	if p := n.Style("background-color"); !p.IsEmpty() {
		bg = l.tables.Color(p)
	}
	box.Content = &frame.Fill{Color: bg}
	return box
}

// flow lays out the children of n and stacks them vertically within box,
// collapsing adjacent vertical margins. cw is the content width of box in
// pixels.
func (l *Layouter) flow(box *frame.Box, n *dom.Node, availH dimen.Distance, cw float64) {
	offset, prevBottom := dimen.Zero, dimen.Zero
	for _, ch := range n.Children() {
		child := l.layout(ch, dimen.Rel(1), availH, cw)
		box.Add(child)
		if child.Hidden {
			continue
		}
		top := child.Margins[frame.Top]
		eff, err := top.Sub(prevBottom).ClampZero()
		if err != nil {
			tracer().Debugf("cannot collapse margins %v and %v of %s", prevBottom, top, child.Source)
			eff = top
		}
		child.X = child.Margins[frame.Left]
		child.Y = offset.Add(eff)
		offset = dimen.Sum(child.Y, child.FlowH(), child.Margins[frame.Bottom])
		prevBottom = child.Margins[frame.Bottom]
	}
	box.ContentH = offset
}

func (l *Layouter) layoutText(n *dom.Node, availW dimen.Distance, cw float64) *frame.Box {
	box := frame.NewBox(n.String())
	desc := l.descriptor(n)
	face := l.face(desc)
	budget := math.Max(0, availW.ResolveOr(cw, cw))
	if n.Style("white-space") == "nowrap" {
		budget = math.Inf(1)
	}
	seq := text.Flow(transform(n.Text(), n.Style("text-transform")), budget, face)
	box.W = availW
	box.H = dimen.Px(seq.H)
	box.ContentH = box.H
	box.Content = &frame.TextRun{
		Glyphs: seq.Glyphs,
		Color:  l.tables.Color(n.Style("color")),
	}
	return box
}
