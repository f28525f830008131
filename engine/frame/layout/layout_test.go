package layout

import (
	"testing"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/cssom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/text/monospace"
	"github.com/npillmayer/quire/input/html"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// styledDOM parses markup and resolves its styles together with sheet.
func styledDOM(markup, sheet string) *dom.Node {
	doc := html.ParseString(markup)
	cssom.NewResolver(nil).Resolve(doc, css.Parse(sheet))
	return doc
}

// With a monospace cell ratio of 0.5, 16px text has 8px cells and is 16px high.
func testLayouter() *Layouter {
	return New(WithFontProvider(monospace.Provider(0.5)), WithViewport(200, 100))
}

// findBox returns the first box created for a DOM node with a given source.
func findBox(t *testing.T, root *frame.Box, source string) *frame.Box {
	var found *frame.Box
	root.Walk(func(b *frame.Box) {
		if found == nil && b.Source == source {
			found = b
		}
	})
	require.NotNil(t, found, "no box for %s", source)
	return found
}

func px(t *testing.T, d dimen.Distance, container float64) float64 {
	v, err := d.Resolve(container)
	require.NoError(t, err)
	return v
}

func TestMarginCollapsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<body><div style="height:20px; margin-bottom:10px"></div>`+
		`<section style="height:20px; margin-top:6px"></section></body>`, `body { margin: 0 }`)
	root := testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	first, second := findBox(t, root, "<div>"), findBox(t, root, "<section>")
	assert.Equal(t, 0.0, px(t, first.Y, 100))
	gap := px(t, second.Y, 100) - (px(t, first.Y, 100) + px(t, first.H, 100))
	assert.Equal(t, 10.0, gap, "10px and 6px margins collapse to 10px")
	body := findBox(t, root, "<body>")
	assert.Equal(t, 50.0, px(t, body.ContentH, 100))
	//
	doc = styledDOM(`<body><div style="height:20px; margin-bottom:6px"></div>`+
		`<section style="height:20px; margin-top:10px"></section></body>`, `body { margin: 0 }`)
	root = testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	assert.Equal(t, 30.0, px(t, findBox(t, root, "<section>").Y, 100))
}

func TestFirstChildMargin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<body><div style="margin: 12px 5px; height: 8px"></div></body>`, `body { margin: 0 }`)
	root := testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	div := findBox(t, root, "<div>")
	assert.Equal(t, 12.0, px(t, div.Y, 100))
	assert.Equal(t, 5.0, px(t, div.X, 200))
	assert.Equal(t, 190.0, px(t, div.W, 200))
	assert.Equal(t, 32.0, px(t, findBox(t, root, "<body>").ContentH, 100))
}

func TestDisplayNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<body><p id="a">one</p><div class="gone"><p>x</p><p>y</p><p>z</p></div>`+
		`<p id="b">two</p></body>`, `body { margin: 0 } p { margin: 0 } .gone { display: none; margin: 50px }`)
	root := testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	gone := findBox(t, root, "<div>")
	assert.True(t, gone.Hidden)
	assert.Empty(t, gone.Children)
	assert.Nil(t, gone.Content)
	body := findBox(t, root, "<body>")
	require.Len(t, body.Children, 3)
	assert.Equal(t, 16.0, px(t, body.Children[2].Y, 100), "hidden box takes no space")
	assert.Equal(t, 32.0, px(t, body.ContentH, 100))
}

func TestBodyQuirk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<body style="padding-left: 2px"><p>x</p></body>`, ``)
	root := testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	body := findBox(t, root, "<body>")
	for i := 0; i < 4; i++ {
		assert.Equal(t, dimen.Zero, body.Margins[i])
	}
	assert.Equal(t, dimen.Px(8), body.Padding[frame.Top])
	assert.Equal(t, dimen.Px(10), body.Padding[frame.Left])
	assert.Equal(t, 182.0, px(t, body.W, 200))
}

func TestExplicitSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<body><div style="width: 50%; height: 10px; padding: 4px">`+
		`<p>aaaa bbbb cccc</p></div></body>`, `body { margin: 0 } p { margin: 0 }`)
	root := testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	div := findBox(t, root, "<div>")
	assert.Equal(t, dimen.Rel(0.5), div.W)
	assert.Equal(t, dimen.Px(10), div.H)
	// 100px content width: "aaaa bbbb" fits, "cccc" wraps
	assert.Equal(t, 32.0, px(t, div.ContentH, 100))
	assert.Equal(t, dimen.Px(40), div.FlowH(), "overflowing content is not clipped")
	assert.Equal(t, 40.0, px(t, findBox(t, root, "<body>").ContentH, 100))
}

func TestExplicitHeightIsReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<body><div style="height: 80px"><section style="height: 50%">`+
		`<p style="height: 50%"></p></section></div></body>`, `* { margin: 0 }`)
	root := testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	div, section, p := findBox(t, root, "<div>"), findBox(t, root, "<section>"), findBox(t, root, "<p>")
	assert.True(t, div.FixedH)
	assert.True(t, section.FixedH)
	assert.Equal(t, dimen.Rel(0.5), section.H, "relative to the height of div")
	assert.Equal(t, dimen.Rel(0.5), p.H, "relative to the height of section")
	// section's content is rebased to div, div's content to pixels
	assert.Equal(t, 0.25, section.ContentH.Fraction())
	assert.Equal(t, dimen.Px(40), div.ContentH)
	assert.Equal(t, dimen.Px(80), div.FlowH())
	body := findBox(t, root, "<body>")
	assert.False(t, body.FixedH)
	assert.Equal(t, 80.0, px(t, body.H, 100))
}

func TestTextRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<body><h1>Big</h1><p style="color: red; text-transform: uppercase">hello</p>`+
		`<p class="c">hello world</p></body>`, `body { margin: 0 } .c { text-transform: capitalize }`)
	root := testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	var runs []*frame.TextRun
	var boxes []*frame.Box
	root.Walk(func(b *frame.Box) {
		if run, ok := b.Content.(*frame.TextRun); ok {
			runs = append(runs, run)
			boxes = append(boxes, b)
		}
	})
	require.Len(t, runs, 3)
	// h1 is 2em = 32px, cells are 16px wide
	assert.Equal(t, 16.0, runs[0].Glyphs[1].X)
	assert.Equal(t, dimen.Px(32), boxes[0].H)
	assert.Equal(t, style.Black, runs[0].Color)
	assert.Equal(t, "HELLO", runs[1].Runes())
	assert.Equal(t, uint8(255), runs[1].Color.R)
	assert.Equal(t, "HelloWorld", runs[2].Runes())
	assert.Equal(t, dimen.Rel(1), boxes[2].W, "text boxes span the available width")
}

func TestNowrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<body><p>aaaa bbbb cccc dddd eeee ffff</p></body>`, `body { margin: 0 } p { white-space: nowrap }`)
	root := testLayouter().Layout(doc, dimen.Rel(1), dimen.Rel(1))
	p := findBox(t, root, "<p>")
	assert.Equal(t, 16.0, px(t, p.ContentH, 100))
}

func TestDocumentBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	doc := styledDOM(`<p>x</p><p>y</p>`, `p { margin: 4px 0 }`)
	l := New(WithFontProvider(monospace.Provider(0)), WithViewport(0, 10))
	w, h := l.Viewport()
	assert.Equal(t, DefaultViewportW, w)
	assert.Equal(t, DefaultViewportH, h)
	root := l.Layout(doc, dimen.Px(300), dimen.Px(400))
	assert.Nil(t, root.Content)
	assert.Equal(t, "#document", root.Source)
	require.Len(t, root.Children, 2)
	assert.Equal(t, 24.0, px(t, root.Children[1].Y, 0), "4px margins collapse")
	assert.Equal(t, 300.0, px(t, root.Children[0].W, 300))
	assert.Nil(t, l.Layout(nil, dimen.Zero, dimen.Zero))
}
