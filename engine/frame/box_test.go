package frame

import (
	"image/color"
	"testing"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/text"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBoxNullbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	box := NewBox("div")
	assert.Equal(t, dimen.Zero, box.Padding[Top])
	assert.Equal(t, dimen.Zero, box.Margins[Left])
	assert.Equal(t, dimen.Zero, box.PaddingBoxW())
	assert.Nil(t, box.Content)
	t.Logf(box.DebugString())
}

func TestBoxDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	box := NewBox("p")
	box.W = dimen.Rel(0.5)
	box.Padding = [4]dimen.Distance{dimen.Px(1), dimen.Px(2), dimen.Px(3), dimen.Px(4)}
	box.H = dimen.Px(10)
	box.ContentH = dimen.Px(30)
	assert.Equal(t, dimen.Mixed(6, 0.5), box.PaddingBoxW())
	assert.Equal(t, dimen.Px(14), box.PaddingBoxH())
	assert.Equal(t, dimen.Px(34), box.FlowH(), "overflowing content takes up space")
	box.H = dimen.Px(50)
	assert.Equal(t, dimen.Px(54), box.FlowH())
	box.H = dimen.Rel(0.1)
	assert.Equal(t, dimen.Px(34), box.FlowH(), "incomparable heights fall back to content")
	box.FixedH = true
	assert.Equal(t, dimen.Mixed(4, 0.1), box.FlowH(), "unless the height is explicit")
}

func TestBoxHideAndWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	root := NewBox("body")
	div := NewBox("div")
	div.Content = &Fill{Color: color.NRGBA{R: 255, A: 255}}
	div.H = dimen.Px(20)
	div.Add(NewBox("p"))
	root.Add(div)
	root.Add(nil)
	root.Add(&Box{Source: "text", Content: &TextRun{Glyphs: []text.PlacedGlyph{
		{X: 0, Y: 10, CodePoint: 'o'}, {X: 8, Y: 10, CodePoint: 'k'},
	}}})
	var visited []string
	root.Walk(func(b *Box) { visited = append(visited, b.Source) })
	assert.Equal(t, []string{"body", "div", "p", "text"}, visited)
	assert.Equal(t, "ok", root.Children[1].Content.(*TextRun).Runes())
	//
	div.Hide()
	assert.True(t, div.Hidden)
	assert.Empty(t, div.Children)
	assert.Nil(t, div.Content)
	assert.Equal(t, dimen.Zero, div.H)
	assert.Equal(t, "div", div.Source)
}
