package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	var nilmap *PropertyMap
	_, ok := nilmap.Get("color")
	assert.False(t, ok)
	assert.Equal(t, 0, nilmap.Size())
	//
	pmap := NewPropertyMap()
	pmap.Set("color", "blue")
	pmap.Set("margin", "8px")
	pmap.Set("color", "red")
	p, ok := pmap.Get("color")
	assert.True(t, ok)
	assert.Equal(t, Property("red"), p)
	assert.Equal(t, Property("block"), pmap.GetOr("display", "block"))
	assert.Equal(t, []string{"color", "margin"}, pmap.Keys())
	assert.Equal(t, "{color:red; margin:8px;}", pmap.String())
}

func TestPropertyDistance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	d, err := Property("2em").Distance(10)
	require.NoError(t, err)
	assert.Equal(t, dimen.Px(20), d)
	e, err := Property("1em 0").Edges(16)
	require.NoError(t, err)
	assert.Equal(t, dimen.Px(16), e[dimen.Top])
	assert.Equal(t, dimen.Zero, e[dimen.Left])
}

func TestTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	tables := DefaultTables()
	assert.Equal(t, 16.0, tables.RootFontSize())
	decl, ok := tables.Defaults("body")
	assert.True(t, ok)
	assert.Contains(t, decl, "margin:8px")
	_, ok = tables.Defaults("blink")
	assert.False(t, ok)
	assert.True(t, tables.IsInherited("color"))
	assert.True(t, tables.IsInherited("font-size"))
	assert.False(t, tables.IsInherited("margin"))
	assert.False(t, tables.IsInherited("background-color"))
	assert.Len(t, tables.InheritedProperties(), 37)
	//
	hex, ok := tables.NamedColor("CornflowerBlue")
	assert.True(t, ok)
	assert.Equal(t, "#6495ed", hex)
	_, ok = tables.NamedColor("cornflower")
	assert.False(t, ok)
	//
	assert.Equal(t, 20.0, tables.WithRootFontSize(20).RootFontSize())
	assert.Equal(t, 16.0, tables.RootFontSize())
}

func TestCustomTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	tables := NewTables(map[string]string{"P": "color:red;"}, []string{"x-ink"},
		map[string]string{"ink": "#102030"}, 0)
	assert.Equal(t, DefaultRootFontSize, tables.RootFontSize())
	decl, ok := tables.Defaults("p")
	assert.True(t, ok)
	assert.Equal(t, "color:red;", decl)
	assert.True(t, tables.IsInherited("x-ink"))
	assert.False(t, tables.IsInherited("color"))
	assert.Equal(t, color.NRGBA{0x10, 0x20, 0x30, 0xff}, tables.Color("ink"))
	assert.Equal(t, Black, tables.Color("blue"))
}

func TestColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	tables := DefaultTables()
	inputs := []struct {
		p Property
		c color.NRGBA
	}{
		{"blue", color.NRGBA{0, 0, 0xff, 0xff}},
		{"Yellow", color.NRGBA{0xff, 0xff, 0, 0xff}},
		{"#ff8000", color.NRGBA{0xff, 0x80, 0, 0xff}},
		{"#f80", color.NRGBA{0xff, 0x88, 0, 0xff}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 0xff}},
		{"rgb(300,0,-4)", color.NRGBA{0xff, 0, 0, 0xff}},
		{"rgba(0,0,255,0.5)", color.NRGBA{0, 0, 0xff, 0x80}},
		{"transparent", Transparent},
		{"no-such-color", Black},
		{"#12345", Black},
		{"rgb(1,2)", Black},
		{"", Black},
	}
	for i, input := range inputs {
		assert.Equal(t, input.c, tables.Color(input.p), "(%d) %q", i, input.p)
	}
	assert.Equal(t, color.NRGBA{0x80, 0x80, 0x80, 0xff}, Property("grey").Color())
}
