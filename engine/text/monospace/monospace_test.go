package monospace

import (
	"testing"

	"github.com/npillmayer/quire/engine/text"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.text")
	defer teardown()
	//
	face := Face(8, 16)
	assert.Equal(t, 8.0, face.Advance('a'))
	assert.Equal(t, 8.0, face.Advance(' '))
	assert.Equal(t, 16.0, face.Advance('世'))
	assert.Equal(t, 0.0, face.Kern('A', 'V'))
	m := face.Metrics()
	assert.InDelta(t, 16.0, m.Ascent+m.Descent, 1e-9)
	assert.Equal(t, 16.0, text.LineHeight(face))
}

func TestProvider(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.text")
	defer teardown()
	//
	face, err := Provider(0.5).Face(text.Descriptor{Family: "serif", Size: 20, Weight: text.WeightBold})
	require.NoError(t, err)
	assert.Equal(t, 10.0, face.Advance('x'))
	assert.Equal(t, 20.0, face.Metrics().Size)
	face, err = Provider(0).Face(text.Descriptor{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 5.0, face.Advance('x'))
}

func TestFlowMonospace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.text")
	defer teardown()
	//
	// cells of 10px: "hello" = 50, space = 10
	seq := text.Flow("hello hello hello", 120, Face(10, 20))
	assert.Equal(t, 2, seq.Lines)
	assert.Equal(t, 40.0, seq.H)
	assert.Equal(t, 60.0, seq.Glyphs[5].X)
	assert.Equal(t, 0.0, seq.Glyphs[10].X)
	assert.Equal(t, 36.0, seq.Glyphs[10].Y)
}
