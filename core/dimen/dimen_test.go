package dimen

import (
	"errors"
	"testing"

	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dimen")
	defer teardown()
	//
	inputs := []struct {
		s string
		d Distance
	}{
		{"12px", Px(12)},
		{"0", Zero},
		{"50%", Rel(0.5)},
		{"2em", Px(32)},
		{"auto", Auto},
		{" -4px ", Px(-4)},
		{"1.5em", Px(24)},
		{"10px+50%", Mixed(10, 0.5)},
		{"10px + 2px", Px(12)},
	}
	for i, input := range inputs {
		d, err := Parse(input.s, 16)
		require.NoError(t, err, "(%d) %q", i, input.s)
		assert.Equal(t, input.d, d, "(%d) %q", i, input.s)
	}
}

func TestParseDistanceFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dimen")
	defer teardown()
	//
	for _, s := range []string{"12pt", "12", "px", "", "1rem", "abc%", "+5px"} {
		_, err := Parse(s, 16)
		assert.Error(t, err, "%q", s)
		assert.Equal(t, core.EINVALID, core.Code(err), "%q", s)
	}
}

func TestDistanceArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dimen")
	defer teardown()
	//
	d := Px(10).Add(Rel(0.5))
	assert.Equal(t, ShapeCombo, d.Shape())
	px, err := d.Resolve(200)
	require.NoError(t, err)
	assert.Equal(t, 110.0, px)
	//
	assert.Equal(t, Px(7), Px(10).Sub(Px(3)))
	assert.Equal(t, Rel(0.25), Rel(0.5).Sub(Rel(0.25)))
	assert.Equal(t, Mixed(-3, 1), Rel(1).Sub(Px(3)))
	assert.Equal(t, Mixed(5, 0.5), Mixed(10, 0.5).Sub(Px(5)))
	assert.True(t, Px(3).Add(Auto).IsAuto())
	assert.Equal(t, Px(6), Sum(Px(1), Px(2), Px(3)))
}

func TestRebase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dimen")
	defer teardown()
	//
	assert.Equal(t, Px(7), Px(7).Rebase(Rel(0.5)))
	assert.Equal(t, Px(50), Rel(0.25).Rebase(Px(200)))
	assert.Equal(t, Rel(0.25), Rel(0.5).Rebase(Rel(0.5)))
	assert.Equal(t, Mixed(10, 0.25), Mixed(10, 0.5).Rebase(Rel(0.5)))
	assert.Equal(t, Px(60), Mixed(10, 0.25).Rebase(Px(200)))
	assert.True(t, Rel(0.5).Rebase(Auto).IsAuto())
	assert.True(t, Auto.Rebase(Px(10)).IsAuto())
	// resolving a rebased distance equals resolving in two steps
	d, frame := Mixed(4, 0.5), Mixed(20, 0.1)
	inner := d.ResolveOr(frame.ResolveOr(600, 0), 0)
	assert.InDelta(t, inner, d.Rebase(frame).ResolveOr(600, 0), 1e-9)
}

func TestResolveAuto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dimen")
	defer teardown()
	//
	_, err := Auto.Resolve(100)
	assert.True(t, errors.Is(err, ErrAutoDistance))
	assert.Equal(t, 42.0, Auto.ResolveOr(100, 42))
	px, err := Rel(0.1).Resolve(300)
	assert.NoError(t, err)
	assert.InDelta(t, 30.0, px, 1e-9)
}

func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dimen")
	defer teardown()
	//
	c, err := Px(10).Compare(Px(6))
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	c, err = Rel(0.2).Compare(Rel(0.3))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
	c, err = Mixed(10, 0.5).Compare(Mixed(5, 0.25))
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	//
	_, err = Mixed(10, 0.1).Compare(Mixed(5, 0.25))
	assert.True(t, errors.Is(err, ErrIncomparable))
	_, err = Px(10).Compare(Rel(0.1))
	assert.True(t, errors.Is(err, ErrIncomparable))
	_, err = Auto.Compare(Auto)
	assert.True(t, errors.Is(err, ErrIncomparable))
	//
	m, err := Max(Px(10), Px(6))
	require.NoError(t, err)
	assert.Equal(t, Px(10), m)
}

func TestClampZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dimen")
	defer teardown()
	//
	d, err := Px(6).Sub(Px(10)).ClampZero()
	require.NoError(t, err)
	assert.Equal(t, Zero, d)
	d, err = Px(16).Sub(Px(10)).ClampZero()
	require.NoError(t, err)
	assert.Equal(t, Px(6), d)
	_, err = Px(6).Sub(Rel(0.1)).ClampZero()
	assert.True(t, errors.Is(err, ErrIncomparable))
}

func TestParseEdges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dimen")
	defer teardown()
	//
	e, err := ParseEdges("8px", 16)
	require.NoError(t, err)
	assert.Equal(t, [4]Distance{Px(8), Px(8), Px(8), Px(8)}, e)
	e, err = ParseEdges("1px 2px", 16)
	require.NoError(t, err)
	assert.Equal(t, [4]Distance{Px(1), Px(2), Px(1), Px(2)}, e)
	e, err = ParseEdges("1px 2px 3px", 16)
	require.NoError(t, err)
	assert.Equal(t, [4]Distance{Px(1), Px(2), Px(3), Px(2)}, e)
	e, err = ParseEdges("1px 2px 3px 10%", 16)
	require.NoError(t, err)
	assert.Equal(t, Px(1), e[Top])
	assert.Equal(t, Px(2), e[Right])
	assert.Equal(t, Px(3), e[Bottom])
	assert.Equal(t, Rel(0.1), e[Left])
	e, err = ParseEdges("1px + 5% 0", 16)
	require.NoError(t, err)
	assert.Equal(t, Mixed(1, 0.05), e[Top])
	assert.Equal(t, Zero, e[Right])
	//
	_, err = ParseEdges("1px 2px 3px 4px 5px", 16)
	assert.Error(t, err)
	_, err = ParseEdges("", 16)
	assert.Error(t, err)
}
