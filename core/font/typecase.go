package font

import (
	"sync"

	"github.com/npillmayer/quire/engine/text"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TypeCase is a scalable font at a certain size. It implements text.Face.
//
// Faces of x/image are not safe for concurrent use, therefore every access
// is serialized.
type TypeCase struct {
	sync.Mutex
	parent *ScalableFont
	face   xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size   float64
}

// ScalableFontParent returns the font tc has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.parent
}

// Size returns the font size of tc in pixels.
func (tc *TypeCase) Size() float64 {
	return tc.size
}

// Advance is part of interface text.Face. Runes missing from the font
// advance by the width of the font's replacement glyph.
func (tc *TypeCase) Advance(r rune) float64 {
	tc.Lock()
	defer tc.Unlock()
	adv, ok := tc.face.GlyphAdvance(r)
	if !ok {
		tracer().Debugf("font %s has no glyph for %q", tc.parent.Fontname, r)
	}
	return fromFixed(adv)
}

// Kern is part of interface text.Face.
func (tc *TypeCase) Kern(r0, r1 rune) float64 {
	tc.Lock()
	defer tc.Unlock()
	return fromFixed(tc.face.Kern(r0, r1))
}

// Metrics is part of interface text.Face.
func (tc *TypeCase) Metrics() text.Metrics {
	tc.Lock()
	defer tc.Unlock()
	m := tc.face.Metrics()
	metrics := text.Metrics{
		Size:    tc.size,
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
	}
	if gap := fromFixed(m.Height) - metrics.Ascent - metrics.Descent; gap > 0 {
		metrics.LineGap = gap
	}
	return metrics
}

var _ text.Face = &TypeCase{}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
