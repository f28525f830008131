package monospace

import (
	"sync"

	"github.com/npillmayer/quire/engine/text"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupClasses sync.Once

type msface struct {
	cell    float64
	size    float64
	context *uax11.Context
}

// Face creates a monospace face with a given cell width and font size, both
// in pixels. Lines are as high as the font size; the baseline sits at 4/5
// of a line.
func Face(cell, size float64) text.Face {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	return &msface{
		cell:    cell,
		size:    size,
		context: uax11.LatinContext,
	}
}

// Advance is part of interface text.Face.
func (ms *msface) Advance(r rune) float64 {
	w := uax11.Width([]byte(string(r)), ms.context)
	return float64(w) * ms.cell
}

// Kern is part of interface text.Face. Monospace faces do not kern.
func (ms *msface) Kern(r0, r1 rune) float64 {
	return 0
}

// Metrics is part of interface text.Face.
func (ms *msface) Metrics() text.Metrics {
	return text.Metrics{
		Size:    ms.size,
		Ascent:  ms.size * 4 / 5,
		Descent: ms.size / 5,
	}
}

var _ text.Face = &msface{}

// --- Provider --------------------------------------------------------------

type provider struct {
	ratio float64
}

// Provider returns a font provider for monospace faces. Cells are
// ratio × font size wide, for every family, weight and style.
func Provider(ratio float64) text.FontProvider {
	if ratio <= 0 {
		ratio = 0.5
	}
	return provider{ratio: ratio}
}

func (p provider) Face(desc text.Descriptor) (text.Face, error) {
	tracer().Debugf("monospace face for %s", desc)
	return Face(p.ratio*desc.Size, desc.Size), nil
}
