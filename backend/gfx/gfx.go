package gfx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/frame"
)

// Kind tells a painter what to paint.
type Kind int8

// Kinds of primitives.
const (
	Rect Kind = iota
	Glyphs
)

func (k Kind) String() string {
	switch k {
	case Rect:
		return "rect"
	case Glyphs:
		return "glyphs"
	}
	return "?"
}

// Glyph is a code point placed at an absolute baseline position.
type Glyph struct {
	Pos       arithm.Pair
	CodePoint rune
}

// Primitive is a unit of painting. Rect primitives use Origin, W and H;
// Glyphs primitives use Glyphs. Both carry a color.
type Primitive struct {
	Kind   Kind
	Origin arithm.Pair // top left corner
	W, H   float64
	Color  color.NRGBA
	Glyphs []Glyph
}

func (p Primitive) String() string {
	c := fmt.Sprintf("#%02x%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B, p.Color.A)
	if p.Kind == Glyphs {
		return fmt.Sprintf("glyphs[%d] %s", len(p.Glyphs), c)
	}
	return fmt.Sprintf("rect (%.2f,%.2f) %.2f×%.2f %s", p.Origin.X(), p.Origin.Y(), p.W, p.H, c)
}

// Emit walks a box tree depth-first in pre-order and returns its paint
// primitives, back to front. Boxes with a background emit a Rect before
// their children; text boxes emit Glyphs. Hidden boxes and pure containers
// emit nothing. Fully transparent rectangles are emitted as well.
//
// Distances of the box tree are resolved here: horizontal ones against the
// content width of the parent box, starting with viewportW for the root,
// vertical ones against the content height of the nearest ancestor with an
// explicit height, starting with viewportH.
func Emit(root *frame.Box, viewportW, viewportH float64) []Primitive {
	e := &emitter{}
	if root != nil {
		e.emit(root, arithm.Origin, viewportW, viewportH)
	}
	tracer().Debugf("emitted %d primitives", len(e.prims))
	return e.prims
}

type emitter struct {
	prims []Primitive
}

// emit emits b, which is placed in a content box at origin with width cw.
// ch is the reference height for vertical distances of b.
func (e *emitter) emit(b *frame.Box, origin arithm.Pair, cw, ch float64) {
	if b.Hidden {
		return
	}
	h := func(d dimen.Distance) float64 { return d.ResolveOr(cw, 0) }
	v := func(d dimen.Distance) float64 { return d.ResolveOr(ch, 0) }
	x, y := origin.X()+h(b.X), origin.Y()+v(b.Y)
	w := h(b.W)
	switch c := b.Content.(type) {
	case *frame.Fill:
		e.prims = append(e.prims, Primitive{
			Kind:   Rect,
			Origin: arithm.P(x, y),
			W:      h(b.Padding[frame.Left]) + w + h(b.Padding[frame.Right]),
			H:      v(b.Padding[frame.Top]) + v(b.H) + v(b.Padding[frame.Bottom]),
			Color:  c.Color,
		})
	case *frame.TextRun:
		glyphs := make([]Glyph, len(c.Glyphs))
		for i, g := range c.Glyphs {
			glyphs[i] = Glyph{Pos: arithm.P(x+g.X, y+g.Y), CodePoint: g.CodePoint}
		}
		e.prims = append(e.prims, Primitive{
			Kind:   Glyphs,
			Origin: arithm.P(x, y),
			Color:  c.Color,
			Glyphs: glyphs,
		})
	}
	content := arithm.P(x+h(b.Padding[frame.Left]), y+v(b.Padding[frame.Top]))
	if b.FixedH {
		ch = math.Max(0, v(b.H))
	}
	for _, child := range b.Children {
		e.emit(child, content, w, ch)
	}
}
