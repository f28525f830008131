package text

import (
	"fmt"
	"strings"
)

// PlacedGlyph is a glyph positioned relative to the top left corner of a
// text block. Y is the baseline of the glyph's line.
type PlacedGlyph struct {
	X, Y      float64
	CodePoint rune
}

func (g PlacedGlyph) String() string {
	return fmt.Sprintf("[%q @ (%.2f,%.2f)]", g.CodePoint, g.X, g.Y)
}

// GlyphSequence is the result of flowing text.
type GlyphSequence struct {
	Glyphs     []PlacedGlyph
	W, H       float64 // width of the widest line and height of all lines
	Lines      int     // number of lines holding glyphs
	LineHeight float64
}

// LineHeight returns the distance between two baselines for a face.
// If the face does not report vertical metrics, 1.2 × font size is used,
// or twice the advance of a space if the size is unknown as well.
func LineHeight(face Face) float64 {
	m := face.Metrics()
	if lh := m.Ascent + m.Descent + m.LineGap; lh > 0 {
		return lh
	}
	if m.Size > 0 {
		return 1.2 * m.Size
	}
	return 2 * face.Advance(' ')
}

// ascent returns the distance from the top of a line to its baseline.
func ascent(face Face, lineHeight float64) float64 {
	if a := face.Metrics().Ascent; a > 0 {
		return a
	}
	return 0.8 * lineHeight
}

// Measure returns the width of a word, including kerning between its glyphs.
func Measure(word string, face Face) float64 {
	w, prev := 0.0, rune(-1)
	for _, r := range word {
		if prev >= 0 {
			w += face.Kern(prev, r)
		}
		w += face.Advance(r)
		prev = r
	}
	return w
}

// Flow breaks text into words at white space and places the words on lines
// of width budget. A word which does not fit on the rest of a line starts a
// new line, unless the line is empty: words wider than budget are placed
// on a line of their own and overflow. A space is placed after every word
// if it fits on the line; otherwise the line is wrapped. Placed spaces
// advance the position of the next glyph but do not appear in Glyphs,
// as they have nothing to paint.
//
// The height of the resulting sequence is the number of lines holding
// glyphs × LineHeight(face).
func Flow(text string, budget float64, face Face) GlyphSequence {
	lh := LineHeight(face)
	seq := GlyphSequence{LineHeight: lh}
	base := ascent(face, lh)
	space := face.Advance(' ')
	x, line := 0.0, 0
	for _, word := range strings.Fields(text) {
		w := Measure(word, face)
		if x > 0 && x+w > budget {
			x, line = 0, line+1
		}
		y := float64(line)*lh + base
		prev := rune(-1)
		for _, r := range word {
			if prev >= 0 {
				x += face.Kern(prev, r)
			}
			seq.Glyphs = append(seq.Glyphs, PlacedGlyph{X: x, Y: y, CodePoint: r})
			x += face.Advance(r)
			prev = r
		}
		seq.Lines = line + 1
		if x > seq.W {
			seq.W = x
		}
		if x+space <= budget {
			x += space
		} else {
			x, line = 0, line+1
		}
	}
	seq.H = float64(seq.Lines) * lh
	tracer().Debugf("flowed %d glyphs into %d lines of width %.2f", len(seq.Glyphs), seq.Lines, budget)
	return seq
}
