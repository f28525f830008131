package text

import "fmt"

// Metrics are the vertical metrics of a font face, in pixels.
type Metrics struct {
	Size    float64 // nominal font size
	Ascent  float64 // distance from the top of a line to the baseline
	Descent float64 // distance from the baseline to the bottom of a line
	LineGap float64 // additional distance between lines
}

// Face measures glyphs of a font at a given size.
type Face interface {
	Advance(r rune) float64   // horizontal advance of a glyph, in pixels
	Kern(r0, r1 rune) float64 // kerning adjustment between two glyphs, in pixels
	Metrics() Metrics
}

// Weight is the boldness of a font.
type Weight int8

// Font weights we distinguish.
const (
	WeightNormal Weight = iota
	WeightBold
)

// Style is the slant of a font.
type Style int8

// Font styles we distinguish.
const (
	StyleNormal Style = iota
	StyleItalic
)

// Descriptor describes a font face to look for.
type Descriptor struct {
	Family string  // e.g., "serif", "monospace", "Helvetica"
	Size   float64 // in pixels
	Weight Weight
	Style  Style
}

func (d Descriptor) String() string {
	w, s := "", ""
	if d.Weight == WeightBold {
		w = " bold"
	}
	if d.Style == StyleItalic {
		s = " italic"
	}
	return fmt.Sprintf("%s%s%s %gpx", d.Family, w, s, d.Size)
}

// FontProvider finds font faces.
type FontProvider interface {
	Face(Descriptor) (Face, error)
}

// ParseWeight interprets a CSS font-weight value.
// "bold", "bolder" and numeric weights ≥ 600 are bold.
func ParseWeight(v string) Weight {
	switch v {
	case "bold", "bolder":
		return WeightBold
	case "600", "700", "800", "900":
		return WeightBold
	}
	return WeightNormal
}

// ParseStyle interprets a CSS font-style value.
func ParseStyle(v string) Style {
	switch v {
	case "italic", "oblique":
		return StyleItalic
	}
	return StyleNormal
}
