package style

import (
	"image/color"
	"strconv"
	"strings"
)

// Transparent is the color of unset backgrounds.
var Transparent = color.NRGBA{}

// Black is the fallback color for unresolvable values and the default text color.
var Black = color.NRGBA{A: 0xff}

// Color resolves a color value. Accepted notations are
//
//	blue                  (named color, case-insensitive)
//	#0000ff  #00f
//	rgb(0, 0, 255)
//	rgba(0, 0, 255, 0.5)
//	transparent
//
// Every other value resolves to opaque black.
func (t *Tables) Color(p Property) color.NRGBA {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if s == "transparent" {
		return Transparent
	}
	if hex, ok := t.NamedColor(s); ok {
		s = hex
	}
	if c, ok := parseColor(s); ok {
		return c
	}
	tracer().Debugf("cannot resolve color %q, using black", p)
	return Black
}

// Color resolves a property as a color, using the default tables.
func (p Property) Color() color.NRGBA {
	return defaultColorTables.Color(p)
}

var defaultColorTables = NewTables(nil, nil, namedColors, DefaultRootFontSize)

func parseColor(s string) (color.NRGBA, bool) {
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[4:len(s)-1], false)
	}
	return Black, false
}

func parseHex(h string) (color.NRGBA, bool) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Black, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Black, false
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, true
}

func parseRGB(args string, alpha bool) (color.NRGBA, bool) {
	parts := strings.Split(args, ",")
	if (alpha && len(parts) != 4) || (!alpha && len(parts) != 3) {
		return Black, false
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Black, false
		}
		rgb[i] = clamp8(float64(n))
	}
	c := color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	if alpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Black, false
		}
		c.A = clamp8(a * 255)
	}
	return c, true
}

func clamp8(x float64) uint8 {
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	}
	return uint8(x + 0.5)
}
