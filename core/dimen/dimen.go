// Package dimen implements distances for box layout.
//
/*
BSD License

Copyright (c) 2017–22, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/quire/core"
)

// Shape tells how a distance relates to the size of its container.
type Shape int8

// A distance is either a fixed number of pixels, a fraction of a container
// size which is not yet known, the sum of both, or deferred ("auto").
const (
	ShapeAbsolute Shape = iota
	ShapeRelative
	ShapeCombo
	ShapeAuto
)

func (s Shape) String() string {
	switch s {
	case ShapeAbsolute:
		return "absolute"
	case ShapeRelative:
		return "relative"
	case ShapeCombo:
		return "combo"
	case ShapeAuto:
		return "auto"
	}
	return "?"
}

// ErrAutoDistance is returned when an auto distance is resolved to pixels.
// Callers have to special-case auto before resolving.
var ErrAutoDistance = errors.New("auto distance cannot be resolved to pixels")

// ErrIncomparable is returned when two distances have no defined order.
var ErrIncomparable = errors.New("distances are incomparable")

// Distance is a length which may depend on the size of a container.
// The zero value is Absolute(0).
type Distance struct {
	shape Shape
	px    float64 // absolute component
	frac  float64 // fraction of the container size
}

// Zero is an absolute distance of 0 pixels.
var Zero = Distance{}

// Auto is a distance deferring to content or container.
var Auto = Distance{shape: ShapeAuto}

// Px creates an absolute distance.
func Px(px float64) Distance {
	return Distance{shape: ShapeAbsolute, px: px}
}

// Rel creates a distance relative to a container size. A fraction of 0.5
// denotes 50%.
func Rel(fraction float64) Distance {
	return Distance{shape: ShapeRelative, frac: fraction}
}

// Mixed creates the sum of an absolute and a relative distance.
func Mixed(px, fraction float64) Distance {
	return Distance{shape: ShapeCombo, px: px, frac: fraction}
}

// Shape returns the shape of d.
func (d Distance) Shape() Shape {
	return d.shape
}

// IsAuto is true for the auto distance.
func (d Distance) IsAuto() bool {
	return d.shape == ShapeAuto
}

// IsAbsolute is true if d does not depend on a container size.
func (d Distance) IsAbsolute() bool {
	return d.shape == ShapeAbsolute
}

// Pixels returns the absolute component of d.
func (d Distance) Pixels() float64 {
	return d.px
}

// Fraction returns the relative component of d.
func (d Distance) Fraction() float64 {
	return d.frac
}

func (d Distance) String() string {
	switch d.shape {
	case ShapeAbsolute:
		return fmt.Sprintf("%gpx", d.px)
	case ShapeRelative:
		return fmt.Sprintf("%g%%", d.frac*100)
	case ShapeCombo:
		return fmt.Sprintf("%gpx%+g%%", d.px, d.frac*100)
	}
	return "auto"
}

// --- Arithmetic ------------------------------------------------------------

func promote(a, b Shape) Shape {
	if a == b {
		return a
	}
	return ShapeCombo
}

// Add returns d+o, component-wise. Mixing absolute and relative distances
// promotes the result to a combo. Auto absorbs every other distance.
func (d Distance) Add(o Distance) Distance {
	if d.IsAuto() || o.IsAuto() {
		return Auto
	}
	return Distance{shape: promote(d.shape, o.shape), px: d.px + o.px, frac: d.frac + o.frac}
}

// Sub returns d−o, component-wise, with the same promotion rules as Add.
func (d Distance) Sub(o Distance) Distance {
	if d.IsAuto() || o.IsAuto() {
		return Auto
	}
	return Distance{shape: promote(d.shape, o.shape), px: d.px - o.px, frac: d.frac - o.frac}
}

// Scale multiplies both components of d by f.
func (d Distance) Scale(f float64) Distance {
	if d.IsAuto() {
		return Auto
	}
	return Distance{shape: d.shape, px: d.px * f, frac: d.frac * f}
}

// Sum adds up a list of distances.
func Sum(ds ...Distance) Distance {
	s := Zero
	for _, d := range ds {
		s = s.Add(d)
	}
	return s
}

// Rebase re-expresses d, whose relative component refers to a container of
// size frame, in terms of the container frame itself refers to. Relative
// components compound: Rel(0.5).Rebase(Rel(0.5)) is Rel(0.25).
// Absolute distances are returned unchanged; an auto frame yields Auto.
func (d Distance) Rebase(frame Distance) Distance {
	switch {
	case d.IsAuto() || d.IsAbsolute():
		return d
	case frame.IsAuto():
		return Auto
	case d.shape == ShapeRelative:
		return frame.Scale(d.frac)
	}
	return Px(d.px).Add(frame.Scale(d.frac))
}

// Resolve reduces d to pixels, given the pixel size of its container.
func (d Distance) Resolve(container float64) (float64, error) {
	switch d.shape {
	case ShapeAbsolute:
		return d.px, nil
	case ShapeRelative:
		return d.frac * container, nil
	case ShapeCombo:
		return d.px + d.frac*container, nil
	}
	return 0, ErrAutoDistance
}

// ResolveOr reduces d to pixels, substituting dflt for auto.
func (d Distance) ResolveOr(container, dflt float64) float64 {
	px, err := d.Resolve(container)
	if err != nil {
		return dflt
	}
	return px
}

// --- Ordering --------------------------------------------------------------

func sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Sign returns the direction of d, which is independent of the (non-negative)
// container size. Combos have a direction only if both components agree.
func (d Distance) Sign() (int, error) {
	switch d.shape {
	case ShapeAbsolute:
		return sign(d.px), nil
	case ShapeRelative:
		return sign(d.frac), nil
	case ShapeCombo:
		sp, sf := sign(d.px), sign(d.frac)
		if sp == 0 || sp == sf {
			return sf, nil
		}
		if sf == 0 {
			return sp, nil
		}
		return 0, ErrIncomparable
	}
	return 0, ErrAutoDistance
}

// Compare orders d and o. It is defined for distances of the same shape only,
// and for combos only if both components of the difference agree on
// direction. Otherwise ErrIncomparable is returned and the result must not be
// used.
func (d Distance) Compare(o Distance) (int, error) {
	if d.shape != o.shape || d.IsAuto() {
		return 0, ErrIncomparable
	}
	return d.Sub(o).Sign()
}

// Max returns the greater of two comparable distances.
func Max(a, b Distance) (Distance, error) {
	c, err := a.Compare(b)
	if err != nil {
		return a, err
	}
	if c < 0 {
		return b, nil
	}
	return a, nil
}

// ClampZero returns max(0, d). If d has no direction, d is returned together
// with ErrIncomparable.
func (d Distance) ClampZero() (Distance, error) {
	s, err := d.Sign()
	if err != nil {
		return d, err
	}
	if s < 0 {
		return Zero, nil
	}
	return d, nil
}

// --- Parsing ---------------------------------------------------------------

var distancePattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))\s*(px|%|em)$`)

// Parse reads a distance from a CSS-like value.
//
//	"12px"      → Absolute(12)
//	"50%"       → Relative(0.5)
//	"2em"       → Absolute(2 × rootFontSize)
//	"auto"      → Auto
//	"0"         → Absolute(0)
//	"10px+50%"  → Combo(10, 0.5)
//
// Every other unit is rejected.
func Parse(s string, rootFontSize float64) (Distance, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "+") {
		sum := Zero
		for _, part := range strings.Split(s, "+") {
			d, err := Parse(part, rootFontSize)
			if err != nil {
				return Zero, err
			}
			sum = sum.Add(d)
		}
		return sum, nil
	}
	switch s {
	case "auto":
		return Auto, nil
	case "0":
		return Zero, nil
	}
	m := distancePattern.FindStringSubmatch(s)
	if m == nil {
		return Zero, core.WrapError(errUnit, core.EINVALID, "cannot parse distance %q", s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsInf(n, 0) {
		return Zero, core.WrapError(err, core.EINVALID, "cannot parse distance %q", s)
	}
	switch m[2] {
	case "px":
		return Px(n), nil
	case "%":
		return Rel(n / 100), nil
	}
	return Px(n * rootFontSize), nil // em
}

var errUnit = errors.New("unit not supported")

// Edge indices for 4-way values. They start at the top and travel clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// ParseEdges reads a shorthand of 1 to 4 space-separated distances, following
// CSS edge ordering:
//
//	1 value:  all four edges
//	2 values: vertical, horizontal
//	3 values: top, horizontal, bottom
//	4 values: top, right, bottom, left
func ParseEdges(s string, rootFontSize float64) ([4]Distance, error) {
	var edges [4]Distance
	tokens := edgeTokens(s)
	ds := make([]Distance, len(tokens))
	for i, t := range tokens {
		d, err := Parse(t, rootFontSize)
		if err != nil {
			return edges, err
		}
		ds[i] = d
	}
	switch len(ds) {
	case 1:
		edges = [4]Distance{ds[0], ds[0], ds[0], ds[0]}
	case 2:
		edges = [4]Distance{ds[0], ds[1], ds[0], ds[1]}
	case 3:
		edges = [4]Distance{ds[0], ds[1], ds[2], ds[1]}
	case 4:
		edges = [4]Distance{ds[0], ds[1], ds[2], ds[3]}
	default:
		return edges, core.Error(core.EINVALID, "expected 1 to 4 distances, have %q", s)
	}
	return edges, nil
}

// edgeTokens splits at whitespace but keeps sums like "10px + 5%" together.
func edgeTokens(s string) []string {
	var tokens []string
	join := false
	for _, f := range strings.Fields(s) {
		if len(tokens) > 0 && (join || strings.HasPrefix(f, "+")) {
			tokens[len(tokens)-1] += f
		} else {
			tokens = append(tokens, f)
		}
		join = strings.HasSuffix(f, "+")
	}
	return tokens
}
