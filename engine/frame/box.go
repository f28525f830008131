package frame

/*
BSD License

Copyright (c) 2017–2022, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/text"
)

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top    = dimen.Top
	Right  = dimen.Right
	Bottom = dimen.Bottom
	Left   = dimen.Left
)

// Box type, following the CSS box model.
//
// (X,Y) is the offset of the padding box (i.e., the box without margins)
// from the origin of the parent's content box. X, W and horizontal insets
// are relative to the parent's content width.
//
// Y, H, ContentH and vertical insets are relative to the reference height
// of the parent: the content height of the nearest ancestor with an explicit
// height (FixedH), or the viewport height if there is none. A box with
// FixedH is the reference for its children; its ContentH has been rebased
// to the reference of its parent, so H and ContentH remain comparable.
type Box struct {
	X, Y     dimen.Distance
	W        dimen.Distance    // width of the content box
	H        dimen.Distance    // visual height of the content box: explicit height or ContentH
	ContentH dimen.Distance    // extent of the content, which may overflow H
	FixedH   bool              // H is explicit and is the reference height of the children
	Padding  [4]dimen.Distance // inside of background
	Margins  [4]dimen.Distance // outside of background
	Content  Content           // nil for pure containers
	Hidden   bool              // display = none
	Children []*Box
	Source   string // short description of the DOM node this box has been created for
}

// NewBox creates a box with all distances set to zero.
func NewBox(source string) *Box {
	return &Box{Source: source}
}

// Hide turns b into a zero-size, transparent and childless box.
func (b *Box) Hide() {
	*b = Box{Source: b.Source, Hidden: true}
}

// Add appends a child box.
func (b *Box) Add(child *Box) {
	if child == nil {
		tracer().Errorf("box %s cannot add a nil child", b.Source)
		return
	}
	b.Children = append(b.Children, child)
}

// PaddingBoxW returns the width of b including its padding.
func (b *Box) PaddingBoxW() dimen.Distance {
	return dimen.Sum(b.Padding[Left], b.W, b.Padding[Right])
}

// PaddingBoxH returns the visual height of b including its padding.
func (b *Box) PaddingBoxH() dimen.Distance {
	return dimen.Sum(b.Padding[Top], b.H, b.Padding[Bottom])
}

// FlowH is the vertical space b occupies in the flow of its siblings, not
// counting margins. Content overflowing an explicit height takes up space,
// too. If H and ContentH cannot be compared, an explicit H is used, and
// ContentH otherwise.
func (b *Box) FlowH() dimen.Distance {
	h, err := dimen.Max(b.ContentH, b.H)
	if err != nil {
		h = b.ContentH
		if b.FixedH {
			h = b.H
		}
	}
	return dimen.Sum(b.Padding[Top], h, b.Padding[Bottom])
}

// Walk calls f for b and its descendents in depth-first pre-order.
func (b *Box) Walk(f func(*Box)) {
	if b == nil {
		return
	}
	f(b)
	for _, ch := range b.Children {
		ch.Walk(f)
	}
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (b *Box) DebugString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "box %s {\n   x=%v, y=%v, w=%v, h=%v (content h=%v)\n",
		b.Source, b.X, b.Y, b.W, b.H, b.ContentH)
	fmt.Fprintf(&sb, "   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		b.Padding[Top], b.Padding[Right], b.Padding[Bottom], b.Padding[Left])
	fmt.Fprintf(&sb, "   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		b.Margins[Top], b.Margins[Right], b.Margins[Bottom], b.Margins[Left])
	if b.Content != nil {
		fmt.Fprintf(&sb, "   %v\n", b.Content)
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Box content -----------------------------------------------------------

// Content classifies what a box paints. It is either a *Fill or a *TextRun.
type Content interface {
	isContent()
}

// Fill is the background of a box.
type Fill struct {
	Color color.NRGBA
}

func (*Fill) isContent() {}

func (f *Fill) String() string {
	return fmt.Sprintf("fill #%02x%02x%02x%02x", f.Color.R, f.Color.G, f.Color.B, f.Color.A)
}

// TextRun is a block of text, with glyphs placed relative to the
// top left corner of its box.
type TextRun struct {
	Glyphs []text.PlacedGlyph
	Color  color.NRGBA
}

func (*TextRun) isContent() {}

func (t *TextRun) String() string {
	return fmt.Sprintf("text of %d glyphs #%02x%02x%02x%02x", len(t.Glyphs),
		t.Color.R, t.Color.G, t.Color.B, t.Color.A)
}

// Runes returns the code points of the glyphs of t.
func (t *TextRun) Runes() string {
	var sb strings.Builder
	for _, g := range t.Glyphs {
		sb.WriteRune(g.CodePoint)
	}
	return sb.String()
}
