/*
Package gfx emits paint primitives for box trees.

Painting itself is done by an external painter, which receives an ordered
list of primitives: filled rectangles and runs of glyphs, back to front.
Geometry is absolute, in pixels, with the origin at the top left corner of
the viewport.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("quire.gfx")
}
