/*
Package layout produces a tree of boxes from a styled DOM tree.

Overview

Layout is a single recursive pass over the DOM. Elements are stacked
vertically within their parent's content box, text nodes are word-wrapped to
the available width. Vertical margins of adjacent siblings collapse.

Geometry is kept symbolic (see package frame). The only place where distances
are reduced to pixels during layout is text flow, which needs a concrete line
width: the available width of a text node is resolved against the pixel width
of the nearest container with a known width, the outermost one being the
viewport.

An element with an explicit height becomes the reference for the vertical
distances of its descendants. Its content height is rebased to the reference
of its parent, so that percentages compound only when they are resolved.

Quirks

The margins of <body> are applied as padding.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.frame'.
func tracer() tracing.Trace {
	return tracing.Select("quire.frame")
}
