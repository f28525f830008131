/*
Package frame deals with layout frames.

Layout may be understood as the process of placing boxes within
larger boxes. The smallest type of box is a run of glyphs. The largest
type of box is the viewport, where all other boxes are placed into.

Boxes follow the CSS box model: a content box, surrounded by padding and
margins. quire does not support borders. Geometry is kept symbolic:
horizontal distances are relative to the content width of the parent box,
vertical distances are relative to the height of the viewport. Distances are
reduced to pixels only when boxes are emitted for painting.

Boxes form a tree, which is built from scratch on every layout pass and is
structurally independent from the DOM.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.frame'.
func tracer() tracing.Trace {
	return tracing.Select("quire.frame")
}
