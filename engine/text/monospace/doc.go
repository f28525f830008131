/*
Package monospace implements font faces where every glyph has the same
advance, scaled by its East Asian width (UAX #11): wide glyphs take two
cells, combining marks none.

Monospace faces are useful for tests and for rendering to character grids.
*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.text'.
func tracer() tracing.Trace {
	return tracing.Select("quire.text")
}
