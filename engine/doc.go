/*
Package engine connects the stages of the rendering pipeline.

	markup ─▶ html.Parse ─▶ DOM ─▶ css.Parse(<style> text) ─▶ cascade
	       ─▶ layout ─▶ box tree ─▶ gfx.Emit ─▶ paint primitives

Load parses a document and resolves its styles once. Layout and Paint may be
called any number of times afterwards, e.g. whenever the viewport is resized;
both are pure functions of the styled document and the viewport size.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.engine'.
func tracer() tracing.Trace {
	return tracing.Select("quire.engine")
}
