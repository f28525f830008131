/*
Package text flows text into lines.

Text is broken into words at white space and words are placed left to
right, wrapping to a new line whenever a word would exceed the available
width. There is no hyphenation, no justification and no bidi or
complex-script shaping: every rune is one glyph, positioned with the
advances and kerning reported by a font face.

Font faces are obtained from a FontProvider. Packages core/font and
engine/text/monospace provide implementations.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.text'.
func tracer() tracing.Trace {
	return tracing.Select("quire.text")
}
