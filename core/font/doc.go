/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight and slant. An example is "Helvetica bold".

* A "typecase" is a scaled font, i.e. a font in a certain size.
An example is "Helvetica bold 16px".

Please note that Go (Golang) does use the terms "font" and "face"
differently, more or less in an opposite manner.

A Registry implements text.FontProvider. It maps CSS font descriptors onto
typecases, looking for fonts in the following order: fonts stored with the
registry, the Go fonts for generic families ("sans-serif", "serif",
"monospace"), system fonts. If nothing fits, Go Sans is used.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'quire.font'
func tracer() tracing.Trace {
	return tracing.Select("quire.font")
}
