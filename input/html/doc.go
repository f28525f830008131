/*
Package html reads markup into a document tree.

The parser understands a lenient subset of HTML: elements with quoted or
unquoted attributes, void elements, self-closing tags, comments, a doctype
declaration and character references. It does not validate the document.
Close tags are not matched against their open tags; a close tag always closes
the innermost open element. Whitespace-only text between tags is dropped,
other text is kept as-is (no whitespace collapsing).

Parsing never fails on malformed input. Anomalies are reported to the tracer
'quire.html'.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.html'.
func tracer() tracing.Trace {
	return tracing.Select("quire.html")
}
