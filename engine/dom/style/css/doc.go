/*
Package css reads style sheets.

The parser understands rules of the form

	selector { key: value; key: value; }

with comments allowed anywhere. The selector is kept as text;
interpreting it is left to the cascade. Declarations are represented with
the declaration type of github.com/aymerick/douceur.

A sheet is an ordered list of rules. Order matters: during the cascade,
later rules overwrite earlier ones.

Parsing is lenient and never fails. Malformed input results in rules or
declarations being dropped.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.css'.
func tracer() tracing.Trace {
	return tracing.Select("quire.css")
}
