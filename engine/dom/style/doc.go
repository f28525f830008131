/*
Package style holds the vocabulary of styling: raw property values, the
per-node property map, and the read-only tables a cascade is run against.

Tables consist of

	- a default style table, mapping tag names to declaration text
	  (e.g. "display:block;margin:8px;" for <body>),
	- the set of inherited properties,
	- the named-color table,
	- the root font size, against which `em` units are resolved.

Tables are immutable after construction and may be shared between
documents. DefaultTables returns an instance following the user-agent
style sheets of common browsers.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.style'.
func tracer() tracing.Trace {
	return tracing.Select("quire.style")
}
