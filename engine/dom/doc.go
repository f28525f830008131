/*
Package dom implements the document tree of quire.

A document tree consists of nodes of three kinds: a single document root,
elements and text. Elements carry a tag name, attributes and an ordered list
of children. Text nodes are leafs. Every node but the root links back to its
parent; the link is non-owning and used for upward selector matching only.

Every node owns a computed style map, which stays empty until a cascade has
been resolved for the tree (see package cssom).

For debugging and inspection, trees may be serialized to HTML (Render) and
queried with full CSS selectors (Query). Both are implemented on top of
golang.org/x/net/html.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.dom'.
func tracer() tracing.Trace {
	return tracing.Select("quire.dom")
}
