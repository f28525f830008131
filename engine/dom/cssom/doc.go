/*
Package cssom resolves the cascade of styles for a document tree.

For every element, styles are collected in three steps, each step
overwriting properties set by a previous one:

	1. default styles for the element's tag,
	2. rules of the style sheet whose selector matches the element, in
	   sheet order,
	3. declarations of the element's `style` attribute.

There is no notion of specificity: the last writer wins.

Inherited properties are then copied to all descendants of the element,
before the descendants are styled themselves. Descendants therefore see the
values of their nearest ancestor which sets a property, unless they set the
property themselves.

Selectors

Supported selectors are `*`, `.class`, `#id` and tag names, combined into
descendant chains with whitespace (e.g. `div .note p`), and groups of chains
separated by commas. A class selector compares the complete `class`
attribute; an element with class="a b" is not matched by `.a`.

Chains are matched from right to left. The rightmost selector has to match
the element itself. Every other selector has to match an ancestor above the
one matched by its right neighbour. The nearest matching ancestor is chosen
and never revised. There is no backtracking, which is a known limitation:
the matcher is only correct because chains consist of descendant
combinators, and child or sibling combinators cannot be added to it as is.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.style'.
func tracer() tracing.Trace {
	return tracing.Select("quire.style")
}
