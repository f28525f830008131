package style

import (
	"sort"
	"strings"

	"github.com/npillmayer/quire/core/dimen"
)

// Property is a raw CSS property value, e.g. "10px" or "blue".
type Property string

// NullProperty is the value of unset properties.
const NullProperty Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty is true for unset properties.
func (p Property) IsEmpty() bool {
	return p == NullProperty
}

// Distance interprets p as a distance, given the root font size for `em`
// units.
func (p Property) Distance(rootFontSize float64) (dimen.Distance, error) {
	return dimen.Parse(string(p), rootFontSize)
}

// Edges interprets p as a 4-way shorthand (margin, padding).
func (p Property) Edges(rootFontSize float64) ([4]dimen.Distance, error) {
	return dimen.ParseEdges(string(p), rootFontSize)
}

// --- Property maps ---------------------------------------------------------

// PropertyMap holds the computed styles of a node. It is empty until the
// cascade has been resolved for its node.
type PropertyMap struct {
	m map[string]Property
}

// NewPropertyMap creates an empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

// Get returns the value of a property.
func (pmap *PropertyMap) Get(key string) (Property, bool) {
	if pmap == nil || pmap.m == nil {
		return NullProperty, false
	}
	p, ok := pmap.m[key]
	return p, ok
}

// GetOr returns the value of a property or dflt, if it is unset.
func (pmap *PropertyMap) GetOr(key string, dflt Property) Property {
	if p, ok := pmap.Get(key); ok {
		return p
	}
	return dflt
}

// Set sets a property, overwriting any previous value.
func (pmap *PropertyMap) Set(key string, value Property) {
	if pmap.m == nil {
		pmap.m = make(map[string]Property)
	}
	pmap.m[key] = value
}

// Size returns the number of properties set.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Keys returns the property keys in lexical order.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range pmap.Keys() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(string(pmap.m[k]))
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}
