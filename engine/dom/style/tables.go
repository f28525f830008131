package style

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/sets/hashset"
)

// DefaultRootFontSize is the font size in pixels `em` units refer to, if not
// configured otherwise.
const DefaultRootFontSize = 16.0

// Tables is the read-only configuration a cascade is resolved against.
type Tables struct {
	defaults     map[string]string // tag → declaration text
	inherited    *hashset.Set
	colors       *trie.Trie
	rootFontSize float64
}

// NewTables creates a set of style tables. Maps and slices are copied.
// A rootFontSize ≤ 0 is replaced by DefaultRootFontSize.
//
// defaults maps tag names to declaration text, e.g.
//
//	"p": "display:block; margin:1em 0;"
//
// colors maps color keywords to hex notation ("#rrggbb").
func NewTables(defaults map[string]string, inherited []string, colors map[string]string,
	rootFontSize float64) *Tables {
	//
	t := &Tables{
		defaults:     make(map[string]string, len(defaults)),
		inherited:    hashset.New(),
		colors:       trie.New(),
		rootFontSize: rootFontSize,
	}
	if t.rootFontSize <= 0 {
		t.rootFontSize = DefaultRootFontSize
	}
	for tag, decl := range defaults {
		t.defaults[strings.ToLower(tag)] = decl
	}
	for _, key := range inherited {
		t.inherited.Add(key)
	}
	for name, hex := range colors {
		t.colors.Add(strings.ToLower(name), hex)
	}
	return t
}

// DefaultTables returns tables with browser-like default styles for tags,
// the CSS inherited properties and the CSS named colors.
func DefaultTables() *Tables {
	return NewTables(defaultStyles, inheritedProperties, namedColors, DefaultRootFontSize)
}

// WithRootFontSize returns a copy of t with a different root font size.
func (t *Tables) WithRootFontSize(size float64) *Tables {
	c := *t
	if size > 0 {
		c.rootFontSize = size
	}
	return &c
}

// RootFontSize is the size in pixels of 1em.
func (t *Tables) RootFontSize() float64 {
	return t.rootFontSize
}

// Defaults returns the default declaration text for a tag.
func (t *Tables) Defaults(tag string) (string, bool) {
	decl, ok := t.defaults[tag]
	return decl, ok
}

// DefaultTags returns the tags with default styles, in lexical order.
func (t *Tables) DefaultTags() []string {
	tags := make([]string, 0, len(t.defaults))
	for tag := range t.defaults {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// IsInherited returns true if a property propagates to descendants.
func (t *Tables) IsInherited(key string) bool {
	return t.inherited.Contains(key)
}

// InheritedProperties returns the set of inherited properties in lexical order.
func (t *Tables) InheritedProperties() []string {
	keys := make([]string, 0, t.inherited.Size())
	for _, v := range t.inherited.Values() {
		keys = append(keys, v.(string))
	}
	sort.Strings(keys)
	return keys
}

// NamedColor looks up a color keyword, ignoring case.
func (t *Tables) NamedColor(name string) (string, bool) {
	node, ok := t.colors.Find(strings.ToLower(name))
	if !ok {
		return "", false
	}
	hex, ok := node.Meta().(string)
	return hex, ok
}

// --- Default tables --------------------------------------------------------

var inheritedProperties = []string{
	"border-collapse",
	"border-spacing",
	"caption-side",
	"color",
	"cursor",
	"direction",
	"empty-cells",
	"font-family",
	"font-size",
	"font-style",
	"font-variant",
	"font-weight",
	"font-size-adjust",
	"font-stretch",
	"font",
	"letter-spacing",
	"line-height",
	"list-style-image",
	"list-style-position",
	"list-style-type",
	"list-style",
	"orphans",
	"quotes",
	"tab-size",
	"text-align",
	"text-align-last",
	"text-decoration-color",
	"text-indent",
	"text-justify",
	"text-shadow",
	"text-transform",
	"visibility",
	"white-space",
	"widows",
	"word-break",
	"word-spacing",
	"word-wrap",
}

const headingMargins = "margin-left:0; margin-right:0; font-weight:bold;"

var defaultStyles = map[string]string{
	"a":          "color:#0000ee; text-decoration:underline;",
	"address":    "display:block; font-style:italic;",
	"area":       "display:none;",
	"article":    "display:block;",
	"aside":      "display:block;",
	"b":          "font-weight:bold;",
	"base":       "display:none;",
	"blockquote": "display:block; margin-top:1em; margin-bottom:1em; margin-left:40px; margin-right:40px;",
	"body":       "display:block; margin:8px;",
	"cite":       "font-style:italic;",
	"code":       "font-family:monospace;",
	"datalist":   "display:none;",
	"dd":         "display:block; margin-left:40px;",
	"del":        "text-decoration:line-through;",
	"details":    "display:block;",
	"dfn":        "font-style:italic;",
	"div":        "display:block;",
	"dl":         "display:block; margin-top:1em; margin-bottom:1em; margin-left:0; margin-right:0;",
	"dt":         "display:block;",
	"em":         "font-style:italic;",
	"figcaption": "display:block;",
	"figure":     "display:block; margin-top:1em; margin-bottom:1em; margin-left:40px; margin-right:40px;",
	"footer":     "display:block;",
	"form":       "display:block; margin-top:0em;",
	"h1":         "display:block; font-size:2em; margin-top:0.67em; margin-bottom:0.67em; " + headingMargins,
	"h2":         "display:block; font-size:1.5em; margin-top:0.83em; margin-bottom:0.83em; " + headingMargins,
	"h3":         "display:block; font-size:1.17em; margin-top:1em; margin-bottom:1em; " + headingMargins,
	"h4":         "display:block; margin-top:1.33em; margin-bottom:1.33em; " + headingMargins,
	"h5":         "display:block; font-size:.83em; margin-top:1.67em; margin-bottom:1.67em; " + headingMargins,
	"h6":         "display:block; font-size:.67em; margin-top:2.33em; margin-bottom:2.33em; " + headingMargins,
	"head":       "display:none;",
	"header":     "display:block;",
	"hr":         "display:block; margin-top:0.5em; margin-bottom:0.5em; margin-left:auto; margin-right:auto;",
	"html":       "display:block;",
	"i":          "font-style:italic;",
	"ins":        "text-decoration:underline;",
	"kbd":        "font-family:monospace;",
	"legend":     "display:block; padding-left:2px; padding-right:2px;",
	"li":         "display:list-item;",
	"link":       "display:none;",
	"mark":       "background-color:yellow; color:black;",
	"menu":       "display:block; margin-top:1em; margin-bottom:1em; margin-left:0; margin-right:0; padding-left:40px;",
	"meta":       "display:none;",
	"nav":        "display:block;",
	"ol":         "display:block; margin-top:1em; margin-bottom:1em; margin-left:0; margin-right:0; padding-left:40px;",
	"p":          "display:block; margin-top:1em; margin-bottom:1em; margin-left:0; margin-right:0;",
	"param":      "display:none;",
	"pre":        "display:block; font-family:monospace; white-space:pre; margin:1em 0;",
	"s":          "text-decoration:line-through;",
	"samp":       "font-family:monospace;",
	"script":     "display:none;",
	"section":    "display:block;",
	"strike":     "text-decoration:line-through;",
	"strong":     "font-weight:bold;",
	"style":      "display:none;",
	"summary":    "display:block;",
	"template":   "display:none;",
	"th":         "font-weight:bold; text-align:center;",
	"title":      "display:none;",
	"u":          "text-decoration:underline;",
	"ul":         "display:block; margin-top:1em; margin-bottom:1em; margin-left:0; margin-right:0; padding-left:40px;",
	"var":        "font-style:italic;",
}
