package cssom

import (
	douceur "github.com/aymerick/douceur/css"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/dom/style/css"
)

// Resolver applies style sheets to document trees.
// A resolver is immutable and may be shared.
type Resolver struct {
	tables   *style.Tables
	defaults map[string][]*douceur.Declaration
}

// NewResolver creates a resolver for a set of style tables. If tables is
// nil, style.DefaultTables() is used.
func NewResolver(tables *style.Tables) *Resolver {
	if tables == nil {
		tables = style.DefaultTables()
	}
	r := &Resolver{
		tables:   tables,
		defaults: make(map[string][]*douceur.Declaration),
	}
	for _, tag := range tables.DefaultTags() {
		text, _ := tables.Defaults(tag)
		r.defaults[tag] = css.ParseDeclarations(text)
	}
	return r
}

// Tables returns the tables r resolves against.
func (r *Resolver) Tables() *style.Tables {
	return r.tables
}

type compiledRule struct {
	selector group
	decls    []*douceur.Declaration
}

// Resolve computes the styles of every node below root, including root.
// Styles present from earlier calls are discarded. sheet may be nil.
func (r *Resolver) Resolve(root *dom.Node, sheet *css.Sheet) {
	if root == nil {
		return
	}
	rules := make([]compiledRule, 0, sheet.Len())
	if sheet != nil {
		for _, rule := range sheet.Rules {
			g := compileGroup(rule.Selector)
			if len(g) == 0 {
				tracer().Debugf("ignoring rule with empty selector")
				continue
			}
			rules = append(rules, compiledRule{selector: g, decls: rule.Declarations})
		}
	}
	root.Walk(func(n *dom.Node) error {
		n.SetStyles(style.NewPropertyMap())
		return nil
	})
	r.resolve(root, rules)
}

func (r *Resolver) resolve(n *dom.Node, rules []compiledRule) {
	switch n.Kind() {
	case dom.TextNode:
		return
	case dom.ElementNode:
		styles := n.Styles()
		apply(styles, r.defaults[n.Tag()])
		for _, rule := range rules {
			if rule.selector.matches(n) {
				apply(styles, rule.decls)
			}
		}
		if inline, ok := n.Attr("style"); ok {
			apply(styles, css.ParseDeclarations(inline))
		}
		r.inherit(n)
	case dom.DocumentNode:
	}
	for _, ch := range n.Children() {
		r.resolve(ch, rules)
	}
}

func apply(styles *style.PropertyMap, decls []*douceur.Declaration) {
	for _, d := range decls {
		styles.Set(d.Property, style.Property(d.Value))
	}
}

// inherit copies the inherited properties of n to all of its descendants,
// overwriting their values.
func (r *Resolver) inherit(n *dom.Node) {
	styles := n.Styles()
	var inherited []string
	for _, key := range styles.Keys() {
		if r.tables.IsInherited(key) {
			inherited = append(inherited, key)
		}
	}
	if len(inherited) == 0 {
		return
	}
	for _, ch := range n.Children() {
		ch.Walk(func(d *dom.Node) error {
			for _, key := range inherited {
				p, _ := styles.Get(key)
				d.Styles().Set(key, p)
			}
			return nil
		})
	}
}
