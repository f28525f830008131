package cssom

import (
	"strings"

	"github.com/npillmayer/quire/engine/dom"
)

type simpleKind int8

const (
	universal simpleKind = iota
	byClass
	byID
	byTag
)

// simple is a selector for a single element.
type simple struct {
	kind simpleKind
	name string
}

// chain is a descendant chain, outermost selector first.
type chain []simple

// group is a comma-separated list of chains.
type group []chain

func compileGroup(selector string) group {
	var g group
	for _, part := range strings.Split(selector, ",") {
		if c := compileChain(part); len(c) > 0 {
			g = append(g, c)
		}
	}
	return g
}

func compileChain(selector string) chain {
	var c chain
	for _, token := range strings.Fields(selector) {
		switch {
		case token == "*":
			c = append(c, simple{kind: universal})
		case strings.HasPrefix(token, "."):
			c = append(c, simple{kind: byClass, name: token[1:]})
		case strings.HasPrefix(token, "#"):
			c = append(c, simple{kind: byID, name: token[1:]})
		default:
			c = append(c, simple{kind: byTag, name: strings.ToLower(token)})
		}
	}
	return c
}

func (s simple) matches(n *dom.Node) bool {
	if n.Kind() != dom.ElementNode {
		return false
	}
	switch s.kind {
	case universal:
		return true
	case byClass:
		class, ok := n.Attr("class")
		return ok && class == s.name
	case byID:
		id, ok := n.Attr("id")
		return ok && id == s.name
	case byTag:
		return n.Tag() == s.name
	}
	return false
}

func (c chain) matches(n *dom.Node) bool {
	if len(c) == 0 || !c[len(c)-1].matches(n) {
		return false
	}
	current := n
	for i := len(c) - 2; i >= 0; i-- {
		found := false
		for a := current.Parent(); a != nil; a = a.Parent() {
			if c[i].matches(a) {
				current, found = a, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (g group) matches(n *dom.Node) bool {
	for _, c := range g {
		if c.matches(n) {
			return true
		}
	}
	return false
}

// Matches returns true if a selector applies to a node.
func Matches(selector string, n *dom.Node) bool {
	return compileGroup(selector).matches(n)
}
