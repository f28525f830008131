/*
Package xpathadapter implements an xpath.NodeNavigator.

We use this library for XPath queries:

	github.com/antchfx/xpath

Package xpathadapter implements an adapter to enable antchfx/xpath to
access a document tree, where nodes are of type dom.Node. For usage,
refer to function Select.

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

BSD License

Copyright (c) 2017–22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of Norbert Pillmayer nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package xpathadapter

import (
	"errors"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.dom'.
func tracer() tracing.Trace {
	return tracing.Select("quire.dom")
}

// NodeNavigator walks a document tree on behalf of an XPath expression.
type NodeNavigator struct {
	root, current *dom.Node
	attrs         []string // attribute keys of current, if positioned on an attribute
	attr          int      // attributes index
}

// NewNavigator creates a new xpath.NodeNavigator for a document tree.
func NewNavigator(node *dom.Node) *NodeNavigator {
	return &NodeNavigator{
		current: node,
		root:    node,
		attr:    -1,
	}
}

// CurrentNode returns the node a navigator is positioned on.
func CurrentNode(nav xpath.NodeNavigator) (*dom.Node, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.current, nil
}

// Select evaluates an XPath expression against the tree rooted at node and
// returns the matching nodes. Attribute matches yield their element.
func Select(node *dom.Node, expr string) ([]*dom.Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile XPath %q", expr)
	}
	var result []*dom.Node
	seen := make(map[*dom.Node]bool)
	it := x.Select(NewNavigator(node))
	for it.MoveNext() {
		n, err := CurrentNode(it.Current())
		if err != nil {
			return result, err
		}
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	tracer().Debugf("XPath %q selected %d nodes", expr, len(result))
	return result, nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch nav.current.Kind() {
	case dom.TextNode:
		return xpath.TextNode
	case dom.DocumentNode:
		return xpath.RootNode
	case dom.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	return xpath.RootNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.attrs[nav.attr]
	}
	return nav.current.Tag()
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	switch nav.current.Kind() {
	case dom.ElementNode:
		if nav.attr != -1 {
			v, _ := nav.current.Attr(nav.attrs[nav.attr])
			return v
		}
		return innerText(nav.current)
	case dom.TextNode:
		return nav.current.Text()
	case dom.DocumentNode:
		return innerText(nav.current)
	}
	return ""
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.current == nav.root || nav.current.Parent() == nil {
		return false
	}
	nav.current = nav.current.Parent()
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attr == -1 {
		nav.attrs = nav.current.AttrKeys()
	}
	if nav.attr >= len(nav.attrs)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	child, ok := nav.current.Child(0)
	if ok {
		nav.current = child
	}
	return ok
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	first, ok := nav.current.Parent().Child(0)
	if !ok || first == nav.current {
		return false
	}
	nav.current = first
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveToSibling(+1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveToSibling(-1)
}

func (nav *NodeNavigator) moveToSibling(delta int) bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	parent := nav.current.Parent()
	if parent == nil {
		return false
	}
	for i, ch := range parent.Children() {
		if ch == nav.current {
			sibling, ok := parent.Child(i + delta)
			if ok {
				nav.current = sibling
			}
			return ok
		}
	}
	return false
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	nav.attrs = n.attrs
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

func innerText(n *dom.Node) string {
	text, err := dom.InnerText(n)
	if err != nil || text.IsVoid() {
		return ""
	}
	return text.String()
}
