package cssom

import (
	"testing"

	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/quire/input/html"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// find returns the first element with a given id.
func find(t *testing.T, root *dom.Node, id string) *dom.Node {
	var found *dom.Node
	root.Walk(func(n *dom.Node) error {
		if v, ok := n.Attr("id"); ok && v == id && found == nil {
			found = n
		}
		return nil
	})
	require.NotNil(t, found, "no element with id=%s", id)
	return found
}

func styled(markup, sheet string) *dom.Node {
	doc := html.ParseString(markup)
	NewResolver(nil).Resolve(doc, css.Parse(sheet))
	return doc
}

func TestCascadeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	doc := styled(`<body><p id="a">x</p><p id="b" style="color: teal">y</p></body>`,
		`p { color: red; } p { color: yellow; }`)
	assert.Equal(t, "yellow", find(t, doc, "a").Style("color").String())
	assert.Equal(t, "teal", find(t, doc, "b").Style("color").String())
	// sheet overrides tag defaults
	doc = styled(`<body id="body">x</body>`, `body { margin: 0 }`)
	assert.Equal(t, "0", find(t, doc, "body").Style("margin").String())
	assert.Equal(t, "block", find(t, doc, "body").Style("display").String())
}

func TestInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	doc := styled(`<div id="d" style="color: red; margin: 4px">`+
		`<p id="p" style="color: green"><span id="s">x</span></p><em id="e">y</em></div>`, ``)
	span := find(t, doc, "s")
	assert.Equal(t, "green", span.Style("color").String())
	text, _ := span.Child(0)
	assert.Equal(t, "green", text.Style("color").String())
	assert.Equal(t, "red", find(t, doc, "e").Style("color").String())
	assert.Equal(t, "italic", find(t, doc, "e").Style("font-style").String())
	// margin is not inherited
	assert.True(t, find(t, doc, "p").Style("margin").IsEmpty())
}

func TestInheritedDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	doc := styled(`<h1 id="h">Title <span id="s">sub</span></h1>`, ``)
	assert.Equal(t, "2em", find(t, doc, "s").Style("font-size").String())
	assert.Equal(t, "bold", find(t, doc, "s").Style("font-weight").String())
	assert.True(t, find(t, doc, "s").Style("margin-top").IsEmpty())
}

func TestClassSelectorIsLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	doc := styled(`<p id="a" class="cool">x</p><p id="b" class="cool big">y</p>`,
		`.cool { color: blue; }`)
	assert.Equal(t, "blue", find(t, doc, "a").Style("color").String())
	assert.True(t, find(t, doc, "b").Style("color").IsEmpty())
}

func TestSelectorMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	doc := html.ParseString(`<html><body id="body"><div id="main" class="box">` +
		`<section><p id="p1" class="x">a</p></section></div><p id="p2">b</p></body></html>`)
	p1, p2 := find(t, doc, "p1"), find(t, doc, "p2")
	tests := []struct {
		selector string
		p1, p2   bool
	}{
		{"p", true, true},
		{"*", true, true},
		{"div p", true, false},
		{"body p", true, true},
		{"html body div section p", true, false},
		{"#main .x", true, false},
		{".box p", true, false},
		{"section div p", false, false},
		{"div section p", true, false}, // nearest ancestors, no backtracking
		{"body div p", true, false},
		{"p p", false, false},
		{"div, #p2", false, true},
		{"#p2, section p", true, true},
		{"P", true, true},
		{"p.x", false, false},
		{"", false, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.p1, Matches(test.selector, p1), "%q on p1", test.selector)
		assert.Equal(t, test.p2, Matches(test.selector, p2), "%q on p2", test.selector)
	}
	text, _ := p1.Child(0)
	assert.False(t, Matches("*", text))
	assert.False(t, Matches("*", doc))
}

func TestResolveTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	doc := html.ParseString(`<p id="p">x</p>`)
	r := NewResolver(style.DefaultTables())
	r.Resolve(doc, css.Parse(`p { color: red; width: 10px }`))
	assert.Equal(t, "10px", find(t, doc, "p").Style("width").String())
	r.Resolve(doc, nil)
	assert.True(t, find(t, doc, "p").Style("width").IsEmpty())
	assert.True(t, find(t, doc, "p").Style("color").IsEmpty())
	assert.Equal(t, "block", find(t, doc, "p").Style("display").String())
}

func TestCustomTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	tables := style.NewTables(map[string]string{"p": "ink: blue;"}, []string{"ink"}, nil, 0)
	doc := html.ParseString(`<p id="p"><b id="b">x</b></p>`)
	NewResolver(tables).Resolve(doc, nil)
	assert.Equal(t, "blue", find(t, doc, "b").Style("ink").String())
	assert.True(t, find(t, doc, "p").Style("display").IsEmpty())
}
