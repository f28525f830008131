package html

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/engine/dom"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements are elements without content and without a close tag.
var voidElements = hashset.New(
	atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
	atom.Input, atom.Keygen, atom.Link, atom.Meta, atom.Param, atom.Source,
	atom.Track, atom.Wbr,
)

// IsVoid returns true for elements which never have children, e.g. <br>.
func IsVoid(tag string) bool {
	a := atom.Lookup([]byte(tag))
	return a != 0 && voidElements.Contains(a)
}

type scanState int8

const (
	inText scanState = iota
	inOpenTag
	inCloseTag
	inComment
	inDoctype
)

type parser struct {
	doc     *dom.Node
	open    *arraystack.Stack // open elements, innermost on top
	state   scanState
	text    strings.Builder
	tag     strings.Builder
	comment string // trailing characters of a comment, to detect its end
	quote   rune   // quote character if inside a quoted attribute value, 0 otherwise
	escaped bool
}

// Parse reads markup and builds a document tree. The only errors returned
// are errors from reading r; malformed markup is never an error.
func Parse(r io.Reader) (*dom.Node, error) {
	if r == nil {
		return nil, core.Error(core.EINVALID, "cannot parse markup from nil reader")
	}
	p := &parser{
		doc:  dom.NewDocument(),
		open: arraystack.New(),
	}
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return p.doc, core.WrapError(err, core.EINVALID, "cannot read markup")
		}
		p.scan(c)
	}
	p.finish()
	return p.doc, nil
}

// ParseString is a convenience wrapper for Parse.
func ParseString(markup string) *dom.Node {
	doc, _ := Parse(strings.NewReader(markup))
	return doc
}

func (p *parser) scan(c rune) {
	switch p.state {
	case inText:
		if c == '<' {
			p.flushText()
			p.state = inOpenTag
			p.tag.Reset()
			p.quote, p.escaped = 0, false
			return
		}
		p.text.WriteRune(c)
	case inOpenTag:
		p.scanOpenTag(c)
	case inCloseTag:
		if c == '>' {
			p.closeElement(p.tag.String())
			p.state = inText
			return
		}
		p.tag.WriteRune(c)
	case inComment:
		p.comment += string(c)
		if len(p.comment) > 3 {
			p.comment = p.comment[len(p.comment)-3:]
		}
		if p.comment == "-->" {
			p.state = inText
		}
	case inDoctype:
		if c == '>' {
			p.state = inText
		}
	}
}

func (p *parser) scanOpenTag(c rune) {
	if p.quote != 0 {
		switch {
		case p.escaped:
			p.escaped = false
		case c == '\\':
			p.escaped = true
		case c == p.quote:
			p.quote = 0
		}
		p.tag.WriteRune(c)
		return
	}
	switch {
	case c == '/' && p.tag.Len() == 0:
		p.state = inCloseTag
		return
	case c == '"' || c == '\'':
		p.quote = c
	case c == '>':
		p.openElement(p.tag.String())
		p.state = inText
		return
	}
	p.tag.WriteRune(c)
	if p.tag.String() == "!--" {
		p.state = inComment
		p.comment = ""
	} else if strings.EqualFold(p.tag.String(), "!doctype") {
		p.state = inDoctype
	}
}

func (p *parser) flushText() {
	text := p.text.String()
	p.text.Reset()
	if strings.TrimSpace(text) == "" {
		return
	}
	p.appendToCurrent(dom.NewText(xhtml.UnescapeString(text)))
}

func (p *parser) appendToCurrent(n *dom.Node) {
	parent := p.doc
	if top, ok := p.open.Peek(); ok {
		parent = top.(*dom.Node)
	}
	if err := parent.AppendChild(n); err != nil {
		tracer().Errorf("cannot append %s to %s: %v", n, parent, err)
	}
}

func (p *parser) openElement(content string) {
	content = strings.TrimSpace(content)
	selfClosing := strings.HasSuffix(content, "/")
	if selfClosing {
		content = strings.TrimSpace(strings.TrimSuffix(content, "/"))
	}
	tokens := tokenize(content)
	if len(tokens) == 0 {
		tracer().Debugf("ignoring empty tag")
		return
	}
	element := dom.NewElement(strings.ToLower(tokens[0]), nil)
	for _, attr := range tokens[1:] {
		kv := strings.SplitN(attr, "=", 2)
		if len(kv) != 2 {
			tracer().Debugf("<%s>: dropping attribute token %q", element.Tag(), attr)
			continue
		}
		element.SetAttr(strings.ToLower(kv[0]), kv[1])
	}
	if selfClosing || IsVoid(element.Tag()) {
		p.appendToCurrent(element)
		return
	}
	p.open.Push(element)
}

// closeElement closes the innermost open element. The name of the close tag
// is not checked.
func (p *parser) closeElement(name string) {
	top, ok := p.open.Pop()
	if !ok {
		tracer().Debugf("ignoring stray close tag </%s>", name)
		return
	}
	element := top.(*dom.Node)
	if n := strings.TrimSpace(name); n != "" && !strings.EqualFold(n, element.Tag()) {
		tracer().Debugf("close tag </%s> closes <%s>", n, element.Tag())
	}
	p.appendToCurrent(element)
}

func (p *parser) finish() {
	switch p.state {
	case inText:
		p.flushText()
	case inOpenTag, inCloseTag:
		tracer().Debugf("dropping incomplete tag at end of input: %q", p.tag.String())
	}
	for !p.open.Empty() {
		top, _ := p.open.Peek()
		tracer().Debugf("closing unterminated %s", top.(*dom.Node))
		p.closeElement("")
	}
}

// tokenize splits tag content at whitespace. Quoted sections are kept
// together, with the quotes removed; a backslash escapes the quote
// character inside a quoted section.
func tokenize(content string) []string {
	var tokens []string
	var word strings.Builder
	var quote rune
	escaped, inWord := false, false
	for _, c := range content {
		if quote != 0 {
			switch {
			case escaped:
				if c != quote {
					word.WriteRune('\\')
				}
				word.WriteRune(c)
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			default:
				word.WriteRune(c)
			}
			continue
		}
		switch {
		case c == '"' || c == '\'':
			quote = c
			inWord = true
		case unicode.IsSpace(c):
			if inWord {
				tokens = append(tokens, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(c)
			inWord = true
		}
	}
	if inWord {
		tokens = append(tokens, word.String())
	}
	return tokens
}
