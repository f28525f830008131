package css

import (
	"strings"

	douceur "github.com/aymerick/douceur/css"
)

// Rule is a selector together with a block of declarations, in source order.
type Rule struct {
	Selector     string
	Declarations []*douceur.Declaration
}

// Sheet is an ordered list of rules.
type Sheet struct {
	Rules []Rule
}

// Len returns the number of rules in s.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}

// Append adds the rules of other after the rules of s.
func (s *Sheet) Append(other *Sheet) *Sheet {
	if other != nil {
		s.Rules = append(s.Rules, other.Rules...)
	}
	return s
}

// String renders s in CSS syntax.
func (s *Sheet) String() string {
	if s == nil {
		return ""
	}
	sheet := douceur.NewStylesheet()
	for _, r := range s.Rules {
		rule := douceur.NewRule(douceur.QualifiedRule)
		rule.Prelude = r.Selector
		rule.Selectors = splitSelectorGroup(r.Selector)
		rule.Declarations = r.Declarations
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet.String()
}

func splitSelectorGroup(selector string) []string {
	var group []string
	for _, s := range strings.Split(selector, ",") {
		if s = strings.TrimSpace(s); s != "" {
			group = append(group, s)
		}
	}
	return group
}

// --- Parser ----------------------------------------------------------------

type parseState int8

const (
	inSelector parseState = iota
	inKey
	inValue
)

type parser struct {
	sheet    *Sheet
	decls    []*douceur.Declaration
	state    parseState
	comment  bool
	last     rune // previous character outside of comments
	selector strings.Builder
	key      strings.Builder
	value    strings.Builder
}

// Parse reads a style sheet.
func Parse(text string) *Sheet {
	p := &parser{sheet: &Sheet{}, state: inSelector}
	p.run(text)
	if p.state != inSelector {
		tracer().Debugf("dropping unterminated rule %q", strings.TrimSpace(p.selector.String()))
	}
	tracer().Debugf("style sheet has %d rules", p.sheet.Len())
	return p.sheet
}

// ParseDeclarations reads a declaration block without selector and braces,
// as found in `style` attributes. The final declaration does not need to be
// terminated by a semicolon.
func ParseDeclarations(text string) []*douceur.Declaration {
	p := &parser{sheet: &Sheet{}, state: inKey}
	p.run(text)
	if p.state == inValue {
		p.flushDeclaration()
	}
	return p.decls
}

func (p *parser) run(text string) {
	for _, c := range text {
		p.scan(c)
	}
}

func (p *parser) scan(c rune) {
	if p.comment {
		if p.last == '*' && c == '/' {
			p.comment = false
			p.last = 0
			return
		}
		p.last = c
		return
	}
	if p.last == '/' && c == '*' {
		p.comment = true
		p.last = 0
		p.unbuffer('/')
		return
	}
	p.last = c
	switch p.state {
	case inSelector:
		if c == '{' {
			p.state = inKey
			return
		}
		p.selector.WriteRune(c)
	case inKey:
		switch c {
		case ':':
			p.state = inValue
		case '}':
			p.flushRule()
		case ';':
			if k := strings.TrimSpace(p.key.String()); k != "" {
				tracer().Debugf("dropping declaration %q without value", k)
			}
			p.key.Reset()
		default:
			p.key.WriteRune(c)
		}
	case inValue:
		switch c {
		case ';':
			p.flushDeclaration()
			p.state = inKey
		case '}':
			p.flushDeclaration()
			p.flushRule()
		default:
			p.value.WriteRune(c)
		}
	}
}

// unbuffer removes the start of a comment opener from the current buffer.
func (p *parser) unbuffer(c rune) {
	var b *strings.Builder
	switch p.state {
	case inSelector:
		b = &p.selector
	case inKey:
		b = &p.key
	default:
		b = &p.value
	}
	s := b.String()
	if strings.HasSuffix(s, string(c)) {
		b.Reset()
		b.WriteString(s[:len(s)-1])
	}
}

func (p *parser) flushDeclaration() {
	key := strings.TrimSpace(p.key.String())
	value := strings.TrimSpace(p.value.String())
	p.key.Reset()
	p.value.Reset()
	if key == "" {
		tracer().Debugf("dropping declaration without key: %q", value)
		return
	}
	decl := douceur.NewDeclaration()
	decl.Property = strings.ToLower(key)
	if v := strings.TrimSuffix(value, "!important"); v != value {
		decl.Important = true
		value = strings.TrimSpace(v)
	}
	decl.Value = value
	p.decls = append(p.decls, decl)
}

func (p *parser) flushRule() {
	selector := strings.Join(strings.Fields(p.selector.String()), " ")
	p.sheet.Rules = append(p.sheet.Rules, Rule{
		Selector:     selector,
		Declarations: p.decls,
	})
	p.selector.Reset()
	p.key.Reset()
	p.decls = nil
	p.state = inSelector
}
