package layout

import (
	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/text"
	"github.com/npillmayer/quire/engine/text/monospace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var sides = [4]string{"-top", "-right", "-bottom", "-left"}

// edges reads a 4-way property: the shorthand first, then per-side
// overrides. Unset, invalid and auto values are zero.
func edges(n *dom.Node, prop string, root float64) [4]dimen.Distance {
	var e [4]dimen.Distance
	if p := n.Style(prop); !p.IsEmpty() {
		if shorthand, err := p.Edges(root); err != nil {
			tracer().Debugf("%s: ignoring %s: %v", n, prop, err)
		} else {
			e = shorthand
		}
	}
	for i, side := range sides {
		if p := n.Style(prop + side); !p.IsEmpty() {
			if d, err := p.Distance(root); err != nil {
				tracer().Debugf("%s: ignoring %s%s: %v", n, prop, side, err)
			} else {
				e[i] = d
			}
		}
	}
	for i := range e {
		if e[i].IsAuto() {
			e[i] = dimen.Zero
		}
	}
	return e
}

// distance reads a single distance property. Unset and invalid values are
// auto.
func distance(n *dom.Node, prop string, root float64) dimen.Distance {
	p := n.Style(prop)
	if p.IsEmpty() {
		return dimen.Auto
	}
	d, err := p.Distance(root)
	if err != nil {
		tracer().Debugf("%s: ignoring %s: %v", n, prop, err)
		return dimen.Auto
	}
	return d
}

// fontSizes maps absolute-size keywords to multiples of the root font size.
var fontSizes = map[string]float64{
	"xx-small": 9.0 / 16,
	"x-small":  10.0 / 16,
	"small":    13.0 / 16,
	"medium":   1.0,
	"large":    18.0 / 16,
	"x-large":  24.0 / 16,
	"xx-large": 32.0 / 16,
}

// fontSize returns the font size of n in pixels. Percentages and em units
// are relative to the root font size.
func fontSize(n *dom.Node, root float64) float64 {
	p := n.Style("font-size")
	if p.IsEmpty() {
		return root
	}
	if f, ok := fontSizes[p.String()]; ok {
		return f * root
	}
	d, err := p.Distance(root)
	if err != nil {
		tracer().Debugf("%s: ignoring font-size: %v", n, err)
		return root
	}
	if size := d.ResolveOr(root, root); size > 0 {
		return size
	}
	return root
}

func (l *Layouter) descriptor(n *dom.Node) text.Descriptor {
	family := n.Style("font-family").String()
	if family == "" {
		family = "sans-serif"
	}
	return text.Descriptor{
		Family: family,
		Size:   fontSize(n, l.tables.RootFontSize()),
		Weight: text.ParseWeight(n.Style("font-weight").String()),
		Style:  text.ParseStyle(n.Style("font-style").String()),
	}
}

// face gets a face from the font provider. Providers may return a fallback
// face together with an error; only a missing face is replaced by a
// monospace one.
func (l *Layouter) face(desc text.Descriptor) text.Face {
	face, err := l.fonts.Face(desc)
	if err != nil {
		tracer().Infof("font %s: %v", desc, err)
	}
	if face == nil {
		return monospace.Face(desc.Size/2, desc.Size)
	}
	return face
}

// transform applies CSS text-transform.
func transform(s string, tt style.Property) string {
	switch tt {
	case "uppercase":
		return cases.Upper(language.Und).String(s)
	case "lowercase":
		return cases.Lower(language.Und).String(s)
	case "capitalize":
		return cases.Title(language.Und, cases.NoLower).String(s)
	}
	return s
}
