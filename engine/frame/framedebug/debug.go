/*
Package framedebug renders box trees for debugging.

ToGraphViz produces a DOT file format suitable as input for Graphviz.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/quire/engine/frame"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// maxBoxes guards against erroneous cycles.
const maxBoxes = 10000

// ToGraphViz creates a graphical representation of a box tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root *frame.Box, w io.Writer) error {
	header := template.Must(template.New("boxTree").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"label":       label,
			"fill":        fill,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err := header.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		if _, err := boxes(root, w, &gparams); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func boxes(b *frame.Box, w io.Writer, gparams *graphParamsType) (string, error) {
	gparams.cnt++
	if gparams.cnt > maxBoxes {
		return "", fmt.Errorf("box tree has more than %d boxes", maxBoxes)
	}
	name := fmt.Sprintf("node%05d", gparams.cnt)
	if err := gparams.BoxTmpl.Execute(w, &cbox{B: b, Name: name}); err != nil {
		return name, err
	}
	for _, child := range b.Children {
		chname, err := boxes(child, w, gparams)
		if err != nil {
			return name, err
		}
		if err = gparams.EdgeTmpl.Execute(w, cedge{name, chname}); err != nil {
			return name, err
		}
	}
	return name, nil
}

// Helper structs
type cbox struct {
	B    *frame.Box
	Name string
}

type cedge struct {
	N1, N2 string
}

func (c *cbox) IsText() bool {
	_, ok := c.B.Content.(*frame.TextRun)
	return ok
}

func shortText(c *cbox) string {
	txt := c.B.Content.(*frame.TextRun).Runes()
	s := fmt.Sprintf("\"%s \\\"", "T")
	if r := []rune(txt); len(r) > 10 {
		s += string(r[:10]) + "…\\\"\""
	} else {
		s += txt + "\\\"\""
	}
	return s
}

func label(c *cbox) string {
	b := c.B
	if b.Hidden {
		return fmt.Sprintf("%q", b.Source+" (none)")
	}
	l := fmt.Sprintf("%s\\nx=%v y=%v\\nw=%v h=%v", b.Source, b.X, b.Y, b.W, b.H)
	return "\"" + strings.ReplaceAll(l, "\"", "\\\"") + "\""
}

func fill(c *cbox) string {
	if f, ok := c.B.Content.(*frame.Fill); ok && f.Color.A > 0 {
		return fmt.Sprintf("fillcolor=\"#%02x%02x%02x%02x\"", f.Color.R, f.Color.G, f.Color.B, f.Color.A)
	}
	return "fillcolor=lightblue3"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if .B.Hidden }}
{{ .Name }}	[ label={{ label . }} shape=box style=dashed ] ;
{{ else }}
{{ .Name }}	[ label={{ label . }} shape=box style=filled {{ fill . }} ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
