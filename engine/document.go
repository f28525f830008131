package engine

import (
	"io"
	"strings"

	"github.com/npillmayer/quire/backend/gfx"
	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/core/font"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/cssom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/frame/layout"
	"github.com/npillmayer/quire/engine/text"
	"github.com/npillmayer/quire/input/html"
)

// Document is a parsed and styled document.
type Document struct {
	root   *dom.Node
	sheet  *css.Sheet
	tables *style.Tables
	fonts  text.FontProvider
}

type config struct {
	tables       *style.Tables
	fonts        text.FontProvider
	userSheets   []string
	rootFontSize float64
}

// Option configures loading of a document.
type Option func(*config) error

// WithTables sets the default styles, inherited properties and named colors.
func WithTables(tables *style.Tables) Option {
	return func(c *config) error {
		if tables == nil {
			return core.Error(core.EINVALID, "style tables must not be nil")
		}
		c.tables = tables
		return nil
	}
}

// WithFontProvider sets the source of font metrics.
func WithFontProvider(fonts text.FontProvider) Option {
	return func(c *config) error {
		if fonts == nil {
			return core.Error(core.EINVALID, "font provider must not be nil")
		}
		c.fonts = fonts
		return nil
	}
}

// WithUserStyleSheet adds a style sheet. User style sheets precede the
// <style> elements of the document in the cascade, in the order they have
// been added.
func WithUserStyleSheet(sheet string) Option {
	return func(c *config) error {
		c.userSheets = append(c.userSheets, sheet)
		return nil
	}
}

// WithRootFontSize sets the size of 1em in pixels.
func WithRootFontSize(size float64) Option {
	return func(c *config) error {
		if size <= 0 {
			return core.Error(core.EINVALID, "root font size must be positive, is %g", size)
		}
		c.rootFontSize = size
		return nil
	}
}

// Load reads markup, parses it and resolves the styles of all nodes.
// Malformed markup and style text are never errors; errors are returned for
// invalid options and failing reads.
func Load(r io.Reader, opts ...Option) (*Document, error) {
	c := &config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.tables == nil {
		c.tables = style.DefaultTables()
	}
	if c.rootFontSize > 0 {
		c.tables = c.tables.WithRootFontSize(c.rootFontSize)
	}
	if c.fonts == nil {
		c.fonts = font.GlobalRegistry()
	}
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	sheet := &css.Sheet{}
	for _, s := range c.userSheets {
		sheet.Append(css.Parse(s))
	}
	sheet.Append(css.Parse(dom.StyleText(root)))
	tracer().Infof("document has %d style rules", sheet.Len())
	cssom.NewResolver(c.tables).Resolve(root, sheet)
	return &Document{
		root:   root,
		sheet:  sheet,
		tables: c.tables,
		fonts:  c.fonts,
	}, nil
}

// LoadString is Load for markup held in a string.
func LoadString(markup string, opts ...Option) (*Document, error) {
	return Load(strings.NewReader(markup), opts...)
}

// Root returns the styled DOM of doc.
func (doc *Document) Root() *dom.Node {
	return doc.root
}

// Sheet returns the style rules applied to doc, in cascade order.
func (doc *Document) Sheet() *css.Sheet {
	return doc.sheet
}

// Layout creates a box tree for a viewport of w × h pixels.
func (doc *Document) Layout(w, h float64) *frame.Box {
	return doc.layouter(w, h).Layout(doc.root, dimen.Rel(1), dimen.Rel(1))
}

// Paint lays out doc for a viewport of w × h pixels and returns the
// resulting paint primitives, back to front.
func (doc *Document) Paint(w, h float64) []gfx.Primitive {
	l := doc.layouter(w, h)
	boxes := l.Layout(doc.root, dimen.Rel(1), dimen.Rel(1))
	w, h = l.Viewport()
	return gfx.Emit(boxes, w, h)
}

// layouter creates a layouter for doc. Non-positive viewport sizes are
// replaced by the layouter's defaults.
func (doc *Document) layouter(w, h float64) *layout.Layouter {
	return layout.New(
		layout.WithTables(doc.tables),
		layout.WithFontProvider(doc.fonts),
		layout.WithViewport(w, h),
	)
}
