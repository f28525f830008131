package font

import (
	"os"
	"sync"

	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/engine/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a font which may be scaled to typecases of any size.
type ScalableFont struct {
	Fontname string
	Filepath string         // file path, or "internal" for built-in fonts
	SFNT     *opentype.Font // the font's container
}

// LoadOpenTypeFont loads an OpenType or TrueType font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the binary representation of an OpenType or
// TrueType font.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	otf, err := opentype.Parse(fbytes)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font")
	}
	f := &ScalableFont{SFNT: otf}
	f.Fontname, _ = otf.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// PrepareCase creates a typecase of f in a given size in pixels.
// Sizes outside of 1px…1000px are replaced by DefaultSize.
func (f *ScalableFont) PrepareCase(size float64) (*TypeCase, error) {
	if size < 1.0 || size > 1000.0 {
		tracer().Errorf("font size must be 1px < size < 1000px, is %g (set to %g)", size, DefaultSize)
		size = DefaultSize
	}
	options := &opentype.FaceOptions{
		Size: size,
		DPI:  72, // points are pixels
	}
	face, err := opentype.NewFace(f.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot create typecase for %s", f.Fontname)
	}
	return &TypeCase{parent: f, face: face, size: size}, nil
}

// DefaultSize is the font size used for out-of-range requests.
const DefaultSize = 16.0

// --- Go fonts --------------------------------------------------------------

// goFonts holds the Go fonts, indexed by [monospace][weight][style].
var goFonts [2][2][2]*ScalableFont

var goFontsLoading sync.Once

func loadGoFonts() {
	ttfs := [2][2][2][]byte{
		{
			{goregular.TTF, goitalic.TTF},
			{gobold.TTF, gobolditalic.TTF},
		},
		{
			{gomono.TTF, gomonoitalic.TTF},
			{gomonobold.TTF, gomonobolditalic.TTF},
		},
	}
	for m := range ttfs {
		for w := range ttfs[m] {
			for s, ttf := range ttfs[m][w] {
				f, err := ParseOpenTypeFont(ttf)
				if err != nil {
					panic("cannot load Go fonts") // this cannot happen
				}
				f.Filepath = "internal"
				goFonts[m][w][s] = f
			}
		}
	}
}

// GoFont returns one of the built-in Go fonts.
func GoFont(monospace bool, weight text.Weight, style text.Style) *ScalableFont {
	goFontsLoading.Do(loadGoFonts)
	m, w, s := 0, 0, 0
	if monospace {
		m = 1
	}
	if weight == text.WeightBold {
		w = 1
	}
	if style == text.StyleItalic {
		s = 1
	}
	return goFonts[m][w][s]
}

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	return GoFont(false, text.WeightNormal, text.StyleNormal)
}
