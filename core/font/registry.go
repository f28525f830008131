package font

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/engine/text"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding information about loaded fonts and
// typecases. It implements text.FontProvider and is safe for concurrent use.
type Registry struct {
	sync.Mutex
	fonts     map[string]*ScalableFont
	typecases map[string]*TypeCase
	misses    map[string]struct{} // font keys not found on the system
	search    func(string, text.Weight, text.Style) *ScalableFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts:     make(map[string]*ScalableFont),
		typecases: make(map[string]*TypeCase),
		misses:    make(map[string]struct{}),
		search:    findSystemFont,
	}
}

// StoreFont pushes a font for a family, weight and style into the registry.
// Fonts stored this way take precedence over Go fonts and system fonts.
// Typecases already derived for the family are not affected.
func (fr *Registry) StoreFont(family string, weight text.Weight, style text.Style, f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	key := NormalizeFontname(family, style, weight)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
	fr.fonts[key] = f
	delete(fr.misses, key)
}

// Face returns a typecase for a font descriptor. desc.Family may be a CSS
// font-family list; the first family available wins. Typecases are cached.
//
// If no family of the list can be found, Face returns a typecase derived
// from the fallback font, together with an error.
func (fr *Registry) Face(desc text.Descriptor) (text.Face, error) {
	fr.Lock()
	defer fr.Unlock()
	for _, family := range splitFamilies(desc.Family) {
		if tc := fr.typeCase(family, desc); tc != nil {
			return tc, nil
		}
	}
	tracer().Infof("registry does not contain a font for %s", desc)
	err := core.Error(core.EMISSING, "no font found for %s", desc)
	tname := appendSize("fallback", desc.Size)
	if tc, ok := fr.typecases[tname]; ok {
		return tc, err
	}
	tc, e := FallbackFont().PrepareCase(desc.Size)
	if e != nil {
		return nil, e
	}
	tracer().Infof("font registry caches fallback font at %.2f", desc.Size)
	fr.typecases[tname] = tc
	return tc, err
}

var _ text.FontProvider = &Registry{}

// typeCase finds or creates a typecase for a single family. fr must be locked.
// The system font directories are searched at most once per family, weight
// and style.
func (fr *Registry) typeCase(family string, desc text.Descriptor) *TypeCase {
	key := NormalizeFontname(family, desc.Style, desc.Weight)
	tname := appendSize(key, desc.Size)
	if tc, ok := fr.typecases[tname]; ok {
		return tc
	}
	if _, missing := fr.misses[key]; missing {
		return nil
	}
	f, ok := fr.fonts[key]
	if !ok {
		switch strings.ToLower(family) {
		case "sans-serif", "serif", "system-ui", "cursive", "fantasy":
			f = GoFont(false, desc.Weight, desc.Style)
		case "monospace":
			f = GoFont(true, desc.Weight, desc.Style)
		default:
			f = fr.search(family, desc.Weight, desc.Style)
		}
		if f == nil {
			tracer().Debugf("font registry records %s as missing", key)
			fr.misses[key] = struct{}{}
			return nil
		}
		fr.fonts[key] = f
	}
	tc, err := f.PrepareCase(desc.Size)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil
	}
	tracer().Infof("font registry has font %s, caches at %.2f", key, desc.Size)
	fr.typecases[tname] = tc
	return tc
}

// LogFontList is a helper function to dump the list of known fonts and typecases
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Infof("typecase [%s] = %v", k, v.ScalableFontParent().Fontname)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// splitFamilies splits a CSS font-family list and removes quotes.
func splitFamilies(families string) []string {
	var list []string
	for _, f := range strings.Split(families, ",") {
		f = strings.Trim(strings.TrimSpace(f), `"'`)
		if f != "" {
			list = append(list, f)
		}
	}
	return list
}

// --- System fonts ----------------------------------------------------------

var variantSuffixes = [2][2][]string{
	{
		{"-Regular", " Regular"},
		{"-Italic", " Italic", "-Oblique"},
	},
	{
		{"-Bold", " Bold"},
		{"-BoldItalic", " Bold Italic", "-BoldOblique"},
	},
}

// findSystemFont searches the system font directories for a font of a family.
// Variants matching weight and style are preferred; otherwise the first file
// found for the family is used.
func findSystemFont(family string, weight text.Weight, style text.Style) *ScalableFont {
	var candidate string
	for _, suffix := range append(variantSuffixes[weight][style], "") {
		fpath, err := findfont.Find(family + suffix)
		if err != nil || fpath == "" {
			continue
		}
		if Matches(fpath, family, style, weight) {
			candidate = fpath
			break
		}
		if candidate == "" && Matches(fpath, family, text.StyleNormal, text.WeightNormal) {
			candidate = fpath
		}
	}
	if candidate == "" {
		tracer().Debugf("no system font for family %s", family)
		return nil
	}
	f, err := LoadOpenTypeFont(candidate)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil
	}
	tracer().Debugf("%s is a system font at %s", family, candidate)
	return f
}

// --- Font names ------------------------------------------------------------

// NormalizeFontname creates a registry key for a font family, style and weight.
func NormalizeFontname(fname string, style text.Style, weight text.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	if style == text.StyleItalic {
		fname += "-italic"
	}
	if weight == text.WeightBold {
		fname += "-bold"
	}
	return fname
}

func appendSize(fname string, size float64) string {
	return fmt.Sprintf("%s-%.2f", fname, size)
}

// GuessStyleAndWeight tries to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (text.Style, text.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	style, weight := text.StyleNormal, text.WeightNormal
	if s := strings.Split(fontfilename, "-"); len(s) > 1 {
		switch s[len(s)-1] {
		case "normal", "medium", "regular", "r", "light", "xlight":
			return style, weight
		case "bold", "b", "xbold", "black", "semibold":
			return style, text.WeightBold
		}
	}
	if strings.Contains(fontfilename, "italic") || strings.Contains(fontfilename, "oblique") {
		style = text.StyleItalic
	}
	if strings.Contains(fontfilename, "bold") {
		weight = text.WeightBold
	}
	return style, weight
}

// Matches returns true if a font's filename contains a family name and
// indicators for a given style and weight. Spaces, dashes and underscores
// are ignored when comparing names.
func Matches(fontfilename, family string, style text.Style, weight text.Weight) bool {
	basename := path.Base(fontfilename)
	basename = basename[:len(basename)-len(path.Ext(basename))]
	if !strings.Contains(squash(basename), squash(family)) {
		return false
	}
	s, w := GuessStyleAndWeight(basename)
	return s == style && w == weight
}

func squash(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name))
}
