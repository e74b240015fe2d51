// Package iconfont resolves and renders the private icon font.
// This file contains the Resolver, which owns all cached font state.
package iconfont

import (
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"volumelock/common"
)

const (
	// FontAwesomeFamily is the exact family name of the packaged icon font.
	FontAwesomeFamily = "Font Awesome 6 Free Solid"
	// DefaultFamily is the host font used for text when the icon font is
	// unavailable.
	DefaultFamily = "Segoe UI"
)

// alternateFamilies are tried in order when neither the embedded
// payload nor the exact family name resolves. First one the host can
// instantiate wins.
var alternateFamilies = []string{
	"FontAwesome",
	"Font Awesome 6 Free",
	"Font Awesome 6 Free Solid",
	"Font Awesome 5 Free Solid",
	"FontAwesome Solid",
}

// DefaultGlyphColor is the near-white used when a Glyph carries no color.
var DefaultGlyphColor = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}

// Glyph identifies one renderable icon character.
type Glyph struct {
	// Codepoint is the Unicode codepoint of the glyph in the icon font.
	Codepoint rune
	// Color is the fill color; nil selects DefaultGlyphColor.
	Color color.Color
}

func (g Glyph) color() color.Color {
	if g.Color == nil {
		return DefaultGlyphColor
	}
	return g.Color
}

// Resolver loads the embedded icon font and renders glyphs to bitmaps.
// A single Resolver instance owns the cached font handle for the
// process; concurrent first-load attempts are serialized internally.
type Resolver struct {
	mu        sync.Mutex
	resources fs.FS
	locator   FontLocator

	// family is the loaded icon font. Once non-nil it is never replaced;
	// a failed load leaves it nil so the next call retries.
	family    *sfnt.Font
	installed bool

	defaultOnce sync.Once
	defaultFont *sfnt.Font

	systemOnce sync.Once
	systemFont *sfnt.Font
}

// NewResolver creates a resolver over the given resource pack and host
// font locator. Passing nil selects the embedded assets and the
// platform locator.
func NewResolver(resources fs.FS, locator FontLocator) *Resolver {
	if resources == nil {
		resources = Assets
	}
	if locator == nil {
		locator = SystemLocator()
	}
	return &Resolver{resources: resources, locator: locator}
}

// LoadIconFont parses the embedded icon font payload and caches the
// resulting font. Idempotent: after the first success the cached font
// is returned without re-reading the payload. On any failure it logs a
// diagnostic and returns nil; the next call retries.
func (r *Resolver) LoadIconFont() *sfnt.Font {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.installed {
		return r.family
	}

	name := r.findResource()
	if name == "" {
		common.LogWarn("icon font: no embedded payload matches the expected names")
		return nil
	}

	data, err := fs.ReadFile(r.resources, name)
	if err != nil {
		common.LogWarn("icon font: reading %s: %v", name, err)
		return nil
	}

	f, err := opentype.Parse(data)
	if err != nil {
		common.LogWarn("icon font: parsing %s: %v", name, err)
		return nil
	}

	r.family = f
	r.installed = true
	common.LogInfo("icon font: loaded embedded payload %s", name)
	return r.family
}

// findResource scans the resource names for the icon font payload.
// Recognition order: a name containing "fontawesome-solid", then a name
// containing both "fontawesome" and "solid", then the literal fallback
// file name. Matching is case-sensitive to the source packaging.
func (r *Resolver) findResource() string {
	var names []string
	fs.WalkDir(r.resources, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d == nil || d.IsDir() {
			return nil
		}
		names = append(names, p)
		return nil
	})
	sort.Strings(names)

	for _, n := range names {
		if strings.Contains(path.Base(n), "fontawesome-solid") {
			return n
		}
	}
	for _, n := range names {
		base := path.Base(n)
		if strings.Contains(base, "fontawesome") && strings.Contains(base, "solid") {
			return n
		}
	}
	for _, n := range names {
		if path.Base(n) == common.IconFontFileName {
			return n
		}
	}
	return ""
}

// NewFace returns a font face at the requested size, built from the
// cached icon font when available and from a default family otherwise.
// It never fails: the last resort is a packaged bitmap face.
func (r *Resolver) NewFace(size float64) font.Face {
	if f := r.LoadIconFont(); f != nil {
		if face, err := opentype.NewFace(f, faceOpts(size)); err == nil {
			return face
		}
	}
	if f := r.defaultFamily(); f != nil {
		if face, err := opentype.NewFace(f, faceOpts(size)); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// defaultFamily resolves the platform default text font, preferring an
// installed DefaultFamily and falling back to the embedded Go font so a
// usable family always exists.
func (r *Resolver) defaultFamily() *sfnt.Font {
	r.systemOnce.Do(func() {
		if r.locator == nil {
			return
		}
		f, err := r.locator.Locate(DefaultFamily)
		if err != nil {
			common.LogDebug("icon font: %s not installed: %v", DefaultFamily, err)
			return
		}
		r.systemFont = f
	})
	if r.systemFont != nil {
		return r.systemFont
	}

	r.defaultOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			common.LogError("icon font: embedded default font failed to parse: %v", err)
			return
		}
		r.defaultFont = f
	})
	return r.defaultFont
}

// locate asks the host for a font by family name, returning nil when it
// cannot be instantiated.
func (r *Resolver) locate(family string) *sfnt.Font {
	if r.locator == nil {
		return nil
	}
	f, err := r.locator.Locate(family)
	if err != nil {
		common.LogDebug("icon font: host font %q unavailable: %v", family, err)
		return nil
	}
	return f
}

// Teardown releases the cached icon font state. Safe to call multiple
// times; a subsequent render transparently reloads the payload.
func (r *Resolver) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.family = nil
	r.installed = false
}

// hasGlyph reports whether the font can shape the codepoint.
func hasGlyph(f *sfnt.Font, r rune) bool {
	var b sfnt.Buffer
	gi, err := f.GlyphIndex(&b, r)
	return err == nil && gi != 0
}

func faceOpts(size float64) *opentype.FaceOptions {
	return &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull}
}
