// Package iconfont resolves and renders the private icon font.
// This file contains the glyph rasterization paths.
package iconfont

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"volumelock/common"
)

// iconFontScale is the ratio of glyph font size to canvas size for
// standalone icons.
const iconFontScale = 0.75

// RenderGlyph draws the glyph centered in a transparent square canvas
// of canvasSize pixels, anti-aliased, at a font size of
// canvasSize*iconFontScale. When the icon font is unavailable or the
// drawing pipeline fails, it falls through to RenderFallbackGlyph; the
// result is nil only when canvasSize is not positive.
func (r *Resolver) RenderGlyph(g Glyph, canvasSize int) *image.RGBA {
	if canvasSize <= 0 {
		return nil
	}

	if f := r.LoadIconFont(); f != nil && hasGlyph(f, g.Codepoint) {
		img, err := drawGlyph(f, g, float64(canvasSize)*iconFontScale, canvasSize)
		if err == nil {
			return img
		}
		common.LogWarn("icon font: rendering %U at %dpx: %v", g.Codepoint, canvasSize, err)
	}

	return r.RenderFallbackGlyph(g, canvasSize)
}

// RenderMenuGlyph renders a fixed 16x16 glyph for a menu item. The font
// size is a fixed constant matched to the surrounding menu text, not
// derived from the canvas. Resolution tiers are tried strictly in
// order: the cached icon font, the exact FontAwesomeFamily host font,
// then each alternate family name. A tier fails when the font cannot be
// instantiated or cannot shape the codepoint.
//
// Unlike the tray icon path there is no shape fallback here: this path
// is only reached when LoadIconFont already failed, and an unrenderable
// menu item must surface to the caller.
func (r *Resolver) RenderMenuGlyph(g Glyph) (*image.RGBA, error) {
	tiers := []func() *sfnt.Font{
		func() *sfnt.Font { return r.LoadIconFont() },
		func() *sfnt.Font { return r.locate(FontAwesomeFamily) },
	}
	for _, name := range alternateFamilies {
		name := name
		tiers = append(tiers, func() *sfnt.Font { return r.locate(name) })
	}

	for _, tier := range tiers {
		f := tier()
		if f == nil || !hasGlyph(f, g.Codepoint) {
			continue
		}
		img, err := drawGlyph(f, g, common.MenuGlyphFontSize, common.MenuGlyphSize)
		if err != nil {
			common.LogWarn("icon font: menu glyph %U: %v", g.Codepoint, err)
			continue
		}
		return img, nil
	}

	return nil, fmt.Errorf("menu glyph %U: %w", g.Codepoint, common.ErrGlyphUnavailable)
}

// drawGlyph rasterizes a single codepoint centered on a transparent
// square canvas.
func drawGlyph(f *sfnt.Font, g Glyph, fontSize float64, canvas int) (*image.RGBA, error) {
	face, err := opentype.NewFace(f, faceOpts(fontSize))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, canvas, canvas))
	s := string(g.Codepoint)

	bounds, _ := font.BoundString(face, s)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y

	// Center by the glyph's ink box, not its advance, so asymmetric
	// glyphs sit visually centered.
	dot := fixed.Point26_6{
		X: (fixed.I(canvas)-w)/2 - bounds.Min.X,
		Y: (fixed.I(canvas)-h)/2 - bounds.Min.Y,
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(g.color()),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
	return img, nil
}

// EncodePNG serializes a rendered icon to PNG bytes for tray hosts that
// consume encoded images.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
