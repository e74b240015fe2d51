package iconfont

import (
	"image"
	"testing"
	"testing/fstest"

	"volumelock/common"
)

// imgAlpha collects the alpha channel of every pixel.
func imgAlpha(img *image.RGBA) []uint8 {
	var out []uint8
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			out = append(out, uint8(a>>8))
		}
	}
	return out
}

func hasInk(alphas []uint8) bool {
	for _, a := range alphas {
		if a > 0 {
			return true
		}
	}
	return false
}

func TestRenderFallbackGlyph_NeverFails(t *testing.T) {
	r := NewResolver(fstest.MapFS{}, emptyLocator())

	tests := []struct {
		name      string
		codepoint rune
	}{
		{"circle", common.GlyphCircle},
		{"pause bars", common.GlyphPause},
		{"mute bars", common.GlyphVolumeMute},
		{"play triangle", common.GlyphPlay},
		{"volume triangle", common.GlyphVolumeHigh},
		{"unmapped codepoint", common.GlyphGear},
		{"zero codepoint", 0},
		{"max codepoint", 0x10FFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, size := range []int{4, 16, 32, 64} {
				img := r.RenderFallbackGlyph(Glyph{Codepoint: tt.codepoint}, size)
				if img == nil {
					t.Fatalf("RenderFallbackGlyph(size=%d) = nil", size)
				}
				b := img.Bounds()
				if b.Dx() != size || b.Dy() != size {
					t.Errorf("canvas = %dx%d, want %dx%d", b.Dx(), b.Dy(), size, size)
				}
				if !hasInk(imgAlpha(img)) {
					t.Errorf("shape at size %d has no visible pixels", size)
				}
			}
		})
	}
}

func TestRenderFallbackGlyph_InvalidCanvas(t *testing.T) {
	r := NewResolver(fstest.MapFS{}, emptyLocator())
	for _, size := range []int{0, -8} {
		if img := r.RenderFallbackGlyph(Glyph{Codepoint: common.GlyphLock}, size); img != nil {
			t.Errorf("RenderFallbackGlyph(size=%d) = %v, want nil", size, img)
		}
	}
}

func TestRenderFallbackGlyph_ShapesDiffer(t *testing.T) {
	r := NewResolver(fstest.MapFS{}, emptyLocator())
	const size = 32

	circle := imgAlpha(r.RenderFallbackGlyph(Glyph{Codepoint: common.GlyphCircle}, size))
	bars := imgAlpha(r.RenderFallbackGlyph(Glyph{Codepoint: common.GlyphPause}, size))
	square := imgAlpha(r.RenderFallbackGlyph(Glyph{Codepoint: common.GlyphGear}, size))

	if equalAlphas(circle, bars) {
		t.Error("circle and bars render identically")
	}
	if equalAlphas(circle, square) {
		t.Error("circle and square render identically")
	}
	if equalAlphas(bars, square) {
		t.Error("bars and square render identically")
	}
}

func equalAlphas(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
