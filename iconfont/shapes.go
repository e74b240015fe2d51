package iconfont

import (
	"image"
	"image/color"

	"volumelock/common"
)

type fallbackShape int

const (
	shapeSquare fallbackShape = iota
	shapeCircle
	shapeBars
	shapeTriangle
)

// fallbackShapes maps known codepoints to a recognizable geometric
// stand-in. Anything not listed renders as a square.
var fallbackShapes = map[rune]fallbackShape{
	common.GlyphCircle:     shapeCircle,
	common.GlyphPause:      shapeBars,
	common.GlyphVolumeMute: shapeBars,
	common.GlyphPlay:       shapeTriangle,
	common.GlyphVolumeHigh: shapeTriangle,
}

// RenderFallbackGlyph draws a simple geometric shape in place of the
// glyph when no usable font is available. It never fails; the result is
// nil only when canvasSize is not positive.
func (r *Resolver) RenderFallbackGlyph(g Glyph, canvasSize int) *image.RGBA {
	if canvasSize <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	c := g.color()

	// Inset the shape so it reads like a glyph with side bearings.
	inset := canvasSize / 8
	if inset < 1 {
		inset = 1
	}

	switch fallbackShapes[g.Codepoint] {
	case shapeCircle:
		radius := float64(canvasSize)/2 - float64(inset)
		cx := float64(canvasSize) / 2
		fillCircleAA(img, cx, cx, radius, c)
	case shapeBars:
		barW := (canvasSize - 2*inset) / 3
		if barW < 1 {
			barW = 1
		}
		fillRect(img, inset, inset, barW, canvasSize-2*inset, c)
		fillRect(img, canvasSize-inset-barW, inset, barW, canvasSize-2*inset, c)
	case shapeTriangle:
		fillTriangleRight(img, inset, inset, canvasSize-2*inset, c)
	default:
		fillRect(img, inset, inset, canvasSize-2*inset, canvasSize-2*inset, c)
	}

	return img
}

// fillCircleAA draws a filled circle with edge anti-aliasing by
// sampling the distance from each pixel center to the circle edge.
func fillCircleAA(img *image.RGBA, cx, cy, radius float64, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := dx*dx + dy*dy
			edge := radius * radius
			if dist <= edge {
				inner := (radius - 1) * (radius - 1)
				if dist <= inner {
					img.Set(x, y, c)
				} else {
					blendPixel(img, x, y, c, coverage(dist, inner, edge))
				}
			}
		}
	}
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			img.Set(xx, yy, c)
		}
	}
}

// fillTriangleRight draws a filled right-pointing triangle inscribed in
// a size-by-size box at (x, y), scanline by scanline.
func fillTriangleRight(img *image.RGBA, x, y, size int, c color.Color) {
	if size < 1 {
		return
	}
	half := float64(size) / 2
	for row := 0; row < size; row++ {
		// Width of the scanline shrinks linearly toward the apex.
		dist := half - absFloat(float64(row)+0.5-half)
		width := int(dist * 2)
		if width < 1 {
			width = 1
		}
		for col := 0; col < width; col++ {
			img.Set(x+col, y+row, c)
		}
	}
}

// coverage maps a squared distance within [inner, outer] to an alpha
// fraction in [0, 1].
func coverage(dist, inner, outer float64) float64 {
	if outer <= inner {
		return 1
	}
	f := 1 - (dist-inner)/(outer-inner)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func blendPixel(img *image.RGBA, x, y int, c color.Color, alpha float64) {
	r, g, b, a := c.RGBA()
	img.Set(x, y, color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(float64(a>>8) * alpha),
	})
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
