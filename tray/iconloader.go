package tray

import (
	"image/color"

	"volumelock/common"
	"volumelock/iconfont"
)

// lockedColor tints the icon when volumes are pinned.
var lockedColor = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}

// GlyphIconLoader renders tray icon images from the icon font.
type GlyphIconLoader struct {
	resolver *iconfont.Resolver
}

// NewGlyphIconLoader returns a loader rendering through the given
// resolver.
func NewGlyphIconLoader(resolver *iconfont.Resolver) *GlyphIconLoader {
	return &GlyphIconLoader{resolver: resolver}
}

// TryLoadIcon renders the startup icon and applies it to the host.
// Returns false when no image could be produced or applied.
func (l *GlyphIconLoader) TryLoadIcon(h Host) bool {
	img := l.resolver.RenderGlyph(iconfont.Glyph{Codepoint: common.GlyphVolumeHigh}, common.TrayIconSize)
	if img == nil {
		return false
	}
	if err := h.SetIcon(img); err != nil {
		common.LogError("tray: applying startup icon: %v", err)
		return false
	}
	return true
}

// UpdateIconState swaps the icon between the locked and unlocked
// glyphs. Failures are logged and absorbed.
func (l *GlyphIconLoader) UpdateIconState(h Host, paused bool) {
	glyph := iconfont.Glyph{Codepoint: common.GlyphLock, Color: lockedColor}
	if paused {
		glyph = iconfont.Glyph{Codepoint: common.GlyphLockOpen}
	}

	img := l.resolver.RenderGlyph(glyph, common.TrayIconSize)
	if img == nil {
		common.LogWarn("tray: icon state update produced no image")
		return
	}
	if err := h.SetIcon(img); err != nil {
		common.LogWarn("tray: applying icon state: %v", err)
	}
}
