// Package iconfont resolves and renders the private icon font used for
// the tray icon and menu glyphs, so neither depends on any font being
// installed on the host machine.
//
// The resolver owns all cached font state for the process: the embedded
// icon font payload is located by name among the packaged assets,
// parsed once under a lock, and reused for every subsequent render.
// When a tier of the resolution chain fails the next one is tried:
//
//  1. the embedded icon font payload
//  2. an installed "Font Awesome 6 Free Solid" host font
//  3. a list of alternate Font Awesome family names, in order
//  4. a procedurally drawn shape (tray icon path only)
//
// Every public entry point degrades instead of propagating failures,
// with one exception: RenderMenuGlyph reports an error when no tier can
// render the glyph, because an unrenderable menu item is a
// caller-visible defect.
package iconfont
