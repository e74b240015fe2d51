// Package common provides shared constants, types, and utilities
// used across the Volume Lock application.
// This file contains the screen-geometry value types shared by the
// popup positioner and the platform tray hosts.
package common

import "fmt"

// Point is a location in virtual-screen coordinates.
type Point struct {
	X int
	Y int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in virtual-screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectAt returns the rectangle with top-left corner p and size s.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Right returns the exclusive right edge of the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge of the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// TopLeft returns the rectangle's top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether p lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely within the rectangle.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ClampInto moves the rectangle the minimal distance on each axis so it
// lies within bounds. Axes are adjusted independently; when the
// rectangle is larger than bounds on an axis, the top/left edge wins.
func (r Rect) ClampInto(bounds Rect) Rect {
	out := r
	if out.Right() > bounds.Right() {
		out.X = bounds.Right() - out.Width
	}
	if out.X < bounds.X {
		out.X = bounds.X
	}
	if out.Bottom() > bounds.Bottom() {
		out.Y = bounds.Bottom() - out.Height
	}
	if out.Y < bounds.Y {
		out.Y = bounds.Y
	}
	return out
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
