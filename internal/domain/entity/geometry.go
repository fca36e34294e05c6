// Package entity defines domain value types for the checkout overlay.
package entity

import "fmt"

// Size is a width/height pair in logical pixels.
type Size struct {
	W, H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Longest returns the larger of the two dimensions.
func (s Size) Longest() int {
	return max(s.W, s.H)
}

// Shortest returns the smaller of the two dimensions.
func (s Size) Shortest() int {
	return min(s.W, s.H)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect represents a screen position and size.
type Rect struct {
	X, Y int // Top-left position relative to the viewport
	W, H int // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ScaledAround scales r around its center. Scales at or below zero, and 1,
// return r unchanged.
func (r Rect) ScaledAround(scale float64) Rect {
	if scale <= 0 || scale == 1 {
		return r
	}
	w := int(float64(r.W) * scale)
	h := int(float64(r.H) * scale)
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// Insets returns the distances from each viewport edge to the rectangle.
// Used by backends that keep the native view full-screen and shrink it with margins.
func (r Rect) Insets(viewport Size) (left, top, right, bottom int) {
	left = max(r.X, 0)
	top = max(r.Y, 0)
	right = max(viewport.W-r.Right(), 0)
	bottom = max(viewport.H-r.Bottom(), 0)
	return left, top, right, bottom
}

// Orientation classifies a viewport.
type Orientation int

const (
	OrientationPortrait Orientation = iota
	OrientationLandscape
)

func (o Orientation) String() string {
	switch o {
	case OrientationLandscape:
		return "landscape"
	case OrientationPortrait:
		return "portrait"
	default:
		return "unknown"
	}
}

// Aspect ratios (width / height) used for the modal.
const (
	AspectWide = 16.0 / 9.0
	AspectTall = 9.0 / 16.0
)

// Geometry is the computed placement of the modal and its close control for one viewport.
// It is a value: recompute it, never patch it.
type Geometry struct {
	Viewport    Size
	Orientation Orientation
	Tall        bool    // landscape viewport treated as a tall device
	AspectRatio float64 // width / height of Modal
	Scale       float64 // layout scale relative to the reference short side

	MaxWidth  int
	MaxHeight int

	Modal Rect // container panel and surface rectangle
	Close Rect // close control rectangle

	CloseFootprint int // vertical space reserved above the modal for the close control
}

// Empty reports whether the geometry leaves no room for the modal.
func (g Geometry) Empty() bool {
	return g.Modal.Empty()
}

// Scrim returns the rectangle covering the whole viewport.
func (g Geometry) Scrim() Rect {
	return Rect{W: g.Viewport.W, H: g.Viewport.H}
}
