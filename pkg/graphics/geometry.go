// Package graphics provides the geometry, color and path primitives shared by
// layout, painting and hit testing.
package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsFinite reports whether both dimensions are finite.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOffsetSize constructs a Rect at origin with the given size.
func RectFromOffsetSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// RRect is a rectangle with a uniform corner radius.
type RRect struct {
	Rect   Rect
	Radius float64
}

// RRectFromRectAndRadius creates a rounded rectangle. The radius is clamped
// to half the shorter side.
func RRectFromRectAndRadius(rect Rect, radius float64) RRect {
	limit := math.Min(rect.Width(), rect.Height()) / 2
	if radius > limit {
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}
	return RRect{Rect: rect, Radius: radius}
}

// Contains reports whether p lies inside the rounded rectangle, excluding
// the cut-off corner regions.
func (r RRect) Contains(p Offset) bool {
	if !r.Rect.Contains(p) {
		return false
	}
	if r.Radius <= epsilon {
		return true
	}
	// Nearest corner center.
	cx := clamp(p.X, r.Rect.Left+r.Radius, r.Rect.Right-r.Radius)
	cy := clamp(p.Y, r.Rect.Top+r.Radius, r.Rect.Bottom-r.Radius)
	dx, dy := p.X-cx, p.Y-cy
	return dx*dx+dy*dy <= r.Radius*r.Radius+epsilon
}

// Translate returns the rounded rectangle offset by (dx, dy).
func (r RRect) Translate(dx, dy float64) RRect {
	return RRect{Rect: r.Rect.Translate(dx, dy), Radius: r.Radius}
}

// Round snaps the rectangle edges to whole pixels.
func (r RRect) Round() RRect {
	return RRect{
		Rect: Rect{
			Left:   math.Round(r.Rect.Left),
			Top:    math.Round(r.Rect.Top),
			Right:  math.Round(r.Rect.Right),
			Bottom: math.Round(r.Rect.Bottom),
		},
		Radius: r.Radius,
	}
}

// FloatEqual returns true if two float64 values are approximately equal.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(v, hi))
}
