package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/vessel/pkg/graphics"
)

// Constraints bounds the size a widget may choose.
type Constraints struct {
	Min graphics.Size
	Max graphics.Size
}

// Tight returns constraints that allow exactly size.
func Tight(size graphics.Size) Constraints {
	return Constraints{Min: size, Max: size}
}

// Loose returns constraints from zero up to size.
func Loose(size graphics.Size) Constraints {
	return Constraints{Max: size}
}

// Unbounded returns constraints with infinite maximum on both axes.
// Only measuring leaves and scrollable containers should receive these.
func Unbounded() Constraints {
	return Constraints{Max: graphics.Size{Width: math.Inf(1), Height: math.Inf(1)}}
}

// IsTight reports whether min equals max on both axes.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// HasBoundedWidth reports whether the maximum width is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.Max.Width, 1)
}

// HasBoundedHeight reports whether the maximum height is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.Max.Height, 1)
}

// Bounded reports whether the constraints are finite along axis.
func (c Constraints) Bounded(axis Axis) bool {
	if axis == Horizontal {
		return c.HasBoundedWidth()
	}
	return c.HasBoundedHeight()
}

// Constrain clamps size into [Min, Max].
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clampf(size.Width, c.Min.Width, c.Max.Width),
		Height: clampf(size.Height, c.Min.Height, c.Max.Height),
	}
}

// Loosen drops the minimum size.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

// Deflate shrinks both bounds by the padding, never below zero.
func (c Constraints) Deflate(p Padding) Constraints {
	h, v := p.Horizontal(), p.Vertical()
	return Constraints{
		Min: graphics.Size{
			Width:  math.Max(0, c.Min.Width-h),
			Height: math.Max(0, c.Min.Height-v),
		},
		Max: graphics.Size{
			Width:  math.Max(0, c.Max.Width-h),
			Height: math.Max(0, c.Max.Height-v),
		},
	}
}

// WithMax returns a copy with the maximum replaced along axis.
func (c Constraints) WithMax(axis Axis, value float64) Constraints {
	out := c
	if axis == Horizontal {
		out.Max.Width = value
		out.Min.Width = math.Min(out.Min.Width, value)
	} else {
		out.Max.Height = value
		out.Min.Height = math.Min(out.Min.Height, value)
	}
	return out
}

// TightOn returns a copy that is tight at value along axis.
func (c Constraints) TightOn(axis Axis, value float64) Constraints {
	out := c
	if axis == Horizontal {
		out.Min.Width, out.Max.Width = value, value
	} else {
		out.Min.Height, out.Max.Height = value, value
	}
	return out
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(w: %g..%g, h: %g..%g)", c.Min.Width, c.Max.Width, c.Min.Height, c.Max.Height)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
