package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/vessel/pkg/graphics"
)

type lengthKind uint8

const (
	lengthFixed lengthKind = iota
	lengthFlexible
)

// Length is a widget's sizing preference along one axis: either a Fixed
// extent in logical pixels or a Flexible weight that shares leftover space.
type Length struct {
	kind  lengthKind
	value float64
}

// Fixed returns a fixed length.
func Fixed(v float64) Length {
	return Length{kind: lengthFixed, value: v}
}

// Flexible returns a flexible length with the given weight.
// Non-positive weights are treated as 1.
func Flexible(weight float64) Length {
	if weight <= 0 {
		weight = 1
	}
	return Length{kind: lengthFlexible, value: weight}
}

// IsFixed reports whether l is a Fixed length.
func (l Length) IsFixed() bool { return l.kind == lengthFixed }

// IsFlexible reports whether l is a Flexible weight.
func (l Length) IsFlexible() bool { return l.kind == lengthFlexible }

// Value returns the fixed extent or the flex weight.
func (l Length) Value() float64 { return l.value }

// Resolve returns the concrete extent within [min, max]: fixed lengths are
// clamped, flexible ones take max (or min when max is unbounded).
func (l Length) Resolve(min, max float64) float64 {
	if l.IsFixed() {
		return clampf(l.value, min, max)
	}
	if math.IsInf(max, 1) {
		return min
	}
	return max
}

func (l Length) String() string {
	if l.IsFlexible() {
		return fmt.Sprintf("Flexible(%g)", l.value)
	}
	return fmt.Sprintf("Fixed(%g)", l.value)
}

// WidgetSize is a sizing preference per axis.
type WidgetSize struct {
	Width  Length
	Height Length
}

// FixedSize returns a hint fixed on both axes.
func FixedSize(width, height float64) WidgetSize {
	return WidgetSize{Width: Fixed(width), Height: Fixed(height)}
}

// FlexibleSize returns a hint flexible on both axes.
func FlexibleSize(weight float64) WidgetSize {
	return WidgetSize{Width: Flexible(weight), Height: Flexible(weight)}
}

// FromSize returns a fixed hint equal to s.
func FromSize(s graphics.Size) WidgetSize {
	return FixedSize(s.Width, s.Height)
}

// Along returns the preference on axis.
func (w WidgetSize) Along(axis Axis) Length {
	if axis == Horizontal {
		return w.Width
	}
	return w.Height
}

// Resolve picks a concrete size inside c.
func (w WidgetSize) Resolve(c Constraints) graphics.Size {
	return graphics.Size{
		Width:  w.Width.Resolve(c.Min.Width, c.Max.Width),
		Height: w.Height.Resolve(c.Min.Height, c.Max.Height),
	}
}
