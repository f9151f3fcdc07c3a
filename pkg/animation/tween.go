package animation

import (
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/layout"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 value of an [Animation] or a [Tick] to any value range
// or type. Use the helper constructors for common types, or supply Lerp.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at a's current value.
func (tw Tween[T]) Transform(a *Animation) T {
	return tw.Evaluate(a.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b graphics.Size, t float64) graphics.Size {
	return graphics.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// LerpColor linearly interpolates between two Color values per channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	ch := func(shift uint) uint32 {
		x := float64((a >> shift) & 0xFF)
		y := float64((b >> shift) & 0xFF)
		return uint32(uint8(LerpFloat64(x, y, t)+0.5)) << shift
	}
	return graphics.Color(ch(24) | ch(16) | ch(8) | ch(0))
}

// LerpPadding linearly interpolates between two Padding values.
func LerpPadding(a, b layout.Padding, t float64) layout.Padding {
	return layout.Padding{
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
		Left:   LerpFloat64(a.Left, b.Left, t),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) Tween[float64] {
	return Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end graphics.Offset) Tween[graphics.Offset] {
	return Tween[graphics.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenSize creates a tween for Size values.
func TweenSize(begin, end graphics.Size) Tween[graphics.Size] {
	return Tween[graphics.Size]{Begin: begin, End: end, Lerp: LerpSize}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) Tween[graphics.Color] {
	return Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}

// TweenPadding creates a tween for Padding values.
func TweenPadding(begin, end layout.Padding) Tween[layout.Padding] {
	return Tween[layout.Padding]{Begin: begin, End: end, Lerp: LerpPadding}
}
