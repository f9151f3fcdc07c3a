package layout

import (
	"math"

	"github.com/go-drift/vessel/pkg/graphics"
)

// Padding is inner spacing on each side.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// PaddingAll returns equal padding on every side.
func PaddingAll(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// PaddingSymmetric returns horizontal and vertical padding.
func PaddingSymmetric(horizontal, vertical float64) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// TopLeft returns the offset of the content box.
func (p Padding) TopLeft() graphics.Offset {
	return graphics.Offset{X: p.Left, Y: p.Top}
}

// Fit clamps p so that it never exceeds the slack between available and
// content. When a pair of sides does not fit, both are scaled down
// proportionally so their sum equals the slack.
func (p Padding) Fit(available, content graphics.Size) Padding {
	slackX := math.Max(0, available.Width-content.Width)
	slackY := math.Max(0, available.Height-content.Height)
	p.Left, p.Right = fitPair(p.Left, p.Right, slackX)
	p.Top, p.Bottom = fitPair(p.Top, p.Bottom, slackY)
	return p
}

func fitPair(a, b, slack float64) (float64, float64) {
	a, b = math.Max(0, a), math.Max(0, b)
	sum := a + b
	if sum <= slack || sum == 0 {
		return a, b
	}
	scale := slack / sum
	return a * scale, b * scale
}
