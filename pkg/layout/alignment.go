package layout

import (
	"fmt"

	"github.com/go-drift/vessel/pkg/graphics"
)

// Axis selects a layout direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Main returns the component of s along a.
func (a Axis) Main(s graphics.Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// CrossOf returns the component of s across a.
func (a Axis) CrossOf(s graphics.Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// Size builds a size from main and cross extents.
func (a Axis) Size(main, cross float64) graphics.Size {
	if a == Horizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

// Offset builds an offset from main and cross positions.
func (a Axis) Offset(main, cross float64) graphics.Offset {
	if a == Horizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

// Align positions a child along one axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	// AlignStretch makes the child fill the axis.
	AlignStretch
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Place returns the start position of a child of extent child in a box of
// extent container.
func (a Align) Place(container, child float64) float64 {
	switch a {
	case AlignCenter:
		return (container - child) / 2
	case AlignEnd:
		return container - child
	default:
		return 0
	}
}

// Alignment positions a single child inside a box.
type Alignment struct {
	Horizontal Align
	Vertical   Align
}

// Center aligns on both axes.
var Center = Alignment{Horizontal: AlignCenter, Vertical: AlignCenter}

// TopLeft aligns to the start of both axes.
var TopLeft = Alignment{}

// Position returns the child's offset inside container.
func (a Alignment) Position(container, child graphics.Size) graphics.Offset {
	return graphics.Offset{
		X: a.Horizontal.Place(container.Width, child.Width),
		Y: a.Vertical.Place(container.Height, child.Height),
	}
}
