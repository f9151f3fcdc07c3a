package event

import "fmt"

// WindowCommand is an internal chrome request applied to the host window
// after dispatch.
type WindowCommand interface {
	windowCommand()
}

// DragMove starts an interactive window move.
type DragMove struct{}

// DragResize starts an interactive resize from Direction.
type DragResize struct {
	Direction ResizeDirection
}

// Minimize minimizes the window.
type Minimize struct{}

// Maximize toggles the maximized state.
type Maximize struct{}

// Close requests the window to close.
type Close struct{}

// SetTitle changes the window title.
type SetTitle struct {
	Title string
}

func (DragMove) windowCommand()   {}
func (DragResize) windowCommand() {}
func (Minimize) windowCommand()   {}
func (Maximize) windowCommand()   {}
func (Close) windowCommand()      {}
func (SetTitle) windowCommand()   {}

// ResizeDirection names a window edge or corner.
type ResizeDirection uint8

const (
	ResizeNorth ResizeDirection = iota
	ResizeNorthEast
	ResizeEast
	ResizeSouthEast
	ResizeSouth
	ResizeSouthWest
	ResizeWest
	ResizeNorthWest
)

var directionNames = [...]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

func (d ResizeDirection) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("ResizeDirection(%d)", d)
}

// Cursor returns the resize cursor matching d.
func (d ResizeDirection) Cursor() CursorIcon {
	switch d {
	case ResizeNorth, ResizeSouth:
		return CursorResizeNS
	case ResizeEast, ResizeWest:
		return CursorResizeEW
	case ResizeNorthEast, ResizeSouthWest:
		return CursorResizeNESW
	default:
		return CursorResizeNWSE
	}
}

// CursorIcon is the cursor shape requested by widgets.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorPointer
	CursorText
	CursorGrab
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
)

func (c CursorIcon) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorPointer:
		return "pointer"
	case CursorText:
		return "text"
	case CursorGrab:
		return "grab"
	case CursorResizeNS:
		return "ns-resize"
	case CursorResizeEW:
		return "ew-resize"
	case CursorResizeNESW:
		return "nesw-resize"
	case CursorResizeNWSE:
		return "nwse-resize"
	default:
		return fmt.Sprintf("CursorIcon(%d)", c)
	}
}
