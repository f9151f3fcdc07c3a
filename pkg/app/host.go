package app

import (
	"context"

	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/render"
)

// Window is the host window the driver controls. Sizes are logical pixels.
type Window interface {
	Size() graphics.Size
	ScaleFactor() float64
	SetCursorIcon(icon event.CursorIcon)
	// DragWindow starts an interactive move with the pressed pointer.
	DragWindow()
	// DragResize starts an interactive resize from edge.
	DragResize(edge event.ResizeDirection)
	SetMinimized(minimized bool)
	SetMaximized(maximized bool)
	IsMaximized() bool
	SetTitle(title string)
	RequestRedraw()
	Close()
}

// Renderer presents frames.
type Renderer interface {
	Render(ctx context.Context, frame render.Frame) error
}

// PlatformEvent is delivered by the host to HandleEvent.
type PlatformEvent interface {
	platformEvent()
}

// Resized reports a new logical window size.
type Resized struct {
	Size graphics.Size
}

// ScaleChanged reports a new device scale factor.
type ScaleChanged struct {
	Scale float64
}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// RedrawRequested asks for a frame.
type RedrawRequested struct{}

// Input carries a pointer, touch or keyboard event in window coordinates.
type Input struct {
	Event event.WidgetEvent
}

func (Resized) platformEvent()         {}
func (ScaleChanged) platformEvent()    {}
func (CloseRequested) platformEvent()  {}
func (RedrawRequested) platformEvent() {}
func (Input) platformEvent()           {}
