package widget

import (
	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/render"
)

// Button is a container that emits Message when pressed and released
// inside its bounds.
type Button struct {
	Container
	Message    any
	HoverColor graphics.Color
	PressColor graphics.Color

	hovered bool
	pressed bool
	size    graphics.Size
}

// Layout implements Widget.
func (b *Button) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	b.size = b.Container.Layout(cx, c)
	return b.size
}

// Hovered reports the hover state.
func (b *Button) Hovered() bool { return b.hovered }

// Pressed reports whether a press is in progress.
func (b *Button) Pressed() bool { return b.pressed }

// Event implements Widget.
func (b *Button) Event(ev event.WidgetEvent, cx *event.Cx) event.Status {
	pos, ok := ev.Location()
	if !ok {
		return event.Ignored
	}
	inside := graphics.RectFromOffsetSize(graphics.Offset{}, b.size).Contains(pos)
	switch {
	case event.IsPress(ev):
		if !inside {
			return event.Ignored
		}
		b.pressed = true
		return event.Captured
	case isRelease(ev):
		if !b.pressed {
			return event.Ignored
		}
		b.pressed = false
		if inside && b.Message != nil {
			cx.Emit(b.Message)
		}
		return event.Captured
	case event.IsMove(ev):
		if inside {
			cx.SetCursor(event.CursorPointer)
		}
		if b.pressed {
			return event.Captured
		}
	}
	return event.Ignored
}

// SetHover implements Widget.
func (b *Button) SetHover(hovered bool) event.Status {
	b.hovered = hovered
	if !hovered {
		b.pressed = false
	}
	return event.Captured
}

// Draw implements Widget.
func (b *Button) Draw(cx *render.Cx, size graphics.Size) {
	bg := b.Background
	switch {
	case b.pressed && b.PressColor != 0:
		bg = b.PressColor
	case b.hovered && b.HoverColor != 0:
		bg = b.HoverColor
	}
	if bg.Alpha() > 0 {
		cx.FillRRect(graphics.RRectFromRectAndRadius(graphics.RectFromOffsetSize(graphics.Offset{}, size), b.Radius), bg)
	}
}

func isRelease(ev event.WidgetEvent) bool {
	switch ev := ev.(type) {
	case event.Mouse:
		return ev.Kind == event.MouseRelease
	case event.Touch:
		return ev.Phase == event.TouchEnded
	}
	return false
}
