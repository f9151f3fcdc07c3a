// Package event defines the input events widgets receive and the context
// they report into during a dispatch pass.
package event

import "github.com/go-drift/vessel/pkg/graphics"

// WidgetEvent is an input event expressed in the receiving widget's local
// coordinates. The set of events is closed.
type WidgetEvent interface {
	// Location returns the event position and whether the event has one.
	Location() (graphics.Offset, bool)
	// Translated returns a copy moved by -offset, or the event itself if it
	// carries no position.
	Translated(offset graphics.Offset) WidgetEvent
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Keyboard is a key press or release.
type Keyboard struct {
	Key       string
	Pressed   bool
	Modifiers Modifiers
	// Text is the committed text for the key, if any.
	Text string
}

// Location implements WidgetEvent.
func (Keyboard) Location() (graphics.Offset, bool) { return graphics.Offset{}, false }

// Translated implements WidgetEvent.
func (k Keyboard) Translated(graphics.Offset) WidgetEvent { return k }

// MouseKind distinguishes mouse events.
type MouseKind uint8

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseMove
	MouseScroll
	// MouseLeave is sent when the cursor leaves the window.
	MouseLeave
)

func (k MouseKind) String() string {
	switch k {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseMove:
		return "move"
	case MouseScroll:
		return "scroll"
	case MouseLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// Mouse is a pointer event from a mouse.
type Mouse struct {
	Kind     MouseKind
	Button   MouseButton
	Position graphics.Offset
	// Delta is the scroll amount for MouseScroll.
	Delta graphics.Offset
	// Clicks counts consecutive presses, 2 for a double click.
	Clicks int
}

// Location implements WidgetEvent.
func (m Mouse) Location() (graphics.Offset, bool) { return m.Position, m.Kind != MouseLeave }

// Translated implements WidgetEvent.
func (m Mouse) Translated(offset graphics.Offset) WidgetEvent {
	m.Position = m.Position.Sub(offset)
	return m
}

// TouchPhase is the lifecycle stage of a touch point.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// Touch is a touch point event.
type Touch struct {
	Phase    TouchPhase
	ID       int64
	Position graphics.Offset
}

// Location implements WidgetEvent.
func (t Touch) Location() (graphics.Offset, bool) { return t.Position, true }

// Translated implements WidgetEvent.
func (t Touch) Translated(offset graphics.Offset) WidgetEvent {
	t.Position = t.Position.Sub(offset)
	return t
}

// IsPress reports whether ev starts a pointer interaction.
func IsPress(ev WidgetEvent) bool {
	switch ev := ev.(type) {
	case Mouse:
		return ev.Kind == MousePress
	case Touch:
		return ev.Phase == TouchStarted
	}
	return false
}

// IsMove reports whether ev is pointer motion.
func IsMove(ev WidgetEvent) bool {
	switch ev := ev.(type) {
	case Mouse:
		return ev.Kind == MouseMove
	case Touch:
		return ev.Phase == TouchMoved
	}
	return false
}
