package widget

import (
	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/logging"
)

// Dispatcher routes window input into a tree. It owns the hover and focus
// paths and hit-tests against the bounds from the last layout.
//
// A press hit-tests and moves focus to the pressed path. Releases, drags and
// keyboard input go to the focused path without hit-testing, so a drag that
// leaves the pressed widget still ends there.
type Dispatcher struct {
	tree   *Tree
	bounds *BoundsTree
	hover  HoverState
	focus  id.Path

	// dragging is set between a press and its release.
	dragging bool
}

// NewDispatcher returns a dispatcher for t.
func NewDispatcher(t *Tree) *Dispatcher {
	return &Dispatcher{tree: t, bounds: &BoundsTree{}}
}

// SetBounds installs bounds rebuilt after a layout.
func (d *Dispatcher) SetBounds(b *BoundsTree) {
	d.bounds = b
	if !d.tree.Valid(d.focus) {
		d.focus = nil
	}
}

// Bounds returns the current bounds tree.
func (d *Dispatcher) Bounds() *BoundsTree { return d.bounds }

// Focus returns the focused path, or nil.
func (d *Dispatcher) Focus() id.Path { return d.focus }

// Hovered returns the hovered path, or nil.
func (d *Dispatcher) Hovered() id.Path { return d.hover.Path() }

// Handle routes ev, given in window coordinates.
func (d *Dispatcher) Handle(ev event.WidgetEvent, cx *event.Cx) event.Status {
	if !d.tree.Root().Valid() {
		return event.Ignored
	}
	if len(d.focus) > 0 && !d.tree.Valid(d.focus) {
		d.focus = nil
		d.dragging = false
	}

	switch e := ev.(type) {
	case event.Mouse:
		switch e.Kind {
		case event.MouseLeave:
			d.hover.Clear(d.tree)
			return event.Ignored
		case event.MouseMove:
			d.hover.Update(d.tree, d.bounds, e.Position)
			if d.dragging {
				return d.send(d.focus, ev, cx)
			}
			return d.send(d.hover.Path(), ev, cx)
		case event.MousePress:
			return d.press(e, cx)
		case event.MouseScroll:
			path, _ := d.bounds.HitTest(e.Position)
			return d.send(path, ev, cx)
		default:
			d.dragging = false
			return d.send(d.focus, ev, cx)
		}
	case event.Touch:
		if e.Phase == event.TouchStarted {
			return d.press(e, cx)
		}
		if e.Phase != event.TouchMoved {
			d.dragging = false
		}
		return d.send(d.focus, ev, cx)
	default:
		return d.send(d.focus, ev, cx)
	}
}

func (d *Dispatcher) press(ev event.WidgetEvent, cx *event.Cx) event.Status {
	pos, _ := ev.Location()
	path, ok := d.bounds.HitTest(pos)
	if !ok {
		d.focus = nil
		d.dragging = false
		return event.Ignored
	}
	d.focus = path
	d.dragging = true
	logging.Logger().Debug("focus", "path", path)
	return d.send(path, ev, cx)
}

func (d *Dispatcher) send(path id.Path, ev event.WidgetEvent, cx *event.Cx) event.Status {
	if len(path) == 0 || !d.tree.Valid(path) {
		return event.Ignored
	}
	return d.tree.Dispatch(path, ev, cx)
}
