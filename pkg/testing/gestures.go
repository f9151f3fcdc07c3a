package testing

import (
	"github.com/go-drift/vessel/pkg/app"
	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
)

func (t *AppTester[M]) mouse(kind event.MouseKind, pos graphics.Offset, clicks int) {
	t.driver.HandleEvent(app.Input{Event: event.Mouse{
		Kind:     kind,
		Button:   event.ButtonLeft,
		Position: pos,
		Clicks:   clicks,
	}})
}

// Tap clicks the center of the first widget matched by finder.
func (t *AppTester[M]) Tap(finder Finder) error {
	pos, err := t.center("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(pos)
}

// TapAt moves to pos, presses and releases, then pumps a frame.
func (t *AppTester[M]) TapAt(pos graphics.Offset) error {
	t.mouse(event.MouseMove, pos, 0)
	t.mouse(event.MousePress, pos, 1)
	t.mouse(event.MouseRelease, pos, 1)
	return t.Pump()
}

// DoubleTapAt sends two clicks at pos, the second counted as a double click.
func (t *AppTester[M]) DoubleTapAt(pos graphics.Offset) error {
	t.mouse(event.MouseMove, pos, 0)
	for clicks := 1; clicks <= 2; clicks++ {
		t.mouse(event.MousePress, pos, clicks)
		t.mouse(event.MouseRelease, pos, clicks)
	}
	return t.Pump()
}

// PressAt presses at pos without releasing.
func (t *AppTester[M]) PressAt(pos graphics.Offset) error {
	t.mouse(event.MouseMove, pos, 0)
	t.mouse(event.MousePress, pos, 1)
	return t.Pump()
}

// MoveTo moves the pointer to pos and pumps a frame.
func (t *AppTester[M]) MoveTo(pos graphics.Offset) error {
	t.mouse(event.MouseMove, pos, 0)
	return t.Pump()
}

// Hover moves the pointer over the first widget matched by finder.
func (t *AppTester[M]) Hover(finder Finder) error {
	pos, err := t.center("Hover", finder)
	if err != nil {
		return err
	}
	return t.MoveTo(pos)
}

// Leave reports that the pointer left the window.
func (t *AppTester[M]) Leave() error {
	t.mouse(event.MouseLeave, graphics.Offset{}, 0)
	return t.Pump()
}

// Drag presses on the first widget matched by finder, moves by delta and
// releases.
func (t *AppTester[M]) Drag(finder Finder, delta graphics.Offset) error {
	start, err := t.center("Drag", finder)
	if err != nil {
		return err
	}
	return t.DragFrom(start, delta)
}

// DragFrom presses at start, moves by delta and releases.
func (t *AppTester[M]) DragFrom(start, delta graphics.Offset) error {
	end := start.Add(delta)
	t.mouse(event.MouseMove, start, 0)
	t.mouse(event.MousePress, start, 1)
	t.mouse(event.MouseMove, end, 0)
	t.mouse(event.MouseRelease, end, 1)
	return t.Pump()
}

// ScrollAt sends a wheel event at pos.
func (t *AppTester[M]) ScrollAt(pos, delta graphics.Offset) error {
	t.driver.HandleEvent(app.Input{Event: event.Mouse{Kind: event.MouseScroll, Position: pos, Delta: delta}})
	return t.Pump()
}
