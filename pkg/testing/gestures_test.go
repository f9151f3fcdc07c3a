package testing

import (
	"testing"

	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/testing/internal/testbed"
	"github.com/go-drift/vessel/pkg/widget"
)

func TestTap_Counter(t *testing.T) {
	tester, c := newCounter(t)

	if err := tester.Tap(ByText("+")); err != nil {
		t.Fatal(err)
	}
	if c.Count != 1 {
		t.Errorf("expected count 1, got %d", c.Count)
	}
	if !tester.Find(ByText("count 1")).Exists() {
		t.Error("expected rebuilt text 'count 1'")
	}
}

func TestTap_CounterMultiple(t *testing.T) {
	tester, c := newCounter(t)

	for range 3 {
		if err := tester.Tap(ByText("+")); err != nil {
			t.Fatal(err)
		}
	}
	if err := tester.Tap(ByText("-")); err != nil {
		t.Fatal(err)
	}
	if c.Count != 2 {
		t.Errorf("expected count 2, got %d", c.Count)
	}
	if len(c.Updates) != 4 {
		t.Errorf("expected 4 updates, got %d", len(c.Updates))
	}
}

func TestTap_NoMatch(t *testing.T) {
	tester, _ := newCounter(t)

	if err := tester.Tap(ByText("nothing")); err == nil {
		t.Error("expected error for unmatched finder")
	}
}

func TestTapAt_Empty(t *testing.T) {
	tester, c := newCounter(t)

	if err := tester.TapAt(graphics.Offset{X: 400, Y: 590}); err != nil {
		t.Fatal(err)
	}
	if len(c.Updates) != 0 {
		t.Errorf("expected no messages, got %v", c.Updates)
	}
}

func TestDragOffButtonCancels(t *testing.T) {
	tester, c := newCounter(t)

	start, err := tester.center("drag", ByText("+"))
	if err != nil {
		t.Fatal(err)
	}
	if err := tester.DragFrom(start, graphics.Offset{Y: 200}); err != nil {
		t.Fatal(err)
	}
	if c.Count != 0 {
		t.Errorf("expected release outside the button to emit nothing, got count %d", c.Count)
	}
}

func TestHover_SetsPointerCursor(t *testing.T) {
	tester, _ := newCounter(t)

	if err := tester.Hover(ByText("+")); err != nil {
		t.Fatal(err)
	}
	button := WidgetAs[*widget.Button](tester.Find(ByPredicate(func(w widget.Widget) bool {
		b, ok := w.(*widget.Button)
		return ok && b.Message == testbed.Msg{Kind: testbed.Increment}
	})))
	if !button.Hovered() {
		t.Error("expected increment button hovered")
	}
	if got := tester.Window().Cursor(); got != event.CursorPointer {
		t.Errorf("expected pointer cursor, got %v", got)
	}

	if err := tester.Leave(); err != nil {
		t.Fatal(err)
	}
	if button.Hovered() {
		t.Error("expected hover cleared after leaving the window")
	}
}

func TestWindowButtons(t *testing.T) {
	tester, _ := newCounter(t)
	buttons := tester.Find(ByType[*widget.WindowButton]())

	tap := func(i int) {
		t.Helper()
		r, ok := tester.Bounds(buttons.At(i))
		if !ok {
			t.Fatalf("no bounds for window button %d", i)
		}
		if err := tester.TapAt(r.Center()); err != nil {
			t.Fatal(err)
		}
	}

	tap(1)
	if !tester.Window().IsMaximized() {
		t.Error("expected maximize to toggle the host window")
	}
	if !WidgetAs[*widget.Window](tester.Find(ByType[*widget.Window]())).Maximized {
		t.Error("expected the window widget to follow the host")
	}

	tap(0)
	if !tester.Window().Minimized() {
		t.Error("expected minimize")
	}

	tap(2)
	if !tester.Window().Closed() {
		t.Error("expected close")
	}
	if !tester.Driver().Closed() {
		t.Error("expected driver closed")
	}
}

func TestHeaderPressStartsMove(t *testing.T) {
	tester, _ := newCounter(t)

	if err := tester.PressAt(graphics.Offset{X: 100, Y: 16}); err != nil {
		t.Fatal(err)
	}
	if got := tester.Window().Drags(); got != 1 {
		t.Errorf("expected one window drag, got %d", got)
	}
}

func TestEdgePressStartsResize(t *testing.T) {
	tester, _ := newCounter(t)

	if err := tester.MoveTo(graphics.Offset{X: 798, Y: 300}); err != nil {
		t.Fatal(err)
	}
	if got := tester.Window().Cursor(); got != event.ResizeEast.Cursor() {
		t.Errorf("expected resize cursor, got %v", got)
	}
	if err := tester.PressAt(graphics.Offset{X: 798, Y: 300}); err != nil {
		t.Fatal(err)
	}
	resizes := tester.Window().Resizes()
	if len(resizes) != 1 || resizes[0] != event.ResizeEast {
		t.Errorf("expected one east resize, got %v", resizes)
	}
}
