package event

import (
	"testing"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/google/go-cmp/cmp"
)

func TestTranslated(t *testing.T) {
	m := Mouse{Kind: MousePress, Position: graphics.Offset{X: 30, Y: 40}}
	got := m.Translated(graphics.Offset{X: 10, Y: 15})
	pos, ok := got.Location()
	if !ok || pos != (graphics.Offset{X: 20, Y: 25}) {
		t.Errorf("translated = %v (%v), want (20,25)", pos, ok)
	}
	if m.Position.X != 30 {
		t.Error("Translated must not modify the receiver")
	}

	k := Keyboard{Key: "a", Pressed: true}
	if k.Translated(graphics.Offset{X: 5}) != WidgetEvent(k) {
		t.Error("keyboard events carry no position")
	}
	if _, ok := (Mouse{Kind: MouseLeave}).Location(); ok {
		t.Error("leave has no position")
	}
}

func TestIsPress(t *testing.T) {
	cases := []struct {
		ev   WidgetEvent
		want bool
	}{
		{Mouse{Kind: MousePress}, true},
		{Mouse{Kind: MouseRelease}, false},
		{Touch{Phase: TouchStarted}, true},
		{Touch{Phase: TouchEnded}, false},
		{Keyboard{Pressed: true}, false},
	}
	for _, tc := range cases {
		if got := IsPress(tc.ev); got != tc.want {
			t.Errorf("IsPress(%#v) = %v, want %v", tc.ev, got, tc.want)
		}
	}
}

func TestCxMappers(t *testing.T) {
	cx := NewCx()
	cx.Emit("outer")
	cx.PushMapper(func(m any) any { return "a:" + m.(string) })
	cx.PushMapper(func(m any) any { return "b:" + m.(string) })
	cx.Emit("x")
	cx.PopMapper()
	cx.PushMapper(func(any) any { return nil })
	cx.Emit("dropped")
	cx.PopMapper()
	cx.PopMapper()

	want := []any{"outer", "a:b:x"}
	if diff := cmp.Diff(want, cx.DrainMessages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
	if len(cx.Messages()) != 0 {
		t.Error("drain should clear messages")
	}
}

func TestCxCommandsAndCursor(t *testing.T) {
	cx := NewCx()
	if _, ok := cx.Cursor(); ok {
		t.Error("no cursor requested yet")
	}
	cx.Command(DragResize{Direction: ResizeEast})
	cx.Command(SetTitle{Title: "x"})
	cx.SetCursor(CursorPointer)
	cx.SetCursor(ResizeEast.Cursor())

	if icon, ok := cx.Cursor(); !ok || icon != CursorResizeEW {
		t.Errorf("cursor = %v, want %v", icon, CursorResizeEW)
	}
	cmds := cx.DrainCommands()
	if len(cmds) != 2 {
		t.Fatalf("commands = %d, want 2", len(cmds))
	}
	if cmds[0] != WindowCommand(DragResize{Direction: ResizeEast}) {
		t.Errorf("cmds[0] = %#v", cmds[0])
	}
	cx.Reset()
	if _, ok := cx.Cursor(); ok {
		t.Error("Reset should clear the cursor request")
	}
}

func TestStatusOr(t *testing.T) {
	if Ignored.Or(Ignored) != Ignored || Ignored.Or(Captured) != Captured {
		t.Error("Or mismatch")
	}
}
