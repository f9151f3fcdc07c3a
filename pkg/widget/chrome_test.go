package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
)

type windowFixture struct {
	tree   *Tree
	disp   *Dispatcher
	window *Window
	close  id.WidgetID
	button *Button
}

func newWindowFixture(t *testing.T) *windowFixture {
	t.Helper()
	tree := newTree()
	f := &windowFixture{tree: tree}

	f.close = tree.Insert(&WindowButton{Kind: WindowClose, Diameter: 12})
	title := tree.Insert(&Text{Content: "title"})
	left := tree.Insert(&Empty{})
	header := tree.Insert(&Header{Height: 30}, left, title, f.close)

	f.button = &Button{
		Container: Container{Hint: layout.FixedSize(80, 30)},
		Message:   "clicked",
	}
	btn := tree.Insert(f.button)
	content := tree.Insert(&Container{Hint: layout.FlexibleSize(1), Padding: layout.PaddingAll(20)}, btn)

	f.window = &Window{Decorated: true, Radius: 8, HeaderHeight: 30, ResizeBorder: 4}
	root := tree.Insert(f.window, header, content)
	tree.SetRoot(root)
	tree.Layout(tight(300, 200))

	f.disp = NewDispatcher(tree)
	f.disp.SetBounds(tree.BuildBounds())
	return f
}

func (f *windowFixture) mouse(kind event.MouseKind, x, y float64, clicks int) *event.Cx {
	cx := event.NewCx()
	f.disp.Handle(event.Mouse{Kind: kind, Position: graphics.Offset{X: x, Y: y}, Clicks: clicks}, cx)
	return cx
}

func TestHeaderDragAndMaximize(t *testing.T) {
	f := newWindowFixture(t)

	cx := f.mouse(event.MousePress, 100, 15, 1)
	if diff := cmp.Diff([]event.WindowCommand{event.DragMove{}}, cx.Commands()); diff != "" {
		t.Errorf("press on header (-want +got):\n%s", diff)
	}
	f.mouse(event.MouseRelease, 100, 15, 1)

	cx = f.mouse(event.MousePress, 100, 15, 2)
	if diff := cmp.Diff([]event.WindowCommand{event.Maximize{}}, cx.Commands()); diff != "" {
		t.Errorf("double click on header (-want +got):\n%s", diff)
	}
}

func TestWindowButtonClose(t *testing.T) {
	f := newWindowFixture(t)
	if f.tree.PathOf(f.close) == nil {
		t.Fatal("close button not connected")
	}
	b, _ := f.disp.Bounds().Lookup(f.close)
	center := b.RRect.Rect.Center()

	if cx := f.mouse(event.MousePress, center.X, center.Y, 1); len(cx.Commands()) != 0 {
		t.Errorf("press on a header slot should not drag: %v", cx.Commands())
	}
	cx := f.mouse(event.MouseRelease, center.X, center.Y, 1)
	if diff := cmp.Diff([]event.WindowCommand{event.Close{}}, cx.Commands()); diff != "" {
		t.Errorf("release on close (-want +got):\n%s", diff)
	}
}

func TestWindowResizeEdges(t *testing.T) {
	f := newWindowFixture(t)

	cx := f.mouse(event.MouseMove, 299, 100, 0)
	if icon, _ := cx.Cursor(); icon != event.CursorResizeEW {
		t.Errorf("cursor at east edge = %v", icon)
	}
	cx = f.mouse(event.MousePress, 1, 199, 1)
	want := []event.WindowCommand{event.DragResize{Direction: event.ResizeSouthWest}}
	if diff := cmp.Diff(want, cx.Commands()); diff != "" {
		t.Errorf("press at corner (-want +got):\n%s", diff)
	}

	f.window.SetMaximized(true)
	cx = f.mouse(event.MousePress, 1, 199, 1)
	if len(cx.Commands()) != 0 {
		t.Errorf("maximized window should not resize: %v", cx.Commands())
	}
}

func TestButtonEmitsOnReleaseInside(t *testing.T) {
	f := newWindowFixture(t)
	// Content starts at y=30 and pads by 20.
	f.mouse(event.MouseMove, 40, 60, 0)
	if !f.button.Hovered() {
		t.Error("button should be hovered")
	}
	f.mouse(event.MousePress, 40, 60, 1)
	if !f.button.Pressed() {
		t.Fatal("button should be pressed")
	}
	cx := f.mouse(event.MouseRelease, 40, 60, 1)
	if diff := cmp.Diff([]any{"clicked"}, cx.Messages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}

	f.mouse(event.MousePress, 40, 60, 1)
	cx = f.mouse(event.MouseRelease, 250, 150, 1)
	if len(cx.Messages()) != 0 {
		t.Errorf("release outside emitted %v", cx.Messages())
	}
}

func TestSliderDrag(t *testing.T) {
	tree := newTree()
	s := &Slider{Min: 0, Max: 100, Tag: "volume", Hint: layout.FixedSize(116, 20)}
	sid := tree.Insert(s)
	tree.SetRoot(sid)
	tree.Layout(layout.Loose(graphics.Size{Width: 200, Height: 100}))
	d := NewDispatcher(tree)
	d.SetBounds(tree.BuildBounds())

	cx := event.NewCx()
	d.Handle(event.Mouse{Kind: event.MousePress, Position: graphics.Offset{X: 58, Y: 10}}, cx)
	d.Handle(event.Mouse{Kind: event.MouseMove, Position: graphics.Offset{X: 500, Y: 10}}, cx)
	d.Handle(event.Mouse{Kind: event.MouseRelease, Position: graphics.Offset{X: 500, Y: 10}}, cx)

	want := []any{
		SliderChanged{Tag: "volume", Value: 50},
		SliderChanged{Tag: "volume", Value: 100},
	}
	if diff := cmp.Diff(want, cx.Messages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestMapperRewritesDescendantMessages(t *testing.T) {
	tree := newTree()
	btn := &Button{Container: Container{Hint: layout.FixedSize(50, 50)}, Message: 1}
	bid := tree.Insert(btn)
	mid := tree.Insert(&Mapper{Map: func(m any) any { return m.(int) * 10 }}, bid)
	tree.SetRoot(mid)
	tree.Layout(tight(50, 50))
	d := NewDispatcher(tree)
	d.SetBounds(tree.BuildBounds())

	cx := event.NewCx()
	d.Handle(event.Mouse{Kind: event.MousePress, Position: graphics.Offset{X: 5, Y: 5}}, cx)
	d.Handle(event.Mouse{Kind: event.MouseRelease, Position: graphics.Offset{X: 5, Y: 5}}, cx)
	if diff := cmp.Diff([]any{10}, cx.Messages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestDumpTree(t *testing.T) {
	f := newWindowFixture(t)
	var sb stringsBuilder
	if err := f.tree.Dump(&sb); err != nil {
		t.Fatal(err)
	}
	if got := sb.lines; got != 7 {
		t.Errorf("dump has %d lines, want one per widget (7)", got)
	}
}

type stringsBuilder struct{ lines int }

func (s *stringsBuilder) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			s.lines++
		}
	}
	return len(p), nil
}
