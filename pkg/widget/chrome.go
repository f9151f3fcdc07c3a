package widget

import (
	"math"

	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/render"
)

// WindowButtonKind selects what a WindowButton does.
type WindowButtonKind uint8

const (
	WindowMinimize WindowButtonKind = iota
	WindowMaximize
	WindowClose
)

func (k WindowButtonKind) command() event.WindowCommand {
	switch k {
	case WindowMinimize:
		return event.Minimize{}
	case WindowMaximize:
		return event.Maximize{}
	default:
		return event.Close{}
	}
}

// WindowButton is a round title bar control emitting a window command on
// release inside its bounds.
type WindowButton struct {
	Base
	Kind       WindowButtonKind
	Diameter   float64
	Color      graphics.Color
	HoverColor graphics.Color

	hovered bool
	pressed bool
	size    graphics.Size
}

// SizeHint implements Widget.
func (b *WindowButton) SizeHint() layout.WidgetSize {
	return layout.FixedSize(b.Diameter, b.Diameter)
}

// Layout implements Widget.
func (b *WindowButton) Layout(_ *LayoutCx, c layout.Constraints) graphics.Size {
	b.size = c.Constrain(b.SizeHint().Resolve(c))
	return b.size
}

// ClipRadius implements Clipper.
func (b *WindowButton) ClipRadius() float64 { return b.Diameter / 2 }

// Event implements Widget.
func (b *WindowButton) Event(ev event.WidgetEvent, cx *event.Cx) event.Status {
	pos, ok := ev.Location()
	if !ok {
		return event.Ignored
	}
	inside := graphics.RRectFromRectAndRadius(graphics.RectFromOffsetSize(graphics.Offset{}, b.size), b.Diameter/2).Contains(pos)
	switch {
	case event.IsPress(ev) && inside:
		b.pressed = true
		return event.Captured
	case isRelease(ev) && b.pressed:
		b.pressed = false
		if inside {
			cx.Command(b.Kind.command())
		}
		return event.Captured
	}
	return event.Ignored
}

// SetHover implements Widget.
func (b *WindowButton) SetHover(hovered bool) event.Status {
	b.hovered = hovered
	return event.Captured
}

// Draw implements Widget.
func (b *WindowButton) Draw(cx *render.Cx, size graphics.Size) {
	c := b.Color
	if b.hovered && b.HoverColor != 0 {
		c = b.HoverColor
	}
	center := graphics.Offset{X: size.Width / 2, Y: size.Height / 2}
	cx.Fill(graphics.CirclePath(center, math.Min(size.Width, size.Height)/2), graphics.SolidBrush(c))
}

// Header is a title bar with left, middle and right slots, in child order.
// The middle slot is centered on the header when it fits. Presses outside
// the side slots start a window move; a double click toggles maximize.
type Header struct {
	Base
	Height     float64
	Background graphics.Color

	sides [2]graphics.Rect
}

// SizeHint implements Widget.
func (h *Header) SizeHint() layout.WidgetSize {
	return layout.WidgetSize{Width: layout.Flexible(1), Height: layout.Fixed(h.Height)}
}

// Layout implements Widget.
func (h *Header) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	c = cx.RequireBounded(c, layout.Horizontal)
	size := c.Constrain(graphics.Size{Width: c.Max.Width, Height: h.Height})
	h.sides = [2]graphics.Rect{}

	children := cx.Children()
	slot := func(i int, maxWidth float64) graphics.Size {
		if i >= len(children) {
			return graphics.Size{}
		}
		return cx.LayoutChild(children[i], layout.Loose(graphics.Size{Width: math.Max(0, maxWidth), Height: size.Height}))
	}
	place := func(i int, x float64, s graphics.Size) graphics.Rect {
		r := graphics.RectFromLTWH(x, (size.Height-s.Height)/2, s.Width, s.Height)
		if i < len(children) {
			cx.SetChildPosition(children[i], r.Origin())
		}
		return r
	}

	left := slot(0, size.Width)
	right := slot(2, size.Width-left.Width)
	middle := slot(1, size.Width-left.Width-right.Width)

	h.sides[0] = place(0, 0, left)
	h.sides[1] = place(2, size.Width-right.Width, right)
	mx := math.Max(left.Width, math.Min((size.Width-middle.Width)/2, size.Width-right.Width-middle.Width))
	place(1, mx, middle)
	return size
}

// Event implements Widget.
func (h *Header) Event(ev event.WidgetEvent, cx *event.Cx) event.Status {
	m, ok := ev.(event.Mouse)
	if !ok || m.Kind != event.MousePress || m.Button != event.ButtonLeft {
		return event.Ignored
	}
	for _, r := range h.sides {
		if !r.IsEmpty() && r.Contains(m.Position) {
			return event.Ignored
		}
	}
	if m.Clicks >= 2 {
		cx.Command(event.Maximize{})
	} else {
		cx.Command(event.DragMove{})
	}
	return event.Captured
}

// Draw implements Widget.
func (h *Header) Draw(cx *render.Cx, size graphics.Size) {
	if h.Background.Alpha() > 0 {
		cx.FillRRect(graphics.RRect{Rect: graphics.RectFromOffsetSize(graphics.Offset{}, size)}, h.Background)
	}
}

// Window is the root widget. Its children are the header and the content,
// in that order. When decorated it draws a rounded background and turns
// presses near its edges into resize requests.
type Window struct {
	Base
	Title        string
	Decorated    bool
	Maximized    bool
	Background   graphics.Color
	Radius       float64
	HeaderHeight float64
	ResizeBorder float64

	size graphics.Size
}

// SizeHint implements Widget.
func (w *Window) SizeHint() layout.WidgetSize { return layout.FlexibleSize(1) }

// ClipRadius implements Clipper.
func (w *Window) ClipRadius() float64 {
	if w.Maximized || !w.Decorated {
		return 0
	}
	return w.Radius
}

// WindowTitle returns the title the host window should show.
func (w *Window) WindowTitle() string { return w.Title }

// SetMaximized records the host's maximized state.
func (w *Window) SetMaximized(maximized bool) { w.Maximized = maximized }

// Layout implements Widget.
func (w *Window) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	c = cx.RequireBounded(c, layout.Horizontal)
	c = cx.RequireBounded(c, layout.Vertical)
	w.size = c.Max
	header := 0.0
	if w.Decorated {
		header = math.Min(w.HeaderHeight, w.size.Height)
	}
	children := cx.Children()
	if len(children) > 0 {
		cx.LayoutChild(children[0], layout.Tight(graphics.Size{Width: w.size.Width, Height: header}))
		cx.SetChildPosition(children[0], graphics.Offset{})
	}
	if len(children) > 1 {
		cx.LayoutChild(children[1], layout.Tight(graphics.Size{Width: w.size.Width, Height: w.size.Height - header}))
		cx.SetChildPosition(children[1], graphics.Offset{Y: header})
	}
	return w.size
}

// resizeEdge returns the edge or corner under p, if any.
func (w *Window) resizeEdge(p graphics.Offset) (event.ResizeDirection, bool) {
	if !w.Decorated || w.Maximized || w.ResizeBorder <= 0 {
		return 0, false
	}
	b := w.ResizeBorder
	north, south := p.Y < b, p.Y > w.size.Height-b
	west, east := p.X < b, p.X > w.size.Width-b
	switch {
	case north && west:
		return event.ResizeNorthWest, true
	case north && east:
		return event.ResizeNorthEast, true
	case south && west:
		return event.ResizeSouthWest, true
	case south && east:
		return event.ResizeSouthEast, true
	case north:
		return event.ResizeNorth, true
	case south:
		return event.ResizeSouth, true
	case west:
		return event.ResizeWest, true
	case east:
		return event.ResizeEast, true
	}
	return 0, false
}

// Event implements Widget.
func (w *Window) Event(ev event.WidgetEvent, cx *event.Cx) event.Status {
	m, ok := ev.(event.Mouse)
	if !ok {
		return event.Ignored
	}
	dir, edge := w.resizeEdge(m.Position)
	switch m.Kind {
	case event.MouseMove:
		if edge {
			cx.SetCursor(dir.Cursor())
			return event.Captured
		}
		cx.SetCursor(event.CursorDefault)
	case event.MousePress:
		if edge {
			cx.Command(event.DragResize{Direction: dir})
			return event.Captured
		}
	}
	return event.Ignored
}

// Draw implements Widget.
func (w *Window) Draw(cx *render.Cx, size graphics.Size) {
	cx.FillRRect(graphics.RRectFromRectAndRadius(graphics.RectFromOffsetSize(graphics.Offset{}, size), w.ClipRadius()), w.Background)
}

// Mapper is a transparent wrapper that rewrites messages emitted below it.
// It reports Inner's size hint when set.
type Mapper struct {
	Base
	Map   event.Mapper
	Inner Widget
}

// SizeHint implements Widget.
func (m *Mapper) SizeHint() layout.WidgetSize {
	if m.Inner != nil {
		return m.Inner.SizeHint()
	}
	return layout.FlexibleSize(1)
}

// Layout implements Widget.
func (m *Mapper) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	children := cx.Children()
	if len(children) == 0 {
		return c.Min
	}
	size := cx.LayoutChild(children[0], c)
	cx.SetChildPosition(children[0], graphics.Offset{})
	return size
}

// MapMessage implements MessageMapper.
func (m *Mapper) MapMessage(msg any) any {
	if m.Map == nil {
		return msg
	}
	return m.Map(msg)
}
