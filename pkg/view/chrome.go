package view

import (
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/widget"
)

// WindowButton is a round title bar control.
type WindowButton struct {
	leaf
	Action     widget.WindowButtonKind
	Diameter   float64
	Color      graphics.Color
	HoverColor graphics.Color
}

func (WindowButton) Kind() Kind { return KindWindowButton }

func (b WindowButton) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(&widget.WindowButton{
		Kind:       b.Action,
		Diameter:   b.Diameter,
		Color:      b.Color,
		HoverColor: b.HoverColor,
	})
}

func (b WindowButton) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[WindowButton](old)
	bw := as[*widget.WindowButton](cx, w)
	set(cx, w, &bw.Kind, o.Action, b.Action, false)
	set(cx, w, &bw.Diameter, o.Diameter, b.Diameter, true)
	set(cx, w, &bw.Color, o.Color, b.Color, false)
	set(cx, w, &bw.HoverColor, o.HoverColor, b.HoverColor, false)
	return w
}

// Header is a title bar with three slots. Missing slots are empty.
type Header struct {
	Height     float64
	Background graphics.Color
	Left       View
	Middle     View
	Right      View
}

// TitleBar returns a header showing title in the middle and the standard
// minimize, maximize and close buttons on the right.
func TitleBar(title string) Header {
	const d, gap = 14.0, 8.0
	button := func(kind widget.WindowButtonKind, c graphics.Color) View {
		return WindowButton{Action: kind, Diameter: d, Color: c, HoverColor: c.WithAlpha(0.7)}
	}
	return Header{
		Height:     32,
		Background: graphics.RGB(0x22, 0x25, 0x2c),
		Middle:     Str(title),
		Right: Flex{
			Axis:       layout.Horizontal,
			Spacing:    gap,
			CrossAlign: layout.AlignCenter,
			Size:       layout.FixedSize(3*d+3*gap, d),
			Children: []View{
				button(widget.WindowMinimize, graphics.RGB(0xf5, 0xbf, 0x4f)),
				button(widget.WindowMaximize, graphics.RGB(0x61, 0xc5, 0x54)),
				button(widget.WindowClose, graphics.RGB(0xed, 0x6a, 0x5e)),
			},
		},
	}
}

func (h Header) slots() []View {
	return []View{orEmpty(h.Left), orEmpty(h.Middle), orEmpty(h.Right)}
}

func (Header) Kind() Kind { return KindHeader }

func (h Header) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(&widget.Header{Height: h.Height, Background: h.Background}, cx.BuildAll(h.slots())...)
}

func (h Header) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Header](old)
	hw := as[*widget.Header](cx, w)
	set(cx, w, &hw.Height, o.Height, h.Height, true)
	set(cx, w, &hw.Background, o.Background, h.Background, false)
	prevSlots, slots := o.slots(), h.slots()
	for i := range slots {
		cx.ReconcileChild(w, i, prevSlots[i], slots[i])
	}
	return w
}

func (h Header) Teardown(cx *BuildCx, w id.WidgetID) { cx.TeardownChildren(w, h.slots()) }

// Window is the root view: optional client-side decorations around Content.
// The maximized state belongs to the host and is not part of the view.
type Window struct {
	Title        string
	Decorated    bool
	Background   graphics.Color
	Radius       float64
	ResizeBorder float64
	Header       Header
	Content      View
}

// DecoratedWindow returns a window with a standard title bar.
func DecoratedWindow(title string, content View) Window {
	return Window{
		Title:        title,
		Decorated:    true,
		Background:   graphics.RGB(0x2b, 0x2f, 0x38),
		Radius:       10,
		ResizeBorder: 6,
		Header:       TitleBar(title),
		Content:      content,
	}
}

func (w Window) slots() []View { return []View{w.Header, orEmpty(w.Content)} }

func (Window) Kind() Kind { return KindWindow }

func (w Window) Build(cx *BuildCx) id.WidgetID {
	ww := &widget.Window{
		Title:        w.Title,
		Decorated:    w.Decorated,
		Background:   w.Background,
		Radius:       w.Radius,
		HeaderHeight: w.Header.Height,
		ResizeBorder: w.ResizeBorder,
	}
	return cx.Tree.Insert(ww, cx.BuildAll(w.slots())...)
}

func (w Window) Rebuild(cx *BuildCx, old View, wid id.WidgetID) id.WidgetID {
	o := prev[Window](old)
	ww := as[*widget.Window](cx, wid)
	set(cx, wid, &ww.Title, o.Title, w.Title, false)
	set(cx, wid, &ww.Decorated, o.Decorated, w.Decorated, true)
	set(cx, wid, &ww.Background, o.Background, w.Background, false)
	set(cx, wid, &ww.Radius, o.Radius, w.Radius, false)
	set(cx, wid, &ww.HeaderHeight, o.Header.Height, w.Header.Height, true)
	set(cx, wid, &ww.ResizeBorder, o.ResizeBorder, w.ResizeBorder, false)
	prevSlots, slots := o.slots(), w.slots()
	for i := range slots {
		cx.ReconcileChild(wid, i, prevSlots[i], slots[i])
	}
	return wid
}

func (w Window) Teardown(cx *BuildCx, wid id.WidgetID) { cx.TeardownChildren(wid, w.slots()) }
