package view

import (
	"fmt"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/widget"
)

// Flex lays children out along Axis. Children are paired positionally on
// rebuild.
type Flex struct {
	Axis       layout.Axis
	Spacing    float64
	Flipped    bool
	CrossAlign layout.Align
	Size       layout.WidgetSize
	Background graphics.Color
	Children   []View
}

// Row returns a flexible horizontal Flex.
func Row(children ...View) Flex {
	return Flex{Axis: layout.Horizontal, Size: layout.FlexibleSize(1), Children: children}
}

// Column returns a flexible vertical Flex.
func Column(children ...View) Flex {
	return Flex{Axis: layout.Vertical, Size: layout.FlexibleSize(1), Children: children}
}

// Gap returns a copy with spacing s.
func (f Flex) Gap(s float64) Flex {
	f.Spacing = s
	return f
}

func (Flex) Kind() Kind { return KindFlex }

func (f Flex) Build(cx *BuildCx) id.WidgetID {
	w := &widget.Flex{
		Axis:       f.Axis,
		Spacing:    f.Spacing,
		Flipped:    f.Flipped,
		CrossAlign: f.CrossAlign,
		Hint:       f.Size,
		Background: f.Background,
	}
	return cx.Tree.Insert(w, cx.BuildAll(f.Children)...)
}

func (f Flex) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Flex](old)
	fw := as[*widget.Flex](cx, w)
	set(cx, w, &fw.Axis, o.Axis, f.Axis, true)
	set(cx, w, &fw.Spacing, o.Spacing, f.Spacing, true)
	set(cx, w, &fw.Flipped, o.Flipped, f.Flipped, true)
	set(cx, w, &fw.CrossAlign, o.CrossAlign, f.CrossAlign, true)
	set(cx, w, &fw.Hint, o.Size, f.Size, true)
	set(cx, w, &fw.Background, o.Background, f.Background, false)
	cx.ReconcileChildren(w, o.Children, f.Children)
	return w
}

func (f Flex) Teardown(cx *BuildCx, w id.WidgetID) { cx.TeardownChildren(w, f.Children) }

// Bar is a horizontal strip of fixed height, used for toolbars and headers.
type Bar struct {
	Height     float64
	Spacing    float64
	Background graphics.Color
	Children   []View
}

func (Bar) Kind() Kind { return KindBar }

func (b Bar) Build(cx *BuildCx) id.WidgetID {
	w := widget.NewBar(b.Height, b.Spacing)
	w.Background = b.Background
	return cx.Tree.Insert(w, cx.BuildAll(b.Children)...)
}

func (b Bar) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Bar](old)
	bw := as[*widget.Bar](cx, w)
	if o.Height != b.Height {
		bw.Height = b.Height
		bw.Hint = bw.SizeHint()
		cx.wrote(w, true)
	}
	set(cx, w, &bw.Spacing, o.Spacing, b.Spacing, true)
	set(cx, w, &bw.Background, o.Background, b.Background, false)
	cx.ReconcileChildren(w, o.Children, b.Children)
	return w
}

func (b Bar) Teardown(cx *BuildCx, w id.WidgetID) { cx.TeardownChildren(w, b.Children) }

// Container decorates and positions a single child.
type Container struct {
	Size       layout.WidgetSize
	Shrink     bool
	Padding    layout.Padding
	Alignment  layout.Alignment
	Background graphics.Color
	Radius     float64
	Child      View
}

func (Container) Kind() Kind { return KindContainer }

func (c Container) container() *widget.Container {
	return &widget.Container{
		Hint:       c.Size,
		Shrink:     c.Shrink,
		Padding:    c.Padding,
		Alignment:  c.Alignment,
		Background: c.Background,
		Radius:     c.Radius,
	}
}

func (c Container) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(c.container(), cx.Build(orEmpty(c.Child)))
}

func (c Container) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Container](old)
	c.patch(cx, o, w, as[*widget.Container](cx, w))
	return w
}

// patch writes changed fields into cw and reconciles the child slot.
func (c Container) patch(cx *BuildCx, o Container, w id.WidgetID, cw *widget.Container) {
	set(cx, w, &cw.Hint, o.Size, c.Size, true)
	set(cx, w, &cw.Shrink, o.Shrink, c.Shrink, true)
	set(cx, w, &cw.Padding, o.Padding, c.Padding, true)
	set(cx, w, &cw.Alignment, o.Alignment, c.Alignment, true)
	set(cx, w, &cw.Background, o.Background, c.Background, false)
	set(cx, w, &cw.Radius, o.Radius, c.Radius, false)
	cx.ReconcileChild(w, 0, orEmpty(o.Child), orEmpty(c.Child))
}

func (c Container) Teardown(cx *BuildCx, w id.WidgetID) {
	cx.TeardownChildren(w, []View{orEmpty(c.Child)})
}

// FlexItem gives its child a flexible share of a Flex's main axis.
type FlexItem struct {
	Weight float64
	Child  View
}

// Flexible wraps child with weight.
func Flexible(weight float64, child View) FlexItem { return FlexItem{Weight: weight, Child: child} }

func (FlexItem) Kind() Kind { return KindFlexItem }

func (f FlexItem) Build(cx *BuildCx) id.WidgetID {
	w := &widget.Container{Hint: layout.FlexibleSize(f.Weight)}
	return cx.Tree.Insert(w, cx.Build(orEmpty(f.Child)))
}

func (f FlexItem) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[FlexItem](old)
	cw := as[*widget.Container](cx, w)
	set(cx, w, &cw.Hint, layout.FlexibleSize(o.Weight), layout.FlexibleSize(f.Weight), true)
	cx.ReconcileChild(w, 0, orEmpty(o.Child), orEmpty(f.Child))
	return w
}

func (f FlexItem) Teardown(cx *BuildCx, w id.WidgetID) {
	cx.TeardownChildren(w, []View{orEmpty(f.Child)})
}

// Scroll shows its child through a viewport scrollable along Axis. The
// scroll offset is widget state and survives rebuilds.
type Scroll struct {
	Axis  layout.Axis
	Size  layout.WidgetSize
	Child View
}

// VScroll returns a flexible vertical Scroll.
func VScroll(child View) Scroll {
	return Scroll{Axis: layout.Vertical, Size: layout.FlexibleSize(1), Child: child}
}

func (Scroll) Kind() Kind { return KindScroll }

func (s Scroll) Build(cx *BuildCx) id.WidgetID {
	w := widget.NewScroll(s.Axis)
	w.Hint = s.Size
	return cx.Tree.Insert(w, cx.Build(orEmpty(s.Child)))
}

func (s Scroll) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Scroll](old)
	sw := as[*widget.Scroll](cx, w)
	set(cx, w, &sw.Axis, o.Axis, s.Axis, true)
	set(cx, w, &sw.Hint, o.Size, s.Size, true)
	cx.ReconcileChild(w, 0, orEmpty(o.Child), orEmpty(s.Child))
	return w
}

func (s Scroll) Teardown(cx *BuildCx, w id.WidgetID) {
	cx.TeardownChildren(w, []View{orEmpty(s.Child)})
}

// Button emits Message when clicked.
type Button struct {
	Container
	// Message should be comparable. A message holding a slice, map or func
	// is treated as changed on every rebuild.
	Message    any
	HoverColor graphics.Color
	PressColor graphics.Color
}

// NewButton returns a shrink-wrapped button with default colors.
func NewButton(msg any, child View) Button {
	return Button{
		Container: Container{
			Shrink:     true,
			Padding:    layout.PaddingSymmetric(12, 6),
			Alignment:  layout.Center,
			Background: graphics.RGBA8(0x3a, 0x3f, 0x4b, 0xff),
			Radius:     6,
			Child:      child,
		},
		Message:    msg,
		HoverColor: graphics.RGBA8(0x4a, 0x50, 0x5e, 0xff),
		PressColor: graphics.RGBA8(0x2c, 0x30, 0x39, 0xff),
	}
}

// Label returns a button showing s.
func Label(msg any, s string) Button { return NewButton(msg, Str(s)) }

func (Button) Kind() Kind { return KindButton }

func (b Button) Build(cx *BuildCx) id.WidgetID {
	w := &widget.Button{
		Container:  *b.Container.container(),
		Message:    b.Message,
		HoverColor: b.HoverColor,
		PressColor: b.PressColor,
	}
	return cx.Tree.Insert(w, cx.Build(orEmpty(b.Child)))
}

func (b Button) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Button](old)
	bw := as[*widget.Button](cx, w)
	setMessage(cx, w, &bw.Message, o.Message, b.Message)
	set(cx, w, &bw.HoverColor, o.HoverColor, b.HoverColor, false)
	set(cx, w, &bw.PressColor, o.PressColor, b.PressColor, false)
	b.Container.patch(cx, o.Container, w, &bw.Container)
	return w
}

// prev returns old as T. Views are normally values; pointers are accepted.
func prev[T any](old View) T {
	switch o := any(old).(type) {
	case T:
		return o
	case *T:
		return *o
	}
	panic(fmt.Sprintf("view: rebuild paired %T with %T", *new(T), old))
}
