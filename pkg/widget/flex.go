package widget

import (
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/render"
)

// Flex lays out its children in a run along Axis.
//
// Children fixed on the main axis are measured first; flexible children
// then share what is left in proportion to their weights. Spacing is applied
// at both ends and between children. Flipped mirrors placement along the
// main axis without changing sizes.
//
// A Fixed hint pins the flex to that extent. Under unbounded main-axis
// constraints a flex with only fixed children wraps them.
type Flex struct {
	Base
	Axis       layout.Axis
	Spacing    float64
	Flipped    bool
	CrossAlign layout.Align
	Hint       layout.WidgetSize
	Background graphics.Color
}

// NewRow returns a horizontal flex filling the available space.
func NewRow(spacing float64) *Flex {
	return &Flex{Axis: layout.Horizontal, Spacing: spacing, Hint: layout.FlexibleSize(1)}
}

// NewColumn returns a vertical flex filling the available space.
func NewColumn(spacing float64) *Flex {
	return &Flex{Axis: layout.Vertical, Spacing: spacing, Hint: layout.FlexibleSize(1)}
}

// SizeHint implements Widget.
func (f *Flex) SizeHint() layout.WidgetSize { return f.Hint }

// Layout implements Widget.
func (f *Flex) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	axis, cross := f.Axis, f.Axis.Cross()
	children := cx.Children()
	hints := make([]layout.WidgetSize, len(children))
	flexibleMain := false
	for i, ch := range children {
		hints[i] = cx.ChildSizeHint(ch)
		flexibleMain = flexibleMain || hints[i].Along(axis).IsFlexible()
	}
	for _, a := range []layout.Axis{axis, cross} {
		if l := f.Hint.Along(a); l.IsFixed() {
			c = c.TightOn(a, l.Resolve(a.Main(c.Min), a.Main(c.Max)))
		}
	}
	if flexibleMain {
		c = cx.RequireBounded(c, axis)
	}
	bounded := c.Bounded(axis)
	crossMax := axis.CrossOf(c.Max)

	childConstraints := func(h layout.WidgetSize) layout.Constraints {
		cc := layout.Loose(axis.Size(axis.Main(c.Max), crossMax))
		if c.Bounded(cross) && (h.Along(cross).IsFlexible() || f.CrossAlign == layout.AlignStretch) {
			cc = cc.TightOn(cross, crossMax)
		}
		return cc
	}

	sizes := make([]graphics.Size, len(children))
	lengths := make([]layout.Length, len(children))
	var fixedExtents []float64
	for i, ch := range children {
		main := hints[i].Along(axis)
		if main.IsFlexible() {
			lengths[i] = main
			continue
		}
		sizes[i] = cx.LayoutChild(ch, childConstraints(hints[i]))
		lengths[i] = layout.Fixed(axis.Main(sizes[i]))
		fixedExtents = append(fixedExtents, axis.Main(sizes[i]))
	}

	extent := axis.Main(c.Max)
	if !bounded {
		extent = layout.MainExtent(fixedExtents, f.Spacing)
	}
	placement := layout.Distribute(lengths, extent, f.Spacing, f.Flipped)

	crossHints := make([]layout.Length, len(children))
	crossExtents := make([]float64, len(children))
	for i, ch := range children {
		if lengths[i].IsFlexible() {
			sizes[i] = cx.LayoutChild(ch, childConstraints(hints[i]).TightOn(axis, placement.Extents[i]))
		}
		crossHints[i] = hints[i].Along(cross)
		crossExtents[i] = axis.CrossOf(sizes[i])
	}

	size := c.Constrain(axis.Size(extent, layout.CrossExtent(crossHints, crossExtents, crossMax)))
	crossSize := axis.CrossOf(size)
	for i, ch := range children {
		pos := f.CrossAlign.Place(crossSize, crossExtents[i])
		cx.SetChildPosition(ch, axis.Offset(placement.Positions[i], pos))
	}
	return size
}

// Draw implements Widget.
func (f *Flex) Draw(cx *render.Cx, size graphics.Size) {
	if f.Background.Alpha() > 0 {
		cx.FillRRect(graphics.RRect{Rect: graphics.RectFromOffsetSize(graphics.Offset{}, size)}, f.Background)
	}
}

// Name implements the diagnostic name hook.
func (f *Flex) Name() string {
	if f.Axis == layout.Horizontal {
		return "Row"
	}
	return "Column"
}

// Bar is a horizontal strip of fixed height.
type Bar struct {
	Flex
	Height float64
}

// NewBar returns a bar of the given height.
func NewBar(height, spacing float64) *Bar {
	return &Bar{
		Flex: Flex{
			Axis:       layout.Horizontal,
			Spacing:    spacing,
			CrossAlign: layout.AlignCenter,
			Hint:       layout.WidgetSize{Width: layout.Flexible(1), Height: layout.Fixed(height)},
		},
		Height: height,
	}
}

// SizeHint implements Widget.
func (b *Bar) SizeHint() layout.WidgetSize {
	return layout.WidgetSize{Width: layout.Flexible(1), Height: layout.Fixed(b.Height)}
}

// Layout implements Widget.
func (b *Bar) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	h := c.Constrain(graphics.Size{Height: b.Height}).Height
	return b.Flex.Layout(cx, c.TightOn(layout.Vertical, h))
}

// Name implements the diagnostic name hook.
func (b *Bar) Name() string { return "Bar" }
