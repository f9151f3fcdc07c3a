package widget

import (
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/render"
)

// Container sizes itself from Hint, pads and aligns an optional single
// child, and fills an optional rounded background.
//
// When Shrink is set the container wraps its child plus padding instead.
type Container struct {
	Base
	Hint       layout.WidgetSize
	Shrink     bool
	Padding    layout.Padding
	Alignment  layout.Alignment
	Background graphics.Color
	Radius     float64
}

// SizeHint implements Widget.
func (c *Container) SizeHint() layout.WidgetSize { return c.Hint }

// ClipRadius implements Clipper.
func (c *Container) ClipRadius() float64 { return c.Radius }

// Layout implements Widget.
func (c *Container) Layout(cx *LayoutCx, cons layout.Constraints) graphics.Size {
	children := cx.Children()
	if c.Shrink && len(children) > 0 {
		child := children[0]
		cs := cx.LayoutChild(child, cons.Loosen().Deflate(c.Padding))
		size := cons.Constrain(graphics.Size{
			Width:  cs.Width + c.Padding.Horizontal(),
			Height: cs.Height + c.Padding.Vertical(),
		})
		c.place(cx, child, size, cs)
		return size
	}

	for _, axis := range []layout.Axis{layout.Horizontal, layout.Vertical} {
		if c.Hint.Along(axis).IsFlexible() {
			cons = cx.RequireBounded(cons, axis)
		}
	}
	size := cons.Constrain(c.Hint.Resolve(cons))
	if len(children) > 0 {
		child := children[0]
		cs := cx.LayoutChild(child, layout.Loose(size).Deflate(c.Padding))
		c.place(cx, child, size, cs)
	}
	return size
}

func (c *Container) place(cx *LayoutCx, child id.WidgetID, size, childSize graphics.Size) {
	pad := c.Padding.Fit(size, childSize)
	area := graphics.Size{
		Width:  size.Width - pad.Horizontal(),
		Height: size.Height - pad.Vertical(),
	}
	cx.SetChildPosition(child, pad.TopLeft().Add(c.Alignment.Position(area, childSize)))
}

// Draw implements Widget.
func (c *Container) Draw(cx *render.Cx, size graphics.Size) {
	if c.Background.Alpha() > 0 {
		cx.FillRRect(graphics.RRectFromRectAndRadius(graphics.RectFromOffsetSize(graphics.Offset{}, size), c.Radius), c.Background)
	}
}
