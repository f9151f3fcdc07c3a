package widget

import (
	"math"

	"github.com/go-drift/vessel/pkg/errors"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/logging"
	"github.com/go-drift/vessel/pkg/text"
)

// LayoutCx gives a widget's Layout access to its children by id.
type LayoutCx struct {
	tree *Tree
	node *Data
}

// ID returns the id of the widget being laid out.
func (cx *LayoutCx) ID() id.WidgetID { return cx.node.ID }

// Fonts returns the shaping context.
func (cx *LayoutCx) Fonts() *text.FontContext { return cx.tree.fonts }

// Children returns the ids of the widget's children.
func (cx *LayoutCx) Children() []id.WidgetID { return cx.node.Children }

// ChildSizeHint returns the size hint of child.
func (cx *LayoutCx) ChildSizeHint(child id.WidgetID) layout.WidgetSize {
	return cx.tree.get("child_size_hint", child).Widget.SizeHint()
}

// LayoutChild lays out child within c and records its size.
func (cx *LayoutCx) LayoutChild(child id.WidgetID, c layout.Constraints) graphics.Size {
	return cx.tree.layoutNode(cx.tree.get("layout_child", child), c)
}

// SetChildPosition records child's offset within this widget.
func (cx *LayoutCx) SetChildPosition(child id.WidgetID, pos graphics.Offset) {
	cx.tree.get("set_child_position", child).Position = pos
}

// ChildSize returns child's size from its last layout.
func (cx *LayoutCx) ChildSize(child id.WidgetID) graphics.Size {
	return cx.tree.get("child_size", child).Size
}

// ChildPosition returns child's recorded offset.
func (cx *LayoutCx) ChildPosition(child id.WidgetID) graphics.Offset {
	return cx.tree.get("child_position", child).Position
}

// RequireBounded reports a layout error if c is unbounded on axis and returns
// c with that axis clamped to zero. Non-scrollable containers call it before
// filling the available space.
func (cx *LayoutCx) RequireBounded(c layout.Constraints, axis layout.Axis) layout.Constraints {
	if c.Bounded(axis) {
		return c
	}
	errors.ReportOp("widget.layout", errors.KindLayout, &errors.LayoutError{
		Widget: Name(cx.node.Widget),
		Axis:   axis.String(),
		Reason: "unbounded constraints reached a non-scrollable container",
	})
	return c.WithMax(axis, math.Max(0, axis.Main(c.Min)))
}

// Layout lays out the whole tree within c with the root at the origin.
func (t *Tree) Layout(c layout.Constraints) graphics.Size {
	if !t.root.Valid() {
		return graphics.Size{}
	}
	root := t.get("layout", t.root)
	root.Position = graphics.Offset{}
	size := t.layoutNode(root, c)
	logging.Logger().Debug("layout", "root", t.root, "size", size, "nodes", len(t.nodes))
	return size
}

func (t *Tree) layoutNode(d *Data, c layout.Constraints) graphics.Size {
	cx := &LayoutCx{tree: t, node: d}
	size := d.Widget.Layout(cx, c)
	if !size.IsFinite() {
		errors.ReportOp("widget.layout", errors.KindLayout, &errors.LayoutError{
			Widget: Name(d.Widget),
			Axis:   infiniteAxis(size).String(),
			Reason: "widget returned an infinite size",
		})
		size = finite(size)
	}
	d.Size = size
	d.Flags &^= NeedsLayout
	return size
}

func infiniteAxis(s graphics.Size) layout.Axis {
	if math.IsInf(s.Width, 0) || math.IsNaN(s.Width) {
		return layout.Horizontal
	}
	return layout.Vertical
}

func finite(s graphics.Size) graphics.Size {
	fix := func(v float64) float64 {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0
		}
		return v
	}
	return graphics.Size{Width: fix(s.Width), Height: fix(s.Height)}
}
