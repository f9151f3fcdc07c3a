package widget

import (
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/render"
)

// Paint records the tree into cx. Every node is drawn inside its own layer,
// translated to its position and clipped to its rounded bounds. Within a
// node the order is: the node's Draw, then its children in order, then its
// DrawOverlay.
//
// The root's Draw, each of its children and its overlay are recorded as
// separate top-level layers, each re-entering the root's transform and clip,
// so render.Split yields one group per root child.
func (t *Tree) Paint(cx *render.Cx) {
	if !t.root.Valid() {
		return
	}
	root := t.get("paint", t.root)
	enter := func() {
		cx.PushLayer(graphics.BlendSrcOver, graphics.Translation(root.Position.X, root.Position.Y), t.localBounds(root))
	}

	enter()
	root.Widget.Draw(cx, root.Size)
	root.Flags &^= NeedsDraw
	cx.PopLayer()

	scroll := scrollOffset(root.Widget)
	for _, cid := range root.Children {
		c := t.get("paint", cid)
		enter()
		t.paintSubtree(cx, c, c.Position.Sub(scroll))
		cx.PopLayer()
	}

	if o, ok := root.Widget.(Overlay); ok {
		enter()
		o.DrawOverlay(cx, root.Size)
		cx.PopLayer()
	}
}

func (t *Tree) paintSubtree(cx *render.Cx, top *Data, offset graphics.Offset) {
	type frame struct {
		data   *Data
		offset graphics.Offset
		exit   bool
	}
	stack := []frame{{data: top, offset: offset}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := f.data

		if f.exit {
			if o, ok := d.Widget.(Overlay); ok {
				o.DrawOverlay(cx, d.Size)
			}
			cx.PopLayer()
			continue
		}

		cx.PushLayer(graphics.BlendSrcOver, graphics.Translation(f.offset.X, f.offset.Y), t.localBounds(d))
		d.Widget.Draw(cx, d.Size)
		d.Flags &^= NeedsDraw
		stack = append(stack, frame{data: d, exit: true})

		scroll := scrollOffset(d.Widget)
		for i := len(d.Children) - 1; i >= 0; i-- {
			c := t.get("paint", d.Children[i])
			stack = append(stack, frame{data: c, offset: c.Position.Sub(scroll)})
		}
	}
}

func (t *Tree) localBounds(d *Data) graphics.RRect {
	radius := 0.0
	if c, ok := d.Widget.(Clipper); ok {
		radius = c.ClipRadius()
	}
	return graphics.RRectFromRectAndRadius(graphics.RectFromOffsetSize(graphics.Offset{}, d.Size), radius)
}

func scrollOffset(w Widget) graphics.Offset {
	if s, ok := w.(Scrollable); ok {
		return s.ScrollOffset()
	}
	return graphics.Offset{}
}
