package widget

import (
	"math"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
)

// BoundsEntry is one node's absolute hit region.
type BoundsEntry struct {
	Path id.Path
	// RRect is the node's absolute rounded bounds.
	RRect graphics.RRect
	// Visible is the part of the window the node may receive input in,
	// after clipping by every ancestor.
	Visible graphics.Rect
}

// BoundsTree is a pre-order flattening of the tree's absolute bounds.
type BoundsTree struct {
	Entries []BoundsEntry
}

// BuildBounds flattens the tree after layout.
func (t *Tree) BuildBounds() *BoundsTree {
	out := &BoundsTree{}
	if !t.root.Valid() {
		return out
	}
	type item struct {
		path    id.Path
		data    *Data
		origin  graphics.Offset
		visible graphics.Rect
	}
	root := t.get("bounds", t.root)
	inf := math.Inf(1)
	everything := graphics.Rect{Left: -inf, Top: -inf, Right: inf, Bottom: inf}
	stack := []item{{path: id.Path{root.ID}, data: root, origin: root.Position, visible: everything}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := it.data

		rr := t.localBounds(d).Translate(it.origin.X, it.origin.Y)
		visible := it.visible.Intersect(rr.Rect)
		out.Entries = append(out.Entries, BoundsEntry{Path: it.path, RRect: rr, Visible: visible})

		scroll := scrollOffset(d.Widget)
		for i := len(d.Children) - 1; i >= 0; i-- {
			c := t.get("bounds", d.Children[i])
			stack = append(stack, item{
				path:    it.path.Child(c.ID),
				data:    c,
				origin:  it.origin.Add(c.Position.Sub(scroll)),
				visible: visible,
			})
		}
	}
	return out
}

// HitTest returns the path of the deepest entry containing p. Among entries
// of equal depth the later one in pre-order wins, so later siblings sit on
// top.
func (b *BoundsTree) HitTest(p graphics.Offset) (id.Path, bool) {
	best := -1
	for i, e := range b.Entries {
		if e.Visible.IsEmpty() || !e.Visible.Contains(p) || !e.RRect.Contains(p) {
			continue
		}
		if best < 0 || len(e.Path) >= len(b.Entries[best].Path) {
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	return append(id.Path(nil), b.Entries[best].Path...), true
}

// Lookup returns the entry for the node at the end of path.
func (b *BoundsTree) Lookup(w id.WidgetID) (BoundsEntry, bool) {
	for _, e := range b.Entries {
		if e.Path.Leaf() == w {
			return e, true
		}
	}
	return BoundsEntry{}, false
}
