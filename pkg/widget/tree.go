package widget

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/vessel/pkg/errors"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/text"
)

// Flags mark pending work on a node.
type Flags uint8

const (
	NeedsLayout Flags = 1 << iota
	NeedsDraw
)

// Data is the tree's record for one widget. Position and Size are written by
// the parent's layout and are only meaningful after it.
type Data struct {
	ID       id.WidgetID
	Position graphics.Offset
	Size     graphics.Size
	Flags    Flags
	Widget   Widget
	Children []id.WidgetID

	parent id.WidgetID
}

// Tree is the widget arena. It is owned by a single goroutine.
type Tree struct {
	alloc *id.Allocator
	nodes map[id.WidgetID]*Data
	root  id.WidgetID
	fonts *text.FontContext
}

// NewTree returns an empty tree. A nil allocator selects id.Default and a nil
// font context one backed by text.BasicShaper.
func NewTree(alloc *id.Allocator, fonts *text.FontContext) *Tree {
	if alloc == nil {
		alloc = id.Default
	}
	if fonts == nil {
		fonts = text.NewFontContext(nil)
	}
	return &Tree{alloc: alloc, nodes: make(map[id.WidgetID]*Data), fonts: fonts}
}

// Allocator returns the tree's id allocator.
func (t *Tree) Allocator() *id.Allocator { return t.alloc }

// Fonts returns the font context passed to every layout.
func (t *Tree) Fonts() *text.FontContext { return t.fonts }

// Len returns the number of live widgets.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root id, or the zero id for an empty tree.
func (t *Tree) Root() id.WidgetID { return t.root }

// SetRoot makes w the root. w must be detached.
func (t *Tree) SetRoot(w id.WidgetID) {
	d := t.Get(w)
	if d.parent.Valid() {
		panic(fmt.Sprintf("widget: SetRoot: %s is attached to %s", w, d.parent))
	}
	t.root = w
	d.Flags |= NeedsLayout | NeedsDraw
}

// Insert adds w as a new detached node owning children, which must be
// detached. It returns the new id.
func (t *Tree) Insert(w Widget, children ...id.WidgetID) id.WidgetID {
	wid := t.alloc.NextWidget()
	d := &Data{ID: wid, Widget: w, Flags: NeedsLayout | NeedsDraw}
	t.nodes[wid] = d
	t.SetChildren(wid, children)
	return wid
}

// Get returns the node for w and panics if w is stale.
func (t *Tree) Get(w id.WidgetID) *Data {
	return t.get("get", w)
}

func (t *Tree) get(op string, w id.WidgetID) *Data {
	d, ok := t.nodes[w]
	if !ok {
		panic(&errors.StaleIDError{ID: uint64(w), Op: "widget." + op})
	}
	return d
}

// Lookup returns the node for w if it is live.
func (t *Tree) Lookup(w id.WidgetID) (*Data, bool) {
	d, ok := t.nodes[w]
	return d, ok
}

// Contains reports whether w is live.
func (t *Tree) Contains(w id.WidgetID) bool {
	_, ok := t.nodes[w]
	return ok
}

// Widget returns the widget stored at w.
func (t *Tree) Widget(w id.WidgetID) Widget { return t.get("widget", w).Widget }

// Children returns w's child ids. The slice must not be modified.
func (t *Tree) Children(w id.WidgetID) []id.WidgetID { return t.get("children", w).Children }

// Position returns w's offset within its parent.
func (t *Tree) Position(w id.WidgetID) graphics.Offset { return t.get("position", w).Position }

// Size returns w's size from the last layout.
func (t *Tree) Size(w id.WidgetID) graphics.Size { return t.get("size", w).Size }

// BoundsRadius returns the corner radius of w's bounds.
func (t *Tree) BoundsRadius(w id.WidgetID) float64 {
	if c, ok := t.get("bounds_radius", w).Widget.(Clipper); ok {
		return c.ClipRadius()
	}
	return 0
}

// Parent returns w's parent, if attached.
func (t *Tree) Parent(w id.WidgetID) (id.WidgetID, bool) {
	p := t.get("parent", w).parent
	return p, p.Valid()
}

// Replace swaps the widget stored at w, keeping its id and children.
func (t *Tree) Replace(w id.WidgetID, widget Widget) {
	t.get("replace", w).Widget = widget
	t.MarkNeedsLayout(w)
}

// SetChildren replaces w's child list. New children must be detached or
// already children of w; children dropped from the list become detached and
// stay live until removed.
func (t *Tree) SetChildren(w id.WidgetID, children []id.WidgetID) {
	d := t.get("set_children", w)
	for _, c := range d.Children {
		t.get("set_children", c).parent = 0
	}
	for _, c := range children {
		cd := t.get("set_children", c)
		if cd.parent.Valid() {
			panic(fmt.Sprintf("widget: SetChildren: %s already has parent %s", c, cd.parent))
		}
		cd.parent = w
	}
	d.Children = append(d.Children[:0:0], children...)
	t.MarkNeedsLayout(w)
}

// AppendChild attaches the detached child at the end of w's children.
func (t *Tree) AppendChild(w, child id.WidgetID) {
	d := t.get("append_child", w)
	cd := t.get("append_child", child)
	if cd.parent.Valid() {
		panic(fmt.Sprintf("widget: AppendChild: %s already has parent %s", child, cd.parent))
	}
	cd.parent = w
	d.Children = append(d.Children, child)
	t.MarkNeedsLayout(w)
}

// ReplaceChild removes the subtree at w's child index i and attaches the
// detached child in its place.
func (t *Tree) ReplaceChild(w id.WidgetID, i int, child id.WidgetID) {
	d := t.get("replace_child", w)
	old := d.Children[i]
	cd := t.get("replace_child", child)
	if cd.parent.Valid() {
		panic(fmt.Sprintf("widget: ReplaceChild: %s already has parent %s", child, cd.parent))
	}
	t.get("replace_child", old).parent = 0
	t.Remove(old)
	cd.parent = w
	d.Children[i] = child
	t.MarkNeedsLayout(w)
}

// RemoveChild removes the subtree at w's child index i.
func (t *Tree) RemoveChild(w id.WidgetID, i int) {
	d := t.get("remove_child", w)
	t.Remove(d.Children[i])
}

// Remove deletes the subtree rooted at w, detaching it from its parent.
// Widgets implementing Disposer are disposed children first.
func (t *Tree) Remove(w id.WidgetID) {
	d := t.get("remove", w)
	if p, ok := t.nodes[d.parent]; ok {
		for i, c := range p.Children {
			if c == w {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
		t.MarkNeedsLayout(p.ID)
	}
	if t.root == w {
		t.root = 0
	}

	// Post-order so children are disposed before their parents.
	var order []*Data
	stack := []*Data{d}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		for _, c := range n.Children {
			stack = append(stack, t.get("remove", c))
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if disp, ok := n.Widget.(Disposer); ok {
			disp.Dispose()
		}
		delete(t.nodes, n.ID)
	}
}

// MarkNeedsLayout flags w and its ancestors for layout.
func (t *Tree) MarkNeedsLayout(w id.WidgetID) {
	for d, ok := t.nodes[w]; ok; d, ok = t.nodes[d.parent] {
		d.Flags |= NeedsLayout | NeedsDraw
	}
}

// MarkNeedsDraw flags w for drawing.
func (t *Tree) MarkNeedsDraw(w id.WidgetID) {
	t.get("mark_needs_draw", w).Flags |= NeedsDraw
}

// NeedsLayout reports whether the root has pending layout.
func (t *Tree) NeedsLayout() bool {
	d, ok := t.nodes[t.root]
	return ok && d.Flags&NeedsLayout != 0
}

// Walk visits the subtree at from in pre-order. Returning false from fn skips
// the node's children.
func (t *Tree) Walk(from id.WidgetID, fn func(path id.Path, d *Data) bool) {
	type item struct {
		path id.Path
		data *Data
	}
	start := t.get("walk", from)
	stack := []item{{path: id.Path{from}, data: start}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(it.path, it.data) {
			continue
		}
		for i := len(it.data.Children) - 1; i >= 0; i-- {
			c := it.data.Children[i]
			stack = append(stack, item{path: it.path.Child(c), data: t.get("walk", c)})
		}
	}
}

// PathOf returns the path from the root to w. It panics if w is stale and
// returns nil if w is not connected to the root.
func (t *Tree) PathOf(w id.WidgetID) id.Path {
	var rev []id.WidgetID
	for cur := w; cur.Valid(); cur = t.get("path_of", cur).parent {
		rev = append(rev, cur)
	}
	if rev[len(rev)-1] != t.root {
		return nil
	}
	out := make(id.Path, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// Resolve returns the nodes along path. It fails if the path does not start
// at the root or a step is not a direct child of the previous one, and
// panics on stale ids.
func (t *Tree) Resolve(path id.Path) ([]*Data, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("widget: resolve: empty path")
	}
	if path.Root() != t.root {
		return nil, fmt.Errorf("widget: resolve %s: does not start at root %s", path, t.root)
	}
	out := make([]*Data, len(path))
	for i, w := range path {
		d := t.get("resolve", w)
		if i > 0 && d.parent != path[i-1] {
			return nil, fmt.Errorf("widget: resolve %s: %s is not a child of %s", path, w, path[i-1])
		}
		out[i] = d
	}
	return out, nil
}

// Valid reports whether path addresses live nodes connected from the root.
func (t *Tree) Valid(path id.Path) bool {
	if len(path) == 0 || path.Root() != t.root {
		return false
	}
	for i, w := range path {
		d, ok := t.nodes[w]
		if !ok || (i > 0 && d.parent != path[i-1]) {
			return false
		}
	}
	return true
}

// Dump writes an indented description of the tree.
func (t *Tree) Dump(w io.Writer) error {
	if !t.root.Valid() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	var err error
	t.Walk(t.root, func(path id.Path, d *Data) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s %s pos=(%g,%g) size=%gx%g\n",
			strings.Repeat("  ", len(path)-1), Name(d.Widget), d.ID,
			d.Position.X, d.Position.Y, d.Size.Width, d.Size.Height)
		return true
	})
	return err
}
