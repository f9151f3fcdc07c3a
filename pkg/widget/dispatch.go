package widget

import (
	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
)

// Dispatch delivers ev along path, starting at the root. ev is given in the
// root's parent coordinates and re-expressed in each node's local space.
// Dispatch stops at the first node that captures the event. Widgets that
// implement MessageMapper rewrite messages emitted by their descendants.
func (t *Tree) Dispatch(path id.Path, ev event.WidgetEvent, cx *event.Cx) event.Status {
	nodes, err := t.Resolve(path)
	if err != nil {
		panic(err)
	}
	mapped := 0
	defer func() {
		for ; mapped > 0; mapped-- {
			cx.PopMapper()
		}
	}()

	scroll := graphics.Offset{}
	for _, d := range nodes {
		ev = ev.Translated(d.Position.Sub(scroll))
		if d.Widget.Event(ev, cx) == event.Captured {
			return event.Captured
		}
		if m, ok := d.Widget.(MessageMapper); ok {
			cx.PushMapper(m.MapMessage)
			mapped++
		}
		scroll = scrollOffset(d.Widget)
	}
	return event.Ignored
}

// SendHover calls SetHover(hovered) on each node of path from the root,
// stopping at the first that captures. Nodes that have left the tree end the
// walk, so a path recorded before a rebuild is safe to clear.
func (t *Tree) SendHover(path id.Path, hovered bool) event.Status {
	for i, w := range path {
		d, ok := t.nodes[w]
		if !ok || (i > 0 && d.parent != path[i-1]) {
			return event.Ignored
		}
		if d.Widget.SetHover(hovered) == event.Captured {
			return event.Captured
		}
	}
	return event.Ignored
}
