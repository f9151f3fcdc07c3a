package widget

import (
	"fmt"
	"strings"

	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/render"
)

// Widget is a node in the widget tree. Implementations handle only their own
// concerns; children are reached through the LayoutCx during layout and by
// the tree walkers otherwise.
type Widget interface {
	// SizeHint reports the sizing preference on each axis. It must be pure.
	SizeHint() layout.WidgetSize
	// Layout sizes the widget within c, laying out and positioning its
	// children through cx. It must be idempotent.
	Layout(cx *LayoutCx, c layout.Constraints) graphics.Size
	// Event handles ev, given in local coordinates.
	Event(ev event.WidgetEvent, cx *event.Cx) event.Status
	// SetHover toggles the widget's hover state. It does not recurse.
	SetHover(hovered bool) event.Status
	// Draw records the widget's own visuals in local coordinates.
	Draw(cx *render.Cx, size graphics.Size)
}

// Clipper is implemented by widgets with rounded bounds. The radius is used
// for the widget's layer clip and its hit-test entry.
type Clipper interface {
	ClipRadius() float64
}

// Overlay is implemented by widgets that draw above their children.
type Overlay interface {
	DrawOverlay(cx *render.Cx, size graphics.Size)
}

// Scrollable is implemented by widgets that shift their children. Scrollable
// widgets may give children unbounded constraints on their scroll axis.
type Scrollable interface {
	ScrollOffset() graphics.Offset
}

// Disposer is implemented by widgets holding resources that must be released
// when they leave the tree.
type Disposer interface {
	Dispose()
}

// MessageMapper is implemented by widgets that rewrite messages emitted by
// their descendants.
type MessageMapper interface {
	MapMessage(msg any) any
}

// Base provides no-op event, hover and draw handling for embedding.
type Base struct{}

// Event implements Widget.
func (Base) Event(event.WidgetEvent, *event.Cx) event.Status { return event.Ignored }

// SetHover implements Widget.
func (Base) SetHover(bool) event.Status { return event.Ignored }

// Draw implements Widget.
func (Base) Draw(*render.Cx, graphics.Size) {}

// Name returns a short type name for w, used in diagnostics.
func Name(w Widget) string {
	if n, ok := w.(interface{ Name() string }); ok {
		return n.Name()
	}
	name := fmt.Sprintf("%T", w)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
