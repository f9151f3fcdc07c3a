package widget

import (
	"math"

	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/layout"
)

// Scroll shows a window onto a single child that may be larger than itself
// along Axis. The child receives unbounded constraints on that axis.
type Scroll struct {
	Base
	Axis layout.Axis
	Hint layout.WidgetSize
	// Offset is the scroll position along Axis.
	Offset float64

	viewport float64
	content  float64
}

// NewScroll returns a scroll view filling the available space.
func NewScroll(axis layout.Axis) *Scroll {
	return &Scroll{Axis: axis, Hint: layout.FlexibleSize(1)}
}

// SizeHint implements Widget.
func (s *Scroll) SizeHint() layout.WidgetSize { return s.Hint }

// ScrollOffset implements Scrollable.
func (s *Scroll) ScrollOffset() graphics.Offset {
	return s.Axis.Offset(s.Offset, 0)
}

// MaxOffset returns the largest valid Offset from the last layout.
func (s *Scroll) MaxOffset() float64 {
	return math.Max(0, s.content-s.viewport)
}

// Layout implements Widget.
func (s *Scroll) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	for _, axis := range []layout.Axis{layout.Horizontal, layout.Vertical} {
		if s.Hint.Along(axis).IsFlexible() {
			c = cx.RequireBounded(c, axis)
		}
	}
	size := c.Constrain(s.Hint.Resolve(c))
	s.viewport = s.Axis.Main(size)
	s.content = 0
	if children := cx.Children(); len(children) > 0 {
		cross := s.Axis.Cross()
		cc := layout.Unbounded().TightOn(cross, cross.Main(size))
		cs := cx.LayoutChild(children[0], cc)
		cx.SetChildPosition(children[0], graphics.Offset{})
		s.content = s.Axis.Main(cs)
	}
	s.Offset = clampOffset(s.Offset, s.MaxOffset())
	return size
}

// ScrollBy moves the offset by delta and reports whether it changed.
func (s *Scroll) ScrollBy(delta float64) bool {
	next := clampOffset(s.Offset+delta, s.MaxOffset())
	if next == s.Offset {
		return false
	}
	s.Offset = next
	return true
}

// Event implements Widget.
func (s *Scroll) Event(ev event.WidgetEvent, cx *event.Cx) event.Status {
	m, ok := ev.(event.Mouse)
	if !ok || m.Kind != event.MouseScroll {
		return event.Ignored
	}
	if s.ScrollBy(s.Axis.Main(graphics.Size{Width: m.Delta.X, Height: m.Delta.Y})) {
		return event.Captured
	}
	return event.Ignored
}

func clampOffset(v, max float64) float64 {
	return math.Max(0, math.Min(v, max))
}
