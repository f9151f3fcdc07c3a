package widget

import (
	"math"

	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/render"
)

// SliderChanged is emitted while a slider is dragged.
type SliderChanged struct {
	// Tag identifies the slider; it is copied from Slider.Tag.
	Tag   any
	Value float64
}

// Slider picks a value in [Min, Max] by dragging a thumb along a track.
type Slider struct {
	Base
	Value      float64
	Min        float64
	Max        float64
	Tag        any
	Hint       layout.WidgetSize
	TrackColor graphics.Color
	ThumbColor graphics.Color

	dragging bool
	hovered  bool
	size     graphics.Size
}

const sliderThumbRadius = 8

// SizeHint implements Widget.
func (s *Slider) SizeHint() layout.WidgetSize { return s.Hint }

// Layout implements Widget.
func (s *Slider) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	if s.Hint.Width.IsFlexible() {
		c = cx.RequireBounded(c, layout.Horizontal)
	}
	s.size = c.Constrain(s.Hint.Resolve(c))
	return s.size
}

// Fraction returns Value's position within the range, in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (s.Value-s.Min)/(s.Max-s.Min)))
}

func (s *Slider) valueAt(x float64) float64 {
	track := s.size.Width - 2*sliderThumbRadius
	if track <= 0 {
		return s.Min
	}
	t := math.Max(0, math.Min(1, (x-sliderThumbRadius)/track))
	return s.Min + t*(s.Max-s.Min)
}

// Event implements Widget.
func (s *Slider) Event(ev event.WidgetEvent, cx *event.Cx) event.Status {
	pos, ok := ev.Location()
	if !ok {
		return event.Ignored
	}
	switch {
	case event.IsPress(ev):
		if !graphics.RectFromOffsetSize(graphics.Offset{}, s.size).Contains(pos) {
			return event.Ignored
		}
		s.dragging = true
		s.update(pos.X, cx)
		return event.Captured
	case event.IsMove(ev):
		if !s.dragging {
			return event.Ignored
		}
		s.update(pos.X, cx)
		return event.Captured
	case isRelease(ev):
		if !s.dragging {
			return event.Ignored
		}
		s.dragging = false
		return event.Captured
	}
	return event.Ignored
}

func (s *Slider) update(x float64, cx *event.Cx) {
	v := s.valueAt(x)
	if v == s.Value {
		return
	}
	s.Value = v
	cx.Emit(SliderChanged{Tag: s.Tag, Value: v})
}

// SetHover implements Widget.
func (s *Slider) SetHover(hovered bool) event.Status {
	s.hovered = hovered
	return event.Captured
}

// Draw implements Widget.
func (s *Slider) Draw(cx *render.Cx, size graphics.Size) {
	mid := size.Height / 2
	track := graphics.RectFromLTWH(sliderThumbRadius, mid-2, math.Max(0, size.Width-2*sliderThumbRadius), 4)
	cx.FillRRect(graphics.RRectFromRectAndRadius(track, 2), s.TrackColor)
	x := sliderThumbRadius + s.Fraction()*track.Width()
	r := float64(sliderThumbRadius)
	if s.hovered || s.dragging {
		r++
	}
	cx.Fill(graphics.CirclePath(graphics.Offset{X: x, Y: mid}, r), graphics.SolidBrush(s.ThumbColor))
}
