package widget

import (
	"image"

	"github.com/go-drift/vessel/pkg/errors"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/render"
	"github.com/go-drift/vessel/pkg/text"
)

// Empty occupies space and draws nothing.
type Empty struct {
	Base
	Hint layout.WidgetSize
}

// SizeHint implements Widget.
func (e *Empty) SizeHint() layout.WidgetSize { return e.Hint }

// Layout implements Widget.
func (e *Empty) Layout(_ *LayoutCx, c layout.Constraints) graphics.Size {
	return c.Constrain(e.Hint.Resolve(c))
}

// Text draws a shaped string.
type Text struct {
	Base
	Content string
	Style   text.Style

	layout *text.Layout
	size   graphics.Size
}

// SizeHint implements Widget. It reports the size from the last layout.
func (t *Text) SizeHint() layout.WidgetSize { return layout.FromSize(t.size) }

// Layout implements Widget.
func (t *Text) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	t.layout = cx.Fonts().Layout(t.Content, t.Style, c.Max.Width)
	t.size = c.Constrain(t.layout.Size)
	return t.size
}

// Draw implements Widget.
func (t *Text) Draw(cx *render.Cx, _ graphics.Size) {
	if t.layout != nil && t.Content != "" {
		cx.DrawText(t.layout, graphics.Offset{}, graphics.SolidBrush(t.Style.Color))
	}
}

// Image draws a decoded image. Width and Height override the natural size
// when non-zero.
type Image struct {
	Base
	Source image.Image
	Width  float64
	Height float64
}

// NewImage returns an image widget. A nil source is an unsupported asset
// and panics with *errors.AssetError.
func NewImage(src image.Image) *Image {
	if src == nil {
		panic(&errors.AssetError{Path: "<memory>", Reason: "nil image"})
	}
	return &Image{Source: src}
}

// SizeHint implements Widget.
func (i *Image) SizeHint() layout.WidgetSize {
	b := i.Source.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if i.Width > 0 {
		w = i.Width
	}
	if i.Height > 0 {
		h = i.Height
	}
	return layout.FixedSize(w, h)
}

// Layout implements Widget.
func (i *Image) Layout(_ *LayoutCx, c layout.Constraints) graphics.Size {
	return c.Constrain(i.SizeHint().Resolve(c))
}

// Draw implements Widget.
func (i *Image) Draw(cx *render.Cx, size graphics.Size) {
	cx.DrawImage(i.Source, graphics.Offset{}, size)
}

// Svg fills a vector path authored in a ViewBox coordinate space, scaled to
// the widget's size.
type Svg struct {
	Base
	Path    graphics.Path
	ViewBox graphics.Size
	Color   graphics.Color
	Hint    layout.WidgetSize
}

// SizeHint implements Widget.
func (s *Svg) SizeHint() layout.WidgetSize { return s.Hint }

// Layout implements Widget.
func (s *Svg) Layout(cx *LayoutCx, c layout.Constraints) graphics.Size {
	for _, axis := range []layout.Axis{layout.Horizontal, layout.Vertical} {
		if s.Hint.Along(axis).IsFlexible() {
			c = cx.RequireBounded(c, axis)
		}
	}
	return c.Constrain(s.Hint.Resolve(c))
}

// Draw implements Widget.
func (s *Svg) Draw(cx *render.Cx, size graphics.Size) {
	if s.ViewBox.IsEmpty() || size.IsEmpty() {
		return
	}
	scale := graphics.Scaling(size.Width/s.ViewBox.Width, size.Height/s.ViewBox.Height)
	cx.PushLayer(graphics.BlendSrcOver, scale, graphics.RRect{Rect: graphics.RectFromOffsetSize(graphics.Offset{}, s.ViewBox)})
	cx.Fill(s.Path, graphics.SolidBrush(s.Color))
	cx.PopLayer()
}
