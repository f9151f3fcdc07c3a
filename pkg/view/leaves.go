package view

import (
	"image"

	"github.com/go-drift/vessel/pkg/errors"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/text"
	"github.com/go-drift/vessel/pkg/widget"
)

// leaf is embedded by views without children.
type leaf struct{}

func (leaf) Teardown(*BuildCx, id.WidgetID) {}

// Text shows styled text.
type Text struct {
	leaf
	Content string
	Style   text.Style
}

func (Text) Kind() Kind { return KindText }

func (t Text) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(&widget.Text{Content: t.Content, Style: t.Style})
}

func (t Text) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Text](old)
	tw := as[*widget.Text](cx, w)
	set(cx, w, &tw.Content, o.Content, t.Content, true)
	set(cx, w, &tw.Style, o.Style, t.Style, true)
	return w
}

// Str is a string used directly as a view, drawn in the default style.
type Str string

func (Str) Kind() Kind { return KindStr }

func (s Str) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(&widget.Text{Content: string(s), Style: text.Style{Color: graphics.ColorWhite}})
}

func (s Str) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	tw := as[*widget.Text](cx, w)
	set(cx, w, &tw.Content, string(prev[Str](old)), string(s), true)
	return w
}

func (Str) Teardown(*BuildCx, id.WidgetID) {}

// Spacer is a size used directly as a view: fixed empty space.
type Spacer graphics.Size

func (Spacer) Kind() Kind { return KindSpacer }

func (s Spacer) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(&widget.Empty{Hint: layout.FromSize(graphics.Size(s))})
}

func (s Spacer) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	ew := as[*widget.Empty](cx, w)
	o := prev[Spacer](old)
	set(cx, w, &ew.Hint, layout.FromSize(graphics.Size(o)), layout.FromSize(graphics.Size(s)), true)
	return w
}

func (Spacer) Teardown(*BuildCx, id.WidgetID) {}

// Empty draws nothing. The zero value takes no space.
type Empty struct {
	leaf
	Size layout.WidgetSize
}

// Fill returns an Empty that takes all available space.
func Fill() Empty { return Empty{Size: layout.FlexibleSize(1)} }

func (Empty) Kind() Kind { return KindEmpty }

func (e Empty) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(&widget.Empty{Hint: e.Size})
}

func (e Empty) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	ew := as[*widget.Empty](cx, w)
	set(cx, w, &ew.Hint, prev[Empty](old).Size, e.Size, true)
	return w
}

// Image shows a decoded image. Width and Height override the natural size
// when non-zero. See ImageFromFile.
type Image struct {
	leaf
	Source image.Image
	Width  float64
	Height float64
}

func (Image) Kind() Kind { return KindImage }

func (i Image) Build(cx *BuildCx) id.WidgetID {
	w := widget.NewImage(i.Source)
	w.Width, w.Height = i.Width, i.Height
	return cx.Tree.Insert(w)
}

func (i Image) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Image](old)
	iw := as[*widget.Image](cx, w)
	if i.Source == nil {
		panic(&errors.AssetError{Path: "<memory>", Reason: "nil image"})
	}
	set(cx, w, &iw.Source, o.Source, i.Source, true)
	set(cx, w, &iw.Width, o.Width, i.Width, true)
	set(cx, w, &iw.Height, o.Height, i.Height, true)
	return w
}

// Svg fills a vector path authored in ViewBox coordinates.
type Svg struct {
	leaf
	Path    graphics.Path
	ViewBox graphics.Size
	Color   graphics.Color
	Size    layout.WidgetSize
}

func (Svg) Kind() Kind { return KindSvg }

func (s Svg) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(&widget.Svg{Path: s.Path, ViewBox: s.ViewBox, Color: s.Color, Hint: s.Size})
}

func (s Svg) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Svg](old)
	sw := as[*widget.Svg](cx, w)
	if !o.Path.Equal(s.Path) {
		sw.Path = s.Path
		cx.wrote(w, false)
	}
	set(cx, w, &sw.ViewBox, o.ViewBox, s.ViewBox, false)
	set(cx, w, &sw.Color, o.Color, s.Color, false)
	set(cx, w, &sw.Hint, o.Size, s.Size, true)
	return w
}

// Slider edits a value in [Min, Max] and emits widget.SliderChanged with Tag.
// The widget keeps a dragged value until the view supplies a different one.
type Slider struct {
	leaf
	Value      float64
	Min        float64
	Max        float64
	Tag        any
	Size       layout.WidgetSize
	TrackColor graphics.Color
	ThumbColor graphics.Color
}

// NewSlider returns a full-width slider with default colors.
func NewSlider(tag any, value, min, max float64) Slider {
	return Slider{
		Value:      value,
		Min:        min,
		Max:        max,
		Tag:        tag,
		Size:       layout.WidgetSize{Width: layout.Flexible(1), Height: layout.Fixed(20)},
		TrackColor: graphics.RGB(0x55, 0x5b, 0x68),
		ThumbColor: graphics.RGB(0xe6, 0xe8, 0xec),
	}
}

func (Slider) Kind() Kind { return KindSlider }

func (s Slider) Build(cx *BuildCx) id.WidgetID {
	return cx.Tree.Insert(&widget.Slider{
		Value:      s.Value,
		Min:        s.Min,
		Max:        s.Max,
		Tag:        s.Tag,
		Hint:       s.Size,
		TrackColor: s.TrackColor,
		ThumbColor: s.ThumbColor,
	})
}

func (s Slider) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Slider](old)
	sw := as[*widget.Slider](cx, w)
	set(cx, w, &sw.Value, o.Value, s.Value, false)
	set(cx, w, &sw.Min, o.Min, s.Min, false)
	set(cx, w, &sw.Max, o.Max, s.Max, false)
	setMessage(cx, w, &sw.Tag, o.Tag, s.Tag)
	set(cx, w, &sw.Hint, o.Size, s.Size, true)
	set(cx, w, &sw.TrackColor, o.TrackColor, s.TrackColor, false)
	set(cx, w, &sw.ThumbColor, o.ThumbColor, s.ThumbColor, false)
	return w
}
