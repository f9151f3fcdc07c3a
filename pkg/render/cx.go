package render

import (
	"image"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/text"
)

// Cx records commands for one paint pass.
//
// It tracks the current transform so widgets draw in local coordinates.
type Cx struct {
	commands   []Command
	transforms []graphics.Affine
}

// NewCx returns an empty context with an identity transform.
func NewCx() *Cx {
	return &Cx{transforms: []graphics.Affine{graphics.Identity()}}
}

// Transform returns the transform in effect.
func (cx *Cx) Transform() graphics.Affine {
	return cx.transforms[len(cx.transforms)-1]
}

// Depth returns the number of open layers.
func (cx *Cx) Depth() int {
	return len(cx.transforms) - 1
}

// PushLayer opens a layer whose local coordinates are mapped through local
// followed by the current transform. clip is in the new local coordinates.
func (cx *Cx) PushLayer(blend graphics.BlendMode, local graphics.Affine, clip graphics.RRect) {
	t := local.Then(cx.Transform())
	cx.transforms = append(cx.transforms, t)
	cx.commands = append(cx.commands, PushLayer{Blend: blend, Transform: t, Clip: clip})
}

// PopLayer closes the innermost layer. Popping with no open layer panics.
func (cx *Cx) PopLayer() {
	if cx.Depth() == 0 {
		panic("render: PopLayer without matching PushLayer")
	}
	cx.transforms = cx.transforms[:len(cx.transforms)-1]
	cx.commands = append(cx.commands, PopLayer{})
}

// Fill records a fill of p.
func (cx *Cx) Fill(p graphics.Path, brush graphics.Brush) {
	cx.commands = append(cx.commands, FillShape{Transform: cx.Transform(), Path: p, Brush: brush})
}

// Stroke records a stroke of p.
func (cx *Cx) Stroke(p graphics.Path, brush graphics.Brush, width float64) {
	cx.commands = append(cx.commands, StrokeShape{Transform: cx.Transform(), Path: p, Brush: brush, Width: width})
}

// FillRRect is shorthand for filling a rounded rectangle.
func (cx *Cx) FillRRect(rr graphics.RRect, c graphics.Color) {
	cx.Fill(graphics.RRectPath(rr), graphics.SolidBrush(c))
}

// DrawText records a text layout at origin.
func (cx *Cx) DrawText(l *text.Layout, origin graphics.Offset, brush graphics.Brush) {
	cx.commands = append(cx.commands, DrawText{
		Transform: cx.Transform().PreTranslate(origin.X, origin.Y),
		Layout:    l,
		Brush:     brush,
	})
}

// DrawImage records img scaled to size at origin.
func (cx *Cx) DrawImage(img image.Image, origin graphics.Offset, size graphics.Size) {
	cx.commands = append(cx.commands, DrawImage{
		Transform: cx.Transform().PreTranslate(origin.X, origin.Y),
		Image:     img,
		Size:      size,
	})
}

// Append records an already built command. Transforms are not adjusted.
func (cx *Cx) Append(c Command) {
	cx.commands = append(cx.commands, c)
}

// Commands returns the recorded list.
func (cx *Cx) Commands() []Command {
	return cx.commands
}

// Reset clears the context for reuse.
func (cx *Cx) Reset() {
	cx.commands = cx.commands[:0]
	cx.transforms = cx.transforms[:1]
}
