// Package render defines the command list produced by a paint pass and the
// context widgets record into.
//
// A paint pass yields a flat, ordered list of commands. Layers nest through
// PushLayer/PopLayer pairs; every drawing command carries the absolute
// transform in effect when it was recorded, so a renderer never has to track
// transform state itself.
package render

import (
	"image"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/text"
)

// Command is one render instruction. The set of commands is closed.
type Command interface {
	command()
}

// PushLayer opens a layer composited with Blend and clipped to Clip, which
// is expressed in the layer's own coordinates.
type PushLayer struct {
	Blend     graphics.BlendMode
	Transform graphics.Affine
	Clip      graphics.RRect
}

// PopLayer closes the innermost open layer.
type PopLayer struct{}

// FillShape fills Path with Brush.
type FillShape struct {
	Transform graphics.Affine
	Path      graphics.Path
	Brush     graphics.Brush
}

// StrokeShape strokes Path with Brush at Width.
type StrokeShape struct {
	Transform graphics.Affine
	Path      graphics.Path
	Brush     graphics.Brush
	Width     float64
}

// DrawText draws a shaped layout with its top-left at the transform origin.
type DrawText struct {
	Transform graphics.Affine
	Layout    *text.Layout
	Brush     graphics.Brush
}

// DrawImage draws Image scaled to Size with its top-left at the transform
// origin.
type DrawImage struct {
	Transform graphics.Affine
	Image     image.Image
	Size      graphics.Size
}

func (PushLayer) command()   {}
func (PopLayer) command()    {}
func (FillShape) command()   {}
func (StrokeShape) command() {}
func (DrawText) command()    {}
func (DrawImage) command()   {}
