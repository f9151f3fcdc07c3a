// Package raster is a software renderer for render frames, built on gg.
//
// Each command group is rasterized into its own transparent buffer in
// parallel, then the buffers are composited in order over the frame
// background. It serves headless tools and tests in place of a GPU backend.
package raster

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/logging"
	"github.com/go-drift/vessel/pkg/render"
	"github.com/go-drift/vessel/pkg/text"
)

// Renderer rasterizes frames. It is safe for use from one goroutine at a
// time; Image may be called concurrently with Render.
type Renderer struct {
	workers int
	shaper  *text.FaceShaper

	mu     sync.Mutex
	last   image.Image
	frames int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWorkers bounds how many groups are rasterized at once.
func WithWorkers(n int) Option {
	return func(r *Renderer) { r.workers = n }
}

// WithShaper selects the font used for DrawText commands.
func WithShaper(s *text.FaceShaper) Option {
	return func(r *Renderer) { r.shaper = s }
}

// New returns a renderer. Without WithShaper the bundled font is loaded.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.shaper == nil {
		s, err := text.NewFaceShaper(nil)
		if err != nil {
			return nil, fmt.Errorf("raster: %w", err)
		}
		r.shaper = s
	}
	return r, nil
}

// Render rasterizes frame and keeps the result for Image and EncodePNG.
func (r *Renderer) Render(ctx context.Context, frame render.Frame) error {
	scale := frame.PixelScale()
	w, h := pixelSize(graphics.Size{Width: frame.Size.Width * scale, Height: frame.Size.Height * scale})
	if w == 0 || h == 0 {
		return fmt.Errorf("raster: empty frame %vx%v", frame.Size.Width, frame.Size.Height)
	}

	layers, err := render.Encode(ctx, frame.Groups, r.workers, func(_ context.Context, group []render.Command) (image.Image, error) {
		return r.rasterize(w, h, scale, group)
	})
	if err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.SetColor(frame.Background.NRGBA())
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("raster: background: %w", err)
	}
	for _, layer := range layers {
		dc.DrawImage(gg.ImageBufFromImage(layer), 0, 0)
	}

	r.mu.Lock()
	r.last = dc.Image()
	r.frames++
	r.mu.Unlock()

	logging.Logger().Debug("raster frame", "width", w, "height", h, "groups", len(frame.Groups), "commands", frame.Len())
	return nil
}

// Image returns the last rendered frame, or nil before the first Render.
func (r *Renderer) Image() image.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Frames returns how many frames have been rendered.
func (r *Renderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// EncodePNG writes the last rendered frame as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	img := r.Image()
	if img == nil {
		return fmt.Errorf("raster: no frame rendered")
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	return dc.EncodePNG(w)
}

func pixelSize(s graphics.Size) (int, int) {
	if !s.IsFinite() || s.Width <= 0 || s.Height <= 0 {
		return 0, 0
	}
	return int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
}
