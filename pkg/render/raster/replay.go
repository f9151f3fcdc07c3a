package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/render"
	"github.com/go-drift/vessel/pkg/text"
)

func (r *Renderer) rasterize(w, h int, scale float64, cmds []render.Command) (image.Image, error) {
	dc := gg.NewContext(w, h)
	defer dc.Close()
	rp := replayer{Renderer: r, base: graphics.Scaling(scale, scale), scale: scale}
	for i, c := range cmds {
		if err := rp.replay(dc, c); err != nil {
			return nil, fmt.Errorf("command %d (%T): %w", i, c, err)
		}
	}
	return dc.Image(), nil
}

// replayer draws commands into one buffer. base maps logical to device
// pixels.
type replayer struct {
	*Renderer
	base  graphics.Affine
	scale float64
}

func (r replayer) device(a graphics.Affine) gg.Matrix { return matrix(a.Then(r.base)) }

func (r replayer) replay(dc *gg.Context, c render.Command) error {
	switch c := c.(type) {
	case render.PushLayer:
		dc.Push()
		dc.SetTransform(r.device(c.Transform))
		appendPath(dc, graphics.RRectPath(c.Clip))
		dc.Clip()
		dc.PushLayer(blendMode(c.Blend), 1)
	case render.PopLayer:
		dc.PopLayer()
		dc.Pop()
	case render.FillShape:
		dc.SetTransform(r.device(c.Transform))
		appendPath(dc, c.Path)
		dc.SetColor(c.Brush.Color.NRGBA())
		return dc.Fill()
	case render.StrokeShape:
		dc.SetTransform(r.device(c.Transform))
		appendPath(dc, c.Path)
		dc.SetColor(c.Brush.Color.NRGBA())
		dc.SetLineWidth(c.Width * r.scale)
		return dc.Stroke()
	case render.DrawText:
		if c.Layout == nil {
			return nil
		}
		dc.SetFont(r.shaper.Face(textSize(c.Layout.Style) * r.scale))
		dc.SetColor(c.Brush.Color.NRGBA())
		for _, line := range c.Layout.Lines {
			// DrawString works in device space.
			p := c.Transform.Then(r.base).Apply(graphics.Offset{Y: line.Baseline})
			dc.DrawString(line.Text, p.X, p.Y)
		}
	case render.DrawImage:
		if c.Image == nil {
			return nil
		}
		dc.SetTransform(r.device(c.Transform))
		dc.DrawImageEx(gg.ImageBufFromImage(c.Image), gg.DrawImageOptions{
			DstWidth:  c.Size.Width,
			DstHeight: c.Size.Height,
			Opacity:   1,
			BlendMode: gg.BlendNormal,
		})
	default:
		return fmt.Errorf("unsupported command")
	}
	return nil
}

func matrix(a graphics.Affine) gg.Matrix {
	return gg.Matrix{A: a.A, B: a.B, C: a.C, D: a.D, E: a.E, F: a.F}
}

func blendMode(m graphics.BlendMode) gg.BlendMode {
	switch m {
	case graphics.BlendMultiply:
		return gg.BlendMultiply
	case graphics.BlendScreen:
		return gg.BlendScreen
	default:
		return gg.BlendNormal
	}
}

func textSize(s text.Style) float64 {
	if s.Size <= 0 {
		return text.DefaultFontSize
	}
	return s.Size
}

func appendPath(dc *gg.Context, p graphics.Path) {
	dc.ClearPath()
	for _, el := range p.Elements {
		pts := el.Points
		switch el.Verb {
		case graphics.VerbMoveTo:
			dc.MoveTo(pts[0].X, pts[0].Y)
		case graphics.VerbLineTo:
			dc.LineTo(pts[0].X, pts[0].Y)
		case graphics.VerbQuadTo:
			dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case graphics.VerbCubicTo:
			dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case graphics.VerbClose:
			dc.ClosePath()
		}
	}
}
