package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/render"
	"github.com/go-drift/vessel/pkg/text"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(WithWorkers(2))
	require.NoError(t, err)
	return r
}

func TestRenderFillsInsideLayer(t *testing.T) {
	r := newRenderer(t)

	cx := render.NewCx()
	cx.PushLayer(graphics.BlendSrcOver, graphics.Translation(10, 10), graphics.RRect{Rect: graphics.RectFromLTWH(0, 0, 20, 20)})
	// Larger than the clip; only the clipped part should show.
	cx.FillRRect(graphics.RRect{Rect: graphics.RectFromLTWH(0, 0, 40, 40)}, graphics.ColorRed)
	cx.PopLayer()
	groups, err := render.Split(cx.Commands())
	require.NoError(t, err)

	err = r.Render(t.Context(), render.Frame{
		Size:       graphics.Size{Width: 64, Height: 64},
		Background: graphics.ColorWhite,
		Groups:     groups,
	})
	require.NoError(t, err)

	img := r.Image()
	require.NotNil(t, img)
	require.Equal(t, 64, img.Bounds().Dx())

	cr, cg, _, _ := img.At(20, 20).RGBA()
	require.Greater(t, cr, uint32(0xf000), "inside should be red")
	require.Less(t, cg, uint32(0x1000), "inside should be red")

	outside := img.At(45, 45)
	or, og, ob, _ := outside.RGBA()
	require.Greater(t, or&og&ob, uint32(0xf000), "outside clip should stay white")
	require.Equal(t, 1, r.Frames())
}

func TestRenderText(t *testing.T) {
	r := newRenderer(t)
	shaper, err := text.NewFaceShaper(nil)
	require.NoError(t, err)

	cx := render.NewCx()
	layout := shaper.Shape("Hi", text.Style{Size: 24}, 100)
	cx.DrawText(layout, graphics.Offset{X: 2, Y: 2}, graphics.SolidBrush(graphics.ColorBlack))
	err = r.Render(t.Context(), render.Frame{
		Size:       graphics.Size{Width: 40, Height: 40},
		Background: graphics.ColorWhite,
		Groups:     [][]render.Command{cx.Commands()},
	})
	require.NoError(t, err)

	dark := false
	img := r.Image()
	for y := 0; y < 40 && !dark; y++ {
		for x := 0; x < 40; x++ {
			if v, _, _, _ := img.At(x, y).RGBA(); v < 0x8000 {
				dark = true
				break
			}
		}
	}
	require.True(t, dark, "expected some glyph pixels")
}

func TestEncodePNG(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.Error(t, r.EncodePNG(&buf), "no frame yet")

	require.NoError(t, r.Render(t.Context(), render.Frame{
		Size:       graphics.Size{Width: 8, Height: 8},
		Background: graphics.ColorBlue,
	}))
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dy())
}

func TestRenderRejectsEmptyFrame(t *testing.T) {
	r := newRenderer(t)
	require.Error(t, r.Render(t.Context(), render.Frame{}))
}
