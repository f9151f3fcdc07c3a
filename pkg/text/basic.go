package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// basicFaceSize is the pixel size the basicfont face was designed at.
const basicFaceSize = 13.0

// BasicShaper measures text with the fixed 7x13 bitmap face scaled to the
// requested size. It needs no font files, which makes layout deterministic in
// tests and headless tools.
type BasicShaper struct{}

// Shape implements Shaper.
func (BasicShaper) Shape(s string, style Style, maxWidth float64) *Layout {
	face := basicfont.Face7x13
	scale := style.size() / basicFaceSize
	fm := face.Metrics()
	m := metrics{
		ascent:     float64(fm.Ascent.Ceil()) * scale,
		lineHeight: float64(fm.Height.Ceil()) * scale,
		advance: func(str string) float64 {
			return float64(font.MeasureString(face, str)) / 64 * scale
		},
	}
	return shapeLines(s, style, maxWidth, m)
}
