package text

import (
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	ggtext "github.com/gogpu/gg/text"
)

// FaceShaper shapes with a scalable outline font through gg's text package.
type FaceShaper struct {
	source *ggtext.FontSource

	mu    sync.Mutex
	faces map[float64]ggtext.Face
}

// NewFaceShaper parses font data (TTF/OTF). Nil data selects the bundled
// Latin Modern Roman face.
func NewFaceShaper(data []byte) (*FaceShaper, error) {
	if data == nil {
		data = lmroman10regular.TTF
	}
	src, err := ggtext.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &FaceShaper{source: src, faces: make(map[float64]ggtext.Face)}, nil
}

// Face returns the gg face for size, creating it on first use.
func (s *FaceShaper) Face(size float64) ggtext.Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.source.Face(size)
	s.faces[size] = f
	return f
}

// Shape implements Shaper.
func (s *FaceShaper) Shape(str string, style Style, maxWidth float64) *Layout {
	face := s.Face(style.size())
	fm := face.Metrics()
	m := metrics{
		ascent:     fm.Ascent,
		lineHeight: fm.LineHeight(),
		advance:    face.Advance,
	}
	return shapeLines(str, style, maxWidth, m)
}
