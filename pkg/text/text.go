// Package text is the boundary between widgets and the font shaping service.
//
// Shaping itself is an external collaborator. Widgets only see a Shaper
// through the FontContext handed to every layout call; the context caches
// layouts for the lifetime of a widget tree.
package text

import (
	"math"
	"strings"

	"github.com/go-drift/vessel/pkg/graphics"
)

// Style selects how a string is shaped and drawn.
type Style struct {
	// Size is the font size in logical pixels. Defaults to 14 if zero.
	Size float64
	// Color is the fill color used when drawing.
	Color graphics.Color
	// LineHeight multiplies the natural line height. Defaults to 1 if zero.
	LineHeight float64
}

// DefaultFontSize is used when Style.Size is zero.
const DefaultFontSize = 14

func (s Style) size() float64 {
	if s.Size <= 0 {
		return DefaultFontSize
	}
	return s.Size
}

func (s Style) lineHeight() float64 {
	if s.LineHeight <= 0 {
		return 1
	}
	return s.LineHeight
}

// Line is one shaped line.
type Line struct {
	Text string
	// Width is the advance width of the line.
	Width float64
	// Baseline is the distance from the layout top to this line's baseline.
	Baseline float64
}

// Layout is the immutable result of shaping a string.
type Layout struct {
	Text  string
	Style Style
	Lines []Line
	Size  graphics.Size
}

// Shaper measures and breaks text. Implementations must be deterministic
// for identical input.
type Shaper interface {
	Shape(text string, style Style, maxWidth float64) *Layout
}

// metrics describes one face at one size.
type metrics struct {
	ascent     float64
	lineHeight float64
	advance    func(string) float64
}

// shapeLines greedily wraps words into lines no wider than maxWidth.
// Words wider than maxWidth get a line of their own.
func shapeLines(s string, style Style, maxWidth float64, m metrics) *Layout {
	lineHeight := m.lineHeight * style.lineHeight()
	out := &Layout{Text: s, Style: style}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		lines = append(lines, wrap(paragraph, maxWidth, m.advance)...)
	}

	width := 0.0
	for i, l := range lines {
		w := m.advance(l)
		width = math.Max(width, w)
		out.Lines = append(out.Lines, Line{
			Text:     l,
			Width:    w,
			Baseline: float64(i)*lineHeight + m.ascent,
		})
	}
	out.Size = graphics.Size{Width: math.Ceil(width), Height: math.Ceil(float64(len(lines)) * lineHeight)}
	return out
}

func wrap(paragraph string, maxWidth float64, advance func(string) float64) []string {
	if math.IsInf(maxWidth, 1) || advance(paragraph) <= maxWidth {
		return []string{paragraph}
	}
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if advance(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
