package graphics

import (
	"math"
	"slices"
)

// Verb identifies a path element.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// PathElement is one drawing instruction. Unused points are zero.
type PathElement struct {
	Verb   Verb
	Points [3]Offset
}

// Path is an immutable-by-convention list of path elements.
type Path struct {
	Elements []PathElement
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) *Path {
	p.Elements = append(p.Elements, PathElement{Verb: VerbMoveTo, Points: [3]Offset{{X: x, Y: y}}})
	return p
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) *Path {
	p.Elements = append(p.Elements, PathElement{Verb: VerbLineTo, Points: [3]Offset{{X: x, Y: y}}})
	return p
}

// QuadTo adds a quadratic Bézier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.Elements = append(p.Elements, PathElement{Verb: VerbQuadTo, Points: [3]Offset{{X: cx, Y: cy}, {X: x, Y: y}}})
	return p
}

// CubicTo adds a cubic Bézier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.Elements = append(p.Elements, PathElement{
		Verb:   VerbCubicTo,
		Points: [3]Offset{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}},
	})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Elements = append(p.Elements, PathElement{Verb: VerbClose})
	return p
}

// RectPath returns a closed rectangle path.
func RectPath(r Rect) Path {
	var p Path
	p.MoveTo(r.Left, r.Top).LineTo(r.Right, r.Top).LineTo(r.Right, r.Bottom).LineTo(r.Left, r.Bottom).Close()
	return p
}

// kappa is the control-point factor for approximating a quarter circle.
const kappa = 0.5522847498

// RRectPath returns a closed rounded rectangle path.
func RRectPath(rr RRect) Path {
	if rr.Radius <= epsilon {
		return RectPath(rr.Rect)
	}
	r := rr.Rect
	rad := math.Min(rr.Radius, math.Min(r.Width(), r.Height())/2)
	k := rad * kappa
	var p Path
	p.MoveTo(r.Left+rad, r.Top).
		LineTo(r.Right-rad, r.Top).
		CubicTo(r.Right-rad+k, r.Top, r.Right, r.Top+rad-k, r.Right, r.Top+rad).
		LineTo(r.Right, r.Bottom-rad).
		CubicTo(r.Right, r.Bottom-rad+k, r.Right-rad+k, r.Bottom, r.Right-rad, r.Bottom).
		LineTo(r.Left+rad, r.Bottom).
		CubicTo(r.Left+rad-k, r.Bottom, r.Left, r.Bottom-rad+k, r.Left, r.Bottom-rad).
		LineTo(r.Left, r.Top+rad).
		CubicTo(r.Left, r.Top+rad-k, r.Left+rad-k, r.Top, r.Left+rad, r.Top).
		Close()
	return p
}

// CirclePath returns a closed circle path.
func CirclePath(center Offset, radius float64) Path {
	return RRectPath(RRect{
		Rect:   Rect{Left: center.X - radius, Top: center.Y - radius, Right: center.X + radius, Bottom: center.Y + radius},
		Radius: radius,
	})
}

// Bounds returns the bounding box of all points, including control points.
func (p Path) Bounds() Rect {
	first := true
	var out Rect
	for _, el := range p.Elements {
		n := 0
		switch el.Verb {
		case VerbMoveTo, VerbLineTo:
			n = 1
		case VerbQuadTo:
			n = 2
		case VerbCubicTo:
			n = 3
		}
		for i := 0; i < n; i++ {
			pt := el.Points[i]
			if first {
				out = Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
				first = false
				continue
			}
			out = out.Union(Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y})
		}
	}
	return out
}

// Brush describes how a shape is filled or stroked.
type Brush struct {
	Color Color
}

// SolidBrush returns a single-color brush.
func SolidBrush(c Color) Brush {
	return Brush{Color: c}
}

// BlendMode selects how a layer is composited onto its backdrop.
type BlendMode uint8

const (
	BlendSrcOver BlendMode = iota
	BlendMultiply
	BlendScreen
)

// Equal reports whether p and o have the same elements.
func (p Path) Equal(o Path) bool { return slices.Equal(p.Elements, o.Elements) }
