package graphics

// Affine is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translation returns a transform that moves by (dx, dy).
func Translation(dx, dy float64) Affine {
	return Affine{A: 1, C: dx, E: 1, F: dy}
}

// Scaling returns a transform that scales by (sx, sy).
func Scaling(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Then returns the transform that applies m first and then next.
func (m Affine) Then(next Affine) Affine {
	return Affine{
		A: next.A*m.A + next.B*m.D,
		B: next.A*m.B + next.B*m.E,
		C: next.A*m.C + next.B*m.F + next.C,
		D: next.D*m.A + next.E*m.D,
		E: next.D*m.B + next.E*m.E,
		F: next.D*m.C + next.E*m.F + next.F,
	}
}

// PreTranslate returns a transform that translates by (dx, dy) in local
// coordinates before applying m.
func (m Affine) PreTranslate(dx, dy float64) Affine {
	return Translation(dx, dy).Then(m)
}

// Apply transforms a point.
func (m Affine) Apply(p Offset) Offset {
	return Offset{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TranslationPart returns the (C, F) components.
func (m Affine) TranslationPart() Offset {
	return Offset{X: m.C, Y: m.F}
}

// IsIdentity reports whether m is the identity.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}
