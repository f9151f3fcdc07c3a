package graphics

import "testing"

func TestRRectContainsCorners(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 100, 50), 10)

	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"center", Offset{50, 25}, true},
		{"top edge middle", Offset{50, 0}, true},
		{"cut corner", Offset{0.5, 0.5}, false},
		{"inside corner arc", Offset{4, 4}, true},
		{"outside", Offset{101, 25}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rr.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRRectRadiusClamped(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 20, 10), 50)
	if rr.Radius != 5 {
		t.Errorf("Radius = %v, want 5", rr.Radius)
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	got := a.Intersect(b)
	if got != (Rect{Left: 5, Top: 5, Right: 10, Bottom: 10}) {
		t.Errorf("Intersect = %+v", got)
	}
	if !a.Intersect(RectFromLTWH(20, 20, 1, 1)).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
}

func TestAffineThen(t *testing.T) {
	m := Translation(10, 5).Then(Scaling(2, 2))
	got := m.Apply(Offset{1, 1})
	if got != (Offset{22, 12}) {
		t.Errorf("Apply = %v, want {22 12}", got)
	}
	pre := Translation(10, 5).PreTranslate(3, 4)
	if pre.TranslationPart() != (Offset{13, 9}) {
		t.Errorf("PreTranslate = %v", pre.TranslationPart())
	}
}

func TestColorLerp(t *testing.T) {
	got := ColorBlack.Lerp(ColorWhite, 0.5)
	r, g, b, a := got.RGBAF()
	if !FloatEqual(a, 1) {
		t.Errorf("alpha = %v", a)
	}
	for _, c := range []float64{r, g, b} {
		if c < 0.49 || c > 0.51 {
			t.Errorf("channel = %v, want ~0.5", c)
		}
	}
	if ColorRed.Lerp(ColorBlue, 0) != ColorRed || ColorRed.Lerp(ColorBlue, 1) != ColorBlue {
		t.Error("Lerp endpoints not exact")
	}
}

func TestPathBounds(t *testing.T) {
	p := RRectPath(RRectFromRectAndRadius(RectFromLTWH(2, 3, 40, 20), 4))
	b := p.Bounds()
	if b != (Rect{Left: 2, Top: 3, Right: 42, Bottom: 23}) {
		t.Errorf("Bounds = %+v", b)
	}
}
