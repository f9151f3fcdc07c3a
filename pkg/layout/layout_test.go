package layout

import (
	"math"
	"testing"

	"github.com/go-drift/vessel/pkg/graphics"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDistributeScenario(t *testing.T) {
	// Two fixed 100px children and one flexible child in a 400px run with
	// 10px spacing: 4 gaps, 200 fixed, 160 flexible.
	got := Distribute([]Length{Fixed(100), Fixed(100), Flexible(1)}, 400, 10, false)

	wantExtents := []float64{100, 100, 160}
	wantPositions := []float64{10, 120, 230}
	for i := range wantExtents {
		if !approx(got.Extents[i], wantExtents[i]) {
			t.Errorf("extent[%d] = %v, want %v", i, got.Extents[i], wantExtents[i])
		}
		if !approx(got.Positions[i], wantPositions[i]) {
			t.Errorf("position[%d] = %v, want %v", i, got.Positions[i], wantPositions[i])
		}
	}
	if total := MainExtent(got.Extents, 10); !approx(total, 400) {
		t.Errorf("MainExtent = %v, want 400", total)
	}
}

func TestDistributeWeights(t *testing.T) {
	tests := []struct {
		name    string
		lengths []Length
		extent  float64
		spacing float64
	}{
		{"equal weights", []Length{Flexible(1), Flexible(1)}, 300, 0},
		{"uneven weights", []Length{Flexible(1), Flexible(3), Fixed(40)}, 500, 5},
		{"fractional", []Length{Fixed(12.5), Flexible(0.5), Flexible(2.5)}, 333, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribute(tt.lengths, tt.extent, tt.spacing, false)

			fixed, weight := 0.0, 0.0
			for _, l := range tt.lengths {
				if l.IsFlexible() {
					weight += l.Value()
				} else {
					fixed += l.Value()
				}
			}
			free := tt.extent - fixed - tt.spacing*float64(len(tt.lengths)+1)
			for i, l := range tt.lengths {
				if l.IsFlexible() {
					want := free * l.Value() / weight
					if !approx(got.Extents[i], want) {
						t.Errorf("extent[%d] = %v, want %v", i, got.Extents[i], want)
					}
				}
			}
			if total := MainExtent(got.Extents, tt.spacing); !approx(total, tt.extent) {
				t.Errorf("sum of extents and spacing = %v, want %v", total, tt.extent)
			}
		})
	}
}

func TestDistributeOverflowGivesFlexibleZero(t *testing.T) {
	got := Distribute([]Length{Fixed(300), Flexible(1)}, 200, 10, false)
	if got.Extents[1] != 0 {
		t.Errorf("flexible extent = %v, want 0", got.Extents[1])
	}
}

func TestDistributeFlippedMirrorsPositions(t *testing.T) {
	lengths := []Length{Fixed(100), Fixed(100), Flexible(1)}
	normal := Distribute(lengths, 400, 10, false)
	flipped := Distribute(lengths, 400, 10, true)

	for i := range lengths {
		if normal.Extents[i] != flipped.Extents[i] {
			t.Errorf("extent[%d] changed when flipped", i)
		}
		want := 400 - normal.Positions[i] - normal.Extents[i]
		if !approx(flipped.Positions[i], want) {
			t.Errorf("flipped position[%d] = %v, want %v", i, flipped.Positions[i], want)
		}
	}
	if !approx(flipped.Positions[0], 290) {
		t.Errorf("first child should sit at the far end, got %v", flipped.Positions[0])
	}
}

func TestCrossExtent(t *testing.T) {
	fixed := []Length{Fixed(20), Fixed(30)}
	if got := CrossExtent(fixed, []float64{20, 30}, 100); got != 30 {
		t.Errorf("all fixed: got %v, want 30", got)
	}
	mixed := []Length{Fixed(20), Flexible(1)}
	if got := CrossExtent(mixed, []float64{20, 0}, 100); got != 100 {
		t.Errorf("any flexible: got %v, want 100", got)
	}
	if got := CrossExtent(mixed, []float64{20, 0}, math.Inf(1)); got != 20 {
		t.Errorf("unbounded: got %v, want 20", got)
	}
}

func TestPaddingFit(t *testing.T) {
	p := Padding{Top: 10, Right: 30, Bottom: 10, Left: 10}

	// Enough room: unchanged.
	if got := p.Fit(graphics.Size{Width: 100, Height: 100}, graphics.Size{Width: 50, Height: 50}); got != p {
		t.Errorf("Fit with room = %+v, want %+v", got, p)
	}

	// 20px horizontal slack for 40px of padding: halve both sides.
	got := p.Fit(graphics.Size{Width: 70, Height: 100}, graphics.Size{Width: 50, Height: 50})
	if !approx(got.Left, 5) || !approx(got.Right, 15) {
		t.Errorf("Fit = %+v, want Left 5 Right 15", got)
	}
	if got.Horizontal() > 20+1e-9 {
		t.Errorf("fitted padding %v exceeds slack", got.Horizontal())
	}

	// Content larger than available: no padding at all.
	got = p.Fit(graphics.Size{Width: 40, Height: 40}, graphics.Size{Width: 50, Height: 50})
	if got != (Padding{}) {
		t.Errorf("Fit without slack = %+v, want zero", got)
	}
}

func TestConstraints(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 50})
	if got := c.Constrain(graphics.Size{Width: 150, Height: 10}); got != (graphics.Size{Width: 100, Height: 10}) {
		t.Errorf("Constrain = %v", got)
	}
	d := Tight(graphics.Size{Width: 100, Height: 50}).Deflate(PaddingAll(10))
	if d.Min != (graphics.Size{Width: 80, Height: 30}) || !d.IsTight() {
		t.Errorf("Deflate = %v", d)
	}
	if Unbounded().HasBoundedWidth() || !c.HasBoundedHeight() {
		t.Error("bounded checks wrong")
	}
	if got := c.TightOn(Horizontal, 40); got.Min.Width != 40 || got.Max.Width != 40 {
		t.Errorf("TightOn = %v", got)
	}
}

func TestLengthResolve(t *testing.T) {
	if got := Fixed(500).Resolve(0, 100); got != 100 {
		t.Errorf("fixed clamp = %v", got)
	}
	if got := Flexible(2).Resolve(10, 100); got != 100 {
		t.Errorf("flexible = %v", got)
	}
	if got := Flexible(1).Resolve(10, math.Inf(1)); got != 10 {
		t.Errorf("flexible unbounded = %v", got)
	}
	if Flexible(0).Value() != 1 {
		t.Error("zero weight should default to 1")
	}
}

func TestAlignmentPosition(t *testing.T) {
	got := Center.Position(graphics.Size{Width: 100, Height: 60}, graphics.Size{Width: 40, Height: 20})
	if got != (graphics.Offset{X: 30, Y: 20}) {
		t.Errorf("Center = %v", got)
	}
	end := Alignment{Horizontal: AlignEnd, Vertical: AlignStart}
	if got := end.Position(graphics.Size{Width: 100, Height: 60}, graphics.Size{Width: 40, Height: 20}); got != (graphics.Offset{X: 60}) {
		t.Errorf("End = %v", got)
	}
}
