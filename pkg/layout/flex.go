package layout

import "math"

// FlexPlacement is the result of distributing a main axis among children.
type FlexPlacement struct {
	// Extents holds each child's main-axis extent.
	Extents []float64
	// Positions holds each child's main-axis start, relative to the container.
	Positions []float64
}

// Distribute resolves main-axis extents and positions for a flex run.
//
// lengths carries each child's preference: Fixed values are taken as the
// child's measured extent, Flexible values as its weight. extent is the
// container's main-axis size and spacing the gap applied at both ends and
// between children. Flexible children share whatever remains after fixed
// extents and spacing; a negative remainder gives them zero. When flipped,
// positions are mirrored so the first child sits at the far end; extents are
// unchanged.
func Distribute(lengths []Length, extent, spacing float64, flipped bool) FlexPlacement {
	n := len(lengths)
	out := FlexPlacement{
		Extents:   make([]float64, n),
		Positions: make([]float64, n),
	}
	if n == 0 {
		return out
	}

	fixed, weight := 0.0, 0.0
	for _, l := range lengths {
		if l.IsFlexible() {
			weight += l.Value()
		} else {
			fixed += l.Value()
		}
	}

	remaining := math.Max(0, extent-fixed-spacing*float64(n+1))
	for i, l := range lengths {
		if l.IsFlexible() {
			out.Extents[i] = remaining / weight * l.Value()
		} else {
			out.Extents[i] = l.Value()
		}
	}

	pos := spacing
	for i := range lengths {
		out.Positions[i] = pos
		pos += out.Extents[i] + spacing
	}
	if flipped {
		for i := range out.Positions {
			out.Positions[i] = extent - out.Positions[i] - out.Extents[i]
		}
	}
	return out
}

// MainExtent returns the total main-axis size of a run with the given child
// extents, including spacing at both ends.
func MainExtent(extents []float64, spacing float64) float64 {
	total := spacing * float64(len(extents)+1)
	for _, e := range extents {
		total += e
	}
	return total
}

// CrossExtent returns the cross-axis size of a flex run: the largest child
// extent when every child is fixed on the cross axis, otherwise the full
// available extent. An unbounded available extent falls back to the largest
// child.
func CrossExtent(hints []Length, childExtents []float64, available float64) float64 {
	largest := 0.0
	for _, e := range childExtents {
		largest = math.Max(largest, e)
	}
	anyFlexible := false
	for _, h := range hints {
		if h.IsFlexible() {
			anyFlexible = true
			break
		}
	}
	if anyFlexible && !math.IsInf(available, 1) {
		return available
	}
	return largest
}
