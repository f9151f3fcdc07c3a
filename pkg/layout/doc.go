// Package layout defines the box-layout protocol shared by all widgets.
//
// A parent hands each child a Constraints box; the child consults its own
// WidgetSize hint (Fixed or Flexible per axis), lays out its children if its
// size depends on them, and reports a size within the box. The parent then
// positions the child. This is a single constraint-and-report pass, not a
// separate measure/arrange pair.
//
// The flex helpers in this package implement the main-axis distribution used
// by Row, Column and Bar:
//
//	flexible extent = (M - sum(fixed) - spacing*(N+1)) * weight / totalWeight
//
// with spacing applied before the first child, between children and after
// the last one.
package layout
