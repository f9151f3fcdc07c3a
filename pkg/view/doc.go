// Package view describes UI as immutable values rebuilt every update and
// reconciles them against the live widget tree.
//
// Each update the application produces a fresh view tree. [Reconcile]
// walks the previous and the new tree in lockstep with the widgets the
// previous tree produced:
//
//   - views of the same [Kind] are paired and the new view patches the
//     widget in place through Rebuild;
//   - a kind change tears the old subtree down and builds a fresh one.
//
// Children of sequence containers (Flex, Bar) are paired by position, not
// by key. Inserting or removing an item in the middle of a list rebuilds
// every later item whose kind no longer lines up, and patches the others in
// place with their new neighbours' values.
//
// Messages emitted by interactive views are plain comparable values, so a
// rebuild can tell whether they changed.
package view
