// Package widget implements the persistent widget tree.
//
// Widgets live in an arena ([Tree]) keyed by [id.WidgetID]. A widget only
// knows how to size, draw and react to events for itself; the tree walkers in
// this package visit children, keep position and size caches, and thread the
// per-pass contexts:
//
//   - [Tree.Layout] runs the layout protocol from the root.
//   - [Paint] records render commands in pre-order: a node's own drawing,
//     then its children, then its overlay, each node under its own layer.
//   - [BuildBounds] flattens absolute rounded bounds for hit-testing.
//   - [Dispatch] delivers an event along an id path, stopping at the first
//     node that captures it.
//   - [HoverState] tracks the single hovered path.
//
// Addressing an id that is not in the tree panics with
// *errors.StaleIDError. It always indicates a reconciliation bug.
package widget
