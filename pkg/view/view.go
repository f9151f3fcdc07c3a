package view

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/logging"
	"github.com/go-drift/vessel/pkg/widget"
)

// View is an immutable description of a widget subtree.
type View interface {
	// Kind identifies the concrete variant. Views are only rebuilt against
	// a predecessor of the same kind.
	Kind() Kind
	// Build creates a fresh widget subtree and returns its root id.
	Build(cx *BuildCx) id.WidgetID
	// Rebuild patches w, produced by old, to match the receiver. old has the
	// receiver's kind. It returns the id now representing the view, which is
	// w unless a transparent view replaced its child.
	Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID
	// Teardown releases what the view holds for w and its subtree before
	// the widgets are removed.
	Teardown(cx *BuildCx, w id.WidgetID)
}

// Kind tags a concrete view variant.
type Kind uint32

const (
	KindInvalid Kind = iota
	KindFlex
	KindBar
	KindContainer
	KindFlexItem
	KindScroll
	KindButton
	KindText
	KindStr
	KindSpacer
	KindImage
	KindSvg
	KindEmpty
	KindSlider
	KindWindowButton
	KindHeader
	KindWindow
	KindLazy
	KindMap

	kindFirstCustom
)

var builtinKindNames = [...]string{
	"invalid", "flex", "bar", "container", "flex_item", "scroll", "button",
	"text", "str", "spacer", "image", "svg", "empty", "slider",
	"window_button", "header", "window", "lazy", "map",
}

var kinds = struct {
	sync.Mutex
	next  Kind
	names map[Kind]string
}{next: kindFirstCustom, names: map[Kind]string{}}

// NewKind registers a kind for an application-defined view.
func NewKind(name string) Kind {
	kinds.Lock()
	defer kinds.Unlock()
	k := kinds.next
	kinds.next++
	kinds.names[k] = name
	return k
}

func (k Kind) String() string {
	if int(k) < len(builtinKindNames) {
		return builtinKindNames[k]
	}
	kinds.Lock()
	defer kinds.Unlock()
	if n, ok := kinds.names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}

// Stats counts reconciliation work. Tests and debug output read it.
type Stats struct {
	Builds    int
	Rebuilds  int
	Teardowns int
	// Writes counts widget fields changed by rebuilds.
	Writes int
	// RebuildsByKind splits Rebuilds per view kind.
	RebuildsByKind map[Kind]int
}

// BuildCx carries the widget tree through build and rebuild.
type BuildCx struct {
	Tree *widget.Tree

	stats Stats
	trace bool
}

// NewBuildCx returns a context over tree.
func NewBuildCx(tree *widget.Tree) *BuildCx {
	cx := &BuildCx{Tree: tree}
	cx.ResetStats()
	return cx
}

// SetTrace enables debug logging of every reconciliation decision.
func (cx *BuildCx) SetTrace(on bool) { cx.trace = on }

// Stats returns the counters since the last reset.
func (cx *BuildCx) Stats() Stats { return cx.stats }

// ResetStats clears the counters.
func (cx *BuildCx) ResetStats() {
	cx.stats = Stats{RebuildsByKind: map[Kind]int{}}
}

// Build builds v and counts it.
func (cx *BuildCx) Build(v View) id.WidgetID {
	cx.stats.Builds++
	w := v.Build(cx)
	cx.tracef("build", v.Kind(), w)
	return w
}

// Teardown tears v down and counts it.
func (cx *BuildCx) Teardown(v View, w id.WidgetID) {
	cx.stats.Teardowns++
	cx.tracef("teardown", v.Kind(), w)
	v.Teardown(cx, w)
}

// Reconcile pairs next with prev, which produced w. If the kinds match, w is
// patched in place. Otherwise prev is torn down and next built; the returned
// id then differs from w and the caller must put it in w's place, which
// also removes w.
func (cx *BuildCx) Reconcile(prev, next View, w id.WidgetID) id.WidgetID {
	if prev != nil && prev.Kind() == next.Kind() {
		cx.stats.Rebuilds++
		cx.stats.RebuildsByKind[next.Kind()]++
		cx.tracef("rebuild", next.Kind(), w)
		return next.Rebuild(cx, prev, w)
	}
	if prev != nil {
		cx.Teardown(prev, w)
	}
	return cx.Build(next)
}

// ReconcileChild reconciles the child of parent at index and swaps in a
// replacement when one was built.
func (cx *BuildCx) ReconcileChild(parent id.WidgetID, index int, prev, next View) {
	cur := cx.Tree.Children(parent)[index]
	if nw := cx.Reconcile(prev, next, cur); nw != cur {
		cx.Tree.ReplaceChild(parent, index, nw)
	}
}

// ReconcileRoot reconciles the root view. A nil prev builds from scratch,
// removing any existing root first.
func (cx *BuildCx) ReconcileRoot(prev, next View) id.WidgetID {
	root := cx.Tree.Root()
	if prev == nil || !root.Valid() {
		if root.Valid() {
			cx.Tree.Remove(root)
		}
		w := cx.Build(next)
		cx.Tree.SetRoot(w)
		return w
	}
	if nw := cx.Reconcile(prev, next, root); nw != root {
		cx.Tree.Remove(root)
		cx.Tree.SetRoot(nw)
	}
	return cx.Tree.Root()
}

// ReconcileChildren pairs prev and next positionally under parent.
func (cx *BuildCx) ReconcileChildren(parent id.WidgetID, prev, next []View) {
	n := min(len(prev), len(next))
	for i := 0; i < n; i++ {
		cx.ReconcileChild(parent, i, prev[i], next[i])
	}
	for _, v := range next[n:] {
		cx.Tree.AppendChild(parent, cx.Build(v))
	}
	children := cx.Tree.Children(parent)
	for i := len(prev) - 1; i >= n; i-- {
		cx.Teardown(prev[i], children[i])
		cx.Tree.RemoveChild(parent, i)
	}
}

// TeardownChildren tears down views paired with parent's children.
func (cx *BuildCx) TeardownChildren(parent id.WidgetID, views []View) {
	children := cx.Tree.Children(parent)
	for i, v := range views {
		if i < len(children) && v != nil {
			cx.Teardown(v, children[i])
		}
	}
}

// BuildAll builds every view in order.
func (cx *BuildCx) BuildAll(views []View) []id.WidgetID {
	ids := make([]id.WidgetID, len(views))
	for i, v := range views {
		ids[i] = cx.Build(v)
	}
	return ids
}

// wrote records a field write on w.
func (cx *BuildCx) wrote(w id.WidgetID, relayout bool) {
	cx.stats.Writes++
	if relayout {
		cx.Tree.MarkNeedsLayout(w)
	} else {
		cx.Tree.MarkNeedsDraw(w)
	}
}

func (cx *BuildCx) tracef(action string, k Kind, w id.WidgetID) {
	if cx.trace {
		logging.Logger().Debug("reconcile", "action", action, "kind", k, "widget", w)
	}
}

// set writes next into *dst if it differs from prev, the value the old view
// carried.
func set[T comparable](cx *BuildCx, w id.WidgetID, dst *T, prev, next T, relayout bool) {
	if prev == next {
		return
	}
	*dst = next
	cx.wrote(w, relayout)
}

// setMessage is set for message fields. A message whose dynamic value is not
// comparable never equals anything, so it is rewritten on every rebuild.
func setMessage(cx *BuildCx, w id.WidgetID, dst *any, prev, next any) {
	if sameMessage(prev, next) {
		return
	}
	*dst = next
	cx.wrote(w, false)
}

func sameMessage(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// as returns the widget at w as T. Kind tags guarantee the type; a mismatch
// is a reconciliation bug.
func as[T widget.Widget](cx *BuildCx, w id.WidgetID) T {
	v, ok := cx.Tree.Widget(w).(T)
	if !ok {
		panic(fmt.Sprintf("view: widget %s is %T, not %T", w, cx.Tree.Widget(w), *new(T)))
	}
	return v
}

// orEmpty substitutes Empty for a missing slot.
func orEmpty(v View) View {
	if v == nil {
		return Empty{}
	}
	return v
}
