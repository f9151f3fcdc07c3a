package view

import (
	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/widget"
)

// Lazy memoizes a subtree on comparable dependencies. While Deps stays equal
// across rebuilds, Fn is not called and the subtree is left untouched.
// Lazy has no widget of its own; its id is the subtree's.
type Lazy[D comparable] struct {
	Deps D
	Fn   func(D) View

	child View
}

// Memo returns a Lazy view.
func Memo[D comparable](deps D, fn func(D) View) *Lazy[D] {
	return &Lazy[D]{Deps: deps, Fn: fn}
}

type memoized interface{ memo() View }

func (l *Lazy[D]) memo() View { return l.child }

func (*Lazy[D]) Kind() Kind { return KindLazy }

func (l *Lazy[D]) Build(cx *BuildCx) id.WidgetID {
	l.child = l.Fn(l.Deps)
	return cx.Build(l.child)
}

func (l *Lazy[D]) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	if o, ok := old.(*Lazy[D]); ok && o.child != nil && o.Deps == l.Deps {
		l.child = o.child
		return w
	}
	var prevChild View
	if m, ok := old.(memoized); ok {
		prevChild = m.memo()
	}
	l.child = l.Fn(l.Deps)
	return cx.Reconcile(prevChild, l.child, w)
}

func (l *Lazy[D]) Teardown(cx *BuildCx, w id.WidgetID) {
	if l.child != nil {
		cx.Teardown(l.child, w)
	}
}

// Map rewrites messages emitted by Child before they reach the
// application. Fn may return nil to drop a message.
type Map struct {
	Child View
	Fn    event.Mapper
}

// MapMsg maps Child's messages of type A through fn. Other messages pass
// through unchanged.
func MapMsg[A, B any](child View, fn func(A) B) Map {
	return Map{Child: child, Fn: func(msg any) any {
		if a, ok := msg.(A); ok {
			return fn(a)
		}
		return msg
	}}
}

func (Map) Kind() Kind { return KindMap }

func (m Map) Build(cx *BuildCx) id.WidgetID {
	child := cx.Build(orEmpty(m.Child))
	return cx.Tree.Insert(&widget.Mapper{Map: m.Fn, Inner: cx.Tree.Widget(child)}, child)
}

// Rebuild always installs the new Fn; functions cannot be compared.
func (m Map) Rebuild(cx *BuildCx, old View, w id.WidgetID) id.WidgetID {
	o := prev[Map](old)
	mw := as[*widget.Mapper](cx, w)
	mw.Map = m.Fn
	cx.ReconcileChild(w, 0, orEmpty(o.Child), orEmpty(m.Child))
	mw.Inner = cx.Tree.Widget(cx.Tree.Children(w)[0])
	return w
}

func (m Map) Teardown(cx *BuildCx, w id.WidgetID) {
	cx.TeardownChildren(w, []View{orEmpty(m.Child)})
}
