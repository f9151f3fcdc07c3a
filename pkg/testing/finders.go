package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/widget"
)

// Finder locates widgets in a tree.
type Finder interface {
	// Evaluate returns all matching widgets under root in pre-order.
	Evaluate(tree *widget.Tree, root id.WidgetID) []id.WidgetID
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	tree   *widget.Tree
	ids    []id.WidgetID
	finder Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() id.WidgetID {
	if len(r.ids) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.ids[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) id.WidgetID {
	if index < 0 || index >= len(r.ids) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.ids), r.describe()))
	}
	return r.ids[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []id.WidgetID { return r.ids }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.ids) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.ids) > 0 }

// Widget returns the first matched widget. Panics if no matches.
func (r FinderResult) Widget() widget.Widget {
	return r.tree.Widget(r.First())
}

// WidgetAs returns the first match as T. Panics if no matches or if the
// widget is not a T.
func WidgetAs[T widget.Widget](r FinderResult) T {
	w, ok := r.Widget().(T)
	if !ok {
		panic(fmt.Sprintf("Finder %s matched %T, not %s", r.describe(), r.Widget(), reflect.TypeFor[T]()))
	}
	return w
}

type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Evaluate(tree *widget.Tree, root id.WidgetID) []id.WidgetID {
	return collectMatches(tree, root, func(w widget.Widget) bool {
		return reflect.TypeOf(w) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType returns a finder that matches widgets of type T, such as
// *widget.Button.
func ByType[T widget.Widget]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[T]()}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(tree *widget.Tree, root id.WidgetID) []id.WidgetID {
	return collectMatches(tree, root, func(w widget.Widget) bool {
		t, ok := w.(*widget.Text)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(t.Content, f.text)
		}
		return t.Content == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches text widgets with exact content.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining returns a finder that matches text widgets containing
// substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type predicateFinder struct {
	fn func(widget.Widget) bool
}

func (f *predicateFinder) Evaluate(tree *widget.Tree, root id.WidgetID) []id.WidgetID {
	return collectMatches(tree, root, f.fn)
}

func (f *predicateFinder) Description() string { return "ByPredicate(...)" }

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(widget.Widget) bool) Finder {
	return &predicateFinder{fn: fn}
}

// descendantFinder finds widgets matching 'matching' below widgets
// matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(tree *widget.Tree, root id.WidgetID) []id.WidgetID {
	var results []id.WidgetID
	seen := make(map[id.WidgetID]bool)
	for _, ancestor := range f.of.Evaluate(tree, root) {
		for _, child := range tree.Children(ancestor) {
			for _, match := range f.matching.Evaluate(tree, child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying 'matching'
// that are strict descendants of widgets matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches walks the subtree at root in pre-order.
func collectMatches(tree *widget.Tree, root id.WidgetID, predicate func(widget.Widget) bool) []id.WidgetID {
	if !root.Valid() || !tree.Contains(root) {
		return nil
	}
	var results []id.WidgetID
	tree.Walk(root, func(_ id.Path, d *widget.Data) bool {
		if predicate(d.Widget) {
			results = append(results, d.ID)
		}
		return true
	})
	return results
}
