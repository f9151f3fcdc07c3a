package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/widget"
)

func newCx() *BuildCx {
	return NewBuildCx(widget.NewTree(id.NewAllocator(), nil))
}

func ids(cx *BuildCx) []id.WidgetID {
	var out []id.WidgetID
	cx.Tree.Walk(cx.Tree.Root(), func(_ id.Path, d *widget.Data) bool {
		out = append(out, d.ID)
		return true
	})
	return out
}

func sample(label string) View {
	return Column(
		Str("title"),
		Label("clicked", label),
		Spacer{Width: 10, Height: 10},
		VScroll(Column(Text{Content: "a"}, Text{Content: "b"})),
	).Gap(4)
}

func TestRebuildIdenticalViewReusesEveryWidget(t *testing.T) {
	cx := newCx()
	v := sample("ok")
	cx.ReconcileRoot(nil, v)
	before := ids(cx)
	cx.ResetStats()

	cx.ReconcileRoot(v, sample("ok"))

	if diff := cmp.Diff(before, ids(cx)); diff != "" {
		t.Fatalf("widget ids changed (-before +after):\n%s", diff)
	}
	st := cx.Stats()
	if st.Builds != 0 || st.Teardowns != 0 {
		t.Fatalf("builds=%d teardowns=%d, want 0/0", st.Builds, st.Teardowns)
	}
	if st.Writes != 0 {
		t.Fatalf("writes = %d, want 0", st.Writes)
	}
	if st.Rebuilds != len(before) {
		t.Fatalf("rebuilds = %d, want %d", st.Rebuilds, len(before))
	}
}

func TestUnchangedButtonRebuildsChildOnce(t *testing.T) {
	cx := newCx()
	b := Label("go", "Go")
	cx.ReconcileRoot(nil, b)
	cx.ResetStats()

	cx.ReconcileRoot(b, Label("go", "Go"))

	st := cx.Stats()
	if st.Writes != 0 {
		t.Fatalf("writes = %d, want 0", st.Writes)
	}
	if st.RebuildsByKind[KindStr] != 1 || st.RebuildsByKind[KindButton] != 1 {
		t.Fatalf("rebuilds by kind = %v", st.RebuildsByKind)
	}
}

func TestNonComparableMessageIsRewritten(t *testing.T) {
	type pick struct{ ids []int }
	cx := newCx()
	b := Label(pick{ids: []int{1}}, "Pick")
	root := cx.ReconcileRoot(nil, b)
	cx.ResetStats()

	next := Label(pick{ids: []int{2}}, "Pick")
	cx.ReconcileRoot(b, next)

	if st := cx.Stats(); st.Writes != 1 {
		t.Fatalf("writes = %d, want 1", st.Writes)
	}
	got := cx.Tree.Widget(root).(*widget.Button).Message.(pick)
	if diff := cmp.Diff([]int{2}, got.ids); diff != "" {
		t.Errorf("message (-want +got):\n%s", diff)
	}
	if sameMessage([]int{1}, []int{1}) {
		t.Error("slices compared equal")
	}
	if !sameMessage("go", "go") || sameMessage("go", 1) || !sameMessage(nil, nil) {
		t.Error("comparable messages compared wrongly")
	}
}

func TestChangedFieldMarksLayout(t *testing.T) {
	cx := newCx()
	v := Text{Content: "a"}
	root := cx.ReconcileRoot(nil, v)
	cx.Tree.Layout(layout.Tight(graphics.Size{Width: 100, Height: 100}))
	if cx.Tree.NeedsLayout() {
		t.Fatal("layout should clear flags")
	}

	cx.ReconcileRoot(v, Text{Content: "b"})

	if got := cx.Tree.Widget(root).(*widget.Text).Content; got != "b" {
		t.Fatalf("content = %q", got)
	}
	if cx.Stats().Writes != 1 {
		t.Fatalf("writes = %d, want 1", cx.Stats().Writes)
	}
	if !cx.Tree.NeedsLayout() {
		t.Fatal("changed text should request layout")
	}
}

func TestVariantSwitchLeavesSiblingsAlone(t *testing.T) {
	cx := newCx()
	old := Column(Str("a"), Str("b"), Str("c"))
	root := cx.ReconcileRoot(nil, old)
	before := append([]id.WidgetID(nil), cx.Tree.Children(root)...)
	cx.ResetStats()

	cx.ReconcileRoot(old, Column(Str("a"), Spacer{Width: 5, Height: 5}, Str("c")))

	after := cx.Tree.Children(root)
	if after[0] != before[0] || after[2] != before[2] {
		t.Fatalf("siblings replaced: %v -> %v", before, after)
	}
	if after[1] == before[1] {
		t.Fatal("switched child kept its widget")
	}
	if cx.Tree.Contains(before[1]) {
		t.Fatal("old widget still in tree")
	}
	if _, ok := cx.Tree.Widget(after[1]).(*widget.Empty); !ok {
		t.Fatalf("new child is %T", cx.Tree.Widget(after[1]))
	}
	st := cx.Stats()
	if st.Builds != 1 || st.Teardowns != 1 {
		t.Fatalf("builds=%d teardowns=%d, want 1/1", st.Builds, st.Teardowns)
	}
}

func TestPositionalDiffPatchesByIndex(t *testing.T) {
	cx := newCx()
	old := Column(Str("a"), Str("b"), Str("c"))
	root := cx.ReconcileRoot(nil, old)
	before := append([]id.WidgetID(nil), cx.Tree.Children(root)...)

	cx.ReconcileRoot(old, Column(Str("b"), Str("c")))

	after := cx.Tree.Children(root)
	if diff := cmp.Diff(before[:2], after); diff != "" {
		t.Fatalf("children (-want +got):\n%s", diff)
	}
	var got []string
	for _, c := range after {
		got = append(got, cx.Tree.Widget(c).(*widget.Text).Content)
	}
	if diff := cmp.Diff([]string{"b", "c"}, got); diff != "" {
		t.Fatalf("contents (-want +got):\n%s", diff)
	}
	if cx.Tree.Contains(before[2]) {
		t.Fatal("excess child not removed")
	}
}

func TestAppendedChildrenAreBuilt(t *testing.T) {
	cx := newCx()
	old := Row(Str("a"))
	root := cx.ReconcileRoot(nil, old)
	cx.ResetStats()

	cx.ReconcileRoot(old, Row(Str("a"), Str("b"), Fill()))

	if n := len(cx.Tree.Children(root)); n != 3 {
		t.Fatalf("children = %d, want 3", n)
	}
	if cx.Stats().Builds != 2 {
		t.Fatalf("builds = %d, want 2", cx.Stats().Builds)
	}
}

func TestRootKindChangeReplacesTree(t *testing.T) {
	cx := newCx()
	old := Column(Str("a"), Str("b"))
	first := cx.ReconcileRoot(nil, old)

	root := cx.ReconcileRoot(old, Str("only"))

	if root == first {
		t.Fatal("root widget reused across kinds")
	}
	if cx.Tree.Len() != 1 {
		t.Fatalf("tree len = %d, want 1", cx.Tree.Len())
	}
}

func TestLazySkipsUnchangedDeps(t *testing.T) {
	cx := newCx()
	calls := 0
	build := func(n int) View {
		calls++
		if n > 1 {
			return Spacer{Width: float64(n), Height: 1}
		}
		return Str("one")
	}
	v1 := Memo(1, build)
	root := cx.ReconcileRoot(nil, v1)
	cx.ResetStats()

	v2 := Memo(1, build)
	if got := cx.ReconcileRoot(v1, v2); got != root {
		t.Fatal("memoized subtree replaced")
	}
	if calls != 1 || cx.Stats().Builds != 0 {
		t.Fatalf("calls=%d builds=%d, want 1/0", calls, cx.Stats().Builds)
	}

	v3 := Memo(2, build)
	if got := cx.ReconcileRoot(v2, v3); got == root {
		t.Fatal("kind change inside Lazy kept the widget")
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if _, ok := cx.Tree.Widget(cx.Tree.Root()).(*widget.Empty); !ok {
		t.Fatalf("root is %T", cx.Tree.Widget(cx.Tree.Root()))
	}
}

func TestMapWrapsChildMessages(t *testing.T) {
	type clicked struct{ n int }
	cx := newCx()
	v := MapMsg(Label(clicked{3}, "x"), func(c clicked) int { return c.n * 2 })
	root := cx.ReconcileRoot(nil, v)

	m := cx.Tree.Widget(root).(*widget.Mapper)
	if got := m.MapMessage(clicked{3}); got != 6 {
		t.Fatalf("mapped = %v, want 6", got)
	}
	if got := m.MapMessage("other"); got != "other" {
		t.Fatalf("passthrough = %v", got)
	}
	child := cx.Tree.Widget(cx.Tree.Children(root)[0])
	if m.SizeHint() != child.SizeHint() {
		t.Fatal("mapper should report the child's hint")
	}
}

func TestSliderKeepsDraggedValue(t *testing.T) {
	cx := newCx()
	v := NewSlider("vol", 0.2, 0, 1)
	root := cx.ReconcileRoot(nil, v)
	s := cx.Tree.Widget(root).(*widget.Slider)
	s.Value = 0.7

	same := NewSlider("vol", 0.2, 0, 1)
	cx.ReconcileRoot(v, same)
	if s.Value != 0.7 {
		t.Fatalf("value = %v, want dragged 0.7", s.Value)
	}

	cx.ReconcileRoot(same, NewSlider("vol", 0.5, 0, 1))
	if s.Value != 0.5 {
		t.Fatalf("value = %v, want 0.5", s.Value)
	}
}

func TestWindowRebuildUpdatesTitle(t *testing.T) {
	cx := newCx()
	v := DecoratedWindow("one", Str("body"))
	root := cx.ReconcileRoot(nil, v)
	header := cx.Tree.Children(root)[0]

	cx.ReconcileRoot(v, DecoratedWindow("two", Str("body")))

	w := cx.Tree.Widget(root).(*widget.Window)
	if w.WindowTitle() != "two" {
		t.Fatalf("title = %q", w.WindowTitle())
	}
	if cx.Tree.Children(root)[0] != header {
		t.Fatal("header rebuilt from scratch")
	}
	middle := cx.Tree.Children(header)[1]
	if got := cx.Tree.Widget(middle).(*widget.Text).Content; got != "two" {
		t.Fatalf("header title = %q", got)
	}
}

func TestTitleBarPlacesButtonsOnTheRight(t *testing.T) {
	cx := newCx()
	root := cx.ReconcileRoot(nil, DecoratedWindow("title", Str("body")))
	cx.Tree.Layout(layout.Tight(graphics.Size{Width: 800, Height: 600}))

	header := cx.Tree.Children(root)[0]
	slots := cx.Tree.Children(header)
	buttons := slots[2]
	if got := cx.Tree.Size(buttons); got != (graphics.Size{Width: 66, Height: 14}) {
		t.Errorf("button row size = %v, want 66x14", got)
	}
	if got := cx.Tree.Position(buttons); got != (graphics.Offset{X: 734, Y: 9}) {
		t.Errorf("button row position = %v, want (734,9)", got)
	}
	if w := cx.Tree.Size(slots[1]).Width; w <= 0 {
		t.Errorf("title width = %v, want visible", w)
	}
}

func TestVScrollColumnScrolls(t *testing.T) {
	items := make([]View, 10)
	for i := range items {
		items[i] = Spacer{Width: 50, Height: 30}
	}
	cx := newCx()
	root := cx.ReconcileRoot(nil, VScroll(Column(items...)))
	cx.Tree.Layout(layout.Tight(graphics.Size{Width: 100, Height: 100}))

	col := cx.Tree.Children(root)[0]
	if got := cx.Tree.Size(col); got != (graphics.Size{Width: 100, Height: 300}) {
		t.Errorf("column size = %v, want 100x300", got)
	}
	s := cx.Tree.Widget(root).(*widget.Scroll)
	if s.MaxOffset() != 200 {
		t.Errorf("MaxOffset = %v, want 200", s.MaxOffset())
	}
	if !s.ScrollBy(50) || s.Offset != 50 {
		t.Errorf("ScrollBy(50) left offset at %v", s.Offset)
	}
}

func TestReconcileRootWithoutPrevReplacesTree(t *testing.T) {
	cx := newCx()
	old := cx.ReconcileRoot(nil, sample("first"))
	built := cx.Tree.Len()

	root := cx.ReconcileRoot(nil, sample("second"))

	if root == old {
		t.Fatal("root was reused without a previous view")
	}
	if _, ok := cx.Tree.Lookup(old); ok {
		t.Error("old root still in the tree")
	}
	if got := cx.Tree.Len(); got != built {
		t.Errorf("tree has %d widgets, want %d", got, built)
	}
}

func TestKindString(t *testing.T) {
	custom := NewKind("gauge")
	cases := map[Kind]string{
		KindFlex:    "flex",
		KindButton:  "button",
		KindMap:     "map",
		custom:      "gauge",
		Kind(10000): "Kind(10000)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
