package id

import (
	"sync"
	"testing"
)

func TestAllocatorMonotonic(t *testing.T) {
	a := NewAllocator()
	first := a.NextWidget()
	if !first.Valid() {
		t.Fatal("first id should be non-zero")
	}
	second := a.NextWidget()
	if second <= first {
		t.Errorf("ids not increasing: %v then %v", first, second)
	}
	anim := a.NextAnimation()
	if uint64(anim) == uint64(second) {
		t.Error("animation id reused a widget value")
	}
}

func TestAllocatorConcurrentUnique(t *testing.T) {
	a := NewAllocator()
	const workers, per = 8, 500

	var mu sync.Mutex
	seen := make(map[WidgetID]bool, workers*per)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]WidgetID, 0, per)
			for range per {
				local = append(local, a.NextWidget())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				if seen[v] {
					t.Errorf("duplicate id %v", v)
				}
				seen[v] = true
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*per {
		t.Errorf("got %d unique ids, want %d", len(seen), workers*per)
	}
}

func TestAllocatorReset(t *testing.T) {
	a := NewAllocator()
	a.NextWidget()
	a.NextWidget()
	a.Reset()
	if got := a.NextWidget(); got != 1 {
		t.Errorf("after Reset got %v, want #1", got)
	}
}

func TestPathOperations(t *testing.T) {
	p := Path{1, 4, 9}
	if p.Root() != 1 || p.Leaf() != 9 {
		t.Errorf("Root/Leaf = %v/%v", p.Root(), p.Leaf())
	}
	if !p.Parent().Equal(Path{1, 4}) {
		t.Errorf("Parent = %v", p.Parent())
	}
	if !p.HasPrefix(Path{1, 4}) || p.HasPrefix(Path{4}) {
		t.Error("HasPrefix mismatch")
	}
	if got := p.String(); got != "/#1/#4/#9" {
		t.Errorf("String = %q", got)
	}
	if !p.Contains(4) || p.Contains(5) {
		t.Error("Contains mismatch")
	}
}

func TestPathChildDoesNotAlias(t *testing.T) {
	base := make(Path, 2, 8)
	base[0], base[1] = 1, 2
	a := base.Child(3)
	b := base.Child(4)
	if a.Leaf() != 3 || b.Leaf() != 4 {
		t.Fatalf("children aliased: %v %v", a, b)
	}
	parent := a.Parent()
	_ = append(parent, 99)
	if a.Leaf() != 3 {
		t.Error("appending to Parent() overwrote the original path")
	}
}

func TestEmptyPath(t *testing.T) {
	var p Path
	if p.Root() != 0 || p.Leaf() != 0 || p.Parent() != nil {
		t.Error("empty path accessors should return zero values")
	}
}
