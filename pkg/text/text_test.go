package text

import (
	"math"
	"testing"
)

func TestBasicShaperSingleLine(t *testing.T) {
	l := BasicShaper{}.Shape("hello", Style{Size: 13}, math.Inf(1))
	if len(l.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(l.Lines))
	}
	// basicfont glyphs advance 7px at 13px.
	if l.Size.Width != 35 {
		t.Errorf("width = %v, want 35", l.Size.Width)
	}
	if l.Size.Height != 13 {
		t.Errorf("height = %v, want 13", l.Size.Height)
	}
}

func TestBasicShaperScales(t *testing.T) {
	small := BasicShaper{}.Shape("abc", Style{Size: 13}, math.Inf(1))
	large := BasicShaper{}.Shape("abc", Style{Size: 26}, math.Inf(1))
	if large.Size.Width != 2*small.Size.Width {
		t.Errorf("26px width %v, want %v", large.Size.Width, 2*small.Size.Width)
	}
}

func TestWrapBreaksOnWords(t *testing.T) {
	// Each glyph is 7px, so 50px fits "aaa bbb" (49px) but not a third word.
	l := BasicShaper{}.Shape("aaa bbb ccc", Style{Size: 13}, 50)
	if len(l.Lines) != 2 {
		t.Fatalf("lines = %d (%+v), want 2", len(l.Lines), l.Lines)
	}
	if l.Lines[0].Text != "aaa bbb" || l.Lines[1].Text != "ccc" {
		t.Errorf("lines = %q, %q", l.Lines[0].Text, l.Lines[1].Text)
	}
	if l.Lines[1].Baseline <= l.Lines[0].Baseline {
		t.Error("second baseline should be below the first")
	}
}

func TestExplicitNewlines(t *testing.T) {
	l := BasicShaper{}.Shape("a\nb\nc", Style{}, math.Inf(1))
	if len(l.Lines) != 3 {
		t.Errorf("lines = %d, want 3", len(l.Lines))
	}
}

type countingShaper struct {
	calls int
}

func (c *countingShaper) Shape(s string, style Style, maxWidth float64) *Layout {
	c.calls++
	return BasicShaper{}.Shape(s, style, maxWidth)
}

func TestFontContextCaches(t *testing.T) {
	shaper := &countingShaper{}
	cx := NewFontContext(shaper)

	a := cx.Layout("label", Style{Size: 12}, 100.4)
	b := cx.Layout("label", Style{Size: 12}, 100.9)
	if a != b {
		t.Error("expected the same cached layout for widths in the same pixel")
	}
	if shaper.calls != 1 {
		t.Errorf("shaper calls = %d, want 1", shaper.calls)
	}
	cx.Layout("label", Style{Size: 14}, 100)
	hits, misses := cx.CacheStats()
	if hits != 1 || misses != 2 {
		t.Errorf("hits/misses = %d/%d, want 1/2", hits, misses)
	}

	cx.ClearCache()
	cx.Layout("label", Style{Size: 12}, 100)
	if shaper.calls != 3 {
		t.Errorf("after ClearCache calls = %d, want 3", shaper.calls)
	}
}

func TestFaceShaperBundledFont(t *testing.T) {
	s, err := NewFaceShaper(nil)
	if err != nil {
		t.Fatalf("NewFaceShaper: %v", err)
	}
	l := s.Shape("Vessel", Style{Size: 16}, math.Inf(1))
	if l.Size.Width <= 0 || l.Size.Height <= 0 {
		t.Errorf("expected positive size, got %v", l.Size)
	}
	if got := s.Face(16).Size(); got != 16 {
		t.Errorf("face size = %v, want 16", got)
	}
}
