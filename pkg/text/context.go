package text

import "math"

type cacheKey struct {
	text     string
	style    Style
	maxWidth float64
}

// FontContext is the mutable shaping context threaded through layout.
// It is owned by a single goroutine and is not safe for concurrent use.
type FontContext struct {
	shaper Shaper
	cache  map[cacheKey]*Layout
	hits   int
	misses int
}

// NewFontContext wraps shaper. A nil shaper selects BasicShaper.
func NewFontContext(shaper Shaper) *FontContext {
	if shaper == nil {
		shaper = BasicShaper{}
	}
	return &FontContext{shaper: shaper, cache: make(map[cacheKey]*Layout)}
}

// Shaper returns the underlying shaper.
func (c *FontContext) Shaper() Shaper {
	return c.shaper
}

// Layout shapes s, reusing a cached result for identical input.
func (c *FontContext) Layout(s string, style Style, maxWidth float64) *Layout {
	if !math.IsInf(maxWidth, 1) {
		maxWidth = math.Floor(maxWidth)
	}
	key := cacheKey{text: s, style: style, maxWidth: maxWidth}
	if l, ok := c.cache[key]; ok {
		c.hits++
		return l
	}
	c.misses++
	l := c.shaper.Shape(s, style, maxWidth)
	c.cache[key] = l
	return l
}

// ClearCache drops every cached layout, for example after a scale change.
func (c *FontContext) ClearCache() {
	clear(c.cache)
}

// CacheStats reports cache hits and misses since creation.
func (c *FontContext) CacheStats() (hits, misses int) {
	return c.hits, c.misses
}
