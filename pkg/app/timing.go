package app

import (
	"sync"
	"time"
)

// FramePhases is the time spent in each phase of one frame.
type FramePhases struct {
	Rebuild time.Duration
	Layout  time.Duration
	Paint   time.Duration
	Render  time.Duration
}

// Total returns the sum of all phases.
func (p FramePhases) Total() time.Duration {
	return p.Rebuild + p.Layout + p.Paint + p.Render
}

// FrameSample describes one frame.
type FrameSample struct {
	Phases   FramePhases
	Widgets  int
	Commands int
	Groups   int
	Rebuilt  bool
}

// FrameTimings is a ring buffer of recent frame samples.
type FrameTimings struct {
	mu       sync.RWMutex
	samples  []FrameSample
	index    int
	capacity int
	count    int
}

// NewFrameTimings creates a buffer with the given capacity.
func NewFrameTimings(capacity int) *FrameTimings {
	if capacity <= 0 {
		capacity = 60
	}
	return &FrameTimings{
		samples:  make([]FrameSample, capacity),
		capacity: capacity,
	}
}

// Add records a sample.
func (b *FrameTimings) Add(s FrameSample) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = s
	b.index = (b.index + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
}

// Samples returns a copy of the samples in chronological order.
func (b *FrameTimings) Samples() []FrameSample {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	result := make([]FrameSample, b.count)
	if b.count < b.capacity {
		copy(result, b.samples[:b.count])
	} else {
		// Full: the oldest sample is at b.index.
		copy(result, b.samples[b.index:])
		copy(result[b.capacity-b.index:], b.samples[:b.index])
	}
	return result
}

// Last returns the most recent sample.
func (b *FrameTimings) Last() (FrameSample, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return FrameSample{}, false
	}
	return b.samples[(b.index-1+b.capacity)%b.capacity], true
}

// Count returns the number of samples currently in the buffer.
func (b *FrameTimings) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}
