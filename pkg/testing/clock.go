package testing

import (
	"sync"
	"time"

	"github.com/go-drift/vessel/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// Its tickers fire only from Advance. All methods are safe for concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NewTicker implements animation.Clock.
func (c *FakeClock) NewTicker(d time.Duration) animation.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{
		c:      make(chan time.Time),
		stop:   make(chan struct{}),
		period: d,
		next:   c.now.Add(d),
	}
	c.tickers = append(c.tickers, t)
	return t
}

// Tickers returns the number of live tickers.
func (c *FakeClock) Tickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune()
	return len(c.tickers)
}

// Advance moves the clock forward by d, firing every ticker whose deadline
// passes once per elapsed period. Each fire blocks until the ticker's owner
// receives it or stops the ticker. It returns the number of ticks received.
func (c *FakeClock) Advance(d time.Duration) int {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	c.prune()
	tickers := append([]*fakeTicker(nil), c.tickers...)
	c.mu.Unlock()

	fired := 0
	for _, t := range tickers {
		for t.due(now) {
			if !t.fire(now) {
				break
			}
			fired++
		}
	}
	return fired
}

// Set sets the clock to an exact time without firing tickers.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *FakeClock) prune() {
	live := c.tickers[:0]
	for _, t := range c.tickers {
		if !t.stopped() {
			live = append(live, t)
		}
	}
	clear(c.tickers[len(live):])
	c.tickers = live
}

type fakeTicker struct {
	c      chan time.Time
	stop   chan struct{}
	once   sync.Once
	period time.Duration

	mu   sync.Mutex
	next time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }

func (t *fakeTicker) Stop() { t.once.Do(func() { close(t.stop) }) }

func (t *fakeTicker) stopped() bool {
	select {
	case <-t.stop:
		return true
	default:
		return false
	}
}

// due reports whether a tick is owed at now and advances the deadline.
func (t *fakeTicker) due(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.period <= 0 || t.next.After(now) {
		return false
	}
	t.next = t.next.Add(t.period)
	return true
}

func (t *fakeTicker) fire(now time.Time) bool {
	select {
	case t.c <- now:
		return true
	case <-t.stop:
		return false
	}
}
