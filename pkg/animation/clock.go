package animation

import (
	"sync"
	"time"
)

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock to drive animations by hand.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker { return realTicker{time.NewTicker(d)} }

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return realClock{} }

var (
	clockMu sync.RWMutex
	clock   Clock = realClock{}
)

// SetClock replaces the default clock used by schedulers created without
// one. Returns the previous clock so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the default clock.
func Now() time.Time { return defaultClock().Now() }

func defaultClock() Clock {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock
}
