// Package animation drives time-based values for vessel applications.
//
// An [Animation] counts ticks from a background [Scheduler] goroutine and
// maps them through an [Easing] to a value in [0, 1]. The scheduler delivers
// [Tick] and [Done] messages on a channel that the application driver drains
// on its own goroutine, so no widget state is touched off the UI goroutine.
//
//	a := animation.New(nil, 300*time.Millisecond).WithEasing(animation.Eased(animation.EaseOut))
//	sched := animation.NewScheduler(ctx, nil, 64)
//	sched.Start(a)
//	for msg := range sched.Messages() { ... }
package animation

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/go-drift/vessel/pkg/id"
)

// DefaultInterval is the tick period used when Interval is zero.
const DefaultInterval = 16 * time.Millisecond

// Direction selects whether an animation runs from 0 to 1 or back.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Animation is a value in [0, 1] advanced by ticks. The tick counter is
// atomic: the scheduler goroutine advances it while the UI goroutine reads
// Value. Configure the exported fields before starting it.
type Animation struct {
	ID        id.AnimationID
	Duration  time.Duration
	Interval  time.Duration
	Direction Direction
	Easing    Easing

	ticks atomic.Int64
}

// New returns a forward linear animation. A nil allocator selects id.Default.
func New(alloc *id.Allocator, duration time.Duration) *Animation {
	if alloc == nil {
		alloc = id.Default
	}
	return &Animation{ID: alloc.NextAnimation(), Duration: duration}
}

// WithEasing sets the easing and returns a.
func (a *Animation) WithEasing(e Easing) *Animation {
	a.Easing = e
	return a
}

// WithInterval sets the tick period and returns a.
func (a *Animation) WithInterval(d time.Duration) *Animation {
	a.Interval = d
	return a
}

// Reversed makes a run backward and returns a.
func (a *Animation) Reversed() *Animation {
	a.Direction = Backward
	a.Reset()
	return a
}

func (a *Animation) interval() time.Duration {
	if a.Interval <= 0 {
		return DefaultInterval
	}
	return a.Interval
}

// Steps returns the number of ticks from start to end, at least 1.
func (a *Animation) Steps() int64 {
	n := int64(math.Ceil(float64(a.Duration) / float64(a.interval())))
	return max(n, 1)
}

// Reset rewinds to the start: 0 ticks forward, Steps ticks backward.
func (a *Animation) Reset() {
	if a.Direction == Backward {
		a.ticks.Store(a.Steps())
	} else {
		a.ticks.Store(0)
	}
}

// Ticks returns the raw tick counter.
func (a *Animation) Ticks() int64 { return a.ticks.Load() }

// Step advances one tick toward the end and reports whether it is done.
func (a *Animation) Step() bool {
	if a.Direction == Backward {
		if a.ticks.Add(-1) < 0 {
			a.ticks.Store(0)
		}
	} else if a.ticks.Add(1) > a.Steps() {
		a.ticks.Store(a.Steps())
	}
	return a.Done()
}

// RawValue returns linear progress in [0, 1].
func (a *Animation) RawValue() float64 {
	return clampUnit(float64(a.ticks.Load()) / float64(a.Steps()))
}

// Value returns eased progress.
func (a *Animation) Value() float64 { return a.Easing.Apply(a.RawValue()) }

// Done reports whether the animation reached its end.
func (a *Animation) Done() bool {
	if a.Direction == Backward {
		return a.ticks.Load() <= 0
	}
	return a.ticks.Load() >= a.Steps()
}

func (a *Animation) String() string {
	return fmt.Sprintf("animation %s %s %s %.3f", a.ID, a.Direction, a.Easing, a.RawValue())
}
