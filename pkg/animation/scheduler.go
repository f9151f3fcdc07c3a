package animation

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/go-drift/vessel/pkg/errors"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/logging"
)

var (
	// ErrRunning is returned when starting an animation whose ID is live.
	ErrRunning = stderrors.New("animation already running")
	// ErrClosed is returned by Start after Close.
	ErrClosed = stderrors.New("scheduler closed")
)

// Message is delivered by the scheduler.
type Message interface {
	AnimationID() id.AnimationID
}

// Tick reports a new value.
type Tick struct {
	ID    id.AnimationID
	Value float64
}

// Done follows the final Tick of an animation that ran to its end.
type Done struct {
	ID id.AnimationID
}

func (t Tick) AnimationID() id.AnimationID { return t.ID }
func (d Done) AnimationID() id.AnimationID { return d.ID }

// Scheduler runs each animation on its own goroutine and delivers messages
// on a single channel. Messages for one animation arrive in order.
//
// When the scheduler's context ends while an animation still has a message
// to deliver, the loss is reported as errors.KindDelivery and the goroutine
// exits.
type Scheduler struct {
	ctx   context.Context
	clock Clock
	out   chan Message

	mu      sync.Mutex
	running map[id.AnimationID]chan struct{}
	closed  bool
	wg      sync.WaitGroup
}

// NewScheduler returns a scheduler delivering into a channel with the given
// buffer. A nil clock selects the package default.
func NewScheduler(ctx context.Context, c Clock, buffer int) *Scheduler {
	if c == nil {
		c = defaultClock()
	}
	return &Scheduler{
		ctx:     ctx,
		clock:   c,
		out:     make(chan Message, buffer),
		running: make(map[id.AnimationID]chan struct{}),
	}
}

// Messages returns the delivery channel. It is never closed.
func (s *Scheduler) Messages() <-chan Message { return s.out }

// Start resets a and runs it.
func (s *Scheduler) Start(a *Animation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if _, ok := s.running[a.ID]; ok {
		return fmt.Errorf("start %s: %w", a.ID, ErrRunning)
	}
	a.Reset()
	stop := make(chan struct{})
	s.running[a.ID] = stop
	s.wg.Add(1)
	go s.run(a, stop)
	logging.Logger().Debug("animation started", "id", a.ID, "steps", a.Steps(), "direction", a.Direction)
	return nil
}

// Cancel stops an animation without a Done message. It reports whether the
// animation was running.
func (s *Scheduler) Cancel(aid id.AnimationID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	stop, ok := s.running[aid]
	if ok {
		delete(s.running, aid)
		close(stop)
	}
	return ok
}

// Running reports whether aid is live.
func (s *Scheduler) Running(aid id.AnimationID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.running[aid]
	return ok
}

// Len returns the number of live animations.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.running)
}

// Close cancels every animation and waits for their goroutines.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	for aid, stop := range s.running {
		delete(s.running, aid)
		close(stop)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Scheduler) run(a *Animation, stop chan struct{}) {
	defer s.wg.Done()
	defer s.finish(a.ID, stop)
	defer errors.Recover("animation.run")

	t := s.clock.NewTicker(a.interval())
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-s.ctx.Done():
			s.undelivered(a, "tick")
			return
		case <-t.C():
		}
		if stopped(stop) {
			return
		}
		done := a.Step()
		if !s.send(a, stop, Tick{ID: a.ID, Value: a.Value()}, "tick") {
			return
		}
		if done {
			s.send(a, stop, Done{ID: a.ID}, "done")
			return
		}
	}
}

func (s *Scheduler) send(a *Animation, stop chan struct{}, msg Message, kind string) bool {
	select {
	case s.out <- msg:
		return true
	case <-stop:
		return false
	case <-s.ctx.Done():
		s.undelivered(a, kind)
		return false
	}
}

func stopped(stop chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}

func (s *Scheduler) undelivered(a *Animation, kind string) {
	errors.ReportOp("animation.deliver", errors.KindDelivery, &errors.DeliveryError{Animation: uint64(a.ID), Message: kind})
}

// finish forgets a finished animation unless it was cancelled and restarted.
func (s *Scheduler) finish(aid id.AnimationID, stop chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running[aid] == stop {
		delete(s.running, aid)
	}
	logging.Logger().Debug("animation finished", "id", aid)
}
