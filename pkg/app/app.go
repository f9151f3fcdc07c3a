// Package app drives a vessel application: it rebuilds the view tree from
// application state, reconciles it into the widget tree, runs layout and
// paint, routes host input to widgets and feeds the resulting messages back
// into the application.
//
// The driver is owned by a single goroutine. Animation ticks arrive from
// scheduler goroutines over a channel and are handled on that goroutine by
// Pump or Run.
package app

import (
	"github.com/go-drift/vessel/pkg/animation"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/view"
)

// Application is the state and logic of a program. View describes the UI for
// the current state; Update folds a message into the state and may request
// effects.
type Application[M any] interface {
	View() view.View
	Update(msg M) []Effect
}

// Effect is a side effect requested by Update.
type Effect interface {
	effect()
}

// StartAnimation runs Animation and delivers its progress as messages.
// OnTick maps each new value to a message; OnDone, when set, produces the
// message sent after the final tick. A cancelled animation sends neither.
type StartAnimation[M any] struct {
	Animation *animation.Animation
	OnTick    func(value float64) M
	OnDone    func() M
}

// CancelAnimation stops a running animation silently.
type CancelAnimation struct {
	ID id.AnimationID
}

// Quit closes the window and stops Run.
type Quit struct{}

func (StartAnimation[M]) effect() {}
func (CancelAnimation) effect()   {}
func (Quit) effect()              {}
