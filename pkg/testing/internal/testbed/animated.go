package testbed

import (
	"time"

	"github.com/go-drift/vessel/pkg/animation"
	"github.com/go-drift/vessel/pkg/app"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/view"
)

// AnimatedBox grows a box from From to To over Duration when sent Grow.
type AnimatedBox struct {
	Duration time.Duration
	From     float64
	To       float64
	Height   float64

	Width    float64
	Finished bool
	Alloc    *id.Allocator

	anim *animation.Animation
}

// Animation returns the running or last animation.
func (a *AnimatedBox) Animation() *animation.Animation { return a.anim }

func (a *AnimatedBox) View() view.View {
	return view.Column(
		view.Container{
			Size:       layout.FixedSize(a.Width, a.Height),
			Background: graphics.ColorWhite,
		},
	)
}

func (a *AnimatedBox) Update(msg Msg) []app.Effect {
	switch msg.Kind {
	case Grow:
		if a.Alloc == nil {
			a.Alloc = id.NewAllocator()
		}
		a.anim = animation.New(a.Alloc, a.Duration)
		a.Finished = false
		a.Width = a.From
		return []app.Effect{app.StartAnimation[Msg]{
			Animation: a.anim,
			OnTick:    func(v float64) Msg { return Msg{Kind: Grown, Value: v} },
			OnDone:    func() Msg { return Msg{Kind: Finished} },
		}}
	case Grown:
		a.Width = animation.TweenFloat64(a.From, a.To).Evaluate(msg.Value)
	case Finished:
		a.Finished = true
	}
	return nil
}
