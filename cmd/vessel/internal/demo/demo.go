// Package demo is the gallery application rendered by the vessel CLI.
package demo

import (
	"fmt"
	"time"

	"github.com/go-drift/vessel/pkg/animation"
	"github.com/go-drift/vessel/pkg/app"
	"github.com/go-drift/vessel/pkg/config"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/text"
	"github.com/go-drift/vessel/pkg/view"
	"github.com/go-drift/vessel/pkg/widget"
)

// Action names a gallery message.
type Action uint8

const (
	Increment Action = iota
	Decrement
	SetVolume
	TogglePanel
	Pulse
	PulseTick
	PulseDone
	Reset
)

// Msg is the gallery's message type.
type Msg struct {
	Action Action
	Value  float64
}

var (
	accent = graphics.RGB(0x4f, 0x8c, 0xf5)
	muted  = graphics.RGB(0x8a, 0x90, 0x9c)
	panel  = graphics.RGB(0x26, 0x29, 0x31)
)

// Gallery shows a counter, a slider, a collapsible panel and a pulsing bar.
type Gallery struct {
	cfg   *config.Config
	alloc *id.Allocator

	Count    int
	Volume   float64
	Expanded bool
	Pulse    float64
	pulse    *animation.Animation
}

// New returns a gallery styled by cfg. alloc must be the driver's allocator.
func New(cfg *config.Config, alloc *id.Allocator) *Gallery {
	return &Gallery{cfg: cfg, alloc: alloc, Volume: 0.5}
}

func (g *Gallery) View() view.View {
	w := g.cfg.Window
	content := view.Container{
		Size:    layout.FlexibleSize(1),
		Padding: layout.PaddingAll(16),
		Child: view.Column(
			g.counter(),
			g.volume(),
			view.Memo(g.Expanded, details),
			g.pulseBar(),
			view.Fill(),
		).Gap(12),
	}
	if !w.Decorated {
		return view.Window{Title: w.Title, Background: g.cfg.Render.Background.Graphics(), Content: content}
	}
	win := view.DecoratedWindow(w.Title, content)
	win.Radius = w.Radius
	win.ResizeBorder = w.ResizeBorder
	win.Header.Height = w.HeaderHeight
	return win
}

func (g *Gallery) counter() view.View {
	return view.Bar{
		Height:  36,
		Spacing: 8,
		Children: []view.View{
			view.Label(Msg{Action: Decrement}, "-"),
			view.Text{Content: fmt.Sprintf("count %d", g.Count), Style: text.Style{Size: 18, Color: graphics.ColorWhite}},
			view.Label(Msg{Action: Increment}, "+"),
			view.Fill(),
			view.Label(Msg{Action: Reset}, "reset"),
		},
	}
}

func (g *Gallery) volume() view.View {
	slider := view.NewSlider("volume", g.Volume, 0, 1)
	slider.ThumbColor = accent
	return view.Bar{
		Height:  28,
		Spacing: 8,
		Children: []view.View{
			view.Text{Content: fmt.Sprintf("volume %3.0f%%", g.Volume*100), Style: text.Style{Color: muted}},
			view.MapMsg(slider, func(c widget.SliderChanged) Msg { return Msg{Action: SetVolume, Value: c.Value} }),
		},
	}
}

// details is memoized on the expanded flag.
func details(expanded bool) view.View {
	toggle := view.Label(Msg{Action: TogglePanel}, "show details")
	if !expanded {
		return toggle
	}
	toggle = view.Label(Msg{Action: TogglePanel}, "hide details")
	return view.Column(
		toggle,
		view.Container{
			Shrink:     true,
			Padding:    layout.PaddingAll(12),
			Background: panel,
			Radius:     8,
			Child: view.Column(
				view.Str("Views are rebuilt from state on every update."),
				view.Str("Unchanged fields are never written to widgets."),
			).Gap(4),
		},
	).Gap(8)
}

func (g *Gallery) pulseBar() view.View {
	width := animation.TweenFloat64(40, 320).Evaluate(g.Pulse)
	return view.Bar{
		Height:  28,
		Spacing: 8,
		Children: []view.View{
			view.Label(Msg{Action: Pulse}, "pulse"),
			view.Container{
				Size:       layout.FixedSize(width, 12),
				Background: animation.LerpColor(muted, accent, g.Pulse),
				Radius:     6,
			},
		},
	}
}

func (g *Gallery) Update(msg Msg) []app.Effect {
	switch msg.Action {
	case Increment:
		g.Count++
	case Decrement:
		g.Count--
	case Reset:
		g.Count = 0
		g.Volume = 0.5
	case SetVolume:
		g.Volume = msg.Value
	case TogglePanel:
		g.Expanded = !g.Expanded
	case Pulse:
		var effects []app.Effect
		if g.pulse != nil {
			effects = append(effects, app.CancelAnimation{ID: g.pulse.ID})
		}
		g.pulse = animation.New(g.alloc, 400*time.Millisecond).WithEasing(animation.Eased(animation.EaseInOut))
		return append(effects, app.StartAnimation[Msg]{
			Animation: g.pulse,
			OnTick:    func(v float64) Msg { return Msg{Action: PulseTick, Value: v} },
			OnDone:    func() Msg { return Msg{Action: PulseDone} },
		})
	case PulseTick:
		g.Pulse = msg.Value
	case PulseDone:
		g.pulse = nil
	}
	return nil
}
