package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/vessel/cmd/vessel/internal/demo"
	"github.com/go-drift/vessel/pkg/app"
	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/logging"
	"github.com/go-drift/vessel/pkg/render"
	"github.com/go-drift/vessel/pkg/text"
)

// headlessWindow is an app.Window with no display behind it.
type headlessWindow struct {
	size      graphics.Size
	scale     float64
	title     string
	maximized bool
	closed    bool
}

func (w *headlessWindow) Size() graphics.Size              { return w.size }
func (w *headlessWindow) ScaleFactor() float64             { return w.scale }
func (w *headlessWindow) SetCursorIcon(event.CursorIcon)   {}
func (w *headlessWindow) DragWindow()                      {}
func (w *headlessWindow) DragResize(event.ResizeDirection) {}
func (w *headlessWindow) SetMinimized(bool)                {}
func (w *headlessWindow) SetMaximized(maximized bool)      { w.maximized = maximized }
func (w *headlessWindow) IsMaximized() bool                { return w.maximized }
func (w *headlessWindow) SetTitle(title string)            { w.title = title }
func (w *headlessWindow) RequestRedraw()                   {}
func (w *headlessWindow) Close()                           { w.closed = true }

// lastFrame keeps the most recent frame instead of drawing it.
type lastFrame struct {
	frame render.Frame
}

func (r *lastFrame) Render(_ context.Context, f render.Frame) error {
	r.frame = f
	return nil
}

// session is the demo gallery running headless.
type session struct {
	window  *headlessWindow
	driver  *app.Driver[demo.Msg]
	gallery *demo.Gallery
}

func newSession(env *Env, size graphics.Size, scale float64, renderer app.Renderer, shaper text.Shaper) *session {
	alloc := id.NewAllocator()
	win := &headlessWindow{size: size, scale: scale}
	g := demo.New(env.Config, alloc)
	d := app.New[demo.Msg](g, win, renderer,
		app.WithConfig(env.Config),
		app.WithAllocator(alloc),
		app.WithShaper(shaper),
	)
	return &session{window: win, driver: d, gallery: g}
}

// tap clicks at pos and renders the result.
func (s *session) tap(ctx context.Context, pos graphics.Offset) error {
	logging.Logger().Debug("tap", "x", pos.X, "y", pos.Y)
	for _, kind := range []event.MouseKind{event.MouseMove, event.MousePress, event.MouseRelease} {
		s.driver.HandleEvent(app.Input{Event: event.Mouse{Kind: kind, Button: event.ButtonLeft, Position: pos, Clicks: 1}})
	}
	return s.driver.Frame(ctx)
}

// viewFlags are the flags shared by commands that run the gallery.
type viewFlags struct {
	width, height float64
	scale         float64
	taps          []graphics.Offset
}

func defaultViewFlags(env *Env) viewFlags {
	return viewFlags{width: env.Config.Window.Width, height: env.Config.Window.Height, scale: 1}
}

// parse consumes a shared flag at args[i] and reports how many arguments it
// used, or 0 if the flag is not a shared one.
func (f *viewFlags) parse(args []string, i int) (int, error) {
	value := func() (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", args[i])
		}
		return args[i+1], nil
	}
	number := func() (float64, error) {
		v, err := value()
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%s: invalid value %q", args[i], v)
		}
		return n, nil
	}
	var err error
	switch args[i] {
	case "--width":
		f.width, err = number()
	case "--height":
		f.height, err = number()
	case "--scale":
		f.scale, err = number()
	case "--tap":
		var v string
		if v, err = value(); err == nil {
			var p graphics.Offset
			p, err = parsePoint(v)
			f.taps = append(f.taps, p)
		}
	default:
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return 2, nil
}

func (f viewFlags) size() graphics.Size {
	return graphics.Size{Width: f.width, Height: f.height}
}

// run builds the gallery, renders its first frame and replays the taps.
func (f viewFlags) run(ctx context.Context, s *session) error {
	if err := s.driver.Frame(ctx); err != nil {
		return err
	}
	for _, p := range f.taps {
		if err := s.tap(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func parsePoint(s string) (graphics.Offset, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graphics.Offset{}, fmt.Errorf("point %q must be X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return graphics.Offset{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return graphics.Offset{}, fmt.Errorf("point %q: %w", s, err)
	}
	return graphics.Offset{X: x, Y: y}, nil
}
