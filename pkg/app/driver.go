package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/vessel/pkg/animation"
	"github.com/go-drift/vessel/pkg/config"
	"github.com/go-drift/vessel/pkg/errors"
	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/layout"
	"github.com/go-drift/vessel/pkg/logging"
	"github.com/go-drift/vessel/pkg/render"
	"github.com/go-drift/vessel/pkg/text"
	"github.com/go-drift/vessel/pkg/view"
	"github.com/go-drift/vessel/pkg/widget"
)

type options struct {
	cfg    *config.Config
	alloc  *id.Allocator
	shaper text.Shaper
	clock  animation.Clock
	ctx    context.Context
}

// Option configures a Driver.
type Option func(*options)

// WithConfig sets the configuration. The default is config.Default().
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithAllocator sets the id allocator shared by widgets and animations.
func WithAllocator(a *id.Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithShaper sets the text shaper used by layout.
func WithShaper(s text.Shaper) Option {
	return func(o *options) { o.shaper = s }
}

// WithClock sets the clock that drives animations.
func WithClock(c animation.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithContext bounds the animation scheduler. When ctx ends, undelivered
// animation messages are reported and dropped.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// binding maps an animation's messages to application messages.
type binding[M any] struct {
	anim   *animation.Animation
	onTick func(float64) M
	onDone func() M
}

// Driver runs one application in one window.
type Driver[M any] struct {
	app      Application[M]
	window   Window
	renderer Renderer
	cfg      *config.Config

	alloc      *id.Allocator
	tree       *widget.Tree
	build      *view.BuildCx
	dispatcher *widget.Dispatcher
	sched      *animation.Scheduler
	anims      map[id.AnimationID]binding[M]
	timings    *FrameTimings

	current    view.View
	ticks      int
	dirty      bool
	needsFrame bool
	size       graphics.Size
	scale      float64
	title      string
	cursor     event.CursorIcon
	closed     bool
}

// New returns a driver. The first Frame builds the widget tree.
func New[M any](app Application[M], window Window, renderer Renderer, opts ...Option) *Driver[M] {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg == nil {
		o.cfg = config.Default()
	}
	if o.alloc == nil {
		o.alloc = id.NewAllocator()
	}
	tree := widget.NewTree(o.alloc, text.NewFontContext(o.shaper))
	build := view.NewBuildCx(tree)
	build.SetTrace(o.cfg.Debug.TraceReconcile)
	return &Driver[M]{
		app:        app,
		window:     window,
		renderer:   renderer,
		cfg:        o.cfg,
		alloc:      o.alloc,
		tree:       tree,
		build:      build,
		dispatcher: widget.NewDispatcher(tree),
		sched:      animation.NewScheduler(o.ctx, o.clock, o.cfg.Animation.Buffer),
		anims:      make(map[id.AnimationID]binding[M]),
		timings:    NewFrameTimings(120),
		dirty:      true,
		needsFrame: true,
		size:       window.Size(),
		scale:      window.ScaleFactor(),
		cursor:     event.CursorDefault,
	}
}

// Tree returns the widget tree.
func (d *Driver[M]) Tree() *widget.Tree { return d.tree }

// Dispatcher returns the input router.
func (d *Driver[M]) Dispatcher() *widget.Dispatcher { return d.dispatcher }

// Allocator returns the id allocator.
func (d *Driver[M]) Allocator() *id.Allocator { return d.alloc }

// Stats returns reconciliation counters since the last rebuild started.
func (d *Driver[M]) Stats() view.Stats { return d.build.Stats() }

// Timings returns recent frame samples.
func (d *Driver[M]) Timings() *FrameTimings { return d.timings }

// Scheduler returns the animation scheduler.
func (d *Driver[M]) Scheduler() *animation.Scheduler { return d.sched }

// TicksHandled returns how many animation ticks the driver has handled.
func (d *Driver[M]) TicksHandled() int { return d.ticks }

// Settled reports whether no finished animation still owes its Done message.
func (d *Driver[M]) Settled() bool {
	for _, b := range d.anims {
		if b.anim.Done() {
			return false
		}
	}
	return true
}

// Animating returns the number of animations the application is bound to.
func (d *Driver[M]) Animating() int { return len(d.anims) }

// Closed reports whether the window was closed.
func (d *Driver[M]) Closed() bool { return d.closed }

// NeedsFrame reports whether state changed since the last Frame.
func (d *Driver[M]) NeedsFrame() bool { return d.needsFrame }

// Send feeds msg to the application as if a widget had emitted it.
func (d *Driver[M]) Send(msg M) {
	d.update(msg)
}

// Frame rebuilds if state changed, lays out the tree and renders it.
func (d *Driver[M]) Frame(ctx context.Context) error {
	if d.closed {
		return nil
	}
	var sample FrameSample

	start := time.Now()
	if d.dirty {
		d.rebuild()
		sample.Rebuilt = true
	}
	sample.Phases.Rebuild = time.Since(start)

	start = time.Now()
	d.layout()
	sample.Phases.Layout = time.Since(start)

	start = time.Now()
	cx := render.NewCx()
	d.tree.Paint(cx)
	groups, err := render.Split(cx.Commands())
	sample.Phases.Paint = time.Since(start)
	if err != nil {
		errors.ReportOp("app.paint", errors.KindRender, err)
		return fmt.Errorf("paint: %w", err)
	}

	frame := render.Frame{
		Size:       d.size,
		Scale:      d.scale,
		Background: d.cfg.Render.Background.Graphics(),
		Groups:     groups,
	}
	start = time.Now()
	err = d.renderer.Render(ctx, frame)
	sample.Phases.Render = time.Since(start)
	if err != nil {
		errors.ReportOp("app.render", errors.KindRender, err)
		return fmt.Errorf("render: %w", err)
	}

	sample.Widgets = d.tree.Len()
	sample.Commands = frame.Len()
	sample.Groups = len(groups)
	d.timings.Add(sample)
	d.needsFrame = false
	logging.Logger().Debug("frame",
		"rebuilt", sample.Rebuilt,
		"widgets", sample.Widgets,
		"commands", sample.Commands,
		"total", sample.Phases.Total())
	return nil
}

// rebuild reconciles the application's current view into the tree.
func (d *Driver[M]) rebuild() {
	d.build.ResetStats()
	next := d.app.View()
	root := d.build.ReconcileRoot(d.current, next)
	d.current = next
	d.dirty = false

	if w, ok := d.tree.Widget(root).(*widget.Window); ok {
		if w.WindowTitle() != d.title {
			d.title = w.WindowTitle()
			d.window.SetTitle(d.title)
		}
	}
	if d.cfg.Debug.DumpTree {
		var b strings.Builder
		if err := d.tree.Dump(&b); err == nil {
			logging.Logger().Debug("widget tree", "dump", b.String())
		}
	}
}

// layout lays the tree out at the window size and refreshes hit-testing.
func (d *Driver[M]) layout() {
	root := d.tree.Root()
	if w, ok := d.tree.Widget(root).(*widget.Window); ok {
		if m := d.window.IsMaximized(); m != w.Maximized {
			w.SetMaximized(m)
			d.tree.MarkNeedsLayout(root)
		}
	}
	d.tree.Layout(layout.Tight(d.size))
	d.dispatcher.SetBounds(d.tree.BuildBounds())
}

// ensureTree makes sure input has a laid out tree to hit-test.
func (d *Driver[M]) ensureTree() {
	if d.dirty {
		d.rebuild()
	}
	if d.tree.NeedsLayout() {
		d.layout()
	}
}

// HandleEvent applies a host event.
func (d *Driver[M]) HandleEvent(ev PlatformEvent) {
	if d.closed {
		return
	}
	switch e := ev.(type) {
	case Resized:
		if e.Size != d.size {
			d.size = e.Size
			if root := d.tree.Root(); root.Valid() {
				d.tree.MarkNeedsLayout(root)
			}
			d.requestFrame()
		}
	case ScaleChanged:
		if e.Scale > 0 && e.Scale != d.scale {
			d.scale = e.Scale
			d.requestFrame()
		}
	case CloseRequested:
		d.close()
	case RedrawRequested:
		d.requestFrame()
	case Input:
		d.input(e.Event)
	}
}

func (d *Driver[M]) input(ev event.WidgetEvent) {
	d.ensureTree()
	cx := event.NewCx()
	d.dispatcher.Handle(ev, cx)

	icon, ok := cx.Cursor()
	if !ok && event.IsMove(ev) {
		icon, ok = event.CursorDefault, true
	}
	if ok && icon != d.cursor {
		d.cursor = icon
		d.window.SetCursorIcon(icon)
	}
	for _, c := range cx.DrainCommands() {
		d.command(c)
	}
	// Hover and press state changes are widget state; redraw.
	d.requestFrame()
	for _, msg := range cx.DrainMessages() {
		m, ok := msg.(M)
		if !ok {
			logging.Logger().Warn("dropped message of foreign type", "type", fmt.Sprintf("%T", msg))
			continue
		}
		d.update(m)
	}
}

// command applies a window command from a widget.
func (d *Driver[M]) command(c event.WindowCommand) {
	logging.Logger().Debug("window command", "command", fmt.Sprintf("%T", c))
	switch c := c.(type) {
	case event.DragMove:
		d.window.DragWindow()
	case event.DragResize:
		d.window.DragResize(c.Direction)
	case event.Minimize:
		d.window.SetMinimized(true)
	case event.Maximize:
		d.window.SetMaximized(!d.window.IsMaximized())
		if root := d.tree.Root(); root.Valid() {
			d.tree.MarkNeedsLayout(root)
		}
	case event.Close:
		d.close()
	case event.SetTitle:
		d.title = c.Title
		d.window.SetTitle(c.Title)
	}
}

func (d *Driver[M]) update(msg M) {
	effects := d.app.Update(msg)
	d.dirty = true
	d.requestFrame()
	for _, e := range effects {
		d.effect(e)
	}
}

func (d *Driver[M]) effect(e Effect) {
	switch e := e.(type) {
	case StartAnimation[M]:
		a := e.Animation
		if a.Interval == 0 {
			a.Interval = d.cfg.Animation.Interval.Std()
		}
		if err := d.sched.Start(a); err != nil {
			logging.Logger().Warn("animation not started", "id", a.ID, "err", err)
			return
		}
		d.anims[a.ID] = binding[M]{anim: a, onTick: e.OnTick, onDone: e.OnDone}
	case CancelAnimation:
		d.sched.Cancel(e.ID)
		delete(d.anims, e.ID)
	case Quit:
		d.close()
	default:
		logging.Logger().Warn("unknown effect", "type", fmt.Sprintf("%T", e))
	}
}

// animate turns a scheduler message into application messages.
func (d *Driver[M]) animate(msg animation.Message) {
	if _, ok := msg.(animation.Tick); ok {
		d.ticks++
	}
	b, ok := d.anims[msg.AnimationID()]
	if !ok {
		return
	}
	switch m := msg.(type) {
	case animation.Tick:
		if b.onTick != nil {
			d.update(b.onTick(m.Value))
		}
	case animation.Done:
		delete(d.anims, m.ID)
		if b.onDone != nil {
			d.update(b.onDone())
		}
	}
}

// Pump handles every animation message already delivered and returns how
// many there were.
func (d *Driver[M]) Pump() int {
	n := 0
	for {
		select {
		case msg := <-d.sched.Messages():
			d.animate(msg)
			n++
		default:
			return n
		}
	}
}

// Run handles host events and animation messages until the window closes or
// ctx ends, rendering a frame whenever state changed.
func (d *Driver[M]) Run(ctx context.Context, events <-chan PlatformEvent) error {
	defer d.Close()
	if err := d.Frame(ctx); err != nil {
		return err
	}
	for !d.closed {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			d.HandleEvent(ev)
		case msg := <-d.sched.Messages():
			d.animate(msg)
		}
		if d.needsFrame && !d.closed {
			if err := d.Frame(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Driver[M]) requestFrame() {
	if !d.needsFrame {
		d.needsFrame = true
		d.window.RequestRedraw()
	}
}

func (d *Driver[M]) close() {
	if d.closed {
		return
	}
	d.closed = true
	d.window.Close()
}

// Close stops animations and releases the widget tree.
func (d *Driver[M]) Close() {
	d.close()
	d.sched.Close()
	if root := d.tree.Root(); root.Valid() {
		if d.current != nil {
			d.build.Teardown(d.current, root)
		}
		d.tree.Remove(root)
		d.current = nil
	}
}
