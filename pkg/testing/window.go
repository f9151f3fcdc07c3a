package testing

import (
	"context"
	"sync"

	"github.com/go-drift/vessel/pkg/event"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/render"
)

const (
	// DefaultTestWidth is the default logical width for the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test window.
	DefaultTestHeight = 600
	// DefaultScale is the default device pixel ratio.
	DefaultScale = 1.0
)

// FakeWindow records what the driver asks of the host window.
type FakeWindow struct {
	mu        sync.Mutex
	size      graphics.Size
	scale     float64
	cursor    event.CursorIcon
	title     string
	minimized bool
	maximized bool
	closed    bool
	drags     int
	resizes   []event.ResizeDirection
	redraws   int
}

// NewFakeWindow returns a window of the default test size.
func NewFakeWindow() *FakeWindow {
	return &FakeWindow{
		size:  graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		scale: DefaultScale,
	}
}

func (w *FakeWindow) Size() graphics.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

func (w *FakeWindow) ScaleFactor() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

func (w *FakeWindow) SetCursorIcon(icon event.CursorIcon) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cursor = icon
}

func (w *FakeWindow) DragWindow() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.drags++
}

func (w *FakeWindow) DragResize(edge event.ResizeDirection) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resizes = append(w.resizes, edge)
}

func (w *FakeWindow) SetMinimized(minimized bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.minimized = minimized
}

func (w *FakeWindow) SetMaximized(maximized bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.maximized = maximized
}

func (w *FakeWindow) IsMaximized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.maximized
}

func (w *FakeWindow) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

func (w *FakeWindow) RequestRedraw() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.redraws++
}

func (w *FakeWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// Resize changes the reported size. The driver learns of it through an
// app.Resized event.
func (w *FakeWindow) Resize(size graphics.Size) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.size = size
}

// Cursor returns the last cursor icon set.
func (w *FakeWindow) Cursor() event.CursorIcon {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// Title returns the last title set.
func (w *FakeWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// Minimized reports whether the window was minimized.
func (w *FakeWindow) Minimized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minimized
}

// Closed reports whether Close was called.
func (w *FakeWindow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Drags returns how many interactive moves were started.
func (w *FakeWindow) Drags() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.drags
}

// Resizes returns the edges of every interactive resize started.
func (w *FakeWindow) Resizes() []event.ResizeDirection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]event.ResizeDirection(nil), w.resizes...)
}

// Redraws returns how many redraws were requested.
func (w *FakeWindow) Redraws() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.redraws
}

// Recorder is a renderer that keeps every frame instead of drawing it.
type Recorder struct {
	mu     sync.Mutex
	frames []render.Frame
	// Err, when set, is returned from Render.
	Err error
}

// Render implements app.Renderer.
func (r *Recorder) Render(_ context.Context, f render.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.frames = append(r.frames, f)
	return nil
}

// Frames returns the recorded frames.
func (r *Recorder) Frames() []render.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]render.Frame(nil), r.frames...)
}

// Last returns the most recent frame.
func (r *Recorder) Last() (render.Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return render.Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}
