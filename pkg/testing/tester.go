package testing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/vessel/pkg/app"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	"github.com/go-drift/vessel/pkg/widget"
)

// ErrSettleTimeout is returned when animation messages do not arrive in time.
var ErrSettleTimeout = errors.New("animations did not settle")

// SettleTimeout bounds how long Advance waits for animation goroutines.
var SettleTimeout = time.Second

var _ app.Window = (*FakeWindow)(nil)

// AppTester drives an application through a real app.Driver with a fake
// window, a fake clock and a recording renderer.
type AppTester[M any] struct {
	t        testing.TB
	driver   *app.Driver[M]
	window   *FakeWindow
	renderer *Recorder
	clock    *FakeClock
	ctx      context.Context
}

// NewAppTester builds the application's first frame. The driver is closed
// when the test ends.
func NewAppTester[M any](t testing.TB, a app.Application[M], opts ...app.Option) *AppTester[M] {
	t.Helper()
	tester := &AppTester[M]{
		t:        t,
		window:   NewFakeWindow(),
		renderer: &Recorder{},
		clock:    NewFakeClock(),
		ctx:      context.Background(),
	}
	opts = append([]app.Option{app.WithClock(tester.clock)}, opts...)
	tester.driver = app.New(a, tester.window, tester.renderer, opts...)
	t.Cleanup(tester.driver.Close)
	if err := tester.Pump(); err != nil {
		t.Fatalf("first frame: %v", err)
	}
	return tester
}

// Driver returns the driver under test.
func (t *AppTester[M]) Driver() *app.Driver[M] { return t.driver }

// Window returns the fake host window.
func (t *AppTester[M]) Window() *FakeWindow { return t.window }

// Renderer returns the recording renderer.
func (t *AppTester[M]) Renderer() *Recorder { return t.renderer }

// Clock returns the fake animation clock.
func (t *AppTester[M]) Clock() *FakeClock { return t.clock }

// Tree returns the widget tree.
func (t *AppTester[M]) Tree() *widget.Tree { return t.driver.Tree() }

// Pump renders a frame if anything changed since the last one.
func (t *AppTester[M]) Pump() error {
	if !t.driver.NeedsFrame() {
		return nil
	}
	return t.driver.Frame(t.ctx)
}

// Send feeds msg to the application and pumps a frame.
func (t *AppTester[M]) Send(msg M) error {
	t.driver.Send(msg)
	return t.Pump()
}

// SetSize resizes the window and pumps a frame.
func (t *AppTester[M]) SetSize(size graphics.Size) error {
	t.window.Resize(size)
	t.driver.HandleEvent(app.Resized{Size: size})
	return t.Pump()
}

// Advance moves the clock forward by d, waits until the application has
// handled every resulting animation message and pumps a frame.
func (t *AppTester[M]) Advance(d time.Duration) error {
	deadline := time.Now().Add(SettleTimeout)
	for t.clock.Tickers() < t.driver.Scheduler().Len() {
		if time.Now().After(deadline) {
			return fmt.Errorf("advance: waiting for tickers: %w", ErrSettleTimeout)
		}
		time.Sleep(time.Millisecond)
	}

	want := t.driver.TicksHandled() + t.clock.Advance(d)
	for {
		t.driver.Pump()
		if t.driver.TicksHandled() >= want && t.driver.Settled() {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("advance: %d of %d ticks handled: %w", t.driver.TicksHandled(), want, ErrSettleTimeout)
		}
		time.Sleep(time.Millisecond)
	}
	return t.Pump()
}

// Find evaluates finder against the current tree.
func (t *AppTester[M]) Find(finder Finder) FinderResult {
	tree := t.driver.Tree()
	return FinderResult{tree: tree, ids: finder.Evaluate(tree, tree.Root()), finder: finder}
}

// Bounds returns the absolute bounds of w from the last layout.
func (t *AppTester[M]) Bounds(w id.WidgetID) (graphics.Rect, bool) {
	b := t.driver.Dispatcher().Bounds()
	if b == nil {
		return graphics.Rect{}, false
	}
	for _, e := range b.Entries {
		if e.Path.Leaf() == w {
			return e.RRect.Rect, true
		}
	}
	return graphics.Rect{}, false
}

func (t *AppTester[M]) center(op string, finder Finder) (graphics.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Offset{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	r, ok := t.Bounds(result.First())
	if !ok {
		return graphics.Offset{}, fmt.Errorf("%s: widget has no bounds: %s", op, finder.Description())
	}
	return r.Center(), nil
}
