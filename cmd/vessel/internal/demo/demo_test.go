package demo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/vessel/cmd/vessel/internal/demo"
	"github.com/go-drift/vessel/pkg/app"
	"github.com/go-drift/vessel/pkg/config"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
	vtest "github.com/go-drift/vessel/pkg/testing"
	"github.com/go-drift/vessel/pkg/widget"
)

func newGallery(t *testing.T, cfg *config.Config) (*vtest.AppTester[demo.Msg], *demo.Gallery) {
	t.Helper()
	alloc := id.NewAllocator()
	g := demo.New(cfg, alloc)
	return vtest.NewAppTester[demo.Msg](t, g, app.WithConfig(cfg), app.WithAllocator(alloc)), g
}

func TestCounterButtons(t *testing.T) {
	tester, g := newGallery(t, config.Default())

	require.NoError(t, tester.Tap(vtest.ByText("+")))
	require.NoError(t, tester.Tap(vtest.ByText("+")))
	require.NoError(t, tester.Tap(vtest.ByText("-")))
	assert.Equal(t, 1, g.Count)
	assert.True(t, tester.Find(vtest.ByText("count 1")).Exists())

	require.NoError(t, tester.Tap(vtest.ByText("reset")))
	assert.Zero(t, g.Count)
}

func TestSliderDragSetsVolume(t *testing.T) {
	tester, g := newGallery(t, config.Default())
	slider := tester.Find(vtest.ByType[*widget.Slider]())
	r, ok := tester.Bounds(slider.First())
	require.True(t, ok)

	start := graphics.Offset{X: r.Left + r.Width()/2, Y: r.Center().Y}
	end := graphics.Offset{X: r.Right - 1, Y: start.Y}
	require.NoError(t, tester.DragFrom(start, end.Sub(start)))

	assert.Greater(t, g.Volume, 0.9)
	assert.True(t, tester.Find(vtest.ByTextContaining("volume")).Exists())
}

func TestDetailsPanelToggles(t *testing.T) {
	tester, g := newGallery(t, config.Default())

	require.NoError(t, tester.Tap(vtest.ByText("show details")))
	assert.True(t, g.Expanded)
	assert.True(t, tester.Find(vtest.ByTextContaining("rebuilt from state")).Exists())

	require.NoError(t, tester.Tap(vtest.ByText("hide details")))
	assert.False(t, tester.Find(vtest.ByTextContaining("rebuilt from state")).Exists())
}

func TestUnrelatedUpdateSkipsMemoizedPanel(t *testing.T) {
	tester, _ := newGallery(t, config.Default())

	require.NoError(t, tester.Tap(vtest.ByText("+")))
	stats := tester.Driver().Stats()
	assert.Zero(t, stats.Builds)
	assert.Equal(t, 1, stats.Writes)
}

func TestPulseAnimates(t *testing.T) {
	tester, g := newGallery(t, config.Default())

	require.NoError(t, tester.Tap(vtest.ByText("pulse")))
	require.NoError(t, tester.Advance(200*time.Millisecond))
	assert.Greater(t, g.Pulse, 0.0)
	assert.Less(t, g.Pulse, 1.0)

	require.NoError(t, tester.Advance(400*time.Millisecond))
	assert.Equal(t, 1.0, g.Pulse)
	assert.Zero(t, tester.Driver().Animating())
}

func TestUndecoratedWindowHasNoChrome(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Decorated = false
	tester, _ := newGallery(t, cfg)

	assert.False(t, tester.Find(vtest.ByType[*widget.WindowButton]()).Exists())
	win := vtest.WidgetAs[*widget.Window](tester.Find(vtest.ByType[*widget.Window]()))
	assert.False(t, win.Decorated)
}
