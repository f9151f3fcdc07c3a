package testing

import (
	"testing"
	"time"

	"github.com/go-drift/vessel/pkg/testing/internal/testbed"
	"github.com/go-drift/vessel/pkg/widget"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFakeClock_TickerFiresPerPeriod(t *testing.T) {
	clk := NewFakeClock()
	tk := clk.NewTicker(10 * time.Millisecond)
	defer tk.Stop()

	got := make(chan int)
	go func() {
		n := 0
		for range tk.C() {
			n++
			if n == 3 {
				got <- n
				return
			}
		}
	}()

	if fired := clk.Advance(5 * time.Millisecond); fired != 0 {
		t.Fatalf("expected no tick before the first period, got %d", fired)
	}
	if fired := clk.Advance(25 * time.Millisecond); fired != 3 {
		t.Fatalf("expected 3 ticks, got %d", fired)
	}
	if n := <-got; n != 3 {
		t.Errorf("expected receiver to see 3 ticks, got %d", n)
	}
}

func TestFakeClock_StoppedTickerDoesNotBlock(t *testing.T) {
	clk := NewFakeClock()
	tk := clk.NewTicker(time.Millisecond)
	tk.Stop()

	if fired := clk.Advance(10 * time.Millisecond); fired != 0 {
		t.Errorf("expected stopped ticker not to fire, got %d", fired)
	}
	if n := clk.Tickers(); n != 0 {
		t.Errorf("expected no live tickers, got %d", n)
	}
}

func TestAppTester_ClockDrivesAnimation(t *testing.T) {
	box := &testbed.AnimatedBox{Duration: 64 * time.Millisecond, From: 10, To: 90, Height: 20}
	tester := NewAppTester[testbed.Msg](t, box)

	if err := tester.Send(testbed.Msg{Kind: testbed.Grow}); err != nil {
		t.Fatal(err)
	}
	if err := tester.Advance(16 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if box.Width != 30 {
		t.Errorf("expected width 30 after one of four ticks, got %v", box.Width)
	}
	if box.Finished {
		t.Error("expected animation still running")
	}

	if err := tester.Advance(48 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if box.Width != 90 {
		t.Errorf("expected width 90 at the end, got %v", box.Width)
	}
	if !box.Finished {
		t.Error("expected Done message to be delivered")
	}
	if n := tester.Driver().Animating(); n != 0 {
		t.Errorf("expected no bound animations, got %d", n)
	}

	r, ok := tester.Bounds(tester.Find(ByType[*widget.Container]()).First())
	if !ok {
		t.Fatal("expected container bounds")
	}
	if r.Width() != 90 {
		t.Errorf("expected laid out width 90, got %v", r.Width())
	}
}
