// Package testing drives vessel applications in tests without a real window
// or GPU.
//
// # Quick Start
//
// Create a tester from an application, then interact and assert:
//
//	func TestCounter(t *testing.T) {
//	    c := &Counter{}
//	    tester := vtest.NewAppTester[Msg](t, c)
//
//	    if err := tester.Tap(vtest.ByText("+")); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !tester.Find(vtest.ByText("count 1")).Exists() {
//	        t.Error("expected 'count 1'")
//	    }
//	}
//
// The tester runs a real app.Driver: every interaction goes through hit
// testing, hover tracking and reconciliation, and every frame is handed to a
// Recorder instead of a GPU.
//
// # Snapshot Testing
//
// Capture and compare the widget tree and the last frame's commands:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	VESSEL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Animations tick from a FakeClock. Advance fires the due ticks and waits
// until the application has handled the resulting messages:
//
//	tester.Advance(100 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import vtest "github.com/go-drift/vessel/pkg/testing"
package testing
