// Package testing drives widgets through a real host window without a
// display.
//
// # Quick Start
//
// Create a tester, build widgets in its window, and simulate input:
//
//	func TestToggle(t *testing.T) {
//	    tester := vtest.NewWidgetTesterWithT(t)
//	    sw := widgets.NewToggleSwitch(tester.Window())
//
//	    if err := tester.Tap(vtest.ByID(sw.ID())); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !sw.IsOn() {
//	        t.Error("expected the switch to be on")
//	    }
//	}
//
// Pointer helpers hit-test through the window exactly like a real host, so
// a covered or hidden widget is not reached. Keyboard helpers go to the
// focused widget.
//
// # Snapshot Testing
//
// Capture every widget's role, state and bounds and compare them with a
// golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/gallery.snapshot.json")
//
// Update snapshots with:
//
//	VECTORUI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import vtest "github.com/go-drift/vectorui/pkg/testing"
package testing
