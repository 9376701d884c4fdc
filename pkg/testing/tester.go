package testing

import (
	"testing"

	"github.com/go-drift/vectorui/pkg/errors"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/host"
	"github.com/go-drift/vectorui/pkg/widget"
)

const (
	// DefaultTestWidth is the default logical width for the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test window.
	DefaultTestHeight = 600
)

// WidgetTester owns a window and simulates pointer and keyboard input
// against it. Errors and panics reported while it is active are recorded
// instead of logged.
type WidgetTester struct {
	window      *host.Window
	recorder    *errors.Recorder
	prevHandler errors.Handler
	pointer     graphics.Offset
	buttons     int
}

// NewWidgetTester creates a tester with a DefaultTestWidth x
// DefaultTestHeight window. Call Cleanup when done, or use
// NewWidgetTesterWithT instead.
func NewWidgetTester(opts ...host.Option) *WidgetTester {
	t := &WidgetTester{
		window:   host.New(DefaultTestWidth, DefaultTestHeight, opts...),
		recorder: &errors.Recorder{},
	}
	t.prevHandler = errors.SetHandler(t.recorder)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T, opts ...host.Option) *WidgetTester {
	tester := NewWidgetTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous error handler.
func (t *WidgetTester) Cleanup() {
	errors.SetHandler(t.prevHandler)
}

// Window is the container widgets under test are created in.
func (t *WidgetTester) Window() *host.Window {
	return t.window
}

// Errors returns every error reported since the tester was created.
func (t *WidgetTester) Errors() []*errors.WidgetError {
	return t.recorder.Errors
}

// Panics returns every recovered panic reported since the tester was created.
func (t *WidgetTester) Panics() []*errors.PanicError {
	return t.recorder.Panics
}

// Find evaluates finder against the window's widgets.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	return FinderResult{widgets: finder.Evaluate(t.window.Widgets()), finder: finder}
}

// Widgets returns every widget in the window.
func (t *WidgetTester) Widgets() []widget.Widget {
	return t.window.Widgets()
}
