// Package host provides Window, the container widgets are created in.
//
// A Window owns an in-memory scene, hit-tests pointer events against the
// regions widgets register, and routes them the way a browser would:
// enter and leave follow the pointer, press goes to the region under it,
// release goes to every region so a press or drag started on a widget
// always ends, and keys go to the focused widget.
package host

import (
	"io"
	"log"

	"github.com/go-drift/vectorui/pkg/focus"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/scene"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/theme"
	"github.com/go-drift/vectorui/pkg/widget"
)

// Option configures a Window.
type Option func(*Window)

// WithTheme sets the theme widgets created in the window paint with.
func WithTheme(t *theme.ThemeData) Option {
	return func(w *Window) { w.theme = t }
}

// WithMeasurer sets the text measurer of the window's scene.
func WithMeasurer(m *scene.Measurer) Option {
	return func(w *Window) { w.measurer = m }
}

// WithTrace logs every interaction transition to logger.
func WithTrace(logger *log.Logger) Option {
	return func(w *Window) { w.tracer = logger }
}

// TransitionFunc observes interaction transitions of every widget in a window.
type TransitionFunc func(w widget.Widget, t interaction.Transition)

// FocusFunc observes keyboard focus moving onto or off a widget.
type FocusFunc func(w widget.Widget, focused bool)

// Window is a widget container backed by a scene.
type Window struct {
	scene    *scene.Scene
	theme    *theme.ThemeData
	measurer *scene.Measurer
	tracer   *log.Logger

	background surface.Shape
	widgets    []widget.Widget
	nodes      map[string]*focus.Node
	unobserve  map[string]func()
	focus      focus.Scope
	observers  []TransitionFunc
	focusObs   []FocusFunc

	regions  []*region
	hovered  *region
	captured *region
	pointer  graphics.Offset
	buttons  int
}

// New creates a window of the given size.
func New(width, height float64, opts ...Option) *Window {
	w := &Window{
		nodes:     make(map[string]*focus.Node),
		unobserve: make(map[string]func()),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.theme == nil {
		w.theme = theme.Default()
	}
	if w.measurer == nil {
		w.measurer = scene.DefaultMeasurer()
	}
	w.scene = scene.New(graphics.Size{Width: width, Height: height}, scene.WithMeasurer(w.measurer))
	w.background = w.scene.Root().Rect(width, height)
	w.background.SetFill(w.theme.Background)
	return w
}

// Surface implements widget.Container.
func (w *Window) Surface() surface.Surface { return w }

// Root implements surface.Surface.
func (w *Window) Root() surface.Group { return w.scene.Root() }

// Size implements surface.Surface.
func (w *Window) Size() graphics.Size { return w.scene.Size() }

// Resize changes the window size.
func (w *Window) Resize(width, height float64) {
	w.scene.SetSize(graphics.Size{Width: width, Height: height})
	w.background.SetSize(width, height)
}

// Theme implements theme.Provider.
func (w *Window) Theme() *theme.ThemeData { return w.theme }

// Scene exposes the underlying scene.
func (w *Window) Scene() *scene.Scene { return w.scene }

// AddWidget implements widget.Registrar. Widgets call it from Init.
func (w *Window) AddWidget(wd widget.Widget) {
	w.widgets = append(w.widgets, wd)
	n := &focus.Node{
		Target:        focusTarget{w: w, wd: wd},
		OnFocusChange: func(hasFocus bool) { w.focusChanged(wd, hasFocus) },
	}
	w.nodes[wd.ID()] = n
	w.focus.Add(n)
	w.unobserve[wd.ID()] = wd.Observe(func(t interaction.Transition) {
		if w.tracer != nil {
			w.tracer.Printf("%s %s: %s", wd.Role(), shortID(wd.ID()), t)
		}
		for _, fn := range w.observers {
			fn(wd, t)
		}
	})
}

// RemoveWidget implements widget.Registrar. Widgets call it from Destroy.
// A focused widget loses focus first.
func (w *Window) RemoveWidget(wd widget.Widget) {
	id := wd.ID()
	if n, ok := w.nodes[id]; ok {
		w.focus.Remove(n)
		delete(w.nodes, id)
	}
	if cancel, ok := w.unobserve[id]; ok {
		cancel()
		delete(w.unobserve, id)
	}
	for i, existing := range w.widgets {
		if existing.ID() == id {
			w.widgets = append(w.widgets[:i:i], w.widgets[i+1:]...)
			break
		}
	}
}

func (w *Window) focusChanged(wd widget.Widget, focused bool) {
	if w.tracer != nil {
		verb := "lost"
		if focused {
			verb = "gained"
		}
		w.tracer.Printf("%s %s: focus %s", wd.Role(), shortID(wd.ID()), verb)
	}
	for _, fn := range w.focusObs {
		fn(wd, focused)
	}
}

// Widgets returns the widgets in creation order.
func (w *Window) Widgets() []widget.Widget {
	out := make([]widget.Widget, len(w.widgets))
	copy(out, w.widgets)
	return out
}

// Widget looks a widget up by id.
func (w *Window) Widget(id string) widget.Widget {
	for _, wd := range w.widgets {
		if wd.ID() == id {
			return wd
		}
	}
	return nil
}

// Observe registers fn for every transition of every widget.
func (w *Window) Observe(fn TransitionFunc) {
	w.observers = append(w.observers, fn)
}

// ObserveFocus registers fn for every focus change.
func (w *Window) ObserveFocus(fn FocusFunc) {
	w.focusObs = append(w.focusObs, fn)
}

// SVG serializes the current scene.
func (w *Window) SVG() string { return w.scene.SVG() }

// WriteSVG writes the current scene as an SVG document.
func (w *Window) WriteSVG(out io.Writer) error { return w.scene.WriteSVG(out) }

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// focusTarget adapts a widget to focus.Target. A widget can take focus when
// it is enabled, visible and has at least one hit region.
type focusTarget struct {
	w  *Window
	wd widget.Widget
}

func (t focusTarget) CanFocus() bool {
	if !t.wd.Enabled() {
		return false
	}
	for _, r := range t.w.regions {
		if r.owner == t.wd.ID() && r.shape.Visible() {
			return true
		}
	}
	return false
}

func (t focusTarget) FocusRect() focus.FocusRect {
	b := t.wd.Bounds()
	return focus.FocusRect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

func (t focusTarget) TabIndex() int { return t.wd.TabIndex() }
