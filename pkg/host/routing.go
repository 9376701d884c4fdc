package host

import (
	"github.com/go-drift/vectorui/pkg/focus"
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/widget"
)

// region is a registered hit region.
type region struct {
	shape    surface.Shape
	listener surface.Listener
	// owner is the id of the widget whose controller receives the events,
	// empty for widget-private listeners.
	owner string
}

// Listen implements surface.Surface.
func (w *Window) Listen(shape surface.Shape, l surface.Listener) (cancel func()) {
	r := &region{shape: shape, listener: l}
	if owner, ok := l.(interface{ ID() string }); ok {
		r.owner = owner.ID()
	}
	w.regions = append(w.regions, r)
	return func() { w.unlisten(r) }
}

func (w *Window) unlisten(r *region) {
	for i, existing := range w.regions {
		if existing == r {
			w.regions = append(w.regions[:i:i], w.regions[i+1:]...)
			break
		}
	}
	if w.hovered == r {
		w.hovered = nil
	}
	if w.captured == r {
		w.captured = nil
	}
}

// Pointer is the last known pointer position.
func (w *Window) Pointer() graphics.Offset { return w.pointer }

// HitTest returns the listener of the topmost visible region containing p.
func (w *Window) HitTest(p graphics.Offset) surface.Listener {
	if r := w.hitTest(p); r != nil {
		return r.listener
	}
	return nil
}

func (w *Window) hitTest(p graphics.Offset) *region {
	if len(w.regions) == 0 {
		return nil
	}
	byShape := make(map[surface.Node]*region, len(w.regions))
	for _, r := range w.regions {
		byShape[r.shape] = r
	}
	// the last match in paint order is on top
	var hit *region
	var visit func(n surface.Node)
	visit = func(n surface.Node) {
		if r, ok := byShape[n]; ok && n.Visible() && n.Bounds().Contains(p) {
			hit = r
		}
		if g, ok := n.(surface.Group); ok {
			for _, c := range g.Children() {
				visit(c)
			}
		}
	}
	visit(w.scene.Root())
	return hit
}

// DispatchPointer routes a pointer event in window coordinates.
func (w *Window) DispatchPointer(ev gestures.PointerEvent) {
	w.pointer = ev.Position
	w.buttons = ev.Buttons

	switch ev.Phase {
	case gestures.PointerPhaseMove, gestures.PointerPhaseEnter:
		w.updateHover(ev)
		target := w.captured
		if target == nil {
			target = w.hovered
		}
		if target != nil {
			w.send(target, ev, gestures.PointerPhaseMove)
		}
	case gestures.PointerPhaseLeave:
		if w.hovered != nil {
			prev := w.hovered
			w.hovered = nil
			w.send(prev, ev, gestures.PointerPhaseLeave)
		}
	case gestures.PointerPhaseDown:
		w.updateHover(ev)
		if w.hovered == nil {
			w.focus.Unfocus()
			return
		}
		w.captured = w.hovered
		if n, ok := w.nodes[w.hovered.owner]; ok {
			w.focus.Request(n)
		}
		w.send(w.hovered, ev, gestures.PointerPhaseDown)
	case gestures.PointerPhaseUp:
		w.captured = nil
		seen := make(map[surface.Listener]bool, len(w.regions))
		for _, r := range w.snapshot() {
			if seen[r.listener] {
				continue
			}
			seen[r.listener] = true
			w.send(r, ev, gestures.PointerPhaseUp)
		}
	case gestures.PointerPhaseCancel:
		if w.captured != nil {
			prev := w.captured
			w.captured = nil
			w.send(prev, ev, gestures.PointerPhaseCancel)
		}
	}
}

// updateHover sends leave and enter when the region under the pointer changes.
func (w *Window) updateHover(ev gestures.PointerEvent) {
	hit := w.hitTest(ev.Position)
	if hit == w.hovered {
		return
	}
	prev := w.hovered
	w.hovered = hit
	if prev != nil {
		w.send(prev, ev, gestures.PointerPhaseLeave)
	}
	if hit != nil {
		w.send(hit, ev, gestures.PointerPhaseEnter)
	}
}

func (w *Window) send(r *region, ev gestures.PointerEvent, phase gestures.PointerPhase) {
	ev.Phase = phase
	r.listener.HandlePointer(ev)
}

func (w *Window) snapshot() []*region {
	out := make([]*region, len(w.regions))
	copy(out, w.regions)
	return out
}

// DispatchKey routes a key release. Tab and Shift+Tab move focus; every
// other key goes to the focused widget.
func (w *Window) DispatchKey(ev gestures.KeyEvent) {
	if ev.Code == gestures.KeyTab {
		if ev.Shift {
			w.FocusPrevious()
		} else {
			w.FocusNext()
		}
		return
	}
	if f := w.Focused(); f != nil {
		f.HandleKey(ev)
	}
}

// Focused returns the widget with keyboard focus, or nil.
func (w *Window) Focused() widget.Widget {
	n := w.focus.Focused()
	if n == nil {
		return nil
	}
	return n.Target.(focusTarget).wd
}

// Focus gives wd keyboard focus if it can take it.
func (w *Window) Focus(wd widget.Widget) bool {
	n, ok := w.nodes[wd.ID()]
	if !ok {
		return false
	}
	return w.focus.Request(n)
}

// FocusNext moves focus forward in tab order.
func (w *Window) FocusNext() bool { return w.focus.MoveFocus(1) }

// FocusPrevious moves focus backward in tab order.
func (w *Window) FocusPrevious() bool { return w.focus.MoveFocus(-1) }

// FocusInDirection moves focus to the nearest widget in direction.
func (w *Window) FocusInDirection(d focus.TraversalDirection) bool {
	return w.focus.FocusInDirection(d)
}
