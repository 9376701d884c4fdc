// Package widget provides the base every concrete widget embeds.
//
// A [Base] owns the widget's root group on the container's surface, its
// accessibility role and flags, and an [interaction.Controller] that turns
// pointer and key notifications arriving on registered hit regions into
// calls to the widget's behaviour hooks. It also carries a generic
// notification channel ([Base.Subscribe], [Base.Raise]) that knows nothing
// about widget-specific payloads.
//
// A concrete widget embeds Base, calls [Base.Init] with itself, sets its
// default size, then calls [Base.Render] and [Base.SetState]:
//
//	b := &Button{}
//	b.Init(parent, b, semantics.RoleButton)
//	b.SetSize(120, 40)
//	if err := b.Render(b.draw); err != nil {
//	    panic(err)
//	}
//	if err := b.SetState(interaction.IdleUp{}); err != nil {
//	    panic(err)
//	}
package widget

import (
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
)

// Container is the host a widget draws into. It is a non-owning reference.
type Container interface {
	Surface() surface.Surface
}

// Registrar is implemented by containers that keep track of their widgets,
// for focus traversal or tracing. Init registers the widget when the
// container supports it and Destroy unregisters it.
type Registrar interface {
	AddWidget(w Widget)
	RemoveWidget(w Widget)
}

// Widget is the contract the host sees. Embedding Base provides everything
// except the behaviour hooks and Update.
type Widget interface {
	interaction.Behavior
	surface.Listener

	ID() string
	Role() semantics.Role
	Enabled() bool
	Selectable() bool
	Draggable() bool
	TabIndex() int
	State() interaction.State
	Bounds() graphics.Rect
	Move(x, y float64)
	Update()
	Observe(fn func(interaction.Transition)) (cancel func())
}

// EventArgs is what subscribers of the notification channel receive.
type EventArgs struct {
	// Widget is the widget that raised the notification.
	Widget Widget
	// Event is the raw platform event that caused it, if any.
	Event any
}

// Subscriber receives notifications raised by a widget. A returned error is
// reported and does not stop delivery to later subscribers.
type Subscriber func(args EventArgs) error

// Handle adapts a function without an error result into a Subscriber.
func Handle(fn func(args EventArgs)) Subscriber {
	return func(args EventArgs) error {
		fn(args)
		return nil
	}
}

var _ surface.Listener = (*Base)(nil)

// target binds the widget's hooks to the base's gating flags.
type target struct {
	interaction.Behavior
	base *Base
}

func (t target) Enabled() bool   { return t.base.enabled }
func (t target) Draggable() bool { return t.base.draggable }

// HandlePointer implements surface.Listener. The event is kept as the raw
// event before the controller sees it.
func (b *Base) HandlePointer(ev gestures.PointerEvent) {
	if b.controller == nil {
		return
	}
	b.rawEvent = ev
	b.controller.HandlePointer(ev)
}

// HandleKey implements surface.Listener.
func (b *Base) HandleKey(ev gestures.KeyEvent) {
	if b.controller == nil {
		return
	}
	b.rawEvent = ev
	b.controller.HandleKey(ev)
}
