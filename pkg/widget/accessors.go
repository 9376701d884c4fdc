package widget

import (
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
)

// ID is a random identifier assigned by Init.
func (b *Base) ID() string { return b.id }

// Parent returns the container the widget draws into.
func (b *Base) Parent() Container { return b.parent }

// Group returns the widget's root group, or nil before Render.
func (b *Base) Group() surface.Group { return b.group }

func (b *Base) Role() semantics.Role { return b.role }

func (b *Base) Width() float64  { return b.width }
func (b *Base) Height() float64 { return b.height }

// SetSize records the widget's logical size. It does not touch geometry;
// widgets resize their own shapes.
func (b *Base) SetSize(width, height float64) {
	b.width = width
	b.height = height
}

func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled gates event delivery. Disabling abandons any press or drag in
// progress and settles the widget into IdleUp.
func (b *Base) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if !enabled {
		b.controller.Reset()
	}
	if b.self != nil {
		b.self.Update()
	}
}

// Selectable reports whether the widget's text may be selected.
func (b *Base) Selectable() bool         { return b.selectable }
func (b *Base) SetSelectable(value bool) { b.selectable = value }

func (b *Base) Draggable() bool         { return b.draggable }
func (b *Base) SetDraggable(value bool) { b.draggable = value }

// Backcolor is the style hint behaviour hooks paint with.
func (b *Base) Backcolor() graphics.Color { return b.backcolor }

// SetBackcolor changes the style hint and reconciles the widget once it is
// rendered.
func (b *Base) SetBackcolor(c graphics.Color) {
	b.backcolor = c
	if b.self != nil && b.group != nil {
		b.self.Update()
	}
}

// TabIndex orders keyboard focus. Zero means document order.
func (b *Base) TabIndex() int         { return b.tabIndex }
func (b *Base) SetTabIndex(index int) { b.tabIndex = index }

// State is the active interaction state, nil before SetState.
func (b *Base) State() interaction.State {
	if b.controller == nil {
		return nil
	}
	return b.controller.State()
}

// PreviousState is the state that was active before the last transition.
func (b *Base) PreviousState() interaction.State {
	if b.controller == nil {
		return nil
	}
	return b.controller.Previous()
}

// RawEvent is the last pointer or key event delivered to the widget.
func (b *Base) RawEvent() any { return b.rawEvent }
