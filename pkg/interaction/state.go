// Package interaction implements the finite-state controller shared by every
// widget.
//
// A [Controller] owns exactly one active [State]. Raw pointer and key
// notifications are mapped through a fixed transition table and, whenever
// the controller settles into a different state, the matching on-enter hook
// of the widget's [Behavior] runs. Pointer-up always resolves a press or a
// drag to a resting state, wherever the pointer happens to be.
package interaction

import (
	"fmt"

	"github.com/go-drift/vectorui/pkg/graphics"
)

// Kind names an interaction state.
type Kind int

const (
	KindIdleUp Kind = iota
	KindIdleDown
	KindHover
	KindPressed
	KindHoverPressed
	KindPressedOut
	KindDrag
)

var kindNames = [...]string{
	KindIdleUp:       "IdleUp",
	KindIdleDown:     "IdleDown",
	KindHover:        "Hover",
	KindPressed:      "Pressed",
	KindHoverPressed: "HoverPressed",
	KindPressedOut:   "PressedOut",
	KindDrag:         "Drag",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Settling reports whether k is a resting state: IdleUp, IdleDown, Hover or PressedOut.
func (k Kind) Settling() bool {
	switch k {
	case KindIdleUp, KindIdleDown, KindHover, KindPressedOut:
		return true
	default:
		return false
	}
}

// State is one of IdleUp, IdleDown, Hover, Pressed, HoverPressed, PressedOut
// or Drag. Only Drag carries data.
type State interface {
	Kind() Kind
	String() string
	isState()
}

// IdleUp: pointer elsewhere, nothing pressed.
type IdleUp struct{}

// IdleDown: pointer over the widget with a button held that was pressed elsewhere.
type IdleDown struct{}

// Hover: pointer over the widget, nothing pressed.
type Hover struct{}

// Pressed: pressed on the widget.
type Pressed struct{}

// HoverPressed: pressed on the widget, left it, and came back.
type HoverPressed struct{}

// PressedOut: pressed on the widget and the pointer is now outside it.
type PressedOut struct{}

// Drag: a draggable widget was pressed at Origin and has not been released.
type Drag struct {
	Origin graphics.Offset
}

func (IdleUp) Kind() Kind       { return KindIdleUp }
func (IdleDown) Kind() Kind     { return KindIdleDown }
func (Hover) Kind() Kind        { return KindHover }
func (Pressed) Kind() Kind      { return KindPressed }
func (HoverPressed) Kind() Kind { return KindHoverPressed }
func (PressedOut) Kind() Kind   { return KindPressedOut }
func (Drag) Kind() Kind         { return KindDrag }

func (IdleUp) String() string       { return KindIdleUp.String() }
func (IdleDown) String() string     { return KindIdleDown.String() }
func (Hover) String() string        { return KindHover.String() }
func (Pressed) String() string      { return KindPressed.String() }
func (HoverPressed) String() string { return KindHoverPressed.String() }
func (PressedOut) String() string   { return KindPressedOut.String() }
func (d Drag) String() string {
	return fmt.Sprintf("Drag(%g,%g)", d.Origin.X, d.Origin.Y)
}

func (IdleUp) isState()       {}
func (IdleDown) isState()     {}
func (Hover) isState()        {}
func (Pressed) isState()      {}
func (HoverPressed) isState() {}
func (PressedOut) isState()   {}
func (Drag) isState()         {}

// stateOf returns the data-less state for k. Drag is built by the caller.
func stateOf(k Kind) State {
	switch k {
	case KindIdleUp:
		return IdleUp{}
	case KindIdleDown:
		return IdleDown{}
	case KindHover:
		return Hover{}
	case KindPressed:
		return Pressed{}
	case KindHoverPressed:
		return HoverPressed{}
	case KindPressedOut:
		return PressedOut{}
	default:
		return nil
	}
}
