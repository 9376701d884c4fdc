// Package gestures defines the raw pointer and keyboard events a host
// delivers to widget hit regions.
package gestures

import "github.com/go-drift/vectorui/pkg/graphics"

// PointerPhase describes what happened to a pointer.
type PointerPhase int

const (
	// PointerPhaseDown is a button press.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseUp is a button release. Hosts deliver it to every listener,
	// not only the region under the pointer.
	PointerPhaseUp
	// PointerPhaseMove is pointer motion.
	PointerPhaseMove
	// PointerPhaseEnter is the pointer crossing into a hit region.
	PointerPhaseEnter
	// PointerPhaseLeave is the pointer crossing out of a hit region.
	PointerPhaseLeave
	// PointerPhaseCancel is an aborted pointer sequence. Widgets ignore it.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseEnter:
		return "enter"
	case PointerPhaseLeave:
		return "leave"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Button bits reported in PointerEvent.Buttons.
const (
	ButtonPrimary   = 1 << 0
	ButtonSecondary = 1 << 1
	ButtonMiddle    = 1 << 2
)

// PointerEvent is a single pointer notification in surface coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
	// Buttons is the set of buttons held after the event was applied.
	Buttons int
}

// Pressed reports whether any button is held.
func (e PointerEvent) Pressed() bool {
	return e.Buttons != 0
}

// Key codes follow the DOM KeyboardEvent.code naming.
const (
	KeySpace     = "Space"
	KeyEnter     = "Enter"
	KeyTab       = "Tab"
	KeyEscape    = "Escape"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// KeyEvent is a key release delivered to the focused widget.
type KeyEvent struct {
	Code  string
	Shift bool
}

// IsActivation reports whether the key activates a control the way a click does.
func (e KeyEvent) IsActivation() bool {
	return e.Code == KeySpace || e.Code == KeyEnter
}
