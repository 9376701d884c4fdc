package interaction

import "github.com/go-drift/vectorui/pkg/gestures"

// Behavior is the set of on-enter hooks a widget supplies.
//
// The controller calls exactly the hook of the state it just entered.
// PressReleaseState is not a state: it runs once on the pointer-up that
// commits a press, before the hook of the state the press settles into.
// MoveState runs for each pointer move while dragging. KeyUpState receives
// every key release delivered while the widget is not captured by a press;
// keys other than Space and Enter must be ignored.
type Behavior interface {
	IdleUpState()
	IdleDownState()
	HoverState()
	PressedState()
	HoverPressedState()
	PressedOutState()
	PressReleaseState()
	MoveState(ev gestures.PointerEvent)
	KeyUpState(ev gestures.KeyEvent)
}

// NopBehavior implements every hook as a no-op. Embed it and override the
// hooks a widget cares about.
type NopBehavior struct{}

func (NopBehavior) IdleUpState()                    {}
func (NopBehavior) IdleDownState()                  {}
func (NopBehavior) HoverState()                     {}
func (NopBehavior) PressedState()                   {}
func (NopBehavior) HoverPressedState()              {}
func (NopBehavior) PressedOutState()                {}
func (NopBehavior) PressReleaseState()              {}
func (NopBehavior) MoveState(gestures.PointerEvent) {}
func (NopBehavior) KeyUpState(gestures.KeyEvent)    {}

// enter runs the on-enter hook for k. Entering Drag starts with a press, so it
// runs PressedState.
func enter(b Behavior, k Kind) {
	switch k {
	case KindIdleUp:
		b.IdleUpState()
	case KindIdleDown:
		b.IdleDownState()
	case KindHover:
		b.HoverState()
	case KindPressed, KindDrag:
		b.PressedState()
	case KindHoverPressed:
		b.HoverPressedState()
	case KindPressedOut:
		b.PressedOutState()
	}
}
