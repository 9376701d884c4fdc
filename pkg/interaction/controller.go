package interaction

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/vectorui/pkg/errors"
	"github.com/go-drift/vectorui/pkg/gestures"
)

var (
	// ErrStateAlreadySet is returned when the initial state is set twice.
	ErrStateAlreadySet = stderrors.New("interaction: initial state already set")
	// ErrNilState is returned when the initial state is nil.
	ErrNilState = stderrors.New("interaction: nil initial state")
)

// Trigger is a raw notification recognised by the transition table.
type Trigger int

const (
	TriggerPointerDown Trigger = iota
	TriggerPointerUp
	TriggerPointerEnter
	TriggerPointerLeave
	TriggerPointerMove
	TriggerKeyUp
)

var triggerNames = [...]string{
	TriggerPointerDown:  "pointer-down",
	TriggerPointerUp:    "pointer-up",
	TriggerPointerEnter: "pointer-enter",
	TriggerPointerLeave: "pointer-leave",
	TriggerPointerMove:  "pointer-move",
	TriggerKeyUp:        "key-up",
}

func (t Trigger) String() string {
	if t >= 0 && int(t) < len(triggerNames) {
		return triggerNames[t]
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// Target is what a controller drives: the widget's hooks plus the two flags
// that gate dispatch.
type Target interface {
	Behavior
	Enabled() bool
	Draggable() bool
}

// Transition describes one handled notification.
type Transition struct {
	From    State
	To      State
	Trigger Trigger
	// Released is set when PressReleaseState ran.
	Released bool
	// Activated is set when a Space or Enter key release activated the widget.
	Activated bool
	// Panic is the value a hook panicked with while handling the
	// notification, nil if every hook returned.
	Panic any
}

func (t Transition) String() string {
	s := fmt.Sprintf("%s -> %s on %s", t.From, t.To, t.Trigger)
	switch {
	case t.Released:
		s += " (press-release)"
	case t.Activated:
		s += " (activate)"
	}
	if t.Panic != nil {
		s += fmt.Sprintf(" (hook panic: %v)", t.Panic)
	}
	return s
}

// rule is one cell of the transition table.
type rule struct {
	next    Kind
	release bool
}

// table maps (state, trigger) to the next state. Pairs that are absent are
// ignored without changing state. Move and key-up are handled separately.
var table = map[Kind]map[Trigger]rule{
	KindIdleUp: {
		TriggerPointerDown:  {next: KindPressed},
		TriggerPointerUp:    {next: KindIdleUp},
		TriggerPointerEnter: {next: KindHover},
		TriggerPointerLeave: {next: KindIdleUp},
	},
	KindIdleDown: {
		TriggerPointerDown:  {next: KindPressed},
		TriggerPointerUp:    {next: KindHover},
		TriggerPointerEnter: {next: KindIdleDown},
		TriggerPointerLeave: {next: KindIdleUp},
	},
	KindHover: {
		TriggerPointerDown:  {next: KindPressed},
		TriggerPointerUp:    {next: KindHover},
		TriggerPointerEnter: {next: KindHover},
		TriggerPointerLeave: {next: KindIdleUp},
	},
	KindPressed: {
		TriggerPointerDown:  {next: KindPressed},
		TriggerPointerUp:    {next: KindIdleUp, release: true},
		TriggerPointerEnter: {next: KindHoverPressed},
		TriggerPointerLeave: {next: KindPressedOut},
	},
	KindHoverPressed: {
		TriggerPointerDown:  {next: KindHoverPressed},
		TriggerPointerUp:    {next: KindHover, release: true},
		TriggerPointerEnter: {next: KindHoverPressed},
		TriggerPointerLeave: {next: KindPressedOut},
	},
	KindPressedOut: {
		TriggerPointerDown:  {next: KindPressedOut},
		TriggerPointerUp:    {next: KindIdleUp},
		TriggerPointerEnter: {next: KindHoverPressed},
		TriggerPointerLeave: {next: KindPressedOut},
	},
	KindDrag: {
		TriggerPointerUp: {next: KindIdleUp},
	},
}

// Controller is the per-widget interaction state machine. It is not safe for
// concurrent use; all notifications are expected on one event thread.
type Controller struct {
	target    Target
	state     State
	previous  State
	observers []*observer
	// gen counts state changes. Hooks may re-enter the controller, for
	// example by disabling the widget; a changed gen tells the outer
	// call that its target state is no longer current.
	gen uint64
}

type observer struct {
	fn func(Transition)
}

// NewController creates a controller for target. The controller has no
// state until SetState is called, and ignores notifications until then.
func NewController(target Target) *Controller {
	return &Controller{target: target}
}

// SetState seeds the initial state. It may be called once.
func (c *Controller) SetState(initial State) error {
	if initial == nil {
		return ErrNilState
	}
	if c.state != nil {
		return ErrStateAlreadySet
	}
	c.state = initial
	return nil
}

// State returns the active state, or nil before SetState.
func (c *Controller) State() State {
	return c.state
}

// Previous returns the state that was active before the last transition.
// During PressReleaseState it is the pressed state being committed.
func (c *Controller) Previous() State {
	return c.previous
}

// Observe registers fn to be called after every handled notification.
// The returned function removes it.
func (c *Controller) Observe(fn func(Transition)) (cancel func()) {
	o := &observer{fn: fn}
	c.observers = append(c.observers, o)
	return func() {
		for i, existing := range c.observers {
			if existing == o {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// HandlePointer applies a pointer notification. It reports whether the
// notification was recognised; unrecognised notifications and every
// notification sent to a disabled widget leave the state untouched.
func (c *Controller) HandlePointer(ev gestures.PointerEvent) bool {
	if c.state == nil || !c.target.Enabled() {
		return false
	}
	trigger, ok := pointerTrigger(ev.Phase)
	if !ok {
		return false
	}

	from := c.state
	if trigger == TriggerPointerMove {
		if from.Kind() != KindDrag {
			return false
		}
		recovered := c.run("interaction.MoveState", func() { c.target.MoveState(ev) })
		c.notify(Transition{From: from, To: c.state, Trigger: trigger, Panic: recovered})
		return true
	}

	next, release, ok := c.lookup(from, trigger, ev)
	if !ok {
		return false
	}
	gen := c.commit(next)
	recovered := c.run("interaction.HandlePointer", func() {
		if release {
			c.target.PressReleaseState()
		}
		if c.gen == gen && next.Kind() != from.Kind() {
			enter(c.target, next.Kind())
		}
	})
	c.notify(Transition{From: from, To: c.state, Trigger: trigger, Released: release, Panic: recovered})
	return true
}

// HandleKey applies a key release. Keys are only routed while the widget is
// resting in IdleUp or Hover; a press or drag in progress captures them.
// Space and Enter activate the widget and settle it into IdleUp; every other
// key reaches KeyUpState without changing state. HandleKey reports whether
// the key activated the widget.
func (c *Controller) HandleKey(ev gestures.KeyEvent) bool {
	if c.state == nil || !c.target.Enabled() {
		return false
	}
	from := c.state
	if k := from.Kind(); k != KindIdleUp && k != KindHover {
		return false
	}
	activate := ev.IsActivation()
	gen := c.gen
	if activate {
		gen = c.commit(IdleUp{})
	}
	recovered := c.run("interaction.HandleKey", func() {
		c.target.KeyUpState(ev)
		if activate && c.gen == gen && from.Kind() != KindIdleUp {
			enter(c.target, KindIdleUp)
		}
	})
	if activate {
		c.notify(Transition{From: from, To: c.state, Trigger: TriggerKeyUp, Activated: true, Panic: recovered})
	}
	return activate
}

// Reset abandons any press or drag in progress and settles into IdleUp,
// running IdleUpState if the state changes. Hosts call it when a widget is
// disabled so that a pointer-up it will no longer see cannot strand it.
func (c *Controller) Reset() {
	if c.state == nil || c.state.Kind() == KindIdleUp {
		return
	}
	c.commit(IdleUp{})
	c.run("interaction.Reset", func() { enter(c.target, KindIdleUp) })
}

// commit makes next the active state and returns the new generation.
func (c *Controller) commit(next State) uint64 {
	c.previous = c.state
	c.state = next
	c.gen++
	return c.gen
}

func (c *Controller) lookup(from State, trigger Trigger, ev gestures.PointerEvent) (State, bool, bool) {
	k := from.Kind()
	switch {
	case trigger == TriggerPointerDown && c.target.Draggable() &&
		(k == KindIdleUp || k == KindHover || k == KindIdleDown):
		return Drag{Origin: ev.Position}, false, true
	case trigger == TriggerPointerEnter && k == KindIdleUp && ev.Pressed():
		return IdleDown{}, false, true
	}
	r, ok := table[k][trigger]
	if !ok {
		return nil, false, false
	}
	return stateOf(r.next), r.release, true
}

// run invokes widget hooks and returns the value a hook panicked with. The
// panic is reported; the state already committed stays active.
func (c *Controller) run(op string, hooks func()) (recovered any) {
	defer errors.RecoverWithCallback(op, func(r any) { recovered = r })
	hooks()
	return nil
}

func (c *Controller) notify(t Transition) {
	for _, o := range c.observers {
		o.fn(t)
	}
}

func pointerTrigger(phase gestures.PointerPhase) (Trigger, bool) {
	switch phase {
	case gestures.PointerPhaseDown:
		return TriggerPointerDown, true
	case gestures.PointerPhaseUp:
		return TriggerPointerUp, true
	case gestures.PointerPhaseEnter:
		return TriggerPointerEnter, true
	case gestures.PointerPhaseLeave:
		return TriggerPointerLeave, true
	case gestures.PointerPhaseMove:
		return TriggerPointerMove, true
	default:
		return 0, false
	}
}
