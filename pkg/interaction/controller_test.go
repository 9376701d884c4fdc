package interaction

import (
	"reflect"
	"testing"

	"github.com/go-drift/vectorui/pkg/errors"
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
)

// recorder logs every hook call.
type recorder struct {
	calls     []string
	enabled   bool
	draggable bool
	panicOn   string
}

func newRecorder() *recorder { return &recorder{enabled: true} }

func (r *recorder) hook(name string) {
	r.calls = append(r.calls, name)
	if r.panicOn == name {
		panic("hook failure: " + name)
	}
}

func (r *recorder) IdleUpState()       { r.hook("idleup") }
func (r *recorder) IdleDownState()     { r.hook("idledown") }
func (r *recorder) HoverState()        { r.hook("hover") }
func (r *recorder) PressedState()      { r.hook("pressed") }
func (r *recorder) HoverPressedState() { r.hook("hoverpressed") }
func (r *recorder) PressedOutState()   { r.hook("pressedout") }
func (r *recorder) PressReleaseState() { r.hook("pressrelease") }
func (r *recorder) MoveState(gestures.PointerEvent) {
	r.hook("move")
}
func (r *recorder) KeyUpState(ev gestures.KeyEvent) {
	r.hook("keyup:" + ev.Code)
}
func (r *recorder) Enabled() bool   { return r.enabled }
func (r *recorder) Draggable() bool { return r.draggable }

func (r *recorder) reset() { r.calls = nil }

func pointer(phase gestures.PointerPhase) gestures.PointerEvent {
	return gestures.PointerEvent{Phase: phase}
}

var (
	down    = pointer(gestures.PointerPhaseDown)
	up      = pointer(gestures.PointerPhaseUp)
	enterEv = pointer(gestures.PointerPhaseEnter)
	leave   = pointer(gestures.PointerPhaseLeave)
	move    = pointer(gestures.PointerPhaseMove)
)

func newController(t *testing.T, r *recorder, initial State) *Controller {
	t.Helper()
	c := NewController(r)
	if err := c.SetState(initial); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	return c
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name  string
		from  State
		event gestures.PointerEvent
		to    Kind
		hooks []string
	}{
		{"idle down", IdleUp{}, down, KindPressed, []string{"pressed"}},
		{"idle up", IdleUp{}, up, KindIdleUp, nil},
		{"idle enter", IdleUp{}, enterEv, KindHover, []string{"hover"}},
		{"idle leave", IdleUp{}, leave, KindIdleUp, nil},
		{"hover down", Hover{}, down, KindPressed, []string{"pressed"}},
		{"hover up", Hover{}, up, KindHover, nil},
		{"hover enter", Hover{}, enterEv, KindHover, nil},
		{"hover leave", Hover{}, leave, KindIdleUp, []string{"idleup"}},
		{"pressed down", Pressed{}, down, KindPressed, nil},
		{"pressed up", Pressed{}, up, KindIdleUp, []string{"pressrelease", "idleup"}},
		{"pressed enter", Pressed{}, enterEv, KindHoverPressed, []string{"hoverpressed"}},
		{"pressed leave", Pressed{}, leave, KindPressedOut, []string{"pressedout"}},
		{"hoverpressed down", HoverPressed{}, down, KindHoverPressed, nil},
		{"hoverpressed up", HoverPressed{}, up, KindHover, []string{"pressrelease", "hover"}},
		{"hoverpressed enter", HoverPressed{}, enterEv, KindHoverPressed, nil},
		{"hoverpressed leave", HoverPressed{}, leave, KindPressedOut, []string{"pressedout"}},
		{"pressedout down", PressedOut{}, down, KindPressedOut, nil},
		{"pressedout up", PressedOut{}, up, KindIdleUp, []string{"idleup"}},
		{"pressedout enter", PressedOut{}, enterEv, KindHoverPressed, []string{"hoverpressed"}},
		{"pressedout leave", PressedOut{}, leave, KindPressedOut, nil},
		{"idledown down", IdleDown{}, down, KindPressed, []string{"pressed"}},
		{"idledown up", IdleDown{}, up, KindHover, []string{"hover"}},
		{"idledown leave", IdleDown{}, leave, KindIdleUp, []string{"idleup"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder()
			c := newController(t, r, tt.from)
			if !c.HandlePointer(tt.event) {
				t.Fatalf("HandlePointer(%s) not handled", tt.event.Phase)
			}
			if got := c.State().Kind(); got != tt.to {
				t.Errorf("state = %v, want %v", got, tt.to)
			}
			if !reflect.DeepEqual(r.calls, tt.hooks) {
				t.Errorf("hooks = %v, want %v", r.calls, tt.hooks)
			}
		})
	}
}

func TestPressReleaseCycleReturnsToIdle(t *testing.T) {
	r := newRecorder()
	c := newController(t, r, IdleUp{})
	c.HandlePointer(down)
	c.HandlePointer(up)
	if _, ok := c.State().(IdleUp); !ok {
		t.Fatalf("state = %v, want IdleUp", c.State())
	}
	want := []string{"pressed", "pressrelease", "idleup"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("hooks = %v, want %v", r.calls, want)
	}
}

func TestPressDragOutAndReleaseDoesNotCommit(t *testing.T) {
	r := newRecorder()
	c := newController(t, r, Hover{})
	c.HandlePointer(down)
	c.HandlePointer(leave)
	c.HandlePointer(up)
	if c.State().Kind() != KindIdleUp {
		t.Fatalf("state = %v, want IdleUp", c.State())
	}
	for _, call := range r.calls {
		if call == "pressrelease" {
			t.Fatal("release outside the widget must not commit the press")
		}
	}
}

func TestRepeatedDownFiresPressOnce(t *testing.T) {
	r := newRecorder()
	c := newController(t, r, IdleUp{})
	for i := 0; i < 5; i++ {
		c.HandlePointer(down)
	}
	c.HandlePointer(up)
	releases := 0
	for _, call := range r.calls {
		if call == "pressrelease" {
			releases++
		}
	}
	if releases != 1 {
		t.Errorf("pressrelease ran %d times, want 1", releases)
	}
}

func TestEnterWithButtonHeldIsIdleDown(t *testing.T) {
	r := newRecorder()
	c := newController(t, r, IdleUp{})
	c.HandlePointer(gestures.PointerEvent{Phase: gestures.PointerPhaseEnter, Buttons: gestures.ButtonPrimary})
	if c.State().Kind() != KindIdleDown {
		t.Fatalf("state = %v, want IdleDown", c.State())
	}
	if !reflect.DeepEqual(r.calls, []string{"idledown"}) {
		t.Errorf("hooks = %v", r.calls)
	}
}

func TestDragLifecycle(t *testing.T) {
	r := newRecorder()
	r.draggable = true
	c := newController(t, r, Hover{})

	origin := graphics.Offset{X: 4, Y: 30}
	c.HandlePointer(gestures.PointerEvent{Phase: gestures.PointerPhaseDown, Position: origin})
	d, ok := c.State().(Drag)
	if !ok {
		t.Fatalf("state = %v, want Drag", c.State())
	}
	if d.Origin != origin {
		t.Errorf("Origin = %v, want %v", d.Origin, origin)
	}

	c.HandlePointer(move)
	c.HandlePointer(move)
	if c.HandlePointer(leave) {
		t.Error("leave during drag should be ignored")
	}
	if c.HandlePointer(enterEv) {
		t.Error("enter during drag should be ignored")
	}
	if c.State().Kind() != KindDrag {
		t.Fatalf("state = %v, want Drag", c.State())
	}

	c.HandlePointer(up)
	if c.State().Kind() != KindIdleUp {
		t.Fatalf("state after up = %v, want IdleUp", c.State())
	}
	want := []string{"pressed", "move", "move", "idleup"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("hooks = %v, want %v", r.calls, want)
	}
}

func TestMoveOutsideDragIsIgnored(t *testing.T) {
	r := newRecorder()
	c := newController(t, r, Hover{})
	if c.HandlePointer(move) {
		t.Error("move outside drag should not be handled")
	}
	if c.State().Kind() != KindHover || len(r.calls) != 0 {
		t.Errorf("state = %v hooks = %v", c.State(), r.calls)
	}
}

func TestNonDraggableNeverDrags(t *testing.T) {
	r := newRecorder()
	c := newController(t, r, IdleUp{})
	c.HandlePointer(down)
	c.HandlePointer(move)
	if c.State().Kind() != KindPressed {
		t.Errorf("state = %v, want Pressed", c.State())
	}
}

func TestDisabledSwallowsEverything(t *testing.T) {
	r := newRecorder()
	r.enabled = false
	c := newController(t, r, IdleUp{})
	for _, ev := range []gestures.PointerEvent{down, up, enterEv, leave, move} {
		if c.HandlePointer(ev) {
			t.Errorf("disabled widget handled %s", ev.Phase)
		}
	}
	if c.HandleKey(gestures.KeyEvent{Code: gestures.KeySpace}) {
		t.Error("disabled widget handled a key")
	}
	if c.State().Kind() != KindIdleUp || len(r.calls) != 0 {
		t.Errorf("state = %v hooks = %v", c.State(), r.calls)
	}
}

func TestUnrecognizedPhaseIsNoop(t *testing.T) {
	r := newRecorder()
	c := newController(t, r, Pressed{})
	if c.HandlePointer(pointer(gestures.PointerPhaseCancel)) {
		t.Error("cancel should not be handled")
	}
	if c.HandlePointer(pointer(gestures.PointerPhase(77))) {
		t.Error("unknown phase should not be handled")
	}
	if c.State().Kind() != KindPressed || len(r.calls) != 0 {
		t.Errorf("state = %v hooks = %v", c.State(), r.calls)
	}
}

func TestKeyActivation(t *testing.T) {
	tests := []struct {
		name      string
		from      State
		code      string
		activated bool
		to        Kind
		hooks     []string
	}{
		{"space from idle", IdleUp{}, gestures.KeySpace, true, KindIdleUp, []string{"keyup:Space"}},
		{"enter from hover", Hover{}, gestures.KeyEnter, true, KindIdleUp, []string{"keyup:Enter", "idleup"}},
		{"other key from hover", Hover{}, "KeyA", false, KindHover, []string{"keyup:KeyA"}},
		{"space while pressed", Pressed{}, gestures.KeySpace, false, KindPressed, nil},
		{"space while pressed out", PressedOut{}, gestures.KeySpace, false, KindPressedOut, nil},
		{"space while dragging", Drag{}, gestures.KeySpace, false, KindDrag, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder()
			c := newController(t, r, tt.from)
			if got := c.HandleKey(gestures.KeyEvent{Code: tt.code}); got != tt.activated {
				t.Errorf("HandleKey = %v, want %v", got, tt.activated)
			}
			if got := c.State().Kind(); got != tt.to {
				t.Errorf("state = %v, want %v", got, tt.to)
			}
			if !reflect.DeepEqual(r.calls, tt.hooks) {
				t.Errorf("hooks = %v, want %v", r.calls, tt.hooks)
			}
		})
	}
}

func TestSetStateOnce(t *testing.T) {
	c := NewController(newRecorder())
	if c.HandlePointer(down) {
		t.Error("controller without state should ignore events")
	}
	if err := c.SetState(nil); err != ErrNilState {
		t.Errorf("SetState(nil) = %v, want ErrNilState", err)
	}
	if err := c.SetState(IdleUp{}); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if err := c.SetState(Hover{}); err != ErrStateAlreadySet {
		t.Errorf("second SetState = %v, want ErrStateAlreadySet", err)
	}
	if c.State().Kind() != KindIdleUp {
		t.Errorf("state = %v, want IdleUp", c.State())
	}
}

func TestPanickingHookLeavesValidState(t *testing.T) {
	rec := &errors.Recorder{}
	prev := errors.SetHandler(rec)
	defer errors.SetHandler(prev)

	r := newRecorder()
	r.panicOn = "pressrelease"
	c := newController(t, r, Pressed{})
	var last Transition
	c.Observe(func(tr Transition) { last = tr })
	c.HandlePointer(up)

	if c.State().Kind() != KindIdleUp {
		t.Errorf("state = %v, want IdleUp", c.State())
	}
	if last.Panic != "hook failure: pressrelease" {
		t.Errorf("Transition.Panic = %v", last.Panic)
	}
	if want := "Pressed -> IdleUp on pointer-up (press-release) (hook panic: hook failure: pressrelease)"; last.String() != want {
		t.Errorf("String() = %q, want %q", last.String(), want)
	}
	if len(rec.Panics) != 1 {
		t.Fatalf("reported %d panics, want 1", len(rec.Panics))
	}
	if rec.Panics[0].Op != "interaction.HandlePointer" {
		t.Errorf("panic op = %q", rec.Panics[0].Op)
	}
}

func TestObserveAndCancel(t *testing.T) {
	r := newRecorder()
	c := newController(t, r, IdleUp{})
	var seen []Transition
	cancel := c.Observe(func(tr Transition) { seen = append(seen, tr) })

	c.HandlePointer(enterEv)
	c.HandlePointer(down)
	c.HandlePointer(up)
	if len(seen) != 3 {
		t.Fatalf("observed %d transitions, want 3", len(seen))
	}
	last := seen[2]
	if !last.Released || last.From.Kind() != KindPressed || last.To.Kind() != KindIdleUp {
		t.Errorf("last transition = %v", last)
	}
	if got := last.String(); got != "Pressed -> IdleUp on pointer-up (press-release)" {
		t.Errorf("String() = %q", got)
	}

	cancel()
	c.HandlePointer(enterEv)
	if len(seen) != 3 {
		t.Errorf("observer called after cancel")
	}
}

func TestResetSettlesToIdle(t *testing.T) {
	r := newRecorder()
	r.draggable = true
	c := newController(t, r, IdleUp{})
	c.HandlePointer(down)
	r.reset()
	c.Reset()
	if c.State().Kind() != KindIdleUp {
		t.Errorf("state = %v, want IdleUp", c.State())
	}
	if !reflect.DeepEqual(r.calls, []string{"idleup"}) {
		t.Errorf("hooks = %v", r.calls)
	}
	r.reset()
	c.Reset()
	if len(r.calls) != 0 {
		t.Errorf("Reset from IdleUp ran hooks %v", r.calls)
	}
}

func TestPreviousDuringPressRelease(t *testing.T) {
	r := &previousWatcher{recorder: newRecorder()}
	c := NewController(r)
	r.c = c
	_ = c.SetState(HoverPressed{})
	c.HandlePointer(up)
	if r.seen != KindHoverPressed {
		t.Errorf("Previous() during release = %v, want HoverPressed", r.seen)
	}
}

type previousWatcher struct {
	*recorder
	c    *Controller
	seen Kind
}

func (p *previousWatcher) PressReleaseState() {
	p.seen = p.c.Previous().Kind()
}

// reentrant runs an action against its own controller from inside a hook,
// the way a widget callback that disables the widget does.
type reentrant struct {
	*recorder
	c         *Controller
	onRelease func()
	onKey     func()
}

func (r *reentrant) PressReleaseState() {
	r.recorder.PressReleaseState()
	if r.onRelease != nil {
		r.onRelease()
	}
}

func (r *reentrant) KeyUpState(ev gestures.KeyEvent) {
	r.recorder.KeyUpState(ev)
	if r.onKey != nil {
		r.onKey()
	}
}

func TestDisableDuringReleaseKeepsIdleUp(t *testing.T) {
	r := &reentrant{recorder: newRecorder()}
	c := NewController(r)
	r.c = c
	r.onRelease = func() {
		r.enabled = false
		r.c.Reset()
	}
	if err := c.SetState(HoverPressed{}); err != nil {
		t.Fatal(err)
	}
	var last Transition
	c.Observe(func(tr Transition) { last = tr })

	c.HandlePointer(up)
	if c.State().Kind() != KindIdleUp {
		t.Fatalf("state = %v, want IdleUp", c.State())
	}
	if want := []string{"pressrelease", "idleup"}; !reflect.DeepEqual(r.calls, want) {
		t.Errorf("hooks = %v, want %v", r.calls, want)
	}
	if last.To.Kind() != KindIdleUp || !last.Released {
		t.Errorf("observed %v, want a press-release ending in IdleUp", last)
	}
}

func TestPointerFromKeyHookWins(t *testing.T) {
	r := &reentrant{recorder: newRecorder()}
	c := NewController(r)
	r.c = c
	r.onKey = func() { r.c.HandlePointer(down) }
	if err := c.SetState(Hover{}); err != nil {
		t.Fatal(err)
	}
	var last Transition
	c.Observe(func(tr Transition) { last = tr })

	c.HandleKey(gestures.KeyEvent{Code: gestures.KeyEnter})
	if c.State().Kind() != KindPressed {
		t.Fatalf("state = %v, want Pressed", c.State())
	}
	if want := []string{"keyup:Enter", "pressed"}; !reflect.DeepEqual(r.calls, want) {
		t.Errorf("hooks = %v, want %v", r.calls, want)
	}
	if last.Trigger != TriggerKeyUp || last.To.Kind() != KindPressed {
		t.Errorf("last transition = %v", last)
	}
}
