// Package script replays recorded pointer and keyboard input against a
// window. Scripts are YAML:
//
//	name: check the box
//	steps:
//	  - action: tap
//	    target: checkbox
//	  - action: expect
//	    target: checkbox
//	    state: IdleUp
//
// Pointer actions take either a target (the center of that widget) or
// explicit x and y coordinates.
package script

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/host"
	"github.com/go-drift/vectorui/pkg/widget"
)

// Actions understood by a Step.
const (
	ActionMove   = "move"
	ActionDown   = "down"
	ActionUp     = "up"
	ActionTap    = "tap"
	ActionLeave  = "leave"
	ActionCancel = "cancel"
	ActionKey    = "key"
	ActionTab    = "tab"
	ActionExpect = "expect"
)

// ErrExpectation is wrapped by errors from failed expect steps.
var ErrExpectation = stderrors.New("script: expectation failed")

// Script is a named list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted input or check.
type Step struct {
	Action string   `yaml:"action"`
	Target string   `yaml:"target,omitempty"`
	X      *float64 `yaml:"x,omitempty"`
	Y      *float64 `yaml:"y,omitempty"`
	Key    string   `yaml:"key,omitempty"`
	Shift  bool     `yaml:"shift,omitempty"`
	State  string   `yaml:"state,omitempty"`
}

// Resolver looks widgets up by script name.
type Resolver interface {
	Widget(name string) (widget.Widget, bool)
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step has what its action needs.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Action {
	case ActionMove, ActionDown, ActionUp, ActionTap:
		if st.Target == "" && (st.X == nil || st.Y == nil) {
			return fmt.Errorf("%s needs a target or x and y", st.Action)
		}
	case ActionKey:
		if st.Key == "" {
			return fmt.Errorf("key needs a key code")
		}
	case ActionExpect:
		if st.Target == "" || st.State == "" {
			return fmt.Errorf("expect needs a target and a state")
		}
	case ActionLeave, ActionCancel, ActionTab:
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Player feeds steps into a window, keeping track of the pointer position
// and held buttons between steps.
type Player struct {
	window  *host.Window
	widgets Resolver
	out     io.Writer
	buttons int
}

// NewPlayer creates a player for w. Step descriptions are written to out
// when it is not nil.
func NewPlayer(w *host.Window, widgets Resolver, out io.Writer) *Player {
	return &Player{window: w, widgets: widgets, out: out}
}

// Run plays every step in order and stops at the first failure.
func (p *Player) Run(s *Script) error {
	for i, st := range s.Steps {
		if err := p.Step(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
	}
	return nil
}

// Step plays a single step.
func (p *Player) Step(st Step) error {
	if err := st.validate(); err != nil {
		return err
	}
	if p.out != nil {
		fmt.Fprintf(p.out, "> %s\n", st)
	}
	switch st.Action {
	case ActionMove:
		return p.pointer(st, gestures.PointerPhaseMove)
	case ActionDown:
		p.buttons |= gestures.ButtonPrimary
		return p.pointer(st, gestures.PointerPhaseDown)
	case ActionUp:
		p.buttons = 0
		return p.pointer(st, gestures.PointerPhaseUp)
	case ActionTap:
		for _, step := range []struct {
			phase   gestures.PointerPhase
			buttons int
		}{
			{gestures.PointerPhaseMove, p.buttons},
			{gestures.PointerPhaseDown, gestures.ButtonPrimary},
			{gestures.PointerPhaseUp, 0},
		} {
			p.buttons = step.buttons
			if err := p.pointer(st, step.phase); err != nil {
				return err
			}
		}
	case ActionLeave:
		p.dispatch(p.window.Pointer(), gestures.PointerPhaseLeave)
	case ActionCancel:
		p.buttons = 0
		p.dispatch(p.window.Pointer(), gestures.PointerPhaseCancel)
	case ActionKey:
		p.window.DispatchKey(gestures.KeyEvent{Code: st.Key, Shift: st.Shift})
	case ActionTab:
		p.window.DispatchKey(gestures.KeyEvent{Code: gestures.KeyTab, Shift: st.Shift})
	case ActionExpect:
		return p.expect(st)
	}
	return nil
}

func (p *Player) pointer(st Step, phase gestures.PointerPhase) error {
	pos, err := p.position(st)
	if err != nil {
		return err
	}
	p.dispatch(pos, phase)
	return nil
}

func (p *Player) dispatch(pos graphics.Offset, phase gestures.PointerPhase) {
	p.window.DispatchPointer(gestures.PointerEvent{
		PointerID: 1,
		Position:  pos,
		Phase:     phase,
		Buttons:   p.buttons,
	})
}

func (p *Player) position(st Step) (graphics.Offset, error) {
	if st.X != nil && st.Y != nil {
		return graphics.Offset{X: *st.X, Y: *st.Y}, nil
	}
	w, err := p.lookup(st.Target)
	if err != nil {
		return graphics.Offset{}, err
	}
	return w.Bounds().Center(), nil
}

func (p *Player) lookup(name string) (widget.Widget, error) {
	w, ok := p.widgets.Widget(name)
	if !ok {
		return nil, fmt.Errorf("no widget named %q", name)
	}
	return w, nil
}

func (p *Player) expect(st Step) error {
	w, err := p.lookup(st.Target)
	if err != nil {
		return err
	}
	got := "<none>"
	if s := w.State(); s != nil {
		got = s.Kind().String()
	}
	if got != st.State {
		return fmt.Errorf("%w: %s is %s, want %s", ErrExpectation, st.Target, got, st.State)
	}
	return nil
}

func (st Step) String() string {
	s := st.Action
	if st.Target != "" {
		s += " " + st.Target
	}
	if st.X != nil && st.Y != nil {
		s += fmt.Sprintf(" (%g, %g)", *st.X, *st.Y)
	}
	if st.Key != "" {
		s += " " + st.Key
	}
	if st.Shift {
		s += " +shift"
	}
	if st.State != "" {
		s += " == " + st.State
	}
	return s
}
