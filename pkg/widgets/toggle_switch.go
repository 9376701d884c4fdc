package widgets

import (
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/theme"
	"github.com/go-drift/vectorui/pkg/widget"
)

// ToggleSwitch geometry.
const (
	SwitchTrackWidth  = 50
	SwitchTrackHeight = 24
	SwitchHandleSize  = 20
	switchInset       = 2
)

// ToggleSwitch is an on/off switch. Each completed click flips it.
type ToggleSwitch struct {
	widget.Base
	interaction.NopBehavior

	th       *theme.SwitchThemeData
	track    surface.Shape
	handle   surface.Shape
	hit      surface.Shape
	on       bool
	hovered  bool
	onToggle func(on bool)
}

// NewToggleSwitch creates a switch in the off position.
func NewToggleSwitch(parent widget.Container) *ToggleSwitch {
	th := themeOf(parent)
	s := &ToggleSwitch{th: &th.Switch}
	s.Init(parent, s, semantics.RoleSwitch)
	s.SetSize(SwitchTrackWidth, SwitchTrackHeight)
	widget.Must(s.Render(s.draw))
	widget.Must(s.SetState(interaction.IdleUp{}))
	return s
}

func (s *ToggleSwitch) draw(g surface.Group) {
	s.track = g.Rect(SwitchTrackWidth, SwitchTrackHeight)
	s.track.SetRadius(SwitchTrackHeight / 2)

	s.handle = g.Rect(SwitchHandleSize, SwitchHandleSize)
	s.handle.SetRadius(SwitchHandleSize / 2)
	s.handle.SetFill(s.th.Thumb)
	s.handle.SetStroke(surface.Stroke{Color: s.th.ThumbBorder, Width: 1})

	s.hit = hitRect(g, SwitchTrackWidth, SwitchTrackHeight, 0)
	widget.Must(s.RegisterEvent(s.hit))
	s.Update()
}

// IsOn reports the switch position.
func (s *ToggleSwitch) IsOn() bool { return s.on }

// SetOn moves the switch. OnToggle fires when the position changes.
func (s *ToggleSwitch) SetOn(on bool) {
	if s.on == on {
		return
	}
	s.on = on
	s.Update()
	if s.onToggle != nil {
		s.onToggle(on)
	}
}

// Toggle flips the switch.
func (s *ToggleSwitch) Toggle() { s.SetOn(!s.on) }

// OnToggle sets the function called when the switch flips.
func (s *ToggleSwitch) OnToggle(fn func(on bool)) { s.onToggle = fn }

// Update paints the track for the position and hover state and slides the
// handle to the matching end. A disabled switch paints a flat track.
func (s *ToggleSwitch) Update() {
	if s.track == nil {
		return
	}
	switch {
	case !s.Enabled():
		s.track.SetFill(s.th.Disabled)
	case s.on && s.hovered:
		s.track.SetFill(s.th.ActiveHover)
	case s.on:
		s.track.SetFill(s.th.ActiveTrack)
	case s.hovered:
		s.track.SetFill(s.th.InactiveHover)
	default:
		s.track.SetFill(s.th.InactiveTrack)
	}
	x := float64(switchInset)
	if s.on {
		x = SwitchTrackWidth - SwitchHandleSize - switchInset
	}
	s.handle.Move(x, switchInset)
	s.Base.Update()
}

func (s *ToggleSwitch) setHovered(hovered bool) {
	s.hovered = hovered
	s.Update()
}

func (s *ToggleSwitch) flip(ev any) {
	s.Toggle()
	s.Raise(widget.EventArgs{Event: ev})
}

func (s *ToggleSwitch) PressReleaseState() { s.flip(s.RawEvent()) }

func (s *ToggleSwitch) HoverState()        { s.setHovered(true) }
func (s *ToggleSwitch) HoverPressedState() { s.setHovered(true) }
func (s *ToggleSwitch) IdleUpState()       { s.setHovered(false) }
func (s *ToggleSwitch) PressedOutState()   { s.setHovered(false) }

func (s *ToggleSwitch) KeyUpState(ev gestures.KeyEvent) {
	if ev.IsActivation() {
		s.flip(ev)
	}
}
