package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/theme"
	"github.com/go-drift/vectorui/pkg/widget"
)

// ProgressBar defaults.
const (
	ProgressWidth     = 200
	ProgressHeight    = 20
	ProgressIncrement = 10
	progressLabelSize = 12
)

// Names reported to OnStateChange.
const (
	ProgressIdle         = "idle"
	ProgressIdleDown     = "idle-down"
	ProgressHover        = "hover"
	ProgressPressed      = "pressed"
	ProgressHoverPressed = "hover-pressed"
	ProgressPressedOut   = "pressed-out"
	ProgressReleased     = "released"
	ProgressMove         = "move"
)

// ProgressBar shows a percentage between 0 and 100. Values outside that
// range are clamped. It reports its interaction states by name to
// OnStateChange.
type ProgressBar struct {
	widget.Base

	th            *theme.ProgressThemeData
	family        string
	track         surface.Shape
	fill          surface.Shape
	label         surface.Text
	hit           surface.Shape
	value         float64
	increment     float64
	onProgress    func(value float64)
	onStateChange func(state string)
}

// NewProgressBar creates an empty progress bar.
func NewProgressBar(parent widget.Container) *ProgressBar {
	th := themeOf(parent)
	p := &ProgressBar{
		th:        &th.Progress,
		family:    th.Font.Family,
		increment: ProgressIncrement,
	}
	p.Init(parent, p, semantics.RoleProgressbar)
	p.SetSize(ProgressWidth, ProgressHeight)
	widget.Must(p.Render(p.draw))
	widget.Must(p.SetState(interaction.IdleUp{}))
	return p
}

func (p *ProgressBar) draw(g surface.Group) {
	p.track = g.Rect(p.Width(), p.Height())
	p.track.SetFill(p.th.Track)
	p.track.SetStroke(surface.Stroke{Color: p.th.Border, Width: 1})
	p.track.SetRadius(p.th.BorderRadius)

	p.fill = g.Rect(0, p.Height())
	p.fill.SetFill(p.th.Fill)
	p.fill.SetRadius(p.th.BorderRadius)

	p.label = g.Text("0%")
	p.label.SetFont(surface.Font{Family: p.family, Size: progressLabelSize, Weight: surface.WeightBold})
	p.label.SetFill(p.th.Foreground)

	p.hit = hitRect(g, p.Width(), p.Height(), 0)
	widget.Must(p.RegisterEvent(p.hit))
	p.Update()
}

// SetWidth changes the bar's width.
func (p *ProgressBar) SetWidth(width float64) {
	p.SetSize(width, p.Height())
	p.track.SetSize(width, p.Height())
	p.hit.SetSize(width, p.Height())
	p.Update()
}

// Value is the current percentage.
func (p *ProgressBar) Value() float64 { return p.value }

// SetValue sets the percentage, clamped to [0, 100]. OnProgress fires only
// when the clamped value differs from the current one.
func (p *ProgressBar) SetValue(value float64) {
	next := math.Max(0, math.Min(100, value))
	if next == p.value {
		return
	}
	p.value = next
	p.Update()
	if p.onProgress != nil {
		p.onProgress(p.value)
	}
}

// IncrementSize is the step used by Increment.
func (p *ProgressBar) IncrementSize() float64 { return p.increment }

// SetIncrement sets the step used by Increment, clamped to [0, 100].
func (p *ProgressBar) SetIncrement(step float64) {
	p.increment = math.Max(0, math.Min(100, step))
}

// Increment advances the bar by the increment size.
func (p *ProgressBar) Increment() { p.IncrementBy(p.increment) }

// IncrementBy advances the bar by amount.
func (p *ProgressBar) IncrementBy(amount float64) { p.SetValue(p.value + amount) }

// OnProgress sets the function called when the value changes.
func (p *ProgressBar) OnProgress(fn func(value float64)) { p.onProgress = fn }

// OnStateChange sets the function called with the name of each
// interaction state the bar enters.
func (p *ProgressBar) OnStateChange(fn func(state string)) { p.onStateChange = fn }

// Update sizes the fill and re-centres the percentage label.
func (p *ProgressBar) Update() {
	if p.fill == nil {
		return
	}
	p.fill.SetSize(p.value/100*p.Width(), p.Height())
	if p.Enabled() {
		p.fill.SetFill(p.th.Fill)
	} else {
		p.fill.SetFill(p.th.Disabled)
	}
	p.label.SetText(fmt.Sprintf("%d%%", int(math.Round(p.value))))
	centerText(p.label, p.track.Position(), p.Width(), p.Height())
	p.Base.Update()
}

func (p *ProgressBar) report(state string) {
	if p.onStateChange != nil {
		p.onStateChange(state)
	}
}

func (p *ProgressBar) IdleUpState()       { p.report(ProgressIdle) }
func (p *ProgressBar) IdleDownState()     { p.report(ProgressIdleDown) }
func (p *ProgressBar) HoverState()        { p.report(ProgressHover) }
func (p *ProgressBar) PressedState()      { p.report(ProgressPressed) }
func (p *ProgressBar) HoverPressedState() { p.report(ProgressHoverPressed) }
func (p *ProgressBar) PressedOutState()   { p.report(ProgressPressedOut) }

func (p *ProgressBar) PressReleaseState() { p.release(p.RawEvent()) }

func (p *ProgressBar) MoveState(gestures.PointerEvent) { p.report(ProgressMove) }

func (p *ProgressBar) KeyUpState(ev gestures.KeyEvent) {
	if ev.IsActivation() {
		p.release(ev)
	}
}

func (p *ProgressBar) release(ev any) {
	p.report(ProgressReleased)
	p.Raise(widget.EventArgs{Event: ev})
}
