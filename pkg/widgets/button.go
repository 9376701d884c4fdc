package widgets

import (
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/theme"
	"github.com/go-drift/vectorui/pkg/widget"
)

// Button defaults.
const (
	ButtonWidth    = 120
	ButtonHeight   = 40
	ButtonFontSize = 20
)

// Button is a pressable rectangle with a centred label.
//
// The label switches to the pressed label while the button is held, and
// the button turns the pressed colour when a click commits. A click is a
// press released over the button, or Space/Enter while it has focus.
type Button struct {
	widget.Base

	th          *theme.ButtonThemeData
	family      string
	rect        surface.Shape
	hit         surface.Shape
	label       surface.Text
	text        string
	pressedText string
	shownText   string
	fontSize    float64
	stroke      graphics.Color
	onClick     func()
}

// NewButton creates a button in parent with the theme's idle label.
func NewButton(parent widget.Container) *Button {
	th := themeOf(parent)
	b := &Button{
		th:          &th.Button,
		family:      th.Font.Family,
		text:        th.Button.Label,
		pressedText: th.Button.PressedLabel,
		fontSize:    ButtonFontSize,
		stroke:      th.Button.Border,
	}
	b.shownText = b.text
	b.Init(parent, b, semantics.RoleButton)
	b.SetSize(ButtonWidth, ButtonHeight)
	b.SetBackcolor(b.th.Background)
	widget.Must(b.Render(b.draw))
	widget.Must(b.SetState(interaction.IdleUp{}))
	b.SetSelectable(false)
	return b
}

func (b *Button) draw(g surface.Group) {
	b.rect = g.Rect(b.Width(), b.Height())
	b.rect.SetRadius(b.th.BorderRadius)
	b.rect.SetFill(b.Backcolor())
	b.rect.SetStroke(surface.Stroke{Color: b.stroke, Width: 2})

	b.label = g.Text(b.shownText)
	b.label.SetFont(surface.Font{Family: b.family, Size: b.fontSize, Weight: surface.WeightBold})
	b.label.SetFill(b.th.Foreground)

	b.hit = hitRect(g, b.Width(), b.Height(), 8)
	b.positionText()
	widget.Must(b.RegisterEvent(b.hit))
}

// Text is the idle label.
func (b *Button) Text() string { return b.text }

// SetText changes the idle label.
func (b *Button) SetText(text string) {
	b.text = text
	if !b.showingPressed() {
		b.shownText = text
	}
	b.Update()
}

// PressedText is the label shown while pressed.
func (b *Button) PressedText() string { return b.pressedText }

// SetPressedText changes the label shown while pressed.
func (b *Button) SetPressedText(text string) {
	b.pressedText = text
	if b.showingPressed() {
		b.shownText = text
	}
	b.Update()
}

// Label is the text currently displayed.
func (b *Button) Label() string { return b.shownText }

func (b *Button) FontSize() float64 { return b.fontSize }

func (b *Button) SetFontSize(size float64) {
	b.fontSize = size
	b.Update()
}

// SetButtonWidth resizes the button and re-centres its label.
func (b *Button) SetButtonWidth(width float64) {
	b.SetSize(width, b.Height())
	b.resize()
}

// SetButtonHeight resizes the button and re-centres its label.
func (b *Button) SetButtonHeight(height float64) {
	b.SetSize(b.Width(), height)
	b.resize()
}

func (b *Button) resize() {
	b.rect.SetSize(b.Width(), b.Height())
	b.hit.SetSize(b.Width(), b.Height())
	b.positionText()
}

// Center moves the button to the middle of its container.
func (b *Button) Center() {
	size := b.Parent().Surface().Size()
	b.Move((size.Width-b.Width())/2, (size.Height-b.Height())/2)
}

// OnClick sets the function called when a click commits.
func (b *Button) OnClick(fn func()) { b.onClick = fn }

// Update reconciles the rectangle and label with the current style.
func (b *Button) Update() {
	if b.label != nil {
		b.label.SetFont(surface.Font{Family: b.family, Size: b.fontSize, Weight: surface.WeightBold})
		b.label.SetText(b.shownText)
		b.positionText()
	}
	if b.rect != nil {
		fill := b.Backcolor()
		if !b.Enabled() {
			fill = b.th.Disabled
		}
		b.rect.SetFill(fill)
		b.rect.SetStroke(surface.Stroke{Color: b.stroke, Width: 2})
	}
	b.Base.Update()
}

func (b *Button) positionText() {
	centerText(b.label, b.rect.Position(), b.Width(), b.Height())
}

func (b *Button) showingPressed() bool {
	return b.shownText == b.pressedText && b.pressedText != b.text
}

func (b *Button) paint(fill, stroke graphics.Color, text string) {
	b.stroke = stroke
	b.shownText = text
	b.SetBackcolor(fill)
}

func (b *Button) click(ev any) {
	b.paint(b.th.Pressed, b.th.PressedBorder, b.pressedText)
	b.Raise(widget.EventArgs{Event: ev})
	if b.onClick != nil {
		b.onClick()
	}
}

func (b *Button) IdleUpState() {
	b.paint(b.th.Background, b.th.Border, b.text)
}

func (b *Button) IdleDownState() {
	b.paint(b.th.Background, b.th.Border, b.text)
}

func (b *Button) HoverState() {
	b.paint(b.th.Hover, b.th.Border, b.text)
}

func (b *Button) PressedState() {
	b.paint(b.th.Pressed, b.th.PressedBorder, b.pressedText)
}

func (b *Button) HoverPressedState() {
	b.paint(b.th.Hover, b.th.PressedBorder, b.pressedText)
}

func (b *Button) PressedOutState() {
	b.paint(b.th.PressedOut, b.th.PressedBorder, b.pressedText)
}

func (b *Button) PressReleaseState() {
	b.click(b.RawEvent())
}

func (b *Button) MoveState(gestures.PointerEvent) {
	b.Update()
}

func (b *Button) KeyUpState(ev gestures.KeyEvent) {
	if ev.IsActivation() {
		b.click(ev)
	}
}
