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

// CheckSize is the side of a checkbox and the diameter of a radio button.
const CheckSize = 20

const checkLabelSize = 14

// checkmarkPath is drawn inside a CheckSize box.
const checkmarkPath = "M5 10 L8 15 L15 5"

// Checkbox is a two-state box with a label. Clicking the box or its label
// toggles it.
type Checkbox struct {
	widget.Base

	th        *theme.CheckboxThemeData
	family    string
	box       surface.Shape
	checkmark surface.Group
	label     surface.Text
	hit       surface.Shape
	labelText string
	checked   bool
	stroke    graphics.Color
	onChange  func(checked bool)
}

// NewCheckbox creates an unchecked checkbox labelled "Checkbox".
func NewCheckbox(parent widget.Container) *Checkbox {
	th := themeOf(parent)
	c := &Checkbox{
		th:        &th.Checkbox,
		family:    th.Font.Family,
		labelText: "Checkbox",
		stroke:    th.Checkbox.Border,
	}
	c.Init(parent, c, semantics.RoleCheckbox)
	c.SetSize(CheckSize, CheckSize)
	c.SetBackcolor(c.th.Background)
	widget.Must(c.Render(c.draw))
	widget.Must(c.SetState(interaction.IdleUp{}))
	c.SetSelectable(false)
	return c
}

func (c *Checkbox) draw(g surface.Group) {
	c.box = g.Rect(c.Width(), c.Height())
	c.box.SetRadius(c.th.BorderRadius)
	c.box.SetFill(c.Backcolor())
	c.box.SetStroke(surface.Stroke{Color: c.stroke, Width: 2})

	c.checkmark = g.Group()
	mark := c.checkmark.Path(checkmarkPath)
	mark.SetFill(graphics.ColorTransparent)
	mark.SetStroke(surface.Stroke{Color: c.th.Check, Width: 3})
	c.checkmark.Hide()

	c.label = g.Text(c.labelText)
	c.label.SetFont(surface.Font{Family: c.family, Size: checkLabelSize})
	c.label.SetFill(c.th.Foreground)
	c.label.Move(c.Width()+labelGap, 3)

	c.hit = hitRect(g, c.hitWidth(), c.Height(), 0)
	widget.Must(c.RegisterEvent(c.hit))
}

func (c *Checkbox) hitWidth() float64 {
	return c.Width() + c.label.Length() + labelGap
}

func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the checked state. OnChange fires when it changes.
func (c *Checkbox) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}
	c.checked = checked
	c.Update()
	if c.onChange != nil {
		c.onChange(checked)
	}
}

func (c *Checkbox) Label() string { return c.labelText }

// SetLabel changes the label and widens the clickable area to match.
func (c *Checkbox) SetLabel(text string) {
	c.labelText = text
	c.Update()
}

// OnChange sets the function called when the checked state changes.
func (c *Checkbox) OnChange(fn func(checked bool)) { c.onChange = fn }

// Update shows or hides the checkmark, repaints the box and fits the
// clickable area to the label.
func (c *Checkbox) Update() {
	if c.checkmark != nil {
		if c.checked {
			c.checkmark.Show()
		} else {
			c.checkmark.Hide()
		}
	}
	if c.box != nil {
		fill := c.Backcolor()
		if !c.Enabled() {
			fill = c.th.Disabled
		}
		c.box.SetFill(fill)
		c.box.SetStroke(surface.Stroke{Color: c.stroke, Width: 2})
	}
	if c.hit != nil {
		c.label.SetText(c.labelText)
		c.hit.SetSize(c.hitWidth(), c.Height())
	}
	c.Base.Update()
}

func (c *Checkbox) paint(fill, stroke graphics.Color) {
	c.stroke = stroke
	c.SetBackcolor(fill)
}

func (c *Checkbox) toggle(ev any) {
	c.SetChecked(!c.checked)
	c.paint(c.th.Background, c.th.Border)
	c.Raise(widget.EventArgs{Event: ev})
}

func (c *Checkbox) PressReleaseState() { c.toggle(c.RawEvent()) }

func (c *Checkbox) IdleUpState()       { c.paint(c.th.Background, c.th.Border) }
func (c *Checkbox) IdleDownState()     { c.paint(c.th.Pressed, c.th.Border) }
func (c *Checkbox) PressedState()      { c.paint(c.th.Pressed, c.th.ActiveBorder) }
func (c *Checkbox) HoverState()        { c.paint(c.th.Hover, c.th.ActiveBorder) }
func (c *Checkbox) HoverPressedState() { c.paint(c.th.Pressed, c.th.ActiveBorder) }
func (c *Checkbox) PressedOutState()   { c.paint(c.th.Background, c.th.Border) }

func (c *Checkbox) MoveState(gestures.PointerEvent) {}

func (c *Checkbox) KeyUpState(ev gestures.KeyEvent) {
	if ev.IsActivation() {
		c.toggle(ev)
	}
}
