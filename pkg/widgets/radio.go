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

// RadioGroup makes its members mutually exclusive. Members join at
// construction and are never removed.
type RadioGroup struct {
	members []*RadioButton
}

// NewRadioGroup creates an empty group.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{}
}

// Members returns the buttons in construction order.
func (g *RadioGroup) Members() []*RadioButton {
	out := make([]*RadioButton, len(g.members))
	copy(out, g.members)
	return out
}

// Selected returns the checked member, or nil.
func (g *RadioGroup) Selected() *RadioButton {
	for _, r := range g.members {
		if r.checked {
			return r
		}
	}
	return nil
}

func (g *RadioGroup) add(r *RadioButton) {
	g.members = append(g.members, r)
}

// uncheckOthers clears every member except keep.
func (g *RadioGroup) uncheckOthers(keep *RadioButton) {
	for _, r := range g.members {
		if r != keep && r.checked {
			r.SetChecked(false)
		}
	}
}

// RadioButton is a round selector with a label. Selecting one member of a
// group deselects the others. Clicking only ever selects.
type RadioButton struct {
	widget.Base

	th        *theme.RadioThemeData
	family    string
	group     *RadioGroup
	id        int
	ring      surface.Group
	circle    surface.Shape
	dot       surface.Group
	label     surface.Text
	hit       surface.Shape
	labelText string
	checked   bool
	stroke    graphics.Color
	onChange  func(id int, checked bool)
}

// NewRadioButton creates an unchecked radio button with the given id and
// adds it to group. A nil group gives the button a group of its own.
func NewRadioButton(parent widget.Container, group *RadioGroup, id int) *RadioButton {
	if group == nil {
		group = NewRadioGroup()
	}
	th := themeOf(parent)
	r := &RadioButton{
		th:        &th.Radio,
		family:    th.Font.Family,
		group:     group,
		id:        id,
		labelText: "Radio",
		stroke:    th.Radio.Border,
	}
	r.Init(parent, r, semantics.RoleRadio)
	r.SetSize(CheckSize, CheckSize)
	r.SetBackcolor(r.th.Background)
	group.add(r)
	widget.Must(r.Render(r.draw))
	widget.Must(r.SetState(interaction.IdleUp{}))
	r.SetSelectable(false)
	return r
}

func (r *RadioButton) draw(g surface.Group) {
	r.ring = g.Group()
	r.circle = r.ring.Circle(r.Width())
	r.circle.SetFill(r.Backcolor())
	r.circle.SetStroke(surface.Stroke{Color: r.stroke, Width: 2})

	r.dot = g.Group()
	dot := r.dot.Circle(r.Width() * 0.5)
	dot.SetFill(r.th.Dot)
	dot.Move(r.Width()*0.25, r.Width()*0.25)
	r.dot.Hide()

	r.label = g.Text(r.labelText)
	r.label.SetFont(surface.Font{Family: r.family, Size: checkLabelSize})
	r.label.SetFill(r.th.Foreground)
	r.label.Move(r.Width()+labelGap, 3)

	r.hit = hitRect(g, r.hitWidth(), r.Height(), 0)
	widget.Must(r.RegisterEvent(r.hit))
}

func (r *RadioButton) hitWidth() float64 {
	return r.Width() + r.label.Length() + labelGap
}

// RadioID is the id given at construction.
func (r *RadioButton) RadioID() int { return r.id }

// RadioGroup is the group the button belongs to.
func (r *RadioButton) RadioGroup() *RadioGroup { return r.group }

func (r *RadioButton) Checked() bool { return r.checked }

// SetChecked selects or deselects the button. Selecting it first
// deselects every other member of its group. OnChange fires for each
// button whose state changes.
func (r *RadioButton) SetChecked(checked bool) {
	if r.checked == checked {
		return
	}
	if checked {
		r.group.uncheckOthers(r)
	}
	r.checked = checked
	r.Update()
	if r.onChange != nil {
		r.onChange(r.id, checked)
	}
}

func (r *RadioButton) Label() string { return r.labelText }

func (r *RadioButton) SetLabel(text string) {
	r.labelText = text
	r.Update()
}

// OnChange sets the function called when the button is selected or deselected.
func (r *RadioButton) OnChange(fn func(id int, checked bool)) { r.onChange = fn }

func (r *RadioButton) Update() {
	if r.dot != nil {
		if r.checked {
			r.dot.Show()
		} else {
			r.dot.Hide()
		}
	}
	if r.circle != nil {
		fill := r.Backcolor()
		if !r.Enabled() {
			fill = r.th.Disabled
		}
		r.circle.SetFill(fill)
		r.circle.SetStroke(surface.Stroke{Color: r.stroke, Width: 2})
	}
	if r.hit != nil {
		r.label.SetText(r.labelText)
		r.hit.SetSize(r.hitWidth(), r.Height())
	}
	r.Base.Update()
}

func (r *RadioButton) paint(fill, stroke graphics.Color) {
	r.stroke = stroke
	r.SetBackcolor(fill)
}

func (r *RadioButton) selectFrom(ev any) {
	wasChecked := r.checked
	r.SetChecked(true)
	if !wasChecked {
		r.Raise(widget.EventArgs{Event: ev})
	}
}

func (r *RadioButton) PressReleaseState() { r.selectFrom(r.RawEvent()) }

func (r *RadioButton) IdleUpState()       { r.paint(r.th.Background, r.th.Border) }
func (r *RadioButton) IdleDownState()     { r.paint(r.th.IdleDown, r.th.Border) }
func (r *RadioButton) PressedState()      { r.paint(r.th.Pressed, r.th.PressedBorder) }
func (r *RadioButton) HoverState()        { r.paint(r.th.Hover, r.th.Border) }
func (r *RadioButton) HoverPressedState() { r.paint(r.th.Pressed, r.th.HoverPressedBorder) }
func (r *RadioButton) PressedOutState()   { r.paint(r.th.Pressed, r.th.PressedBorder) }

func (r *RadioButton) MoveState(gestures.PointerEvent) { r.Update() }

func (r *RadioButton) KeyUpState(ev gestures.KeyEvent) {
	if ev.IsActivation() {
		r.selectFrom(ev)
	}
}
