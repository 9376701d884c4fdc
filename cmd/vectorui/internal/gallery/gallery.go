// Package gallery builds the demo layout: one labelled section per widget
// kind, stacked down the left edge of a window.
package gallery

import (
	"fmt"
	"io"
	"log"

	"github.com/go-drift/vectorui/pkg/widget"
	"github.com/go-drift/vectorui/pkg/widgets"
)

const sectionFontSize = 16

// Gallery holds the demo widgets. Names lists every widget under the name
// scripts use to address it.
type Gallery struct {
	Button      *widgets.Button
	Checkbox    *widgets.Checkbox
	Radios      []*widgets.RadioButton
	RadioGroup  *widgets.RadioGroup
	ScrollBar   *widgets.ScrollBar
	ProgressBar *widgets.ProgressBar
	Increment   *widgets.Button
	Switch      *widgets.ToggleSwitch
	Headings    []*widgets.Heading

	names map[string]widget.Widget
	order []string
}

// Build lays out the demo in parent. Callbacks report to logger; a nil
// logger discards them.
func Build(parent widget.Container, logger *log.Logger) *Gallery {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g := &Gallery{names: make(map[string]widget.Widget)}

	g.heading(parent, "Button Demo", 20)
	g.Button = widgets.NewButton(parent)
	g.Button.SetTabIndex(2)
	g.Button.SetFontSize(14)
	g.Button.Move(12, 50)
	g.Button.OnClick(func() { logger.Printf("Button clicked") })
	g.add("button", g.Button)

	g.heading(parent, "Checkbox Demo", 110)
	g.Checkbox = widgets.NewCheckbox(parent)
	g.Checkbox.Move(12, 140)
	g.Checkbox.OnChange(func(checked bool) { logger.Printf("Checkbox is now: %t", checked) })
	g.add("checkbox", g.Checkbox)

	g.heading(parent, "Radio Button Demo", 190)
	g.RadioGroup = widgets.NewRadioGroup()
	for i := 1; i <= 3; i++ {
		r := widgets.NewRadioButton(parent, g.RadioGroup, i)
		r.Move(12, float64(190+30*i))
		r.SetLabel(fmt.Sprintf("Option %d", i))
		r.OnChange(func(id int, checked bool) {
			if checked {
				logger.Printf("Radio button %d selected", id)
			}
		})
		g.Radios = append(g.Radios, r)
		g.add(fmt.Sprintf("radio%d", i), r)
	}

	g.heading(parent, "Scrollbar Demo", 320)
	g.ScrollBar = widgets.NewScrollBar(parent)
	g.ScrollBar.SetScrollHeight(200)
	g.ScrollBar.Move(12, 350)
	g.ScrollBar.OnScroll(func(pos float64, dir widgets.ScrollDirection) {
		logger.Printf("Scrolled %s to position %g", dir, pos)
	})
	g.add("scrollbar", g.ScrollBar)

	g.heading(parent, "Progress Bar Demo", 580)
	g.ProgressBar = widgets.NewProgressBar(parent)
	g.ProgressBar.SetWidth(200)
	g.ProgressBar.Move(12, 610)
	g.ProgressBar.OnProgress(func(v float64) { logger.Printf("Progress: %g%%", v) })
	g.ProgressBar.OnStateChange(func(s string) { logger.Printf("Progress bar state: %s", s) })
	g.add("progress", g.ProgressBar)

	g.Increment = widgets.NewButton(parent)
	g.Increment.SetText("Increment")
	g.Increment.SetFontSize(14)
	g.Increment.SetButtonWidth(100)
	g.Increment.Move(12, 640)
	g.Increment.OnClick(g.ProgressBar.Increment)
	g.add("increment", g.Increment)

	g.heading(parent, "Toggle Switch Demo", 710)
	g.Switch = widgets.NewToggleSwitch(parent)
	g.Switch.Move(12, 730)
	g.Switch.OnToggle(func(on bool) {
		state := "OFF"
		if on {
			state = "ON"
		}
		logger.Printf("Toggle switch is: %s", state)
	})
	g.add("switch", g.Switch)

	return g
}

func (g *Gallery) heading(parent widget.Container, text string, y float64) {
	h := widgets.NewHeading(parent)
	h.SetText(text)
	h.SetFontSize(sectionFontSize)
	h.Move(10, y)
	g.Headings = append(g.Headings, h)
}

func (g *Gallery) add(name string, w widget.Widget) {
	g.names[name] = w
	g.order = append(g.order, name)
}

// Widget returns the widget registered under name.
func (g *Gallery) Widget(name string) (widget.Widget, bool) {
	w, ok := g.names[name]
	return w, ok
}

// Names lists the addressable widgets in layout order.
func (g *Gallery) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}
