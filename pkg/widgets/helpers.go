package widgets

import (
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/theme"
	"github.com/go-drift/vectorui/pkg/widget"
)

// labelGap separates a check control from its label.
const labelGap = 10

func themeOf(parent widget.Container) *theme.ThemeData {
	return theme.Of(parent)
}

// centerText places t in the middle of a width x height box whose
// top-left corner is at origin. The text is never pushed above the box.
func centerText(t surface.Text, origin graphics.Offset, width, height float64) {
	box := t.BBox()
	x := origin.X + width/2 - box.Width()/2
	y := origin.Y + height/2 - box.Height()/2
	if y < origin.Y {
		y = origin.Y
	}
	t.Move(x, y)
}

// hitRect creates an invisible rectangle used as a hit region.
func hitRect(g surface.Group, width, height, radius float64) surface.Shape {
	r := g.Rect(width, height)
	r.SetOpacity(0)
	if radius > 0 {
		r.SetRadius(radius)
	}
	return r
}

// clickListener fires onClick when a press that started on region is
// released on it. It is used for secondary controls that do not go
// through the interaction controller.
type clickListener struct {
	region  surface.Shape
	enabled func() bool
	onClick func(ev gestures.PointerEvent)
	armed   bool
}

func (c *clickListener) HandlePointer(ev gestures.PointerEvent) {
	if c.enabled != nil && !c.enabled() {
		c.armed = false
		return
	}
	switch ev.Phase {
	case gestures.PointerPhaseDown:
		c.armed = true
	case gestures.PointerPhaseUp:
		if c.armed && c.region.Bounds().Contains(ev.Position) {
			c.onClick(ev)
		}
		c.armed = false
	case gestures.PointerPhaseCancel:
		c.armed = false
	}
}

func (c *clickListener) HandleKey(gestures.KeyEvent) {}
