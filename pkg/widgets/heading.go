package widgets

import (
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/widget"
)

// Heading is a static line of bold text. It never takes part in
// interaction.
type Heading struct {
	widget.Base
	interaction.NopBehavior

	family   string
	label    surface.Text
	text     string
	fontSize float64
}

// NewHeading creates a heading reading "Heading".
func NewHeading(parent widget.Container) *Heading {
	th := themeOf(parent)
	h := &Heading{
		family:   th.Font.Family,
		text:     "Heading",
		fontSize: th.Heading.FontSize,
	}
	h.Init(parent, h, semantics.RoleHeading)
	h.SetSize(h.fontSize, h.fontSize)
	widget.Must(h.Render(func(g surface.Group) {
		h.label = g.Text(h.text)
		h.label.SetFill(th.Heading.Foreground)
	}))
	widget.Must(h.SetState(interaction.IdleUp{}))
	h.SetEnabled(false)
	h.SetSelectable(false)
	h.Update()
	return h
}

func (h *Heading) Text() string { return h.text }

func (h *Heading) SetText(text string) {
	h.text = text
	h.Update()
}

func (h *Heading) FontSize() float64 { return h.fontSize }

func (h *Heading) SetFontSize(size float64) {
	h.fontSize = size
	h.Update()
}

// Update applies the text and font and sizes the widget to fit.
func (h *Heading) Update() {
	if h.label == nil {
		return
	}
	h.label.SetText(h.text)
	h.label.SetFont(surface.Font{Family: h.family, Size: h.fontSize, Weight: surface.WeightBold})
	box := h.label.BBox()
	h.SetSize(box.Width(), box.Height())
	h.Base.Update()
}
