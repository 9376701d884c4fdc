package widgets

import (
	"math"

	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/theme"
	"github.com/go-drift/vectorui/pkg/widget"
)

// ScrollBar geometry.
const (
	ScrollButtonSize    = 20
	ScrollBarWidth      = 16
	ScrollThumbHeight   = 30
	ScrollStep          = 10
	DefaultScrollHeight = 200
)

// ScrollDirection is the direction the thumb last moved in.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
)

func (d ScrollDirection) String() string {
	if d == ScrollDown {
		return "down"
	}
	return "up"
}

// ScrollBar is a vertical scroll control: a step button at each end, a
// track, and a thumb that can be dragged. Clicking the track jumps the
// thumb there; each step button moves it by ScrollStep.
//
// Position runs from 0 to the track height minus the thumb height.
type ScrollBar struct {
	widget.Base
	interaction.NopBehavior

	th           *theme.ScrollBarThemeData
	upButton     surface.Group
	downButton   surface.Group
	track        surface.Shape
	thumb        surface.Shape
	scrollHeight float64
	position     float64
	dragStart    float64
	onScroll     func(position float64, direction ScrollDirection)
}

// NewScrollBar creates a scroll bar DefaultScrollHeight tall with the thumb
// at the top.
func NewScrollBar(parent widget.Container) *ScrollBar {
	th := themeOf(parent)
	s := &ScrollBar{
		th:           &th.ScrollBar,
		scrollHeight: DefaultScrollHeight,
	}
	s.Init(parent, s, semantics.RoleScrollbar)
	s.SetSize(ScrollBarWidth, s.scrollHeight)
	s.SetDraggable(true)
	widget.Must(s.Render(s.draw))
	widget.Must(s.SetState(interaction.IdleUp{}))
	return s
}

func (s *ScrollBar) draw(g surface.Group) {
	var upRect, downRect surface.Shape
	s.upButton, upRect = s.stepButton(g, "M4 12 L8 8 L12 12")

	s.track = g.Rect(ScrollBarWidth, s.trackHeight())
	s.track.Move(0, ScrollButtonSize)
	s.track.SetFill(s.th.Track)
	s.track.SetStroke(surface.Stroke{Color: s.th.Border, Width: 1})

	s.thumb = g.Rect(ScrollBarWidth-4, ScrollThumbHeight)
	s.thumb.Move(2, ScrollButtonSize)
	s.thumb.SetFill(s.th.Thumb)
	s.thumb.SetRadius(2)

	s.downButton, downRect = s.stepButton(g, "M4 8 L8 12 L12 8")
	s.downButton.Move(0, s.scrollHeight-ScrollButtonSize)

	widget.Must(s.Listen(upRect, s.clicks(upRect, func(gestures.PointerEvent) { s.StepUp() })))
	widget.Must(s.Listen(downRect, s.clicks(downRect, func(gestures.PointerEvent) { s.StepDown() })))
	widget.Must(s.Listen(s.track, s.clicks(s.track, func(ev gestures.PointerEvent) {
		s.scrollTo(ev.Position.Y - s.track.Bounds().Top)
	})))
	widget.Must(s.RegisterEvent(s.thumb))
}

func (s *ScrollBar) stepButton(g surface.Group, arrow string) (surface.Group, surface.Shape) {
	b := g.Group()
	r := b.Rect(ScrollBarWidth, ScrollButtonSize)
	r.SetFill(s.th.Button)
	r.SetStroke(surface.Stroke{Color: s.th.Border, Width: 1})
	a := b.Path(arrow)
	a.SetFill(graphics.ColorTransparent)
	a.SetStroke(surface.Stroke{Color: s.th.Arrow, Width: 2})
	return b, r
}

func (s *ScrollBar) clicks(region surface.Shape, fn func(gestures.PointerEvent)) *clickListener {
	return &clickListener{region: region, enabled: s.Enabled, onClick: fn}
}

func (s *ScrollBar) trackHeight() float64 {
	return s.scrollHeight - 2*ScrollButtonSize
}

// MaxPosition is the largest thumb position for the current height.
func (s *ScrollBar) MaxPosition() float64 {
	return s.trackHeight() - ScrollThumbHeight
}

// ThumbPosition is the thumb offset from the top of the track.
func (s *ScrollBar) ThumbPosition() float64 { return s.position }

// ScrollHeight is the total height including both step buttons.
func (s *ScrollBar) ScrollHeight() float64 { return s.scrollHeight }

// SetScrollHeight changes the total height. It is raised to the room the
// thumb and both buttons need, and the thumb is pulled back inside the new
// track if necessary.
func (s *ScrollBar) SetScrollHeight(height float64) {
	s.scrollHeight = math.Max(height, ScrollThumbHeight+2*ScrollButtonSize)
	s.position = math.Min(s.position, s.MaxPosition())
	s.SetSize(ScrollBarWidth, s.scrollHeight)
	s.Update()
}

// OnScroll sets the function called whenever the thumb moves.
func (s *ScrollBar) OnScroll(fn func(position float64, direction ScrollDirection)) {
	s.onScroll = fn
}

// StepUp moves the thumb ScrollStep towards the top.
func (s *ScrollBar) StepUp() { s.scrollTo(s.position - ScrollStep) }

// StepDown moves the thumb ScrollStep towards the bottom.
func (s *ScrollBar) StepDown() { s.scrollTo(s.position + ScrollStep) }

// ScrollTo moves the thumb to position, clamped to the track.
func (s *ScrollBar) ScrollTo(position float64) { s.scrollTo(position) }

func (s *ScrollBar) scrollTo(position float64) {
	next := graphics.Clamp(position, 0, s.MaxPosition())
	if next == s.position {
		return
	}
	dir := ScrollUp
	if next > s.position {
		dir = ScrollDown
	}
	s.position = next
	s.Update()
	s.Raise(widget.EventArgs{Event: s.RawEvent()})
	if s.onScroll != nil {
		s.onScroll(s.position, dir)
	}
}

// Update lays out the track, thumb and lower button for the current height
// and position.
func (s *ScrollBar) Update() {
	if s.track == nil {
		return
	}
	s.track.SetSize(ScrollBarWidth, s.trackHeight())
	s.thumb.Move(2, ScrollButtonSize+s.position)
	s.downButton.Move(0, s.scrollHeight-ScrollButtonSize)
	s.Base.Update()
}

// PressedState records where the thumb was when a drag starts.
func (s *ScrollBar) PressedState() {
	s.dragStart = s.position
}

// MoveState follows the pointer relative to where the drag started.
func (s *ScrollBar) MoveState(ev gestures.PointerEvent) {
	d, ok := s.State().(interaction.Drag)
	if !ok {
		return
	}
	s.scrollTo(s.dragStart + ev.Position.Y - d.Origin.Y)
}
