// Package tui is a terminal host for a widget window. It draws the widgets
// as character cells and turns terminal mouse and key events into pointer
// and key notifications for the window.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/vectorui/cmd/vectorui/internal/gallery"
	"github.com/go-drift/vectorui/pkg/focus"
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/host"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/theme"
	"github.com/go-drift/vectorui/pkg/widget"
	"github.com/go-drift/vectorui/pkg/widgets"
)

// Cell size in window units.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	stylePlain = iota
	styleHeading
	styleIdle
	styleHover
	stylePressed
	styleFocused
	styleDisabled
)

// Model is the bubbletea model driving a window.
type Model struct {
	window  *host.Window
	gallery *gallery.Gallery
	log     *Log
	palette []lipgloss.Style
	panel   lipgloss.Style
	title   lipgloss.Style
	cols    int
	rows    int
	buttons int
}

// New creates a model for w. log, which may be nil, is shown under the
// widget panel; hand it to the loggers that should appear there.
func New(w *host.Window, g *gallery.Gallery, log *Log) *Model {
	size := w.Size()
	m := &Model{
		window:  w,
		gallery: g,
		log:     log,
		cols:    int(math.Ceil(size.Width / CellWidth)),
		rows:    int(math.Ceil(size.Height / CellHeight)),
	}
	m.applyTheme(w.Theme())
	return m
}

func (m *Model) applyTheme(th *theme.ThemeData) {
	color := func(c graphics.Color) lipgloss.Color { return lipgloss.Color(c.Hex()) }
	m.palette = []lipgloss.Style{
		stylePlain:    lipgloss.NewStyle(),
		styleHeading:  lipgloss.NewStyle().Bold(true).Foreground(color(th.Heading.Foreground)),
		styleIdle:     lipgloss.NewStyle().Foreground(color(th.Button.Background)),
		styleHover:    lipgloss.NewStyle().Bold(true).Foreground(color(th.Button.Hover)),
		stylePressed:  lipgloss.NewStyle().Reverse(true).Foreground(color(th.Button.Pressed)),
		styleFocused:  lipgloss.NewStyle().Underline(true).Foreground(color(th.Button.Background)),
		styleDisabled: lipgloss.NewStyle().Faint(true),
	}
	m.panel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	m.title = lipgloss.NewStyle().Bold(true).Underline(true)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "tab":
		m.window.FocusNext()
	case "shift+tab":
		m.window.FocusPrevious()
	case " ":
		m.window.DispatchKey(gestures.KeyEvent{Code: gestures.KeySpace})
	case "enter":
		m.window.DispatchKey(gestures.KeyEvent{Code: gestures.KeyEnter})
	case "esc":
		m.window.DispatchKey(gestures.KeyEvent{Code: gestures.KeyEscape})
	case "up":
		m.window.FocusInDirection(focus.TraversalDirectionUp)
	case "down":
		m.window.FocusInDirection(focus.TraversalDirectionDown)
	case "left":
		m.window.FocusInDirection(focus.TraversalDirectionLeft)
	case "right":
		m.window.FocusInDirection(focus.TraversalDirectionRight)
	}
	return nil
}

// handleMouse maps a terminal cell to the center of the matching window
// area. Events outside the canvas leave the window.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.X >= m.cols || msg.Y >= m.rows {
		m.window.DispatchPointer(gestures.PointerEvent{
			Position: m.window.Pointer(),
			Phase:    gestures.PointerPhaseLeave,
			Buttons:  m.buttons,
		})
		return
	}
	pos := graphics.Offset{
		X: (float64(msg.X) + 0.5) * CellWidth,
		Y: (float64(msg.Y) + 0.5) * CellHeight,
	}
	var phase gestures.PointerPhase
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.buttons = gestures.ButtonPrimary
		phase = gestures.PointerPhaseDown
	case tea.MouseActionRelease:
		m.buttons = 0
		phase = gestures.PointerPhaseUp
	case tea.MouseActionMotion:
		phase = gestures.PointerPhaseMove
	default:
		return
	}
	m.window.DispatchPointer(gestures.PointerEvent{
		PointerID: 1,
		Position:  pos,
		Phase:     phase,
		Buttons:   m.buttons,
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	canvas := m.draw().render(m.palette)
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", m.sidebar()) +
		"\n" + m.palette[styleDisabled].Render("tab/shift+tab focus · arrows move focus · space/enter activate · q quit")
}

// Canvas returns the widget area without styling.
func (m *Model) Canvas() string {
	return m.draw().plain()
}

func (m *Model) draw() *buffer {
	buf := newBuffer(m.cols, m.rows)
	focused := m.window.Focused()
	for _, w := range m.window.Widgets() {
		m.drawWidget(buf, w, m.styleFor(w, focused))
	}
	return buf
}

func (m *Model) styleFor(w, focused widget.Widget) int {
	if _, ok := w.(*widgets.Heading); ok {
		return styleHeading
	}
	if !w.Enabled() {
		return styleDisabled
	}
	switch w.State().Kind() {
	case interaction.KindHover:
		return styleHover
	case interaction.KindPressed, interaction.KindHoverPressed, interaction.KindDrag:
		return stylePressed
	}
	if focused != nil && focused.ID() == w.ID() {
		return styleFocused
	}
	return styleIdle
}

// cells converts window bounds to a cell rectangle at least one cell big.
func cells(r graphics.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.Left / CellWidth))
	y0 = int(math.Floor(r.Top / CellHeight))
	x1 = max(x0+1, int(math.Ceil(r.Right/CellWidth)))
	y1 = max(y0+1, int(math.Ceil(r.Bottom/CellHeight)))
	return
}

func (m *Model) drawWidget(buf *buffer, w widget.Widget, style int) {
	x0, y0, x1, y1 := cells(w.Bounds())
	switch v := w.(type) {
	case *widgets.Heading:
		buf.text(x0, y0, v.Text(), style)
	case *widgets.Button:
		buf.fill(x0, y0, x1, y1, '░', style)
		label := v.Label()
		buf.text(x0+max(0, (x1-x0-len([]rune(label)))/2), (y0+y1-1)/2, label, style)
	case *widgets.Checkbox:
		mark := "[ ]"
		if v.Checked() {
			mark = "[x]"
		}
		buf.text(x0, y0, mark+" "+v.Label(), style)
	case *widgets.RadioButton:
		mark := "( )"
		if v.Checked() {
			mark = "(•)"
		}
		buf.text(x0, y0, mark+" "+v.Label(), style)
	case *widgets.ScrollBar:
		m.drawScrollBar(buf, v, x0, y0, x1, y1, style)
	case *widgets.ProgressBar:
		filled := int(math.Round(v.Value() / 100 * float64(x1-x0)))
		buf.fill(x0, y0, x0+filled, y0+1, '█', style)
		buf.fill(x0+filled, y0, x1, y0+1, '░', style)
		label := fmt.Sprintf("%d%%", int(math.Round(v.Value())))
		buf.text(x0+(x1-x0-len(label))/2, y0, label, style)
	case *widgets.ToggleSwitch:
		if v.IsOn() {
			buf.text(x0, y0, "(  ●) ON", style)
		} else {
			buf.text(x0, y0, "(●  ) OFF", style)
		}
	}
}

func (m *Model) drawScrollBar(buf *buffer, s *widgets.ScrollBar, x0, y0, x1, y1, style int) {
	buf.fill(x0, y0, x1, y0+1, '▲', style)
	buf.fill(x0, y0+1, x1, y1-1, '│', style)
	buf.fill(x0, y1-1, x1, y1, '▼', style)
	top := s.Bounds().Top + widgets.ScrollButtonSize + s.ThumbPosition()
	t0 := int(math.Floor(top / CellHeight))
	t1 := max(t0+1, int(math.Ceil((top+widgets.ScrollThumbHeight)/CellHeight)))
	buf.fill(x0, max(t0, y0+1), x1, min(t1, y1-1), '█', style)
}

func (m *Model) sidebar() string {
	var sb strings.Builder
	sb.WriteString(m.title.Render("Widgets"))
	sb.WriteByte('\n')
	focused := m.window.Focused()
	if m.gallery != nil {
		for _, name := range m.gallery.Names() {
			w, _ := m.gallery.Widget(name)
			marker := " "
			if focused != nil && focused.ID() == w.ID() {
				marker = "›"
			}
			line := fmt.Sprintf("%s %-10s %-12s", marker, name, w.State())
			sb.WriteString(m.palette[m.styleFor(w, focused)].Render(line))
			sb.WriteByte('\n')
		}
	}
	if m.log != nil {
		sb.WriteByte('\n')
		sb.WriteString(m.title.Render("Log"))
		for _, line := range m.log.Lines() {
			sb.WriteByte('\n')
			sb.WriteString(line)
		}
	}
	return m.panel.Render(sb.String())
}

// Run starts the terminal host and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
