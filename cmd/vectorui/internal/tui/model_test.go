package tui

import (
	"fmt"
	"log"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/vectorui/cmd/vectorui/internal/gallery"
	"github.com/go-drift/vectorui/pkg/host"
	"github.com/go-drift/vectorui/pkg/interaction"
)

func newModel(t *testing.T) (*Model, *gallery.Gallery, *Log) {
	t.Helper()
	lines := NewLog(5)
	w := host.New(480, 800)
	g := gallery.Build(w, log.New(lines, "", 0))
	return New(w, g, lines), g, lines
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestMouseClickTogglesCheckbox(t *testing.T) {
	m, g, lines := newModel(t)

	m.Update(mouse(2, 9, tea.MouseActionMotion, tea.MouseButtonNone))
	if g.Checkbox.State().Kind() != interaction.KindHover {
		t.Fatalf("after motion: %v, want Hover", g.Checkbox.State())
	}
	m.Update(mouse(2, 9, tea.MouseActionPress, tea.MouseButtonLeft))
	m.Update(mouse(2, 9, tea.MouseActionRelease, tea.MouseButtonNone))
	if !g.Checkbox.Checked() {
		t.Error("click did not check the box")
	}
	if !strings.Contains(m.Canvas(), "[x] Checkbox") {
		t.Errorf("canvas does not show the checked box:\n%s", m.Canvas())
	}
	if got := lines.Lines(); len(got) == 0 || got[len(got)-1] != "Checkbox is now: true" {
		t.Errorf("log = %v", got)
	}
}

func TestRightClickIgnored(t *testing.T) {
	m, g, _ := newModel(t)
	m.Update(mouse(2, 9, tea.MouseActionPress, tea.MouseButtonRight))
	m.Update(mouse(2, 9, tea.MouseActionRelease, tea.MouseButtonNone))
	if g.Checkbox.Checked() {
		t.Error("right click checked the box")
	}
}

func TestKeyboardFocusAndActivate(t *testing.T) {
	m, g, lines := newModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := lines.Lines(); len(got) == 0 || got[len(got)-1] != "Button clicked" {
		t.Errorf("log = %v, want the button click", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !g.Checkbox.Checked() {
		t.Error("Enter did not toggle the focused checkbox")
	}
	if m.window.Focused() != g.Checkbox {
		t.Errorf("Focused = %v, want the checkbox", m.window.Focused())
	}
	if !strings.Contains(m.View(), "Widgets") {
		t.Errorf("view has no widget panel:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newModel(t)
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command does not quit", msg)
		}
	}
}

func TestCanvasShowsGallery(t *testing.T) {
	m, g, _ := newModel(t)
	g.ProgressBar.SetValue(50)
	g.Switch.SetOn(true)
	canvas := m.Canvas()
	for _, want := range []string{"Button Demo", "Click me!", "( ) Option 1", "▲", "50%", "(  ●) ON"} {
		if !strings.Contains(canvas, want) {
			t.Errorf("canvas missing %q", want)
		}
	}
	if rows := strings.Count(canvas, "\n") + 1; rows != 50 {
		t.Errorf("canvas has %d rows, want 50", rows)
	}
}

func TestLogKeepsLastLines(t *testing.T) {
	l := NewLog(2)
	for i := 0; i < 4; i++ {
		fmt.Fprintf(l, "line %d\n", i)
	}
	fmt.Fprint(l, "partial")
	got := l.Lines()
	if strings.Join(got, "|") != "line 2|line 3" {
		t.Errorf("Lines = %v", got)
	}
}
