package script

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-drift/vectorui/pkg/host"
	"github.com/go-drift/vectorui/pkg/widget"
	"github.com/go-drift/vectorui/pkg/widgets"
)

type names map[string]widget.Widget

func (n names) Widget(name string) (widget.Widget, bool) {
	w, ok := n[name]
	return w, ok
}

func TestParseValidates(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown action", "steps:\n  - action: jump\n", `unknown action "jump"`},
		{"pointer without place", "steps:\n  - action: down\n", "needs a target or x and y"},
		{"half a coordinate", "steps:\n  - action: move\n    x: 3\n", "needs a target or x and y"},
		{"key without code", "steps:\n  - action: key\n", "needs a key code"},
		{"expect without state", "steps:\n  - action: expect\n    target: b\n", "needs a target and a state"},
		{"unknown field", "steps:\n  - action: tab\n    colour: red\n", "colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

const clickScript = `
name: click and check
steps:
  - action: move
    target: button
  - action: expect
    target: button
    state: Hover
  - action: down
    target: button
  - action: expect
    target: button
    state: Pressed
  - action: move
    x: 300
    y: 300
  - action: expect
    target: button
    state: PressedOut
  - action: move
    target: button
  - action: up
    target: button
  - action: expect
    target: button
    state: Hover
  - action: leave
  - action: tab
  - action: key
    key: Space
  - action: tap
    target: box
`

func TestPlayerRun(t *testing.T) {
	s, err := Parse([]byte(clickScript))
	if err != nil {
		t.Fatal(err)
	}
	w := host.New(400, 400)
	b := widgets.NewButton(w)
	c := widgets.NewCheckbox(w)
	c.Move(0, 100)
	clicks := 0
	b.OnClick(func() { clicks++ })

	var out bytes.Buffer
	if err := NewPlayer(w, names{"button": b, "box": c}, &out).Run(s); err != nil {
		t.Fatal(err)
	}
	if clicks != 2 {
		t.Errorf("clicks = %d, want 2 (one release, one Space)", clicks)
	}
	if !c.Checked() {
		t.Error("tap did not check the box")
	}
	if !strings.Contains(out.String(), "> expect button == PressedOut") {
		t.Errorf("output missing step description:\n%s", out.String())
	}
}

func TestPlayerExpectationFailure(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - action: expect\n    target: b\n    state: Hover\n"))
	if err != nil {
		t.Fatal(err)
	}
	w := host.New(200, 200)
	b := widgets.NewButton(w)
	err = NewPlayer(w, names{"b": b}, nil).Run(s)
	if !stderrors.Is(err, ErrExpectation) {
		t.Fatalf("err = %v, want ErrExpectation", err)
	}
	if !strings.Contains(err.Error(), "step 1 (expect)") || !strings.Contains(err.Error(), "is IdleUp, want Hover") {
		t.Errorf("err = %v", err)
	}
}

func TestPlayerUnknownTarget(t *testing.T) {
	w := host.New(200, 200)
	err := NewPlayer(w, names{}, nil).Step(Step{Action: ActionTap, Target: "ghost"})
	if err == nil || !strings.Contains(err.Error(), `no widget named "ghost"`) {
		t.Errorf("err = %v", err)
	}
}
