package widgets_test

import (
	"strings"
	"testing"

	"github.com/go-drift/vectorui/pkg/semantics"
	vtest "github.com/go-drift/vectorui/pkg/testing"
	"github.com/go-drift/vectorui/pkg/widgets"
)

func TestProgressBarClampsValue(t *testing.T) {
	tester := vtest.NewWidgetTesterWithT(t)
	p := widgets.NewProgressBar(tester.Window())

	tests := []struct {
		set  float64
		want float64
	}{
		{50, 50},
		{150, 100},
		{-20, 0},
		{33.3, 33.3},
	}
	for _, tt := range tests {
		p.SetValue(tt.set)
		if p.Value() != tt.want {
			t.Errorf("SetValue(%g): Value = %g, want %g", tt.set, p.Value(), tt.want)
		}
	}
}

func TestProgressBarIncrement(t *testing.T) {
	tester := vtest.NewWidgetTesterWithT(t)
	p := widgets.NewProgressBar(tester.Window())
	var reported []float64
	p.OnProgress(func(v float64) { reported = append(reported, v) })

	p.SetValue(95)
	p.Increment()
	p.Increment()
	if p.Value() != 100 {
		t.Errorf("Value = %g, want 100", p.Value())
	}
	if len(reported) != 2 || reported[0] != 95 || reported[1] != 100 {
		t.Errorf("reported = %v, want [95 100]", reported)
	}

	p.SetIncrement(250)
	if p.IncrementSize() != 100 {
		t.Errorf("IncrementSize = %g, want 100", p.IncrementSize())
	}
	p.SetIncrement(-5)
	if p.IncrementSize() != 0 {
		t.Errorf("IncrementSize = %g, want 0", p.IncrementSize())
	}
	p.IncrementBy(-40)
	if p.Value() != 60 {
		t.Errorf("Value = %g, want 60", p.Value())
	}
}

func TestProgressBarLabel(t *testing.T) {
	tester := vtest.NewWidgetTesterWithT(t)
	p := widgets.NewProgressBar(tester.Window())
	p.SetValue(42)
	if svg := tester.Window().SVG(); !strings.Contains(svg, ">42%<") {
		t.Errorf("rendered surface does not show 42%%:\n%s", svg)
	}
}

func TestProgressBarReportsStates(t *testing.T) {
	tester := vtest.NewWidgetTesterWithT(t)
	p := widgets.NewProgressBar(tester.Window())
	var states []string
	p.OnStateChange(func(s string) { states = append(states, s) })

	if err := tester.Tap(vtest.ByID(p.ID())); err != nil {
		t.Fatal(err)
	}
	if err := tester.Leave(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		widgets.ProgressHover,
		widgets.ProgressPressed,
		widgets.ProgressReleased,
		widgets.ProgressIdle,
	}
	if strings.Join(states, ",") != strings.Join(want, ",") {
		t.Errorf("states = %v, want %v", states, want)
	}
	if p.Role() != semantics.RoleProgressbar {
		t.Errorf("Role = %v, want progressbar", p.Role())
	}
}
