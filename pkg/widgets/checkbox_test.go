package widgets_test

import (
	"testing"

	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/semantics"
	vtest "github.com/go-drift/vectorui/pkg/testing"
	"github.com/go-drift/vectorui/pkg/widgets"
)

func TestCheckboxTapToggles(t *testing.T) {
	tester := vtest.NewWidgetTesterWithT(t)
	c := widgets.NewCheckbox(tester.Window())
	var changes []bool
	c.OnChange(func(checked bool) { changes = append(changes, checked) })

	for i := 0; i < 2; i++ {
		if err := tester.Tap(vtest.ByID(c.ID())); err != nil {
			t.Fatal(err)
		}
	}
	if c.Checked() {
		t.Error("two taps should leave the checkbox unchecked")
	}
	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Errorf("changes = %v, want [true false]", changes)
	}
}

func TestCheckboxLabelIsClickable(t *testing.T) {
	tester := vtest.NewWidgetTesterWithT(t)
	c := widgets.NewCheckbox(tester.Window())
	c.SetLabel("Remember me")
	if err := tester.TapAt(graphics.Offset{X: widgets.CheckSize + 20, Y: widgets.CheckSize / 2}); err != nil {
		t.Fatal(err)
	}
	if !c.Checked() {
		t.Error("tapping the label did not toggle the checkbox")
	}
	if c.Label() != "Remember me" {
		t.Errorf("Label = %q", c.Label())
	}
}

func TestCheckboxSetCheckedNotifiesOnChange(t *testing.T) {
	tester := vtest.NewWidgetTesterWithT(t)
	c := widgets.NewCheckbox(tester.Window())
	calls := 0
	c.OnChange(func(bool) { calls++ })

	c.SetChecked(true)
	c.SetChecked(true)
	c.SetChecked(false)
	if calls != 2 {
		t.Errorf("OnChange called %d times, want 2", calls)
	}
}

func TestCheckboxRole(t *testing.T) {
	tester := vtest.NewWidgetTesterWithT(t)
	c := widgets.NewCheckbox(tester.Window())
	if c.Role() != semantics.RoleCheckbox {
		t.Errorf("Role = %v, want checkbox", c.Role())
	}
	if c.Width() != widgets.CheckSize || c.Height() != widgets.CheckSize {
		t.Errorf("size = %gx%g, want %dx%d", c.Width(), c.Height(), widgets.CheckSize, widgets.CheckSize)
	}
}
