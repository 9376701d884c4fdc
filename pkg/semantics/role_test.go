package semantics

import "testing"

func TestRoleRoundTrip(t *testing.T) {
	for r := RoleNone; r <= RoleHeading; r++ {
		got, err := ParseRole(r.String())
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", r.String(), err)
		}
		if got != r {
			t.Errorf("ParseRole(%q) = %v, want %v", r.String(), got, r)
		}
	}
}

func TestParseRoleUnknown(t *testing.T) {
	if _, err := ParseRole("slider"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestRoleActivatable(t *testing.T) {
	if !RoleSwitch.Activatable() {
		t.Error("switch should be activatable")
	}
	if RoleScrollbar.Activatable() || RoleHeading.Activatable() {
		t.Error("scrollbar and heading should not be activatable")
	}
	if got := Role(42).String(); got != "Role(42)" {
		t.Errorf("Role(42).String() = %q", got)
	}
}
