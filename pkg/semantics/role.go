// Package semantics holds the accessibility role a widget announces.
//
// Only the role tag is modelled; there is no semantics tree.
package semantics

import "fmt"

// Role is the ARIA-style role of a widget. It is fixed at construction.
type Role int

const (
	// RoleNone indicates no particular role.
	RoleNone Role = iota
	// RoleButton is a pressable control.
	RoleButton
	// RoleCheckbox is a two-state check control.
	RoleCheckbox
	// RoleRadio is one member of a mutually exclusive group.
	RoleRadio
	// RoleScrollbar controls a scroll position.
	RoleScrollbar
	// RoleProgressbar reports completion.
	RoleProgressbar
	// RoleSwitch is an on/off control.
	RoleSwitch
	// RoleHeading is static title text.
	RoleHeading
)

var roleNames = [...]string{
	RoleNone:        "none",
	RoleButton:      "button",
	RoleCheckbox:    "checkbox",
	RoleRadio:       "radio",
	RoleScrollbar:   "scrollbar",
	RoleProgressbar: "progressbar",
	RoleSwitch:      "switch",
	RoleHeading:     "heading",
}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole maps a role name back to its Role.
func ParseRole(name string) (Role, error) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), nil
		}
	}
	return RoleNone, fmt.Errorf("semantics: unknown role %q", name)
}

// Activatable reports whether the role accepts keyboard activation.
func (r Role) Activatable() bool {
	switch r {
	case RoleButton, RoleCheckbox, RoleRadio, RoleSwitch:
		return true
	default:
		return false
	}
}
