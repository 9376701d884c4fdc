package theme

import "github.com/go-drift/vectorui/pkg/graphics"

// ButtonThemeData defines styling for Button widgets, one colour per
// interaction state.
type ButtonThemeData struct {
	// Background is the fill while idle.
	Background graphics.Color `yaml:"background" toml:"background"`
	// Hover is the fill while the pointer is over the button.
	Hover graphics.Color `yaml:"hover" toml:"hover"`
	// Pressed is the fill while pressed and after a click.
	Pressed graphics.Color `yaml:"pressed" toml:"pressed"`
	// PressedOut is the fill while pressed with the pointer outside.
	PressedOut graphics.Color `yaml:"pressed_out" toml:"pressed_out"`
	// Border is the outline colour while idle or hovered.
	Border graphics.Color `yaml:"border" toml:"border"`
	// PressedBorder is the outline colour while pressed.
	PressedBorder graphics.Color `yaml:"pressed_border" toml:"pressed_border"`
	// Foreground is the label colour.
	Foreground graphics.Color `yaml:"foreground" toml:"foreground"`
	// Disabled is the fill while disabled.
	Disabled graphics.Color `yaml:"disabled" toml:"disabled"`
	// BorderRadius is the corner radius.
	BorderRadius float64 `yaml:"border_radius" toml:"border_radius"`
	// Label is the text shown while idle.
	Label string `yaml:"label" toml:"label"`
	// PressedLabel is the text shown while pressed and after a click.
	PressedLabel string `yaml:"pressed_label" toml:"pressed_label"`
}

// CheckboxThemeData defines styling for Checkbox widgets.
type CheckboxThemeData struct {
	Background graphics.Color `yaml:"background" toml:"background"`
	Hover      graphics.Color `yaml:"hover" toml:"hover"`
	Pressed    graphics.Color `yaml:"pressed" toml:"pressed"`
	// Border is the box outline while idle.
	Border graphics.Color `yaml:"border" toml:"border"`
	// ActiveBorder is the box outline while hovered or pressed.
	ActiveBorder graphics.Color `yaml:"active_border" toml:"active_border"`
	// Check is the checkmark colour.
	Check      graphics.Color `yaml:"check" toml:"check"`
	Foreground graphics.Color `yaml:"foreground" toml:"foreground"`
	// Disabled is the box fill while disabled.
	Disabled     graphics.Color `yaml:"disabled" toml:"disabled"`
	BorderRadius float64        `yaml:"border_radius" toml:"border_radius"`
}

// RadioThemeData defines styling for RadioButton widgets.
type RadioThemeData struct {
	Background graphics.Color `yaml:"background" toml:"background"`
	Hover      graphics.Color `yaml:"hover" toml:"hover"`
	IdleDown   graphics.Color `yaml:"idle_down" toml:"idle_down"`
	Pressed    graphics.Color `yaml:"pressed" toml:"pressed"`
	Border     graphics.Color `yaml:"border" toml:"border"`
	// PressedBorder is the ring colour while pressed or pressed out.
	PressedBorder graphics.Color `yaml:"pressed_border" toml:"pressed_border"`
	// HoverPressedBorder is the ring colour after re-entering while pressed.
	HoverPressedBorder graphics.Color `yaml:"hover_pressed_border" toml:"hover_pressed_border"`
	// Dot is the selection dot colour.
	Dot        graphics.Color `yaml:"dot" toml:"dot"`
	Foreground graphics.Color `yaml:"foreground" toml:"foreground"`
	// Disabled is the circle fill while disabled.
	Disabled graphics.Color `yaml:"disabled" toml:"disabled"`
}

// ScrollBarThemeData defines styling for ScrollBar widgets.
type ScrollBarThemeData struct {
	Track  graphics.Color `yaml:"track" toml:"track"`
	Thumb  graphics.Color `yaml:"thumb" toml:"thumb"`
	Button graphics.Color `yaml:"button" toml:"button"`
	Border graphics.Color `yaml:"border" toml:"border"`
	Arrow  graphics.Color `yaml:"arrow" toml:"arrow"`
}

// ProgressThemeData defines styling for ProgressBar widgets.
type ProgressThemeData struct {
	Track        graphics.Color `yaml:"track" toml:"track"`
	Fill         graphics.Color `yaml:"fill" toml:"fill"`
	Border       graphics.Color `yaml:"border" toml:"border"`
	Foreground   graphics.Color `yaml:"foreground" toml:"foreground"`
	Disabled     graphics.Color `yaml:"disabled" toml:"disabled"`
	BorderRadius float64        `yaml:"border_radius" toml:"border_radius"`
}

// SwitchThemeData defines styling for ToggleSwitch widgets.
type SwitchThemeData struct {
	// InactiveTrack is the track colour when off.
	InactiveTrack graphics.Color `yaml:"inactive_track" toml:"inactive_track"`
	// ActiveTrack is the track colour when on.
	ActiveTrack graphics.Color `yaml:"active_track" toml:"active_track"`
	// InactiveHover is the track colour when off and hovered.
	InactiveHover graphics.Color `yaml:"inactive_hover" toml:"inactive_hover"`
	// ActiveHover is the track colour when on and hovered.
	ActiveHover graphics.Color `yaml:"active_hover" toml:"active_hover"`
	Thumb       graphics.Color `yaml:"thumb" toml:"thumb"`
	ThumbBorder graphics.Color `yaml:"thumb_border" toml:"thumb_border"`
	// Disabled is the track colour while disabled, whatever the position.
	Disabled graphics.Color `yaml:"disabled" toml:"disabled"`
}

// HeadingThemeData defines styling for Heading widgets.
type HeadingThemeData struct {
	Foreground graphics.Color `yaml:"foreground" toml:"foreground"`
	FontSize   float64        `yaml:"font_size" toml:"font_size"`
}
