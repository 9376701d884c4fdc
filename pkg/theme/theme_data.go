// Package theme holds the colours and text defaults widgets paint with.
//
// A [ThemeData] is a plain value. [Default] returns the built-in look; [Load]
// and [Parse] read YAML or TOML files that override any subset of it.
package theme

import "github.com/go-drift/vectorui/pkg/graphics"

// FormatVersion is the theme file format this package writes and reads.
// Files whose major version differs are rejected.
const FormatVersion = "v1.0.0"

// FontData is the default text setting.
type FontData struct {
	Family string  `yaml:"family" toml:"family"`
	Size   float64 `yaml:"size" toml:"size"`
}

// ThemeData contains all theme configuration for a window.
type ThemeData struct {
	// Version is the file format version ("1.0.0" or "v1.0.0").
	Version string `yaml:"version" toml:"version"`
	// Name labels the theme in diagnostics.
	Name string `yaml:"name" toml:"name"`
	// Background is the window fill.
	Background graphics.Color `yaml:"background" toml:"background"`
	Font       FontData       `yaml:"font" toml:"font"`

	Button    ButtonThemeData    `yaml:"button" toml:"button"`
	Checkbox  CheckboxThemeData  `yaml:"checkbox" toml:"checkbox"`
	Radio     RadioThemeData     `yaml:"radio" toml:"radio"`
	ScrollBar ScrollBarThemeData `yaml:"scrollbar" toml:"scrollbar"`
	Progress  ProgressThemeData  `yaml:"progress" toml:"progress"`
	Switch    SwitchThemeData    `yaml:"switch" toml:"switch"`
	Heading   HeadingThemeData   `yaml:"heading" toml:"heading"`
}

var (
	green       = graphics.MustParseHex("#4CAF50")
	darkGreen   = graphics.MustParseHex("#45a049")
	darkerGreen = graphics.MustParseHex("#388e3c")
	grey        = graphics.MustParseHex("#8a8a8a")
	lightGrey   = graphics.MustParseHex("#f0f0f0")
	white       = graphics.ColorWhite
	black       = graphics.ColorBlack
)

// Default returns the built-in theme.
func Default() *ThemeData {
	return &ThemeData{
		Version:    FormatVersion,
		Name:       "default",
		Background: white,
		Font:       FontData{Family: "Arial, Helvetica, sans-serif", Size: 14},
		Button: ButtonThemeData{
			Background:    white,
			Hover:         graphics.MustParseHex("#c1c2c2"),
			Pressed:       green,
			PressedOut:    graphics.MustParseHex("#ea4100"),
			Border:        grey,
			PressedBorder: darkGreen,
			Foreground:    black,
			Disabled:      graphics.MustParseHex("#e0e0e0"),
			BorderRadius:  10,
			Label:         "Click me!",
			PressedLabel:  "Clicked!",
		},
		Checkbox: CheckboxThemeData{
			Background:   white,
			Hover:        graphics.MustParseHex("#f5f5f5"),
			Pressed:      graphics.MustParseHex("#e0e0e0"),
			Border:       grey,
			ActiveBorder: green,
			Check:        green,
			Foreground:   black,
			Disabled:     graphics.MustParseHex("#eeeeee"),
			BorderRadius: 3,
		},
		Radio: RadioThemeData{
			Background:         white,
			Hover:              graphics.MustParseHex("#fafafa"),
			IdleDown:           lightGrey,
			Pressed:            green,
			Border:             grey,
			PressedBorder:      darkGreen,
			HoverPressedBorder: darkerGreen,
			Dot:                green,
			Foreground:         black,
			Disabled:           graphics.MustParseHex("#eeeeee"),
		},
		ScrollBar: ScrollBarThemeData{
			Track:  lightGrey,
			Thumb:  graphics.MustParseHex("#c0c0c0"),
			Button: white,
			Border: grey,
			Arrow:  grey,
		},
		Progress: ProgressThemeData{
			Track:        lightGrey,
			Fill:         green,
			Border:       grey,
			Foreground:   black,
			Disabled:     graphics.MustParseHex("#bdbdbd"),
			BorderRadius: 3,
		},
		Switch: SwitchThemeData{
			InactiveTrack: graphics.MustParseHex("#ccc"),
			ActiveTrack:   green,
			InactiveHover: graphics.MustParseHex("#bbb"),
			ActiveHover:   darkGreen,
			Thumb:         graphics.MustParseHex("#fff"),
			ThumbBorder:   graphics.MustParseHex("#bbb"),
			Disabled:      graphics.MustParseHex("#e0e0e0"),
		},
		Heading: HeadingThemeData{
			Foreground: black,
			FontSize:   16,
		},
	}
}

// Provider is implemented by containers that carry a theme.
type Provider interface {
	Theme() *ThemeData
}

// Of returns the theme of v if it is a Provider with a non-nil theme, and
// the default theme otherwise.
func Of(v any) *ThemeData {
	if p, ok := v.(Provider); ok {
		if t := p.Theme(); t != nil {
			return t
		}
	}
	return Default()
}
