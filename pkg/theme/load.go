package theme

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/vectorui/pkg/errors"
)

// Format is a theme file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("theme: unsupported file extension %q", filepath.Ext(path))
	}
}

// ErrIncompatibleVersion is returned for files written for another major
// version of the format.
var ErrIncompatibleVersion = stderrors.New("theme: incompatible format version")

// Load reads a YAML or TOML theme file. Fields the file leaves out keep
// their default values.
func Load(path string) (*ThemeData, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, themeError("theme.Load", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeError("theme.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, themeError("theme.Load", fmt.Errorf("%s: %w", path, err))
	}
	return t, nil
}

// Parse decodes a theme over the defaults and checks its version.
func Parse(data []byte, format Format) (*ThemeData, error) {
	t := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), t); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the version field and the numeric settings.
func (t *ThemeData) Validate() error {
	v := canonicalVersion(t.Version)
	if !semver.IsValid(v) {
		return fmt.Errorf("theme: invalid version %q", t.Version)
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return fmt.Errorf("%w: %s, want %s.x", ErrIncompatibleVersion, t.Version, semver.Major(FormatVersion))
	}
	if t.Font.Size <= 0 {
		return fmt.Errorf("theme: font size must be positive, got %g", t.Font.Size)
	}
	if t.Heading.FontSize <= 0 {
		return fmt.Errorf("theme: heading font size must be positive, got %g", t.Heading.FontSize)
	}
	return nil
}

// Encode writes t in the given format.
func (t *ThemeData) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(t); err != nil {
			return nil, err
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func themeError(op string, err error) error {
	return &errors.WidgetError{Op: op, Kind: errors.KindTheme, Err: err}
}
