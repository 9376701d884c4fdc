// Package config loads the vectorui CLI configuration.
//
// Values come from, in increasing priority: built-in defaults, an optional
// vectorui.yaml in the working directory (or the file named by --config or
// VECTORUI_CONFIG), and VECTORUI_* environment variables such as
// VECTORUI_WINDOW_WIDTH.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/go-drift/vectorui/pkg/errors"
	"github.com/go-drift/vectorui/pkg/theme"
)

// FileName is the config file looked up in the working directory.
const FileName = "vectorui"

// Config mirrors the keys accepted in vectorui.yaml.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Output OutputConfig `mapstructure:"output"`
	Trace  bool         `mapstructure:"trace"`
}

// WindowConfig is the logical size of the host window.
type WindowConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// ThemeConfig points at an optional theme file.
type ThemeConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig controls where rendered SVG goes. Empty means stdout.
type OutputConfig struct {
	SVG string `mapstructure:"svg"`
}

// Resolved is a loaded configuration with its theme applied.
type Resolved struct {
	Config
	// File is the config file that was read, empty if none.
	File  string
	Theme *theme.ThemeData
}

func defaults(v *viper.Viper) {
	v.SetDefault("window.width", 480)
	v.SetDefault("window.height", 800)
	v.SetDefault("theme.path", "")
	v.SetDefault("output.svg", "")
	v.SetDefault("trace", false)
}

// Load reads configuration from defaults, file and env. An explicit path
// that does not exist is an error; a missing vectorui.yaml is not.
func Load(path string) (*Config, string, error) {
	v := viper.New()
	defaults(v)
	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv("VECTORUI_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
	}

	v.SetEnvPrefix("VECTORUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, "", configError("config.Load", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", configError("config.Load", fmt.Errorf("unmarshal config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, v.ConfigFileUsed(), nil
}

// Validate rejects a window that cannot hold anything.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return configError("config.Validate",
			fmt.Errorf("window size must be positive, got %gx%g", c.Window.Width, c.Window.Height))
	}
	return nil
}

// Resolve loads the configuration and the theme it names. Without a theme
// path the default theme is used.
func Resolve(path string) (*Resolved, error) {
	cfg, file, err := Load(path)
	if err != nil {
		return nil, err
	}
	th := theme.Default()
	if p := strings.TrimSpace(cfg.Theme.Path); p != "" {
		th, err = theme.Load(p)
		if err != nil {
			return nil, err
		}
	}
	return &Resolved{Config: *cfg, File: file, Theme: th}, nil
}

func configError(op string, err error) error {
	return &errors.WidgetError{Op: op, Kind: errors.KindConfig, Err: err}
}
