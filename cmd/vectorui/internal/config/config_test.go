package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/vectorui/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VECTORUI_CONFIG", "")
	cfg, file, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if file != "" {
		t.Errorf("file = %q, want none", file)
	}
	if cfg.Window.Width != 480 || cfg.Window.Height != 800 {
		t.Errorf("window = %gx%g, want 480x800", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Trace || cfg.Theme.Path != "" || cfg.Output.SVG != "" {
		t.Errorf("unexpected non-default values: %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, "vectorui.yaml", `
window:
  width: 300
  height: 500
output:
  svg: out.svg
trace: true
`)
	t.Setenv("VECTORUI_CONFIG", "")
	t.Setenv("VECTORUI_WINDOW_HEIGHT", "640")

	cfg, file, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(file) != "vectorui.yaml" {
		t.Errorf("file = %q, want vectorui.yaml", file)
	}
	if cfg.Window.Width != 300 {
		t.Errorf("width = %g, want 300 from the file", cfg.Window.Width)
	}
	if cfg.Window.Height != 640 {
		t.Errorf("height = %g, want 640 from the environment", cfg.Window.Height)
	}
	if !cfg.Trace || cfg.Output.SVG != "out.svg" {
		t.Errorf("trace/svg = %t/%q", cfg.Trace, cfg.Output.SVG)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var werr *errors.WidgetError
	if !stderrors.As(err, &werr) || werr.Kind != errors.KindConfig {
		t.Fatalf("err = %v, want a config error", err)
	}
}

func TestLoadRejectsEmptyWindow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "small.yaml", "window:\n  width: 0\n")
	if _, _, err := Load(path); err == nil {
		t.Fatal("expected an error for a zero-width window")
	}
}

func TestResolveTheme(t *testing.T) {
	dir := t.TempDir()
	themePath := writeFile(t, dir, "theme.toml", `
version = "v1.2.0"

[button]
label = "Press"
`)
	path := writeFile(t, dir, "cfg.yaml", "theme:\n  path: "+themePath+"\n")

	r, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Theme.Button.Label != "Press" {
		t.Errorf("button label = %q, want %q", r.Theme.Button.Label, "Press")
	}
	if r.File != path {
		t.Errorf("File = %q, want %q", r.File, path)
	}
}

func TestResolveDefaultTheme(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VECTORUI_CONFIG", "")
	r, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if r.Theme.Button.Label != "Click me!" {
		t.Errorf("button label = %q, want the default", r.Theme.Button.Label)
	}
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
