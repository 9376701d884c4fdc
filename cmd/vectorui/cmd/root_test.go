package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(&Env{Stdout: &stdout, Stderr: &stderr}, args)
	return stdout.String(), stderr.String(), err
}

// isolate runs the test in an empty directory so no vectorui.yaml is found.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("VECTORUI_CONFIG", "")
	return dir
}

func TestHelpAndVersion(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "Commands:"},
		{[]string{"--help"}, "replay"},
		{[]string{"version"}, "vectorui version " + Version},
		{[]string{"render", "--help"}, "vectorui render [-o FILE]"},
	}
	for _, tt := range tests {
		out, _, err := run(t, tt.args...)
		if err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("%v: output missing %q:\n%s", tt.args, tt.want, out)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	_, stderr, err := run(t, "paint")
	if err == nil || !strings.Contains(err.Error(), "unknown command: paint") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr should carry the usage, got %q", stderr)
	}
}

func TestGlobalFlags(t *testing.T) {
	if _, _, err := run(t, "--config"); err == nil {
		t.Error("--config without a value should fail")
	}
	isolate(t)
	_, _, err := run(t, "--config=missing.yaml", "render")
	if err == nil || !strings.Contains(err.Error(), "config.Load") {
		t.Errorf("err = %v, want a config load failure", err)
	}
}

func TestRenderStdout(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "render")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<svg", "Click me!", ">0%<"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderFileFromConfig(t *testing.T) {
	dir := isolate(t)
	cfg := "window:\n  width: 300\n  height: 900\noutput:\n  svg: gallery.svg\n"
	if err := os.WriteFile(filepath.Join(dir, "vectorui.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "render")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "gallery.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `width="300"`) {
		t.Errorf("svg does not use the configured width:\n%.200s", data)
	}

	if _, _, err := run(t, "render", "-o", "other.svg"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "other.svg")); err != nil {
		t.Errorf("-o was not honoured: %v", err)
	}
	if _, _, err := run(t, "render", "-o"); err == nil {
		t.Error("-o without a value should fail")
	}
}

func TestReplay(t *testing.T) {
	script, err := filepath.Abs(filepath.Join("testdata", "demo.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	dir := isolate(t)
	out, _, err := run(t, "replay", script, "-o", "after.svg")
	if err != nil {
		t.Fatalf("replay: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Replaying gallery tour",
		"> tap checkbox",
		"Checkbox is now: true",
		"Radio button 2 selected",
		"Progress: 20%",
		"Button clicked",
		"10 steps passed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "after.svg")); err != nil {
		t.Errorf("final svg not written: %v", err)
	}
}

func TestReplayTrace(t *testing.T) {
	script, err := filepath.Abs(filepath.Join("testdata", "demo.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	isolate(t)
	out, _, err := run(t, "--trace", "replay", script)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "IdleUp -> Hover on pointer-enter") {
		t.Errorf("trace output missing a transition:\n%s", out)
	}
}

func TestReplayNeedsScript(t *testing.T) {
	if _, _, err := run(t, "replay"); err == nil || !strings.Contains(err.Error(), "script file is required") {
		t.Errorf("err = %v", err)
	}
}

func TestThemeCommand(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "theme", "dump", "toml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "version") {
		t.Errorf("toml dump missing version:\n%s", out)
	}
	path := filepath.Join(dir, "default.toml")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err = run(t, "theme", "validate", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, ": ok") {
		t.Errorf("validate output = %q", out)
	}

	for _, args := range [][]string{
		{"theme"},
		{"theme", "dump", "json"},
		{"theme", "lint"},
		{"theme", "validate"},
	} {
		if _, _, err := run(t, args...); err == nil {
			t.Errorf("%v should fail", args)
		}
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
