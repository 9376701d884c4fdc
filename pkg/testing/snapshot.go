package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/vectorui/pkg/widget"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "VECTORUI_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures every widget in a window.
type Snapshot struct {
	Widgets []*WidgetNode `json:"widgets"`
	// SVG is the rendered surface, only present when requested.
	SVG string `json:"svg,omitempty"`
}

// WidgetNode is one widget in a snapshot. IDs are stable across runs: the
// type name plus its index among widgets of that type, e.g. "Button#0".
type WidgetNode struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"`
	State     string     `json:"state"`
	Bounds    [4]float64 `json:"bounds"`
	Enabled   bool       `json:"enabled"`
	Focused   bool       `json:"focused,omitempty"`
	Draggable bool       `json:"draggable,omitempty"`
}

// CaptureSnapshot records the role, state and bounds of every widget in
// creation order.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	counter := &typeCounter{}
	focused := t.window.Focused()
	snap := &Snapshot{}
	for _, w := range t.window.Widgets() {
		b := w.Bounds()
		node := &WidgetNode{
			ID:        counter.next(typeName(w)),
			Role:      w.Role().String(),
			Bounds:    [4]float64{b.Left, b.Top, b.Width(), b.Height()},
			Enabled:   w.Enabled(),
			Focused:   focused != nil && focused.ID() == w.ID(),
			Draggable: w.Draggable(),
		}
		if s := w.State(); s != nil {
			node.State = s.Kind().String()
		}
		snap.Widgets = append(snap.Widgets, node)
	}
	return snap
}

// CaptureSnapshotWithSVG is CaptureSnapshot plus the rendered surface.
func (t *WidgetTester) CaptureSnapshotWithSVG() *Snapshot {
	snap := t.CaptureSnapshot()
	snap.SVG = t.window.SVG()
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// VECTORUI_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// typeCounter assigns stable IDs like "Button#0", "Button#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(name string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[name]
	c.counts[name] = n + 1
	return fmt.Sprintf("%s#%d", name, n)
}

// typeName strips the pointer and package from a widget's dynamic type.
func typeName(w widget.Widget) string {
	name := fmt.Sprintf("%T", w)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
