package testing

import (
	"fmt"

	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/widget"
)

// Finder locates widgets in a window.
type Finder interface {
	// Evaluate returns the matching widgets in creation order.
	Evaluate(widgets []widget.Widget) []widget.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []widget.Widget
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widget.Widget {
	if len(r.widgets) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("FinderResult.First: no widgets found for %s", desc))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match or nil.
func (r FinderResult) FirstOrNil() widget.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widget.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("FinderResult.At: index %d out of range [0, %d)", index, len(r.widgets)))
	}
	return r.widgets[index]
}

// All returns every match.
func (r FinderResult) All() []widget.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

type predicateFinder struct {
	fn   func(widget.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(widgets []widget.Widget) []widget.Widget {
	var out []widget.Widget
	for _, w := range widgets {
		if f.fn(w) {
			out = append(out, w)
		}
	}
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByType finds widgets of concrete type T, e.g. ByType[*widgets.Button]().
func ByType[T widget.Widget]() Finder {
	var zero T
	return &predicateFinder{
		fn: func(w widget.Widget) bool {
			_, ok := w.(T)
			return ok
		},
		desc: fmt.Sprintf("ByType[%T]", zero),
	}
}

// ByID finds the widget with the given id.
func ByID(id string) Finder {
	return &predicateFinder{
		fn:   func(w widget.Widget) bool { return w.ID() == id },
		desc: fmt.Sprintf("ByID(%q)", id),
	}
}

// ByRole finds widgets announcing role.
func ByRole(role semantics.Role) Finder {
	return &predicateFinder{
		fn:   func(w widget.Widget) bool { return w.Role() == role },
		desc: fmt.Sprintf("ByRole(%s)", role),
	}
}

// ByState finds widgets whose interaction state has the given kind.
func ByState(kind interaction.Kind) Finder {
	return &predicateFinder{
		fn: func(w widget.Widget) bool {
			s := w.State()
			return s != nil && s.Kind() == kind
		},
		desc: fmt.Sprintf("ByState(%s)", kind),
	}
}

// ByPredicate finds widgets for which fn returns true.
func ByPredicate(fn func(widget.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate"}
}

// ByText finds widgets whose visible label equals text. Widgets with a
// Label method are matched on it, otherwise on Text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(w widget.Widget) bool {
			switch v := w.(type) {
			case interface{ Label() string }:
				return v.Label() == text
			case interface{ Text() string }:
				return v.Text() == text
			}
			return false
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}
