package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a WidgetError.
func (h *LogHandler) HandleError(err *WidgetError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[vectorui error] %s [%s]", err.Op, err.Kind)
		if err.Widget != "" {
			fmt.Fprintf(w, " widget=%s", err.Widget)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[vectorui error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[vectorui panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[vectorui panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// Recorder is a Handler that keeps every report in memory. Hosts use it to
// surface subscriber failures after a dispatch, and tests use it to assert on them.
type Recorder struct {
	Errors []*WidgetError
	Panics []*PanicError
}

// HandleError records err.
func (r *Recorder) HandleError(err *WidgetError) {
	r.Errors = append(r.Errors, err)
}

// HandlePanic records err.
func (r *Recorder) HandlePanic(err *PanicError) {
	r.Panics = append(r.Panics, err)
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.Errors = nil
	r.Panics = nil
}
