package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerBox lets an atomic.Pointer hold an interface value.
type handlerBox struct{ h Handler }

var current atomic.Pointer[handlerBox]

func init() {
	current.Store(&handlerBox{h: &LogHandler{}})
}

// CurrentHandler returns the process-wide handler reports are sent to.
func CurrentHandler() Handler {
	return current.Load().h
}

// SetHandler installs h as the process-wide handler and returns the one it
// replaces. A nil h installs a non-verbose LogHandler.
func SetHandler(h Handler) Handler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&handlerBox{h: h}).h
}

// Report stamps err with the current time if it has none and hands it to
// the current handler.
func Report(err *WidgetError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	CurrentHandler().HandleError(err)
}

// ReportPanic is Report for recovered panics.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	CurrentHandler().HandlePanic(err)
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Recovered wraps a value returned by recover, capturing the stack of the
// panicking goroutine.
func Recovered(op string, r any) *PanicError {
	return &PanicError{Op: op, Value: r, StackTrace: stack(3), Timestamp: time.Now()}
}

// Recover reports a panic in progress. Use it directly in a defer:
//
//	defer errors.Recover("widget.Update")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(Recovered(op, r))
	}
}

// RecoverWithCallback is Recover that also hands the panic value to
// callback, so the caller can tell that its deferred work was cut short.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		ReportPanic(Recovered(op, r))
		if callback != nil {
			callback(r)
		}
	}
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame.
func CaptureStack() string {
	return stack(3)
}

// stack formats the stack above skip frames; skip counts as for
// runtime.Callers.
func stack(skip int) string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(skip, pcs)]
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		if f.Function != "" {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
