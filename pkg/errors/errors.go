// Package errors provides structured error reporting for vectorui widgets.
//
// Programming errors made while constructing a widget are returned (or raised)
// as [*WidgetError]. Failures that must not interrupt event processing, such
// as a notification subscriber returning an error or a behaviour hook
// panicking, are sent to the process-wide [Handler] instead.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConstruction indicates a widget was assembled out of order.
	KindConstruction
	// KindSubscriber indicates a notification subscriber failed.
	KindSubscriber
	// KindSurface indicates the render surface rejected an operation.
	KindSurface
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindTheme indicates an unreadable or incompatible theme.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstruction:
		return "construction"
	case KindSubscriber:
		return "subscriber"
	case KindSurface:
		return "surface"
	case KindConfig:
		return "config"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WidgetError represents a structured error raised by a widget or its host.
type WidgetError struct {
	// Op is the operation that failed (e.g., "widget.SetState").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget identifies the widget involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "interaction.HandlePointer").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Handler receives errors reported by widgets and hosts.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *WidgetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
