// Package errors provides structured error handling for the accessibility bridge.
//
// Errors fall into four groups. Usage errors (disposed node, wrong thread,
// nil argument, reference-count misuse) are returned to the caller and
// reported to the global handler. Lookup misses and unsupported
// combinations are absorbed where they are detected. Listener failures
// surface as a false result at the native callback boundary.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUsage indicates a programmer error: disposed node, wrong thread,
	// nil argument or reference-count misuse.
	KindUsage
	// KindLookup indicates a handle, child id or index with no match.
	KindLookup
	// KindListener indicates a listener reported failure for a mutating call.
	KindListener
	// KindUnsupported indicates a role, state or attribute with no translation.
	KindUnsupported
	// KindPlatform indicates a failure in the toolkit or native runtime seam.
	KindPlatform
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindLookup:
		return "lookup"
	case KindListener:
		return "listener"
	case KindUnsupported:
		return "unsupported"
	case KindPlatform:
		return "platform"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by BridgeError.
var (
	// ErrDisposed is returned when operating on a disposed node.
	ErrDisposed = errors.New("node is disposed")

	// ErrInvalidThread is returned when a call does not originate on the UI thread.
	ErrInvalidThread = errors.New("invalid thread access")

	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("argument cannot be nil")

	// ErrStaleHandle is returned when a handle refers to a finalized proxy.
	ErrStaleHandle = errors.New("stale native handle")

	// ErrOverRelease is returned when a proxy is released more often than retained.
	ErrOverRelease = errors.New("proxy released more times than retained")

	// ErrInvalidHostClass is returned for empty or reserved host class names.
	ErrInvalidHostClass = errors.New("invalid host class name")
)

// BridgeError represents a structured error in the accessibility bridge.
type BridgeError struct {
	// Op is the operation that failed (e.g., "accessibility.Node.AddRelation").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Handle is the native handle involved, if any.
	Handle uint64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BridgeError) Error() string {
	if e.Handle != 0 {
		return fmt.Sprintf("%s [%s] handle=%#x: %v", e.Op, e.Kind, e.Handle, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

// Usage builds a usage error for op wrapping err, with a captured stack.
func Usage(op string, err error) *BridgeError {
	return &BridgeError{
		Op:         op,
		Kind:       KindUsage,
		Err:        err,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	var be *BridgeError
	return errors.As(err, &be) && be.Kind == KindUsage
}

// Is, As and New forward to the standard library so callers can import a
// single errors package.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "accessibility.Bridge.Name").
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

// ErrorHandler receives errors reported by the bridge.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BridgeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
