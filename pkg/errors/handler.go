package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot boxes the installed handler so the interface value can be
// swapped atomically.
type handlerSlot struct {
	h ErrorHandler
}

var current atomic.Pointer[handlerSlot]

func init() {
	current.Store(&handlerSlot{h: &LogHandler{}})
}

// SetHandler installs the process-wide error handler. Nil reinstalls a
// fresh LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerSlot{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report stamps err if needed and hands it to the installed handler.
func Report(err *BridgeError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// recovered reports a panic value caught in op. Stack capture skips the
// deferred recover frames.
func recovered(op string, value any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      value,
		StackTrace: captureStack(4),
		Timestamp:  time.Now(),
	})
}

// Recover reports a panic in op and swallows it.
//
//	defer errors.Recover("accessibility.Bridge.Name")
func Recover(op string) {
	if r := recover(); r != nil {
		recovered(op, r)
	}
}

// RecoverWithCallback reports a panic in op, swallows it, then passes the
// panic value to onPanic. Dispatch uses it to fall back to the inherited
// result.
func RecoverWithCallback(op string, onPanic func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	recovered(op, r)
	if onPanic != nil {
		onPanic(r)
	}
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(skip, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for frame, more := frames.Next(); ; frame, more = frames.Next() {
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
