package errors

import (
	"sync"

	"go.uber.org/zap"
)

// LogHandler is an ErrorHandler that writes to a zap logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool

	// Logger receives the entries. A nil Logger uses a production logger
	// writing to stderr, built on first use.
	Logger *zap.Logger

	once     sync.Once
	fallback *zap.Logger
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	h.once.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		h.fallback = l
	})
	return h.fallback
}

// HandleError logs a BridgeError. Usage errors log at warn level, the rest at debug.
func (h *LogHandler) HandleError(err *BridgeError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Handle != 0 {
		fields = append(fields, zap.Uint64("handle", err.Handle))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	if err.Kind == KindUsage || err.Kind == KindPlatform {
		h.logger().Warn("accessbridge error", fields...)
		return
	}
	h.logger().Debug("accessbridge error", fields...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.Any("value", err.Value)}
	if err.Op != "" {
		fields = append(fields, zap.String("op", err.Op))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("accessbridge panic", fields...)
}
