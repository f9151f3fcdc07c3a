package errors

import (
	"log/slog"

	"github.com/go-drift/vessel/pkg/logging"
)

// LogHandler is an ErrorHandler that writes to the process logger.
type LogHandler struct {
	// Verbose includes stack traces in the log records.
	Verbose bool
	// Logger overrides logging.Logger() when set.
	Logger *slog.Logger
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Logger()
}

// HandleError logs a VesselError at error level.
func (h *LogHandler) HandleError(err *VesselError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("vessel error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("vessel panic", attrs...)
}
