package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type handlerBox struct{ h ErrorHandler }

var handler atomic.Pointer[handlerBox]

func init() { SetHandler(nil) }

// SetHandler installs the process-wide error handler. Nil restores a quiet
// LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handler.Store(&handlerBox{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler { return handler.Load().h }

// Report stamps err if needed and hands it to the handler.
func Report(err *VesselError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportOp wraps err in a VesselError and reports it.
func ReportOp(op string, kind ErrorKind, err error) {
	if err == nil {
		return
	}
	Report(&VesselError{Op: op, Kind: kind, Err: err})
}

// ReportPanic hands a recovered panic to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress. Use it as
//
//	defer errors.Recover("animation.run")
//
// A *StaleIDError is reported and then re-panicked: the widget tree can no
// longer be trusted.
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack(), Timestamp: time.Now()})
	if _, stale := r.(*StaleIDError); stale {
		panic(r)
	}
}

// CaptureStack formats the caller's stack, one function and position per
// frame.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
