// Package errors provides structured error handling for vessel.
//
// Errors fall into a small taxonomy (see ErrorKind). Tree-shape bugs such as
// addressing a removed widget panic with a *StaleIDError; recoverable issues
// are sent to the global ErrorHandler with Report and the caller degrades.
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
	// KindStaleID indicates a removed widget id was addressed.
	KindStaleID
	// KindLayout indicates invalid layout input, such as unbounded constraints
	// reaching a container that cannot scroll.
	KindLayout
	// KindAsset indicates an unreadable or unsupported asset.
	KindAsset
	// KindDelivery indicates a message could not be delivered to the event loop.
	KindDelivery
	// KindRender indicates a failure while encoding or presenting a frame.
	KindRender
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStaleID:
		return "stale_id"
	case KindLayout:
		return "layout"
	case KindAsset:
		return "asset"
	case KindDelivery:
		return "delivery"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VesselError is a structured error reported through the global handler.
type VesselError struct {
	// Op is the operation that failed (e.g., "widget.Flex.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VesselError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VesselError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.Driver.Frame").
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

// StaleIDError is the panic value used when a removed or unknown widget id
// is addressed. It always indicates a reconciliation bug.
type StaleIDError struct {
	// ID is the widget id that was not found.
	ID uint64
	// Op is the tree operation that looked it up.
	Op string
}

func (e *StaleIDError) Error() string {
	return fmt.Sprintf("%s: stale widget id %d", e.Op, e.ID)
}

// LayoutError describes invalid layout input.
type LayoutError struct {
	// Widget is the widget type that received the input.
	Widget string
	// Axis is "horizontal" or "vertical".
	Axis string
	// Reason describes what was wrong.
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: %s on %s axis", e.Widget, e.Reason, e.Axis)
}

// AssetError describes an asset that could not be loaded.
type AssetError struct {
	// Path is the asset location.
	Path string
	// Reason describes the failure.
	Reason string
	// Err is the underlying decode or read error, if any.
	Err error
}

func (e *AssetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("asset %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("asset %s: %s", e.Path, e.Reason)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// DeliveryError describes a message that could not reach the event loop.
type DeliveryError struct {
	// Animation is the id of the animation whose message was dropped.
	Animation uint64
	// Message describes the dropped message ("tick" or "done").
	Message string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("animation %d: %s message not delivered: receiver closed", e.Animation, e.Message)
}

// ErrorHandler receives errors reported by vessel.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *VesselError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
