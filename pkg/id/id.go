// Package id issues process-unique identities for widgets and animations.
//
// Identities are plain integers handed out by an Allocator. They are stable
// for the lifetime of the object they name and are never reused, so they can
// be used as map keys independent of tree position.
package id

import (
	"strconv"
	"sync/atomic"
)

// WidgetID identifies a widget. The zero value is never issued.
type WidgetID uint64

// Valid reports whether id was issued by an allocator.
func (id WidgetID) Valid() bool { return id != 0 }

func (id WidgetID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// AnimationID identifies a running animation. The zero value is never issued.
type AnimationID uint64

func (id AnimationID) String() string {
	return "anim#" + strconv.FormatUint(uint64(id), 10)
}

// Allocator hands out monotonically increasing identities.
// It is safe for concurrent use.
//
// Widgets and animations draw from the same counter, so a WidgetID and an
// AnimationID never share a numeric value within one allocator.
type Allocator struct {
	next atomic.Uint64
}

// NewAllocator returns an allocator whose first identity is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Default is used by constructors that are not given an allocator.
var Default = NewAllocator()

// NextWidget returns a fresh widget identity.
func (a *Allocator) NextWidget() WidgetID {
	return WidgetID(a.next.Add(1))
}

// NextAnimation returns a fresh animation identity.
func (a *Allocator) NextAnimation() AnimationID {
	return AnimationID(a.next.Add(1))
}

// Peek returns the most recently issued value without allocating.
func (a *Allocator) Peek() uint64 {
	return a.next.Load()
}

// Reset restarts the sequence. Only tests should call this, and only when
// no identities from the previous sequence are still alive.
func (a *Allocator) Reset() {
	a.next.Store(0)
}
