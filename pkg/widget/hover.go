package widget

import (
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
)

// HoverState tracks the single hovered path.
type HoverState struct {
	path id.Path
}

// Path returns the hovered path, or nil.
func (h *HoverState) Path() id.Path {
	return h.path
}

// Update hit-tests pos and moves the hover to the result. SetHover calls
// are only made when the hovered path changes. It reports whether it did.
func (h *HoverState) Update(t *Tree, bounds *BoundsTree, pos graphics.Offset) bool {
	next, _ := bounds.HitTest(pos)
	return h.Set(t, next)
}

// Set moves the hover to path, which may be nil.
func (h *HoverState) Set(t *Tree, path id.Path) bool {
	if h.path.Equal(path) {
		return false
	}
	if len(h.path) > 0 {
		t.SendHover(h.path, false)
	}
	h.path = path
	if len(path) > 0 {
		t.SendHover(path, true)
	}
	return true
}

// Clear removes the hover, for example when the cursor leaves the window.
func (h *HoverState) Clear(t *Tree) bool {
	return h.Set(t, nil)
}
