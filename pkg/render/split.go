package render

import (
	"fmt"

	"github.com/go-drift/vessel/pkg/graphics"
)

// Frame is what the renderer consumes for one presented frame.
type Frame struct {
	// Size is in logical pixels.
	Size graphics.Size
	// Scale maps logical to physical pixels. Zero means 1.
	Scale      float64
	Background graphics.Color
	// Groups are independent command lists, composited in order.
	Groups [][]Command
}

// PixelScale returns Scale, or 1 when unset.
func (f Frame) PixelScale() float64 {
	if f.Scale <= 0 {
		return 1
	}
	return f.Scale
}

// Len returns the total number of commands in f.
func (f Frame) Len() int {
	n := 0
	for _, g := range f.Groups {
		n += len(g)
	}
	return n
}

// Validate checks that layers are balanced.
func Validate(cmds []Command) error {
	depth := 0
	for i, c := range cmds {
		switch c.(type) {
		case PushLayer:
			depth++
		case PopLayer:
			depth--
			if depth < 0 {
				return fmt.Errorf("render: unmatched PopLayer at %d", i)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("render: %d unclosed layers", depth)
	}
	return nil
}

// Split cuts a balanced command list into groups at top-level layer
// boundaries. Each top-level layer becomes its own group; runs of top-level
// drawing commands between layers form a group too. Concatenating the groups
// yields cmds unchanged.
func Split(cmds []Command) ([][]Command, error) {
	if err := Validate(cmds); err != nil {
		return nil, err
	}
	var groups [][]Command
	start, depth := 0, 0
	for i, c := range cmds {
		switch c.(type) {
		case PushLayer:
			if depth == 0 && i > start {
				groups = append(groups, cmds[start:i])
				start = i
			}
			depth++
		case PopLayer:
			depth--
			if depth == 0 {
				groups = append(groups, cmds[start:i+1])
				start = i + 1
			}
		}
	}
	if start < len(cmds) {
		groups = append(groups, cmds[start:])
	}
	return groups, nil
}

// Flatten concatenates groups back into one list.
func Flatten(groups [][]Command) []Command {
	var out []Command
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
