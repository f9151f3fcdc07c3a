package render

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a readable listing of cmds, indented by layer depth.
func Dump(w io.Writer, cmds []Command) error {
	depth := 0
	for _, c := range cmds {
		if _, ok := c.(PopLayer); ok && depth > 0 {
			depth--
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describe(c)); err != nil {
			return err
		}
		if _, ok := c.(PushLayer); ok {
			depth++
		}
	}
	return nil
}

func describe(c Command) string {
	switch c := c.(type) {
	case PushLayer:
		o := c.Transform.TranslationPart()
		return fmt.Sprintf("push_layer at=(%g,%g) clip=%gx%g r=%g", o.X, o.Y, c.Clip.Rect.Width(), c.Clip.Rect.Height(), c.Clip.Radius)
	case PopLayer:
		return "pop_layer"
	case FillShape:
		b := c.Path.Bounds()
		return fmt.Sprintf("fill %gx%g color=%08x", b.Width(), b.Height(), uint32(c.Brush.Color))
	case StrokeShape:
		b := c.Path.Bounds()
		return fmt.Sprintf("stroke %gx%g width=%g color=%08x", b.Width(), b.Height(), c.Width, uint32(c.Brush.Color))
	case DrawText:
		return fmt.Sprintf("text %q", c.Layout.Text)
	case DrawImage:
		return fmt.Sprintf("image %gx%g", c.Size.Width, c.Size.Height)
	default:
		return fmt.Sprintf("%T", c)
	}
}
