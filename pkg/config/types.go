package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/vessel/pkg/graphics"
)

// Duration is a time.Duration written as a string such as "16ms".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) { return d.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.UnmarshalText([]byte(n.Value))
}

// Color is a graphics.Color written as "#rrggbb" or "#rrggbbaa".
type Color graphics.Color

// Graphics returns c as a graphics.Color.
func (c Color) Graphics() graphics.Color { return graphics.Color(c) }

func (c Color) String() string {
	v := uint32(c)
	return fmt.Sprintf("#%02x%02x%02x%02x", uint8(v>>16), uint8(v>>8), uint8(v), uint8(v>>24))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(b)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", string(b))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", string(b), err)
	}
	if len(s) == 6 {
		*c = Color(graphics.RGB(uint8(v>>16), uint8(v>>8), uint8(v)))
		return nil
	}
	*c = Color(graphics.RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) { return c.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	return c.UnmarshalText([]byte(n.Value))
}
