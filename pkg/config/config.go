// Package config loads vessel settings from YAML or TOML files.
//
// Every field has a default, so a missing file is not an error for
// [LoadOptional]. Durations are written as strings ("16ms") and colors as
// hex ("#2b2f38" or "#2b2f38ff").
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/vessel/pkg/graphics"
)

// Config is the resolved vessel configuration.
type Config struct {
	Window    Window    `yaml:"window" toml:"window"`
	Animation Animation `yaml:"animation" toml:"animation"`
	Render    Render    `yaml:"render" toml:"render"`
	Debug     Debug     `yaml:"debug" toml:"debug"`
}

// Window configures the root window and its chrome.
type Window struct {
	Title        string  `yaml:"title" toml:"title"`
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Decorated    bool    `yaml:"decorated" toml:"decorated"`
	Radius       float64 `yaml:"radius" toml:"radius"`
	HeaderHeight float64 `yaml:"header_height" toml:"header_height"`
	ResizeBorder float64 `yaml:"resize_border" toml:"resize_border"`
}

// Animation configures the scheduler.
type Animation struct {
	Interval Duration `yaml:"interval" toml:"interval"`
	// Buffer is the capacity of the message channel.
	Buffer int `yaml:"buffer" toml:"buffer"`
}

// Render configures frame output.
type Render struct {
	// ParallelGroups encodes layer groups concurrently.
	ParallelGroups bool  `yaml:"parallel_groups" toml:"parallel_groups"`
	Workers        int   `yaml:"workers" toml:"workers"`
	Background     Color `yaml:"background" toml:"background"`
}

// Debug toggles diagnostics.
type Debug struct {
	Verbose        bool `yaml:"verbose" toml:"verbose"`
	TraceReconcile bool `yaml:"trace_reconcile" toml:"trace_reconcile"`
	DumpTree       bool `yaml:"dump_tree" toml:"dump_tree"`
}

// FileNames are searched in order by LoadOptional.
var FileNames = []string{"vessel.yaml", "vessel.yml", "vessel.toml"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:        "vessel",
			Width:        800,
			Height:       600,
			Decorated:    true,
			Radius:       10,
			HeaderHeight: 32,
			ResizeBorder: 6,
		},
		Animation: Animation{Interval: Duration(16 * time.Millisecond), Buffer: 64},
		Render: Render{
			ParallelGroups: true,
			Workers:        runtime.GOMAXPROCS(0),
			Background:     Color(graphics.RGB(0x1e, 0x20, 0x26)),
		},
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// LoadOptional loads the first of FileNames found in dir, or the defaults
// when none exists.
func LoadOptional(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		return Load(path)
	}
	return Default(), nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %gx%g must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Radius < 0 {
		errs = append(errs, fmt.Errorf("window radius %g is negative", c.Window.Radius))
	}
	if c.Window.HeaderHeight < 0 || c.Window.HeaderHeight > c.Window.Height {
		errs = append(errs, fmt.Errorf("header height %g out of range", c.Window.HeaderHeight))
	}
	if c.Window.ResizeBorder < 0 {
		errs = append(errs, fmt.Errorf("resize border %g is negative", c.Window.ResizeBorder))
	}
	if c.Animation.Interval.Std() <= 0 {
		errs = append(errs, fmt.Errorf("animation interval %s must be positive", c.Animation.Interval))
	}
	if c.Animation.Buffer < 0 {
		errs = append(errs, fmt.Errorf("animation buffer %d is negative", c.Animation.Buffer))
	}
	if c.Render.Workers < 1 {
		errs = append(errs, fmt.Errorf("render workers %d must be at least 1", c.Render.Workers))
	}
	return errors.Join(errs...)
}

// EncodeYAML encodes c as YAML.
func (c *Config) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// EncodeTOML encodes c as TOML.
func (c *Config) EncodeTOML() ([]byte, error) {
	return toml.Marshal(c)
}
