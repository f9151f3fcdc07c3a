// Package project locates the Go module a vessel command runs in and derives
// defaults from it.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-drift/vessel/pkg/config"
)

// Project is a resolved module directory.
type Project struct {
	Root       string
	ModulePath string
	Name       string
}

// FindRoot walks up from dir to the nearest directory holding go.mod.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// Resolve reads the module at root.
func Resolve(root string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return nil, fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return nil, fmt.Errorf("could not determine module path from go.mod")
	}
	return &Project{Root: root, ModulePath: path, Name: defaultName(path, root)}, nil
}

// defaultName is the last module path element without a major version
// suffix, falling back to the directory name.
func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "vessel_app"
	}
	return base
}

// LoadConfig loads the configuration for a command. An explicit path wins;
// otherwise the module root (or dir when outside a module) is searched. An
// unset window title becomes the project name.
func LoadConfig(dir, path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	root, err := FindRoot(dir)
	if err != nil {
		return config.LoadOptional(dir)
	}
	cfg, err := config.LoadOptional(root)
	if err != nil {
		return nil, err
	}
	if cfg.Window.Title == config.Default().Window.Title {
		if p, err := Resolve(root); err == nil {
			cfg.Window.Title = p.Name
		}
	}
	return cfg, nil
}
