package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindRootWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/app\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	want, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefaultName(t *testing.T) {
	tests := []struct {
		module string
		dir    string
		want   string
	}{
		{"github.com/acme/notes", "/src/x", "notes"},
		{"github.com/acme/notes/v2", "/src/x", "notes"},
		{"notes", "/src/x", "notes"},
		{"gopkg.in/yaml.v3", "/src/x", "yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultName(tt.module, tt.dir))
		})
	}
}

func TestResolveRejectsMissingModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "go 1.24\n")

	_, err := Resolve(root)
	assert.Error(t, err)
}

func TestLoadConfigTitleFromModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module github.com/acme/notes\n")

	cfg, err := LoadConfig(root, "")
	require.NoError(t, err)
	assert.Equal(t, "notes", cfg.Window.Title)
}

func TestLoadConfigKeepsExplicitTitle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module github.com/acme/notes\n")
	writeFile(t, filepath.Join(root, "vessel.yaml"), "window:\n  title: Scratch\n")

	cfg, err := LoadConfig(root, "")
	require.NoError(t, err)
	assert.Equal(t, "Scratch", cfg.Window.Title)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "[window]\nwidth = 320.0\nheight = 240.0\n")

	cfg, err := LoadConfig(dir, path)
	require.NoError(t, err)
	assert.Equal(t, 320.0, cfg.Window.Width)
	assert.Equal(t, "vessel", cfg.Window.Title)
}
