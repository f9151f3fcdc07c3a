package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestHelpListsCommands(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	for _, name := range []string{"render", "tree", "config"} {
		assert.Contains(t, out, name)
	}
}

func TestCommandHelp(t *testing.T) {
	out, _, err := run(t, "tree", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "vessel tree [--commands]")
}

func TestUnknownCommand(t *testing.T) {
	_, stderr, err := run(t, "paint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: paint")
	assert.Contains(t, stderr, "Commands:")
}

func TestUnknownGlobalFlag(t *testing.T) {
	_, _, err := run(t, "--fast", "tree")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "vessel version "))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vessel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestConfigFromFile(t *testing.T) {
	path := writeConfig(t, "window:\n  title: gallery\n  width: 640\n")

	out, _, err := run(t, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "title: gallery")
	assert.Contains(t, out, "width: 640")

	out, _, err = run(t, "--config="+path, "config", "--toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[window]")
	assert.Contains(t, out, "gallery")
}

func TestConfigRejectsUnknownFlag(t *testing.T) {
	_, _, err := run(t, "config", "--json")
	require.Error(t, err)
}

func TestTreeDump(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 480\n  height: 360\n")

	out, _, err := run(t, "--config", path, "tree", "--commands", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Window")
	assert.Contains(t, out, "Column")
	assert.Contains(t, out, "# group 0")
	assert.Contains(t, out, "builds=")
}

func TestTreeRejectsBadTap(t *testing.T) {
	_, _, err := run(t, "tree", "--tap", "12")
	require.Error(t, err)

	_, _, err = run(t, "tree", "--width")
	require.Error(t, err)
}

func TestRenderWritesPNG(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 160\n  height: 120\n")
	output := filepath.Join(t.TempDir(), "out.png")

	out, _, err := run(t, "--config", path, "render", "-o", output, "--scale", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "320x240")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
