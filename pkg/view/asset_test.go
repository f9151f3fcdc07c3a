package view

import (
	"bytes"
	stderrors "errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/vessel/pkg/errors"
)

func TestImageFromFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 3, 2))))
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	img, err := ImageFromFile(path)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Source.Bounds())
}

func TestImageFromFileErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"noext":       "missing file extension",
		"icon.tiff":   "unsupported extension .tiff",
		"missing.png": "read failed",
		"broken.webp": "decode failed",
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.webp"), []byte("nope"), 0o600))

	for name, reason := range cases {
		_, err := ImageFromFile(filepath.Join(dir, name))
		var ae *errors.AssetError
		require.True(t, stderrors.As(err, &ae), name)
		require.Equal(t, reason, ae.Reason, name)
	}
}
