package view

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/vessel/pkg/errors"
)

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true,
}

// ImageFromFile decodes the image at path. Unsupported or missing
// extensions and undecodable files return *errors.AssetError.
func ImageFromFile(path string) (Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Image{}, &errors.AssetError{Path: path, Reason: "missing file extension"}
	}
	if !imageExtensions[ext] {
		return Image{}, &errors.AssetError{Path: path, Reason: "unsupported extension " + ext}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, &errors.AssetError{Path: path, Reason: "read failed", Err: err}
	}
	return ImageFromBytes(path, data)
}

// ImageFromBytes decodes an encoded image. name is used in errors.
func ImageFromBytes(name string, data []byte) (Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, &errors.AssetError{Path: name, Reason: "decode failed", Err: err}
	}
	return Image{Source: img}, nil
}
