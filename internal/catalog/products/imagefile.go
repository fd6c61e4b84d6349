package products

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	maxImageBytes  = 4 << 20
	minImageWidth  = 640
	minImageHeight = 720
)

// CheckImageFile enforces the upload policy on a single image: non-empty,
// at most 4 MiB, at least 640x720 and JPEG encoded. Dimensions and format
// come from the encoded header only; the full image is never decoded.
func CheckImageFile(f ImageFile) error {
	if len(f.Data) == 0 {
		return ErrInvalidFile
	}
	if len(f.Data) > maxImageBytes {
		return ErrFileTooLarge
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(f.Data))
	if err != nil {
		return ErrInvalidFile
	}
	if cfg.Width < minImageWidth || cfg.Height < minImageHeight {
		return ErrFileScale
	}
	if format != "jpeg" {
		return ErrFileExtension
	}
	return nil
}
