package products

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
	return buf.Bytes()
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestCheckImageFileAcceptsLargeJPEG(t *testing.T) {
	f := ImageFile{Filename: "front.jpg", Data: encodeJPEG(t, 640, 720)}
	assert.NoError(t, CheckImageFile(f))
}

func TestCheckImageFileEmpty(t *testing.T) {
	assert.ErrorIs(t, CheckImageFile(ImageFile{Filename: "x.jpg"}), ErrInvalidFile)
}

func TestCheckImageFileGarbage(t *testing.T) {
	f := ImageFile{Filename: "x.jpg", Data: []byte("not an image")}
	assert.ErrorIs(t, CheckImageFile(f), ErrInvalidFile)
}

func TestCheckImageFileTooLarge(t *testing.T) {
	f := ImageFile{Filename: "x.jpg", Data: make([]byte, maxImageBytes+1)}
	assert.ErrorIs(t, CheckImageFile(f), ErrFileTooLarge)
}

func TestCheckImageFileTooSmall(t *testing.T) {
	f := ImageFile{Filename: "x.jpg", Data: encodeJPEG(t, 639, 720)}
	assert.ErrorIs(t, CheckImageFile(f), ErrFileScale)

	f = ImageFile{Filename: "x.jpg", Data: encodeJPEG(t, 640, 719)}
	assert.ErrorIs(t, CheckImageFile(f), ErrFileScale)
}

func TestCheckImageFileWrongFormat(t *testing.T) {
	f := ImageFile{Filename: "x.png", Data: encodePNG(t, 640, 720)}
	assert.ErrorIs(t, CheckImageFile(f), ErrFileExtension)
}
