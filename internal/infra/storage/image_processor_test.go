package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"courseadmin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}

	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	return buf.Bytes()
}

func TestImageProcessor_DownscalesWideImages(t *testing.T) {
	processor := NewImageProcessor(&config.Config{Assets: &config.AssetsConfig{MaxImageWidth: 100}})

	out, contentType, ext, err := processor.Normalize(encodeJPEG(t, solidImage(400, 200)))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, ".jpg", ext)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestImageProcessor_KeepsSmallPNG(t *testing.T) {
	processor := NewImageProcessor(&config.Config{})

	out, contentType, ext, err := processor.Normalize(encodePNG(t, solidImage(64, 32)))
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, ".png", ext)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestImageProcessor_RejectsGarbage(t *testing.T) {
	processor := NewImageProcessor(&config.Config{})

	_, _, _, err := processor.Normalize([]byte("definitely not an image"))
	assert.Error(t, err)

	_, _, _, err = processor.Normalize(nil)
	assert.Error(t, err)
}
