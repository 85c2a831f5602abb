package storage

import (
	"bytes"
	"image"
	"image/png"

	"courseadmin/config"
	"courseadmin/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const jpegQuality = 85

type imageProcessor struct {
	maxWidth int
}

// NewImageProcessor bounds uploads to the configured width.
func NewImageProcessor(cfg *config.Config) service.ImageProcessor {
	return &imageProcessor{maxWidth: cfg.MaxImageWidth()}
}

// Normalize decodes jpeg, png, gif, bmp or tiff input, downscales it to the
// maximum width keeping the aspect ratio, and re-encodes it. Images that may
// carry transparency stay PNG; everything else becomes JPEG.
func (p *imageProcessor) Normalize(data []byte) ([]byte, string, string, error) {
	if len(data) == 0 {
		return nil, "", "", errors.New("empty image")
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", "", errors.Wrap(err, "unrecognised image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", "", errors.Wrap(err, "decode image")
	}

	if p.maxWidth > 0 && img.Bounds().Dx() > p.maxWidth {
		img = imaging.Resize(img, p.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if format == "png" || format == "gif" {
		if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, "", "", errors.Wrap(err, "encode png")
		}

		return buf.Bytes(), "image/png", ".png", nil
	}

	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, "", "", errors.Wrap(err, "encode jpeg")
	}

	return buf.Bytes(), "image/jpeg", ".jpg", nil
}
