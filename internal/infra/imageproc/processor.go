// Package imageproc normalizes uploaded profile images.
package imageproc

import (
	"bytes"
	"image"

	"folio/config"
	"folio/internal/domain/service"
	"folio/internal/errors"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the webp decoder
)

type processor struct {
	width   int
	height  int
	quality int
}

// NewImageProcessor builds a processor from the upload config section.
func NewImageProcessor(cfg *config.Config) service.ImageProcessor {
	return &processor{
		width:   cfg.Upload.ImageWidth,
		height:  cfg.Upload.ImageHeight,
		quality: cfg.Upload.ImageQuality,
	}
}

// Process center-crops to the target aspect ratio, resizes and re-encodes as JPEG.
func (p *processor) Process(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	fitted := imaging.Fill(img, p.width, p.height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flatten(fitted), imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}

	return buf.Bytes(), nil
}

// flatten composites transparent pixels onto white so JPEG output has no black background.
func flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), image.White)

	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
