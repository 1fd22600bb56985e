package encode

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

const defaultJPEGQuality = 95

func init() {
	Register(func() Encoder { return &jpegEncoder{} }, "jpg", "jpeg")
	Register(func() Encoder { return &pngEncoder{} }, "png")
}

// jpegEncoder encodes frames as JPEG via the imaging package
type jpegEncoder struct{}

func (e *jpegEncoder) Name() string      { return "jpeg" }
func (e *jpegEncoder) Extension() string { return ".jpg" }

func (e *jpegEncoder) Encode(w io.Writer, img image.Image, opts Options) error {
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = defaultJPEGQuality
	}
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
}

// pngEncoder encodes frames as PNG via the imaging package
type pngEncoder struct{}

func (e *pngEncoder) Name() string      { return "png" }
func (e *pngEncoder) Extension() string { return ".png" }

func (e *pngEncoder) Encode(w io.Writer, img image.Image, opts Options) error {
	return imaging.Encode(w, img, imaging.PNG)
}
