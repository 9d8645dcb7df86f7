package ports

import (
	"image"
	"time"
)

// BannerSpec describes the status banner drawn at the top of a report.
type BannerSpec struct {
	Width  int
	Height int

	Project     string
	Environment string
	RunID       string

	Passed     bool
	Total      int
	Successful int
	Failed     int
	Skipped    int

	GeneratedAt time.Time
}

// Renderer abstracts image drawing and encoding for the report.
type Renderer interface {
	// RenderBanner draws the status banner image.
	RenderBanner(spec BannerSpec) (image.Image, error)

	// DecodeImage decodes PNG or JPEG data.
	DecodeImage(data []byte) (image.Image, error)

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)

	// Thumbnail scales an image down to at most maxWidth pixels wide,
	// preserving aspect ratio. Images already narrower are returned as is.
	Thumbnail(img image.Image, maxWidth int) image.Image
}
