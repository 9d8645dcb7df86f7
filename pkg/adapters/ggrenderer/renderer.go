// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoding for DecodeImage
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/valreport/pkg/ports"
)

// Banner color scheme per run outcome.
var (
	passedBackground = color.RGBA{R: 0x0f, G: 0x76, B: 0x4e, A: 0xff}
	failedBackground = color.RGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 0xff}
	bannerText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	bannerSubText    = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderBanner draws the status banner image: outcome, project, counters
// and the generation timestamp on a solid status-colored background.
func (r *Renderer) RenderBanner(spec ports.BannerSpec) (image.Image, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("invalid banner size %dx%d", spec.Width, spec.Height)
	}

	dc := gg.NewContext(spec.Width, spec.Height)

	bg := passedBackground
	status := "PASSED"
	if !spec.Passed {
		bg = failedBackground
		status = "FAILED"
	}
	dc.SetColor(bg)
	dc.Clear()

	margin := 16.0
	centerY := float64(spec.Height) / 2

	dc.SetColor(bannerText)
	title := spec.Project
	if title == "" {
		title = "Validation Report"
	}
	dc.DrawStringAnchored(fmt.Sprintf("%s  %s", status, title), margin, centerY-10, 0, 0.5)

	counters := fmt.Sprintf("%d checks: %d passed / %d failed / %d skipped",
		spec.Total, spec.Successful, spec.Failed, spec.Skipped)
	dc.SetColor(bannerSubText)
	dc.DrawStringAnchored(counters, margin, centerY+10, 0, 0.5)

	right := float64(spec.Width) - margin
	if spec.Environment != "" {
		dc.DrawStringAnchored(spec.Environment, right, centerY-10, 1, 0.5)
	}
	dc.DrawStringAnchored(spec.GeneratedAt.Format("2006-01-02 15:04"), right, centerY+10, 1, 0.5)

	return dc.Image(), nil
}

// DecodeImage decodes PNG or JPEG data, auto-detecting the format.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail scales an image down to at most maxWidth pixels wide,
// preserving aspect ratio. Images already narrower are returned as is.
func (r *Renderer) Thumbnail(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
