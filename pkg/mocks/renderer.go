package mocks

import (
	"image"

	"github.com/user/valreport/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	RenderBannerFunc func(spec ports.BannerSpec) (image.Image, error)
	DecodeImageFunc  func(data []byte) (image.Image, error)
	EncodePNGFunc    func(img image.Image) ([]byte, error)
	ThumbnailFunc    func(img image.Image, maxWidth int) image.Image
}

func (m *Renderer) RenderBanner(spec ports.BannerSpec) (image.Image, error) {
	if m.RenderBannerFunc != nil {
		return m.RenderBannerFunc(spec)
	}
	return image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height)), nil
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte("mock-png"), nil
}

func (m *Renderer) Thumbnail(img image.Image, maxWidth int) image.Image {
	if m.ThumbnailFunc != nil {
		return m.ThumbnailFunc(img, maxWidth)
	}
	return img
}

var _ ports.Renderer = (*Renderer)(nil)
