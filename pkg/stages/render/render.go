// Package render implements the document rendering stage: it feeds the
// accumulated session inputs to the report builder and produces the final
// HTML document.
package render

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/user/valreport/pkg/pipeline"
	"github.com/user/valreport/pkg/ports"
	"github.com/user/valreport/pkg/report"
)

// Stage renders the report document.
type Stage struct {
	clock    ports.Clock
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new render stage.
func NewStage(clock ports.Clock, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		clock:    clock,
		renderer: renderer,
		logger:   logger.WithComponent("render"),
	}
}

// Execute assembles a report builder from the input, in order: screenshots,
// validation results, performance data, banner, then renders the document.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	result := pipeline.RenderResult{}

	builder := report.NewBuilder(s.clock, s.logger)
	builder.SetRunInfo(input.Run)

	for _, shot := range input.Screenshots {
		if err := builder.AddScreenshot(shot.Name, s.embed(shot.PNG, input.ThumbnailWidth)); err != nil {
			return result, fmt.Errorf("add screenshot: %w", err)
		}
	}

	builder.SetValidationResults(input.Validation)
	builder.SetPerformanceData(input.Performance)
	if len(input.Banner) > 0 {
		builder.SetBanner(input.Banner)
	}

	html, err := builder.GenerateHTML()
	if err != nil {
		return result, fmt.Errorf("generate document: %w", err)
	}

	result.HTML = html
	result.Filename = builder.DownloadFilename()
	result.Session = builder.Session()
	return result, nil
}

// embed turns raw PNG data into the base64 payload embedded in the
// document, scaling it down to maxWidth first when requested. Scaling
// failures fall back to the original image.
func (s *Stage) embed(png []byte, maxWidth int) string {
	if maxWidth > 0 {
		if img, err := s.renderer.DecodeImage(png); err == nil {
			scaled := s.renderer.Thumbnail(img, maxWidth)
			if scaled != img {
				if data, err := s.renderer.EncodePNG(scaled); err == nil {
					png = data
				}
			}
		}
	}
	return base64.StdEncoding.EncodeToString(png)
}
