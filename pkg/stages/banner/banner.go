// Package banner implements the status banner stage.
package banner

import (
	"context"
	"fmt"

	"github.com/user/valreport/pkg/pipeline"
	"github.com/user/valreport/pkg/ports"
)

// Stage renders the status banner image shown at the top of the report.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new banner stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("banner"),
	}
}

// Execute draws the banner and returns it as PNG data.
func (s *Stage) Execute(ctx context.Context, input pipeline.BannerInput) (pipeline.BannerResult, error) {
	result := pipeline.BannerResult{}

	s.logger.Debug("Generating status banner")

	img, err := s.renderer.RenderBanner(ports.BannerSpec{
		Width:       input.Width,
		Height:      input.Height,
		Project:     input.Run.Project,
		Environment: input.Run.Environment,
		RunID:       input.Run.RunID,
		Passed:      input.Validation.Passed(),
		Total:       input.Validation.Total,
		Successful:  input.Validation.Successful,
		Failed:      input.Validation.Failed,
		Skipped:     input.Validation.Skipped,
		GeneratedAt: input.Run.FinishedAt,
	})
	if err != nil {
		return result, fmt.Errorf("render banner: %w", err)
	}

	if s.sink.Enabled() {
		s.sink.SaveBanner(img)
	}

	png, err := s.renderer.EncodePNG(img)
	if err != nil {
		return result, fmt.Errorf("encode banner: %w", err)
	}

	result.PNG = png
	s.logger.Debug("Banner generated: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	return result, nil
}
