// Package orchestrator coordinates the probe, banner and render stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/user/valreport/pkg/pipeline"
	"github.com/user/valreport/pkg/ports"
	"github.com/user/valreport/pkg/report"
)

// Config contains all configuration for one validation run.
type Config struct {
	// Run metadata
	Project     string
	Environment string
	RunID       string

	// Pages to probe
	Pages []pipeline.PageSpec

	// Output
	OutputPath string // explicit report path; empty means OutputDir + dated filename
	OutputDir  string

	// Browser
	Browser   ports.BrowserOptions
	TimeoutMs int

	// Banner
	BannerEnabled bool
	BannerWidth   int
	BannerHeight  int

	// Screenshot embedding
	ThumbnailWidth int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Project:     "Validation",
		Environment: "local",

		OutputDir: ".",

		Browser: ports.BrowserOptions{
			Headless:       true,
			ViewportWidth:  1280,
			ViewportHeight: 800,
			Incognito:      true,
		},
		TimeoutMs: 30000,

		BannerEnabled: true,
		BannerWidth:   1200,
		BannerHeight:  72,

		ThumbnailWidth: 960,
	}
}

// Orchestrator coordinates the execution of all stages.
type Orchestrator struct {
	probeStage  pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult]
	bannerStage pipeline.Stage[pipeline.BannerInput, pipeline.BannerResult]
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	fs          ports.FileSystem
	sink        ports.DebugSink
	clock       ports.Clock
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	probeStage pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult],
	bannerStage pipeline.Stage[pipeline.BannerInput, pipeline.BannerResult],
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	clock ports.Clock,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		probeStage:  probeStage,
		bannerStage: bannerStage,
		renderStage: renderStage,
		fs:          fs,
		sink:        sink,
		clock:       clock,
		logger:      logger,
	}
}

// Run executes the complete validation run: probe the pages, summarize the
// check outcomes, draw the banner and render the report document.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.F("Starting validation run for %s", config.Project))

	run := report.RunInfo{
		Project:     config.Project,
		Environment: config.Environment,
		RunID:       config.RunID,
		StartedAt:   o.clock.Now(),
	}

	// 1. Probe pages
	o.logger.Info(l10n.F("Probing %d pages", len(config.Pages)))
	probeInput := o.buildProbeInput(config)
	probed, err := o.probeStage.Execute(ctx, probeInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to launch browser: %s", err))
		return RunResult{}, fmt.Errorf("probe stage: %w", err)
	}
	run.FinishedAt = o.clock.Now()

	validation := summarizeChecks(probed.Checks)
	o.logger.Info(l10n.F("Validation completed: %d/%d checks passed", validation.Successful, validation.Total))

	// Save metrics debug output
	if o.sink.Enabled() && probed.Performance != nil {
		if data, err := json.MarshalIndent(probed.Performance, "", "  "); err == nil {
			o.sink.SaveMetricsJSON(data)
		}
	}

	// 2. Generate banner (optional)
	var bannerPNG []byte
	if config.BannerEnabled {
		bannerInput := pipeline.BannerInput{
			Width:      config.BannerWidth,
			Height:     config.BannerHeight,
			Run:        run,
			Validation: validation,
		}
		banner, err := o.bannerStage.Execute(ctx, bannerInput)
		if err != nil {
			o.logger.Error(l10n.F("Failed to generate banner: %s", err))
			return RunResult{}, fmt.Errorf("banner stage: %w", err)
		}
		bannerPNG = banner.PNG
	}

	// 3. Render document
	o.logger.Info(l10n.T("Rendering report"))
	renderInput := pipeline.RenderInput{
		Run:            run,
		Validation:     validation,
		Performance:    probed.Performance,
		Screenshots:    probed.Screenshots,
		Banner:         bannerPNG,
		ThumbnailWidth: config.ThumbnailWidth,
	}
	rendered, err := o.renderStage.Execute(ctx, renderInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to render report: %s", err))
		return RunResult{}, fmt.Errorf("render stage: %w", err)
	}

	// Save session and document debug output
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(rendered.Session, "", "  "); err == nil {
			o.sink.SaveSessionJSON(data)
		}
		o.sink.SaveReportHTML(rendered.HTML)
	}

	// 4. Write output file
	outputPath := config.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(config.OutputDir, rendered.Filename)
	}
	if err := o.fs.WriteFile(outputPath, rendered.HTML); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Report saved to %s", outputPath))

	return RunResult{
		OutputPath:  outputPath,
		Validation:  validation,
		Run:         run,
		Performance: probed.Performance,
		Screenshots: len(probed.Screenshots),
		ReportBytes: len(rendered.HTML),
	}, nil
}

func (o *Orchestrator) buildProbeInput(config Config) pipeline.ProbeInput {
	return pipeline.ProbeInput{
		Pages:     config.Pages,
		Browser:   config.Browser,
		TimeoutMs: config.TimeoutMs,
	}
}

// summarizeChecks reduces check outcomes to the validation counters. Total
// is the number of checks run, whatever their status.
func summarizeChecks(checks []report.CheckResult) report.ValidationResults {
	results := report.ValidationResults{
		Total:  len(checks),
		Checks: checks,
	}
	for _, check := range checks {
		switch check.Status {
		case report.CheckPassed:
			results.Successful++
		case report.CheckFailed:
			results.Failed++
		case report.CheckSkipped:
			results.Skipped++
		}
	}
	return results
}
