// Package main provides the CLI entry point for valreport.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/valreport/pkg/adapters/chromebrowser"
	"github.com/user/valreport/pkg/adapters/filesink"
	"github.com/user/valreport/pkg/adapters/ggrenderer"
	"github.com/user/valreport/pkg/adapters/logger"
	"github.com/user/valreport/pkg/adapters/nullsink"
	"github.com/user/valreport/pkg/adapters/osfilesystem"
	"github.com/user/valreport/pkg/adapters/systemclock"
	"github.com/user/valreport/pkg/config"
	"github.com/user/valreport/pkg/orchestrator"
	"github.com/user/valreport/pkg/ports"
	"github.com/user/valreport/pkg/report"
	"github.com/user/valreport/pkg/stages/banner"
	"github.com/user/valreport/pkg/stages/probe"
	"github.com/user/valreport/pkg/stages/render"
	"github.com/user/valreport/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Run a validation suite and write the HTML report."`
	Render  RenderCmd  `cmd:"" help:"Render the HTML report from a saved session file."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RunCmd defines the run subcommand.
type RunCmd struct {
	// Required arguments
	Config string `arg:"" help:"Validation suite configuration (YAML)."`

	// Output
	Output  string `short:"o" help:"Report output path (default: <output_dir>/validation_report_<date>.html)."`
	Summary string `help:"Write a Markdown run summary to this path."`

	// Run metadata overrides
	Project     string `help:"Project name shown in the report."`
	Environment string `help:"Environment name shown in the report."`
	RunID       string `help:"Run identifier (default: derived from the current time)."`

	// Browser options
	NoHeadless        bool   `help:"Run browser in non-headless mode."`
	ChromePath        string `help:"Path to Chrome executable (falls back to CHROME_PATH env, then system default)."`
	IgnoreHTTPSErrors bool   `help:"Ignore HTTPS certificate errors."`
	ProxyServer       string `help:"HTTP proxy server (e.g., http://proxy:8080)."`
	TimeoutMs         *int   `help:"Page load timeout in milliseconds."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output (session JSON, screenshots, banner)."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// RenderCmd defines the render subcommand.
type RenderCmd struct {
	Session string `arg:"" help:"Session JSON file saved by a debug run."`
	Output  string `short:"o" help:"Report output path (default: validation_report_<date>.html)."`

	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli, kongOptions()...)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// kongOptions returns the parser options, with the description translated.
func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("valreport"),
		kong.Description(l10n.T("Run page validation suites and build self-contained HTML reports.")),
		kong.UsageOnError(),
	}
}

// Run executes the run command.
func (cmd *RunCmd) Run() error {
	cfg, err := config.LoadFromFile(cmd.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cmd.applyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := newLogger(cmd.Quiet, cmd.LogLevel)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	clock := systemclock.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cmd.Debug || cfg.Debug {
		debugDir := cmd.DebugDir
		if cfg.DebugDir != "" && cmd.DebugDir == "./debug" {
			debugDir = cfg.DebugDir
		}
		sink = filesink.New(debugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	probeStage := probe.NewStage(chromebrowser.New(), clock, sink, log)
	bannerStage := banner.NewStage(renderer, sink, log)
	renderStage := render.NewStage(clock, renderer, log)

	orch := orchestrator.New(probeStage, bannerStage, renderStage, fs, sink, clock, log)

	runID := cmd.RunID
	if runID == "" {
		runID = "run-" + clock.Now().Format("20060102-150405")
	}

	result, err := orch.Run(ctx, cfg.ToOrchestrator(runID))
	if err != nil {
		return err
	}

	summaryPath := cmd.Summary
	if summaryPath == "" {
		summaryPath = cfg.SummaryPath
	}
	if summaryPath != "" {
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := writer.Write(summaryPath, buildSummary(result)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		log.Info(l10n.F("Summary saved to %s", summaryPath))
	}

	return nil
}

// applyOverrides layers CLI flags over the loaded configuration.
func (cmd *RunCmd) applyOverrides(cfg *config.Config) {
	if cmd.Output != "" {
		cfg.OutputPath = cmd.Output
	}
	if cmd.Project != "" {
		cfg.Project = cmd.Project
	}
	if cmd.Environment != "" {
		cfg.Environment = cmd.Environment
	}
	if cmd.NoHeadless {
		cfg.Headless = false
	}
	if cmd.ChromePath != "" {
		cfg.ChromePath = cmd.ChromePath
	}
	if cmd.IgnoreHTTPSErrors {
		cfg.IgnoreHTTPSErrors = true
	}
	if cmd.ProxyServer != "" {
		cfg.ProxyServer = cmd.ProxyServer
	}
	if cmd.TimeoutMs != nil {
		cfg.TimeoutMs = *cmd.TimeoutMs
	}
}

// buildSummary converts a run result into the post-run summary.
func buildSummary(result orchestrator.RunResult) *summarizer.Summary {
	builder := summarizer.NewBuilder().
		WithRun(summarizer.RunDetail{
			Project:     result.Run.Project,
			Environment: result.Run.Environment,
			RunID:       result.Run.RunID,
			StartedAt:   result.Run.StartedAt,
			FinishedAt:  result.Run.FinishedAt,
			DurationMs:  int(result.Run.FinishedAt.Sub(result.Run.StartedAt) / time.Millisecond),
		}).
		WithChecks(summarizer.CheckTotals{
			Total:       result.Validation.Total,
			Successful:  result.Validation.Successful,
			Failed:      result.Validation.Failed,
			Skipped:     result.Validation.Skipped,
			SuccessRate: result.Validation.SuccessRate(),
			Passed:      result.Validation.Passed(),
		}).
		WithOutput(summarizer.OutputInfo{
			Path:        result.OutputPath,
			FileSize:    result.ReportBytes,
			Screenshots: result.Screenshots,
		})

	if result.Performance != nil {
		perf := summarizer.PerformanceInfo{
			Interactions: len(result.Performance.Interactions),
			Components:   len(result.Performance.ComponentStats),
			Elements:     len(result.Performance.ElementStats),
		}
		for name, stats := range result.Performance.ComponentStats {
			if stats.Average > perf.SlowestAverageMs {
				perf.SlowestAverageMs = stats.Average
				perf.SlowestComponent = name
			}
		}
		builder = builder.WithPerformance(perf)
	}

	return builder.Build()
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	log := newLogger(cmd.Quiet, cmd.LogLevel)

	fs := osfilesystem.New()
	clock := systemclock.New()

	data, err := fs.ReadFile(cmd.Session)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	var session report.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("parse session: %w", err)
	}

	builder := report.NewBuilderFromSession(session, clock, log)

	log.Info(l10n.T("Rendering report"))
	html, err := builder.GenerateHTML()
	if err != nil {
		log.Error(l10n.F("Failed to render report: %s", err))
		return fmt.Errorf("generate document: %w", err)
	}

	outputPath := cmd.Output
	if outputPath == "" {
		outputPath = filepath.Join(".", builder.DownloadFilename())
	}
	if err := fs.WriteFile(outputPath, html); err != nil {
		log.Error(l10n.F("Failed to write output: %s", err))
		return fmt.Errorf("write output: %w", err)
	}

	log.Info(l10n.F("Report saved to %s", outputPath))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("valreport version %s", version))
	return nil
}

func newLogger(quiet bool, level string) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}
