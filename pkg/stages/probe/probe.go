// Package probe implements the browser probe stage: it visits each page of
// the suite, runs the title and element checks, collects performance
// measurements and captures screenshots.
package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/valreport/pkg/metrics"
	"github.com/user/valreport/pkg/pipeline"
	"github.com/user/valreport/pkg/ports"
	"github.com/user/valreport/pkg/report"
)

// Stage probes pages with a headless browser.
type Stage struct {
	browser ports.Browser
	clock   ports.Clock
	sink    ports.DebugSink
	logger  ports.Logger
}

// NewStage creates a new probe stage.
func NewStage(browser ports.Browser, clock ports.Clock, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		browser: browser,
		clock:   clock,
		sink:    sink,
		logger:  logger.WithComponent("probe"),
	}
}

// Execute visits every page in the input and returns the collected checks,
// screenshots and performance snapshot. A page that fails to load yields a
// failed load check and skipped element checks; only browser startup is
// fatal.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	result := pipeline.ProbeResult{}

	if input.Browser.Headless {
		s.logger.Debug("Launching browser in headless mode")
	} else {
		s.logger.Debug("Launching browser in visible mode")
	}
	if err := s.browser.Launch(ctx, input.Browser); err != nil {
		return result, fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		s.browser.Close()
		s.logger.Debug("Browser closed")
	}()

	collector := metrics.NewCollector(s.clock, s.logger)
	index := 0

	for _, pageSpec := range input.Pages {
		s.logger.Debug("Navigating to %s", pageSpec.URL)

		if _, err := collector.StartInteraction("load " + pageSpec.Name); err != nil {
			return result, fmt.Errorf("start interaction: %w", err)
		}
		timing, navErr := s.browser.Navigate(ctx, pageSpec.URL, input.TimeoutMs)
		collector.EndInteraction()

		index++
		loadCheck := report.CheckResult{
			Index: index,
			Name:  fmt.Sprintf("load %s", pageSpec.Name),
		}
		if navErr != nil {
			loadCheck.Status = report.CheckFailed
			loadCheck.Message = navErr.Error()
			result.Checks = append(result.Checks, loadCheck)
			s.logger.Warn("Check failed: %s", loadCheck.Name)

			// Title and element checks cannot run without the page.
			skipped := make([]string, 0, len(pageSpec.Elements)+1)
			if pageSpec.Title != "" {
				skipped = append(skipped, fmt.Sprintf("title of %s", pageSpec.Name))
			}
			for _, element := range pageSpec.Elements {
				skipped = append(skipped, element.Name)
			}
			for _, name := range skipped {
				index++
				result.Checks = append(result.Checks, report.CheckResult{
					Index:   index,
					Name:    name,
					Status:  report.CheckSkipped,
					Message: "page did not load",
				})
				s.logger.Debug("Check skipped: %s", name)
			}
			continue
		}

		loadCheck.Status = report.CheckPassed
		loadCheck.Message = fmt.Sprintf("loaded in %.0f ms", timing.LoadCompleteMs)
		result.Checks = append(result.Checks, loadCheck)
		s.logger.Debug("Page %q loaded in %.0f ms", pageSpec.Name, timing.LoadCompleteMs)

		collector.RecordComponentLoad(pageSpec.Name, timing.LoadCompleteMs)

		if pageSpec.Title != "" {
			index++
			check := report.CheckResult{Index: index, Name: fmt.Sprintf("title of %s", pageSpec.Name)}

			title, err := s.browser.PageTitle(ctx)
			switch {
			case err != nil:
				check.Status = report.CheckFailed
				check.Message = err.Error()
				s.logger.Warn("Check failed: %s", check.Name)
			case strings.Contains(title, pageSpec.Title):
				check.Status = report.CheckPassed
				check.Message = fmt.Sprintf("title %q contains %q", title, pageSpec.Title)
				s.logger.Debug("Check passed: %s", check.Name)
			default:
				check.Status = report.CheckFailed
				check.Message = fmt.Sprintf("title %q does not contain %q", title, pageSpec.Title)
				s.logger.Warn("Check failed: %s", check.Name)
			}
			result.Checks = append(result.Checks, check)
		}

		elementTimings, err := s.browser.ElementTimings(ctx)
		if err == nil {
			for _, timing := range elementTimings {
				collector.RecordElementTiming(timing.Identifier, timing.RenderTimeMs)
			}
		} else {
			s.logger.Warn("No element timings reported by page %q", pageSpec.Name)
		}

		for _, element := range pageSpec.Elements {
			index++
			check := report.CheckResult{Index: index, Name: element.Name}

			exists, err := s.browser.ElementExists(ctx, element.Selector)
			switch {
			case err != nil:
				check.Status = report.CheckFailed
				check.Message = err.Error()
				s.logger.Warn("Check failed: %s", check.Name)
			case exists:
				check.Status = report.CheckPassed
				check.Message = fmt.Sprintf("selector %s matched", element.Selector)
				s.logger.Debug("Check passed: %s", check.Name)
			case element.Optional:
				check.Status = report.CheckSkipped
				check.Message = fmt.Sprintf("optional selector %s not found", element.Selector)
				s.logger.Debug("Check skipped: %s", check.Name)
			default:
				check.Status = report.CheckFailed
				check.Message = fmt.Sprintf("selector %s not found", element.Selector)
				s.logger.Warn("Check failed: %s", check.Name)
			}
			result.Checks = append(result.Checks, check)
		}

		png, err := s.browser.CaptureScreenshot(ctx)
		if err != nil {
			s.logger.Warn("Failed to capture screenshot of %q: %s", pageSpec.Name, err)
			continue
		}
		result.Screenshots = append(result.Screenshots, pipeline.CapturedScreenshot{
			Name: pageSpec.Name,
			PNG:  png,
		})
		s.logger.Debug("Captured screenshot %q", pageSpec.Name)

		if s.sink.Enabled() {
			s.sink.SaveScreenshot(len(result.Screenshots)-1, pageSpec.Name, png)
		}
	}

	result.Performance = collector.Report()
	return result, nil
}
