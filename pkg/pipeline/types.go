package pipeline

import (
	"github.com/user/valreport/pkg/metrics"
	"github.com/user/valreport/pkg/ports"
	"github.com/user/valreport/pkg/report"
)

// =============================================================================
// Probe Stage Types
// =============================================================================

// ElementSpec is one element-presence check within a page.
type ElementSpec struct {
	// Name is the human-readable check name shown in the report.
	Name string
	// Selector is the CSS selector that must match.
	Selector string
	// Optional marks the check as skipped rather than failed when the
	// selector does not match.
	Optional bool
}

// PageSpec is one page to probe.
type PageSpec struct {
	Name string
	URL  string
	// Title, when non-empty, adds a check that the page title contains it.
	Title    string
	Elements []ElementSpec
}

// ProbeInput contains parameters for the browser probe.
type ProbeInput struct {
	Pages     []PageSpec
	Browser   ports.BrowserOptions
	TimeoutMs int
}

// DefaultProbeInput returns ProbeInput with default values.
func DefaultProbeInput() ProbeInput {
	return ProbeInput{
		Browser: ports.BrowserOptions{
			Headless:       true,
			ViewportWidth:  1280,
			ViewportHeight: 800,
			Incognito:      true,
		},
		TimeoutMs: 30000,
	}
}

// CapturedScreenshot is a raw screenshot taken during the probe.
type CapturedScreenshot struct {
	Name string
	PNG  []byte
}

// ProbeResult contains everything collected while probing the pages.
type ProbeResult struct {
	Checks      []report.CheckResult
	Screenshots []CapturedScreenshot
	Performance *metrics.Report
}

// =============================================================================
// Banner Stage Types
// =============================================================================

// BannerInput contains parameters for status banner generation.
type BannerInput struct {
	Width      int
	Height     int
	Run        report.RunInfo
	Validation report.ValidationResults
}

// BannerResult contains the rendered banner.
type BannerResult struct {
	PNG []byte
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput contains the accumulated session inputs for document rendering.
type RenderInput struct {
	Run         report.RunInfo
	Validation  report.ValidationResults
	Performance *metrics.Report
	Screenshots []CapturedScreenshot
	Banner      []byte

	// ThumbnailWidth bounds embedded screenshot width (0 keeps originals).
	ThumbnailWidth int
}

// RenderResult contains the rendered document.
type RenderResult struct {
	HTML     []byte
	Filename string
	Session  report.Session
}
