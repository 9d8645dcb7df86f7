package ports

import "image"

// DebugSink abstracts debug output for intermediate results. It allows
// saving the raw material of a report for inspection and offline rendering.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSessionJSON saves the full report session as JSON. The render
	// subcommand can rebuild a report from this file.
	SaveSessionJSON(data []byte) error

	// SaveMetricsJSON saves the performance report snapshot as JSON.
	SaveMetricsJSON(data []byte) error

	// SaveScreenshot saves one captured screenshot.
	SaveScreenshot(index int, name string, data []byte) error

	// SaveBanner saves the rendered status banner image.
	SaveBanner(img image.Image) error

	// SaveReportHTML saves a copy of the generated document.
	SaveReportHTML(data []byte) error
}
