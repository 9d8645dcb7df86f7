package report

import (
	"fmt"

	"github.com/user/valreport/pkg/metrics"
	"github.com/user/valreport/pkg/ports"
)

// Builder accumulates the inputs for one report session and renders the
// document on request. It is not safe for concurrent use; a single caller
// drives it.
type Builder struct {
	clock  ports.Clock
	logger ports.Logger

	run         RunInfo
	screenshots []Screenshot
	validation  *ValidationResults
	performance *metrics.Report
	bannerPNG   []byte
}

// NewBuilder creates a Builder using the given clock and logger.
func NewBuilder(clock ports.Clock, logger ports.Logger) *Builder {
	return &Builder{
		clock:  clock,
		logger: logger.WithComponent("report"),
	}
}

// NewBuilderFromSession restores a Builder from a saved session, for
// offline rendering.
func NewBuilderFromSession(session Session, clock ports.Clock, logger ports.Logger) *Builder {
	b := NewBuilder(clock, logger)
	b.run = session.Run
	b.screenshots = append(b.screenshots, session.Screenshots...)
	b.validation = session.Validation
	b.performance = session.Performance
	return b
}

// SetRunInfo sets the run metadata shown in the report header.
func (b *Builder) SetRunInfo(run RunInfo) {
	b.run = run
}

// AddScreenshot appends a screenshot to the gallery, stamped with the
// current time. The image data is an embeddable payload (base64 PNG);
// its encoding is the caller's responsibility.
func (b *Builder) AddScreenshot(name, imageData string) error {
	if name == "" {
		return fmt.Errorf("screenshot name is empty")
	}

	b.screenshots = append(b.screenshots, Screenshot{
		Name:       name,
		ImageData:  imageData,
		CapturedAt: b.clock.Now(),
	})
	b.logger.Debug("Screenshot %q added (%d total)", name, len(b.screenshots))
	return nil
}

// SetPerformanceData stores the performance report snapshot for rendering,
// replacing any prior value.
func (b *Builder) SetPerformanceData(report *metrics.Report) {
	b.performance = report
}

// SetValidationResults stores the validation results for rendering,
// replacing any prior value.
func (b *Builder) SetValidationResults(results ValidationResults) {
	b.validation = &results
}

// SetBanner stores a PNG status banner image to embed at the top of the
// document.
func (b *Builder) SetBanner(pngData []byte) {
	b.bannerPNG = pngData
}

// Session returns the accumulated state as a serializable session.
func (b *Builder) Session() Session {
	return Session{
		Run:         b.run,
		Validation:  b.validation,
		Performance: b.performance,
		Screenshots: b.screenshots,
	}
}

// GenerateHTML renders the accumulated state into one self-contained HTML
// document. It returns ErrMissingValidationResults when validation results
// were never set; nothing partial is produced on error. Output is a
// deterministic function of the accumulated state, except for the embedded
// generated-at timestamp.
func (b *Builder) GenerateHTML() ([]byte, error) {
	if b.validation == nil {
		return nil, ErrMissingValidationResults
	}

	view := buildView(b.run, *b.validation, b.performance, b.screenshots, b.bannerPNG, b.clock.Now())
	data, err := renderDocument(view)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	b.logger.Debug("Report rendered: %d bytes, %d screenshots", len(data), len(b.screenshots))
	return data, nil
}

// DownloadFilename returns the date-stamped filename for the downloadable
// artifact, using the current date.
func (b *Builder) DownloadFilename() string {
	return fmt.Sprintf("validation_report_%s.html", b.clock.Now().Format("2006-01-02"))
}
