// Package report accumulates validation outcomes, performance data and
// screenshots, and renders them into one self-contained HTML document.
package report

import (
	"errors"
	"time"

	"github.com/user/valreport/pkg/metrics"
)

// ErrMissingValidationResults is returned by GenerateHTML when no validation
// results were set. The summary table reads their fields directly, so the
// document cannot be produced without them.
var ErrMissingValidationResults = errors.New("validation results not set")

// Screenshot is one captured page image. Immutable once added; display
// order is insertion order.
type Screenshot struct {
	Name       string    `json:"name"`
	ImageData  string    `json:"image_data"`
	CapturedAt time.Time `json:"captured_at"`
}

// CheckStatus is the outcome of a single validation check.
type CheckStatus string

const (
	CheckPassed  CheckStatus = "passed"
	CheckFailed  CheckStatus = "failed"
	CheckSkipped CheckStatus = "skipped"
)

// CheckResult is one validation check outcome.
type CheckResult struct {
	Index   int         `json:"index"`
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}

// ValidationResults holds the validation counters and per-check detail.
// Total is caller-supplied and is not cross-checked against the other
// counters.
type ValidationResults struct {
	Total      int           `json:"total"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Skipped    int           `json:"skipped"`
	Checks     []CheckResult `json:"checks,omitempty"`
}

// SuccessRate returns the successful/total percentage, or 0 when Total is 0.
func (v ValidationResults) SuccessRate() float64 {
	if v.Total == 0 {
		return 0
	}
	return float64(v.Successful) / float64(v.Total) * 100
}

// Passed reports whether the run had no failed checks.
func (v ValidationResults) Passed() bool {
	return v.Failed == 0
}

// RunInfo describes the validation run shown in the report header.
type RunInfo struct {
	Project     string    `json:"project"`
	Environment string    `json:"environment"`
	RunID       string    `json:"run_id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Session is the full accumulated state behind one rendered document. The
// debug sink saves it as JSON and the render subcommand rebuilds a Builder
// from it.
type Session struct {
	Run         RunInfo            `json:"run"`
	Validation  *ValidationResults `json:"validation,omitempty"`
	Performance *metrics.Report    `json:"performance,omitempty"`
	Screenshots []Screenshot       `json:"screenshots"`
}
