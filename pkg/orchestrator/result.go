package orchestrator

import (
	"github.com/user/valreport/pkg/metrics"
	"github.com/user/valreport/pkg/report"
)

// RunResult contains the outcome of a validation run, used for the
// post-run summary.
type RunResult struct {
	OutputPath string

	Run        report.RunInfo
	Validation report.ValidationResults

	Performance *metrics.Report
	Screenshots int
	ReportBytes int
}
