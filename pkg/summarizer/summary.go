// Package summarizer provides summary generation for validation runs.
package summarizer

import "time"

// Summary contains all data reported after a validation run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Run information
	Run RunDetail

	// Check outcome totals
	Checks CheckTotals

	// Performance measurement counts
	Performance PerformanceInfo

	// Report output details
	Output OutputInfo
}

// RunDetail describes the validation run.
type RunDetail struct {
	Project     string
	Environment string
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	DurationMs  int
}

// CheckTotals contains the validation counters.
type CheckTotals struct {
	Total       int
	Successful  int
	Failed      int
	Skipped     int
	SuccessRate float64 // percentage
	Passed      bool
}

// PerformanceInfo contains measurement counts and the slowest component.
type PerformanceInfo struct {
	Interactions     int
	Components       int
	Elements         int
	SlowestComponent string
	SlowestAverageMs float64
}

// OutputInfo contains information about the written report.
type OutputInfo struct {
	Path        string
	FileSize    int
	Screenshots int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRun sets run information.
func (b *Builder) WithRun(run RunDetail) *Builder {
	b.summary.Run = run
	return b
}

// WithChecks sets check outcome totals.
func (b *Builder) WithChecks(checks CheckTotals) *Builder {
	b.summary.Checks = checks
	return b
}

// WithPerformance sets performance measurement counts.
func (b *Builder) WithPerformance(performance PerformanceInfo) *Builder {
	b.summary.Performance = performance
	return b
}

// WithOutput sets report output details.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
