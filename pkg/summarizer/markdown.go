package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts a Summary to Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Validation Summary\n\n")

	status := "PASSED"
	if !summary.Checks.Passed {
		status = "FAILED"
	}
	sb.WriteString(fmt.Sprintf("**%s** — %s", status, summary.Run.Project))
	if summary.Run.Environment != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", summary.Run.Environment))
	}
	sb.WriteString("\n\n")

	sb.WriteString("## Run\n\n")
	if summary.Run.RunID != "" {
		sb.WriteString(fmt.Sprintf("- Run ID: %s\n", summary.Run.RunID))
	}
	if !summary.Run.StartedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("- Started: %s\n", summary.Run.StartedAt.Format("2006-01-02 15:04:05")))
	}
	sb.WriteString(fmt.Sprintf("- Duration: %d ms\n\n", summary.Run.DurationMs))

	sb.WriteString("## Checks\n\n")
	sb.WriteString("| Total | Successful | Failed | Skipped | Success Rate |\n")
	sb.WriteString("|-------|------------|--------|---------|--------------|\n")
	sb.WriteString(fmt.Sprintf("| %d | %d | %d | %d | %.1f%% |\n\n",
		summary.Checks.Total,
		summary.Checks.Successful,
		summary.Checks.Failed,
		summary.Checks.Skipped,
		summary.Checks.SuccessRate))

	sb.WriteString("## Performance\n\n")
	sb.WriteString(fmt.Sprintf("- Interactions timed: %d\n", summary.Performance.Interactions))
	sb.WriteString(fmt.Sprintf("- Components measured: %d\n", summary.Performance.Components))
	sb.WriteString(fmt.Sprintf("- Elements measured: %d\n", summary.Performance.Elements))
	if summary.Performance.SlowestComponent != "" {
		sb.WriteString(fmt.Sprintf("- Slowest component: %s (%.1f ms average)\n",
			summary.Performance.SlowestComponent, summary.Performance.SlowestAverageMs))
	}
	sb.WriteString("\n")

	sb.WriteString("## Output\n\n")
	sb.WriteString(fmt.Sprintf("- Report: %s (%s)\n", summary.Output.Path, formatBytes(summary.Output.FileSize)))
	sb.WriteString(fmt.Sprintf("- Screenshots: %d\n\n", summary.Output.Screenshots))

	sb.WriteString(fmt.Sprintf("Generated at %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05")))

	return sb.String()
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n int) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

var _ Formatter = (*MarkdownFormatter)(nil)
