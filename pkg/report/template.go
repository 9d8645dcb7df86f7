package report

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/user/valreport/pkg/metrics"
)

// documentView is the data bound into the HTML template. All values are
// pre-formatted strings or safe fragments so the template itself stays
// free of formatting logic.
type documentView struct {
	Title       string
	Project     string
	Environment string
	RunID       string
	StartedAt   string
	FinishedAt  string
	Duration    string
	GeneratedAt string

	OverallStatus string
	StatusClass   string
	BannerDataURI template.URL
	HasBanner     bool

	Total       int
	Successful  int
	Failed      int
	Skipped     int
	SuccessRate string

	HasChecks bool
	Checks    []checkView

	HasPerformance bool
	Components     []statsRow
	Elements       []statsRow
	Interactions   []interactionView

	ValidationChartJSON template.JS
	ComponentLabelsJSON template.JS
	ComponentValuesJSON template.JS
	HasComponentChart   bool

	Screenshots []screenshotView
}

type checkView struct {
	Index   int
	Name    string
	Status  string
	Class   string
	Message string
}

type statsRow struct {
	Name    string
	Min     string
	Max     string
	Average string
	Count   int
}

type interactionView struct {
	Name     string
	Duration string
	Started  string
}

type screenshotView struct {
	Name       string
	DataURI    template.URL
	CapturedAt string
}

// buildView flattens the accumulated session state into template data.
// Map iteration order is hidden behind sorted name lists so repeated
// renders of the same state are byte-identical (modulo GeneratedAt).
func buildView(run RunInfo, validation ValidationResults, performance *metrics.Report, screenshots []Screenshot, bannerPNG []byte, now time.Time) documentView {
	view := documentView{
		Title:       fmt.Sprintf("Validation Report - %s", run.Project),
		Project:     run.Project,
		Environment: run.Environment,
		RunID:       run.RunID,
		GeneratedAt: now.Format("2006-01-02 15:04:05 MST"),

		Total:       validation.Total,
		Successful:  validation.Successful,
		Failed:      validation.Failed,
		Skipped:     validation.Skipped,
		SuccessRate: fmt.Sprintf("%.1f%%", validation.SuccessRate()),
	}

	if validation.Passed() {
		view.OverallStatus = "PASSED"
		view.StatusClass = "passed"
	} else {
		view.OverallStatus = "FAILED"
		view.StatusClass = "failed"
	}

	if !run.StartedAt.IsZero() {
		view.StartedAt = run.StartedAt.Format("2006-01-02 15:04:05")
	}
	if !run.FinishedAt.IsZero() {
		view.FinishedAt = run.FinishedAt.Format("2006-01-02 15:04:05")
		view.Duration = run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond).String()
	}

	if len(bannerPNG) > 0 {
		view.HasBanner = true
		view.BannerDataURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(bannerPNG))
	}

	for _, check := range validation.Checks {
		view.Checks = append(view.Checks, checkView{
			Index:   check.Index,
			Name:    check.Name,
			Status:  strings.ToUpper(string(check.Status)),
			Class:   string(check.Status),
			Message: check.Message,
		})
	}
	view.HasChecks = len(view.Checks) > 0

	counts, _ := json.Marshal([]int{validation.Successful, validation.Failed, validation.Skipped})
	view.ValidationChartJSON = template.JS(counts)

	if performance != nil {
		view.HasPerformance = true
		view.Components = statsRows(performance.ComponentStats)
		view.Elements = statsRows(performance.ElementStats)

		for _, interaction := range performance.Interactions {
			view.Interactions = append(view.Interactions, interactionView{
				Name:     interaction.Name,
				Duration: fmt.Sprintf("%.1f ms", float64(interaction.Duration)/float64(time.Millisecond)),
				Started:  interaction.StartTime.Format("15:04:05.000"),
			})
		}

		if len(view.Components) > 0 {
			labels := make([]string, 0, len(view.Components))
			values := make([]float64, 0, len(view.Components))
			for _, name := range sortedKeys(performance.ComponentStats) {
				labels = append(labels, name)
				values = append(values, performance.ComponentStats[name].Average)
			}
			labelsJSON, _ := json.Marshal(labels)
			valuesJSON, _ := json.Marshal(values)
			view.ComponentLabelsJSON = template.JS(labelsJSON)
			view.ComponentValuesJSON = template.JS(valuesJSON)
			view.HasComponentChart = true
		}
	}

	for _, shot := range screenshots {
		view.Screenshots = append(view.Screenshots, screenshotView{
			Name:       shot.Name,
			DataURI:    template.URL(dataURI(shot.ImageData)),
			CapturedAt: shot.CapturedAt.Format("15:04:05"),
		})
	}

	return view
}

func sortedKeys(stats map[string]metrics.Stats) []string {
	keys := make([]string, 0, len(stats))
	for name := range stats {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

func statsRows(stats map[string]metrics.Stats) []statsRow {
	rows := make([]statsRow, 0, len(stats))
	for _, name := range sortedKeys(stats) {
		s := stats[name]
		rows = append(rows, statsRow{
			Name:    name,
			Min:     fmt.Sprintf("%.1f ms", s.Min),
			Max:     fmt.Sprintf("%.1f ms", s.Max),
			Average: fmt.Sprintf("%.1f ms", s.Average),
			Count:   s.Count,
		})
	}
	return rows
}

// dataURI wraps a base64 payload into a data URI, leaving payloads that
// already carry a scheme untouched.
func dataURI(imageData string) string {
	if strings.HasPrefix(imageData, "data:") {
		return imageData
	}
	return "data:image/png;base64," + imageData
}

// renderDocument executes the document template over the view.
func renderDocument(view documentView) ([]byte, error) {
	tmpl, err := template.New("report").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}
