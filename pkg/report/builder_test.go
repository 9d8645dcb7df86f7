package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/valreport/pkg/metrics"
	"github.com/user/valreport/pkg/mocks"
)

func newTestBuilder(step time.Duration) *Builder {
	clock := mocks.NewClock(time.Date(2025, 11, 2, 14, 30, 0, 0, time.UTC), step)
	return NewBuilder(clock, mocks.NewLogger())
}

func TestBuilder_GenerateHTML_MissingValidationResults(t *testing.T) {
	b := newTestBuilder(time.Second)

	_, err := b.GenerateHTML()
	if !errors.Is(err, ErrMissingValidationResults) {
		t.Fatalf("expected ErrMissingValidationResults, got %v", err)
	}
}

func TestBuilder_GenerateHTML_Summary(t *testing.T) {
	b := newTestBuilder(time.Second)
	b.SetRunInfo(RunInfo{Project: "Checkout", Environment: "staging", RunID: "run-42"})
	b.SetValidationResults(ValidationResults{Total: 10, Successful: 7, Failed: 2, Skipped: 1})

	if err := b.AddScreenshot("login", "aW1nQQ=="); err != nil {
		t.Fatalf("AddScreenshot failed: %v", err)
	}
	if err := b.AddScreenshot("dashboard", "aW1nQg=="); err != nil {
		t.Fatalf("AddScreenshot failed: %v", err)
	}

	html, err := b.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}

	doc := string(html)
	for _, want := range []string{">10<", ">7<", ">2<", ">1<", "70.0%", "Checkout", "staging", "run-42"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// Screenshots appear in insertion order.
	loginIdx := strings.Index(doc, "login")
	dashIdx := strings.Index(doc, "dashboard")
	if loginIdx == -1 || dashIdx == -1 {
		t.Fatal("document missing screenshot entries")
	}
	if loginIdx > dashIdx {
		t.Error("screenshots out of insertion order")
	}
}

func TestBuilder_GenerateHTML_FailedStatus(t *testing.T) {
	b := newTestBuilder(time.Second)
	b.SetValidationResults(ValidationResults{Total: 3, Successful: 1, Failed: 2})

	html, err := b.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}
	if !strings.Contains(string(html), "FAILED") {
		t.Error("document should carry FAILED status when checks failed")
	}
}

func TestBuilder_GenerateHTML_ChecksListed(t *testing.T) {
	b := newTestBuilder(time.Second)
	b.SetValidationResults(ValidationResults{
		Total: 2, Successful: 1, Failed: 1,
		Checks: []CheckResult{
			{Index: 1, Name: "login form present", Status: CheckPassed, Message: "found #login"},
			{Index: 2, Name: "cart badge present", Status: CheckFailed, Message: "selector .cart-badge not found"},
		},
	})

	html, err := b.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}

	doc := string(html)
	for _, want := range []string{"login form present", "cart badge present", "selector .cart-badge not found", "PASSED", "FAILED"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestBuilder_GenerateHTML_PerformanceTables(t *testing.T) {
	b := newTestBuilder(time.Second)
	b.SetValidationResults(ValidationResults{Total: 1, Successful: 1})
	b.SetPerformanceData(&metrics.Report{
		ComponentStats: map[string]metrics.Stats{
			"header": {Min: 80, Max: 120, Average: 100, Count: 3},
			"footer": {Min: 40, Max: 40, Average: 40, Count: 1},
		},
		ElementStats: map[string]metrics.Stats{
			"hero-image": {Min: 250, Max: 350, Average: 300, Count: 2},
		},
		Interactions: []metrics.Interaction{
			{Name: "search", Duration: 150 * time.Millisecond},
		},
	})

	html, err := b.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}

	doc := string(html)
	for _, want := range []string{"header", "footer", "hero-image", "100.0 ms", "300.0 ms", "search", "150.0 ms"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// Sorted table order: footer row before header row. Match the table
	// cells within the component section so CSS rules and other markup
	// mentioning the same words do not interfere.
	start := strings.Index(doc, "Component Load Times")
	if start == -1 {
		t.Fatal("document missing component table section")
	}
	section := doc[start:]
	footerIdx := strings.Index(section, "<td>footer</td>")
	headerIdx := strings.Index(section, "<td>header</td>")
	if footerIdx == -1 || headerIdx == -1 {
		t.Fatal("component table rows missing")
	}
	if footerIdx > headerIdx {
		t.Error("component rows not sorted by name")
	}
}

func TestBuilder_GenerateHTML_Deterministic(t *testing.T) {
	// Zero-step clock keeps GeneratedAt fixed, so output must be identical.
	b := newTestBuilder(0)
	b.SetValidationResults(ValidationResults{Total: 5, Successful: 5})
	b.SetPerformanceData(&metrics.Report{
		ComponentStats: map[string]metrics.Stats{
			"a": {Min: 1, Max: 2, Average: 1.5, Count: 2},
			"b": {Min: 3, Max: 4, Average: 3.5, Count: 2},
			"c": {Min: 5, Max: 6, Average: 5.5, Count: 2},
		},
	})

	first, err := b.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}
	second, err := b.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("repeated renders of unchanged state differ")
	}
}

func TestBuilder_AddScreenshot_EmptyName(t *testing.T) {
	b := newTestBuilder(time.Second)

	if err := b.AddScreenshot("", "aW1n"); err == nil {
		t.Error("expected error for empty screenshot name")
	}
}

func TestBuilder_AddScreenshot_OrderIndependentOfSetters(t *testing.T) {
	b := newTestBuilder(time.Second)

	if err := b.AddScreenshot("first", "QQ=="); err != nil {
		t.Fatalf("AddScreenshot failed: %v", err)
	}
	b.SetValidationResults(ValidationResults{Total: 1, Successful: 1})
	if err := b.AddScreenshot("second", "Qg=="); err != nil {
		t.Fatalf("AddScreenshot failed: %v", err)
	}
	b.SetPerformanceData(&metrics.Report{})
	if err := b.AddScreenshot("third", "Qw=="); err != nil {
		t.Fatalf("AddScreenshot failed: %v", err)
	}

	session := b.Session()
	if len(session.Screenshots) != 3 {
		t.Fatalf("expected 3 screenshots, got %d", len(session.Screenshots))
	}
	for i, want := range []string{"first", "second", "third"} {
		if session.Screenshots[i].Name != want {
			t.Errorf("screenshot %d = %q, want %q", i, session.Screenshots[i].Name, want)
		}
	}
}

func TestBuilder_DownloadFilename(t *testing.T) {
	b := newTestBuilder(time.Second)

	if got, want := b.DownloadFilename(), "validation_report_2025-11-02.html"; got != want {
		t.Errorf("DownloadFilename = %q, want %q", got, want)
	}
}

func TestBuilder_SessionRoundTrip(t *testing.T) {
	b := newTestBuilder(0)
	b.SetRunInfo(RunInfo{Project: "Checkout", RunID: "run-7"})
	b.SetValidationResults(ValidationResults{Total: 4, Successful: 3, Failed: 1})
	b.SetPerformanceData(&metrics.Report{
		ComponentStats: map[string]metrics.Stats{"nav": {Min: 10, Max: 20, Average: 15, Count: 2}},
	})
	if err := b.AddScreenshot("home", "aG9tZQ=="); err != nil {
		t.Fatalf("AddScreenshot failed: %v", err)
	}

	data, err := json.Marshal(b.Session())
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		t.Fatalf("unmarshal session: %v", err)
	}

	clock := mocks.NewClock(time.Date(2025, 11, 2, 14, 30, 0, 0, time.UTC), 0)
	restored := NewBuilderFromSession(session, clock, mocks.NewLogger())

	original, err := b.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}
	rebuilt, err := restored.GenerateHTML()
	if err != nil {
		t.Fatalf("GenerateHTML from session failed: %v", err)
	}

	if !bytes.Equal(original, rebuilt) {
		t.Error("document rebuilt from session differs from original")
	}
}
