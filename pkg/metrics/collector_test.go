package metrics

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/user/valreport/pkg/mocks"
)

func newTestCollector() (*Collector, *mocks.Logger) {
	clock := mocks.NewClock(time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC), 50*time.Millisecond)
	logger := mocks.NewLogger()
	return NewCollector(clock, logger), logger
}

func TestCollector_StartEndInteraction(t *testing.T) {
	c, _ := newTestCollector()

	if _, err := c.StartInteraction("login"); err != nil {
		t.Fatalf("StartInteraction failed: %v", err)
	}
	c.EndInteraction()

	report := c.Report()
	if len(report.Interactions) != 1 {
		t.Fatalf("expected 1 interaction, got %d", len(report.Interactions))
	}

	got := report.Interactions[0]
	if got.Name != "login" {
		t.Errorf("expected name 'login', got %q", got.Name)
	}
	if got.EndTime.Before(got.StartTime) {
		t.Errorf("EndTime %v before StartTime %v", got.EndTime, got.StartTime)
	}
	if got.Duration < 0 {
		t.Errorf("expected non-negative duration, got %v", got.Duration)
	}
	if got.Duration != got.EndTime.Sub(got.StartTime) {
		t.Errorf("duration %v does not match EndTime-StartTime %v", got.Duration, got.EndTime.Sub(got.StartTime))
	}
}

func TestCollector_StartInteraction_EmptyName(t *testing.T) {
	c, _ := newTestCollector()

	if _, err := c.StartInteraction(""); err == nil {
		t.Error("expected error for empty interaction name")
	}
}

func TestCollector_EndInteraction_NoneInFlight(t *testing.T) {
	c, _ := newTestCollector()

	// Must be a no-op, not a fault.
	c.EndInteraction()

	if n := len(c.Report().Interactions); n != 0 {
		t.Errorf("expected empty history, got %d interactions", n)
	}
}

func TestCollector_StartInteraction_DiscardsInFlight(t *testing.T) {
	c, logger := newTestCollector()

	if _, err := c.StartInteraction("first"); err != nil {
		t.Fatalf("StartInteraction failed: %v", err)
	}
	if _, err := c.StartInteraction("second"); err != nil {
		t.Fatalf("StartInteraction failed: %v", err)
	}
	c.EndInteraction()

	report := c.Report()
	if len(report.Interactions) != 1 {
		t.Fatalf("expected exactly 1 interaction, got %d", len(report.Interactions))
	}
	if report.Interactions[0].Name != "second" {
		t.Errorf("expected surviving interaction 'second', got %q", report.Interactions[0].Name)
	}

	if len(logger.WarnMessages) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(logger.WarnMessages))
	}
	if !strings.Contains(logger.WarnMessages[0], "first") {
		t.Errorf("warning should name the discarded interaction: %q", logger.WarnMessages[0])
	}
}

func TestCollector_RecordComponentLoad(t *testing.T) {
	c, _ := newTestCollector()

	c.RecordComponentLoad("header", 120)
	c.RecordComponentLoad("header", 80)
	c.RecordComponentLoad("header", 100)
	c.RecordComponentLoad("footer", 40)

	report := c.Report()

	header, ok := report.ComponentStats["header"]
	if !ok {
		t.Fatal("missing stats for 'header'")
	}
	want := Stats{Min: 80, Max: 120, Average: 100, Count: 3}
	if header != want {
		t.Errorf("header stats = %+v, want %+v", header, want)
	}

	footer := report.ComponentStats["footer"]
	if footer.Count != 1 || footer.Average != 40 {
		t.Errorf("footer stats = %+v, want count 1 average 40", footer)
	}
}

func TestCollector_RecordElementTiming(t *testing.T) {
	c, _ := newTestCollector()

	c.RecordElementTiming("hero-image", 350)
	c.RecordElementTiming("hero-image", 250)

	stats, ok := c.Report().ElementStats["hero-image"]
	if !ok {
		t.Fatal("missing stats for 'hero-image'")
	}
	if stats.Min != 250 || stats.Max != 350 || stats.Average != 300 || stats.Count != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestCollector_Report_Repeatable(t *testing.T) {
	c, _ := newTestCollector()

	c.RecordComponentLoad("nav", 10)
	c.RecordElementTiming("logo", 5)
	if _, err := c.StartInteraction("search"); err != nil {
		t.Fatalf("StartInteraction failed: %v", err)
	}
	c.EndInteraction()

	first := c.Report()
	second := c.Report()

	// Equal except for the capture timestamp.
	second.GeneratedAt = first.GeneratedAt
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated reports differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCollector_Report_Snapshot(t *testing.T) {
	c, _ := newTestCollector()

	c.RecordComponentLoad("nav", 10)
	report := c.Report()

	// Recording after the snapshot must not change it.
	c.RecordComponentLoad("nav", 1000)
	if _, err := c.StartInteraction("late"); err != nil {
		t.Fatalf("StartInteraction failed: %v", err)
	}
	c.EndInteraction()

	if report.ComponentStats["nav"].Count != 1 {
		t.Errorf("snapshot changed after later recording: %+v", report.ComponentStats["nav"])
	}
	if len(report.Interactions) != 0 {
		t.Errorf("snapshot gained %d interactions recorded after capture", len(report.Interactions))
	}
}

func TestCollector_Report_EmptySeriesOmitted(t *testing.T) {
	c, _ := newTestCollector()

	report := c.Report()
	if len(report.ComponentStats) != 0 || len(report.ElementStats) != 0 {
		t.Errorf("expected no stats for empty collector, got %+v / %+v",
			report.ComponentStats, report.ElementStats)
	}
}
