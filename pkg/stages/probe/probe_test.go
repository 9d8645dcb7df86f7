package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/user/valreport/pkg/mocks"
	"github.com/user/valreport/pkg/pipeline"
	"github.com/user/valreport/pkg/ports"
	"github.com/user/valreport/pkg/report"
)

func newTestStage(browser *mocks.Browser) (*Stage, *mocks.Sink) {
	clock := mocks.NewClock(time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC), 25*time.Millisecond)
	sink := mocks.NewSink()
	return NewStage(browser, clock, sink, mocks.NewLogger()), sink
}

func testInput(pages ...pipeline.PageSpec) pipeline.ProbeInput {
	input := pipeline.DefaultProbeInput()
	input.Pages = pages
	return input
}

func TestStage_Execute(t *testing.T) {
	browser := &mocks.Browser{
		NavigateFunc: func(ctx context.Context, url string, timeoutMs int) (ports.PageTiming, error) {
			return ports.PageTiming{DOMContentLoadedMs: 120, LoadCompleteMs: 340}, nil
		},
		ElementExistsFunc: func(ctx context.Context, selector string) (bool, error) {
			return selector == "#nav", nil
		},
		ElementTimingsFunc: func(ctx context.Context) ([]ports.ElementTiming, error) {
			return []ports.ElementTiming{{Identifier: "hero", RenderTimeMs: 210}}, nil
		},
		CaptureScreenshotFunc: func(ctx context.Context) ([]byte, error) {
			return []byte("png-data"), nil
		},
	}
	stage, sink := newTestStage(browser)

	result, err := stage.Execute(context.Background(), testInput(pipeline.PageSpec{
		Name: "home",
		URL:  "https://example.com",
		Elements: []pipeline.ElementSpec{
			{Name: "nav bar present", Selector: "#nav"},
			{Name: "cart badge present", Selector: ".cart-badge"},
			{Name: "promo present", Selector: ".promo", Optional: true},
		},
	}))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Checks) != 4 {
		t.Fatalf("expected 4 checks (load + 3 elements), got %d", len(result.Checks))
	}

	wantStatuses := []report.CheckStatus{
		report.CheckPassed,  // load home
		report.CheckPassed,  // nav bar
		report.CheckFailed,  // cart badge
		report.CheckSkipped, // promo (optional)
	}
	for i, want := range wantStatuses {
		if result.Checks[i].Status != want {
			t.Errorf("check %d (%s) = %s, want %s", i, result.Checks[i].Name, result.Checks[i].Status, want)
		}
		if result.Checks[i].Index != i+1 {
			t.Errorf("check %d has index %d", i, result.Checks[i].Index)
		}
	}

	// Performance: page load sample plus the reported element timing.
	if result.Performance == nil {
		t.Fatal("missing performance report")
	}
	if stats, ok := result.Performance.ComponentStats["home"]; !ok || stats.Average != 340 {
		t.Errorf("component stats for 'home' = %+v", result.Performance.ComponentStats)
	}
	if stats, ok := result.Performance.ElementStats["hero"]; !ok || stats.Average != 210 {
		t.Errorf("element stats for 'hero' = %+v", result.Performance.ElementStats)
	}
	if len(result.Performance.Interactions) != 1 || result.Performance.Interactions[0].Name != "load home" {
		t.Errorf("interactions = %+v", result.Performance.Interactions)
	}

	// Screenshot captured and saved to the sink.
	if len(result.Screenshots) != 1 || result.Screenshots[0].Name != "home" {
		t.Fatalf("screenshots = %+v", result.Screenshots)
	}
	if _, ok := sink.Screenshots["home"]; !ok {
		t.Error("screenshot not saved to debug sink")
	}
}

func TestStage_Execute_TitleCheck(t *testing.T) {
	browser := &mocks.Browser{
		PageTitleFunc: func(ctx context.Context) (string, error) {
			return "Acme Shop - Home", nil
		},
	}
	stage, _ := newTestStage(browser)

	result, err := stage.Execute(context.Background(),
		testInput(
			pipeline.PageSpec{Name: "home", URL: "https://example.com", Title: "Acme Shop"},
			pipeline.PageSpec{Name: "cart", URL: "https://example.com/cart", Title: "Your Cart"},
		))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Per page: load check + title check.
	if len(result.Checks) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(result.Checks))
	}

	home := result.Checks[1]
	if home.Name != "title of home" || home.Status != report.CheckPassed {
		t.Errorf("home title check = %+v", home)
	}
	cart := result.Checks[3]
	if cart.Status != report.CheckFailed {
		t.Errorf("cart title check = %+v", cart)
	}
	if !strings.Contains(cart.Message, "does not contain") {
		t.Errorf("cart title check message = %q", cart.Message)
	}
}

func TestStage_Execute_TitleCheckError(t *testing.T) {
	browser := &mocks.Browser{
		PageTitleFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("target closed")
		},
	}
	stage, _ := newTestStage(browser)

	result, err := stage.Execute(context.Background(), testInput(pipeline.PageSpec{
		Name: "home", URL: "https://example.com", Title: "Acme Shop",
	}))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Checks[1].Status != report.CheckFailed {
		t.Errorf("title check = %+v", result.Checks[1])
	}
}

func TestStage_Execute_NavigationFailure(t *testing.T) {
	browser := &mocks.Browser{
		NavigateFunc: func(ctx context.Context, url string, timeoutMs int) (ports.PageTiming, error) {
			return ports.PageTiming{}, fmt.Errorf("navigate %s: timeout", url)
		},
	}
	stage, _ := newTestStage(browser)

	result, err := stage.Execute(context.Background(), testInput(pipeline.PageSpec{
		Name:  "checkout",
		URL:   "https://example.com/checkout",
		Title: "Checkout",
		Elements: []pipeline.ElementSpec{
			{Name: "pay button present", Selector: "#pay"},
		},
	}))
	if err != nil {
		t.Fatalf("page-level failures must not fail the stage: %v", err)
	}

	if len(result.Checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(result.Checks))
	}
	if result.Checks[0].Status != report.CheckFailed {
		t.Errorf("load check = %s, want failed", result.Checks[0].Status)
	}
	if !strings.Contains(result.Checks[0].Message, "timeout") {
		t.Errorf("load check message should carry the cause: %q", result.Checks[0].Message)
	}
	// Title and element checks are skipped without the page.
	if result.Checks[1].Name != "title of checkout" || result.Checks[1].Status != report.CheckSkipped {
		t.Errorf("title check = %+v", result.Checks[1])
	}
	if result.Checks[2].Status != report.CheckSkipped {
		t.Errorf("element check = %s, want skipped", result.Checks[2].Status)
	}

	if len(result.Screenshots) != 0 {
		t.Error("no screenshot should be captured for a page that did not load")
	}
	// The failed load still timed an interaction.
	if len(result.Performance.Interactions) != 1 {
		t.Errorf("interactions = %+v", result.Performance.Interactions)
	}
	if len(result.Performance.ComponentStats) != 0 {
		t.Errorf("no component sample expected for a failed load: %+v", result.Performance.ComponentStats)
	}
}

func TestStage_Execute_LaunchFailure(t *testing.T) {
	browser := &mocks.Browser{
		LaunchFunc: func(ctx context.Context, opts ports.BrowserOptions) error {
			return errors.New("chrome not found")
		},
	}
	stage, _ := newTestStage(browser)

	if _, err := stage.Execute(context.Background(), testInput()); err == nil {
		t.Fatal("expected error when the browser cannot launch")
	}
}

func TestStage_Execute_ScreenshotFailureIsNonFatal(t *testing.T) {
	browser := &mocks.Browser{
		CaptureScreenshotFunc: func(ctx context.Context) ([]byte, error) {
			return nil, errors.New("target closed")
		},
	}
	stage, _ := newTestStage(browser)

	result, err := stage.Execute(context.Background(), testInput(pipeline.PageSpec{
		Name: "home", URL: "https://example.com",
	}))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Screenshots) != 0 {
		t.Errorf("screenshots = %+v", result.Screenshots)
	}
	// The load check still counts.
	if len(result.Checks) != 1 || result.Checks[0].Status != report.CheckPassed {
		t.Errorf("checks = %+v", result.Checks)
	}
}
