package render

import (
	"context"
	"encoding/base64"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/user/valreport/pkg/metrics"
	"github.com/user/valreport/pkg/mocks"
	"github.com/user/valreport/pkg/pipeline"
	"github.com/user/valreport/pkg/report"
)

func testInput() pipeline.RenderInput {
	return pipeline.RenderInput{
		Run: report.RunInfo{
			Project:     "Shop",
			Environment: "staging",
			RunID:       "run-20251102-090000",
		},
		Validation: report.ValidationResults{
			Total:      3,
			Successful: 2,
			Failed:     1,
			Checks: []report.CheckResult{
				{Index: 1, Name: "load home", Status: report.CheckPassed},
				{Index: 2, Name: "nav bar present", Status: report.CheckPassed},
				{Index: 3, Name: "cart badge present", Status: report.CheckFailed, Message: "not found"},
			},
		},
		Performance: &metrics.Report{
			ComponentStats: map[string]metrics.Stats{
				"home": {Min: 90, Max: 110, Average: 100, Count: 2},
			},
		},
		Screenshots: []pipeline.CapturedScreenshot{
			{Name: "home", PNG: []byte("raw-png")},
		},
		Banner: []byte("banner-png"),
	}
}

func newTestStage(renderer *mocks.Renderer) *Stage {
	clock := mocks.NewClock(time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC), 0)
	return NewStage(clock, renderer, mocks.NewLogger())
}

func TestStage_Execute(t *testing.T) {
	stage := newTestStage(&mocks.Renderer{})

	result, err := stage.Execute(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	html := string(result.HTML)
	if !strings.Contains(html, "Shop") {
		t.Error("document missing project name")
	}
	if !strings.Contains(html, "cart badge present") {
		t.Error("document missing failed check")
	}
	// Without a thumbnail width the raw bytes are embedded as-is.
	rawEncoded := base64.StdEncoding.EncodeToString([]byte("raw-png"))
	if !strings.Contains(html, rawEncoded) {
		t.Error("document missing embedded screenshot")
	}
	bannerEncoded := base64.StdEncoding.EncodeToString([]byte("banner-png"))
	if !strings.Contains(html, bannerEncoded) {
		t.Error("document missing embedded banner")
	}

	if result.Filename != "validation_report_2025-11-02.html" {
		t.Errorf("Filename = %q", result.Filename)
	}

	// Session carries everything needed to re-render offline.
	if result.Session.Validation == nil || result.Session.Validation.Failed != 1 {
		t.Errorf("session validation = %+v", result.Session.Validation)
	}
	if len(result.Session.Screenshots) != 1 {
		t.Errorf("session screenshots = %d", len(result.Session.Screenshots))
	}
}

func TestStage_Execute_ThumbnailsScaledDown(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 2000, 1000))
	small := image.NewRGBA(image.Rect(0, 0, 960, 480))
	renderer := &mocks.Renderer{
		DecodeImageFunc: func(data []byte) (image.Image, error) {
			return wide, nil
		},
		ThumbnailFunc: func(img image.Image, maxWidth int) image.Image {
			if maxWidth != 960 {
				t.Errorf("maxWidth = %d", maxWidth)
			}
			return small
		},
		EncodePNGFunc: func(img image.Image) ([]byte, error) {
			return []byte("scaled-png"), nil
		},
	}
	stage := newTestStage(renderer)

	input := testInput()
	input.ThumbnailWidth = 960

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	scaledEncoded := base64.StdEncoding.EncodeToString([]byte("scaled-png"))
	if !strings.Contains(string(result.HTML), scaledEncoded) {
		t.Error("document should embed the scaled screenshot")
	}
}

func TestStage_Execute_MissingValidation(t *testing.T) {
	// The render stage always sets validation results, so the builder's
	// missing-results error only surfaces through a direct builder misuse;
	// an empty result set still renders.
	stage := newTestStage(&mocks.Renderer{})

	input := pipeline.RenderInput{Run: report.RunInfo{Project: "Shop"}}
	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.HTML) == 0 {
		t.Error("expected a rendered document")
	}
}
