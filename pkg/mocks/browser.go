package mocks

import (
	"context"

	"github.com/user/valreport/pkg/ports"
)

// Browser is a mock implementation of ports.Browser.
type Browser struct {
	LaunchFunc            func(ctx context.Context, opts ports.BrowserOptions) error
	NavigateFunc          func(ctx context.Context, url string, timeoutMs int) (ports.PageTiming, error)
	PageTitleFunc         func(ctx context.Context) (string, error)
	ElementExistsFunc     func(ctx context.Context, selector string) (bool, error)
	ElementTimingsFunc    func(ctx context.Context) ([]ports.ElementTiming, error)
	CaptureScreenshotFunc func(ctx context.Context) ([]byte, error)
	CloseFunc             func() error
}

func (m *Browser) Launch(ctx context.Context, opts ports.BrowserOptions) error {
	if m.LaunchFunc != nil {
		return m.LaunchFunc(ctx, opts)
	}
	return nil
}

func (m *Browser) Navigate(ctx context.Context, url string, timeoutMs int) (ports.PageTiming, error) {
	if m.NavigateFunc != nil {
		return m.NavigateFunc(ctx, url, timeoutMs)
	}
	return ports.PageTiming{DOMContentLoadedMs: 100, LoadCompleteMs: 200}, nil
}

func (m *Browser) PageTitle(ctx context.Context) (string, error) {
	if m.PageTitleFunc != nil {
		return m.PageTitleFunc(ctx)
	}
	return "Mock Page", nil
}

func (m *Browser) ElementExists(ctx context.Context, selector string) (bool, error) {
	if m.ElementExistsFunc != nil {
		return m.ElementExistsFunc(ctx, selector)
	}
	return true, nil
}

func (m *Browser) ElementTimings(ctx context.Context) ([]ports.ElementTiming, error) {
	if m.ElementTimingsFunc != nil {
		return m.ElementTimingsFunc(ctx)
	}
	return nil, nil
}

func (m *Browser) CaptureScreenshot(ctx context.Context) ([]byte, error) {
	if m.CaptureScreenshotFunc != nil {
		return m.CaptureScreenshotFunc(ctx)
	}
	return []byte("mock-png"), nil
}

func (m *Browser) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.Browser = (*Browser)(nil)
