package ports

import "context"

// BrowserOptions configures browser startup.
type BrowserOptions struct {
	Headless          bool
	ChromePath        string
	ViewportWidth     int
	ViewportHeight    int
	UserAgent         string
	Headers           map[string]string
	IgnoreHTTPSErrors bool
	ProxyServer       string
	Incognito         bool
}

// PageTiming contains navigation timing for one page load, in milliseconds
// relative to navigation start.
type PageTiming struct {
	DOMContentLoadedMs float64
	LoadCompleteMs     float64
}

// ElementTiming is one element-level render timing reported by the page.
type ElementTiming struct {
	// Identifier is the element's elementtiming attribute or id.
	Identifier string
	// RenderTimeMs is the render time in milliseconds since navigation start.
	RenderTimeMs float64
}

// Browser abstracts the headless browser used to probe pages.
type Browser interface {
	// Launch starts the browser with the given options.
	Launch(ctx context.Context, opts BrowserOptions) error

	// Navigate loads a page and waits for the load event, returning its timing.
	Navigate(ctx context.Context, url string, timeoutMs int) (PageTiming, error)

	// PageTitle returns the title of the current page.
	PageTitle(ctx context.Context) (string, error)

	// ElementExists reports whether a CSS selector matches on the current page.
	ElementExists(ctx context.Context, selector string) (bool, error)

	// ElementTimings returns element-level render timings collected by the
	// current page's PerformanceObserver, if any.
	ElementTimings(ctx context.Context) ([]ElementTiming, error)

	// CaptureScreenshot takes a full-page PNG screenshot of the current page.
	CaptureScreenshot(ctx context.Context) ([]byte, error)

	// Close shuts the browser down and releases its resources.
	Close() error
}
