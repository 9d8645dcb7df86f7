package chromebrowser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/user/valreport/pkg/ports"
)

// elementTimingScript installs a PerformanceObserver on every new document
// that accumulates element-level render timings into a page global, where
// ElementTimings picks them up after the load event.
const elementTimingScript = `
window.__elementTimings = [];
try {
	new PerformanceObserver((list) => {
		for (const entry of list.getEntries()) {
			window.__elementTimings.push({
				identifier: entry.identifier || entry.id || '',
				render_time_ms: entry.renderTime || entry.loadTime || 0,
			});
		}
	}).observe({ type: 'element', buffered: true });
} catch (e) {
	// Element Timing API not available; leave the list empty.
}
`

// navigationTimingScript reads the navigation entry of the current page.
const navigationTimingScript = `
(() => {
	const entries = performance.getEntriesByType('navigation');
	if (entries.length === 0) {
		return { dom_content_loaded_ms: 0, load_complete_ms: 0 };
	}
	const nav = entries[0];
	return {
		dom_content_loaded_ms: nav.domContentLoadedEventEnd,
		load_complete_ms: nav.loadEventEnd,
	};
})()
`

// Browser implements ports.Browser using chromedp.
type Browser struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a new Browser.
func New() *Browser {
	return &Browser{}
}

// Launch starts the browser with the given options.
func (b *Browser) Launch(ctx context.Context, opts ports.BrowserOptions) error {
	chromedpOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("disable-gpu", true),
	}

	if opts.Headless {
		chromedpOpts = append(chromedpOpts, chromedp.Flag("headless", "new"))
	}

	chromePath := ResolveChromePath(opts.ChromePath)
	if chromePath == "" {
		return fmt.Errorf("chrome not found: install Chrome/Chromium, set CHROME_PATH, or use --chrome-path")
	}
	chromedpOpts = append(chromedpOpts, chromedp.ExecPath(chromePath))

	if opts.Incognito {
		chromedpOpts = append(chromedpOpts, chromedp.Flag("incognito", true))
	}
	if opts.UserAgent != "" {
		chromedpOpts = append(chromedpOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if opts.IgnoreHTTPSErrors {
		chromedpOpts = append(chromedpOpts,
			chromedp.Flag("ignore-certificate-errors", true),
			chromedp.Flag("allow-insecure-localhost", true))
	}
	if opts.ProxyServer != "" {
		chromedpOpts = append(chromedpOpts, chromedp.Flag("proxy-server", opts.ProxyServer))
	}

	b.allocCtx, b.allocCancel = chromedp.NewExecAllocator(ctx, chromedpOpts...)
	b.ctx, b.cancel = chromedp.NewContext(b.allocCtx)

	actions := []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(elementTimingScript).Do(ctx)
			return err
		}),
	}

	if opts.ViewportWidth > 0 && opts.ViewportHeight > 0 {
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDeviceMetricsOverride(
				int64(opts.ViewportWidth), int64(opts.ViewportHeight), 1.0, false).Do(ctx)
		}))
	}

	if len(opts.Headers) > 0 {
		headers := make(network.Headers, len(opts.Headers))
		for k, v := range opts.Headers {
			headers[k] = v
		}
		actions = append(actions,
			network.Enable(),
			network.SetExtraHTTPHeaders(headers),
		)
	}

	if err := chromedp.Run(b.ctx, actions...); err != nil {
		b.Close()
		return fmt.Errorf("launch browser: %w", err)
	}

	return nil
}

// Navigate loads a page, waits for the load event and returns its
// navigation timing.
func (b *Browser) Navigate(ctx context.Context, url string, timeoutMs int) (ports.PageTiming, error) {
	timing := ports.PageTiming{}
	if b.ctx == nil {
		return timing, fmt.Errorf("browser not launched")
	}

	navCtx := b.ctx
	if timeoutMs > 0 {
		var cancel context.CancelFunc
		navCtx, cancel = context.WithTimeout(b.ctx, time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
	}

	var raw struct {
		DOMContentLoadedMs float64 `json:"dom_content_loaded_ms"`
		LoadCompleteMs     float64 `json:"load_complete_ms"`
	}
	err := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(navigationTimingScript, &raw),
	)
	if err != nil {
		return timing, fmt.Errorf("navigate %s: %w", url, err)
	}

	timing.DOMContentLoadedMs = raw.DOMContentLoadedMs
	timing.LoadCompleteMs = raw.LoadCompleteMs
	return timing, nil
}

// PageTitle returns the title of the current page.
func (b *Browser) PageTitle(ctx context.Context) (string, error) {
	if b.ctx == nil {
		return "", fmt.Errorf("browser not launched")
	}

	var title string
	if err := chromedp.Run(b.ctx, chromedp.Title(&title)); err != nil {
		return "", fmt.Errorf("get page title: %w", err)
	}
	return title, nil
}

// ElementExists reports whether a CSS selector matches on the current page.
func (b *Browser) ElementExists(ctx context.Context, selector string) (bool, error) {
	if b.ctx == nil {
		return false, fmt.Errorf("browser not launched")
	}

	var exists bool
	script := fmt.Sprintf("document.querySelector(%q) !== null", selector)
	if err := chromedp.Run(b.ctx, chromedp.Evaluate(script, &exists)); err != nil {
		return false, fmt.Errorf("query %s: %w", selector, err)
	}
	return exists, nil
}

// ElementTimings returns the element render timings collected by the
// injected PerformanceObserver.
func (b *Browser) ElementTimings(ctx context.Context) ([]ports.ElementTiming, error) {
	if b.ctx == nil {
		return nil, fmt.Errorf("browser not launched")
	}

	var raw []struct {
		Identifier   string  `json:"identifier"`
		RenderTimeMs float64 `json:"render_time_ms"`
	}
	if err := chromedp.Run(b.ctx, chromedp.Evaluate(`window.__elementTimings || []`, &raw)); err != nil {
		return nil, fmt.Errorf("get element timings: %w", err)
	}

	timings := make([]ports.ElementTiming, 0, len(raw))
	for _, entry := range raw {
		if entry.Identifier == "" {
			continue
		}
		timings = append(timings, ports.ElementTiming{
			Identifier:   entry.Identifier,
			RenderTimeMs: entry.RenderTimeMs,
		})
	}
	return timings, nil
}

// CaptureScreenshot takes a full-page PNG screenshot of the current page.
func (b *Browser) CaptureScreenshot(ctx context.Context) ([]byte, error) {
	if b.ctx == nil {
		return nil, fmt.Errorf("browser not launched")
	}

	var data []byte
	// Quality 100 makes chromedp capture PNG rather than JPEG.
	if err := chromedp.Run(b.ctx, chromedp.FullScreenshot(&data, 100)); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return data, nil
}

// Close shuts the browser down and releases its resources.
func (b *Browser) Close() error {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	if b.allocCancel != nil {
		b.allocCancel()
		b.allocCancel = nil
	}
	return nil
}

// Ensure Browser implements ports.Browser
var _ ports.Browser = (*Browser)(nil)
