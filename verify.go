package htmlqr

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// Phone-sized viewport used when loading a data URL, matching how a
// scanned code is usually opened.
const (
	viewportWidth  = 390
	viewportHeight = 844
	viewportScale  = 3.0
)

// Report describes a data URL as rendered by the browser.
type Report struct {
	// Title is the document title, possibly empty.
	Title string

	// TextLength is the length of the rendered body text in characters.
	TextLength int
}

// Verifier loads data URLs in headless Chrome to confirm that the
// embedded document still renders after minification.
//
// A Verifier reuses one browser process across calls. It is safe for
// concurrent use.
//
// Call [Verifier.Close] when the Verifier is no longer needed to release
// browser resources.
type Verifier struct {
	cfg           verifierConfig
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewVerifier creates a Verifier with the given options.
//
// It starts a headless browser in the background. The caller must call
// [Verifier.Close] when finished.
func NewVerifier(opts ...Option) (*Verifier, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	execPath, err := cfg.browserPath()
	if err != nil {
		return nil, err
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(execPath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("htmlqr: starting browser: %w", err)
	}

	return &Verifier{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the Verifier, including the
// browser process. Close is idempotent.
func (v *Verifier) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}
	v.closed = true
	v.browserCancel()
	v.allocCancel()
	return nil
}

// Verify opens dataURL in a fresh tab and reports what was rendered.
func (v *Verifier) Verify(ctx context.Context, dataURL string) (*Report, error) {
	if err := v.checkClosed(); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(dataURL, DataURLPrefix) {
		return nil, ErrNotDataURL
	}

	if v.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(v.browserCtx)
	defer tabCancel()

	// Tie the tab to the caller's deadline.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	var rep Report
	if err := chromedp.Run(tabCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDeviceMetricsOverride(viewportWidth, viewportHeight, viewportScale, true).Do(ctx)
		}),
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Title(&rep.Title),
		chromedp.Evaluate(`document.body ? document.body.innerText.length : 0`, &rep.TextLength),
	); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("htmlqr: verification failed: %w", ctx.Err())
		}
		return nil, fmt.Errorf("htmlqr: verification failed: %w", err)
	}
	return &rep, nil
}

func (v *Verifier) checkClosed() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	return nil
}
