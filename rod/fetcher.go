// Package rod adapts a live Chrome page into the pinpoint element model.
// It backs the "real browser" environment: resolution runs against the DOM
// the user actually sees, with genuine computed-style visibility, and the
// returned handles can be scrolled into view.
package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/pinpoint"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements pinpoint.Fetcher at compile time.
var _ pinpoint.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered pages using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, err := f.Open(ctx, url)
	if err != nil {
		return "", err
	}
	defer page.Close()

	return page.HTML()
}

// Open navigates to the URL and returns the live page for resolution.
// The caller must Close the page when done.
func (f *Fetcher) Open(ctx context.Context, url string) (*Page, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, pinpoint.Errorf(pinpoint.EUNAVAILABLE, "opening page: %v", err)
	}

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		_ = page.Close()
		return nil, pinpoint.Errorf(pinpoint.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, pinpoint.Errorf(pinpoint.EUNAVAILABLE, "waiting for %s to load: %v", url, err)
	}

	return &Page{page: page}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}

// Page is an open, rendered browser page.
type Page struct {
	page *rod.Page
}

// HTML returns the page's rendered HTML.
func (p *Page) HTML() (string, error) {
	html, err := p.page.HTML()
	if err != nil {
		return "", pinpoint.Errorf(pinpoint.EUNAVAILABLE, "reading page HTML: %v", err)
	}
	return html, nil
}

// Title returns the page title.
func (p *Page) Title() string {
	info, err := p.page.Info()
	if err != nil {
		return ""
	}
	return info.Title
}

// Body returns the page body as a pinpoint.Element.
func (p *Page) Body() (pinpoint.Element, error) {
	body, err := p.page.Element("body")
	if err != nil {
		return nil, pinpoint.Errorf(pinpoint.EUNAVAILABLE, "locating page body: %v", err)
	}
	return &element{el: body}, nil
}

// Close closes the underlying browser tab.
func (p *Page) Close() error {
	return p.page.Close()
}
