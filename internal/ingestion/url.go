package ingestion

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/thevivhunter/resume-optimizer/internal/fetch"
)

// URLOptions configures URL ingestion.
type URLOptions struct {
	// UseBrowser enables headless-browser fallback for postings that
	// render client-side.
	UseBrowser bool
	// BrowserTimeout bounds the fallback render; zero means 30s.
	BrowserTimeout time.Duration
	// Verbose logs fetch and extraction diagnostics.
	Verbose bool
}

// FromURL fetches a job posting, extracts its description text with
// platform-aware selectors, and cleans it. Scraped-site structure is
// best effort: when selectors miss, the page body text is used.
func FromURL(ctx context.Context, urlStr string, opts URLOptions) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] fetching %s (platform: %s)", urlStr, platform)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	selectors := fetch.Selectors(platform)
	text, err := fetch.ExtractJobText(result.HTML, selectors)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] extracted %d chars from HTTP fetch", len(text))
	}

	usedBrowser := false
	if opts.UseBrowser && fetch.NeedsBrowser(text) {
		timeout := opts.BrowserTimeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		if opts.Verbose {
			log.Printf("[VERBOSE] content too short (%d chars), rendering with browser", len(text))
		}
		html, browserErr := fetch.RenderWithBrowser(ctx, urlStr, timeout)
		if browserErr != nil {
			// Keep the HTTP content; the browser is only an upgrade path.
			if opts.Verbose {
				log.Printf("[VERBOSE] browser fallback failed: %v", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractJobText(html, selectors); extractErr == nil && len(rendered) > len(text) {
			text = rendered
			usedBrowser = true
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("%w: no text content extracted from %s", ErrSourceUnavailable, urlStr)
	}

	meta := NewMetadata(cleaned, urlStr)
	meta.Platform = platform
	meta.Browser = usedBrowser
	return cleaned, meta, nil
}
