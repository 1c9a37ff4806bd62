// Package extract recovers structured recipes from web pages. It prefers
// machine-readable JSON-LD metadata and falls back to a small set of
// heuristic selectors when a page carries none.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pantryops/shoplist/internal/domain"
)

// DefaultFetchTimeout bounds a single page download.
const DefaultFetchTimeout = 10 * time.Second

// Fetcher downloads recipe pages. Redirects are followed; a non-2xx
// response or timeout fails the whole scrape rather than returning a
// partial document.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a Fetcher with the given per-request timeout.
// A zero timeout falls back to DefaultFetchTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))

	return &Fetcher{client: client}
}

// Fetch retrieves the page body at url. Failures are reported as
// domain.ErrFetchFailed so callers can keep network errors distinct from
// extraction errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: unexpected status %d", domain.ErrFetchFailed, resp.StatusCode())
	}
	return resp.String(), nil
}
