package kanjipedia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBodySize caps how much of an entry page we read. Entry pages are
// a few hundred KB; anything past this is not a kanjipedia page.
const maxBodySize = 10 * 1024 * 1024

// DefaultUserAgent mimics a desktop browser; the site serves 403 to
// obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher retrieves and parses kanjipedia entry pages.
type Fetcher struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

// NewFetcher returns a Fetcher with a 30 second timeout against the
// live site.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: 30 * time.Second},
		BaseURL:   BaseURL,
		UserAgent: DefaultUserAgent,
	}
}

// ResolveURL completes a relative entry URL against the site root.
// Already-absolute URLs pass through unchanged.
func (f *Fetcher) ResolveURL(pageURL string) string {
	pageURL = trim(pageURL)
	if strings.Contains(pageURL, f.BaseURL) {
		return pageURL
	}
	return f.BaseURL + pageURL
}

// Fetch retrieves the entry page at pageURL (absolute or relative) and
// parses it into an Entry. Failures are fatal to this entry only;
// callers batch-processing a list log and continue.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Entry, error) {
	ref := f.ResolveURL(pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", ref, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ja,en-US;q=0.9,en;q=0.8")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", ref, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}
	if len(body) >= maxBodySize {
		return nil, fmt.Errorf("read %s: body exceeds %d bytes", ref, maxBodySize)
	}

	return ParseEntryHTML(bytes.NewReader(body), ref)
}
