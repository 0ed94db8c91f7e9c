package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// MetaFetcher retrieves title/description metadata from candidate pages.
type MetaFetcher struct {
	client    *http.Client
	userAgent string
}

// NewMetaFetcher creates a fetcher with a hard per-request timeout. Redirects
// are followed (net/http default).
func NewMetaFetcher(timeout time.Duration, userAgent string) *MetaFetcher {
	return &MetaFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch GETs the URL and extracts page metadata. This stage never fails the
// run: any transport error, timeout or non-2xx status yields empty metadata.
// The raw markup is returned alongside for optional review snapshots.
func (f *MetaFetcher) Fetch(url string) (PageMeta, string) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		debugLog("building request for %s: %v", url, err)
		return PageMeta{}, ""
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		debugLog("fetching %s: %v", url, err)
		return PageMeta{}, ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		debugLog("fetching %s: %v", url, &HTTPError{StatusCode: resp.StatusCode, URL: url})
		return PageMeta{}, ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		debugLog("reading %s: %v", url, err)
		return PageMeta{}, ""
	}

	markup := string(body)
	return extractPageMeta(markup), markup
}

// Metadata is pulled with a leading-match text scan rather than a full markup
// parse; malformed pages just yield empty fields. Both attribute orderings of
// the description tag occur in the wild, so both are matched.
var (
	titleRe          = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	descNameFirst    = regexp.MustCompile(`(?i)<meta[^>]+name=["']description["'][^>]+content=["']([^"']+)["']`)
	descContentFirst = regexp.MustCompile(`(?i)<meta[^>]+content=["']([^"']+)["'][^>]+name=["']description["']`)
)

// extractPageMeta is the single seam between the pipeline and markup
// scanning; swapping in a real HTML parser only touches this function.
func extractPageMeta(markup string) PageMeta {
	var meta PageMeta

	if m := titleRe.FindStringSubmatch(markup); m != nil {
		meta.Title = strings.TrimSpace(m[1])
	}

	if m := descNameFirst.FindStringSubmatch(markup); m != nil {
		meta.Description = strings.TrimSpace(m[1])
	} else if m := descContentFirst.FindStringSubmatch(markup); m != nil {
		meta.Description = strings.TrimSpace(m[1])
	}

	return meta
}
