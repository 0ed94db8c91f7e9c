package main

import (
	"net/url"
	"regexp"
	"strings"
)

// Permissive URL matcher: scheme plus anything that is not whitespace or a
// character that commonly trails a URL in prose (quotes, angle brackets,
// closing paren/bracket).
var urlPattern = regexp.MustCompile(`(?i)https?://[^\s"'<>)\]]+`)

// ExtractURLs scans free text for URL-shaped substrings, dropping any whose
// host is on the skip list. Pure: same inputs always yield the same output.
func ExtractURLs(text string, skipDomains []string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var out []string
	for _, m := range matches {
		if hostSkipped(m, skipDomains) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// hostSkipped reports whether the URL's host is one of the skip domains or a
// subdomain of one. Unparseable URLs fall back to substring matching.
func hostSkipped(rawURL string, skipDomains []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		lower := strings.ToLower(rawURL)
		for _, d := range skipDomains {
			if strings.Contains(lower, strings.ToLower(d)) {
				return true
			}
		}
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, d := range skipDomains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// NormalizeURL reduces a URL to its canonical dedup key: lowercase hostname
// with a leading "www." stripped, plus the path with trailing slashes
// removed. Anything that does not parse falls back to the raw string.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := strings.TrimRight(u.Path, "/")
	return host + path
}
