package main

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxNameLen        = 60
	maxDescriptionLen = 200
	sourceExcerptLen  = 100
)

// Title separators: the display name is whatever precedes the first one.
var titleSeparators = regexp.MustCompile(`[|\-–—]`)

// DeriveName takes the leading segment of a fetched page title, trimmed and
// capped at 60 characters.
func DeriveName(title string) string {
	segments := titleSeparators.Split(title, 2)
	return truncateRunes(strings.TrimSpace(segments[0]), maxNameLen)
}

// Slugify converts a display name to a URL-safe id: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, outer hyphens trimmed.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CategoryMatcher is a compiled category keyword rule.
type CategoryMatcher struct {
	Name string
	re   *regexp.Regexp
}

// CompileCategoryRules compiles the configured keyword table. Rule order is
// preserved: categories overlap in keyword space, so the first match decides.
func CompileCategoryRules(rules []CategoryRule) []CategoryMatcher {
	matchers := make([]CategoryMatcher, 0, len(rules))
	for _, r := range rules {
		quoted := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(kw)))
		}
		matchers = append(matchers, CategoryMatcher{
			Name: r.Name,
			re:   regexp.MustCompile(strings.Join(quoted, "|")),
		})
	}
	return matchers
}

// GuessCategory classifies free text against the keyword rules, defaulting to
// "tools" when nothing matches.
func GuessCategory(text string, matchers []CategoryMatcher) string {
	lower := strings.ToLower(text)
	for _, m := range matchers {
		if m.re.MatchString(lower) {
			return m.Name
		}
	}
	return CategoryTools
}

// BuildEntry assembles a full directory entry from a fetched candidate.
// The caller has already verified the title is non-empty.
func BuildEntry(c Candidate, meta PageMeta, matchers []CategoryMatcher, runDate string) Platform {
	name := DeriveName(meta.Title)

	// The fallback prefix must stay clear of category keywords: classification
	// runs over the description, so a word like "discovered" here would drag
	// every fallback entry into the search category.
	description := meta.Description
	if description == "" {
		description = fmt.Sprintf("Seen on X/Twitter: %s...",
			truncateRunes(c.SourceText, sourceExcerptLen))
	}

	// Classification sees the untruncated description.
	category := GuessCategory(description+" "+name, matchers)
	id := Slugify(name)

	return Platform{
		ID:          id,
		Name:        name,
		Description: truncateRunes(description, maxDescriptionLen),
		URL:         c.RawURL,
		Category:    category,
		Tags:        []string{"discovered", "auto-suggested"},
		Logo:        "/logos/" + id + ".png",
		Status:      StatusSuggested,
		DateAdded:   runDate,
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
