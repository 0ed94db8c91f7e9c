package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func testMatchers(t *testing.T) []CategoryMatcher {
	t.Helper()
	settings, err := DefaultSettings()
	if err != nil {
		t.Fatalf("DefaultSettings() error = %v", err)
	}
	return CompileCategoryRules(settings.Categories)
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"pipe separator", "NewSite | Home", "NewSite"},
		{"hyphen separator", "NewSite - Home", "NewSite"},
		{"en dash separator", "NewSite – Home", "NewSite"},
		{"em dash separator", "NewSite — AI Tools | Home", "NewSite"},
		{"no separator", "Plain Title", "Plain Title"},
		{"surrounding whitespace", "  Padded  | rest", "Padded"},
		{"hyphenated word splits", "agent-native platform", "agent"},
		{"empty title", "", ""},
		{"long title truncated", strings.Repeat("x", 80), strings.Repeat("x", 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DeriveName(tt.title)
			if result != tt.expected {
				t.Errorf("DeriveName(%q) = %q, want %q", tt.title, result, tt.expected)
			}
			if utf8.RuneCountInString(result) > maxNameLen {
				t.Errorf("DeriveName() result too long: %d runes", utf8.RuneCountInString(result))
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"basic", "NewSite", "newsite"},
		{"spaces", "Agent Market", "agent-market"},
		{"special chars collapsed", "What?! A... Site", "what-a-site"},
		{"outer hyphens trimmed", "--Edge Case--", "edge-case"},
		{"unicode replaced", "Café Agents", "caf-agents"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGuessCategory(t *testing.T) {
	matchers := testMatchers(t)

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"social", "a community for autonomous agents", CategorySocial},
		{"commerce", "buy and sell compute", CategoryCommerce},
		{"search", "crawl the agentic web", CategorySearch},
		{"tools", "an sdk for building agents", CategoryTools},
		{"infrastructure", "deploy agents to the cloud", CategoryInfrastructure},
		{"data", "scrape structured feeds", CategoryData},
		{"communication", "a protocol for agent chat", CategoryCommunication},
		{"default", "absolutely nothing relevant", CategoryTools},
		{"empty", "", CategoryTools},
		{"case insensitive", "A COMMUNITY HUB", CategorySocial},
		// "social network marketplace" hits both social and commerce; order decides.
		{"priority order", "social network marketplace", CategorySocial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GuessCategory(tt.text, matchers)
			if result != tt.expected {
				t.Errorf("GuessCategory(%q) = %q, want %q", tt.text, result, tt.expected)
			}
		})
	}
}

func TestBuildEntry(t *testing.T) {
	matchers := testMatchers(t)

	c := Candidate{
		RawURL:        "https://newsite.ai/tools",
		NormalizedKey: "newsite.ai/tools",
		SourceText:    "check out https://newsite.ai/tools great for agents",
	}
	meta := PageMeta{Title: "NewSite — AI Tools | Home"}

	entry := BuildEntry(c, meta, matchers, "2026-08-31")

	if entry.Name != "NewSite" {
		t.Errorf("Name = %q, want %q", entry.Name, "NewSite")
	}
	if entry.ID != "newsite" {
		t.Errorf("ID = %q, want %q", entry.ID, "newsite")
	}
	if entry.Category != CategoryTools {
		t.Errorf("Category = %q, want %q", entry.Category, CategoryTools)
	}
	if entry.URL != c.RawURL {
		t.Errorf("URL = %q, want original raw URL %q", entry.URL, c.RawURL)
	}
	if !strings.Contains(entry.Description, "check out") {
		t.Errorf("Description = %q, want fallback embedding source text", entry.Description)
	}
	if !strings.HasSuffix(entry.Description, "...") && len([]rune(entry.Description)) < maxDescriptionLen {
		t.Errorf("fallback Description missing truncation marker: %q", entry.Description)
	}
	if entry.Status != StatusSuggested {
		t.Errorf("Status = %q, want %q", entry.Status, StatusSuggested)
	}
	if len(entry.Tags) != 2 || entry.Tags[0] != "discovered" || entry.Tags[1] != "auto-suggested" {
		t.Errorf("Tags = %v, want [discovered auto-suggested]", entry.Tags)
	}
	if entry.Logo != "/logos/newsite.png" {
		t.Errorf("Logo = %q, want %q", entry.Logo, "/logos/newsite.png")
	}
	if entry.DateAdded != "2026-08-31" {
		t.Errorf("DateAdded = %q, want run date", entry.DateAdded)
	}
}

func TestBuildEntryPrefersFetchedDescription(t *testing.T) {
	matchers := testMatchers(t)

	c := Candidate{RawURL: "https://a.example", SourceText: "ignored fallback"}
	meta := PageMeta{Title: "A", Description: "A protocol for agent chat"}

	entry := BuildEntry(c, meta, matchers, "2026-08-31")

	if entry.Description != "A protocol for agent chat" {
		t.Errorf("Description = %q, want fetched description", entry.Description)
	}
	if entry.Category != CategoryCommunication {
		t.Errorf("Category = %q, want %q", entry.Category, CategoryCommunication)
	}
}

func TestBuildEntryTruncationBounds(t *testing.T) {
	matchers := testMatchers(t)

	c := Candidate{
		RawURL:     "https://a.example",
		SourceText: strings.Repeat("s", 500),
	}
	meta := PageMeta{
		Title:       strings.Repeat("t", 200),
		Description: strings.Repeat("d", 500),
	}

	entry := BuildEntry(c, meta, matchers, "2026-08-31")

	if n := utf8.RuneCountInString(entry.Name); n > maxNameLen {
		t.Errorf("Name length = %d runes, want <= %d", n, maxNameLen)
	}
	if n := utf8.RuneCountInString(entry.Description); n > maxDescriptionLen {
		t.Errorf("Description length = %d runes, want <= %d", n, maxDescriptionLen)
	}

	// Fallback path: synthesized from 100 chars of source text plus marker,
	// then capped at 200.
	meta.Description = ""
	entry = BuildEntry(c, meta, matchers, "2026-08-31")
	if n := utf8.RuneCountInString(entry.Description); n > maxDescriptionLen {
		t.Errorf("fallback Description length = %d runes, want <= %d", n, maxDescriptionLen)
	}
	if !strings.Contains(entry.Description, strings.Repeat("s", 100)) {
		t.Error("fallback Description missing 100-char source excerpt")
	}
}
