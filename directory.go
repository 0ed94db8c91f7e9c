package main

import (
	"sort"
	"strings"
)

// ByCategory returns the platforms in the given category, in store order.
func (d *PlatformsData) ByCategory(category string) []Platform {
	var out []Platform
	for _, p := range d.Platforms {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ByStatus returns the platforms with the given lifecycle status, in store order.
func (d *PlatformsData) ByStatus(status string) []Platform {
	var out []Platform
	for _, p := range d.Platforms {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// ByTag returns the platforms carrying the given tag, in store order.
func (d *PlatformsData) ByTag(tag string) []Platform {
	var out []Platform
	for _, p := range d.Platforms {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Search returns platforms whose name or description contains the query,
// case-insensitively.
func (d *PlatformsData) Search(query string) []Platform {
	q := strings.ToLower(query)
	var out []Platform
	for _, p := range d.Platforms {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// AllTags returns the distinct tags across all platforms, sorted.
func (d *PlatformsData) AllTags() []string {
	seen := make(map[string]bool)
	for _, p := range d.Platforms {
		for _, t := range p.Tags {
			seen[t] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// StudioByID returns the studio with the given id, or nil.
func (d *StudiosData) StudioByID(id string) *Studio {
	for i := range d.Studios {
		if d.Studios[i].ID == id {
			return &d.Studios[i]
		}
	}
	return nil
}
