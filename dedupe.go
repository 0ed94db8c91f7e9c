package main

// Deduper filters candidate URLs against the store snapshot and against
// earlier candidates from the same run. First occurrence wins; later
// occurrences of the same normalized key are silently dropped.
type Deduper struct {
	existing map[string]bool
	seen     map[string]bool
	order    []Candidate
}

// NewDeduper builds a Deduper over the URLs already in the store. The
// snapshot is taken once; it is not refreshed during a run.
func NewDeduper(existingURLs []string) *Deduper {
	existing := make(map[string]bool, len(existingURLs))
	for _, u := range existingURLs {
		existing[NormalizeURL(u)] = true
	}
	return &Deduper{
		existing: existing,
		seen:     make(map[string]bool),
	}
}

// Add records a candidate URL unless its normalized key is already in the
// store or was seen earlier this run. Returns true if the candidate was kept.
func (d *Deduper) Add(rawURL, sourceText string) bool {
	key := NormalizeURL(rawURL)
	if d.existing[key] || d.seen[key] {
		return false
	}
	d.seen[key] = true
	d.order = append(d.order, Candidate{
		RawURL:        rawURL,
		NormalizedKey: key,
		SourceText:    sourceText,
	})
	return true
}

// Candidates returns the surviving candidates in first-seen order.
func (d *Deduper) Candidates() []Candidate {
	return d.order
}
