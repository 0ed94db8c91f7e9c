package main

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Discoverer runs the discovery pipeline once: search, extract, dedup, fetch
// metadata, classify, merge. All stages run sequentially; the store is read
// once at the start and written at most once at the end.
type Discoverer struct {
	settings *Settings
	search   *SearchClient
	fetcher  *MetaFetcher
	matchers []CategoryMatcher
	review   *ReviewWriter
	now      func() time.Time
}

// DiscoveryResult summarizes a completed run. All three terminal shapes
// (nothing found, nothing survived, N appended) are successful runs.
type DiscoveryResult struct {
	CandidatesFound int
	Added           []Platform
	SkippedNoTitle  int
	SkippedName     int
	SkippedSlug     int
	TotalPlatforms  int
}

// NewDiscoverer wires the pipeline from settings. An empty bearerToken puts
// the search stage in dry-run mode.
func NewDiscoverer(settings *Settings, bearerToken string) *Discoverer {
	d := &Discoverer{
		settings: settings,
		search:   NewSearchClient(settings.Search.Endpoint, bearerToken, settings.Search.MaxResults),
		fetcher: NewMetaFetcher(
			time.Duration(settings.Discovery.FetchTimeoutSeconds)*time.Second,
			settings.Discovery.UserAgent,
		),
		matchers: CompileCategoryRules(settings.Categories),
		now:      time.Now,
	}
	if settings.Discovery.ReviewDirectory != "" {
		d.review = NewReviewWriter(settings.Discovery.ReviewDirectory)
	}
	return d
}

// Run executes the pipeline. Recoverable stage failures (a query erroring, a
// page not yielding metadata) are logged and skipped; only store read/write
// failures are returned as errors.
func (d *Discoverer) Run() (*DiscoveryResult, error) {
	log.Printf("Starting platform discovery...")
	if d.search.DryRun() {
		log.Printf("⚠ no search credential set, running in dry-run mode")
	}

	store, err := LoadPlatforms(d.settings.Data.PlatformsPath)
	if err != nil {
		return nil, err
	}

	// Snapshot of the store, taken once. Entries appended during the run are
	// deliberately not added to the name set unless collision scope is "run".
	existingURLs := make([]string, 0, len(store.Platforms))
	existingNames := make(map[string]bool, len(store.Platforms))
	existingIDs := make(map[string]bool, len(store.Platforms))
	for _, p := range store.Platforms {
		existingURLs = append(existingURLs, p.URL)
		existingNames[strings.ToLower(p.Name)] = true
		existingIDs[p.ID] = true
	}

	deduper := NewDeduper(existingURLs)

	for _, query := range d.settings.Search.Queries {
		log.Printf("  Searching: %s", query)
		tweets, err := d.search.Search(query)
		if err != nil {
			log.Printf("  ✗ search failed for %q: %v", query, err)
			continue
		}
		log.Printf("    Found %d tweets", len(tweets))

		for _, tweet := range tweets {
			for _, u := range ExtractURLs(tweet.Text, d.settings.Discovery.SkipDomains) {
				if deduper.Add(u, tweet.Text) {
					log.Printf("    + candidate: %s", u)
				}
			}
		}
	}

	candidates := deduper.Candidates()
	result := &DiscoveryResult{
		CandidatesFound: len(candidates),
		TotalPlatforms:  len(store.Platforms),
	}

	log.Printf("Found %d potential new platform(s)", len(candidates))
	if len(candidates) == 0 {
		log.Printf("✓ No new platforms discovered, store unchanged")
		return result, nil
	}

	runDate := d.now().Format("2006-01-02")
	checkRunNames := d.settings.Discovery.NameCollisionScope == CollisionScopeRun
	runNames := make(map[string]bool)
	runIDs := make(map[string]bool)

	for _, c := range candidates {
		log.Printf("  → Fetching metadata: %s", c.RawURL)
		meta, markup := d.fetcher.Fetch(c.RawURL)

		if meta.Title == "" {
			result.SkippedNoTitle++
			log.Printf("    ⏭ Skipped (no metadata)")
			continue
		}

		entry := BuildEntry(c, meta, d.matchers, runDate)
		if entry.Name == "" {
			result.SkippedNoTitle++
			log.Printf("    ⏭ Skipped (title yields empty name)")
			continue
		}

		lowerName := strings.ToLower(entry.Name)
		if existingNames[lowerName] || (checkRunNames && runNames[lowerName]) {
			result.SkippedName++
			log.Printf("    ⏭ Skipped (already exists: %s)", entry.Name)
			continue
		}

		// Slugs must stay unique: a colliding id almost always means the same
		// product surfaced under a second URL.
		if existingIDs[entry.ID] || runIDs[entry.ID] {
			result.SkippedSlug++
			log.Printf("    ⏭ Skipped (id taken: %s)", entry.ID)
			continue
		}

		runNames[lowerName] = true
		runIDs[entry.ID] = true
		result.Added = append(result.Added, entry)
		log.Printf("    ✓ Added: %s (%s)", entry.Name, entry.Category)

		if d.review != nil {
			if file, err := d.review.Write(entry, markup); err != nil {
				log.Printf("    ⚠ review snapshot failed: %v", err)
			} else {
				debugLog("review snapshot: %s", file)
			}
		}
	}

	if len(result.Added) == 0 {
		log.Printf("✓ No valid new platforms after metadata check, store unchanged")
		return result, nil
	}

	store.Platforms = append(store.Platforms, result.Added...)
	store.LastUpdated = runDate
	if err := SavePlatforms(d.settings.Data.PlatformsPath, store); err != nil {
		return nil, fmt.Errorf("persisting store: %w", err)
	}

	result.TotalPlatforms = len(store.Platforms)
	log.Printf("✓ Added %d new suggested platform(s), total %d", len(result.Added), result.TotalPlatforms)

	return result, nil
}
