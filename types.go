package main

// Platform categories, in classification priority order.
const (
	CategorySocial         = "social"
	CategoryCommerce       = "commerce"
	CategorySearch         = "search"
	CategoryTools          = "tools"
	CategoryInfrastructure = "infrastructure"
	CategoryData           = "data"
	CategoryCommunication  = "communication"
)

// Platform lifecycle statuses. The discovery pipeline only ever writes
// StatusSuggested; the other values are assigned by manual curation.
const (
	StatusActive    = "active"
	StatusBeta      = "beta"
	StatusConcept   = "concept"
	StatusSuggested = "suggested"
)

// Platform is one persisted directory entry.
type Platform struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Logo        string   `json:"logo"`
	Status      string   `json:"status"`
	DateAdded   string   `json:"dateAdded"`
}

// PlatformsData is the full platforms store document.
type PlatformsData struct {
	Platforms   []Platform `json:"platforms"`
	Categories  []string   `json:"categories"`
	LastUpdated string     `json:"lastUpdated"`
}

// StudioProduct is a product shipped by a studio.
type StudioProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// StudioAutonomy describes how autonomous each part of a studio's loop is.
// Values: "human-led", "human-in-the-loop", "autonomous".
type StudioAutonomy struct {
	IdeaGeneration string `json:"ideaGeneration"`
	Development    string `json:"development"`
	Distribution   string `json:"distribution"`
}

// StudioTransparency describes what outsiders can see. Values: "opaque", "visible".
type StudioTransparency struct {
	Code string `json:"code"`
	Logs string `json:"logs"`
}

// StudioToken is an optional token associated with a studio.
type StudioToken struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Chain   string `json:"chain,omitempty"`
}

// Studio is one autonomous software studio entry.
type Studio struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Type         string             `json:"type"`
	Creator      string             `json:"creator,omitempty"`
	Website      string             `json:"website,omitempty"`
	X            string             `json:"x"`
	Token        *StudioToken       `json:"token,omitempty"`
	Products     []StudioProduct    `json:"products"`
	Autonomy     StudioAutonomy     `json:"autonomy"`
	Transparency StudioTransparency `json:"transparency"`
	Notable      []string           `json:"notable"`
	DateAdded    string             `json:"dateAdded"`
}

// StudiosData is the full studios store document.
type StudiosData struct {
	Studios     []Studio `json:"studios"`
	LastUpdated string   `json:"lastUpdated"`
}

// Candidate is a URL pulled out of search-result text, not yet fetched.
type Candidate struct {
	RawURL        string // URL exactly as it appeared in the source text
	NormalizedKey string // canonical host+path form used for dedup
	SourceText    string // text fragment the URL was extracted from
}

// PageMeta holds whatever metadata a candidate page yielded. Empty fields
// mean the page did not provide them (or the fetch failed).
type PageMeta struct {
	Title       string
	Description string
}

// Tweet is a single search-API result item.
type Tweet struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}
