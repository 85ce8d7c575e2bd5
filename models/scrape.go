package models

// ScrapeResult is the payload of /scrape and the only value the cache stores.
// Cached is always persisted as false; the read path flips it.
type ScrapeResult struct {
	URL     string   `json:"url"`
	Title   *string  `json:"title"`
	Content []string `json:"content"`
	Cached  bool     `json:"cached"`
}

type LinkRecord struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	External bool   `json:"external"`
}

type LinksResult struct {
	URL        string       `json:"url"`
	TotalLinks int          `json:"total_links"`
	Links      []LinkRecord `json:"links"`
}

type PageMetadata struct {
	URL         string            `json:"url"`
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	OpenGraph   map[string]string `json:"og"`
	TwitterData map[string]string `json:"twitter"`
}
