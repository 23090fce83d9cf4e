package core

import "time"

// Limits applied during email normalization. Link and image lists are capped to
// keep prompt size and image-heuristic noise bounded.
const (
	MaxLinks  = 30
	MaxImages = 10
)

// Link is a hyperlink extracted from a newsletter body.
type Link struct {
	Label string `json:"label"` // Anchor text, trimmed (may be empty)
	URL   string `json:"url"`   // Href value, never a mailto: link
}

// Image is an inline image extracted from a newsletter body.
type Image struct {
	Src string `json:"src"` // Image source URL, never a data: URI
	Alt string `json:"alt"` // Alt text (empty when the tag has none)
}

// Email is a normalized newsletter email. It is immutable once produced:
// downstream stages read it but never write back.
type Email struct {
	ID      string  `json:"id"`      // Gmail message ID
	From    string  `json:"from"`    // From header as received
	Subject string  `json:"subject"` // Subject header as received
	Date    string  `json:"date"`    // Date header as received (raw string)
	Text    string  `json:"text"`    // Plain text extracted from the HTML body
	HTML    string  `json:"html"`    // Decoded HTML body
	Links   []Link  `json:"links"`   // Extracted links in document order, capped at MaxLinks
	Images  []Image `json:"images"`  // Extracted images in document order, capped at MaxImages
}

// SectionMap maps a section name (e.g. "GOOD_MORNING") to its raw text body as
// produced by the model. A missing section reads as the empty string, which is
// what every consumer wants.
type SectionMap map[string]string

// ReadItem is one recommended-reading entry parsed from the READS_OF_THE_WEEK
// section.
type ReadItem struct {
	Title       string `json:"title"`       // Article title
	URL         string `json:"url"`         // Article URL ("#" when none could be extracted)
	Source      string `json:"source"`      // Publication name (may be empty)
	Description string `json:"description"` // One-line description (may be empty)
	Paywalled   bool   `json:"paywalled"`   // Whether the line carried a [Paywall] marker
}

// Issue is a generated digest as archived in the store.
type Issue struct {
	ID            string    `json:"id"`             // Unique identifier for the issue
	Subject       string    `json:"subject"`        // Email subject line used (or previewed)
	HTML          string    `json:"html"`           // Assembled issue HTML
	Sections      []string  `json:"sections"`       // Section names the model produced
	EmailCount    int       `json:"email_count"`    // Number of newsletters that fed the issue
	MarketImage   string    `json:"market_image"`   // Market image URL used (empty when none found)
	ModelUsed     string    `json:"model_used"`     // LLM model used for generation
	DateGenerated time.Time `json:"date_generated"` // Timestamp when the issue was generated
}
