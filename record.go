package webcat

import "time"

// Record is the result of scraping a single page. Records are created by
// the orchestrator, enriched in place by each pipeline stage, and handed to
// exporters; they are never mutated after export.
type Record struct {
	URL string `json:"url"`

	// Title and Content are extracted by a ContentExtractor; Content is
	// cleaned text, never raw HTML, and is capped at MaxContentLength.
	Title   string `json:"title"`
	Content string `json:"content"`

	// Category is always set once categorization has run. It is one of the
	// canonical taxonomy names, CategoryGeneral or CategoryUnknown.
	Category string `json:"category"`

	Metadata *Metadata `json:"metadata"`

	// Timestamp is set at creation time if not supplied.
	Timestamp time.Time `json:"timestamp"`

	// StatusCode is the HTTP status of the originating fetch.
	// Zero means the page was never fetched.
	StatusCode int `json:"status_code"`

	// ContentHash is an xxhash of Content, used for duplicate-content
	// accounting. It is not part of the export schemas.
	ContentHash string `json:"-"`
}

// NewRecord creates a Record for a URL with the timestamp defaulted to now.
func NewRecord(url string) *Record {
	return &Record{
		URL:       url,
		Timestamp: time.Now(),
	}
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// Link is an anchor found on a page.
type Link struct {
	URL   string `json:"url"`
	Text  string `json:"text"`
	Title string `json:"title"`
}

// Image is an image reference found on a page.
type Image struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Title string `json:"title"`
}

// SchemaItem is one block of schema.org structured data: either a parsed
// JSON-LD value or a microdata item described by its type and properties.
type SchemaItem struct {
	// Data holds a parsed JSON-LD block. Nil for microdata items.
	Data any `json:"data,omitempty"`

	// Type and Properties describe a microdata item.
	Type       string            `json:"type,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Metadata caps. Hard limits regardless of document size, a defense
// against pathological pages.
const (
	MaxMetadataLinks     = 50
	MaxMetadataImages    = 20
	MaxMetadataMicrodata = 5
)

// Metadata holds the structured metadata extracted from a page. The key
// set is fixed; absent values are zero values, never missing keys.
type Metadata struct {
	URL          string            `json:"url"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Keywords     []string          `json:"keywords"`
	Author       string            `json:"author"`
	Language     string            `json:"language"`
	OGData       map[string]string `json:"og_data"`
	TwitterData  map[string]string `json:"twitter_data"`
	CanonicalURL string            `json:"canonical_url"`
	Links        []Link            `json:"links"`
	Images       []Image           `json:"images"`
	SchemaData   []SchemaItem      `json:"schema_data"`
}

// Map returns the metadata as a generic key/value mapping, one entry per
// recognized key. Exporters that stringify metadata consume this view.
func (m *Metadata) Map() map[string]any {
	return map[string]any{
		"url":           m.URL,
		"title":         m.Title,
		"description":   m.Description,
		"keywords":      m.Keywords,
		"author":        m.Author,
		"language":      m.Language,
		"og_data":       m.OGData,
		"twitter_data":  m.TwitterData,
		"canonical_url": m.CanonicalURL,
		"links":         m.Links,
		"images":        m.Images,
		"schema_data":   m.SchemaData,
	}
}
