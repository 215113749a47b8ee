package webcat

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, resolved through the title cascade
	// (<title>, then <h1>, then og:title, then NoTitle).
	Title string

	// Text is the cleaned plain-text body, never raw HTML, capped at
	// MaxContentLength.
	Text string
}

// NoTitle is the literal fallback title when no source yields one.
const NoTitle = "No title found"

// Extractor extracts the main readable content from raw HTML.
// Implementations remove boilerplate and return cleaned text.
type Extractor interface {
	// Extract processes raw HTML and returns the title and cleaned body
	// text. Errors signal a parse-stage failure; callers degrade them to
	// an error-message title and empty text rather than aborting.
	Extract(html string) (*ExtractResult, error)
}

// MetadataExtractor pulls structured metadata out of raw HTML. Extract is a
// total function: every sub-extraction is independently defensive, a
// missing or malformed tag yields a default value, never an error.
type MetadataExtractor interface {
	Extract(html, url string) *Metadata
}
