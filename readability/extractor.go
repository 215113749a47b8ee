// Package readability implements content extraction using the go-readability
// library as an alternative to the selector-cascade extractor.
package readability

import (
	"strings"

	"github.com/fwojciec/webcat"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webcat.Extractor at compile time.
var _ webcat.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and cleaned body text.
func (e *Extractor) Extract(rawHTML string) (*webcat.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webcat.Errorf(webcat.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	title := article.Title
	if title == "" {
		title = webcat.NoTitle
	}

	return &webcat.ExtractResult{
		Title: title,
		Text:  webcat.CleanText(article.TextContent),
	}, nil
}
