// Package goquery provides the default content and metadata extractors,
// built on CSS selection over parsed HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webcat"
)

// excludedTags are structural and non-content elements removed from the
// tree before any body text extraction.
const excludedTags = "script, style, nav, header, footer, aside, noscript, form, button"

// contentSelectors is the prioritized cascade of content containers. The
// first match wins; semantic tags outrank class and id conventions.
var contentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	".main-content",
	".content",
	".post-content",
	".entry-content",
	"#main-content",
	"#content",
}

// Ensure Extractor implements webcat.Extractor at compile time.
var _ webcat.Extractor = (*Extractor)(nil)

// Extractor extracts the page title and main readable text from raw HTML
// using a heuristic cascade: semantic containers, then conventional
// class/id containers, then the body, then the whole document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and cleaned body text.
func (e *Extractor) Extract(rawHTML string) (*webcat.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webcat.Errorf(webcat.EINVALID, "failed to parse HTML: %v", err)
	}

	// Title resolves before boilerplate removal; og:title lives in <head>
	// but <h1> may sit inside a <header> that the denylist would drop.
	title := extractTitle(doc)

	doc.Find(excludedTags).Remove()

	return &webcat.ExtractResult{
		Title: title,
		Text:  extractBody(doc),
	}, nil
}

// extractTitle resolves the title cascade: <title>, first <h1>, og:title,
// then the literal fallback.
func extractTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	if c, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return webcat.NoTitle
}

// extractBody returns cleaned text from the first matching content
// container, from the <body> if no container matched (or the match was
// empty after cleaning), or from the whole document as a last resort.
func extractBody(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := webcat.CleanText(sel.Text()); text != "" {
			return text
		}
		break
	}

	body := doc.Find("body").First()
	if body.Length() > 0 {
		return webcat.CleanText(body.Text())
	}

	return webcat.CleanText(doc.Text())
}
