// Package trafilatura implements content extraction using the go-trafilatura
// library as an alternative to the selector-cascade extractor.
package trafilatura

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webcat"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// boilerplateSelector matches structural and non-content elements stripped
// before extraction, the same denylist the selector-cascade extractor uses.
const boilerplateSelector = "script, style, nav, header, footer, aside, noscript, form, button"

// Ensure Extractor implements webcat.Extractor at compile time.
var _ webcat.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	stripped, err := stripBoilerplate(rawHTML)
	if err != nil {
		return nil, webcat.Errorf(webcat.EINVALID, "failed to parse HTML: %v", err)
	}

	// Fallback mode and the balanced-focus baseline rescue can both emit
	// the same content twice on short documents, so fallback stays off and
	// extraction favors precision.
	opts := trafilatura.Options{
		Focus: trafilatura.FavorPrecision,
	}

	result, err := trafilatura.Extract(strings.NewReader(stripped), opts)
	if err != nil {
		return nil, err
	}

	var text string
	if result.ContentNode != nil {
		text = webcat.CleanText(nodeText(result.ContentNode))
	}

	title := result.Metadata.Title
	if title == "" {
		title = webcat.NoTitle
	}

	return &webcat.ExtractResult{
		Title: title,
		Text:  text,
	}, nil
}

// stripBoilerplate removes denylisted elements from the document before it
// reaches trafilatura, so navigation and chrome text never leak into the
// extracted content.
func stripBoilerplate(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}
	doc.Find(boilerplateSelector).Remove()
	return doc.Html()
}

// nodeText collects the text content of an html.Node subtree, separating
// block-ish boundaries with newlines so CleanText can split on lines.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if node.Type == html.ElementNode {
			sb.WriteString("\n")
		}
	}
	walk(n)
	return sb.String()
}
