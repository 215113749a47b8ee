// Package rules provides the rule-based categorizer: a fixed ordered
// taxonomy of keyword patterns matched against URL domain, URL path and
// body text, with occurrence scoring as the signal of last resort.
package rules

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/webcat"
)

// Confidence levels by signal strength. URL structure is a curated signal;
// content scoring is noisier.
const (
	domainConfidence  = 1.0
	pathConfidence    = 0.9
	contentConfidence = 0.6
)

// Ensure Categorizer implements webcat.Categorizer at compile time.
var _ webcat.Categorizer = (*Categorizer)(nil)

// Categorizer assigns a category by checking domain patterns first, then
// path patterns, then scoring content by total pattern occurrences. Earlier
// taxonomy entries win ties in every pass.
type Categorizer struct {
	categories []category
}

type category struct {
	name     string
	patterns []*regexp.Regexp
}

// NewCategorizer creates a Categorizer over the canonical taxonomy.
func NewCategorizer() *Categorizer {
	c := &Categorizer{}
	for _, def := range webcat.Categories {
		cat := category{name: def.Name}
		for _, indicator := range def.Indicators {
			cat.patterns = append(cat.patterns, regexp.MustCompile(indicator))
		}
		c.categories = append(c.categories, cat)
	}
	return c
}

// Categorize returns the category for a URL and optional content. It never
// returns an error; the result category is a canonical taxonomy name,
// CategoryGeneral or CategoryUnknown.
func (c *Categorizer) Categorize(_ context.Context, rawURL, content string) (*webcat.CategoryResult, error) {
	if rawURL == "" {
		return result(webcat.CategoryUnknown, 0, "URL is empty"), nil
	}

	domain, path := splitURL(rawURL)

	// Domain pass takes absolute precedence: URL structure is a stronger,
	// cheaper signal than body text.
	for _, cat := range c.categories {
		if pattern := matchAny(cat.patterns, domain); pattern != "" {
			return result(cat.name, domainConfidence,
				fmt.Sprintf("domain matched pattern %q", pattern)), nil
		}
	}

	for _, cat := range c.categories {
		if pattern := matchAny(cat.patterns, path); pattern != "" {
			return result(cat.name, pathConfidence,
				fmt.Sprintf("path matched pattern %q", pattern)), nil
		}
	}

	if content != "" {
		if name, score := c.scoreContent(content); name != webcat.CategoryUnknown {
			return result(name, contentConfidence,
				fmt.Sprintf("content scored %d pattern occurrences", score)), nil
		}
	}

	return result(webcat.CategoryGeneral, 0, "no pattern matched"), nil
}

// scoreContent counts total pattern occurrences per category and returns
// the highest scorer. Ties break toward the taxonomy-earlier category
// because strictly-greater comparison keeps the first maximum.
func (c *Categorizer) scoreContent(content string) (string, int) {
	lower := strings.ToLower(content)

	best := webcat.CategoryUnknown
	bestScore := 0
	for _, cat := range c.categories {
		score := 0
		for _, p := range cat.patterns {
			score += len(p.FindAllStringIndex(lower, -1))
		}
		if score > bestScore {
			best = cat.name
			bestScore = score
		}
	}
	return best, bestScore
}

// splitURL lowercases and splits a URL into domain and path, treating the
// whole string as the domain when parsing fails.
func splitURL(rawURL string) (domain, path string) {
	lower := strings.ToLower(rawURL)
	parsed, err := url.Parse(lower)
	if err != nil || parsed.Host == "" {
		return lower, ""
	}
	return parsed.Host, parsed.Path
}

func matchAny(patterns []*regexp.Regexp, s string) string {
	if s == "" {
		return ""
	}
	for _, p := range patterns {
		if p.MatchString(s) {
			return p.String()
		}
	}
	return ""
}

func result(name string, confidence float64, reasoning string) *webcat.CategoryResult {
	return &webcat.CategoryResult{
		Category:   name,
		Confidence: confidence,
		Reasoning:  reasoning,
		Keywords:   []string{},
		Sentiment:  webcat.SentimentNeutral,
		Metadata:   map[string]any{},
	}
}
