package scrape_test

import (
	"context"
	"testing"

	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_EmptyScraper(t *testing.T) {
	t.Parallel()

	s := newScraper()
	stats := s.Stats()

	assert.Equal(t, 0, stats.TotalScraped)
	assert.Empty(t, stats.Categories)
	assert.Empty(t, stats.StatusCodes)
}

func TestStats_Aggregates(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"https://shop.example.com/a": "buy this product now",
		"https://shop.example.com/b": "buy this product now",
		"https://news.other.com/c":   "breaking news story today",
	}
	categories := map[string]string{
		"https://shop.example.com/a": "ecommerce",
		"https://shop.example.com/b": "ecommerce",
		"https://news.other.com/c":   "news",
	}

	s := newScraper()
	s.Fetcher = &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*webcat.FetchResult, error) {
			return &webcat.FetchResult{StatusCode: 200, Body: bodies[url]}, nil
		},
	}
	s.Extractor = &mock.Extractor{
		ExtractFn: func(html string) (*webcat.ExtractResult, error) {
			return &webcat.ExtractResult{Title: "Page", Text: html}, nil
		},
	}
	s.Categorizer = &mock.Categorizer{
		CategorizeFn: func(ctx context.Context, url, content string) (*webcat.CategoryResult, error) {
			return &webcat.CategoryResult{Category: categories[url]}, nil
		},
	}

	_, err := s.ScrapeAll(context.Background(), []string{
		"https://shop.example.com/a",
		"https://shop.example.com/b",
		"https://news.other.com/c",
	})
	require.NoError(t, err)

	stats := s.Stats()

	assert.Equal(t, 3, stats.TotalScraped)
	assert.Equal(t, map[string]int{"ecommerce": 2, "news": 1}, stats.Categories)
	assert.Equal(t, map[int]int{200: 3}, stats.StatusCodes)
	assert.Equal(t, 2, stats.Domains)

	// Two records carry identical content, so one counts as a duplicate.
	assert.Equal(t, 1, stats.DuplicateContent)

	assert.Equal(t, len("buy this product now"), stats.ContentLength.Min)
	assert.Equal(t, len("breaking news story today"), stats.ContentLength.Max)
	assert.InDelta(t, float64(20+20+25)/3, stats.ContentLength.Mean, 0.001)
}
