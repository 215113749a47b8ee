// Package scrape provides scraping orchestration. It coordinates URL
// admission, fetching, content and metadata extraction, and categorization,
// and accumulates the resulting records for export.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/bloom"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// progressInterval is how often batch progress is logged.
const progressInterval = 5

// dedupFalsePositiveRate is the acceptable false positive rate for
// batch URL deduplication.
const dedupFalsePositiveRate = 0.01

// Scraper orchestrates the scraping pipeline. URLs are processed
// sequentially, one at a time; the accumulated records are owned
// exclusively by the Scraper and must not be read while a batch is running.
type Scraper struct {
	Validator   webcat.Validator
	Fetcher     webcat.Fetcher
	Extractor   webcat.Extractor
	Metadata    webcat.MetadataExtractor
	Categorizer webcat.Categorizer

	// RateLimiter, if set, enforces a per-domain request rate on top of
	// the randomized pacing delay.
	RateLimiter *DomainLimiter

	// DelayMin and DelayMax bound the randomized pause inserted before
	// each fetch. Zero values disable pacing.
	DelayMin time.Duration
	DelayMax time.Duration

	// Logger receives progress and failure events. Nil disables logging.
	Logger *slog.Logger

	records []*webcat.Record
}

// ScrapeURL processes a single URL through the full pipeline and returns the
// assembled record. Admission rejections and fetch failures return an error;
// extraction and categorization failures degrade the record instead.
func (s *Scraper) ScrapeURL(ctx context.Context, rawURL string) (*webcat.Record, error) {
	logger := s.logger()

	check := s.Validator.Validate(rawURL)
	if !check.Valid {
		logger.Warn("url rejected", "url", rawURL, "reason", check.Reason)
		return nil, webcat.Errorf(webcat.EINVALID, "%s", check.Reason)
	}

	if err := s.pace(ctx); err != nil {
		return nil, err
	}
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, domainOf(rawURL)); err != nil {
			return nil, err
		}
	}

	logger.Info("scraping", "url", rawURL)
	resp, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		logger.Error("fetch failed", "url", rawURL, "error", err)
		return nil, err
	}

	record := webcat.NewRecord(rawURL)
	record.StatusCode = resp.StatusCode

	// Content and metadata extraction are independent reads of the same
	// document and run in parallel. Neither can fail the record: malformed
	// HTML degrades to an error title and empty content, and metadata
	// extraction is a total function.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		extracted, err := s.Extractor.Extract(resp.Body)
		if err != nil {
			record.Title = fmt.Sprintf("Error processing content: %v", err)
			record.Content = ""
			return nil
		}
		record.Title = extracted.Title
		record.Content = extracted.Text
		return nil
	})
	g.Go(func() error {
		record.Metadata = s.Metadata.Extract(resp.Body, rawURL)
		return nil
	})
	_ = g.Wait()

	record.ContentHash = hashContent(record.Content)

	result, err := s.Categorizer.Categorize(ctx, rawURL, record.Content)
	if err != nil {
		logger.Error("categorization failed", "url", rawURL, "error", err)
		record.Category = webcat.CategoryGeneral
	} else {
		record.Category = result.Category
	}

	s.records = append(s.records, record)
	logger.Info("scraped", "url", rawURL, "category", record.Category, "status", record.StatusCode)

	return record, nil
}

// ScrapeAll processes a batch of URLs sequentially, skipping duplicates and
// continuing past per-URL failures. It returns the records for the URLs that
// succeeded. A canceled context stops the batch and returns what was
// collected so far along with the context error.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) ([]*webcat.Record, error) {
	logger := s.logger().With("run", uuid.NewString())
	seen := bloom.NewDedup(uint(len(urls)), dedupFalsePositiveRate)

	scraped := make([]*webcat.Record, 0, len(urls))
	logger.Info("starting batch", "total", len(urls))

	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return scraped, err
		}
		if seen.Seen(u) {
			logger.Debug("skipping duplicate url", "url", u)
			continue
		}

		record, err := s.ScrapeURL(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return scraped, ctx.Err()
			}
			// Per-URL failures never abort the batch; ScrapeURL has
			// already logged the cause.
		} else {
			scraped = append(scraped, record)
		}

		if (i+1)%progressInterval == 0 {
			logger.Info("batch progress",
				"completed", i+1,
				"total", len(urls),
				"success_rate", successRate(len(scraped), i+1))
		}
	}

	logger.Info("batch completed",
		"succeeded", len(scraped),
		"total", len(urls),
		"success_rate", successRate(len(scraped), len(urls)))

	return scraped, nil
}

// Records returns all records collected so far, across single and batch
// scrapes.
func (s *Scraper) Records() []*webcat.Record {
	return s.records
}

// pace sleeps for a duration drawn uniformly from [DelayMin, DelayMax],
// honoring context cancellation.
func (s *Scraper) pace(ctx context.Context) error {
	d := s.DelayMin
	if span := s.DelayMax - s.DelayMin; span > 0 {
		d += rand.N(span)
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// domainOf returns the host of a URL, or the raw string when parsing yields
// no host.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}

// hashContent computes an xxhash of the content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

func successRate(succeeded, attempted int) string {
	if attempted == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(succeeded)/float64(attempted)*100)
}
