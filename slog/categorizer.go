package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webcat"
)

// Ensure LoggingCategorizer implements webcat.Categorizer.
var _ webcat.Categorizer = (*LoggingCategorizer)(nil)

// LoggingCategorizer wraps a Categorizer with per-call logging.
type LoggingCategorizer struct {
	next   webcat.Categorizer
	logger *slog.Logger
}

// NewLoggingCategorizer creates a new LoggingCategorizer.
func NewLoggingCategorizer(next webcat.Categorizer, logger *slog.Logger) *LoggingCategorizer {
	return &LoggingCategorizer{next: next, logger: logger}
}

// Categorize delegates to the wrapped categorizer and logs the operation.
func (c *LoggingCategorizer) Categorize(ctx context.Context, url, content string) (result *webcat.CategoryResult, err error) {
	defer func(begin time.Time) {
		var category string
		var confidence float64
		var fallback bool
		if result != nil {
			category = result.Category
			confidence = result.Confidence
			fallback = result.Fallback
		}
		c.logger.Info("categorize",
			"url", url,
			"category", category,
			"confidence", confidence,
			"fallback", fallback,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Categorize(ctx, url, content)
}
