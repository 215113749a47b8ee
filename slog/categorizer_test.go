package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/mock"
	webslog "github.com/fwojciec/webcat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCategorizer_Categorize(t *testing.T) {
	t.Parallel()

	t.Run("logs category and confidence", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Categorizer{
			CategorizeFn: func(ctx context.Context, url, content string) (*webcat.CategoryResult, error) {
				return &webcat.CategoryResult{Category: "ecommerce", Confidence: 0.9}, nil
			},
		}

		categorizer := webslog.NewLoggingCategorizer(inner, logger)
		result, err := categorizer.Categorize(context.Background(), "https://shop.example.com", "buy now")

		require.NoError(t, err)
		assert.Equal(t, "ecommerce", result.Category)
		output := buf.String()
		assert.Contains(t, output, "categorize")
		assert.Contains(t, output, "category=ecommerce")
		assert.Contains(t, output, "confidence=0.9")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs fallback flag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Categorizer{
			CategorizeFn: func(ctx context.Context, url, content string) (*webcat.CategoryResult, error) {
				return &webcat.CategoryResult{Category: "general", Confidence: 0.3, Fallback: true}, nil
			},
		}

		categorizer := webslog.NewLoggingCategorizer(inner, logger)
		_, err := categorizer.Categorize(context.Background(), "https://example.com", "")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "fallback=true")
	})
}
