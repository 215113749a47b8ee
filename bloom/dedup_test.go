package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/webcat/bloom"
	"github.com/stretchr/testify/assert"
)

func TestDedup_FirstSightingIsNotSeen(t *testing.T) {
	t.Parallel()

	d := bloom.NewDedup(100, 0.01)

	assert.False(t, d.Seen("https://example.com/a"))
	assert.True(t, d.Seen("https://example.com/a"))
}

func TestDedup_CountsDistinctURLs(t *testing.T) {
	t.Parallel()

	d := bloom.NewDedup(100, 0.01)

	d.Seen("https://example.com/a")
	d.Seen("https://example.com/b")
	d.Seen("https://example.com/a")

	assert.Equal(t, uint(2), d.Count())
}

func TestDedup_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	d := bloom.NewDedup(1000, 0.01)

	urls := make([]string, 500)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://example.com/page/%d", i)
		d.Seen(urls[i])
	}

	for _, u := range urls {
		assert.True(t, d.Seen(u), "url %s should be recorded", u)
	}
}

func TestDedup_TinyBatchGetsUsableFilter(t *testing.T) {
	t.Parallel()

	d := bloom.NewDedup(0, 0.01)

	assert.False(t, d.Seen("https://example.com"))
	assert.True(t, d.Seen("https://example.com"))
}
