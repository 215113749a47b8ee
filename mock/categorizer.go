package mock

import (
	"context"

	"github.com/fwojciec/webcat"
)

var _ webcat.Categorizer = (*Categorizer)(nil)

// Categorizer is a mock implementation of webcat.Categorizer.
type Categorizer struct {
	CategorizeFn func(ctx context.Context, url, content string) (*webcat.CategoryResult, error)
}

func (c *Categorizer) Categorize(ctx context.Context, url, content string) (*webcat.CategoryResult, error) {
	return c.CategorizeFn(ctx, url, content)
}
