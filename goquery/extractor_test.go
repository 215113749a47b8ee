package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_TitleCascade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "title tag wins",
			html: `<html><head><title>Page Title</title><meta property="og:title" content="OG Title"></head><body><h1>Heading</h1></body></html>`,
			want: "Page Title",
		},
		{
			name: "h1 when no title tag",
			html: `<html><head><meta property="og:title" content="OG Title"></head><body><h1>Heading</h1></body></html>`,
			want: "Heading",
		},
		{
			name: "og:title when no title or h1",
			html: `<html><head><meta property="og:title" content="OG Title"></head><body><p>text</p></body></html>`,
			want: "OG Title",
		},
		{
			name: "fallback string when nothing matches",
			html: `<html><body><p>text</p></body></html>`,
			want: webcat.NoTitle,
		},
		{
			name: "empty title tag falls through to h1",
			html: `<html><head><title>   </title></head><body><h1>Real Heading</h1></body></html>`,
			want: "Real Heading",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := goquery.NewExtractor().Extract(tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Title)
		})
	}
}

func TestExtractor_Extract_BodyCascade(t *testing.T) {
	t.Parallel()

	t.Run("prefers main over article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article>Article content here</article>
			<main>Main content here</main>
		</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Main content here", result.Text)
	})

	t.Run("uses role=main ahead of class conventions", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="content">Class content here</div>
			<div role="main">Role main content</div>
		</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Role main content", result.Text)
	})

	t.Run("falls back to body when no container matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>Plain body content</div></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Plain body content", result.Text)
	})

	t.Run("removes boilerplate tags before extraction", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav>Navigation links</nav>
			<script>var x = 1;</script>
			<main>Real content paragraph</main>
			<footer>Footer text</footer>
		</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Real content paragraph", result.Text)
		assert.NotContains(t, result.Text, "Navigation")
	})

	t.Run("drops short lines and collapses whitespace", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><main>First    line\nok\nSecond line</main></body></html>"

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "First line Second line", result.Text)
	})

	t.Run("caps content length with truncation marker", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><main>" + strings.Repeat("a", 15000) + "</main></body></html>"

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.LessOrEqual(t, len(result.Text), webcat.MaxContentLength+len(webcat.TruncationMarker))
		assert.True(t, strings.HasSuffix(result.Text, webcat.TruncationMarker))
	})
}
