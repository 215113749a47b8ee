package webcat

import (
	"context"
	"strings"
)

// Fallback category names. CategoryUnknown means categorization had nothing
// to work with (empty URL, or a content pass that matched nothing);
// CategoryGeneral means every pass ran and none matched.
const (
	CategoryGeneral = "general"
	CategoryUnknown = "unknown"
)

// Sentiment values reported by the LLM-backed categorizer.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Definition is one static taxonomy entry. Name is canonical and lowercase;
// DisplayName, Description and Examples exist for prompt construction only
// and are never returned by a Categorizer.
type Definition struct {
	Name        string
	DisplayName string
	Description string

	// Indicators are ordered keyword patterns matched against URL domain,
	// URL path and body text.
	Indicators []string

	Examples []string
}

// Categories is the fixed taxonomy. Its order matters: earlier categories
// win ties in every matching pass.
var Categories = []Definition{
	{
		Name:        "ecommerce",
		DisplayName: "E-commerce",
		Description: "Online shopping, product sales, marketplace websites",
		Indicators:  []string{"shop", "store", "cart", "buy", "product", "amazon", "ebay", "etsy", "alibaba"},
		Examples:    []string{"Amazon product page", "Online store", "Shopping cart"},
	},
	{
		Name:        "news",
		DisplayName: "News/Blog",
		Description: "News articles, blog posts, journalistic content",
		Indicators:  []string{"news", "article", "blog", "post", "story", "cnn", "bbc", "reuters", "nytimes"},
		Examples:    []string{"News website", "Personal blog", "Magazine article"},
	},
	{
		Name:        "education",
		DisplayName: "Reference",
		Description: "Educational content, wikis, reference materials",
		Indicators:  []string{"edu", "learn", "course", "tutorial", "academic", "university", "college", "school"},
		Examples:    []string{"Wikipedia article", "Dictionary entry", "Educational resource"},
	},
	{
		Name:        "social",
		DisplayName: "Social Media",
		Description: "Social networking platforms and user-generated content",
		Indicators:  []string{"social", "community", "forum", "discussion", "reddit", "stackoverflow", "quora", "facebook", "twitter", "instagram", "linkedin"},
		Examples:    []string{"Facebook page", "Twitter profile", "LinkedIn post"},
	},
	{
		Name:        "business",
		DisplayName: "Business",
		Description: "Corporate websites, business services, professional content",
		Indicators:  []string{"corp", "company", "business", "enterprise", "corporate", "services"},
		Examples:    []string{"Company homepage", "Business directory", "Service page"},
	},
	{
		Name:        "technology",
		DisplayName: "Technical",
		Description: "Programming, documentation, technical resources",
		Indicators:  []string{"tech", "software", "app", "api", "github", "developer", "programming", "code"},
		Examples:    []string{"API documentation", "Programming tutorial", "Code repository"},
	},
	{
		Name:        "health",
		DisplayName: "Health",
		Description: "Medical information, healthcare services, wellness content",
		Indicators:  []string{"health", "medical", "doctor", "hospital", "medicine", "wellness"},
		Examples:    []string{"Hospital website", "Medical reference", "Wellness blog"},
	},
	{
		Name:        "finance",
		DisplayName: "Finance",
		Description: "Banking, investment, trading and money management",
		Indicators:  []string{"bank", "finance", "money", "investment", "crypto", "trading", "stock"},
		Examples:    []string{"Bank homepage", "Trading platform", "Investment guide"},
	},
}

// displayAliases maps legacy display-cased category names onto the
// canonical set. "Entertainment" has no canonical counterpart and folds
// into general.
var displayAliases = map[string]string{
	"e-commerce":    "ecommerce",
	"news/blog":     "news",
	"technical":     "technology",
	"social media":  "social",
	"reference":     "education",
	"entertainment": CategoryGeneral,
}

// CanonicalCategory maps any category spelling, canonical or display-cased,
// onto the canonical set. Unrecognized names map to CategoryGeneral so that
// a Record's category is always a known value.
func CanonicalCategory(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return CategoryGeneral
	}
	if n == CategoryGeneral || n == CategoryUnknown {
		return n
	}
	for i := range Categories {
		if n == Categories[i].Name {
			return n
		}
	}
	if canonical, ok := displayAliases[n]; ok {
		return canonical
	}
	return CategoryGeneral
}

// CategoryResult is the outcome of categorizing one page.
type CategoryResult struct {
	// Category is a canonical taxonomy name, CategoryGeneral or
	// CategoryUnknown. Never empty.
	Category string `json:"category"`

	// Confidence is in [0, 1].
	Confidence float64 `json:"confidence"`

	Reasoning string   `json:"reasoning"`
	Keywords  []string `json:"keywords"`

	// Sentiment is one of the Sentiment constants. Rule-based results
	// always report neutral.
	Sentiment string `json:"sentiment"`

	// QualityScore is in [0, 1].
	QualityScore float64 `json:"quality_score"`

	Metadata map[string]any `json:"metadata"`

	// Fallback marks a locally computed substitute for a failed remote
	// classification.
	Fallback bool `json:"fallback,omitempty"`
}

// Categorizer assigns a topical category to a page. Content may be empty.
// Implementations must not return a nil result alongside a nil error.
type Categorizer interface {
	Categorize(ctx context.Context, url, content string) (*CategoryResult, error)
}
