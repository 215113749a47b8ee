// Package gemini provides an LLM-backed categorizer using Google Gemini.
// Remote failures never surface to callers: a locally computed fallback
// analysis is substituted instead.
package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/webcat"
	"google.golang.org/genai"
)

// contentPreviewLimit caps how much page text is sent with a prompt.
const contentPreviewLimit = 2000

// Ensure Categorizer implements webcat.Categorizer at compile time.
var _ webcat.Categorizer = (*Categorizer)(nil)

// Categorizer implements webcat.Categorizer using Google Gemini.
type Categorizer struct {
	client *genai.Client
	config webcat.Config
}

// NewCategorizer creates a new Categorizer. The config supplies the model
// name, token limit and temperature.
func NewCategorizer(client *genai.Client, config webcat.Config) *Categorizer {
	return &Categorizer{client: client, config: config}
}

// Categorize classifies a page from its URL and content. It never returns
// an error: transport failures and unusable responses degrade to
// FallbackAnalysis.
func (c *Categorizer) Categorize(ctx context.Context, url, content string) (*webcat.CategoryResult, error) {
	return c.Analyze(ctx, url, "", content), nil
}

// Analyze is Categorize with the page title included in the prompt.
func (c *Categorizer) Analyze(ctx context.Context, url, title, content string) *webcat.CategoryResult {
	if c.client == nil {
		return FallbackAnalysis(url, content)
	}

	prompt := BuildCategorizationPrompt(url, title, content)

	result, err := c.client.Models.GenerateContent(ctx, c.config.Model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		c.buildConfig(),
	)
	if err != nil || result == nil {
		return FallbackAnalysis(url, content)
	}

	analysis, err := ParseAnalysis(result.Text())
	if err != nil {
		return FallbackAnalysis(url, content)
	}
	return analysis
}

// Enhance extracts category-specific structured insight from content.
// Failures return a degraded stub so callers never have to branch.
func (c *Categorizer) Enhance(ctx context.Context, content, category string) map[string]any {
	if c.client == nil {
		return enhancementStub()
	}

	prompt := BuildEnhancementPrompt(content, category)

	// Lower temperature for factual extraction.
	temp := float32(0.1)
	config := c.buildConfig()
	config.Temperature = &temp

	result, err := c.client.Models.GenerateContent(ctx, c.config.Model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil || result == nil {
		return enhancementStub()
	}

	var enhanced map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(result.Text())), &enhanced); err != nil {
		return enhancementStub()
	}
	return enhanced
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func (c *Categorizer) buildConfig() *genai.GenerateContentConfig {
	temp := float32(c.config.Temperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert content categorization AI. Always respond with valid JSON only.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: int32(c.config.MaxTokens),
	}
}

// ParseAnalysis parses a model response into a CategoryResult. The category
// is normalized onto the canonical taxonomy; sentiment defaults to neutral.
func ParseAnalysis(text string) (*webcat.CategoryResult, error) {
	var raw struct {
		Category     string         `json:"category"`
		Confidence   float64        `json:"confidence"`
		Reasoning    string         `json:"reasoning"`
		Keywords     []string       `json:"keywords"`
		Sentiment    string         `json:"sentiment"`
		QualityScore float64        `json:"quality_score"`
		Metadata     map[string]any `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &raw); err != nil {
		return nil, webcat.Errorf(webcat.EINVALID, "unparseable model response: %v", err)
	}

	sentiment := raw.Sentiment
	switch sentiment {
	case webcat.SentimentPositive, webcat.SentimentNeutral, webcat.SentimentNegative:
	default:
		sentiment = webcat.SentimentNeutral
	}

	keywords := raw.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	metadata := raw.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &webcat.CategoryResult{
		Category:     webcat.CanonicalCategory(raw.Category),
		Confidence:   clamp01(raw.Confidence),
		Reasoning:    raw.Reasoning,
		Keywords:     keywords,
		Sentiment:    sentiment,
		QualityScore: clamp01(raw.QualityScore),
		Metadata:     metadata,
	}, nil
}

// FallbackAnalysis keyword-sniffs the URL and content when the remote
// classifier is unavailable or returned unusable output. Confidence is a
// fixed low value and the result is flagged as a fallback.
func FallbackAnalysis(url, content string) *webcat.CategoryResult {
	haystack := strings.ToLower(url) + " " + strings.ToLower(content)

	category := webcat.CategoryGeneral
	switch {
	case containsAny(haystack, "shop", "buy", "price", "cart"):
		category = "ecommerce"
	case containsAny(haystack, "news", "article", "blog"):
		category = "news"
	case containsAny(haystack, "code", "api", "github"):
		category = "technology"
	}

	return &webcat.CategoryResult{
		Category:     category,
		Confidence:   0.3,
		Reasoning:    "Fallback categorization due to AI analysis failure",
		Keywords:     []string{},
		Sentiment:    webcat.SentimentNeutral,
		QualityScore: 0.5,
		Metadata:     map[string]any{"fallback": true, "ai_failure": true},
		Fallback:     true,
	}
}

// stripCodeFences removes a ```json ... ``` wrapper if the model added one.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}

func enhancementStub() map[string]any {
	return map[string]any{
		"summary":      "Content analysis unavailable",
		"key_points":   []any{},
		"entities":     map[string]any{},
		"action_items": []any{},
		"data_quality": map[string]any{"completeness": 0.0, "accuracy_confidence": 0.0},
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
