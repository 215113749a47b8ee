package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/webcat"
)

// BuildCategorizationPrompt builds the structured categorization prompt:
// role definition, taxonomy definitions with indicators and examples,
// step-by-step reasoning instructions, and a strict JSON output contract.
func BuildCategorizationPrompt(url, title, content string) string {
	if title == "" {
		title = "No title available"
	}
	if content == "" {
		content = "No content available"
	}

	var sb strings.Builder

	sb.WriteString("# Role & Objective\n")
	sb.WriteString("You are a Content Categorization Specialist. Classify web content into the predefined categories below and explain your reasoning.\n\n")

	sb.WriteString("## Category Definitions\n")
	for _, def := range webcat.Categories {
		fmt.Fprintf(&sb, "**%s** (respond with %q): %s\n", def.DisplayName, def.Name, def.Description)
		fmt.Fprintf(&sb, "   Indicators: %s\n", strings.Join(firstN(def.Indicators, 5), ", "))
		fmt.Fprintf(&sb, "   Examples: %s\n", strings.Join(firstN(def.Examples, 2), ", "))
	}
	fmt.Fprintf(&sb, "**General** (respond with %q): content that fits no category above.\n\n", webcat.CategoryGeneral)

	sb.WriteString("# Reasoning Steps\n")
	sb.WriteString("1. Analyze URL structure and domain patterns\n")
	sb.WriteString("2. Examine title for category indicators\n")
	sb.WriteString("3. Scan content for category-specific keywords\n")
	sb.WriteString("4. Assign a confidence score based on evidence strength\n")
	sb.WriteString("5. Extract the most relevant keywords (5-10 words)\n")
	sb.WriteString("6. Assess content sentiment and quality\n\n")

	sb.WriteString("# Output Format\n")
	sb.WriteString("Respond with this exact JSON structure and nothing else:\n")
	sb.WriteString(`{"category": "...", "confidence": 0.95, "reasoning": "...", "keywords": ["..."], "sentiment": "positive|neutral|negative", "quality_score": 0.85, "metadata": {}}`)
	sb.WriteString("\n\n# Content to Analyze\n")
	fmt.Fprintf(&sb, "**URL**: %s\n", url)
	fmt.Fprintf(&sb, "**Title**: %s\n", title)
	fmt.Fprintf(&sb, "**Content Preview**: %s\n", preview(content, contentPreviewLimit))

	return sb.String()
}

// BuildEnhancementPrompt builds the category-focused content enhancement
// prompt used by Categorizer.Enhance.
func BuildEnhancementPrompt(content, category string) string {
	var sb strings.Builder

	sb.WriteString("# Role & Objective\n")
	fmt.Fprintf(&sb, "You are a Content Enhancement Specialist. Extract structured, valuable information from the %s content below.\n\n", category)

	fmt.Fprintf(&sb, "# Category-Specific Focus\n%s\n\n", categoryFocus(category))

	sb.WriteString("# Output Format\n")
	sb.WriteString("Respond with this exact JSON structure and nothing else:\n")
	sb.WriteString(`{"summary": "...", "key_points": ["..."], "entities": {"people": [], "organizations": [], "locations": [], "dates": []}, "action_items": ["..."], "data_quality": {"completeness": 0.85, "accuracy_confidence": 0.9, "freshness": "recent|moderate|outdated"}}`)
	sb.WriteString("\n\n# Content to Enhance\n")
	sb.WriteString(preview(content, 3000))

	return sb.String()
}

// categoryFocus returns per-category extraction guidance.
func categoryFocus(category string) string {
	focus := map[string]string{
		"ecommerce":  "Product details, pricing, availability, reviews, specifications",
		"news":       "Headlines, publication dates, authors, sources, key events",
		"technology": "Code examples, API endpoints, version numbers, dependencies",
		"social":     "User engagement, hashtags, mentions, viral content",
		"education":  "Definitions, citations, accuracy, educational value",
		"business":   "Contact information, services, company details, credentials",
		"health":     "Conditions, treatments, practitioners, medical sources",
		"finance":    "Instruments, prices, institutions, regulatory context",
	}
	if f, ok := focus[webcat.CanonicalCategory(category)]; ok {
		return f
	}
	return "Main topics, purpose, target audience, key messages"
}

func preview(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return webcat.Truncate(s, limit) + "..."
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
