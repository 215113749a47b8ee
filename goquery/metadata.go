package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webcat"
)

// Ensure MetadataExtractor implements webcat.MetadataExtractor at compile time.
var _ webcat.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor pulls structured metadata out of raw HTML. Every
// sub-extraction is independently defensive: a missing or malformed tag
// yields a default value, never a failure of the whole extraction.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// Extract returns the full fixed-key metadata for a page. On unparseable
// HTML it returns metadata holding only the URL and defaults.
func (e *MetadataExtractor) Extract(rawHTML, url string) *webcat.Metadata {
	m := &webcat.Metadata{
		URL:         url,
		Keywords:    []string{},
		OGData:      map[string]string{},
		TwitterData: map[string]string{},
		Links:       []webcat.Link{},
		Images:      []webcat.Image{},
		SchemaData:  []webcat.SchemaItem{},
		Language:    "en",
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		m.Title = webcat.NoTitle
		return m
	}

	m.Title = metaTitle(doc)
	m.Description = metaDescription(doc)
	m.Keywords = metaKeywords(doc)
	m.Author = metaAuthor(doc)
	m.Language = metaLanguage(doc)
	m.OGData = metaProperties(doc, "property", "og:")
	m.TwitterData = metaProperties(doc, "name", "twitter:")
	m.CanonicalURL = canonicalURL(doc)
	m.Links = pageLinks(doc)
	m.Images = pageImages(doc)
	m.SchemaData = schemaData(doc)

	return m
}

// metaTitle runs the content extractor's title cascade with the Twitter
// card title as an extra fallback between og:title and <h1>.
func metaTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	for _, sel := range []string{`meta[property="og:title"]`, `meta[name="twitter:title"]`} {
		if c, ok := doc.Find(sel).First().Attr("content"); ok {
			if t := strings.TrimSpace(c); t != "" {
				return t
			}
		}
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return webcat.NoTitle
}

func metaDescription(doc *goquery.Document) string {
	sources := []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
		`meta[name="twitter:description"]`,
	}
	for _, sel := range sources {
		if c, ok := doc.Find(sel).First().Attr("content"); ok {
			if d := strings.TrimSpace(c); d != "" {
				return d
			}
		}
	}
	return ""
}

func metaKeywords(doc *goquery.Document) []string {
	keywords := []string{}
	c, ok := doc.Find(`meta[name="keywords"]`).First().Attr("content")
	if !ok {
		return keywords
	}
	for _, kw := range strings.Split(c, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func metaAuthor(doc *goquery.Document) string {
	sources := []string{
		`meta[name="author"]`,
		`meta[property="article:author"]`,
		`meta[name="twitter:creator"]`,
	}
	for _, sel := range sources {
		if c, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return ""
}

func metaLanguage(doc *goquery.Document) string {
	if lang, ok := doc.Find("html").First().Attr("lang"); ok && lang != "" {
		return lang
	}
	if c, ok := doc.Find(`meta[http-equiv="content-language"]`).First().Attr("content"); ok && c != "" {
		return c
	}
	return "en"
}

// metaProperties collects every meta tag whose attr value carries the given
// prefix, e.g. og:* properties or twitter:* names.
func metaProperties(doc *goquery.Document, attr, prefix string) map[string]string {
	data := map[string]string{}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr(attr)
		if !ok || !strings.HasPrefix(name, prefix) {
			return
		}
		if content, ok := sel.Attr("content"); ok {
			data[name] = content
		}
	})
	return data
}

func canonicalURL(doc *goquery.Document) string {
	href, _ := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	return href
}

func pageLinks(doc *goquery.Document) []webcat.Link {
	links := []webcat.Link{}
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		title, _ := sel.Attr("title")
		links = append(links, webcat.Link{
			URL:   href,
			Text:  strings.TrimSpace(sel.Text()),
			Title: title,
		})
		return len(links) < webcat.MaxMetadataLinks
	})
	return links
}

func pageImages(doc *goquery.Document) []webcat.Image {
	images := []webcat.Image{}
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		alt, _ := sel.Attr("alt")
		title, _ := sel.Attr("title")
		images = append(images, webcat.Image{Src: src, Alt: alt, Title: title})
		return len(images) < webcat.MaxMetadataImages
	})
	return images
}

// schemaData combines parsed JSON-LD blocks, each parsed independently with
// malformed JSON silently skipped, with up to MaxMetadataMicrodata
// microdata items.
func schemaData(doc *goquery.Document) []webcat.SchemaItem {
	items := []webcat.SchemaItem{}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return
		}
		items = append(items, webcat.SchemaItem{Data: data})
	})

	count := 0
	doc.Find("[itemtype]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if count >= webcat.MaxMetadataMicrodata {
			return false
		}
		count++

		itemtype, _ := sel.Attr("itemtype")
		props := map[string]string{}
		sel.Find("[itemprop]").Each(func(_ int, prop *goquery.Selection) {
			name, _ := prop.Attr("itemprop")
			if name == "" {
				return
			}
			if content, ok := prop.Attr("content"); ok {
				props[name] = content
			} else if text := strings.TrimSpace(prop.Text()); text != "" {
				props[name] = text
			}
		})

		if len(props) > 0 {
			items = append(items, webcat.SchemaItem{Type: itemtype, Properties: props})
		}
		return true
	})

	return items
}
