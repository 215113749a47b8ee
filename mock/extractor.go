package mock

import "github.com/fwojciec/webcat"

var _ webcat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webcat.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webcat.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webcat.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ webcat.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of webcat.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(html, url string) *webcat.Metadata
}

func (e *MetadataExtractor) Extract(html, url string) *webcat.Metadata {
	return e.ExtractFn(html, url)
}
