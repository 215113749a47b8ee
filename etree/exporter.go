// Package etree provides XML export of scraped records using beevik/etree.
package etree

import (
	"fmt"
	"maps"
	"slices"

	"github.com/beevik/etree"
	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/fs"
)

// xmlContentLimit caps the content element; full text belongs in JSON.
const xmlContentLimit = 2000

// Ensure Exporter implements webcat.Exporter at compile time.
var _ webcat.Exporter = (*Exporter)(nil)

// Exporter writes records as an indented XML document rooted at
// <scraped_data>, one <item> per record with a <metadata> child holding one
// stringified sub-element per metadata key.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the records to filename as XML and returns the absolute path
// written. A missing .xml extension is appended.
func (e *Exporter) Export(records []*webcat.Record, filename string) (string, error) {
	path, err := fs.PreparePath(filename, ".xml")
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("scraped_data")

	for _, r := range records {
		item := root.CreateElement("item")
		item.CreateElement("url").SetText(r.URL)
		item.CreateElement("title").SetText(r.Title)

		content := r.Content
		if len(content) > xmlContentLimit {
			content = webcat.Truncate(content, xmlContentLimit) + "..."
		}
		item.CreateElement("content").SetText(content)

		item.CreateElement("category").SetText(r.Category)
		item.CreateElement("timestamp").SetText(fs.FormatTimestamp(r.Timestamp))

		if r.Metadata != nil {
			meta := item.CreateElement("metadata")
			values := r.Metadata.Map()
			// Sorted keys keep the output deterministic.
			for _, key := range slices.Sorted(maps.Keys(values)) {
				meta.CreateElement(key).SetText(fmt.Sprintf("%v", values[key]))
			}
		}
	}

	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return "", err
	}
	return path, nil
}
