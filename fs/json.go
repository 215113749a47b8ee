package fs

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fwojciec/webcat"
)

// Ensure JSONExporter implements webcat.Exporter at compile time.
var _ webcat.Exporter = (*JSONExporter)(nil)

// JSONExporter writes records as a JSON document wrapped in an export
// envelope carrying the export timestamp and item count.
type JSONExporter struct{}

// NewJSONExporter creates a new JSONExporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

type jsonEnvelope struct {
	ExportTimestamp string     `json:"export_timestamp"`
	TotalItems      int        `json:"total_items"`
	Data            []jsonItem `json:"data"`
}

type jsonItem struct {
	URL        string           `json:"url"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	Category   string           `json:"category"`
	Timestamp  *string          `json:"timestamp"`
	StatusCode int              `json:"status_code"`
	Metadata   *webcat.Metadata `json:"metadata"`
}

// Export writes the records to filename as indented JSON and returns the
// absolute path written. A missing .json extension is appended.
func (e *JSONExporter) Export(records []*webcat.Record, filename string) (string, error) {
	path, err := PreparePath(filename, ".json")
	if err != nil {
		return "", err
	}

	items := make([]jsonItem, 0, len(records))
	for _, r := range records {
		items = append(items, jsonItem{
			URL:        r.URL,
			Title:      r.Title,
			Content:    r.Content,
			Category:   r.Category,
			Timestamp:  nullableTimestamp(r.Timestamp),
			StatusCode: r.StatusCode,
			Metadata:   r.Metadata,
		})
	}

	envelope := jsonEnvelope{
		ExportTimestamp: time.Now().Format(time.RFC3339),
		TotalItems:      len(items),
		Data:            items,
	}

	buf, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// nullableTimestamp renders t in RFC 3339, or nil for the zero time so the
// field serializes as JSON null.
func nullableTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
