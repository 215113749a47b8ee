package fs

import (
	"bytes"
	"encoding/csv"
	"os"

	"github.com/fwojciec/webcat"
)

// csvContentLimit caps the content column; spreadsheets choke on long cells.
const csvContentLimit = 1000

// Ensure CSVExporter implements webcat.Exporter at compile time.
var _ webcat.Exporter = (*CSVExporter)(nil)

// CSVExporter writes records as CSV rows. The header row is always written,
// even for an empty record set.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes the records to filename as CSV and returns the absolute path
// written. A missing .csv extension is appended.
func (e *CSVExporter) Export(records []*webcat.Record, filename string) (string, error) {
	path, err := PreparePath(filename, ".csv")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"url", "title", "content", "category", "timestamp"}); err != nil {
		return "", err
	}

	for _, r := range records {
		content := webcat.Truncate(r.Content, csvContentLimit)
		row := []string{r.URL, r.Title, content, r.Category, FormatTimestamp(r.Timestamp)}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return path, nil
}
