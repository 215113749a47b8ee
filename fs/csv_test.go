package fs_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVExporter_WritesHeaderForEmptyInput(t *testing.T) {
	t.Parallel()

	exporter := fs.NewCSVExporter()
	path, err := exporter.Export(nil, filepath.Join(t.TempDir(), "out.csv"))
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"url", "title", "content", "category", "timestamp"}, rows[0])
}

func TestCSVExporter_WritesRecords(t *testing.T) {
	t.Parallel()

	records := []*webcat.Record{
		{
			URL:       "https://example.com",
			Title:     "Example",
			Content:   "some content",
			Category:  "general",
			Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			URL:      "https://other.com",
			Title:    "Other",
			Category: "news",
		},
	}

	exporter := fs.NewCSVExporter()
	path, err := exporter.Export(records, filepath.Join(t.TempDir(), "out.csv"))
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"https://example.com", "Example", "some content", "general", "2025-03-01T12:00:00Z"}, rows[1])
	assert.Equal(t, "", rows[2][4], "zero timestamp should be empty")
}

func TestCSVExporter_TruncatesContent(t *testing.T) {
	t.Parallel()

	records := []*webcat.Record{
		{URL: "https://example.com", Content: strings.Repeat("x", 5000), Category: "general"},
	}

	exporter := fs.NewCSVExporter()
	path, err := exporter.Export(records, filepath.Join(t.TempDir(), "out.csv"))
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Len(t, rows[1][2], 1000)
}

func TestCSVExporter_TruncatesAtRuneBoundary(t *testing.T) {
	t.Parallel()

	records := []*webcat.Record{
		{URL: "https://example.com", Content: strings.Repeat("€", 400), Category: "general"},
	}

	exporter := fs.NewCSVExporter()
	path, err := exporter.Export(records, filepath.Join(t.TempDir(), "out.csv"))
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.True(t, utf8.ValidString(rows[1][2]))
	assert.LessOrEqual(t, len(rows[1][2]), 1000)
}

func TestCSVExporter_AppendsExtension(t *testing.T) {
	t.Parallel()

	exporter := fs.NewCSVExporter()
	path, err := exporter.Export(nil, filepath.Join(t.TempDir(), "out"))

	require.NoError(t, err)
	assert.Equal(t, ".csv", filepath.Ext(path))
}
