// Package fs provides flat-file export of scraped records.
package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PreparePath normalizes the filename extension, creates parent directories,
// and returns the absolute path to write.
func PreparePath(filename, ext string) (string, error) {
	if !strings.HasSuffix(filename, ext) {
		filename += ext
	}

	path, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, nil
}

// FormatTimestamp renders t in RFC 3339, or "" for the zero time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
