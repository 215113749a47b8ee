package mock

import "github.com/fwojciec/webcat"

var _ webcat.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of webcat.Exporter.
type Exporter struct {
	ExportFn func(records []*webcat.Record, filename string) (string, error)
}

func (e *Exporter) Export(records []*webcat.Record, filename string) (string, error) {
	return e.ExportFn(records, filename)
}
