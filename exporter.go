package webcat

// Exporter writes records to a flat file. Export returns the absolute path
// written. Unlike every per-URL stage, export I/O errors propagate to the
// caller: a failed export is fatal for that call and is not retried.
type Exporter interface {
	Export(records []*Record, filename string) (string, error)
}
