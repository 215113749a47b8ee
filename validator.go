package webcat

// ValidationResult is the outcome of URL admission control. Reason is
// always set, on success as well as on rejection.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// Validator decides whether a URL is eligible to be fetched. Validate is a
// total function: it never panics and never returns an error, internal
// parsing failures are reported as rejections.
type Validator interface {
	Validate(url string) ValidationResult
}
