// Package mock provides mock implementations of webcat interfaces for tests.
package mock

import "github.com/fwojciec/webcat"

var _ webcat.Validator = (*Validator)(nil)

// Validator is a mock implementation of webcat.Validator.
type Validator struct {
	ValidateFn func(url string) webcat.ValidationResult
}

func (v *Validator) Validate(url string) webcat.ValidationResult {
	return v.ValidateFn(url)
}
