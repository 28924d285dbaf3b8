package domain

import "errors"

var ErrNotFound = errors.New("not found")

// ValidationError: the request is missing required search parameters.
// Message is the user-facing (Japanese) text for the 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ProviderError wraps an upstream model/network failure. Not retried.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return "model provider: " + e.Err.Error() }
func (e *ProviderError) Unwrap() error { return e.Err }

// ExtractionError: model output did not contain a parseable JSON payload.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string { return "extract advice: " + e.Reason }
