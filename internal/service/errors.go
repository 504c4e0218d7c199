package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured             = errors.New("generation API key is not configured")
	ErrNoContent                 = errors.New("no content generated")
	ErrMalformedUpstreamResponse = errors.New("malformed generation API response")
	ErrInvalidModelOutput        = errors.New("model output is not valid JSON")
)

// UnknownUpstreamError is reported when the generation API fails without a message
const UnknownUpstreamError = "Unknown error"

// UpstreamError is returned when the generation API call fails. StatusCode is
// zero when no HTTP response was received.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("generation API request failed: %s", e.Message)
	}
	return fmt.Sprintf("generation API failed with status %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
