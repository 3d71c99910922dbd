package domain

import (
	"errors"
	"fmt"
)

// LocationError reports that no resolution strategy produced coordinates.
type LocationError struct {
	Input string
	Err   error
}

func (e *LocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not resolve location %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("could not resolve location %q", e.Input)
}

func (e *LocationError) Unwrap() error { return e.Err }

// FetchError reports that the forecast document could not be retrieved.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch forecast: %v", e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a payload that is not a well-formed DWML document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse forecast: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractionError reports a well-formed document that is missing
// expected fields or carries inconsistent time layouts.
type ExtractionError struct {
	Msg string
}

func (e *ExtractionError) Error() string { return "extract forecast: " + e.Msg }

// IsDomain reports whether err belongs to the handled error taxonomy.
// Anything else is treated as unexpected by the CLI driver.
func IsDomain(err error) bool {
	var (
		locErr     *LocationError
		fetchErr   *FetchError
		parseErr   *ParseError
		extractErr *ExtractionError
	)
	return errors.As(err, &locErr) ||
		errors.As(err, &fetchErr) ||
		errors.As(err, &parseErr) ||
		errors.As(err, &extractErr)
}
