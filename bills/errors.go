package bills

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBillType is returned when the bill-type slug of a URL is not one of the known slugs.
	ErrUnknownBillType = errors.New("unknown bill type")
	// ErrMalformedBillNumber is returned when the bill-number segment does not start with a digit.
	ErrMalformedBillNumber = errors.New("malformed bill number")
	// ErrMalformedURL is returned when the URL does not have enough path segments.
	ErrMalformedURL = errors.New("malformed bill url")
)

// URLError records a URL that could not be turned into an Identifier.
type URLError struct {
	URL     string
	Segment string
	Err     error
}

func (e *URLError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("parse %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("parse %q: %v %q", e.URL, e.Err, e.Segment)
}

func (e *URLError) Unwrap() error { return e.Err }

// FetchError is returned when a request to the API fails, returns a
// non-success status or has a body that is not JSON.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ShapeError is returned when a JSON payload lacks a field the Bill needs.
type ShapeError struct {
	URL   string
	Field string
}

func (e *ShapeError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("unexpected response shape: missing %s", e.Field)
	}
	return fmt.Sprintf("unexpected response shape from %s: missing %s", e.URL, e.Field)
}
