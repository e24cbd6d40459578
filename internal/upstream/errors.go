package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyQuery    = errors.New("query is required")
	ErrEmptyUsername = errors.New("username is required")
	// ErrNotFound matches any *StatusError carrying a 404.
	ErrNotFound = errors.New("not found")
	// ErrEmptyBody is returned when the upstream answered 2xx without data.
	ErrEmptyBody = errors.New("no data found")
	// ErrBodyTooLarge is returned when an answer exceeds MaxBodyBytes.
	ErrBodyTooLarge = errors.New("upstream body too large")
)

// StatusError is a non-2xx answer from the upstream.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s responded with status %d", e.URL, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// ParseError is a malformed line in a newline-delimited response. Line is
// 1-based; 0 means the body as a whole.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed upstream payload: %v", e.Err)
	}
	return fmt.Sprintf("malformed upstream record on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StatusOf returns the upstream status code carried by err, or 0.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}
