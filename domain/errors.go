package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory indicates a category name outside the curated set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrEmptyPostID indicates a comments lookup without a post identifier.
	ErrEmptyPostID = errors.New("post id cannot be empty")
)

// RequestError is a transport failure or a non-2xx response.
type RequestError struct {
	Method string
	Path   string
	Status int    // 0 when the request never got a response
	Body   string // Truncated response body
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request %s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("API %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("API %s %s returned %d", e.Method, e.Path, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ParseError indicates a response whose shape did not match the expected envelope.
type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "parsing " + e.What
	}
	return fmt.Sprintf("parsing %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
