// Package cerr carries transport errors between the gateway adapter
// and the use cases. A failed backend call keeps its upstream HTTP
// status code, so callers can report it without re-inspecting the
// response. No status is retried or interpreted further; every
// transport failure simply returns the affected component to an
// interactive state.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// FromStatus wraps a non-2xx backend response as an Error. The detail
// string is whatever human-readable message could be extracted from
// the response body; when the body had none, the generic status text
// is used instead.
func FromStatus(code int, detail string) *Error {
	if detail == "" {
		detail = http.StatusText(code)
	}
	return &Error{Err: errors.New(detail), HTTPStatusCode: code}
}

// StatusCode returns the upstream HTTP status carried by err, or zero
// when err is not a transport error (e.g., a network-level failure
// that never produced a response).
func StatusCode(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.HTTPStatusCode
	}
	return 0
}
