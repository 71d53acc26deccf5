package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// TransportError reports a failed request or a non-success response.
type TransportError struct {
	Provider   string
	Op         string
	StatusCode int
	RetryAfter time.Duration
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider request failed"
	}
	prefix := e.Provider
	if e.Op != "" {
		prefix += " " + e.Op
	}
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RateLimited reports whether the upstream answered 429.
func (e *TransportError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// FormatError reports a response that could not be decoded into the expected shape.
type FormatError struct {
	Provider string
	Op       string
	Field    string
	Err      error
}

func (e *FormatError) Error() string {
	msg := "unexpected response format"
	if e.Field != "" {
		msg = fmt.Sprintf("missing or invalid field %q", e.Field)
	}
	prefix := e.Provider
	if e.Op != "" {
		prefix += " " + e.Op
	}
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// AsFormatError attempts to unwrap an error into a FormatError.
func AsFormatError(err error) (*FormatError, bool) {
	var fErr *FormatError
	if errors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}
