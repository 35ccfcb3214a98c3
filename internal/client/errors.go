package client

import (
	"errors"
	"net/http"
)

// ErrNoHost indicates the page origin has no host to derive the API from
var ErrNoHost = errors.New("origin has no host")

// APIError is a non-2xx response from the gardens API. Message is the
// response body, falling back to the status text and then "API error".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func newAPIError(statusCode int, statusText, body string) *APIError {
	msg := body
	if msg == "" {
		msg = statusText
	}
	if msg == "" {
		msg = "API error"
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
