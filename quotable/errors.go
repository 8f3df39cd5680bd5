package quotable

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid quotable configuration")
	// ErrEmptyID is returned before any request when a quote id is empty
	ErrEmptyID = errors.New("quote id is required")
)

// TransportError is returned when a request did not produce a response:
// connection failures, TLS errors, timeouts, cancelled contexts and
// truncated bodies.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("quotable transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned when the service answered with a non-2xx status.
type ProtocolError struct {
	StatusCode int
	// Message is the statusMessage of a Quotable error body, or the status text.
	Message string
	Body    string
	URL     string
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("quotable API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *ProtocolError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimited checks if the service rejected the request for exceeding its rate limit
func (e *ProtocolError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError checks if the status is in the 5xx range
func (e *ProtocolError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode <= 599
}

// errorBody is the shape Quotable uses for error responses.
type errorBody struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

func newProtocolError(statusCode int, body []byte, url string) *ProtocolError {
	perr := &ProtocolError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
		Body:       string(body),
		URL:        url,
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.StatusMessage != "" {
		perr.Message = eb.StatusMessage
	}
	if perr.Message == "" {
		perr.Message = "unexpected status"
	}

	return perr
}

// DecodingError is returned when a 2xx body does not match the expected type.
type DecodingError struct {
	// Target names the type being decoded, e.g. "quotable.Quote".
	Target string
	Body   string
	Err    error
}

// Error implements the error interface
func (e *DecodingError) Error() string {
	return fmt.Sprintf("quotable decoding error: cannot decode response into %s: %v", e.Target, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
