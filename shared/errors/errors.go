package errors

import (
	"errors"
	"fmt"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamRejected    = errors.New("upstream rejected request")
)

type Kind int

const (
	Unknown Kind = iota
	InvalidInput
	UpstreamUnavailable
	UpstreamRejected
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case UpstreamUnavailable:
		return "upstream_unavailable"
	case UpstreamRejected:
		return "upstream_rejected"
	default:
		return "unknown"
	}
}

// UpstreamError describes a failed call to a third-party provider.
// Body holds the provider's raw response and is meant for server logs only.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Unavailable wraps a transport failure reaching provider.
func Unavailable(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)}
}

// Rejected builds the error for a non-success provider response.
func Rejected(provider string, statusCode int, body []byte) *UpstreamError {
	return &UpstreamError{Provider: provider, StatusCode: statusCode, Body: string(body), Err: ErrUpstreamRejected}
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return Unknown
	case errors.Is(err, ErrInvalidInput):
		return InvalidInput
	case errors.Is(err, ErrUpstreamUnavailable):
		return UpstreamUnavailable
	case errors.Is(err, ErrUpstreamRejected):
		return UpstreamRejected
	default:
		return Unknown
	}
}
