package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("API key rejected")
	ErrNotFound            = errors.New("endpoint not found")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrUnprocessable       = errors.New("document could not be processed")
	ErrInternalServerError = errors.New("internal server error")
	ErrNotImplemented      = errors.New("not implemented")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrInvalidResponse is returned for a 2xx answer that is not a report.
	ErrInvalidResponse = errors.New("invalid response from analysis backend")
	// ErrUnreachable wraps transport failures (refused connection, timeout).
	ErrUnreachable = errors.New("analysis backend unreachable")
)
