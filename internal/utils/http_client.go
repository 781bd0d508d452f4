package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the client to the analysis backend.
const UserAgent = "go-wise-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL. Every request gets a fresh
// trace identifier in the X-Trace-ID header unless the request context
// already carries one (see [WithTraceID]).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", UserAgent).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			traceID, ok := GetTraceIDFromContext(req.Context())
			if !ok {
				traceID = ids.Generate()
			}
			req.SetHeader(TraceIDHeader, traceID)
			return nil
		})

	return &HTTPClient{Client: client}
}
