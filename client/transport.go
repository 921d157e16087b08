package client

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// headerTransport stamps every outgoing request with the client's User-Agent
// and a fresh request id, unless the caller already set one.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	if cloned.Header.Get(RequestIDHeader) == "" {
		cloned.Header.Set(RequestIDHeader, uuid.NewString())
	}
	if t.userAgent != "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}
