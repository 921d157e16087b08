package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the header, metrics and debug transports are
// installed, so a transport supplied through WithHTTPClient ends up underneath
// them. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the client.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The client is copied so
// the caller's value is not mutated when transports are installed. A zero
// Timeout on hc is replaced with the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		if cp.Timeout == 0 {
			cp.Timeout = c.http.Timeout
		}
		c.http = &cp
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		ua = strings.TrimSpace(ua)
		if ua == "" {
			return fmt.Errorf("user agent cannot be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging logs each request/response dump at debug level when enabled
// is true.
//
// Do not enable this option in production environments as it increases
// verbosity and includes contact form bodies in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}
