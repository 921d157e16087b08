package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// When to use:
//   - Set TEAMERROR_DEBUG=true or DEBUG=true environment variable
//   - Pass WithDebugLogging(true), or --debug to sitectl
//   - When a page falls back to placeholder content and the cause is unclear
//
// Security considerations:
//   - Logs full request/response bodies including contact form submissions
//   - Only enable in development/staging environments
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - TEAMERROR_DEBUG=true (client-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
func debugLoggingRequested() bool {
	return os.Getenv("TEAMERROR_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
