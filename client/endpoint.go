package client

import (
	"net"
	"net/url"
	"strings"
)

const (
	// LocalAPI is used when nothing else matches, including non-browser contexts.
	LocalAPI = "http://localhost:8000/api"

	// ProductionAPI is used when the site is served from ProductionDomain.
	ProductionAPI = "https://api.teamerror.net/api"

	// ProductionDomain is the public site domain; subdomains match too.
	ProductionDomain = "teamerror.net"
)

// EndpointHints are the inputs to ResolveBaseURL.
type EndpointHints struct {
	// Override is the build-time/environment API URL. Used verbatim when set.
	Override string

	// Hostname of the page host serving the site. Empty when there is no such
	// context (CLI, tests, server-side jobs). A full origin is accepted.
	Hostname string
}

// ResolveBaseURL picks the API base URL. First match wins:
//
//  1. a non-empty Override
//  2. a Hostname equal to ProductionDomain or one of its subdomains → ProductionAPI
//  3. LocalAPI
//
// It is pure; callers resolve once at startup and hand the result to New.
func ResolveBaseURL(h EndpointHints) string {
	if o := strings.TrimSpace(h.Override); o != "" {
		return o
	}
	if IsProductionHost(h.Hostname) {
		return ProductionAPI
	}
	return LocalAPI
}

// IsProductionHost reports whether host is ProductionDomain or a subdomain of it.
// The comparison is on a dot boundary: "notteamerror.net" does not match.
func IsProductionHost(host string) bool {
	host = normalizeHost(host)
	if host == "" {
		return false
	}
	return host == ProductionDomain || strings.HasSuffix(host, "."+ProductionDomain)
}

// normalizeHost lowercases host and strips scheme, port, path and a trailing dot.
func normalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}
	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil {
			return ""
		}
		host = u.Hostname()
	} else {
		if i := strings.IndexAny(host, "/?#"); i >= 0 {
			host = host[:i]
		}
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
	}
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
