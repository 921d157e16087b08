package client

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamerror_client",
			Name:      "requests_total",
			Help:      "Content API requests by resource, method and outcome.",
		},
		[]string{"resource", "method", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "teamerror_client",
			Name:      "request_duration_seconds",
			Help:      "Content API round-trip latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource", "method"},
	)
)

// metricsTransport records one observation per round trip.
type metricsTransport struct {
	base    http.RoundTripper
	baseURL string
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resource := resourceLabel(t.baseURL, req.URL.String())
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	requestDuration.WithLabelValues(resource, req.Method).Observe(time.Since(start).Seconds())

	outcome := "network_error"
	if err == nil {
		outcome = strconv.Itoa(resp.StatusCode/100) + "xx"
	}
	requestsTotal.WithLabelValues(resource, req.Method, outcome).Inc()
	return resp, err
}

// resourceLabel returns the first path segment below the base URL, which keeps
// label cardinality bounded by the number of resources rather than slugs.
func resourceLabel(baseURL, rawURL string) string {
	rest, ok := strings.CutPrefix(rawURL, baseURL)
	if !ok {
		return "other"
	}
	rest = strings.TrimPrefix(rest, "/")
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "root"
	}
	return rest
}
