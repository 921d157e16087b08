package devapi

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// RequestIDHeader matches the header the content client sends.
const RequestIDHeader = "X-Request-ID"

var servedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "teamerror_devapi",
		Name:      "requests_total",
		Help:      "Requests served by the development content API, by route template and status code.",
	},
	[]string{"route", "method", "code"},
)

// Recover intercepts panics from downstream handlers, logs details, and returns HTTP 500.
func Recover(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error().
						Interface("panic", rec).
						Str("method", r.Method).
						Str("url", r.URL.String()).
						Str("remote", r.RemoteAddr).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")

					WriteDetail(w, http.StatusInternalServerError, "A server error occurred.")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder remembers the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Observe echoes or assigns a request id, counts the request by route
// template and logs it at debug level.
func Observe(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			route := "unmatched"
			if cur := mux.CurrentRoute(r); cur != nil {
				if tmpl, err := cur.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			servedTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
			log.Debug().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("route", route).
				Int("status", rec.status).
				Dur("elapsed", time.Since(start)).
				Msg("request served")
		})
	}
}
