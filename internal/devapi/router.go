// Package devapi is an in-memory implementation of the content API for local
// development and end-to-end tests of the client.
package devapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// PathPrefix is where the content API is mounted, matching the local base URL.
const PathPrefix = "/api"

// NewRouter wires the content API routes to h.
func NewRouter(h *Handler, log zerolog.Logger) *mux.Router {
	root := mux.NewRouter()
	instrument(root, log)

	api := root.PathPrefix(PathPrefix).Subrouter()

	// Services
	api.HandleFunc("/services/", h.ListServices).Methods("GET")
	api.HandleFunc("/services/{slug}/", h.GetService).Methods("GET")

	// Portfolio; featured must precede the slug route
	api.HandleFunc("/portfolio/", h.ListPortfolio).Methods("GET")
	api.HandleFunc("/portfolio/featured/", h.FeaturedPortfolio).Methods("GET")
	api.HandleFunc("/portfolio/{slug}/", h.GetPortfolioProject).Methods("GET")

	// Testimonials
	api.HandleFunc("/testimonials/", h.ListTestimonials).Methods("GET")
	api.HandleFunc("/testimonials/featured/", h.FeaturedTestimonials).Methods("GET")

	// Contact
	api.HandleFunc("/contact/", h.SubmitContact).Methods("POST")

	// Company
	api.HandleFunc("/company-info/", h.GetCompanyInfo).Methods("GET")
	api.HandleFunc("/team/", h.ListTeam).Methods("GET")

	// Careers and blog
	api.HandleFunc("/jobs/", h.ListJobs).Methods("GET")
	api.HandleFunc("/jobs/{slug}/", h.GetJob).Methods("GET")
	api.HandleFunc("/posts/", h.ListPosts).Methods("GET")
	api.HandleFunc("/posts/{slug}/", h.GetPost).Methods("GET")

	// Health
	api.HandleFunc("/health", h.Health).Methods("GET")
	return root
}

// instrument installs the shared middleware and JSON error handlers. Observe
// wraps Recover so a recovered panic is still counted as a 500.
func instrument(r *mux.Router, log zerolog.Logger) {
	r.Use(Observe(log), Recover(log))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { WriteNotFound(w) })
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		WriteDetail(w, http.StatusMethodNotAllowed, `Method "`+req.Method+`" not allowed.`)
	})
}
