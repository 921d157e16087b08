package devapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/mhasan05/teamerror-portfolio/client"
	"github.com/mhasan05/teamerror-portfolio/internal/placeholder"
)

// ContactAckMessage is returned with every accepted contact submission.
const ContactAckMessage = "Thank you for contacting us! We will get back to you soon."

// Handler serves the content API routes from a Store.
type Handler struct {
	store *Store
	log   zerolog.Logger
}

func NewHandler(store *Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// list writes the items that match the query, in stored order.
func list[T any](w http.ResponseWriter, r *http.Request, items []T, match func(T, url.Values) bool) {
	q := r.URL.Query()
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match == nil || match(it, q) {
			out = append(out, it)
		}
	}
	WriteJSON(w, http.StatusOK, out)
}

// detail writes the item whose slug equals the {slug} path variable.
func detail[T any](w http.ResponseWriter, r *http.Request, items []T, slugOf func(T) string) {
	slug := mux.Vars(r)["slug"]
	for _, it := range items {
		if slugOf(it) == slug {
			WriteJSON(w, http.StatusOK, it)
			return
		}
	}
	WriteNotFound(w)
}

// ListServices GET /services/
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.store.services, func(s client.Service, q url.Values) bool {
		return matchSearch(q, s.Title, s.ShortDescription, s.Technologies)
	})
}

// GetService GET /services/{slug}/
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	detail(w, r, h.store.services, func(s client.Service) string { return s.Slug })
}

// ListPortfolio GET /portfolio/
func (h *Handler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	list(w, r, listView(h.store.portfolio), func(p client.PortfolioProject, q url.Values) bool {
		return matchBool(q, "featured", p.Featured) &&
			matchString(q, "status", p.Status) &&
			matchSearch(q, p.Title, p.ShortDescription, p.Technologies, p.ClientName)
	})
}

// GetPortfolioProject GET /portfolio/{slug}/
func (h *Handler) GetPortfolioProject(w http.ResponseWriter, r *http.Request) {
	detail(w, r, h.store.portfolio, func(p client.PortfolioProject) string { return p.Slug })
}

// FeaturedPortfolio GET /portfolio/featured/
func (h *Handler) FeaturedPortfolio(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, featured(listView(h.store.portfolio), func(p client.PortfolioProject) bool { return p.Featured }))
}

// ListTestimonials GET /testimonials/
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.store.testimonials, func(t client.Testimonial, q url.Values) bool {
		return matchBool(q, "featured", t.Featured) &&
			matchString(q, "source", t.Source) &&
			matchString(q, "rating", strconv.Itoa(t.Rating))
	})
}

// FeaturedTestimonials GET /testimonials/featured/
func (h *Handler) FeaturedTestimonials(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, featured(h.store.testimonials, func(t client.Testimonial) bool { return t.Featured }))
}

// SubmitContact POST /contact/
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var sub client.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		WriteDetail(w, http.StatusBadRequest, "JSON parse error - "+err.Error())
		return
	}
	if fields := ValidateContact(sub); fields != nil {
		h.log.Debug().Interface("fields", fields).Msg("contact submission rejected")
		WriteFieldErrors(w, fields)
		return
	}
	rec := h.store.AddContact(sub)
	h.log.Info().Int64("contact_id", rec.ID).Str("inquiry_type", rec.InquiryType).Msg("contact submission stored")
	WriteJSON(w, http.StatusCreated, client.ContactAck{Message: ContactAckMessage, Data: rec})
}

// GetCompanyInfo GET /company-info/
func (h *Handler) GetCompanyInfo(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.store.company)
}

// ListTeam GET /team/
func (h *Handler) ListTeam(w http.ResponseWriter, r *http.Request) {
	list[client.TeamMember](w, r, h.store.team, nil)
}

// ListJobs GET /jobs/
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	list[client.JobOpening](w, r, h.store.jobs, nil)
}

// GetJob GET /jobs/{slug}/
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	detail(w, r, h.store.jobs, func(j client.JobOpening) string { return j.Slug })
}

// ListPosts GET /posts/
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.store.posts, func(p client.BlogPost, q url.Values) bool {
		return matchString(q, "category", p.Category) &&
			matchSearch(q, p.Title, p.Excerpt, p.Content, p.Category)
	})
}

// GetPost GET /posts/{slug}/
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	detail(w, r, h.store.posts, func(p client.BlogPost) string { return p.Slug })
}

// Health GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	names, err := placeholder.Resources()
	if err != nil {
		h.log.Error().Err(err).Msg("list placeholder resources")
		WriteDetail(w, http.StatusInternalServerError, "A server error occurred.")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "UP",
		"contacts":  len(h.store.Contacts()),
		"resources": names,
	})
}

// listView drops the detail-only fields, as the list serializer does.
func listView(projects []client.PortfolioProject) []client.PortfolioProject {
	out := make([]client.PortfolioProject, len(projects))
	for i, p := range projects {
		p.Challenge, p.Solution, p.Result = "", "", ""
		p.Testimonials = nil
		out[i] = p
	}
	return out
}

func featured[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, placeholder.FeaturedLimit)
	for _, it := range items {
		if len(out) == placeholder.FeaturedLimit {
			break
		}
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func matchString(q url.Values, key, have string) bool {
	want := q.Get(key)
	return want == "" || want == have
}

func matchBool(q url.Values, key string, have bool) bool {
	want := q.Get(key)
	if want == "" {
		return true
	}
	b, err := strconv.ParseBool(want)
	return err == nil && b == have
}

// matchSearch reports whether the search term occurs in any field, ignoring case.
func matchSearch(q url.Values, fields ...string) bool {
	term := strings.ToLower(strings.TrimSpace(q.Get("search")))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
