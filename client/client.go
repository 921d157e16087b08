package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mhasan05/teamerror-portfolio/client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "teamerror-portfolio-client/1.0"
)

// Client talks to the content API. It is immutable after New and safe for
// concurrent use; construct one at startup and pass it to whatever needs it.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	debug     bool
}

// New constructs a Client for baseURL, usually the result of ResolveBaseURL.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		c.debug = true
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.installTransports()
	return c, nil
}

// BaseURL returns the resolved API base URL the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("baseURL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid baseURL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid baseURL %q: must be an absolute http(s) URL", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" || u.ForceQuery {
		return "", fmt.Errorf("invalid baseURL %q: must not carry a query or fragment", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// installTransports wraps the HTTP client's transport. Outermost first:
// request headers, metrics, optional debug dump, then the base transport.
func (c *Client) installTransports() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base}
	}
	base = &metricsTransport{base: base, baseURL: c.baseURL}
	c.http.Transport = &headerTransport{base: base, userAgent: c.userAgent}
}

// --------------------------------------------------------------------
// Generic resource operations - delegated to internal/api
// --------------------------------------------------------------------

// ListAll issues GET {base}/{resource}/ with params and returns the raw items.
func (c *Client) ListAll(ctx context.Context, resource string, params url.Values) ([]json.RawMessage, error) {
	return api.ListAll(ctx, c.http, c.baseURL, resource, params)
}

// GetBySlug issues GET {base}/{resource}/{slug}/. A 404 yields ErrNotFound.
func (c *Client) GetBySlug(ctx context.Context, resource, slug string) (json.RawMessage, error) {
	return api.GetBySlug(ctx, c.http, c.baseURL, resource, slug)
}

// GetFeatured issues GET {base}/{resource}/featured/.
func (c *Client) GetFeatured(ctx context.Context, resource string) ([]json.RawMessage, error) {
	return api.GetFeatured(ctx, c.http, c.baseURL, resource)
}

// Submit issues POST {base}/{resource}/ with payload as JSON. A 400 carrying
// field errors yields ErrValidation; use FieldErrors to read them.
func (c *Client) Submit(ctx context.Context, resource string, payload any) (json.RawMessage, error) {
	return api.Submit(ctx, c.http, c.baseURL, resource, payload)
}

// --------------------------------------------------------------------
// Services
// --------------------------------------------------------------------

// ListServices returns all active services.
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	return api.ListServices(ctx, c.http, c.baseURL)
}

// GetService returns one service by slug.
func (c *Client) GetService(ctx context.Context, slug string) (*Service, error) {
	return api.GetService(ctx, c.http, c.baseURL, slug)
}

// --------------------------------------------------------------------
// Portfolio
// --------------------------------------------------------------------

// ListPortfolio returns projects matching filter.
func (c *Client) ListPortfolio(ctx context.Context, filter PortfolioFilter) ([]PortfolioProject, error) {
	return api.ListPortfolio(ctx, c.http, c.baseURL, filter)
}

// GetPortfolioProject returns one case study by slug.
func (c *Client) GetPortfolioProject(ctx context.Context, slug string) (*PortfolioProject, error) {
	return api.GetPortfolioProject(ctx, c.http, c.baseURL, slug)
}

// FeaturedPortfolio returns the homepage subset of projects.
func (c *Client) FeaturedPortfolio(ctx context.Context) ([]PortfolioProject, error) {
	return api.FeaturedPortfolio(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Testimonials
// --------------------------------------------------------------------

// ListTestimonials returns testimonials matching filter.
func (c *Client) ListTestimonials(ctx context.Context, filter TestimonialFilter) ([]Testimonial, error) {
	return api.ListTestimonials(ctx, c.http, c.baseURL, filter)
}

// FeaturedTestimonials returns the homepage subset of testimonials.
func (c *Client) FeaturedTestimonials(ctx context.Context) ([]Testimonial, error) {
	return api.FeaturedTestimonials(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Contact, company, team
// --------------------------------------------------------------------

// SubmitContact posts the contact form. The request value is never modified,
// so callers can redisplay it after a failure.
func (c *Client) SubmitContact(ctx context.Context, req ContactSubmission) (*ContactAck, error) {
	return api.SubmitContact(ctx, c.http, c.baseURL, req)
}

// GetCompanyInfo returns the company profile.
func (c *Client) GetCompanyInfo(ctx context.Context) (*CompanyInfo, error) {
	return api.GetCompanyInfo(ctx, c.http, c.baseURL)
}

// ListTeam returns active team members.
func (c *Client) ListTeam(ctx context.Context) ([]TeamMember, error) {
	return api.ListTeam(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Careers and blog
// --------------------------------------------------------------------

// ListJobs returns open positions.
func (c *Client) ListJobs(ctx context.Context) ([]JobOpening, error) {
	return api.ListJobs(ctx, c.http, c.baseURL)
}

// GetJob returns one opening by slug.
func (c *Client) GetJob(ctx context.Context, slug string) (*JobOpening, error) {
	return api.GetJob(ctx, c.http, c.baseURL, slug)
}

// ListPosts returns published posts matching filter.
func (c *Client) ListPosts(ctx context.Context, filter PostFilter) ([]BlogPost, error) {
	return api.ListPosts(ctx, c.http, c.baseURL, filter)
}

// GetPost returns one post by slug.
func (c *Client) GetPost(ctx context.Context, slug string) (*BlogPost, error) {
	return api.GetPost(ctx, c.http, c.baseURL, slug)
}
