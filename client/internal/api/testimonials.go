package api

import (
	"context"

	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

const resourceTestimonials = "testimonials"

// ListTestimonials returns testimonials matching filter.
func ListTestimonials(ctx context.Context, httpClient HTTPClient, baseURL string, filter types.TestimonialFilter) ([]types.Testimonial, error) {
	return getCollection[types.Testimonial](ctx, httpClient, "list testimonials", ResourceURL(baseURL, filter.Values(), resourceTestimonials))
}

// FeaturedTestimonials returns the homepage subset.
func FeaturedTestimonials(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Testimonial, error) {
	return getCollection[types.Testimonial](ctx, httpClient, "featured testimonials", ResourceURL(baseURL, nil, resourceTestimonials, "featured"))
}
