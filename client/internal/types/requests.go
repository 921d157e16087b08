package types

import (
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// ContactSubmission is the body of POST /contact/.
type ContactSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	InquiryType string `json:"inquiry_type,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Service     string `json:"service,omitempty"`
	Message     string `json:"message"`
	Budget      string `json:"budget,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
}

// PortfolioFilter holds the query parameters accepted by GET /portfolio/.
type PortfolioFilter struct {
	Status   string
	Featured *bool
	Search   string
	Ordering string
	Extra    url.Values
}

// Values encodes the filter; zero fields are omitted.
func (f PortfolioFilter) Values() url.Values {
	v := cloneValues(f.Extra)
	setIf(v, "status", f.Status)
	setBool(v, "featured", f.Featured)
	setIf(v, "search", f.Search)
	setIf(v, "ordering", f.Ordering)
	return v
}

// TestimonialFilter holds the query parameters accepted by GET /testimonials/.
type TestimonialFilter struct {
	Rating   int
	Featured *bool
	Source   string
	Ordering string
	Extra    url.Values
}

// Values encodes the filter; zero fields are omitted.
func (f TestimonialFilter) Values() url.Values {
	v := cloneValues(f.Extra)
	if f.Rating > 0 {
		v.Set("rating", strconv.Itoa(f.Rating))
	}
	setBool(v, "featured", f.Featured)
	setIf(v, "source", f.Source)
	setIf(v, "ordering", f.Ordering)
	return v
}

// PostFilter holds the query parameters accepted by GET /posts/.
type PostFilter struct {
	Category string
	Search   string
	Ordering string
	Extra    url.Values
}

// Values encodes the filter; zero fields are omitted.
func (f PostFilter) Values() url.Values {
	v := cloneValues(f.Extra)
	setIf(v, "category", f.Category)
	setIf(v, "search", f.Search)
	setIf(v, "ordering", f.Ordering)
	return v
}

func cloneValues(in url.Values) url.Values {
	out := url.Values{}
	for k, vs := range in {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func setIf(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setBool(v url.Values, key string, b *bool) {
	if b != nil {
		v.Set(key, strconv.FormatBool(*b))
	}
}
