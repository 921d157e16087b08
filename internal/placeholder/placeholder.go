// Package placeholder holds the bundled content shown when the content API
// cannot be reached. The same data seeds the local development API.
package placeholder

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/mhasan05/teamerror-portfolio/client"
)

// dataFS holds one JSON document per resource.
//
//go:embed data/*.json
var dataFS embed.FS

// Resources returns the names of the bundled documents (e.g. "services").
func Resources() ([]string, error) {
	entries, err := fs.ReadDir(dataFS, "data")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			out = append(out, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	return out, nil
}

// Load decodes the named document into a fresh value, so callers may mutate
// the result freely.
func Load[T any](name string) (T, error) {
	var v T
	b, err := fs.ReadFile(dataFS, path.Join("data", name+".json"))
	if err != nil {
		return v, fmt.Errorf("unknown placeholder %q: %w", name, err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("placeholder %q: %w", name, err)
	}
	return v, nil
}

func mustLoad[T any](name string) T {
	v, err := Load[T](name)
	if err != nil {
		panic(err)
	}
	return v
}

func Services() []client.Service { return mustLoad[[]client.Service]("services") }
func Portfolio() []client.PortfolioProject { return mustLoad[[]client.PortfolioProject]("portfolio") }
func Testimonials() []client.Testimonial { return mustLoad[[]client.Testimonial]("testimonials") }
func Company() client.CompanyInfo { return mustLoad[client.CompanyInfo]("company") }
func Team() []client.TeamMember { return mustLoad[[]client.TeamMember]("team") }
func Jobs() []client.JobOpening { return mustLoad[[]client.JobOpening]("jobs") }
func Posts() []client.BlogPost { return mustLoad[[]client.BlogPost]("posts") }

// FeaturedLimit caps featured subsets, matching the content API.
const FeaturedLimit = 6

// FeaturedPortfolio returns up to FeaturedLimit featured projects.
func FeaturedPortfolio() []client.PortfolioProject {
	return featured(Portfolio(), func(p client.PortfolioProject) bool { return p.Featured })
}

// FeaturedTestimonials returns up to FeaturedLimit featured testimonials.
func FeaturedTestimonials() []client.Testimonial {
	return featured(Testimonials(), func(t client.Testimonial) bool { return t.Featured })
}

func featured[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, FeaturedLimit)
	for _, it := range items {
		if len(out) == FeaturedLimit {
			break
		}
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
