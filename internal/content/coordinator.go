// Package content assembles page data from the content API, substituting the
// bundled placeholder content for any section whose fetch fails.
package content

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mhasan05/teamerror-portfolio/client"
	"github.com/mhasan05/teamerror-portfolio/internal/placeholder"
)

// Source is the subset of *client.Client the coordinator reads from.
type Source interface {
	ListServices(ctx context.Context) ([]client.Service, error)
	ListPortfolio(ctx context.Context, filter client.PortfolioFilter) ([]client.PortfolioProject, error)
	FeaturedPortfolio(ctx context.Context) ([]client.PortfolioProject, error)
	ListTestimonials(ctx context.Context, filter client.TestimonialFilter) ([]client.Testimonial, error)
	FeaturedTestimonials(ctx context.Context) ([]client.Testimonial, error)
	GetCompanyInfo(ctx context.Context) (*client.CompanyInfo, error)
	ListTeam(ctx context.Context) ([]client.TeamMember, error)
	ListJobs(ctx context.Context) ([]client.JobOpening, error)
	ListPosts(ctx context.Context, filter client.PostFilter) ([]client.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*client.BlogPost, error)
	SubmitContact(ctx context.Context, req client.ContactSubmission) (*client.ContactAck, error)
}

var _ Source = (*client.Client)(nil)

// Section is one independently fetched block of a page.
type Section[T any] struct {
	Data T
	// Fallback is true when Data is placeholder content.
	Fallback bool
}

// HomePage is the data behind the landing page.
type HomePage struct {
	Services     Section[[]client.Service]
	Portfolio    Section[[]client.PortfolioProject]
	Testimonials Section[[]client.Testimonial]
}

// Coordinator owns the client and the page-level signals. Create one at
// startup and share it.
type Coordinator struct {
	src Source
	log zerolog.Logger

	// Consultation carries "open consultation" requests from any view to
	// whichever component renders the booking dialog.
	Consultation *Signal[ConsultationRequest]
}

// ConsultationRequest asks the UI to open the consultation dialog.
type ConsultationRequest struct {
	// Service preselects a service slug; empty means none.
	Service string
	// Origin names the view that raised the request.
	Origin string
}

func New(src Source, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		src:          src,
		log:          log.With().Str("component", "content").Logger(),
		Consultation: NewSignal[ConsultationRequest](),
	}
}

// Home fetches the three landing sections concurrently. A failing section is
// replaced by placeholder content; the call fails only when ctx is done.
func (c *Coordinator) Home(ctx context.Context) (*HomePage, error) {
	var page HomePage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		page.Services, err = fetchOr(gctx, c.log, "services", c.src.ListServices, placeholder.Services)
		return err
	})
	g.Go(func() (err error) {
		page.Portfolio, err = fetchOr(gctx, c.log, "featured portfolio", c.src.FeaturedPortfolio, placeholder.FeaturedPortfolio)
		return err
	})
	g.Go(func() (err error) {
		page.Testimonials, err = fetchOr(gctx, c.log, "featured testimonials", c.src.FeaturedTestimonials, placeholder.FeaturedTestimonials)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

// Services returns the services listing.
func (c *Coordinator) Services(ctx context.Context) (Section[[]client.Service], error) {
	return fetchOr(ctx, c.log, "services", c.src.ListServices, placeholder.Services)
}

// Testimonials returns all testimonials.
func (c *Coordinator) Testimonials(ctx context.Context) (Section[[]client.Testimonial], error) {
	fetch := func(ctx context.Context) ([]client.Testimonial, error) {
		return c.src.ListTestimonials(ctx, client.TestimonialFilter{})
	}
	return fetchOr(ctx, c.log, "testimonials", fetch, placeholder.Testimonials)
}

// Team returns the team listing.
func (c *Coordinator) Team(ctx context.Context) (Section[[]client.TeamMember], error) {
	return fetchOr(ctx, c.log, "team", c.src.ListTeam, placeholder.Team)
}

// Careers returns the open positions.
func (c *Coordinator) Careers(ctx context.Context) (Section[[]client.JobOpening], error) {
	return fetchOr(ctx, c.log, "jobs", c.src.ListJobs, placeholder.Jobs)
}

// Company returns the company profile.
func (c *Coordinator) Company(ctx context.Context) (Section[client.CompanyInfo], error) {
	fetch := func(ctx context.Context) (client.CompanyInfo, error) {
		info, err := c.src.GetCompanyInfo(ctx)
		if err != nil {
			return client.CompanyInfo{}, err
		}
		return *info, nil
	}
	return fetchOr(ctx, c.log, "company info", fetch, placeholder.Company)
}

// ContactForm returns a fresh, empty contact form bound to the coordinator's source.
func (c *Coordinator) ContactForm() *ContactForm {
	return &ContactForm{src: c.src, log: c.log}
}

// fetchOr runs fetch and substitutes fallback on failure. Only the context's
// own error is returned: a page being torn down gets nothing, not placeholders.
func fetchOr[T any](ctx context.Context, log zerolog.Logger, section string, fetch func(context.Context) (T, error), fallback func() T) (Section[T], error) {
	data, err := fetch(ctx)
	if err == nil {
		return Section[T]{Data: data}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Section[T]{}, ctxErr
	}
	log.Warn().Err(err).Str("section", section).Int("status", client.StatusCode(err)).Msg("using placeholder content")
	return Section[T]{Data: fallback(), Fallback: true}, nil
}
