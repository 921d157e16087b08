package types

import (
	"fmt"
	"strings"
)

// Validator is implemented by every resource decoded by the client.
// It checks the fields rendering depends on; it does not enforce business rules.
type Validator interface {
	Validate() error
}

func (s Service) Validate() error {
	return firstErr(
		requireID("service", s.ID),
		requireStr("service", "title", s.Title),
		requireStr("service", "slug", s.Slug),
	)
}

func (p PortfolioProject) Validate() error {
	if err := firstErr(
		requireID("portfolio project", p.ID),
		requireStr("portfolio project", "title", p.Title),
		requireStr("portfolio project", "slug", p.Slug),
	); err != nil {
		return err
	}
	for i := range p.Testimonials {
		if err := p.Testimonials[i].Validate(); err != nil {
			return fmt.Errorf("portfolio project %q: %w", p.Slug, err)
		}
	}
	return nil
}

func (t Testimonial) Validate() error {
	if err := firstErr(
		requireID("testimonial", t.ID),
		requireStr("testimonial", "client_name", t.ClientName),
		requireStr("testimonial", "review", t.Review),
	); err != nil {
		return err
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("testimonial %d: rating %d out of range 1-5", t.ID, t.Rating)
	}
	return nil
}

func (c CompanyInfo) Validate() error {
	return requireStr("company info", "company_name", c.CompanyName)
}

func (m TeamMember) Validate() error {
	return firstErr(
		requireID("team member", m.ID),
		requireStr("team member", "name", m.Name),
	)
}

func (j JobOpening) Validate() error {
	return firstErr(
		requireID("job opening", j.ID),
		requireStr("job opening", "title", j.Title),
		requireStr("job opening", "slug", j.Slug),
	)
}

func (b BlogPost) Validate() error {
	return firstErr(
		requireID("blog post", b.ID),
		requireStr("blog post", "title", b.Title),
		requireStr("blog post", "slug", b.Slug),
	)
}

func (a ContactAck) Validate() error {
	if a.Data.ID <= 0 && strings.TrimSpace(a.Message) == "" {
		return fmt.Errorf("contact ack: neither message nor record id present")
	}
	return nil
}

// ValidateAll runs Validate over items and reports the first failure with its index.
func ValidateAll[T Validator](items []T) error {
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func requireID(kind string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s: missing id", kind)
	}
	return nil
}

func requireStr(kind, field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s: missing %s", kind, field)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
