package devapi

import (
	"sync"
	"time"

	"github.com/mhasan05/teamerror-portfolio/client"
	"github.com/mhasan05/teamerror-portfolio/internal/placeholder"
)

// Store is the in-memory content behind the development API. Content
// collections are read-only after NewStore; contact submissions are appended.
type Store struct {
	services     []client.Service
	portfolio    []client.PortfolioProject
	testimonials []client.Testimonial
	company      client.CompanyInfo
	team         []client.TeamMember
	jobs         []client.JobOpening
	posts        []client.BlogPost

	mu       sync.Mutex
	contacts []client.ContactRecord
	now      func() time.Time
}

// NewStore seeds a store from the bundled placeholder content.
func NewStore() *Store {
	s := &Store{
		services:     placeholder.Services(),
		portfolio:    placeholder.Portfolio(),
		testimonials: placeholder.Testimonials(),
		company:      placeholder.Company(),
		team:         placeholder.Team(),
		jobs:         placeholder.Jobs(),
		posts:        placeholder.Posts(),
		now:          time.Now,
	}
	s.attachTestimonials()
	return s
}

// attachTestimonials nests each project's testimonials under it, as the
// detail endpoint does.
func (s *Store) attachTestimonials() {
	for i := range s.portfolio {
		for _, t := range s.testimonials {
			if t.Project != nil && *t.Project == s.portfolio[i].ID {
				s.portfolio[i].Testimonials = append(s.portfolio[i].Testimonials, t)
			}
		}
	}
}

// AddContact stores a validated submission and returns the saved record.
func (s *Store) AddContact(sub client.ContactSubmission) client.ContactRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub.InquiryType == "" {
		sub.InquiryType = "general"
	}
	rec := client.ContactRecord{
		ContactSubmission: sub,
		ID:                int64(len(s.contacts) + 1),
		Status:            "new",
		SubmittedAt:       s.now().UTC(),
	}
	s.contacts = append(s.contacts, rec)
	return rec
}

// Contacts returns a copy of the stored submissions.
func (s *Store) Contacts() []client.ContactRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.ContactRecord, len(s.contacts))
	copy(out, s.contacts)
	return out
}
