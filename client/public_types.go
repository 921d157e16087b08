package client

import "github.com/mhasan05/teamerror-portfolio/client/internal/types"

// Public type aliases so consumers can import only the client package.
// Requests
type (
	ContactSubmission = types.ContactSubmission
	PortfolioFilter   = types.PortfolioFilter
	TestimonialFilter = types.TestimonialFilter
	PostFilter        = types.PostFilter

	// Content resources
	Service          = types.Service
	PortfolioProject = types.PortfolioProject
	Testimonial      = types.Testimonial
	CompanyInfo      = types.CompanyInfo
	TeamMember       = types.TeamMember
	JobOpening       = types.JobOpening
	BlogPost         = types.BlogPost

	// Responses
	ContactAck    = types.ContactAck
	ContactRecord = types.ContactRecord
)
