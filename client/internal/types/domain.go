package types

import "time"

// ------------------------------
// Content Resources
// ------------------------------

// Service is an offering listed on the services pages.
type Service struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description,omitempty"`
	Icon             string    `json:"icon,omitempty"`
	Image            string    `json:"image,omitempty"`
	Technologies     string    `json:"technologies,omitempty"`
	TechnologiesList []string  `json:"technologies_list,omitempty"`
	ProcessSteps     string    `json:"process_steps,omitempty"`
	ProcessStepsList []string  `json:"process_steps_list,omitempty"`
	PricingInfo      string    `json:"pricing_info,omitempty"`
	Order            int       `json:"order"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at,omitzero"`
	UpdatedAt        time.Time `json:"updated_at,omitzero"`
}

// PortfolioProject is a case study. List endpoints return a reduced field set.
type PortfolioProject struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	ClientName       string        `json:"client_name,omitempty"`
	ClientCompany    string        `json:"client_company,omitempty"`
	ShortDescription string        `json:"short_description"`
	Challenge        string        `json:"challenge,omitempty"`
	Solution         string        `json:"solution,omitempty"`
	Result           string        `json:"result,omitempty"`
	Thumbnail        string        `json:"thumbnail,omitempty"`
	Image1           string        `json:"image1,omitempty"`
	Image2           string        `json:"image2,omitempty"`
	Image3           string        `json:"image3,omitempty"`
	Technologies     string        `json:"technologies,omitempty"`
	TechnologiesList []string      `json:"technologies_list,omitempty"`
	LiveURL          string        `json:"live_url,omitempty"`
	GithubURL        string        `json:"github_url,omitempty"`
	Status           string        `json:"status,omitempty"`
	ProjectDate      string        `json:"project_date,omitempty"` // YYYY-MM-DD
	Featured         bool          `json:"featured"`
	Order            int           `json:"order,omitempty"`
	IsActive         bool          `json:"is_active,omitempty"`
	Testimonials     []Testimonial `json:"testimonials,omitempty"`
	CreatedAt        time.Time     `json:"created_at,omitzero"`
	UpdatedAt        time.Time     `json:"updated_at,omitzero"`
}

// Testimonial is a client review.
type Testimonial struct {
	ID             int64     `json:"id"`
	ClientName     string    `json:"client_name"`
	ClientPosition string    `json:"client_position,omitempty"`
	ClientCompany  string    `json:"client_company,omitempty"`
	ClientCountry  string    `json:"client_country,omitempty"`
	ClientPhoto    string    `json:"client_photo,omitempty"`
	Review         string    `json:"review"`
	Rating         int       `json:"rating"`
	Project        *int64    `json:"project,omitempty"`
	ProjectTitle   string    `json:"project_title,omitempty"`
	VideoURL       string    `json:"video_url,omitempty"`
	Source         string    `json:"source,omitempty"`
	SourceURL      string    `json:"source_url,omitempty"`
	Featured       bool      `json:"featured"`
	Order          int       `json:"order,omitempty"`
	IsActive       bool      `json:"is_active,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
}

// CompanyInfo is the singleton company profile.
type CompanyInfo struct {
	ID               int64    `json:"id"`
	CompanyName      string   `json:"company_name"`
	Tagline          string   `json:"tagline,omitempty"`
	AboutShort       string   `json:"about_short,omitempty"`
	AboutFull        string   `json:"about_full,omitempty"`
	Mission          string   `json:"mission,omitempty"`
	Vision           string   `json:"vision,omitempty"`
	Values           string   `json:"values,omitempty"`
	ValuesList       []string `json:"values_list,omitempty"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Address          string   `json:"address,omitempty"`
	FacebookURL      string   `json:"facebook_url,omitempty"`
	TwitterURL       string   `json:"twitter_url,omitempty"`
	LinkedinURL      string   `json:"linkedin_url,omitempty"`
	GithubURL        string   `json:"github_url,omitempty"`
	InstagramURL     string   `json:"instagram_url,omitempty"`
	WhatsappNumber   string   `json:"whatsapp_number,omitempty"`
	TelegramUsername string   `json:"telegram_username,omitempty"`
	CalendlyURL      string   `json:"calendly_url,omitempty"`
	GoogleMapsEmbed  string   `json:"google_maps_embed,omitempty"`
	MetaDescription  string   `json:"meta_description,omitempty"`
	MetaKeywords     string   `json:"meta_keywords,omitempty"`
}

// TeamMember is a person on the about page.
type TeamMember struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Position    string   `json:"position,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Photo       string   `json:"photo,omitempty"`
	LinkedinURL string   `json:"linkedin_url,omitempty"`
	GithubURL   string   `json:"github_url,omitempty"`
	TwitterURL  string   `json:"twitter_url,omitempty"`
	Skills      string   `json:"skills,omitempty"`
	SkillsList  []string `json:"skills_list,omitempty"`
	Order       int      `json:"order,omitempty"`
	IsActive    bool     `json:"is_active,omitempty"`
}

// JobOpening is a careers page listing.
type JobOpening struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Department       string    `json:"department,omitempty"`
	Location         string    `json:"location,omitempty"`
	EmploymentType   string    `json:"employment_type,omitempty"`
	Description      string    `json:"description,omitempty"`
	Requirements     string    `json:"requirements,omitempty"`
	RequirementsList []string  `json:"requirements_list,omitempty"`
	IsActive         bool      `json:"is_active,omitempty"`
	PostedAt         time.Time `json:"posted_at,omitzero"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content,omitempty"`
	Category    string    `json:"category,omitempty"`
	Author      string    `json:"author,omitempty"`
	Image       string    `json:"image,omitempty"`
	ReadTime    string    `json:"read_time,omitempty"`
	IsPublished bool      `json:"is_published,omitempty"`
	PublishedAt time.Time `json:"published_at,omitzero"`
}
