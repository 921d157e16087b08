package content

import (
	"context"
	"strings"

	"github.com/mhasan05/teamerror-portfolio/client"
	"github.com/mhasan05/teamerror-portfolio/internal/placeholder"
)

// PortfolioQuery selects a page of the portfolio grid.
type PortfolioQuery struct {
	Status     string // completed, ongoing, maintenance; empty for all
	Technology string // case-insensitive match against the project's stack
	Page       int    // 1-based; values below 1 mean the first page
	PageSize   int    // 0 means DefaultPageSize
}

// Portfolio lists projects, filters them and returns the requested page.
// Pages past the end are clamped to the last page.
func (c *Coordinator) Portfolio(ctx context.Context, q PortfolioQuery) (*Page[client.PortfolioProject], error) {
	fetch := func(ctx context.Context) ([]client.PortfolioProject, error) {
		return c.src.ListPortfolio(ctx, client.PortfolioFilter{Status: q.Status})
	}
	sec, err := fetchOr(ctx, c.log, "portfolio", fetch, placeholder.Portfolio)
	if err != nil {
		return nil, err
	}

	filtered := FilterProjects(sec.Data, q.Status, q.Technology)
	page := Paginate(filtered, q.Page, q.PageSize)
	page.Fallback = sec.Fallback
	return page, nil
}

// FilterProjects keeps projects matching status and technology; empty
// criteria match everything.
func FilterProjects(projects []client.PortfolioProject, status, technology string) []client.PortfolioProject {
	out := make([]client.PortfolioProject, 0, len(projects))
	for _, p := range projects {
		if status != "" && !strings.EqualFold(p.Status, status) {
			continue
		}
		if technology != "" && !usesTechnology(p, technology) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func usesTechnology(p client.PortfolioProject, tech string) bool {
	tech = strings.TrimSpace(tech)
	techs := p.TechnologiesList
	if len(techs) == 0 {
		techs = strings.Split(p.Technologies, ",")
	}
	for _, t := range techs {
		if strings.EqualFold(strings.TrimSpace(t), tech) {
			return true
		}
	}
	return false
}
