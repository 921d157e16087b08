package api

import (
	"context"

	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

const resourcePortfolio = "portfolio"

// ListPortfolio returns portfolio projects matching filter.
func ListPortfolio(ctx context.Context, httpClient HTTPClient, baseURL string, filter types.PortfolioFilter) ([]types.PortfolioProject, error) {
	return getCollection[types.PortfolioProject](ctx, httpClient, "list portfolio", ResourceURL(baseURL, filter.Values(), resourcePortfolio))
}

// GetPortfolioProject returns the full case study for slug.
func GetPortfolioProject(ctx context.Context, httpClient HTTPClient, baseURL, slug string) (*types.PortfolioProject, error) {
	const op = "get portfolio project"
	if err := requireSegment(op, "slug", slug); err != nil {
		return nil, err
	}
	return getOne[types.PortfolioProject](ctx, httpClient, op, ResourceURL(baseURL, nil, resourcePortfolio, slug))
}

// FeaturedPortfolio returns the homepage subset.
func FeaturedPortfolio(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.PortfolioProject, error) {
	return getCollection[types.PortfolioProject](ctx, httpClient, "featured portfolio", ResourceURL(baseURL, nil, resourcePortfolio, "featured"))
}
