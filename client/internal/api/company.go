package api

import (
	"context"

	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

// GetCompanyInfo returns the singleton company profile.
func GetCompanyInfo(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.CompanyInfo, error) {
	return getOne[types.CompanyInfo](ctx, httpClient, "get company info", ResourceURL(baseURL, nil, "company-info"))
}

// ListTeam returns active team members.
func ListTeam(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.TeamMember, error) {
	return getCollection[types.TeamMember](ctx, httpClient, "list team", ResourceURL(baseURL, nil, "team"))
}
