package api

import (
	"context"

	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

const resourceServices = "services"

// ListServices returns all active services.
func ListServices(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Service, error) {
	return getCollection[types.Service](ctx, httpClient, "list services", ResourceURL(baseURL, nil, resourceServices))
}

// GetService returns one service by slug.
func GetService(ctx context.Context, httpClient HTTPClient, baseURL, slug string) (*types.Service, error) {
	const op = "get service"
	if err := requireSegment(op, "slug", slug); err != nil {
		return nil, err
	}
	return getOne[types.Service](ctx, httpClient, op, ResourceURL(baseURL, nil, resourceServices, slug))
}
