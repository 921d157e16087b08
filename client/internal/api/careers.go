package api

import (
	"context"

	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

const resourceJobs = "jobs"

// ListJobs returns open positions.
func ListJobs(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.JobOpening, error) {
	return getCollection[types.JobOpening](ctx, httpClient, "list jobs", ResourceURL(baseURL, nil, resourceJobs))
}

// GetJob returns one opening by slug.
func GetJob(ctx context.Context, httpClient HTTPClient, baseURL, slug string) (*types.JobOpening, error) {
	const op = "get job"
	if err := requireSegment(op, "slug", slug); err != nil {
		return nil, err
	}
	return getOne[types.JobOpening](ctx, httpClient, op, ResourceURL(baseURL, nil, resourceJobs, slug))
}
