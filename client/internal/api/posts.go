package api

import (
	"context"

	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

const resourcePosts = "posts"

// ListPosts returns published blog posts matching filter.
func ListPosts(ctx context.Context, httpClient HTTPClient, baseURL string, filter types.PostFilter) ([]types.BlogPost, error) {
	return getCollection[types.BlogPost](ctx, httpClient, "list posts", ResourceURL(baseURL, filter.Values(), resourcePosts))
}

// GetPost returns one post by slug.
func GetPost(ctx context.Context, httpClient HTTPClient, baseURL, slug string) (*types.BlogPost, error) {
	const op = "get post"
	if err := requireSegment(op, "slug", slug); err != nil {
		return nil, err
	}
	return getOne[types.BlogPost](ctx, httpClient, op, ResourceURL(baseURL, nil, resourcePosts, slug))
}
