package content

import (
	"context"
	"strings"

	"github.com/mhasan05/teamerror-portfolio/client"
	"github.com/mhasan05/teamerror-portfolio/internal/placeholder"
)

// BlogQuery selects a page of the blog index.
type BlogQuery struct {
	Category string // case-insensitive; empty for all
	Page     int    // 1-based; values below 1 mean the first page
}

// Blog lists posts in a category and returns the requested page of
// DefaultPageSize posts.
func (c *Coordinator) Blog(ctx context.Context, q BlogQuery) (*Page[client.BlogPost], error) {
	fetch := func(ctx context.Context) ([]client.BlogPost, error) {
		return c.src.ListPosts(ctx, client.PostFilter{Category: q.Category})
	}
	sec, err := fetchOr(ctx, c.log, "posts", fetch, placeholder.Posts)
	if err != nil {
		return nil, err
	}

	page := Paginate(FilterPosts(sec.Data, q.Category), q.Page, DefaultPageSize)
	page.Fallback = sec.Fallback
	return page, nil
}

// FilterPosts keeps posts in category; an empty category matches everything.
func FilterPosts(posts []client.BlogPost, category string) []client.BlogPost {
	category = strings.TrimSpace(category)
	out := make([]client.BlogPost, 0, len(posts))
	for _, p := range posts {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Post fetches one post by slug. A NotFound answer from the API is returned
// as is; any other failure falls back to the bundled post with the same slug,
// and returns the original error when there is none.
func (c *Coordinator) Post(ctx context.Context, slug string) (Section[client.BlogPost], error) {
	post, err := c.src.GetPost(ctx, slug)
	if err == nil {
		return Section[client.BlogPost]{Data: *post}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Section[client.BlogPost]{}, ctxErr
	}
	if client.IsNotFound(err) {
		return Section[client.BlogPost]{}, err
	}
	for _, p := range placeholder.Posts() {
		if p.Slug == slug {
			c.log.Warn().Err(err).Str("section", "post").Str("slug", slug).Int("status", client.StatusCode(err)).Msg("using placeholder content")
			return Section[client.BlogPost]{Data: p, Fallback: true}, nil
		}
	}
	return Section[client.BlogPost]{}, err
}
