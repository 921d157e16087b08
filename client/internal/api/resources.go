package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	clienterrors "github.com/mhasan05/teamerror-portfolio/client/internal/errors"
	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

// The functions in this file are the untyped resource contract: they pass query
// parameters through and return the JSON they received without interpreting it.

// ListAll issues GET {base}/{resource}/ and returns the items of an array or page payload.
func ListAll(ctx context.Context, httpClient HTTPClient, baseURL, resource string, params url.Values) ([]json.RawMessage, error) {
	op := "list " + resource
	if err := requireSegment(op, "resource", resource); err != nil {
		return nil, err
	}
	return rawCollection(ctx, httpClient, op, ResourceURL(baseURL, params, resource))
}

// GetBySlug issues GET {base}/{resource}/{slug}/.
func GetBySlug(ctx context.Context, httpClient HTTPClient, baseURL, resource, slug string) (json.RawMessage, error) {
	op := "get " + resource
	if err := requireSegment(op, "resource", resource); err != nil {
		return nil, err
	}
	if err := requireSegment(op, "slug", slug); err != nil {
		return nil, err
	}
	data, status, err := do(ctx, httpClient, op, http.MethodGet, ResourceURL(baseURL, nil, resource, slug), nil)
	if err != nil {
		return nil, err
	}
	return rawObject(op, status, data)
}

// GetFeatured issues GET {base}/{resource}/featured/.
func GetFeatured(ctx context.Context, httpClient HTTPClient, baseURL, resource string) ([]json.RawMessage, error) {
	op := "featured " + resource
	if err := requireSegment(op, "resource", resource); err != nil {
		return nil, err
	}
	return rawCollection(ctx, httpClient, op, ResourceURL(baseURL, nil, resource, "featured"))
}

// Submit issues POST {base}/{resource}/ with payload encoded as JSON.
func Submit(ctx context.Context, httpClient HTTPClient, baseURL, resource string, payload any) (json.RawMessage, error) {
	op := "submit " + resource
	if err := requireSegment(op, "resource", resource); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("%s: payload is required", op)
	}
	data, status, err := do(ctx, httpClient, op, http.MethodPost, ResourceURL(baseURL, nil, resource), payload)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		// 204 style acknowledgement
		return nil, nil
	}
	return rawObject(op, status, data)
}

func rawCollection(ctx context.Context, httpClient HTTPClient, op, rawURL string) ([]json.RawMessage, error) {
	data, status, err := do(ctx, httpClient, op, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	items, err := types.DecodeCollection[json.RawMessage](data)
	if err != nil {
		return nil, clienterrors.NewDecodeError(op, status, data, err)
	}
	return items, nil
}

func rawObject(op string, status int, data []byte) (json.RawMessage, error) {
	if !json.Valid(data) {
		return nil, clienterrors.NewDecodeError(op, status, data, fmt.Errorf("invalid JSON"))
	}
	return json.RawMessage(data), nil
}
