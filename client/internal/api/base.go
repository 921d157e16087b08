package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	clienterrors "github.com/mhasan05/teamerror-portfolio/client/internal/errors"
	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 8 << 20

// ResourceURL builds {baseURL}/{seg}/.../ with every segment path-escaped and
// the trailing slash the content API requires.
func ResourceURL(baseURL string, params url.Values, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	b.WriteByte('/')
	if len(params) > 0 {
		b.WriteByte('?')
		b.WriteString(params.Encode())
	}
	return b.String()
}

// do performs exactly one request and returns the body of a 2xx response.
// Transport failures and non-2xx statuses come back as *clienterrors.Error.
func do(ctx context.Context, httpClient HTTPClient, op, method, rawURL string, payload any) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, clienterrors.NewNetworkError(op, err)
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: encode payload: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		// Prefer the context error so callers can match context.Canceled directly.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, clienterrors.NewNetworkError(op, ctxErr)
		}
		return nil, 0, clienterrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, clienterrors.NewNetworkError(op, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, clienterrors.FromResponse(op, resp.StatusCode, data)
	}
	return data, resp.StatusCode, nil
}

// getCollection fetches and validates a list endpoint.
func getCollection[T types.Validator](ctx context.Context, httpClient HTTPClient, op, rawURL string) ([]T, error) {
	data, status, err := do(ctx, httpClient, op, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	items, err := types.DecodeCollection[T](data)
	if err != nil {
		return nil, clienterrors.NewDecodeError(op, status, data, err)
	}
	if err := types.ValidateAll(items); err != nil {
		return nil, clienterrors.NewDecodeError(op, status, data, err)
	}
	return items, nil
}

// getOne fetches and validates a single object.
func getOne[T types.Validator](ctx context.Context, httpClient HTTPClient, op, rawURL string) (*T, error) {
	data, status, err := do(ctx, httpClient, op, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](op, status, data)
}

func decodeOne[T types.Validator](op string, status int, data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, clienterrors.NewDecodeError(op, status, data, err)
	}
	if err := out.Validate(); err != nil {
		return nil, clienterrors.NewDecodeError(op, status, data, err)
	}
	return &out, nil
}

func requireSegment(op, what, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s: %s is required", op, what)
	}
	if strings.Contains(v, "/") {
		return fmt.Errorf("%s: %s must not contain '/'", op, what)
	}
	if v == "." || v == ".." {
		return fmt.Errorf("%s: %s must not be a dot segment", op, what)
	}
	return nil
}
