package api

import (
	"context"
	"net/http"

	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

// SubmitContact posts a contact form. A 400 with field errors comes back as a
// Validation error carrying those fields; the submission itself is not modified.
func SubmitContact(ctx context.Context, httpClient HTTPClient, baseURL string, req types.ContactSubmission) (*types.ContactAck, error) {
	const op = "submit contact"
	// Client-side validation is left to the server; it owns the rules.
	data, status, err := do(ctx, httpClient, op, http.MethodPost, ResourceURL(baseURL, nil, "contact"), req)
	if err != nil {
		return nil, err
	}
	return decodeOne[types.ContactAck](op, status, data)
}
