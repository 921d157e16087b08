package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ------------------------------
// Response Types
// ------------------------------

// ContactRecord is the stored submission echoed back by POST /contact/.
type ContactRecord struct {
	ContactSubmission
	ID          int64     `json:"id"`
	Status      string    `json:"status,omitempty"`
	SubmittedAt time.Time `json:"submitted_at,omitzero"`
}

// ContactAck is the 201 response of POST /contact/.
type ContactAck struct {
	Message string        `json:"message"`
	Data    ContactRecord `json:"data"`
}

// Page is the paginated collection envelope. Unpaginated endpoints return a bare array.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// DecodeCollection accepts either a JSON array or a Page envelope.
func DecodeCollection[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, err
		}
		if _, ok := raw["results"]; !ok {
			return nil, fmt.Errorf("object payload without results")
		}
		var page Page[T]
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, err
		}
		if page.Results == nil {
			return nil, fmt.Errorf("results is not an array")
		}
		return page.Results, nil
	default:
		return nil, fmt.Errorf("expected array or page object")
	}
}
