package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyInError bounds the body kept on an Error.
const maxBodyInError = 2048

// FromResponse classifies a non-2xx response.
//   - 404 → NotFound
//   - 400 carrying a JSON object of field errors → Validation
//   - everything else → HTTP
func FromResponse(op string, statusCode int, body []byte) *Error {
	e := &Error{
		Kind:       HTTP,
		Op:         op,
		StatusCode: statusCode,
		Body:       truncate(body),
		Underlying: fmt.Errorf("unexpected status %d %s", statusCode, http.StatusText(statusCode)),
	}
	switch statusCode {
	case http.StatusNotFound:
		e.Kind = NotFound
	case http.StatusBadRequest:
		if fields := parseFieldErrors(body); len(fields) > 0 {
			e.Kind = Validation
			e.Fields = fields
		}
	}
	return e
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(op string, err error) *Error {
	return &Error{Kind: Network, Op: op, Underlying: err}
}

// NewDecodeError wraps a body that could not be turned into the expected shape.
func NewDecodeError(op string, statusCode int, body []byte, err error) *Error {
	return &Error{Kind: Decode, Op: op, StatusCode: statusCode, Body: truncate(body), Underlying: err}
}

// parseFieldErrors understands the shapes the content API answers with:
//
//	{"email": ["Enter a valid email address."]}
//	{"email": "Enter a valid email address."}
//	{"errors": {"email": [...]}}
//
// "detail" and "non_field_errors" are kept under their own keys. A body whose
// only message is "detail" carries no field errors.
func parseFieldErrors(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}
	if nested, ok := raw["errors"]; ok && len(raw) == 1 {
		if inner := parseFieldErrors(nested); len(inner) > 0 {
			return inner
		}
	}
	out := make(map[string][]string, len(raw))
	for field, v := range raw {
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			if len(list) > 0 {
				out[field] = list
			}
			continue
		}
		var single string
		if err := json.Unmarshal(v, &single); err == nil && single != "" {
			out[field] = []string{single}
		}
	}
	if _, ok := out["detail"]; ok && len(out) == 1 {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func truncate(body []byte) string {
	if len(body) > maxBodyInError {
		return string(body[:maxBodyInError])
	}
	return string(body)
}
