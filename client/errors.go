package client

import (
	clienterrors "github.com/mhasan05/teamerror-portfolio/client/internal/errors"
)

// Error is the concrete type of every classified failure.
type Error = clienterrors.Error

// ErrorKind classifies an Error.
type ErrorKind = clienterrors.Kind

const (
	KindNetwork    = clienterrors.Network
	KindHTTP       = clienterrors.HTTP
	KindDecode     = clienterrors.Decode
	KindNotFound   = clienterrors.NotFound
	KindValidation = clienterrors.Validation
)

// Re-export the kind sentinels so callers compare against a single symbol.
var (
	ErrNetwork    = clienterrors.ErrNetwork
	ErrHTTP       = clienterrors.ErrHTTP
	ErrDecode     = clienterrors.ErrDecode
	ErrNotFound   = clienterrors.ErrNotFound
	ErrValidation = clienterrors.ErrValidation
)

// IsNotFound reports whether err is a 404 from the content API.
func IsNotFound(err error) bool {
	e, ok := clienterrors.As(err)
	return ok && e.Kind == clienterrors.NotFound
}

// IsValidation reports whether err is a 400 carrying field errors.
func IsValidation(err error) bool {
	e, ok := clienterrors.As(err)
	return ok && e.Kind == clienterrors.Validation
}

// FieldErrors returns the per-field messages of a validation failure, or nil.
func FieldErrors(err error) map[string][]string {
	if e, ok := clienterrors.As(err); ok && e.Kind == clienterrors.Validation {
		return e.Fields
	}
	return nil
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if e, ok := clienterrors.As(err); ok {
		return e.StatusCode
	}
	return 0
}
