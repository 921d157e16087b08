// Package errors provides the failure taxonomy for the content client.
// Every failed request is reported as an *Error carrying one Kind.
package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies why a request failed.
type Kind int

const (
	// Network means the request never produced a response (dial, TLS, timeout, cancel).
	Network Kind = iota

	// HTTP means the server answered with a 4xx/5xx status not covered below.
	HTTP

	// Decode means the body was not valid JSON or did not match the expected shape.
	Decode

	// NotFound means the server answered 404.
	NotFound

	// Validation means the server answered 400 with field errors.
	Validation
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Network:
		return "NetworkError"
	case HTTP:
		return "HttpError"
	case Decode:
		return "DecodeError"
	case NotFound:
		return "NotFound"
	case Validation:
		return "ValidationError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the single error type returned by client operations.
type Error struct {
	Kind       Kind
	Op         string              // e.g. "list services"
	StatusCode int                 // 0 for network and pre-response failures
	Body       string              // response body for debugging, may be truncated
	Fields     map[string][]string // populated for Validation
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			names = append(names, k)
		}
		sort.Strings(names)
		b.WriteString(" fields=")
		b.WriteString(strings.Join(names, ","))
	}
	if e.Underlying != nil {
		b.WriteString(": ")
		b.WriteString(e.Underlying.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// Is matches the kind sentinels. NotFound and Validation are HTTP failures too.
func (e *Error) Is(target error) bool {
	s, ok := target.(*sentinel)
	if !ok {
		return false
	}
	if s.kind == e.Kind {
		return true
	}
	return s.kind == HTTP && (e.Kind == NotFound || e.Kind == Validation)
}

type sentinel struct {
	kind Kind
	msg  string
}

func (s *sentinel) Error() string { return s.msg }

// Sentinels for errors.Is comparisons.
var (
	ErrNetwork    error = &sentinel{kind: Network, msg: "network error"}
	ErrHTTP       error = &sentinel{kind: HTTP, msg: "http error"}
	ErrDecode     error = &sentinel{kind: Decode, msg: "decode error"}
	ErrNotFound   error = &sentinel{kind: NotFound, msg: "not found"}
	ErrValidation error = &sentinel{kind: Validation, msg: "validation error"}
)

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}
