package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
)

func TestFromResponse_Classification(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status int
		body   string
		kind   Kind
	}{
		{404, `{"detail":"Not found."}`, NotFound},
		{400, `{"email":["Enter a valid email address."]}`, Validation},
		{400, `not json`, HTTP},
		{400, `{}`, HTTP},
		{400, `{"detail":"JSON parse error - Expecting value"}`, HTTP},
		{400, `{"detail":"bad","email":["Enter a valid email address."]}`, Validation},
		{500, `oops`, HTTP},
		{403, ``, HTTP},
	}
	for _, c := range cases {
		e := FromResponse("op", c.status, []byte(c.body))
		if e.Kind != c.kind {
			t.Fatalf("status %d body %q: kind=%s want %s", c.status, c.body, e.Kind, c.kind)
		}
		if e.StatusCode != c.status {
			t.Fatalf("status not kept: %d", e.StatusCode)
		}
	}
}

func TestParseFieldErrors_Shapes(t *testing.T) {
	t.Parallel()
	got := parseFieldErrors([]byte(`{"email":"bad","name":["required","too short"],"phone":[]}`))
	if len(got["email"]) != 1 || got["email"][0] != "bad" {
		t.Fatalf("single string field not parsed: %v", got)
	}
	if len(got["name"]) != 2 {
		t.Fatalf("list field not parsed: %v", got)
	}
	if _, ok := got["phone"]; ok {
		t.Fatalf("empty list should be dropped: %v", got)
	}

	nested := parseFieldErrors([]byte(`{"errors":{"message":["This field is required."]}}`))
	if len(nested["message"]) != 1 {
		t.Fatalf("nested errors not parsed: %v", nested)
	}

	if detail := parseFieldErrors([]byte(`{"detail":"JSON parse error"}`)); detail != nil {
		t.Fatalf("lone detail should not be a field error: %v", detail)
	}
}

func TestError_IsSentinels(t *testing.T) {
	t.Parallel()
	nf := FromResponse("get service", 404, nil)
	if !stderrors.Is(nf, ErrNotFound) || !stderrors.Is(nf, ErrHTTP) {
		t.Fatalf("404 should match ErrNotFound and ErrHTTP")
	}
	if stderrors.Is(nf, ErrValidation) || stderrors.Is(nf, ErrNetwork) {
		t.Fatalf("404 matched an unrelated sentinel")
	}

	wrapped := fmt.Errorf("outer: %w", NewNetworkError("list", context.Canceled))
	if !stderrors.Is(wrapped, ErrNetwork) {
		t.Fatalf("network error lost through wrapping")
	}
	if !stderrors.Is(wrapped, context.Canceled) {
		t.Fatalf("underlying context error should stay visible")
	}

	dec := NewDecodeError("list", 200, []byte("{"), fmt.Errorf("eof"))
	if !stderrors.Is(dec, ErrDecode) || stderrors.Is(dec, ErrHTTP) {
		t.Fatalf("decode error classification wrong")
	}
	if e, ok := As(wrapped); !ok || e.Kind != Network {
		t.Fatalf("As failed: %v %v", e, ok)
	}
}

func TestError_MessageAndTruncation(t *testing.T) {
	t.Parallel()
	big := make([]byte, maxBodyInError+100)
	for i := range big {
		big[i] = 'x'
	}
	e := FromResponse("submit contact", 502, big)
	if len(e.Body) != maxBodyInError {
		t.Fatalf("body not truncated: %d", len(e.Body))
	}
	v := FromResponse("submit contact", 400, []byte(`{"name":["required"],"email":["bad"]}`))
	want := "submit contact: ValidationError (HTTP 400) fields=email,name: unexpected status 400 Bad Request"
	if v.Error() != want {
		t.Fatalf("message = %q\nwant %q", v.Error(), want)
	}
}
