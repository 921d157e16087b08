package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func ioNopCloser(s string) io.ReadCloser { return io.NopCloser(strings.NewReader(s)) }

func TestNew_ValidatesBaseURL(t *testing.T) {
	for _, bad := range []string{"", "   ", "localhost:8000/api", "ftp://example.com", "/api", "http://x/api?k=v", "http://x/api#frag", "http://x/api?"} {
		if _, err := New(bad); err == nil {
			t.Fatalf("expected error for base URL %q", bad)
		}
	}
	c, err := New(" https://api.teamerror.net/api/ ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "https://api.teamerror.net/api" {
		t.Fatalf("base URL not normalised: %q", c.BaseURL())
	}
}

func TestClient_EndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/services/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/services/web-development/" {
			_, _ = w.Write([]byte(`{"id":1,"title":"Web Development","slug":"web-development"}`))
			return
		}
		if r.URL.Path != "/api/services/" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found."}`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"title":"Web Development","slug":"web-development"}]`))
	})
	mux.HandleFunc("/api/contact/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		if body["email"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"email":["This field is required."]}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Thanks","data":{"id":5,"name":"Ada","email":"ada@example.com","message":"hi","status":"new"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(srv.URL + "/api")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	services, err := c.ListServices(ctx)
	if err != nil || len(services) != 1 {
		t.Fatalf("ListServices: %v %+v", err, services)
	}
	if _, err := c.GetService(ctx, "web-development"); err != nil {
		t.Fatalf("GetService: %v", err)
	}
	_, err = c.GetBySlug(ctx, "services", "missing/")
	if err == nil {
		t.Fatalf("expected error for slug with slash")
	}
	_, err = c.GetService(ctx, "unknown")
	if !IsNotFound(err) || !errors.Is(err, ErrNotFound) || StatusCode(err) != http.StatusNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	form := ContactSubmission{Name: "Ada", Message: "hi"}
	_, err = c.SubmitContact(ctx, form)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fe := FieldErrors(err); len(fe["email"]) != 1 {
		t.Fatalf("field errors = %v", fe)
	}
	if form.Name != "Ada" || form.Message != "hi" {
		t.Fatalf("submission mutated: %+v", form)
	}

	form.Email = "ada@example.com"
	ack, err := c.SubmitContact(ctx, form)
	if err != nil || ack.Data.ID != 5 {
		t.Fatalf("SubmitContact: %v %+v", err, ack)
	}
	if FieldErrors(nil) != nil || StatusCode(errors.New("x")) != 0 {
		t.Fatalf("helpers must tolerate foreign errors")
	}
}

func TestResourceLabel(t *testing.T) {
	cases := map[string]string{
		"http://h/api/services/":             "services",
		"http://h/api/services/web/":         "services",
		"http://h/api/portfolio/?featured=1": "portfolio",
		"http://h/api/":                      "root",
		"http://other/api/services/":         "other",
	}
	for raw, want := range cases {
		if got := resourceLabel("http://h/api", raw); got != want {
			t.Fatalf("resourceLabel(%q) = %q want %q", raw, got, want)
		}
	}
}
