package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	clienterrors "github.com/mhasan05/teamerror-portfolio/client/internal/errors"
	"github.com/mhasan05/teamerror-portfolio/client/internal/types"
)

func TestListServices_Success(t *testing.T) {
	t.Parallel()
	want := []types.Service{{ID: 1, Title: "Web Development", Slug: "web-development", TechnologiesList: []string{"React", "Django"}}}
	srv, rec := jsonServer(t, http.StatusOK, want)
	got, err := ListServices(context.Background(), srv.Client(), srv.URL+"/api")
	if err != nil || len(got) != 1 || got[0].Slug != "web-development" || len(got[0].TechnologiesList) != 2 {
		t.Fatalf("ListServices unexpected: got=%+v err=%v", got, err)
	}
	if p := rec.snapshot().path; p != "/api/services/" {
		t.Fatalf("path = %q", p)
	}
}

func TestGetService_Success(t *testing.T) {
	t.Parallel()
	srv, rec := jsonServer(t, http.StatusOK, types.Service{ID: 1, Title: "Web Development", Slug: "web-development"})
	got, err := GetService(context.Background(), srv.Client(), srv.URL, "web-development")
	if err != nil || got == nil || got.ID != 1 {
		t.Fatalf("GetService unexpected: got=%+v err=%v", got, err)
	}
	if p := rec.snapshot().path; p != "/services/web-development/" {
		t.Fatalf("path = %q", p)
	}
}

func TestGetService_NotFound(t *testing.T) {
	t.Parallel()
	srv := newNotFoundServer(t)
	_, err := GetService(context.Background(), srv.Client(), srv.URL, "missing")
	if !errors.Is(err, clienterrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListServices_MalformedShape(t *testing.T) {
	t.Parallel()
	// technologies_list must be an array; a string is a contract violation.
	srv, _ := jsonServer(t, http.StatusOK, `[{"id":1,"title":"x","slug":"x","technologies_list":"React, Go"}]`)
	if _, err := ListServices(context.Background(), srv.Client(), srv.URL); !errors.Is(err, clienterrors.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	srv2, _ := jsonServer(t, http.StatusOK, `[{"id":1,"title":"x"}]`)
	if _, err := ListServices(context.Background(), srv2.Client(), srv2.URL); !errors.Is(err, clienterrors.ErrDecode) {
		t.Fatalf("expected decode error for missing slug, got %v", err)
	}
}

func TestServices_NonOKStatuses(t *testing.T) {
	t.Parallel()
	srv, _ := jsonServer(t, http.StatusInternalServerError, `oops`)
	_, err := ListServices(context.Background(), srv.Client(), srv.URL)
	e, ok := clienterrors.As(err)
	if !ok || e.Kind != clienterrors.HTTP || e.StatusCode != 500 {
		t.Fatalf("expected HTTP 500 error, got %v", err)
	}
}

func TestServices_HTTPDoError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := ListServices(context.Background(), hc, "http://example.com"); !errors.Is(err, clienterrors.ErrNetwork) {
		t.Fatalf("expected network error for ListServices, got %v", err)
	}
	if _, err := GetService(context.Background(), hc, "http://example.com", "x"); !errors.Is(err, clienterrors.ErrNetwork) {
		t.Fatalf("expected network error for GetService, got %v", err)
	}
}

func newNotFoundServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, _ := jsonServer(t, http.StatusNotFound, map[string]string{"detail": "Not found."})
	return srv
}
