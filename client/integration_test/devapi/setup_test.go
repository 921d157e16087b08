package client_test

import (
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	client "github.com/mhasan05/teamerror-portfolio/client"
	"github.com/mhasan05/teamerror-portfolio/internal/devapi"
)

// newDevClient starts the development content API and returns a client
// pointed at its /api base URL.
func newDevClient(t *testing.T) (*client.Client, *devapi.Store) {
	t.Helper()
	store := devapi.NewStore()
	srv := httptest.NewServer(devapi.NewRouter(devapi.NewHandler(store, zerolog.Nop()), zerolog.Nop()))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL + devapi.PathPrefix)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, store
}
