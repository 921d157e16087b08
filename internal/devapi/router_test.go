package devapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhasan05/teamerror-portfolio/client"
)

func newTestRouter() (http.Handler, *Store) {
	store := NewStore()
	return NewRouter(NewHandler(store, zerolog.Nop()), zerolog.Nop()), store
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func TestRoutes_ListAndDetail(t *testing.T) {
	h, _ := newTestRouter()

	rr := serve(t, h, "GET", "/api/services/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	services := decode[[]client.Service](t, rr)
	require.NotEmpty(t, services)

	rr = serve(t, h, "GET", "/api/services/web-development/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Web Application Development", decode[client.Service](t, rr).Title)

	for _, path := range []string{"/api/team/", "/api/jobs/", "/api/posts/", "/api/testimonials/", "/api/portfolio/"} {
		rr = serve(t, h, "GET", path, "")
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(rr.Body.String()), "["), "%s should return an array", path)
	}

	rr = serve(t, h, "GET", "/api/company-info/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "TeamError", decode[client.CompanyInfo](t, rr).CompanyName)
}

func TestRoutes_UnknownSlugIs404Detail(t *testing.T) {
	h, _ := newTestRouter()
	for _, path := range []string{"/api/services/nope/", "/api/portfolio/nope/", "/api/jobs/nope/", "/api/posts/nope/", "/api/unknown/"} {
		rr := serve(t, h, "GET", path, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Equal(t, map[string]string{"detail": "Not found."}, decode[map[string]string](t, rr), path)
	}
}

func TestPortfolio_FeaturedBeforeSlugAndListView(t *testing.T) {
	h, _ := newTestRouter()

	rr := serve(t, h, "GET", "/api/portfolio/featured/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	featured := decode[[]client.PortfolioProject](t, rr)
	require.NotEmpty(t, featured)
	for _, p := range featured {
		assert.True(t, p.Featured)
		assert.Empty(t, p.Challenge, "list view omits detail fields")
	}

	rr = serve(t, h, "GET", "/api/portfolio/ecommerce-platform-techmart/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	p := decode[client.PortfolioProject](t, rr)
	assert.NotEmpty(t, p.Challenge)
	assert.NotEmpty(t, p.Testimonials, "detail nests project testimonials")
}

func TestPortfolio_Filters(t *testing.T) {
	h, _ := newTestRouter()

	rr := serve(t, h, "GET", "/api/portfolio/?status=ongoing", "")
	for _, p := range decode[[]client.PortfolioProject](t, rr) {
		assert.Equal(t, "ongoing", p.Status)
	}

	rr = serve(t, h, "GET", "/api/portfolio/?featured=false", "")
	for _, p := range decode[[]client.PortfolioProject](t, rr) {
		assert.False(t, p.Featured)
	}

	rr = serve(t, h, "GET", "/api/portfolio/?search=CHATBOT", "")
	got := decode[[]client.PortfolioProject](t, rr)
	require.Len(t, got, 1)
	assert.Equal(t, "ai-customer-service-chatbot", got[0].Slug)

	rr = serve(t, h, "GET", "/api/portfolio/?featured=maybe", "")
	assert.Empty(t, decode[[]client.PortfolioProject](t, rr))
}

func TestTestimonials_Filters(t *testing.T) {
	h, _ := newTestRouter()

	rr := serve(t, h, "GET", "/api/testimonials/?rating=4", "")
	got := decode[[]client.Testimonial](t, rr)
	require.NotEmpty(t, got)
	for _, tm := range got {
		assert.Equal(t, 4, tm.Rating)
	}

	rr = serve(t, h, "GET", "/api/testimonials/?source=upwork&featured=true", "")
	got = decode[[]client.Testimonial](t, rr)
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah Johnson", got[0].ClientName)
}

func TestPosts_CategoryFilter(t *testing.T) {
	h, _ := newTestRouter()
	rr := serve(t, h, "GET", "/api/posts/?category=Security", "")
	got := decode[[]client.BlogPost](t, rr)
	require.Len(t, got, 1)
	assert.Equal(t, "Security", got[0].Category)
}

func TestContact_Created(t *testing.T) {
	h, store := newTestRouter()
	body := `{"name":"Jane","email":"jane@example.com","message":"Need an app","service":"mobile-development"}`

	rr := serve(t, h, "POST", "/api/contact/", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	ack := decode[client.ContactAck](t, rr)
	assert.Equal(t, ContactAckMessage, ack.Message)
	assert.Equal(t, int64(1), ack.Data.ID)
	assert.Equal(t, "new", ack.Data.Status)
	assert.Equal(t, "general", ack.Data.InquiryType)
	assert.False(t, ack.Data.SubmittedAt.IsZero())

	require.Len(t, store.Contacts(), 1)
	assert.Equal(t, "Jane", store.Contacts()[0].Name)
}

func TestContact_FieldErrors(t *testing.T) {
	h, store := newTestRouter()

	rr := serve(t, h, "POST", "/api/contact/", `{"name":"","email":"not-an-email","inquiry_type":"spam"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	fields := decode[map[string][]string](t, rr)
	assert.Equal(t, []string{"This field is required."}, fields["name"])
	assert.Equal(t, []string{"Enter a valid email address."}, fields["email"])
	assert.Equal(t, []string{"This field is required."}, fields["message"])
	assert.Contains(t, fields, "inquiry_type")
	assert.Empty(t, store.Contacts())
}

func TestContact_BadJSONAndMethod(t *testing.T) {
	h, _ := newTestRouter()

	rr := serve(t, h, "POST", "/api/contact/", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[map[string]string](t, rr)["detail"], "JSON parse error")

	rr = serve(t, h, "GET", "/api/contact/", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHealth_ReportsContactsAndResources(t *testing.T) {
	h, store := newTestRouter()
	store.AddContact(client.ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "hi"})

	rr := serve(t, h, "GET", "/api/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[struct {
		Status    string   `json:"status"`
		Contacts  int      `json:"contacts"`
		Resources []string `json:"resources"`
	}](t, rr)
	assert.Equal(t, "UP", body.Status)
	assert.Equal(t, 1, body.Contacts)
	assert.Contains(t, body.Resources, "services")
	assert.Contains(t, body.Resources, "posts")
}

func TestRequestIDEchoedOrAssigned(t *testing.T) {
	h, _ := newTestRouter()

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))

	rr = serve(t, h, "GET", "/api/health", "")
	assert.Len(t, rr.Header().Get(RequestIDHeader), 36)
}

func TestRecover_Panic(t *testing.T) {
	h := Recover(zerolog.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEmpty(t, rr.Body.String())
}
