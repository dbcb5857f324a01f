package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/loganlanou/shouldibuy/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e interface {
	ServeHTTP(http.ResponseWriter, *http.Request)
}, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// TestTier1_PublicRoutes tests that the public routes exist and are accessible
func TestTier1_PublicRoutes(t *testing.T) {
	e, _ := setupTestEcho(t, sampleProducts()...)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Home page", "GET", "/", http.StatusOK},
		{"Home page filtered", "GET", "/?q=iphone&brand=Apple&type=Phone", http.StatusOK},
		{"Home page past the end", "GET", "/?page=40", http.StatusOK},
		{"Group page", "GET", "/group/iPhone", http.StatusOK},
		{"Group page with space", "GET", "/group/Galaxy%20S", http.StatusOK},
		{"Health check", "GET", "/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

// TestTier2_APIRoutes tests that API endpoints exist
func TestTier2_APIRoutes(t *testing.T) {
	e, _ := setupTestEcho(t, sampleProducts()...)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"List products", "/api/products", http.StatusOK},
		{"List products paged", "/api/products?page=1", http.StatusOK},
		{"Get product", "/api/products/2", http.StatusOK},
		{"Missing product", "/api/products/404", http.StatusNotFound},
		{"Facets", "/api/facets", http.StatusOK},
		{"Groups", "/api/groups", http.StatusOK},
		{"Group", "/api/groups/iPhone", http.StatusOK},
		{"Group without main product", "/api/groups/Nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodGet, tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"API route %s should return %d, got %d", tt.path, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

// TestNonExistentRoute verifies that truly non-existent routes return 404
func TestNonExistentRoute(t *testing.T) {
	e, _ := setupTestEcho(t)

	for _, path := range []string{"/this-route-does-not-exist", "/api/nonexistent", "/shop"} {
		rec := serve(e, http.MethodGet, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestHomePage_RendersListing(t *testing.T) {
	e, _ := setupTestEcho(t, sampleProducts()...)

	rec := serve(e, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "iPhone 15")
	assert.Contains(t, body, "Galaxy S24")
	assert.NotContains(t, body, "MacBook Air M3", "page size is two")
	assert.NotContains(t, body, "iPhone 14", "products without a cycle are not listed")
	assert.Contains(t, body, "Page 1 of 2")
	assert.Contains(t, body, `href="/group/Galaxy%20S"`)
	assert.Contains(t, body, `value="Samsung"`)
}

func TestHomePage_SecondPageEscapesNames(t *testing.T) {
	e, _ := setupTestEcho(t, sampleProducts()...)

	rec := serve(e, http.MethodGet, "/?page=2")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "MacBook Air M3")
	assert.Contains(t, body, "Pixel 8 &lt;Pro&gt;")
	assert.NotContains(t, body, "<Pro>")
	assert.Contains(t, body, "Page 2 of 2")
}

func TestHomePage_FilterKeepsSelection(t *testing.T) {
	e, _ := setupTestEcho(t, sampleProducts()...)

	rec := serve(e, http.MethodGet, "/?brand=Google")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `value="Google" checked`)
	assert.NotContains(t, body, "iPhone 15")
	assert.Contains(t, body, "Page 1 of 1")
}

func TestGroupPage(t *testing.T) {
	e, _ := setupTestEcho(t, sampleProducts()...)

	rec := serve(e, http.MethodGet, "/group/iPhone")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Should you buy iPhone now or wait?")
	assert.Contains(t, body, "iPhone 15")
	assert.Contains(t, body, "Wait")
	assert.Contains(t, body, "upgraded after")
	assert.Contains(t, body, "371")
	assert.Contains(t, body, `<link rel="canonical" href="http://localhost:8000/group/iPhone">`)
}

func TestGroupPage_NameNeedingEscapes(t *testing.T) {
	products := append(sampleProducts(),
		handlers.TestProduct{ID: 10, Name: "Club One", Brand: "Acme, Inc.", Type: "Gear", Group: "50% Club", ReleaseDate: "2024-01-01", AvgCycle: 300},
	)
	e, _ := setupTestEcho(t, products...)

	rec := serve(e, http.MethodGet, "/?brand=Acme%2C+Inc.")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/group/50%25%20Club"`)

	rec = serve(e, http.MethodGet, "/group/50%25%20Club")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Should you buy 50% Club now or wait?")
	assert.Contains(t, body, `<link rel="canonical" href="http://localhost:8000/group/50%25%20Club">`)
}

func TestGroupPage_NoMainProduct(t *testing.T) {
	e, _ := setupTestEcho(t, sampleProducts()...)

	rec := serve(e, http.MethodGet, "/group/Walkman")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No main product found for this group.")
}

func TestHealth_ReportsProductCount(t *testing.T) {
	e, _ := setupTestEcho(t, sampleProducts()...)

	rec := serve(e, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(len(sampleProducts())), body["products"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	e, svc := setupTestEcho(t)
	require.NoError(t, svc.storage.Close())

	rec := serve(e, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unhealthy")
}

func TestNew_CycleRefresherFollowsConfig(t *testing.T) {
	svc := setupTestService(t)
	assert.Nil(t, svc.cycleRefresher)

	svc.config.Cycles.RefreshEnabled = true
	enabled := New(svc.storage, svc.config)
	assert.NotNil(t, enabled.cycleRefresher)
	enabled.StopJobs()
}
