package service

import (
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shouldibuy/internal/handlers"
	"github.com/loganlanou/shouldibuy/storage"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// setupTestService creates a service instance with an in-memory database for testing
func setupTestService(t *testing.T, products ...handlers.TestProduct) *Service {
	t.Helper()

	database, queries, cleanup, err := storage.NewTestDB()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	if err := handlers.CreateTestProducts(queries, products...); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}

	config := &Config{
		Environment:    "test",
		Port:           "8000",
		BaseURL:        "http://localhost:8000",
		SiteName:       "Should I Buy It?",
		DBPath:         ":memory:",
		ResultsPerPage: 2,
	}
	config.Cycles.RefreshInterval = time.Hour

	svc := New(storage.NewFromDB(database), config)
	svc.now = func() time.Time { return testNow }
	return svc
}

// setupTestEcho creates an Echo instance with all routes registered for testing
func setupTestEcho(t *testing.T, products ...handlers.TestProduct) (*echo.Echo, *Service) {
	t.Helper()

	svc := setupTestService(t, products...)

	e := echo.New()
	svc.RegisterRoutes(e)

	return e, svc
}

func sampleProducts() []handlers.TestProduct {
	return []handlers.TestProduct{
		{ID: 1, Name: "iPhone 14", Brand: "Apple", Type: "Phone", Group: "iPhone", ReleaseDate: "2022-09-16", UpgradedAfter: 371},
		{ID: 2, Name: "iPhone 15", Brand: "Apple", Type: "Phone", Group: "iPhone", ReleaseDate: "2023-09-22", AvgCycle: 368},
		{ID: 3, Name: "Galaxy S24", Brand: "Samsung", Type: "Phone", Group: "Galaxy S", ReleaseDate: "2024-01-31", AvgCycle: 365},
		{ID: 4, Name: "MacBook Air M3", Brand: "Apple", Type: "Laptop", Group: "MacBook Air", ReleaseDate: "2024-03-08", ExpectedDate: "2025-03-12", AvgCycle: 400},
		{ID: 5, Name: "Pixel 8 <Pro>", Brand: "Google", Type: "Phone", Group: "Pixel", ReleaseDate: "2023-10-12", AvgCycle: 366},
	}
}
