package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shouldibuy/storage"
	"github.com/loganlanou/shouldibuy/storage/db"
)

// NewTestContext creates a new Echo context for testing
func NewTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec
}

// NewTestDB creates a test database with migrations applied
func NewTestDB() (*sql.DB, *db.Queries, func()) {
	database, queries, cleanup, err := storage.NewTestDB()
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return database, queries, cleanup
}

// TestProduct describes a row to seed. Empty strings and zero values are stored as NULL.
type TestProduct struct {
	ID            int64
	Name          string
	Brand         string
	Type          string
	Group         string
	ReleaseDate   string
	ExpectedDate  string
	AvgCycle      float64
	UpgradedAfter int64
}

// CreateTestProducts inserts products into the database
func CreateTestProducts(queries *db.Queries, products ...TestProduct) error {
	for _, p := range products {
		err := queries.UpsertProduct(context.Background(), db.UpsertProductParams{
			ID:            p.ID,
			Name:          p.Name,
			Brand:         p.Brand,
			Type:          p.Type,
			Group:         p.Group,
			ReleaseDate:   sql.NullString{String: p.ReleaseDate, Valid: p.ReleaseDate != ""},
			ExpectedDate:  sql.NullString{String: p.ExpectedDate, Valid: p.ExpectedDate != ""},
			AvgCycle:      sql.NullFloat64{Float64: p.AvgCycle, Valid: p.AvgCycle > 0},
			UpgradedAfter: sql.NullInt64{Int64: p.UpgradedAfter, Valid: p.UpgradedAfter > 0},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// AssertJSONResponse checks if the response is valid JSON and returns the parsed body
func AssertJSONResponse(rec *httptest.ResponseRecorder) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
