// Package legacy reads the products table of the earlier Postgres
// deployment so it can be imported into the local SQLite catalog.
package legacy

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "github.com/lib/pq"

	"github.com/loganlanou/shouldibuy/storage/db"
)

const listProductsQuery = `SELECT id, name, brand, type, "group", image_url,
	release_date, expected_date, avg_cycle, upgraded_after
FROM products
ORDER BY id`

const dateLayout = "2006-01-02"

// Row is a products row as stored in Postgres. Dates are DATE columns.
type Row struct {
	ID            int64
	Name          string
	Brand         sql.NullString
	Type          sql.NullString
	Group         sql.NullString
	ImageURL      sql.NullString
	ReleaseDate   sql.NullTime
	ExpectedDate  sql.NullTime
	AvgCycle      sql.NullFloat64
	UpgradedAfter sql.NullFloat64
}

type Source struct {
	db *sql.DB
}

// Open connects to the legacy database at url (a POSTGRES_URL value).
func Open(ctx context.Context, url string) (*Source, error) {
	if url == "" {
		return nil, fmt.Errorf("legacy database url is empty")
	}

	database, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping legacy database: %w", err)
	}

	return &Source{db: database}, nil
}

func (s *Source) Close() error {
	return s.db.Close()
}

// Products returns every row of the legacy products table.
func (s *Source) Products(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, listProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query legacy products: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Brand,
			&r.Type,
			&r.Group,
			&r.ImageURL,
			&r.ReleaseDate,
			&r.ExpectedDate,
			&r.AvgCycle,
			&r.UpgradedAfter,
		); err != nil {
			return nil, fmt.Errorf("failed to scan legacy product: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read legacy products: %w", err)
	}
	return out, nil
}

// ToUpsert maps a legacy row onto the local schema. Non-positive cycles
// are dropped because the local table rejects them.
func ToUpsert(r Row) db.UpsertProductParams {
	params := db.UpsertProductParams{
		ID:       r.ID,
		Name:     r.Name,
		Brand:    r.Brand.String,
		Type:     r.Type.String,
		Group:    r.Group.String,
		ImageUrl: sql.NullString{String: r.ImageURL.String, Valid: r.ImageURL.Valid && r.ImageURL.String != ""},
	}

	if r.ReleaseDate.Valid {
		params.ReleaseDate = sql.NullString{String: r.ReleaseDate.Time.UTC().Format(dateLayout), Valid: true}
	}
	if r.ExpectedDate.Valid {
		params.ExpectedDate = sql.NullString{String: r.ExpectedDate.Time.UTC().Format(dateLayout), Valid: true}
	}
	if r.AvgCycle.Valid && r.AvgCycle.Float64 > 0 {
		params.AvgCycle = r.AvgCycle
	}
	if r.UpgradedAfter.Valid {
		params.UpgradedAfter = sql.NullInt64{Int64: int64(math.Round(r.UpgradedAfter.Float64)), Valid: true}
	}

	return params
}
