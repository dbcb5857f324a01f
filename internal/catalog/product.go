package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/loganlanou/shouldibuy/internal/upgrade"
	"github.com/loganlanou/shouldibuy/storage/db"
)

// Product is a catalog record with its optional columns as pointers.
type Product struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Brand         string     `json:"brand"`
	Type          string     `json:"type"`
	Group         string     `json:"group"`
	ImageURL      *string    `json:"image_url"`
	ReleaseDate   *time.Time `json:"release_date"`
	ExpectedDate  *time.Time `json:"expected_date"`
	AvgCycle      *float64   `json:"avg_cycle"`
	UpgradedAfter *int64     `json:"upgraded_after"`
}

// FromRow converts a stored row. Malformed dates are returned as an
// *upgrade.DataError naming the column.
func FromRow(row db.Product) (Product, error) {
	p := Product{
		ID:    row.ID,
		Name:  row.Name,
		Brand: row.Brand,
		Type:  row.Type,
		Group: row.Group,
	}

	if row.ImageUrl.Valid && row.ImageUrl.String != "" {
		url := row.ImageUrl.String
		p.ImageURL = &url
	}
	if row.AvgCycle.Valid {
		cycle := row.AvgCycle.Float64
		p.AvgCycle = &cycle
	}
	if row.UpgradedAfter.Valid {
		after := row.UpgradedAfter.Int64
		p.UpgradedAfter = &after
	}

	var err error
	if p.ReleaseDate, err = parseColumn("release_date", row.ReleaseDate.String, row.ReleaseDate.Valid); err != nil {
		return Product{}, err
	}
	if p.ExpectedDate, err = parseColumn("expected_date", row.ExpectedDate.String, row.ExpectedDate.Valid); err != nil {
		return Product{}, err
	}

	return p, nil
}

// FromRows converts rows in order, stopping at the first bad row.
func FromRows(rows []db.Product) ([]Product, error) {
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		p, err := FromRow(row)
		if err != nil {
			return nil, &RowError{ID: row.ID, Err: err}
		}
		products = append(products, p)
	}
	return products, nil
}

// RowError ties a conversion failure to the product that caused it.
type RowError struct {
	ID  int64
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("product %d: %v", e.ID, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Input returns the fields the classifier needs.
func (p Product) Input() upgrade.Input {
	return upgrade.Input{
		ReleaseDate:  p.ReleaseDate,
		ExpectedDate: p.ExpectedDate,
		AvgCycle:     p.AvgCycle,
	}
}

func parseColumn(column, value string, valid bool) (*time.Time, error) {
	if !valid {
		return nil, nil
	}
	t, err := upgrade.ParseDate(value)
	if err != nil {
		var dataErr *upgrade.DataError
		if errors.As(err, &dataErr) {
			dataErr.Field = column
		}
		return nil, err
	}
	return t, nil
}
