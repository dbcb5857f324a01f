package legacy

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToUpsert(t *testing.T) {
	row := Row{
		ID:            42,
		Name:          "Pixel 8",
		Brand:         sql.NullString{String: "Google", Valid: true},
		Type:          sql.NullString{String: "Phone", Valid: true},
		Group:         sql.NullString{String: "Pixel", Valid: true},
		ImageURL:      sql.NullString{String: "", Valid: true},
		ReleaseDate:   sql.NullTime{Time: time.Date(2023, 10, 12, 0, 0, 0, 0, time.UTC), Valid: true},
		ExpectedDate:  sql.NullTime{Time: time.Date(2024, 10, 4, 22, 0, 0, 0, time.FixedZone("PDT", -7*3600)), Valid: true},
		AvgCycle:      sql.NullFloat64{Float64: 371.25, Valid: true},
		UpgradedAfter: sql.NullFloat64{Float64: 357.6, Valid: true},
	}

	p := ToUpsert(row)

	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, "Google", p.Brand)
	assert.Equal(t, "Pixel", p.Group)
	assert.False(t, p.ImageUrl.Valid, "blank image urls are stored as NULL")
	assert.Equal(t, sql.NullString{String: "2023-10-12", Valid: true}, p.ReleaseDate)
	assert.Equal(t, sql.NullString{String: "2024-10-05", Valid: true}, p.ExpectedDate)
	assert.Equal(t, sql.NullFloat64{Float64: 371.25, Valid: true}, p.AvgCycle)
	assert.Equal(t, sql.NullInt64{Int64: 358, Valid: true}, p.UpgradedAfter)
}

func TestToUpsert_DropsNonPositiveCycle(t *testing.T) {
	p := ToUpsert(Row{ID: 1, Name: "x", AvgCycle: sql.NullFloat64{Float64: 0, Valid: true}})
	assert.False(t, p.AvgCycle.Valid)
	assert.False(t, p.ReleaseDate.Valid)
	assert.False(t, p.UpgradedAfter.Valid)
	assert.Equal(t, "", p.Brand)
}

func TestOpen_EmptyURL(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}
