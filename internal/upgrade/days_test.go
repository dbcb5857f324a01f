package upgrade

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func at(t time.Time) *time.Time { return &t }

func TestDaysSince(t *testing.T) {
	assert.Equal(t, 0, DaysSince(nil, testNow))
	assert.Equal(t, 10, DaysSince(at(testNow.AddDate(0, 0, -10)), testNow))
	assert.Equal(t, 0, DaysSince(at(testNow.Add(-23*time.Hour)), testNow))
	assert.Equal(t, 1, DaysSince(at(testNow.Add(-25*time.Hour)), testNow))

	// future dates floor toward negative infinity
	assert.Equal(t, -1, DaysSince(at(testNow.Add(time.Hour)), testNow))
	assert.Equal(t, -5, DaysSince(at(testNow.AddDate(0, 0, 5)), testNow))
}

func TestDaysUntil(t *testing.T) {
	assert.Nil(t, DaysUntil(nil, testNow))

	got := DaysUntil(at(testNow.AddDate(0, 0, 10)), testNow)
	require.NotNil(t, got)
	assert.Equal(t, 10, *got)

	got = DaysUntil(at(testNow.Add(2*time.Hour)), testNow)
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)

	assert.Nil(t, DaysUntil(at(testNow.AddDate(0, 0, -5)), testNow), "passed dates are unknown")
	assert.Nil(t, DaysUntil(at(testNow.Add(-time.Minute)), testNow))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *time.Time
		wantErr bool
	}{
		{name: "empty", in: "", want: nil},
		{name: "blank", in: "   ", want: nil},
		{name: "calendar_date", in: "2023-09-22", want: at(time.Date(2023, 9, 22, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339_utc", in: "2023-09-22T00:00:00Z", want: at(time.Date(2023, 9, 22, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339_offset", in: "2023-09-22T02:00:00+02:00", want: at(time.Date(2023, 9, 22, 0, 0, 0, 0, time.UTC))},
		{name: "garbage", in: "next spring", wantErr: true},
		{name: "bad_month", in: "2023-13-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)

				var dataErr *DataError
				require.True(t, errors.As(err, &dataErr))
				assert.Equal(t, "date", dataErr.Field)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
