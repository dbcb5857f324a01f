package upgrade

import (
	"strings"
	"time"
)

const msPerDay = int64(24 * time.Hour / time.Millisecond)

const dateLayout = "2006-01-02"

// ParseDate parses a stored calendar date. A blank string means the date is
// unknown and yields nil without error.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, &DataError{Field: "date", Value: s, Err: ErrInvalidDate}
		}
	}

	t = t.UTC()
	return &t, nil
}

// DaysSince returns the whole days elapsed from date to now, or 0 when the
// date is unknown. Future dates give a negative result.
func DaysSince(date *time.Time, now time.Time) int {
	if date == nil {
		return 0
	}
	return int(floorDiv(now.Sub(*date).Milliseconds(), msPerDay))
}

// DaysUntil returns the whole days from now until date. It returns nil when
// the date is unknown or already passed.
func DaysUntil(date *time.Time, now time.Time) *int {
	if date == nil {
		return nil
	}
	days := int(floorDiv(date.Sub(now).Milliseconds(), msPerDay))
	if days < 0 {
		return nil
	}
	return &days
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
