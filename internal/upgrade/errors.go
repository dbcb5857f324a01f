package upgrade

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is wrapped by DataError when a stored date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNonPositiveCycle is returned when the average cycle is zero, negative or NaN.
	ErrNonPositiveCycle = errors.New("average cycle must be positive")
)

// DataError reports a malformed value in a product record.
type DataError struct {
	Field string
	Value string
	Err   error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
