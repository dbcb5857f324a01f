package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDays(t *testing.T) {
	n := 12
	assert.Equal(t, "12", FormatDays(&n, "-"))
	assert.Equal(t, "-", FormatDays(nil, "-"))
}

func TestFormatPercentage(t *testing.T) {
	p := 0.42
	assert.Equal(t, "42%", FormatPercentage(&p, "n/a"))
	assert.Equal(t, "n/a", FormatPercentage(nil, "n/a"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2023, time.September, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 22, 2023", FormatDate(&d, "unknown"))
	assert.Equal(t, "unknown", FormatDate(nil, "unknown"))
}

func TestFormatCycle(t *testing.T) {
	assert.Equal(t, "366", FormatCycle(365.5))
	assert.Equal(t, "1.50", FormatFloat(1.5, 2))
}

func TestGroupURL(t *testing.T) {
	assert.Equal(t, "/group/Galaxy%20S", GroupURL("Galaxy S"))
	assert.Equal(t, "/group/a%2Fb", GroupURL("a/b"))
}
