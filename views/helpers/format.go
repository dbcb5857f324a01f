package helpers

import (
	"fmt"
	"net/url"
	"time"
)

// FormatInt formats an integer as a string
func FormatInt(n int64) string {
	return fmt.Sprintf("%d", n)
}

// FormatDays formats an optional day count, returning defaultVal when unknown
func FormatDays(n *int, defaultVal string) string {
	if n == nil {
		return defaultVal
	}
	return fmt.Sprintf("%d", *n)
}

// FormatCycle formats an average cycle as whole days
func FormatCycle(days float64) string {
	return fmt.Sprintf("%.0f", days)
}

// FormatPercentage formats a ratio as a percentage (e.g., 0.42 -> "42%")
func FormatPercentage(p *float64, defaultVal string) string {
	if p == nil {
		return defaultVal
	}
	return fmt.Sprintf("%.0f%%", *p*100)
}

// FormatDate formats an optional date as "Jan 2, 2006"
func FormatDate(t *time.Time, defaultVal string) string {
	if t == nil {
		return defaultVal
	}
	return t.Format("Jan 2, 2006")
}

// FormatFloat formats a float with specified decimal places
func FormatFloat(f float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, f)
}

// GroupURL is the page for a product group
func GroupURL(group string) string {
	return "/group/" + url.PathEscape(group)
}
