package catalog

import (
	"log/slog"
	"slices"
	"time"

	"github.com/loganlanou/shouldibuy/internal/upgrade"
)

// Entry is a product together with its assessment at render time.
type Entry struct {
	Product
	upgrade.Assessment
}

// Assess evaluates a single product at now.
func Assess(p Product, now time.Time) Entry {
	a := upgrade.Assess(p.Input(), now)
	if a.HasDiagnostic(upgrade.DiagnosticNonPositiveCycle) {
		slog.Warn("product has no usable average cycle, classified as don't buy",
			"product_id", p.ID,
			"group", p.Group,
		)
	}
	return Entry{Product: p, Assessment: a}
}

// Evaluate assesses every product at the same instant.
func Evaluate(products []Product, now time.Time) []Entry {
	entries := make([]Entry, 0, len(products))
	for _, p := range products {
		entries = append(entries, Assess(p, now))
	}
	return entries
}

// SortByStatus orders entries best recommendation first. Entries with the
// same status keep their listing order.
func SortByStatus(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Status.Rank() - a.Status.Rank()
	})
}
