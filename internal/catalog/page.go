package catalog

// DefaultPerPage is the listing page size.
const DefaultPerPage = 10

// Page is one slice of a listing.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Number     int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Paginate returns page number of items. Out of range page numbers are
// clamped into [1, TotalPages]; an empty listing has zero pages and is
// reported as page 1.
func Paginate[T any](items []T, number, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	if number > totalPages {
		number = totalPages
	}
	if number < 1 {
		number = 1
	}

	start := (number - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
}
