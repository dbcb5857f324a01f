package catalog

import "strings"

// Filter narrows the listing. Empty brand or type sets match everything.
type Filter struct {
	Search string
	Brands []string
	Types  []string
	Group  string
}

// Match reports whether p passes the filter. Search is a case-insensitive
// substring match on the name.
func (f Filter) Match(p Product) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if len(f.Types) > 0 && !contains(f.Types, p.Type) {
		return false
	}
	if f.Group != "" && p.Group != f.Group {
		return false
	}
	return true
}

// IsEmpty reports whether the filter lets every product through.
func (f Filter) IsEmpty() bool {
	return f.Search == "" && len(f.Brands) == 0 && len(f.Types) == 0 && f.Group == ""
}

// Apply returns the products that match, preserving order.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// FacetSet lists the distinct brands and types offered as filters.
type FacetSet struct {
	Brands []string `json:"brands"`
	Types  []string `json:"types"`
}

// Facets collects unique brands and types in first-seen order.
func Facets(products []Product) FacetSet {
	fs := FacetSet{Brands: []string{}, Types: []string{}}
	seenBrand := map[string]bool{}
	seenType := map[string]bool{}
	for _, p := range products {
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			fs.Brands = append(fs.Brands, p.Brand)
		}
		if !seenType[p.Type] {
			seenType[p.Type] = true
			fs.Types = append(fs.Types, p.Type)
		}
	}
	return fs
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
