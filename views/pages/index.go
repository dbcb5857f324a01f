package pages

import (
	"net/url"
	"strconv"

	"github.com/loganlanou/shouldibuy/internal/catalog"
)

// IndexData is everything the listing page needs.
type IndexData struct {
	Filter catalog.Filter
	Facets catalog.FacetSet
	Page   catalog.Page[catalog.Entry]
}

// pageURL keeps the current filters when moving between pages.
func pageURL(f catalog.Filter, page int) string {
	v := url.Values{}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	for _, b := range f.Brands {
		v.Add("brand", b)
	}
	for _, t := range f.Types {
		v.Add("type", t)
	}
	v.Set("page", strconv.Itoa(page))
	return "/?" + v.Encode()
}
