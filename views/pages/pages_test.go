package pages

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlanou/shouldibuy/internal/catalog"
	"github.com/loganlanou/shouldibuy/internal/upgrade"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func entry() catalog.Entry {
	expected := 98
	released := time.Date(2023, time.September, 22, 0, 0, 0, 0, time.UTC)
	percentage := 0.2683
	return catalog.Entry{
		Product: catalog.Product{ID: 7, Name: "Pixel 8 <Pro>", Group: "Pixel Phones", ReleaseDate: &released},
		Assessment: upgrade.Assessment{
			ReleasedDaysAgo:       267,
			ExpectedUpgradeInDays: &expected,
			CycleDays:             365.2,
			Percentage:            &percentage,
			Status:                upgrade.Wait,
		},
	}
}

func TestProductRow(t *testing.T) {
	html := render(t, ProductRow(entry(), true))

	assert.Contains(t, html, `data-product-id="7"`)
	assert.Contains(t, html, "Pixel 8 &lt;Pro&gt;")
	assert.NotContains(t, html, "<Pro>")
	assert.Contains(t, html, `href="/group/Pixel%20Phones"`)
	assert.Contains(t, html, ">267<")
	assert.Contains(t, html, ">365<")
	assert.Contains(t, html, ">98<")
	assert.Contains(t, html, ">Wait<")
	assert.Contains(t, html, `fill="`+upgrade.Wait.Color()+`"`)
	assert.Contains(t, html, "Released Sep 22, 2023")
	assert.Contains(t, html, ">27%<")
}

func TestProductRow_UnknownExpectedAndNoLink(t *testing.T) {
	e := entry()
	e.ExpectedUpgradeInDays = nil
	e.ReleaseDate = nil
	e.Percentage = nil

	html := render(t, ProductRow(e, false))
	assert.NotContains(t, html, "<a href")
	assert.Contains(t, html, ">-<")
	assert.Contains(t, html, "Released date unknown")
}

func TestIndex(t *testing.T) {
	items := []catalog.Entry{entry()}
	data := IndexData{
		Filter: catalog.Filter{Brands: []string{"Acme, Inc."}},
		Facets: catalog.FacetSet{Brands: []string{"Google", "Acme, Inc."}, Types: []string{"Phone"}},
		Page:   catalog.Paginate(items, 1, 1),
	}
	data.Page.TotalPages = 2
	data.Page.HasNext = true

	html := render(t, Index(data))
	assert.Contains(t, html, `value="Acme, Inc." checked>`)
	assert.Contains(t, html, `value="Google">`)
	assert.Contains(t, html, "Page 1 of 2")
	assert.Contains(t, html, `href="/?brand=Acme%2C+Inc.&amp;page=2"`)
	assert.Contains(t, html, `<span class="button disabled">Previous</span>`)
	assert.Contains(t, html, "Clear filters")
}

func TestIndex_Empty(t *testing.T) {
	html := render(t, Index(IndexData{Page: catalog.Paginate([]catalog.Entry{}, 1, 10)}))
	assert.Contains(t, html, "No products match your filters.")
	assert.NotContains(t, html, `class="button" href=`)
	assert.NotContains(t, html, "Clear filters")
}

func TestGroup(t *testing.T) {
	view := catalog.GroupView{
		Name: "Pixel Phones",
		Main: entry(),
		History: []catalog.HistoryItem{
			{Product: catalog.Product{ID: 3, Name: "Pixel 7"}, UpgradedAfter: 364, BarPercent: 100},
			{Product: catalog.Product{ID: 2, Name: "Pixel 6"}, UpgradedAfter: 182, BarPercent: 50},
		},
		MaxUpgradedAfter: 364,
	}

	html := render(t, Group(view))
	assert.Contains(t, html, "Should you buy Pixel Phones now or wait?")
	assert.Contains(t, html, `max="100" value="100.0"`)
	assert.Contains(t, html, `max="100" value="50.0"`)
	assert.Contains(t, html, ">364<")
	assert.Contains(t, html, "upgraded after")
	assert.NotContains(t, html, "No related products")
}

func TestGroup_NoHistory(t *testing.T) {
	html := render(t, Group(catalog.GroupView{Name: "Solo", Main: entry()}))
	assert.Contains(t, html, "No related products with upgrade info found in this group.")
}

func TestMessage(t *testing.T) {
	html := render(t, Message("No main product found for <group>"))
	assert.Contains(t, html, "No main product found for &lt;group&gt;")
	assert.Contains(t, html, `href="/"`)
}
