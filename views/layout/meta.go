package layout

import (
	"fmt"
	"strings"

	"github.com/loganlanou/shouldibuy/internal/catalog"
)

const defaultOGImage = "/public/images/social/default-og.png"

// PageMeta contains all metadata for a page (SEO, Open Graph, Twitter)
type PageMeta struct {
	// Basic HTML meta
	Title        string
	Description  string
	Keywords     []string
	CanonicalURL string

	// Open Graph
	OGType        string
	OGTitle       string
	OGDescription string
	OGImageURL    string // MUST be absolute URL
	OGURL         string // MUST be absolute URL
	OGSiteName    string

	// Twitter Cards
	TwitterCard string

	SiteURL string
}

// NewPageMeta creates a PageMeta with site-wide defaults for the page at path.
func NewPageMeta(siteURL, siteName, path string) PageMeta {
	description := "Should you buy it now or wait? Release cycles and upgrade timing for phones, laptops, tablets and more."
	canonicalURL := BuildAbsoluteURL(siteURL, path)

	return PageMeta{
		Title:        siteName,
		Description:  description,
		Keywords:     []string{"buy now or wait", "release cycle", "upgrade", "product release dates"},
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       siteName,
		OGDescription: description,
		OGImageURL:    BuildAbsoluteURL(siteURL, defaultOGImage),
		OGURL:         canonicalURL,
		OGSiteName:    siteName,

		TwitterCard: "summary_large_image",

		SiteURL: siteURL,
	}
}

// ForGroup updates PageMeta for a product group page
func (pm PageMeta) ForGroup(view catalog.GroupView) PageMeta {
	title := fmt.Sprintf("Should you buy %s now or wait?", view.Name)
	description := fmt.Sprintf("%s: %s. Released %d days ago, average upgrade cycle %.0f days.",
		view.Main.Name, view.Main.Status, view.Main.ReleasedDaysAgo, view.Main.CycleDays)

	pm.Title = title + " - " + pm.OGSiteName
	pm.OGTitle = title
	pm.Description = description
	pm.OGDescription = description
	pm.Keywords = []string{view.Name, view.Main.Name, view.Main.Brand, "release cycle", "buy now or wait"}
	pm.OGType = "article"

	if view.Main.ImageURL != nil {
		pm.OGImageURL = BuildAbsoluteURL(pm.SiteURL, *view.Main.ImageURL)
	}
	return pm
}

// KeywordsString returns keywords as a comma-separated string
func (pm PageMeta) KeywordsString() string {
	return strings.Join(pm.Keywords, ", ")
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}
