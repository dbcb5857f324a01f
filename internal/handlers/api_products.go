package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shouldibuy/internal/catalog"
	"github.com/loganlanou/shouldibuy/internal/upgrade"
	"github.com/loganlanou/shouldibuy/storage/db"
)

// ProductQueries is the read side of the product store.
type ProductQueries interface {
	ListProducts(ctx context.Context) ([]db.Product, error)
	ListProductsByGroup(ctx context.Context, group string) ([]db.Product, error)
	ListGroups(ctx context.Context) ([]db.ListGroupsRow, error)
	GetProduct(ctx context.Context, id int64) (db.Product, error)
}

type APIProductsHandler struct {
	queries ProductQueries
	now     func() time.Time
	perPage int
}

func NewAPIProductsHandler(queries ProductQueries, now func() time.Time, perPage int) *APIProductsHandler {
	if now == nil {
		now = time.Now
	}
	if perPage <= 0 {
		perPage = catalog.DefaultPerPage
	}
	return &APIProductsHandler{queries: queries, now: now, perPage: perPage}
}

// ListProducts returns assessed products that have a known average cycle.
// Without a page parameter the full filtered list is returned as an array.
// sort=status orders it best recommendation first.
func (h *APIProductsHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	filter := ParseFilter(c)

	products, err := LoadListed(ctx, h.queries)
	if err != nil {
		return productsError(err)
	}

	entries := catalog.Evaluate(filter.Apply(products), h.now().UTC())
	SortEntries(c, entries)

	if c.QueryParam("page") == "" {
		return c.JSON(http.StatusOK, entries)
	}
	return c.JSON(http.StatusOK, catalog.Paginate(entries, ParsePage(c), h.perPage))
}

// GetProduct returns one assessed product by id.
func (h *APIProductsHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	row, err := h.queries.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		slog.Error("failed to get product", "error", err, "id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get product")
	}

	p, err := catalog.FromRow(row)
	if err != nil {
		return productsError(&catalog.RowError{ID: row.ID, Err: err})
	}

	return c.JSON(http.StatusOK, catalog.Assess(p, h.now().UTC()))
}

// ListFacets returns the brands and types available as filters.
func (h *APIProductsHandler) ListFacets(c echo.Context) error {
	products, err := LoadListed(c.Request().Context(), h.queries)
	if err != nil {
		return productsError(err)
	}
	return c.JSON(http.StatusOK, catalog.Facets(products))
}

// ListGroups returns every group with its product count.
func (h *APIProductsHandler) ListGroups(c echo.Context) error {
	groups, err := h.queries.ListGroups(c.Request().Context())
	if err != nil {
		slog.Error("failed to list groups", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load groups")
	}
	if groups == nil {
		groups = []db.ListGroupsRow{}
	}
	return c.JSON(http.StatusOK, groups)
}

// GetGroup returns the recommendation and upgrade history for a group.
func (h *APIProductsHandler) GetGroup(c echo.Context) error {
	name, err := GroupParam(c)
	if err != nil {
		return err
	}

	view, err := LoadGroup(c.Request().Context(), h.queries, name, h.now().UTC())
	if err != nil {
		return groupError(err, name)
	}
	return c.JSON(http.StatusOK, view)
}

// LoadListed runs the listing query and converts the rows.
func LoadListed(ctx context.Context, queries ProductQueries) ([]catalog.Product, error) {
	rows, err := queries.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FromRows(rows)
}

// LoadGroup builds the view for the named group.
func LoadGroup(ctx context.Context, queries ProductQueries, name string, now time.Time) (catalog.GroupView, error) {
	rows, err := queries.ListProductsByGroup(ctx, name)
	if err != nil {
		return catalog.GroupView{}, err
	}
	products, err := catalog.FromRows(rows)
	if err != nil {
		return catalog.GroupView{}, err
	}
	return catalog.BuildGroup(name, products, now)
}

// ParseFilter reads q, group and the repeatable brand and type parameters.
// Brand and type values are matched exactly, commas included.
func ParseFilter(c echo.Context) catalog.Filter {
	params := c.QueryParams()
	return catalog.Filter{
		Search: strings.TrimSpace(params.Get("q")),
		Brands: nonEmpty(params["brand"]),
		Types:  nonEmpty(params["type"]),
		Group:  strings.TrimSpace(params.Get("group")),
	}
}

// SortEntries applies the sort query parameter. "status" puts the best
// recommendations first; anything else keeps id order.
func SortEntries(c echo.Context, entries []catalog.Entry) {
	if c.QueryParam("sort") == "status" {
		catalog.SortByStatus(entries)
	}
}

// ParsePage returns the requested page number, 1 when absent or invalid.
func ParsePage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GroupParam returns the decoded :group path parameter. Echo routes on the
// raw path only when the request carried escapes such as %2F, so the
// parameter is unescaped in that case alone.
func GroupParam(c echo.Context) (string, error) {
	name := c.Param("group")
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid group")
		}
		name = unescaped
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Group is required")
	}
	return name, nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func productsError(err error) error {
	var rowErr *catalog.RowError
	if errors.As(err, &rowErr) && errors.Is(err, upgrade.ErrInvalidDate) {
		slog.Error("product has invalid data", "error", err, "product_id", rowErr.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Invalid product data")
	}
	slog.Error("failed to fetch products", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load products")
}

func groupError(err error, name string) error {
	if errors.Is(err, catalog.ErrNoMainProduct) {
		return echo.NewHTTPError(http.StatusNotFound, "No main product found for this group")
	}
	var rowErr *catalog.RowError
	if errors.As(err, &rowErr) && errors.Is(err, upgrade.ErrInvalidDate) {
		slog.Error("group has invalid product data", "group", name, "product_id", rowErr.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Invalid product data")
	}
	slog.Error("failed to load group", "group", name, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load products")
}
