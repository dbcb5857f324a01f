package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shouldibuy/internal/catalog"
	"github.com/loganlanou/shouldibuy/internal/handlers"
	"github.com/loganlanou/shouldibuy/internal/jobs"
	"github.com/loganlanou/shouldibuy/storage"
	"github.com/loganlanou/shouldibuy/views/layout"
	"github.com/loganlanou/shouldibuy/views/pages"
)

type Service struct {
	storage        *storage.Storage
	config         *Config
	productsAPI    *handlers.APIProductsHandler
	cycleRefresher *jobs.CycleRefresher
	now            func() time.Time
}

func New(storage *storage.Storage, config *Config) *Service {
	s := &Service{
		storage: storage,
		config:  config,
		now:     time.Now,
	}
	s.productsAPI = handlers.NewAPIProductsHandler(storage.Queries, s.clock, config.ResultsPerPage)

	if config.Cycles.RefreshEnabled {
		s.cycleRefresher = jobs.NewCycleRefresher(storage, config.Cycles.RefreshInterval)
	}

	return s
}

// StartJobs launches the background jobs enabled in the config.
func (s *Service) StartJobs(ctx context.Context) {
	if s.cycleRefresher != nil {
		s.cycleRefresher.Start(ctx)
	}
}

// StopJobs stops any running background jobs.
func (s *Service) StopJobs() {
	if s.cycleRefresher != nil {
		s.cycleRefresher.Stop()
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Static files
	e.Static("/public", "public")

	// Pages
	e.GET("/", s.handleHome)
	e.GET("/group/:group", s.handleGroup)

	// Health check
	e.GET("/health", s.handleHealth)

	// JSON API
	api := e.Group("/api")
	api.GET("/products", s.productsAPI.ListProducts)
	api.GET("/products/:id", s.productsAPI.GetProduct)
	api.GET("/facets", s.productsAPI.ListFacets)
	api.GET("/groups", s.productsAPI.ListGroups)
	api.GET("/groups/:group", s.productsAPI.GetGroup)
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}

func (s *Service) pageMeta(c echo.Context) layout.PageMeta {
	return layout.NewPageMeta(s.config.BaseURL, s.config.SiteName, c.Request().URL.EscapedPath())
}

func (s *Service) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	filter := handlers.ParseFilter(c)

	products, err := handlers.LoadListed(ctx, s.storage.Queries)
	if err != nil {
		slog.Error("failed to fetch products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load products")
	}
	slog.Debug("fetched products", "count", len(products))

	entries := catalog.Evaluate(filter.Apply(products), s.clock())
	handlers.SortEntries(c, entries)

	data := pages.IndexData{
		Filter: filter,
		Facets: catalog.Facets(products),
		Page:   catalog.Paginate(entries, handlers.ParsePage(c), s.config.ResultsPerPage),
	}

	meta := s.pageMeta(c)
	return handlers.Render(c, layout.Base(meta, pages.Index(data)))
}

func (s *Service) handleGroup(c echo.Context) error {
	name, err := handlers.GroupParam(c)
	if err != nil {
		return err
	}

	view, err := handlers.LoadGroup(c.Request().Context(), s.storage.Queries, name, s.clock())
	if err != nil {
		if errors.Is(err, catalog.ErrNoMainProduct) {
			meta := s.pageMeta(c)
			meta.Title = name + " - " + meta.OGSiteName
			return handlers.RenderStatus(c, http.StatusNotFound, layout.Base(meta, pages.Message("No main product found for this group.")))
		}
		slog.Error("failed to load group", "group", name, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load products")
	}

	meta := s.pageMeta(c).ForGroup(view)
	return handlers.Render(c, layout.Base(meta, pages.Group(view)))
}

func (s *Service) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := s.storage.Ping(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":      "unhealthy",
			"environment": s.config.Environment,
			"database":    "unreachable",
		})
	}

	count, err := s.storage.Queries.CountProducts(ctx)
	if err != nil {
		slog.Error("health check failed to count products", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":      "unhealthy",
			"environment": s.config.Environment,
			"database":    "unreadable",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": s.config.Environment,
		"database":    "connected",
		"products":    count,
	})
}
