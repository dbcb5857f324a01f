package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/loganlanou/shouldibuy/internal/catalog"
	"github.com/loganlanou/shouldibuy/internal/cycles"
	"github.com/loganlanou/shouldibuy/storage"
	"github.com/loganlanou/shouldibuy/storage/db"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	// MaxConcurrentGroupRefreshes limits how many groups are written at once
	MaxConcurrentGroupRefreshes = 4
)

// RefreshSummary describes one refresh run.
type RefreshSummary struct {
	RunID       string
	Groups      int
	UpdatedRows int64
	Skipped     int
	Duration    time.Duration
}

// CycleRefresher recomputes avg_cycle and upgraded_after from release dates.
type CycleRefresher struct {
	storage  *storage.Storage
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func NewCycleRefresher(storage *storage.Storage, interval time.Duration) *CycleRefresher {
	return &CycleRefresher{
		storage:  storage,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start runs a refresh immediately and then on every interval until Stop
// is called or ctx is cancelled.
func (r *CycleRefresher) Start(ctx context.Context) {
	slog.Info("starting cycle refresher", "interval", r.interval)

	r.ticker = time.NewTicker(r.interval)

	go func() {
		r.runLogged(ctx)
		for {
			select {
			case <-r.ticker.C:
				r.runLogged(ctx)
			case <-ctx.Done():
				r.ticker.Stop()
				slog.Info("cycle refresher stopped", "reason", ctx.Err())
				return
			case <-r.done:
				r.ticker.Stop()
				slog.Info("cycle refresher stopped")
				return
			}
		}
	}()
}

// Stop ends the background loop. It is safe to call more than once.
func (r *CycleRefresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
	})
}

func (r *CycleRefresher) runLogged(ctx context.Context) {
	summary, err := r.RefreshOnce(ctx)
	if err != nil {
		slog.Error("cycle refresh failed", "error", err, "run_id", summary.RunID)
		return
	}
	slog.Info("cycle refresh completed",
		"run_id", summary.RunID,
		"groups", summary.Groups,
		"updated_rows", summary.UpdatedRows,
		"skipped", summary.Skipped,
		"duration", summary.Duration,
	)
}

// RefreshOnce recomputes every group. Groups with fewer than two dated
// releases are left untouched, as are undated rows. Only a group's latest
// release carries avg_cycle; earlier generations carry upgraded_after.
func (r *CycleRefresher) RefreshOnce(ctx context.Context) (RefreshSummary, error) {
	start := time.Now()
	summary := RefreshSummary{RunID: ulid.Make().String()}

	rows, err := r.storage.Queries.ListAllProducts(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list products: %w", err)
	}

	groups, skipped := groupReleases(rows)
	summary.Groups = len(groups)
	summary.Skipped = skipped

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	sem := semaphore.NewWeighted(MaxConcurrentGroupRefreshes)
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	for _, name := range names {
		releases := groups[name]
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)

			updated, err := r.refreshGroup(gctx, releases)
			if err != nil {
				return fmt.Errorf("group %q: %w", name, err)
			}

			mu.Lock()
			summary.UpdatedRows += updated
			mu.Unlock()
			return nil
		})
	}

	err = g.Wait()
	summary.Duration = time.Since(start)
	if err != nil {
		return summary, err
	}
	if ctx.Err() != nil {
		return summary, ctx.Err()
	}
	return summary, nil
}

func (r *CycleRefresher) refreshGroup(ctx context.Context, releases []cycles.Release) (int64, error) {
	gc := cycles.Compute(releases)
	if gc.AvgCycle == nil {
		return 0, nil
	}

	var updated int64
	err := r.storage.WithTx(ctx, func(q *db.Queries) error {
		for _, rel := range releases {
			if rel.ReleaseDate == nil {
				continue
			}
			params := db.UpdateProductCycleParams{ID: rel.ID}
			if days, ok := gc.UpgradedAfter[rel.ID]; ok {
				params.UpgradedAfter = sql.NullInt64{Int64: days, Valid: true}
			}
			if rel.ID == gc.LatestID {
				params.AvgCycle = sql.NullFloat64{Float64: *gc.AvgCycle, Valid: true}
			}

			n, err := q.UpdateProductCycle(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to update product %d: %w", rel.ID, err)
			}
			updated += n
		}
		return nil
	})
	return updated, err
}

// groupReleases buckets rows by group. Rows with unreadable dates are
// skipped and counted.
func groupReleases(rows []db.Product) (map[string][]cycles.Release, int) {
	groups := map[string][]cycles.Release{}
	skipped := 0
	for _, row := range rows {
		p, err := catalog.FromRow(row)
		if err != nil {
			slog.Warn("skipping product with invalid data", "product_id", row.ID, "error", err)
			skipped++
			continue
		}
		groups[p.Group] = append(groups[p.Group], cycles.Release{ID: p.ID, ReleaseDate: p.ReleaseDate})
	}
	return groups, skipped
}
