package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/loganlanou/shouldibuy/internal/cycles"
	"github.com/loganlanou/shouldibuy/storage"
	"github.com/loganlanou/shouldibuy/storage/db"
)

const dateLayout = "2006-01-02"

var productTypes = []string{"Phone", "Laptop", "Tablet", "Watch", "Headphones", "Console", "Camera"}

func main() {
	groups := flag.Int("groups", 12, "Number of product groups to generate")
	maxGenerations := flag.Int("generations", 5, "Maximum generations per group")
	seed := flag.Uint64("seed", 0, "Random seed (0 picks one)")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	faker := gofakeit.New(*seed)

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/shouldibuy.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	existing, err := db.New(store.DB()).ListAllProducts(ctx)
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	nextID := int64(1)
	for _, p := range existing {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	fmt.Println("🌱 Seeding catalog...")

	now := time.Now().UTC()
	total := 0
	err = store.WithTx(ctx, func(q *db.Queries) error {
		for g := 0; g < *groups; g++ {
			products := generateGroup(faker, now, nextID, *maxGenerations)
			nextID += int64(len(products))
			for _, p := range products {
				if err := q.UpsertProduct(ctx, p); err != nil {
					return fmt.Errorf("product %q: %w", p.Name, err)
				}
			}
			total += len(products)
			fmt.Printf("  ✓ %s (%d generations)\n", products[0].Group, len(products))
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	count, err := db.New(store.DB()).CountProducts(ctx)
	if err != nil {
		log.Fatalf("Failed to count products: %v", err)
	}

	fmt.Printf("✅ Seeded %d products (seed %d), catalog now holds %d\n", total, *seed, count)
}

// generateGroup builds the generations of one product line, oldest first,
// with cycle data filled from the release gaps.
func generateGroup(faker *gofakeit.Faker, now time.Time, firstID int64, maxGenerations int) []db.UpsertProductParams {
	brand := faker.Company()
	productType := productTypes[faker.IntN(len(productTypes))]
	line := fmt.Sprintf("%s %s", faker.AppName(), productType)
	generations := faker.IntRange(2, max(2, maxGenerations))
	cadence := faker.IntRange(180, 900)

	released := now.AddDate(0, 0, -faker.IntRange(30, cadence))
	dates := make([]time.Time, generations)
	for i := generations - 1; i >= 0; i-- {
		dates[i] = released.Truncate(24 * time.Hour)
		// Jitter keeps cycles uneven like real product lines.
		released = released.AddDate(0, 0, -(cadence + faker.IntRange(-cadence/5, cadence/5)))
	}

	products := make([]db.UpsertProductParams, generations)
	releases := make([]cycles.Release, generations)
	for i := range products {
		id := firstID + int64(i)
		products[i] = db.UpsertProductParams{
			ID:          id,
			Name:        fmt.Sprintf("%s %d", line, i+1),
			Brand:       brand,
			Type:        productType,
			Group:       line,
			ImageUrl:    sql.NullString{String: faker.URL(), Valid: faker.Bool()},
			ReleaseDate: sql.NullString{String: dates[i].Format(dateLayout), Valid: true},
		}
		releases[i] = cycles.Release{ID: id, ReleaseDate: &dates[i]}
	}

	computed := cycles.Compute(releases)
	for i := range products {
		p := &products[i]
		if after, ok := computed.UpgradedAfter[p.ID]; ok {
			p.UpgradedAfter = sql.NullInt64{Int64: after, Valid: true}
		}
		if p.ID == computed.LatestID && computed.AvgCycle != nil {
			p.AvgCycle = sql.NullFloat64{Float64: *computed.AvgCycle, Valid: true}
			if faker.Bool() {
				expected := dates[i].AddDate(0, 0, int(*computed.AvgCycle)+faker.IntRange(-30, 30))
				p.ExpectedDate = sql.NullString{String: expected.Format(dateLayout), Valid: true}
			}
		}
	}
	return products
}
