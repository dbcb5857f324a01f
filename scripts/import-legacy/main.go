package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/loganlanou/shouldibuy/internal/legacy"
	"github.com/loganlanou/shouldibuy/storage"
	"github.com/loganlanou/shouldibuy/storage/db"
)

func main() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listLimit := listCmd.Int("limit", 20, "Maximum number of products to list")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importDryRun := importCmd.Bool("dry-run", false, "Preview what would be imported")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch os.Args[1] {
	case "list":
		listCmd.Parse(os.Args[2:])
		runList(ctx, *listLimit)
	case "import":
		importCmd.Parse(os.Args[2:])
		runImport(ctx, *importDryRun)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Legacy Import Tool - Copy products from the Postgres catalog into SQLite")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  import-legacy list [-limit n]     List products in the legacy database")
	fmt.Println("  import-legacy import              Upsert every legacy product locally")
	fmt.Println("  import-legacy import -dry-run     Preview what would be imported")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  POSTGRES_URL    Legacy database connection string (required)")
	fmt.Println("  DB_PATH         Local database path (default: ./db/shouldibuy.db)")
}

func openSource(ctx context.Context) *legacy.Source {
	src, err := legacy.Open(ctx, os.Getenv("POSTGRES_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to legacy database: %v", err)
	}
	return src
}

func getStore() *storage.Storage {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/shouldibuy.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return store
}

func runList(ctx context.Context, limit int) {
	src := openSource(ctx)
	defer src.Close()

	rows, err := src.Products(ctx)
	if err != nil {
		log.Fatalf("Failed to list legacy products: %v", err)
	}

	fmt.Printf("%d products in legacy database\n\n", len(rows))
	fmt.Printf("%-6s %-32s %-16s %-12s %-8s\n", "ID", "NAME", "GROUP", "RELEASED", "CYCLE")
	for i, r := range rows {
		if i >= limit {
			fmt.Printf("... and %d more\n", len(rows)-limit)
			break
		}
		p := legacy.ToUpsert(r)
		cycle := "-"
		if p.AvgCycle.Valid {
			cycle = fmt.Sprintf("%.1f", p.AvgCycle.Float64)
		}
		released := "-"
		if p.ReleaseDate.Valid {
			released = p.ReleaseDate.String
		}
		fmt.Printf("%-6d %-32s %-16s %-12s %-8s\n", p.ID, truncate(p.Name, 32), truncate(p.Group, 16), released, cycle)
	}
}

func runImport(ctx context.Context, dryRun bool) {
	runID := ulid.Make()
	start := time.Now()

	src := openSource(ctx)
	defer src.Close()

	rows, err := src.Products(ctx)
	if err != nil {
		log.Fatalf("Failed to read legacy products: %v", err)
	}

	params := make([]db.UpsertProductParams, 0, len(rows))
	for _, r := range rows {
		params = append(params, legacy.ToUpsert(r))
	}

	if dryRun {
		fmt.Printf("[%s] dry run: %d products would be imported\n", runID, len(params))
		for _, p := range params {
			fmt.Printf("  %d  %s (%s)\n", p.ID, p.Name, p.Group)
		}
		return
	}

	store := getStore()
	defer store.Close()

	err = store.WithTx(ctx, func(q *db.Queries) error {
		for _, p := range params {
			if err := q.UpsertProduct(ctx, p); err != nil {
				return fmt.Errorf("product %d: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("[%s] Import failed: %v", runID, err)
	}

	fmt.Printf("[%s] imported %d products in %s\n", runID, len(params), time.Since(start).Round(time.Millisecond))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
