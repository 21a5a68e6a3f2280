package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/strandedsim/stranded-tui/internal/knowledge"
	"github.com/strandedsim/stranded-tui/internal/store"
	"github.com/strandedsim/stranded-tui/internal/text"
	"github.com/strandedsim/stranded-tui/internal/ui"
	"github.com/strandedsim/stranded-tui/internal/util"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg, err := util.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seedFlag := flag.String("seed", cfg.SeedText, "Run seed string (optional; random if omitted)")
	backend := flag.String("backend", cfg.Backend, "Knowledge ledger backend: file|postgres|memory")
	dsn := flag.String("dsn", cfg.DSN, "PostgreSQL DSN (postgres backend)")
	ledger := flag.String("ledger", cfg.LedgerPath, "Ledger file path (file backend)")
	theme := flag.String("theme", cfg.Theme, "Color theme")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "stranded [--seed seedstring] [--backend file|postgres|memory] [--dsn DSN] | migrate up|down | version\n")
	}
	flag.Parse()

	cfg.SeedText = *seedFlag
	cfg.Backend = *backend
	cfg.DSN = *dsn
	cfg.LedgerPath = *ledger
	cfg.Theme = *theme

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Println("stranded", version)
			return
		case "migrate":
			if len(args) < 2 {
				log.Fatal("migrate requires 'up' or 'down'")
			}
			runMigrate(cfg.DSN, args[1])
			return
		}
	}

	ctx := context.Background()
	repo, db, closer, err := openLedger(ctx, cfg)
	if err != nil {
		log.Printf("ledger backend unavailable (%v); using in-memory ledger", err)
		repo = knowledge.NewMemoryRepository()
	}
	if closer != nil {
		defer closer()
	}
	tracker := knowledge.NewTracker(repo)
	narrator := text.NewTemplateNarrator()

	// Runs are archived turn by turn when the database backend is up.
	var archive ui.RunArchiver
	if db != nil {
		archive = store.NewArchive(db, cfg.Player)
	}

	if err := ui.Run(ctx, tracker, narrator, archive, cfg); err != nil {
		log.Fatal(err)
	}
}

// openLedger picks the knowledge repository per config. Failures degrade to
// memory at the call site; gameplay never depends on persistence. The *store.DB
// is non-nil only for the postgres backend, where it also carries the run
// archive.
func openLedger(ctx context.Context, cfg util.Config) (knowledge.Repository, *store.DB, func(), error) {
	switch cfg.Backend {
	case "memory":
		return knowledge.NewMemoryRepository(), nil, nil, nil
	case "postgres":
		if cfg.DSN == "" {
			return nil, nil, nil, fmt.Errorf("postgres backend requires a DSN")
		}
		mig, err := store.NewMigrator(cfg.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		migCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := mig.Up(migCtx); err != nil && err != store.ErrNoChange {
			return nil, nil, nil, err
		}
		db, err := store.Open(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return store.NewLedgerRepo(db, cfg.Player), db, func() { db.Close() }, nil
	default:
		path := cfg.LedgerPath
		if path == "" {
			path = knowledge.DefaultLedgerPath()
		}
		return knowledge.NewFileRepository(path), nil, nil, nil
	}
}

func runMigrate(dsn, action string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator, err := store.NewMigrator(dsn)
	if err != nil {
		log.Fatal(err)
	}
	switch action {
	case "up":
		if err := migrator.Up(ctx); err != nil && err != store.ErrNoChange {
			log.Fatal(err)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := migrator.Down(ctx); err != nil && err != store.ErrNoChange {
			log.Fatal(err)
		}
		fmt.Println("Migrations rolled back")
	default:
		log.Fatal("unknown migrate action; use up|down")
	}
}
