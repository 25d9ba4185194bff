package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/vulnscale/vulnscale/internal/adapters/cvedb"
)

func main() {
	seedFile := flag.String("seed-file", "./configs/cve_seed.json", "Path to CVE seed JSON file")
	dbPath := flag.String("db-path", "./data/cve.db", "Path to CVE database")
	rescore := flag.Bool("rescore", true, "Recompute scores from vectors after loading")
	flag.Parse()

	log.Println("=== CVE Seed Loader ===")
	log.Printf("Seed file: %s", *seedFile)
	log.Printf("Database: %s", *dbPath)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Create repository
	repo, err := cvedb.NewSQLiteRepository(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	// Load seed data
	loader := cvedb.NewSeedLoader(repo)
	ctx := context.Background()

	if err := loader.LoadFromFile(ctx, *seedFile); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	if *rescore {
		scored, skipped, err := loader.RescoreAll(ctx)
		if err != nil {
			log.Printf("Warning: rescore incomplete: %v", err)
		}
		log.Printf("Rescored %d CVEs (%d skipped)", scored, skipped)
	}

	// Show stats
	count, _ := repo.GetTotalCount(ctx)
	log.Printf("Database now contains %d CVEs", count)
}
