package cvedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
	"github.com/vulnscale/vulnscale/internal/core/ports"
)

// SeedLoader loads CVE records from JSON files into the database and
// recomputes their scores with the engine.
type SeedLoader struct {
	repo ports.CVERepository
}

// NewSeedLoader creates a new seed loader.
func NewSeedLoader(repo ports.CVERepository) *SeedLoader {
	return &SeedLoader{repo: repo}
}

// LoadFromFile loads CVE records from a JSON file. Records with an
// invalid ID or an implausible vector are skipped, not fatal.
func (s *SeedLoader) LoadFromFile(ctx context.Context, filepath string) error {
	log.Printf("[CVE-SEED] Loading CVEs from %s", filepath)

	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var cves []domain.CVERecord
	if err := json.Unmarshal(data, &cves); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	loaded := 0
	failed := 0

	for _, cve := range cves {
		if !domain.IsValidCVEID(cve.ID) || !domain.IsPlausibleVector(cve.Vector) {
			log.Printf("[CVE-SEED] Skipping malformed record %q", cve.ID)
			failed++
			continue
		}
		if err := s.repo.UpsertCVE(ctx, cve); err != nil {
			log.Printf("[CVE-SEED] Failed to load %s: %v", cve.ID, err)
			failed++
		} else {
			loaded++
		}
	}

	log.Printf("[CVE-SEED] Loaded %d CVEs (%d failed)", loaded, failed)

	total, err := s.repo.GetTotalCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	status := domain.DatasetStatus{
		LastLoadTime: time.Now(),
		RecordCount:  total,
	}
	if failed > 0 {
		status.ErrorMessage = fmt.Sprintf("%d records skipped", failed)
	}
	return s.repo.UpdateDatasetStatus(ctx, status)
}

// RescoreAll recomputes the base score of every stored CVE from its
// vector and persists the result. Records whose vector does not parse
// are left untouched and counted.
func (s *SeedLoader) RescoreAll(ctx context.Context) (scored, skipped int, err error) {
	cves, err := s.repo.List(ctx, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list records: %w", err)
	}

	for _, cve := range cves {
		base, parseErr := cvss.ParseBase(cve.Vector)
		if parseErr != nil {
			log.Printf("[CVE-RESCORE] %s: %v", cve.ID, parseErr)
			skipped++
			continue
		}
		score, scoreErr := base.Score()
		if scoreErr != nil {
			log.Printf("[CVE-RESCORE] %s: %v", cve.ID, scoreErr)
			skipped++
			continue
		}

		severity := domain.SeverityForScore(score)
		if updateErr := s.repo.UpdateComputedScore(ctx, cve.ID, score, severity); updateErr != nil {
			err = errors.Join(err, fmt.Errorf("%s: %w", cve.ID, updateErr))
			continue
		}
		scored++
	}

	return scored, skipped, err
}
