// Package ports defines the interfaces between the core services and
// the adapters that back them.
package ports

import (
	"context"

	"github.com/vulnscale/vulnscale/internal/core/domain"
)

// AssessmentRepository persists scoring results.
type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, a domain.Assessment) error
	GetAssessment(ctx context.Context, id string) (*domain.Assessment, error)
	ListAssessments(ctx context.Context, limit int) ([]domain.Assessment, error)
	GetAssessmentStats(ctx context.Context) (domain.AssessmentStats, error)
}

// CVERepository stores the CVE seed dataset and its recomputed scores.
type CVERepository interface {
	UpsertCVE(ctx context.Context, cve domain.CVERecord) error
	GetByID(ctx context.Context, cveID string) (*domain.CVERecord, error)
	List(ctx context.Context, limit int) ([]domain.CVERecord, error)
	UpdateComputedScore(ctx context.Context, cveID string, score float64, severity domain.SeverityLevel) error
	GetTotalCount(ctx context.Context) (int, error)
	GetDatasetStatus(ctx context.Context) (domain.DatasetStatus, error)
	UpdateDatasetStatus(ctx context.Context, status domain.DatasetStatus) error
	Close() error
}

// Broadcaster pushes assessment events to connected clients.
type Broadcaster interface {
	BroadcastAssessment(a domain.Assessment)
}
