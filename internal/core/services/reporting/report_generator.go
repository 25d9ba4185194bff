// Package reporting aggregates stored assessments into summary reports.
package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
	"github.com/vulnscale/vulnscale/internal/core/ports"
)

const worstAssessmentCount = 5

// Generator builds severity reports from the assessment store.
type Generator struct {
	repo  ports.AssessmentRepository
	limit int // assessments considered per report
}

// NewGenerator creates a report generator. limit caps how many stored
// assessments a single report considers; <= 0 means 500.
func NewGenerator(repo ports.AssessmentRepository, limit int) *Generator {
	if limit <= 0 {
		limit = 500
	}
	return &Generator{
		repo:  repo,
		limit: limit,
	}
}

// Generate builds a severity report over the stored assessments.
func (g *Generator) Generate(ctx context.Context, title string) (*domain.SeverityReport, error) {
	assessments, err := g.repo.ListAssessments(ctx, g.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessments: %w", err)
	}

	report := &domain.SeverityReport{
		Metadata: domain.ReportMetadata{
			ID:          uuid.New().String(),
			Title:       title,
			GeneratedAt: time.Now(),
			GeneratedBy: "VulnScale Scoring Engine",
		},
		TotalAssessments:  len(assessments),
		SeverityBreakdown: make(map[domain.SeverityLevel]int),
		GroupBreakdown:    make(map[cvss.Group]int),
	}

	var sum float64
	for _, a := range assessments {
		report.SeverityBreakdown[a.Severity]++
		report.GroupBreakdown[a.Group]++

		score := a.EffectiveScore()
		sum += score
		if score > report.MaxScore {
			report.MaxScore = score
		}
	}
	if len(assessments) > 0 {
		report.AverageScore = sum / float64(len(assessments))
	}

	report.WorstAssessments = worstOf(assessments, worstAssessmentCount)

	return report, nil
}

// worstOf returns the n highest-scoring assessments, most severe first.
func worstOf(assessments []domain.Assessment, n int) []domain.Assessment {
	sorted := make([]domain.Assessment, len(assessments))
	copy(sorted, assessments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveScore() > sorted[j].EffectiveScore()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
