package domain

import (
	"time"

	"github.com/vulnscale/vulnscale/internal/core/cvss"
)

// SeverityReport aggregates stored assessments for reporting.
type SeverityReport struct {
	Metadata ReportMetadata `json:"metadata"`

	TotalAssessments  int                   `json:"total_assessments"`
	SeverityBreakdown map[SeverityLevel]int `json:"severity_breakdown"`
	GroupBreakdown    map[cvss.Group]int    `json:"group_breakdown"`

	AverageScore float64 `json:"average_score"`
	MaxScore     float64 `json:"max_score"`

	// WorstAssessments lists the highest-scoring assessments, most
	// severe first.
	WorstAssessments []Assessment `json:"worst_assessments"`
}

// ReportMetadata identifies a generated report.
type ReportMetadata struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	GeneratedBy string    `json:"generated_by"`
}
