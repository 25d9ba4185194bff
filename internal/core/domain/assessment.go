package domain

import (
	"time"

	"github.com/vulnscale/vulnscale/internal/core/cvss"
)

// Assessment is a persisted scoring result: the vector a caller
// submitted, the canonical form the engine produced, and the scores of
// every group the vector covered.
type Assessment struct {
	ID        string     `json:"id"`
	Vector    string     `json:"vector"`           // as submitted
	Canonical string     `json:"canonical_vector"` // engine-serialized full vector
	Group     cvss.Group `json:"group"`

	BaseScore          float64  `json:"base_score"`
	TemporalScore      *float64 `json:"temporal_score,omitempty"`
	EnvironmentalScore *float64 `json:"environmental_score,omitempty"`

	Severity  SeverityLevel `json:"severity"`
	CreatedAt time.Time     `json:"created_at"`
}

// EffectiveScore returns the score of the deepest group present:
// environmental over temporal over base.
func (a Assessment) EffectiveScore() float64 {
	if a.EnvironmentalScore != nil {
		return *a.EnvironmentalScore
	}
	if a.TemporalScore != nil {
		return *a.TemporalScore
	}
	return a.BaseScore
}

// AssessmentStats summarizes the stored assessments.
type AssessmentStats struct {
	Total             int                   `json:"total"`
	SeverityBreakdown map[SeverityLevel]int `json:"severity_breakdown"`
	GroupBreakdown    map[cvss.Group]int    `json:"group_breakdown"`
}
