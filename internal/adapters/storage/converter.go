package storage

import (
	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
)

// toModel converts a domain entity to its database model.
func toModel(a domain.Assessment) AssessmentModel {
	return AssessmentModel{
		ID:                 a.ID,
		Vector:             a.Vector,
		Canonical:          a.Canonical,
		Group:              string(a.Group),
		BaseScore:          a.BaseScore,
		TemporalScore:      a.TemporalScore,
		EnvironmentalScore: a.EnvironmentalScore,
		Severity:           string(a.Severity),
		CreatedAt:          a.CreatedAt,
	}
}

// toDomain converts a database model back to a domain entity.
func toDomain(m AssessmentModel) *domain.Assessment {
	return &domain.Assessment{
		ID:                 m.ID,
		Vector:             m.Vector,
		Canonical:          m.Canonical,
		Group:              cvss.Group(m.Group),
		BaseScore:          m.BaseScore,
		TemporalScore:      m.TemporalScore,
		EnvironmentalScore: m.EnvironmentalScore,
		Severity:           domain.SeverityLevel(m.Severity),
		CreatedAt:          m.CreatedAt,
	}
}
