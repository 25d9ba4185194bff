package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
	"github.com/vulnscale/vulnscale/internal/core/ports"
	"github.com/vulnscale/vulnscale/internal/telemetry"
)

// GroupAuto asks the service to detect the metric group from the keys
// present in the vector instead of requiring the caller to name it.
const GroupAuto cvss.Group = "auto"

// Service parses vectors, computes scores and persists the results.
type Service struct {
	repo        ports.AssessmentRepository
	broadcaster ports.Broadcaster
}

// NewService creates a scoring service. The broadcaster may be nil when
// no live clients need to be notified (CLI usage).
func NewService(repo ports.AssessmentRepository, broadcaster ports.Broadcaster) *Service {
	return &Service{
		repo:        repo,
		broadcaster: broadcaster,
	}
}

// Score parses the vector as the requested group, computes every score
// the group covers and persists the assessment. With GroupAuto the
// group is detected from the keys present in the vector.
func (s *Service) Score(ctx context.Context, vector string, group cvss.Group) (*domain.Assessment, error) {
	if group == GroupAuto || group == "" {
		detected, err := cvss.DetectGroup(vector)
		if err != nil {
			telemetry.ParseErrors.WithLabelValues(errorReason(err)).Inc()
			return nil, err
		}
		group = detected
	}

	assessment, err := s.evaluate(vector, group)
	if err != nil {
		telemetry.ParseErrors.WithLabelValues(errorReason(err)).Inc()
		return nil, err
	}

	telemetry.VectorsParsed.WithLabelValues(string(group)).Inc()
	telemetry.ScoresComputed.WithLabelValues(string(group)).Inc()

	assessment.ID = uuid.New().String()
	assessment.CreatedAt = time.Now()

	if err := s.repo.SaveAssessment(ctx, *assessment); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}
	telemetry.AssessmentsPersisted.Inc()

	if s.broadcaster != nil {
		s.broadcaster.BroadcastAssessment(*assessment)
	}

	return assessment, nil
}

// Evaluate computes the scores for a vector without persisting anything.
func (s *Service) Evaluate(vector string, group cvss.Group) (*domain.Assessment, error) {
	if group == GroupAuto || group == "" {
		detected, err := cvss.DetectGroup(vector)
		if err != nil {
			return nil, err
		}
		group = detected
	}
	return s.evaluate(vector, group)
}

func (s *Service) evaluate(vector string, group cvss.Group) (*domain.Assessment, error) {
	switch group {
	case cvss.GroupBase:
		model, err := cvss.ParseBase(vector)
		if err != nil {
			return nil, err
		}
		score, err := model.Score()
		if err != nil {
			return nil, err
		}
		canonical, err := model.FullVector()
		if err != nil {
			return nil, err
		}
		return &domain.Assessment{
			Vector:    vector,
			Canonical: canonical,
			Group:     group,
			BaseScore: score,
			Severity:  domain.SeverityForScore(score),
		}, nil

	case cvss.GroupTemporal:
		model, err := cvss.ParseTemporal(vector)
		if err != nil {
			return nil, err
		}
		baseScore, err := model.Base.Score()
		if err != nil {
			return nil, err
		}
		score, err := model.Score()
		if err != nil {
			return nil, err
		}
		canonical, err := model.FullVector()
		if err != nil {
			return nil, err
		}
		return &domain.Assessment{
			Vector:        vector,
			Canonical:     canonical,
			Group:         group,
			BaseScore:     baseScore,
			TemporalScore: &score,
			Severity:      domain.SeverityForScore(score),
		}, nil

	case cvss.GroupEnvironmental:
		model, err := cvss.ParseEnvironmental(vector)
		if err != nil {
			return nil, err
		}
		baseScore, err := model.Temporal.Base.Score()
		if err != nil {
			return nil, err
		}
		temporalScore, err := model.Temporal.Score()
		if err != nil {
			return nil, err
		}
		score, err := model.Score()
		if err != nil {
			return nil, err
		}
		canonical, err := model.FullVector()
		if err != nil {
			return nil, err
		}
		return &domain.Assessment{
			Vector:             vector,
			Canonical:          canonical,
			Group:              group,
			BaseScore:          baseScore,
			TemporalScore:      &temporalScore,
			EnvironmentalScore: &score,
			Severity:           domain.SeverityForScore(score),
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown metric group %q", cvss.ErrMissingInput, group)
}

// GetAssessment returns a previously stored assessment.
func (s *Service) GetAssessment(ctx context.Context, id string) (*domain.Assessment, error) {
	return s.repo.GetAssessment(ctx, id)
}

// ListAssessments returns stored assessments, newest first.
func (s *Service) ListAssessments(ctx context.Context, limit int) ([]domain.Assessment, error) {
	return s.repo.ListAssessments(ctx, limit)
}

// Stats summarizes the stored assessments.
func (s *Service) Stats(ctx context.Context) (domain.AssessmentStats, error) {
	return s.repo.GetAssessmentStats(ctx)
}

// errorReason maps a parse or validation error to a stable label for
// the parse error counter.
func errorReason(err error) string {
	switch {
	case errors.Is(err, cvss.ErrIncompleteModel):
		return "incomplete_model"
	case errors.Is(err, cvss.ErrMissingInput):
		return "missing_input"
	case errors.Is(err, cvss.ErrMalformedSegment):
		return "malformed_segment"
	case errors.Is(err, cvss.ErrUnrecognizedMetricKey):
		return "unrecognized_key"
	case errors.Is(err, cvss.ErrInvalidMetricValue):
		return "invalid_value"
	}
	return "other"
}
