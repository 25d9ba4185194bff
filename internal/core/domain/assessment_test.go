package domain

import (
	"testing"

	"github.com/vulnscale/vulnscale/internal/core/cvss"
)

func TestAssessmentEffectiveScore(t *testing.T) {
	temporal := 6.4
	environmental := 9.2

	base := Assessment{Group: cvss.GroupBase, BaseScore: 7.8}
	if got := base.EffectiveScore(); got != 7.8 {
		t.Errorf("EffectiveScore() = %v, want 7.8", got)
	}

	withTemporal := Assessment{Group: cvss.GroupTemporal, BaseScore: 7.8, TemporalScore: &temporal}
	if got := withTemporal.EffectiveScore(); got != 6.4 {
		t.Errorf("EffectiveScore() = %v, want 6.4", got)
	}

	withEnv := Assessment{
		Group:              cvss.GroupEnvironmental,
		BaseScore:          7.8,
		TemporalScore:      &temporal,
		EnvironmentalScore: &environmental,
	}
	if got := withEnv.EffectiveScore(); got != 9.2 {
		t.Errorf("EffectiveScore() = %v, want 9.2", got)
	}
}
