package cvss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricWeights(t *testing.T) {
	// Weight tables must match the published standard bit-for-bit.
	assert.Equal(t, 0.395, AccessVectorLocal.Weight())
	assert.Equal(t, 0.646, AccessVectorAdjacent.Weight())
	assert.Equal(t, 1.0, AccessVectorNetwork.Weight())

	assert.Equal(t, 0.35, AccessComplexityHigh.Weight())
	assert.Equal(t, 0.61, AccessComplexityMedium.Weight())
	assert.Equal(t, 0.71, AccessComplexityLow.Weight())

	assert.Equal(t, 0.45, AuthenticationMultiple.Weight())
	assert.Equal(t, 0.56, AuthenticationSingle.Weight())
	assert.Equal(t, 0.704, AuthenticationNone.Weight())

	assert.Equal(t, 0.0, ConfidentialityImpactNone.Weight())
	assert.Equal(t, 0.275, IntegrityImpactPartial.Weight())
	assert.Equal(t, 0.660, AvailabilityImpactComplete.Weight())

	assert.Equal(t, 0.85, ExploitabilityUnproven.Weight())
	assert.Equal(t, 0.9, ExploitabilityProofOfConcept.Weight())
	assert.Equal(t, 0.95, ExploitabilityFunctional.Weight())
	assert.Equal(t, 1.0, ExploitabilityHigh.Weight())
	assert.Equal(t, 1.0, ExploitabilityNotDefined.Weight())

	assert.Equal(t, 0.87, RemediationLevelOfficialFix.Weight())
	assert.Equal(t, 0.90, RemediationLevelTemporaryFix.Weight())
	assert.Equal(t, 0.95, RemediationLevelWorkaround.Weight())
	assert.Equal(t, 1.0, RemediationLevelUnavailable.Weight())

	assert.Equal(t, 0.90, ReportConfidenceUnconfirmed.Weight())
	assert.Equal(t, 0.95, ReportConfidenceUncorroborated.Weight())
	assert.Equal(t, 1.0, ReportConfidenceConfirmed.Weight())

	assert.Equal(t, 0.0, CollateralDamagePotentialNone.Weight())
	assert.Equal(t, 0.1, CollateralDamagePotentialLow.Weight())
	assert.Equal(t, 0.3, CollateralDamagePotentialLowMedium.Weight())
	assert.Equal(t, 0.4, CollateralDamagePotentialMediumHigh.Weight())
	assert.Equal(t, 0.5, CollateralDamagePotentialHigh.Weight())
	assert.Equal(t, 0.0, CollateralDamagePotentialNotDefined.Weight())

	assert.Equal(t, 0.0, TargetDistributionNone.Weight())
	assert.Equal(t, 0.25, TargetDistributionLow.Weight())
	assert.Equal(t, 0.75, TargetDistributionMedium.Weight())
	assert.Equal(t, 1.0, TargetDistributionHigh.Weight())
	assert.Equal(t, 1.0, TargetDistributionNotDefined.Weight())

	assert.Equal(t, 0.5, ConfidentialityRequirementLow.Weight())
	assert.Equal(t, 1.0, IntegrityRequirementMedium.Weight())
	assert.Equal(t, 1.51, AvailabilityRequirementHigh.Weight())
	assert.Equal(t, 1.0, AvailabilityRequirementNotDefined.Weight())
}

func TestParseMetricTokens(t *testing.T) {
	av, err := ParseAccessVector("N")
	assert.NoError(t, err)
	assert.Equal(t, AccessVectorNetwork, av)

	e, err := ParseExploitability("POC")
	assert.NoError(t, err)
	assert.Equal(t, ExploitabilityProofOfConcept, e)

	cdp, err := ParseCollateralDamagePotential("LM")
	assert.NoError(t, err)
	assert.Equal(t, CollateralDamagePotentialLowMedium, cdp)
}

func TestParseMetricTokensRejectInvalid(t *testing.T) {
	// Token sets are disjoint per metric kind even when letters collide
	// across groups: "A" is a valid AV value but not a valid AC value.
	cases := []struct {
		name  string
		parse func() error
	}{
		{"AV rejects Z", func() error { _, err := ParseAccessVector("Z"); return err }},
		{"AV is case-sensitive", func() error { _, err := ParseAccessVector("n"); return err }},
		{"AC rejects A", func() error { _, err := ParseAccessComplexity("A"); return err }},
		{"Au rejects ND", func() error { _, err := ParseAuthentication("ND"); return err }},
		{"C rejects H", func() error { _, err := ParseConfidentialityImpact("H"); return err }},
		{"I rejects empty", func() error { _, err := ParseIntegrityImpact(""); return err }},
		{"E rejects OF", func() error { _, err := ParseExploitability("OF"); return err }},
		{"RL rejects POC", func() error { _, err := ParseRemediationLevel("POC"); return err }},
		{"RC rejects N", func() error { _, err := ParseReportConfidence("N"); return err }},
		{"CDP rejects M", func() error { _, err := ParseCollateralDamagePotential("M"); return err }},
		{"TD rejects LM", func() error { _, err := ParseTargetDistribution("LM"); return err }},
		{"CR rejects N", func() error { _, err := ParseConfidentialityRequirement("N"); return err }},
		{"IR rejects C", func() error { _, err := ParseIntegrityRequirement("C"); return err }},
		{"AR rejects P", func() error { _, err := ParseAvailabilityRequirement("P"); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.parse()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMetricValue))
		})
	}
}

func TestValueLists(t *testing.T) {
	assert.Len(t, AccessVectorValues(), 3)
	assert.Len(t, AccessComplexityValues(), 3)
	assert.Len(t, AuthenticationValues(), 3)
	assert.Len(t, ConfidentialityImpactValues(), 3)
	assert.Len(t, IntegrityImpactValues(), 3)
	assert.Len(t, AvailabilityImpactValues(), 3)
	assert.Len(t, ExploitabilityValues(), 5)
	assert.Len(t, RemediationLevelValues(), 5)
	assert.Len(t, ReportConfidenceValues(), 4)
	assert.Len(t, CollateralDamagePotentialValues(), 6)
	assert.Len(t, TargetDistributionValues(), 5)
	assert.Len(t, ConfidentialityRequirementValues(), 4)
	assert.Len(t, IntegrityRequirementValues(), 4)
	assert.Len(t, AvailabilityRequirementValues(), 4)

	// Every listed value must round-trip through its parser.
	for _, v := range ExploitabilityValues() {
		parsed, err := ParseExploitability(string(v))
		assert.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, v := range CollateralDamagePotentialValues() {
		parsed, err := ParseCollateralDamagePotential(string(v))
		assert.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}
