package cvss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseVectorCanonicalOrder(t *testing.T) {
	base := NewBase(AccessVectorAdjacent, AccessComplexityHigh, AuthenticationMultiple,
		ConfidentialityImpactComplete, IntegrityImpactNone, AvailabilityImpactNone)

	vector, err := base.Vector()
	require.NoError(t, err)
	assert.Equal(t, "AV:A/AC:H/Au:M/C:C/I:N/A:N", vector)

	full, err := base.FullVector()
	require.NoError(t, err)
	assert.Equal(t, vector, full)
}

func TestTemporalVectors(t *testing.T) {
	temporal := NewTemporal(
		NewBase(AccessVectorNetwork, AccessComplexityLow, AuthenticationNone,
			ConfidentialityImpactNone, IntegrityImpactNone, AvailabilityImpactComplete),
		ExploitabilityUnproven, RemediationLevelOfficialFix, ReportConfidenceUnconfirmed)

	local, err := temporal.Vector()
	require.NoError(t, err)
	assert.Equal(t, "E:U/RL:OF/RC:UC", local)

	full, err := temporal.FullVector()
	require.NoError(t, err)
	assert.Equal(t, "AV:N/AC:L/Au:N/C:N/I:N/A:C/E:U/RL:OF/RC:UC", full)
}

func TestEnvironmentalVectors(t *testing.T) {
	env := NewEnvironmental(
		NewTemporal(
			NewBase(AccessVectorNetwork, AccessComplexityLow, AuthenticationNone,
				ConfidentialityImpactNone, IntegrityImpactNone, AvailabilityImpactComplete),
			ExploitabilityUnproven, RemediationLevelOfficialFix, ReportConfidenceUnconfirmed),
		CollateralDamagePotentialNotDefined, TargetDistributionNotDefined,
		ConfidentialityRequirementLow, IntegrityRequirementLow, AvailabilityRequirementLow)

	local, err := env.Vector()
	require.NoError(t, err)
	assert.Equal(t, "CDP:ND/TD:ND/CR:L/IR:L/AR:L", local)

	full, err := env.FullVector()
	require.NoError(t, err)
	assert.Equal(t, "AV:N/AC:L/Au:N/C:N/I:N/A:C/E:U/RL:OF/RC:UC/CDP:ND/TD:ND/CR:L/IR:L/AR:L", full)
}

func TestParseRoundTrips(t *testing.T) {
	base := NewBase(AccessVectorAdjacent, AccessComplexityMedium, AuthenticationSingle,
		ConfidentialityImpactPartial, IntegrityImpactComplete, AvailabilityImpactNone)
	temporal := NewTemporal(base,
		ExploitabilityProofOfConcept, RemediationLevelWorkaround, ReportConfidenceUncorroborated)
	env := NewEnvironmental(temporal,
		CollateralDamagePotentialMediumHigh, TargetDistributionMedium,
		ConfidentialityRequirementHigh, IntegrityRequirementMedium, AvailabilityRequirementLow)

	baseVector, err := base.FullVector()
	require.NoError(t, err)
	parsedBase, err := ParseBase(baseVector)
	require.NoError(t, err)
	assert.Equal(t, base, parsedBase)

	temporalVector, err := temporal.FullVector()
	require.NoError(t, err)
	parsedTemporal, err := ParseTemporal(temporalVector)
	require.NoError(t, err)
	assert.Equal(t, temporal, parsedTemporal)

	envVector, err := env.FullVector()
	require.NoError(t, err)
	parsedEnv, err := ParseEnvironmental(envVector)
	require.NoError(t, err)
	assert.Equal(t, env, parsedEnv)

	// A parsed model and a constructed model are the same value, so
	// scores agree too.
	constructedScore, err := env.Score()
	require.NoError(t, err)
	parsedScore, err := parsedEnv.Score()
	require.NoError(t, err)
	assert.Equal(t, constructedScore, parsedScore)
}

func TestParseOrderIndependence(t *testing.T) {
	canonical, err := ParseBase("AV:N/AC:L/Au:N/C:N/I:N/A:C")
	require.NoError(t, err)

	shuffled, err := ParseBase("A:C/Au:N/I:N/AV:N/C:N/AC:L")
	require.NoError(t, err)
	assert.Equal(t, canonical, shuffled)

	// Temporal and base tokens may interleave arbitrarily.
	interleaved, err := ParseTemporal("E:F/AV:N/RL:OF/AC:L/RC:C/Au:N/C:N/I:N/A:C")
	require.NoError(t, err)
	want := NewTemporal(canonical,
		ExploitabilityFunctional, RemediationLevelOfficialFix, ReportConfidenceConfirmed)
	assert.Equal(t, want, interleaved)
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	parsed, err := ParseBase("AV:L/AC:L/Au:N/C:N/I:N/A:C/AV:N")
	require.NoError(t, err)
	assert.Equal(t, AccessVectorNetwork, parsed.AccessVector)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		parse  func(string) error
		target error
	}{
		{"empty input", "", func(s string) error { _, err := ParseBase(s); return err }, ErrMissingInput},
		{"no colon", "AV-A", func(s string) error { _, err := ParseBase(s); return err }, ErrMalformedSegment},
		{"missing value", "AV:", func(s string) error { _, err := ParseBase(s); return err }, ErrMalformedSegment},
		{"empty segment", "AV:N//AC:L", func(s string) error { _, err := ParseBase(s); return err }, ErrMalformedSegment},
		{"unknown key", "XX:H", func(s string) error { _, err := ParseBase(s); return err }, ErrUnrecognizedMetricKey},
		{"temporal key rejected by base parser", "AV:N/E:F", func(s string) error { _, err := ParseBase(s); return err }, ErrUnrecognizedMetricKey},
		{"environmental key rejected by temporal parser", "AV:N/CDP:H", func(s string) error { _, err := ParseTemporal(s); return err }, ErrUnrecognizedMetricKey},
		{"invalid value", "AV:Z/AC:H/Au:M/C:C/I:N/A:N", func(s string) error { _, err := ParseBase(s); return err }, ErrInvalidMetricValue},
		{"lowercase key", "av:N", func(s string) error { _, err := ParseBase(s); return err }, ErrUnrecognizedMetricKey},
		{"lowercase Au key", "AU:N", func(s string) error { _, err := ParseBase(s); return err }, ErrUnrecognizedMetricKey},
		{"empty environmental input", "", func(s string) error { _, err := ParseEnvironmental(s); return err }, ErrMissingInput},
		{"unknown key in environmental", "CDP:H/QQ:1", func(s string) error { _, err := ParseEnvironmental(s); return err }, ErrUnrecognizedMetricKey},
		{"invalid value in environmental", "TD:Z", func(s string) error { _, err := ParseEnvironmental(s); return err }, ErrInvalidMetricValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v, want %v", err, tt.target)
		})
	}
}

func TestParsePartialVectorScoresIncomplete(t *testing.T) {
	// Parsing a subset of keys succeeds; scoring the result reports the
	// missing metric.
	partial, err := ParseBase("AV:N/AC:L")
	require.NoError(t, err)
	_, err = partial.Score()
	assert.True(t, errors.Is(err, ErrIncompleteModel))
}

func TestDetectGroup(t *testing.T) {
	tests := []struct {
		input    string
		expected Group
	}{
		{"AV:N/AC:L/Au:N/C:N/I:N/A:C", GroupBase},
		{"AV:N/AC:L/Au:N/C:N/I:N/A:C/E:F/RL:OF/RC:C", GroupTemporal},
		{"E:F/RL:OF/RC:C", GroupTemporal},
		{"AV:N/AC:L/Au:N/C:N/I:N/A:C/E:F/RL:OF/RC:C/CDP:N/TD:H/CR:M/IR:M/AR:M", GroupEnvironmental},
		{"CDP:H", GroupEnvironmental},
	}
	for _, tt := range tests {
		group, err := DetectGroup(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, group, "input %q", tt.input)
	}

	_, err := DetectGroup("ZZ:1")
	assert.True(t, errors.Is(err, ErrUnrecognizedMetricKey))
	_, err = DetectGroup("")
	assert.True(t, errors.Is(err, ErrMissingInput))
}
