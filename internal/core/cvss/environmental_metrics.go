package cvss

import "fmt"

// CollateralDamagePotential (CDP) measures the potential for loss of
// life or physical assets. It enters the environmental equation
// additively, so its "ND" value weighs 0.0.
type CollateralDamagePotential string

const (
	CollateralDamagePotentialNone       CollateralDamagePotential = "N"
	CollateralDamagePotentialLow        CollateralDamagePotential = "L"
	CollateralDamagePotentialLowMedium  CollateralDamagePotential = "LM"
	CollateralDamagePotentialMediumHigh CollateralDamagePotential = "MH"
	CollateralDamagePotentialHigh       CollateralDamagePotential = "H"
	CollateralDamagePotentialNotDefined CollateralDamagePotential = "ND"
)

var collateralDamagePotentialWeights = map[CollateralDamagePotential]float64{
	CollateralDamagePotentialNone:       0.0,
	CollateralDamagePotentialLow:        0.1,
	CollateralDamagePotentialLowMedium:  0.3,
	CollateralDamagePotentialMediumHigh: 0.4,
	CollateralDamagePotentialHigh:       0.5,
	CollateralDamagePotentialNotDefined: 0.0,
}

func (v CollateralDamagePotential) Weight() float64 {
	return collateralDamagePotentialWeights[v]
}

func (v CollateralDamagePotential) defined() bool {
	_, ok := collateralDamagePotentialWeights[v]
	return ok
}

// ParseCollateralDamagePotential maps a vector token to a CollateralDamagePotential value.
func ParseCollateralDamagePotential(token string) (CollateralDamagePotential, error) {
	v := CollateralDamagePotential(token)
	if !v.defined() {
		return "", fmt.Errorf("%w CDP: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// CollateralDamagePotentialValues returns every legal CollateralDamagePotential value.
func CollateralDamagePotentialValues() []CollateralDamagePotential {
	return []CollateralDamagePotential{
		CollateralDamagePotentialNone, CollateralDamagePotentialLow,
		CollateralDamagePotentialLowMedium, CollateralDamagePotentialMediumHigh,
		CollateralDamagePotentialHigh, CollateralDamagePotentialNotDefined,
	}
}

// TargetDistribution (TD) approximates the fraction of the environment
// that is vulnerable, scaling the environmental score multiplicatively.
type TargetDistribution string

const (
	TargetDistributionNone       TargetDistribution = "N"
	TargetDistributionLow        TargetDistribution = "L"
	TargetDistributionMedium     TargetDistribution = "M"
	TargetDistributionHigh       TargetDistribution = "H"
	TargetDistributionNotDefined TargetDistribution = "ND"
)

var targetDistributionWeights = map[TargetDistribution]float64{
	TargetDistributionNone:       0.0,
	TargetDistributionLow:        0.25,
	TargetDistributionMedium:     0.75,
	TargetDistributionHigh:       1.0,
	TargetDistributionNotDefined: 1.0,
}

func (v TargetDistribution) Weight() float64 { return targetDistributionWeights[v] }

func (v TargetDistribution) defined() bool { _, ok := targetDistributionWeights[v]; return ok }

// ParseTargetDistribution maps a vector token to a TargetDistribution value.
func ParseTargetDistribution(token string) (TargetDistribution, error) {
	v := TargetDistribution(token)
	if !v.defined() {
		return "", fmt.Errorf("%w TD: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// TargetDistributionValues returns every legal TargetDistribution value.
func TargetDistributionValues() []TargetDistribution {
	return []TargetDistribution{
		TargetDistributionNone, TargetDistributionLow, TargetDistributionMedium,
		TargetDistributionHigh, TargetDistributionNotDefined,
	}
}

// Security requirement metrics. Confidentiality, integrity and
// availability requirements share the same weight table but are
// independent metrics.
const (
	requirementLow        = 0.5
	requirementMedium     = 1.0
	requirementHigh       = 1.51
	requirementNotDefined = 1.0
)

// ConfidentialityRequirement (CR) weighs the importance of
// confidentiality to the scoring environment.
type ConfidentialityRequirement string

const (
	ConfidentialityRequirementLow        ConfidentialityRequirement = "L"
	ConfidentialityRequirementMedium     ConfidentialityRequirement = "M"
	ConfidentialityRequirementHigh       ConfidentialityRequirement = "H"
	ConfidentialityRequirementNotDefined ConfidentialityRequirement = "ND"
)

var confidentialityRequirementWeights = map[ConfidentialityRequirement]float64{
	ConfidentialityRequirementLow:        requirementLow,
	ConfidentialityRequirementMedium:     requirementMedium,
	ConfidentialityRequirementHigh:       requirementHigh,
	ConfidentialityRequirementNotDefined: requirementNotDefined,
}

func (v ConfidentialityRequirement) Weight() float64 {
	return confidentialityRequirementWeights[v]
}

func (v ConfidentialityRequirement) defined() bool {
	_, ok := confidentialityRequirementWeights[v]
	return ok
}

// ParseConfidentialityRequirement maps a vector token to a ConfidentialityRequirement value.
func ParseConfidentialityRequirement(token string) (ConfidentialityRequirement, error) {
	v := ConfidentialityRequirement(token)
	if !v.defined() {
		return "", fmt.Errorf("%w CR: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// ConfidentialityRequirementValues returns every legal ConfidentialityRequirement value.
func ConfidentialityRequirementValues() []ConfidentialityRequirement {
	return []ConfidentialityRequirement{
		ConfidentialityRequirementLow, ConfidentialityRequirementMedium,
		ConfidentialityRequirementHigh, ConfidentialityRequirementNotDefined,
	}
}

// IntegrityRequirement (IR) weighs the importance of integrity to the
// scoring environment.
type IntegrityRequirement string

const (
	IntegrityRequirementLow        IntegrityRequirement = "L"
	IntegrityRequirementMedium     IntegrityRequirement = "M"
	IntegrityRequirementHigh       IntegrityRequirement = "H"
	IntegrityRequirementNotDefined IntegrityRequirement = "ND"
)

var integrityRequirementWeights = map[IntegrityRequirement]float64{
	IntegrityRequirementLow:        requirementLow,
	IntegrityRequirementMedium:     requirementMedium,
	IntegrityRequirementHigh:       requirementHigh,
	IntegrityRequirementNotDefined: requirementNotDefined,
}

func (v IntegrityRequirement) Weight() float64 { return integrityRequirementWeights[v] }

func (v IntegrityRequirement) defined() bool {
	_, ok := integrityRequirementWeights[v]
	return ok
}

// ParseIntegrityRequirement maps a vector token to an IntegrityRequirement value.
func ParseIntegrityRequirement(token string) (IntegrityRequirement, error) {
	v := IntegrityRequirement(token)
	if !v.defined() {
		return "", fmt.Errorf("%w IR: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// IntegrityRequirementValues returns every legal IntegrityRequirement value.
func IntegrityRequirementValues() []IntegrityRequirement {
	return []IntegrityRequirement{
		IntegrityRequirementLow, IntegrityRequirementMedium,
		IntegrityRequirementHigh, IntegrityRequirementNotDefined,
	}
}

// AvailabilityRequirement (AR) weighs the importance of availability to
// the scoring environment.
type AvailabilityRequirement string

const (
	AvailabilityRequirementLow        AvailabilityRequirement = "L"
	AvailabilityRequirementMedium     AvailabilityRequirement = "M"
	AvailabilityRequirementHigh       AvailabilityRequirement = "H"
	AvailabilityRequirementNotDefined AvailabilityRequirement = "ND"
)

var availabilityRequirementWeights = map[AvailabilityRequirement]float64{
	AvailabilityRequirementLow:        requirementLow,
	AvailabilityRequirementMedium:     requirementMedium,
	AvailabilityRequirementHigh:       requirementHigh,
	AvailabilityRequirementNotDefined: requirementNotDefined,
}

func (v AvailabilityRequirement) Weight() float64 {
	return availabilityRequirementWeights[v]
}

func (v AvailabilityRequirement) defined() bool {
	_, ok := availabilityRequirementWeights[v]
	return ok
}

// ParseAvailabilityRequirement maps a vector token to an AvailabilityRequirement value.
func ParseAvailabilityRequirement(token string) (AvailabilityRequirement, error) {
	v := AvailabilityRequirement(token)
	if !v.defined() {
		return "", fmt.Errorf("%w AR: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// AvailabilityRequirementValues returns every legal AvailabilityRequirement value.
func AvailabilityRequirementValues() []AvailabilityRequirement {
	return []AvailabilityRequirement{
		AvailabilityRequirementLow, AvailabilityRequirementMedium,
		AvailabilityRequirementHigh, AvailabilityRequirementNotDefined,
	}
}
