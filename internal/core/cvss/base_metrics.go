package cvss

import "fmt"

// AccessVector (AV) reflects how the vulnerability is exploited: locally,
// from an adjacent network, or remotely.
type AccessVector string

const (
	AccessVectorLocal    AccessVector = "L"
	AccessVectorAdjacent AccessVector = "A"
	AccessVectorNetwork  AccessVector = "N"
)

var accessVectorWeights = map[AccessVector]float64{
	AccessVectorLocal:    0.395,
	AccessVectorAdjacent: 0.646,
	AccessVectorNetwork:  1.0,
}

// Weight returns the scoring coefficient for the value, or 0 for an
// unknown value.
func (v AccessVector) Weight() float64 { return accessVectorWeights[v] }

func (v AccessVector) defined() bool { _, ok := accessVectorWeights[v]; return ok }

// ParseAccessVector maps a vector token to an AccessVector value.
func ParseAccessVector(token string) (AccessVector, error) {
	v := AccessVector(token)
	if !v.defined() {
		return "", fmt.Errorf("%w AV: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// AccessVectorValues returns every legal AccessVector value.
func AccessVectorValues() []AccessVector {
	return []AccessVector{AccessVectorLocal, AccessVectorAdjacent, AccessVectorNetwork}
}

// AccessComplexity (AC) measures how hard it is to exploit the
// vulnerability once the target is reachable.
type AccessComplexity string

const (
	AccessComplexityHigh   AccessComplexity = "H"
	AccessComplexityMedium AccessComplexity = "M"
	AccessComplexityLow    AccessComplexity = "L"
)

var accessComplexityWeights = map[AccessComplexity]float64{
	AccessComplexityHigh:   0.35,
	AccessComplexityMedium: 0.61,
	AccessComplexityLow:    0.71,
}

func (v AccessComplexity) Weight() float64 { return accessComplexityWeights[v] }

func (v AccessComplexity) defined() bool { _, ok := accessComplexityWeights[v]; return ok }

// ParseAccessComplexity maps a vector token to an AccessComplexity value.
func ParseAccessComplexity(token string) (AccessComplexity, error) {
	v := AccessComplexity(token)
	if !v.defined() {
		return "", fmt.Errorf("%w AC: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// AccessComplexityValues returns every legal AccessComplexity value.
func AccessComplexityValues() []AccessComplexity {
	return []AccessComplexity{AccessComplexityHigh, AccessComplexityMedium, AccessComplexityLow}
}

// Authentication (Au) counts how many times an attacker must
// authenticate to reach the vulnerable component.
type Authentication string

const (
	AuthenticationMultiple Authentication = "M"
	AuthenticationSingle   Authentication = "S"
	AuthenticationNone     Authentication = "N"
)

var authenticationWeights = map[Authentication]float64{
	AuthenticationMultiple: 0.45,
	AuthenticationSingle:   0.56,
	AuthenticationNone:     0.704,
}

func (v Authentication) Weight() float64 { return authenticationWeights[v] }

func (v Authentication) defined() bool { _, ok := authenticationWeights[v]; return ok }

// ParseAuthentication maps a vector token to an Authentication value.
func ParseAuthentication(token string) (Authentication, error) {
	v := Authentication(token)
	if !v.defined() {
		return "", fmt.Errorf("%w Au: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// AuthenticationValues returns every legal Authentication value.
func AuthenticationValues() []Authentication {
	return []Authentication{AuthenticationMultiple, AuthenticationSingle, AuthenticationNone}
}

// Impact metrics. Confidentiality, integrity and availability share the
// same weight table but are independent metrics.
const (
	impactNone     = 0.0
	impactPartial  = 0.275
	impactComplete = 0.660
)

// ConfidentialityImpact (C) measures the impact on confidentiality of a
// successfully exploited vulnerability.
type ConfidentialityImpact string

const (
	ConfidentialityImpactNone     ConfidentialityImpact = "N"
	ConfidentialityImpactPartial  ConfidentialityImpact = "P"
	ConfidentialityImpactComplete ConfidentialityImpact = "C"
)

var confidentialityImpactWeights = map[ConfidentialityImpact]float64{
	ConfidentialityImpactNone:     impactNone,
	ConfidentialityImpactPartial:  impactPartial,
	ConfidentialityImpactComplete: impactComplete,
}

func (v ConfidentialityImpact) Weight() float64 { return confidentialityImpactWeights[v] }

func (v ConfidentialityImpact) defined() bool {
	_, ok := confidentialityImpactWeights[v]
	return ok
}

// ParseConfidentialityImpact maps a vector token to a ConfidentialityImpact value.
func ParseConfidentialityImpact(token string) (ConfidentialityImpact, error) {
	v := ConfidentialityImpact(token)
	if !v.defined() {
		return "", fmt.Errorf("%w C: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// ConfidentialityImpactValues returns every legal ConfidentialityImpact value.
func ConfidentialityImpactValues() []ConfidentialityImpact {
	return []ConfidentialityImpact{
		ConfidentialityImpactNone, ConfidentialityImpactPartial, ConfidentialityImpactComplete,
	}
}

// IntegrityImpact (I) measures the impact on integrity of a successfully
// exploited vulnerability.
type IntegrityImpact string

const (
	IntegrityImpactNone     IntegrityImpact = "N"
	IntegrityImpactPartial  IntegrityImpact = "P"
	IntegrityImpactComplete IntegrityImpact = "C"
)

var integrityImpactWeights = map[IntegrityImpact]float64{
	IntegrityImpactNone:     impactNone,
	IntegrityImpactPartial:  impactPartial,
	IntegrityImpactComplete: impactComplete,
}

func (v IntegrityImpact) Weight() float64 { return integrityImpactWeights[v] }

func (v IntegrityImpact) defined() bool { _, ok := integrityImpactWeights[v]; return ok }

// ParseIntegrityImpact maps a vector token to an IntegrityImpact value.
func ParseIntegrityImpact(token string) (IntegrityImpact, error) {
	v := IntegrityImpact(token)
	if !v.defined() {
		return "", fmt.Errorf("%w I: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// IntegrityImpactValues returns every legal IntegrityImpact value.
func IntegrityImpactValues() []IntegrityImpact {
	return []IntegrityImpact{
		IntegrityImpactNone, IntegrityImpactPartial, IntegrityImpactComplete,
	}
}

// AvailabilityImpact (A) measures the impact on availability of a
// successfully exploited vulnerability.
type AvailabilityImpact string

const (
	AvailabilityImpactNone     AvailabilityImpact = "N"
	AvailabilityImpactPartial  AvailabilityImpact = "P"
	AvailabilityImpactComplete AvailabilityImpact = "C"
)

var availabilityImpactWeights = map[AvailabilityImpact]float64{
	AvailabilityImpactNone:     impactNone,
	AvailabilityImpactPartial:  impactPartial,
	AvailabilityImpactComplete: impactComplete,
}

func (v AvailabilityImpact) Weight() float64 { return availabilityImpactWeights[v] }

func (v AvailabilityImpact) defined() bool { _, ok := availabilityImpactWeights[v]; return ok }

// ParseAvailabilityImpact maps a vector token to an AvailabilityImpact value.
func ParseAvailabilityImpact(token string) (AvailabilityImpact, error) {
	v := AvailabilityImpact(token)
	if !v.defined() {
		return "", fmt.Errorf("%w A: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// AvailabilityImpactValues returns every legal AvailabilityImpact value.
func AvailabilityImpactValues() []AvailabilityImpact {
	return []AvailabilityImpact{
		AvailabilityImpactNone, AvailabilityImpactPartial, AvailabilityImpactComplete,
	}
}
