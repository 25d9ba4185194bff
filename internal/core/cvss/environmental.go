package cvss

import (
	"fmt"
	"math"
)

// Environmental wraps a Temporal model (which in turn wraps a Base
// model) with the five Environmental-group metrics describing the
// scoring environment.
type Environmental struct {
	Temporal                  Temporal
	CollateralDamagePotential CollateralDamagePotential
	TargetDistribution        TargetDistribution
	ConfReq                   ConfidentialityRequirement
	IntegReq                  IntegrityRequirement
	AvailReq                  AvailabilityRequirement
}

// NewEnvironmental builds a fully populated Environmental model around temporal.
func NewEnvironmental(temporal Temporal, cdp CollateralDamagePotential, td TargetDistribution,
	cr ConfidentialityRequirement, ir IntegrityRequirement, ar AvailabilityRequirement) Environmental {
	return Environmental{
		Temporal:                  temporal,
		CollateralDamagePotential: cdp,
		TargetDistribution:        td,
		ConfReq:                   cr,
		IntegReq:                  ir,
		AvailReq:                  ar,
	}
}

// Validate reports whether the wrapped Temporal chain and all five
// Environmental metrics are set to legal values.
func (e Environmental) Validate() error {
	if err := e.Temporal.Validate(); err != nil {
		return err
	}
	checks := []struct {
		key   string
		set   bool
		legal bool
	}{
		{keyCollateralDamagePotential, e.CollateralDamagePotential != "", e.CollateralDamagePotential.defined()},
		{keyTargetDistribution, e.TargetDistribution != "", e.TargetDistribution.defined()},
		{keyConfReq, e.ConfReq != "", e.ConfReq.defined()},
		{keyIntegReq, e.IntegReq != "", e.IntegReq.defined()},
		{keyAvailReq, e.AvailReq != "", e.AvailReq.defined()},
	}
	for _, c := range checks {
		if !c.set {
			return fmt.Errorf("%w: metric %s is not set", ErrIncompleteModel, c.key)
		}
		if !c.legal {
			return fmt.Errorf("%w %s", ErrInvalidMetricValue, c.key)
		}
	}
	return nil
}

// AdjustedImpact computes min(10, 10.41 * (1 - (1-CR)*(1-IR)*(1-AR)))
// from the security-requirement weights.
func (e Environmental) AdjustedImpact() (float64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	return e.adjustedImpact(), nil
}

func (e Environmental) adjustedImpact() float64 {
	return math.Min(10, 10.41*(1-
		(1-e.ConfReq.Weight())*
			(1-e.IntegReq.Weight())*
			(1-e.AvailReq.Weight())))
}

// AdjustedTemporal recomputes the temporal product with the adjusted
// impact substituted for the Base score, rounded to one decimal digit.
func (e Environmental) AdjustedTemporal() (float64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	return e.adjustedTemporal(), nil
}

func (e Environmental) adjustedTemporal() float64 {
	return roundScore(e.adjustedImpact() *
		e.Temporal.Exploitability.Weight() *
		e.Temporal.RemediationLevel.Weight() *
		e.Temporal.ReportConfidence.Weight())
}

// Score computes the Environmental score
// round((AdjustedTemporal + (10 - AdjustedTemporal) * CDP) * TD).
func (e Environmental) Score() (float64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	adjTemporal := e.adjustedTemporal()
	return roundScore((adjTemporal + (10-adjTemporal)*e.CollateralDamagePotential.Weight()) *
		e.TargetDistribution.Weight()), nil
}
