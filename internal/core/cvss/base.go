package cvss

import (
	"fmt"
	"math"
)

// roundScore rounds to one decimal digit, half away from zero, exactly
// as every equation in the standard requires.
func roundScore(x float64) float64 {
	return math.Round(x*10) / 10
}

// Base holds the six Base-group metrics describing the intrinsic
// qualities of a vulnerability. The zero value is an unset model; Score
// and Vector fail with ErrIncompleteModel until all six metrics are set.
type Base struct {
	AccessVector     AccessVector
	AccessComplexity AccessComplexity
	Authentication   Authentication
	ConfImpact       ConfidentialityImpact
	IntegImpact      IntegrityImpact
	AvailImpact      AvailabilityImpact
}

// NewBase builds a fully populated Base model.
func NewBase(av AccessVector, ac AccessComplexity, au Authentication,
	c ConfidentialityImpact, i IntegrityImpact, a AvailabilityImpact) Base {
	return Base{
		AccessVector:     av,
		AccessComplexity: ac,
		Authentication:   au,
		ConfImpact:       c,
		IntegImpact:      i,
		AvailImpact:      a,
	}
}

// Validate reports whether every Base metric is set to a legal value.
func (b Base) Validate() error {
	checks := []struct {
		key   string
		set   bool
		legal bool
	}{
		{keyAccessVector, b.AccessVector != "", b.AccessVector.defined()},
		{keyAccessComplexity, b.AccessComplexity != "", b.AccessComplexity.defined()},
		{keyAuthentication, b.Authentication != "", b.Authentication.defined()},
		{keyConfImpact, b.ConfImpact != "", b.ConfImpact.defined()},
		{keyIntegImpact, b.IntegImpact != "", b.IntegImpact.defined()},
		{keyAvailImpact, b.AvailImpact != "", b.AvailImpact.defined()},
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

// Impact computes the unrounded impact subscore
// 10.41 * (1 - (1-C)*(1-I)*(1-A)).
func (b Base) Impact() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return b.impact(), nil
}

func (b Base) impact() float64 {
	return 10.41 * (1 -
		(1-b.ConfImpact.Weight())*
			(1-b.IntegImpact.Weight())*
			(1-b.AvailImpact.Weight()))
}

// Exploitability computes the unrounded exploitability subscore
// 20 * AV * AC * Au.
func (b Base) Exploitability() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return b.exploitability(), nil
}

func (b Base) exploitability() float64 {
	return 20 *
		b.AccessVector.Weight() *
		b.AccessComplexity.Weight() *
		b.Authentication.Weight()
}

// Score computes the Base score, rounded to one decimal digit.
func (b Base) Score() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	impact := b.impact()
	fImpact := 1.176
	if impact == 0 {
		fImpact = 0
	}
	return roundScore(((0.6 * impact) + (0.4 * b.exploitability()) - 1.5) * fImpact), nil
}
