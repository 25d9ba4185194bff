package cvss

import "fmt"

// Temporal wraps a Base model with the three Temporal-group metrics
// reflecting vulnerability characteristics that change over time.
type Temporal struct {
	Base             Base
	Exploitability   Exploitability
	RemediationLevel RemediationLevel
	ReportConfidence ReportConfidence
}

// NewTemporal builds a fully populated Temporal model around base.
func NewTemporal(base Base, e Exploitability, rl RemediationLevel, rc ReportConfidence) Temporal {
	return Temporal{
		Base:             base,
		Exploitability:   e,
		RemediationLevel: rl,
		ReportConfidence: rc,
	}
}

// Validate reports whether the wrapped Base model and all three Temporal
// metrics are set to legal values.
func (t Temporal) Validate() error {
	if err := t.Base.Validate(); err != nil {
		return err
	}
	checks := []struct {
		key   string
		set   bool
		legal bool
	}{
		{keyExploitability, t.Exploitability != "", t.Exploitability.defined()},
		{keyRemediationLevel, t.RemediationLevel != "", t.RemediationLevel.defined()},
		{keyReportConfidence, t.ReportConfidence != "", t.ReportConfidence.defined()},
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

// Score computes the Temporal score: the rounded Base score scaled by
// the E, RL and RC weights, rounded again to one decimal digit. The
// standard's equations round at both stages, so the double rounding is
// deliberate.
func (t Temporal) Score() (float64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	base, err := t.Base.Score()
	if err != nil {
		return 0, err
	}
	return roundScore(base *
		t.Exploitability.Weight() *
		t.RemediationLevel.Weight() *
		t.ReportConfidence.Weight()), nil
}
