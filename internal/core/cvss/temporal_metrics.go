package cvss

import "fmt"

// Exploitability (E) reflects the current state of exploit techniques
// and code availability. "ND" (Not Defined) weighs 1.0 so it leaves the
// temporal equation unchanged.
type Exploitability string

const (
	ExploitabilityUnproven       Exploitability = "U"
	ExploitabilityProofOfConcept Exploitability = "POC"
	ExploitabilityFunctional     Exploitability = "F"
	ExploitabilityHigh           Exploitability = "H"
	ExploitabilityNotDefined     Exploitability = "ND"
)

var exploitabilityWeights = map[Exploitability]float64{
	ExploitabilityUnproven:       0.85,
	ExploitabilityProofOfConcept: 0.9,
	ExploitabilityFunctional:     0.95,
	ExploitabilityHigh:           1.0,
	ExploitabilityNotDefined:     1.0,
}

func (v Exploitability) Weight() float64 { return exploitabilityWeights[v] }

func (v Exploitability) defined() bool { _, ok := exploitabilityWeights[v]; return ok }

// ParseExploitability maps a vector token to an Exploitability value.
func ParseExploitability(token string) (Exploitability, error) {
	v := Exploitability(token)
	if !v.defined() {
		return "", fmt.Errorf("%w E: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// ExploitabilityValues returns every legal Exploitability value.
func ExploitabilityValues() []Exploitability {
	return []Exploitability{
		ExploitabilityUnproven, ExploitabilityProofOfConcept,
		ExploitabilityFunctional, ExploitabilityHigh, ExploitabilityNotDefined,
	}
}

// RemediationLevel (RL) reflects how complete the available remediation
// is, from an official fix down to none.
type RemediationLevel string

const (
	RemediationLevelOfficialFix  RemediationLevel = "OF"
	RemediationLevelTemporaryFix RemediationLevel = "TF"
	RemediationLevelWorkaround   RemediationLevel = "W"
	RemediationLevelUnavailable  RemediationLevel = "U"
	RemediationLevelNotDefined   RemediationLevel = "ND"
)

var remediationLevelWeights = map[RemediationLevel]float64{
	RemediationLevelOfficialFix:  0.87,
	RemediationLevelTemporaryFix: 0.90,
	RemediationLevelWorkaround:   0.95,
	RemediationLevelUnavailable:  1.0,
	RemediationLevelNotDefined:   1.0,
}

func (v RemediationLevel) Weight() float64 { return remediationLevelWeights[v] }

func (v RemediationLevel) defined() bool { _, ok := remediationLevelWeights[v]; return ok }

// ParseRemediationLevel maps a vector token to a RemediationLevel value.
func ParseRemediationLevel(token string) (RemediationLevel, error) {
	v := RemediationLevel(token)
	if !v.defined() {
		return "", fmt.Errorf("%w RL: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// RemediationLevelValues returns every legal RemediationLevel value.
func RemediationLevelValues() []RemediationLevel {
	return []RemediationLevel{
		RemediationLevelOfficialFix, RemediationLevelTemporaryFix,
		RemediationLevelWorkaround, RemediationLevelUnavailable, RemediationLevelNotDefined,
	}
}

// ReportConfidence (RC) measures the degree of confidence in the
// existence of the vulnerability.
type ReportConfidence string

const (
	ReportConfidenceUnconfirmed    ReportConfidence = "UC"
	ReportConfidenceUncorroborated ReportConfidence = "UR"
	ReportConfidenceConfirmed      ReportConfidence = "C"
	ReportConfidenceNotDefined     ReportConfidence = "ND"
)

var reportConfidenceWeights = map[ReportConfidence]float64{
	ReportConfidenceUnconfirmed:    0.90,
	ReportConfidenceUncorroborated: 0.95,
	ReportConfidenceConfirmed:      1.0,
	ReportConfidenceNotDefined:     1.0,
}

func (v ReportConfidence) Weight() float64 { return reportConfidenceWeights[v] }

func (v ReportConfidence) defined() bool { _, ok := reportConfidenceWeights[v]; return ok }

// ParseReportConfidence maps a vector token to a ReportConfidence value.
func ParseReportConfidence(token string) (ReportConfidence, error) {
	v := ReportConfidence(token)
	if !v.defined() {
		return "", fmt.Errorf("%w RC: %q", ErrInvalidMetricValue, token)
	}
	return v, nil
}

// ReportConfidenceValues returns every legal ReportConfidence value.
func ReportConfidenceValues() []ReportConfidence {
	return []ReportConfidence{
		ReportConfidenceUnconfirmed, ReportConfidenceUncorroborated,
		ReportConfidenceConfirmed, ReportConfidenceNotDefined,
	}
}
