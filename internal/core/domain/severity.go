package domain

// SeverityLevel is the NVD qualitative rating for a CVSS v2 score.
type SeverityLevel string

const (
	SeverityLow    SeverityLevel = "LOW"    // 0.0 - 3.9
	SeverityMedium SeverityLevel = "MEDIUM" // 4.0 - 6.9
	SeverityHigh   SeverityLevel = "HIGH"   // 7.0 - 10.0
)

// SeverityForScore maps a 0-10 score to its NVD v2 severity bucket.
func SeverityForScore(score float64) SeverityLevel {
	switch {
	case score < 4.0:
		return SeverityLow
	case score < 7.0:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// SeverityLevels returns the levels from least to most severe.
func SeverityLevels() []SeverityLevel {
	return []SeverityLevel{SeverityLow, SeverityMedium, SeverityHigh}
}
