package domain

import "regexp"

// Validation Helpers

var cveIDRegex = regexp.MustCompile(`^CVE-\d{4}-\d{4,}$`)

// IsValidCVEID checks if the string is a well-formed CVE identifier.
func IsValidCVEID(id string) bool {
	return cveIDRegex.MatchString(id)
}

// maxVectorLength bounds accepted vector input. The longest legal
// vector (14 segments, keys and values of at most 3 characters) is well
// under this.
const maxVectorLength = 128

// IsPlausibleVector is a cheap pre-check for handler input before the
// engine parses it: non-empty, bounded, and limited to vector
// characters.
func IsPlausibleVector(s string) bool {
	if len(s) == 0 || len(s) > maxVectorLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == ':' || c == '/':
		default:
			return false
		}
	}
	return true
}
