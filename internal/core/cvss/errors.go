package cvss

import "errors"

// Error kinds reported by scoring and parsing. Callers can branch on
// the cause with errors.Is.
var (
	// ErrIncompleteModel is returned by Score or serialization when a
	// required metric of the model (or a nested model) is not set.
	ErrIncompleteModel = errors.New("incomplete cvss model")

	// ErrMissingInput is returned when an empty vector string is parsed.
	ErrMissingInput = errors.New("missing vector input")

	// ErrMalformedSegment is returned for a segment without a ":"
	// separator, or with an empty key or value.
	ErrMalformedSegment = errors.New("malformed vector segment")

	// ErrUnrecognizedMetricKey is returned when a segment key is not a
	// metric of the target group or any enclosed group.
	ErrUnrecognizedMetricKey = errors.New("unrecognized metric key")

	// ErrInvalidMetricValue is returned when a segment value is not a
	// legal value for its metric.
	ErrInvalidMetricValue = errors.New("invalid value for metric")
)
