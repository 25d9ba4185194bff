package cvss

import (
	"fmt"
	"strings"
)

// Metric keys as they appear in vector strings. Matching is
// case-sensitive; note the standard's asymmetric "Au" label.
const (
	keyAccessVector     = "AV"
	keyAccessComplexity = "AC"
	keyAuthentication   = "Au"
	keyConfImpact       = "C"
	keyIntegImpact      = "I"
	keyAvailImpact      = "A"

	keyExploitability   = "E"
	keyRemediationLevel = "RL"
	keyReportConfidence = "RC"

	keyCollateralDamagePotential = "CDP"
	keyTargetDistribution        = "TD"
	keyConfReq                   = "CR"
	keyIntegReq                  = "IR"
	keyAvailReq                  = "AR"
)

// Group identifies a metric group and doubles as the parse target for
// ParseVector: parsing a group accepts its own keys plus every enclosed
// group's keys.
type Group string

const (
	GroupBase          Group = "base"
	GroupTemporal      Group = "temporal"
	GroupEnvironmental Group = "environmental"
)

// Vector serializes the Base group in canonical order. Base has no
// enclosing group, so FullVector is identical.
func (b Base) Vector() (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	return strings.Join([]string{
		keyAccessVector + ":" + string(b.AccessVector),
		keyAccessComplexity + ":" + string(b.AccessComplexity),
		keyAuthentication + ":" + string(b.Authentication),
		keyConfImpact + ":" + string(b.ConfImpact),
		keyIntegImpact + ":" + string(b.IntegImpact),
		keyAvailImpact + ":" + string(b.AvailImpact),
	}, "/"), nil
}

// FullVector serializes the Base group; see Vector.
func (b Base) FullVector() (string, error) { return b.Vector() }

// Vector serializes only the Temporal group's own metrics.
func (t Temporal) Vector() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return strings.Join([]string{
		keyExploitability + ":" + string(t.Exploitability),
		keyRemediationLevel + ":" + string(t.RemediationLevel),
		keyReportConfidence + ":" + string(t.ReportConfidence),
	}, "/"), nil
}

// FullVector prefixes the wrapped Base vector to the Temporal metrics.
func (t Temporal) FullVector() (string, error) {
	base, err := t.Base.FullVector()
	if err != nil {
		return "", err
	}
	local, err := t.Vector()
	if err != nil {
		return "", err
	}
	return base + "/" + local, nil
}

// Vector serializes only the Environmental group's own metrics.
func (e Environmental) Vector() (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	return strings.Join([]string{
		keyCollateralDamagePotential + ":" + string(e.CollateralDamagePotential),
		keyTargetDistribution + ":" + string(e.TargetDistribution),
		keyConfReq + ":" + string(e.ConfReq),
		keyIntegReq + ":" + string(e.IntegReq),
		keyAvailReq + ":" + string(e.AvailReq),
	}, "/"), nil
}

// FullVector prefixes the wrapped Temporal full vector to the
// Environmental metrics.
func (e Environmental) FullVector() (string, error) {
	temporal, err := e.Temporal.FullVector()
	if err != nil {
		return "", err
	}
	local, err := e.Vector()
	if err != nil {
		return "", err
	}
	return temporal + "/" + local, nil
}

type segment struct {
	key   string
	value string
}

// splitVector breaks a raw vector into key/value segments, surfacing
// structural errors before any metric is interpreted.
func splitVector(s string) ([]segment, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty vector string", ErrMissingInput)
	}
	parts := strings.Split(s, "/")
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		key, value, found := strings.Cut(part, ":")
		if !found || key == "" || value == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedSegment, part)
		}
		segments = append(segments, segment{key: key, value: value})
	}
	return segments, nil
}

func applyBase(b *Base, seg segment) error {
	switch seg.key {
	case keyAccessVector:
		v, err := ParseAccessVector(seg.value)
		if err != nil {
			return err
		}
		b.AccessVector = v
	case keyAccessComplexity:
		v, err := ParseAccessComplexity(seg.value)
		if err != nil {
			return err
		}
		b.AccessComplexity = v
	case keyAuthentication:
		v, err := ParseAuthentication(seg.value)
		if err != nil {
			return err
		}
		b.Authentication = v
	case keyConfImpact:
		v, err := ParseConfidentialityImpact(seg.value)
		if err != nil {
			return err
		}
		b.ConfImpact = v
	case keyIntegImpact:
		v, err := ParseIntegrityImpact(seg.value)
		if err != nil {
			return err
		}
		b.IntegImpact = v
	case keyAvailImpact:
		v, err := ParseAvailabilityImpact(seg.value)
		if err != nil {
			return err
		}
		b.AvailImpact = v
	default:
		return fmt.Errorf("%w: %q", ErrUnrecognizedMetricKey, seg.key)
	}
	return nil
}

func applyTemporal(t *Temporal, seg segment) error {
	switch seg.key {
	case keyExploitability:
		v, err := ParseExploitability(seg.value)
		if err != nil {
			return err
		}
		t.Exploitability = v
	case keyRemediationLevel:
		v, err := ParseRemediationLevel(seg.value)
		if err != nil {
			return err
		}
		t.RemediationLevel = v
	case keyReportConfidence:
		v, err := ParseReportConfidence(seg.value)
		if err != nil {
			return err
		}
		t.ReportConfidence = v
	default:
		return applyBase(&t.Base, seg)
	}
	return nil
}

func applyEnvironmental(e *Environmental, seg segment) error {
	switch seg.key {
	case keyCollateralDamagePotential:
		v, err := ParseCollateralDamagePotential(seg.value)
		if err != nil {
			return err
		}
		e.CollateralDamagePotential = v
	case keyTargetDistribution:
		v, err := ParseTargetDistribution(seg.value)
		if err != nil {
			return err
		}
		e.TargetDistribution = v
	case keyConfReq:
		v, err := ParseConfidentialityRequirement(seg.value)
		if err != nil {
			return err
		}
		e.ConfReq = v
	case keyIntegReq:
		v, err := ParseIntegrityRequirement(seg.value)
		if err != nil {
			return err
		}
		e.IntegReq = v
	case keyAvailReq:
		v, err := ParseAvailabilityRequirement(seg.value)
		if err != nil {
			return err
		}
		e.AvailReq = v
	default:
		return applyTemporal(&e.Temporal, seg)
	}
	return nil
}

// ParseBase parses a Base vector. Only Base-group keys are accepted.
// Segments may appear in any order; a repeated key overwrites the
// earlier occurrence. On any error the zero model is returned.
func ParseBase(s string) (Base, error) {
	segments, err := splitVector(s)
	if err != nil {
		return Base{}, err
	}
	var b Base
	for _, seg := range segments {
		if err := applyBase(&b, seg); err != nil {
			return Base{}, err
		}
	}
	return b, nil
}

// ParseTemporal parses a Temporal vector. Base-group keys are routed
// into the nested Base model, so a full Temporal vector parses directly.
func ParseTemporal(s string) (Temporal, error) {
	segments, err := splitVector(s)
	if err != nil {
		return Temporal{}, err
	}
	var t Temporal
	for _, seg := range segments {
		if err := applyTemporal(&t, seg); err != nil {
			return Temporal{}, err
		}
	}
	return t, nil
}

// ParseEnvironmental parses an Environmental vector. Temporal and Base
// keys are routed into the nested models, so a full Environmental
// vector parses directly.
func ParseEnvironmental(s string) (Environmental, error) {
	segments, err := splitVector(s)
	if err != nil {
		return Environmental{}, err
	}
	var e Environmental
	for _, seg := range segments {
		if err := applyEnvironmental(&e, seg); err != nil {
			return Environmental{}, err
		}
	}
	return e, nil
}

// DetectGroup inspects the keys of a vector and returns the deepest
// group they belong to. Structural errors and unknown keys are surfaced
// with the same error kinds as parsing.
func DetectGroup(s string) (Group, error) {
	segments, err := splitVector(s)
	if err != nil {
		return "", err
	}
	group := GroupBase
	for _, seg := range segments {
		switch seg.key {
		case keyCollateralDamagePotential, keyTargetDistribution, keyConfReq, keyIntegReq, keyAvailReq:
			return GroupEnvironmental, nil
		case keyExploitability, keyRemediationLevel, keyReportConfidence:
			group = GroupTemporal
		case keyAccessVector, keyAccessComplexity, keyAuthentication,
			keyConfImpact, keyIntegImpact, keyAvailImpact:
		default:
			return "", fmt.Errorf("%w: %q", ErrUnrecognizedMetricKey, seg.key)
		}
	}
	return group, nil
}
