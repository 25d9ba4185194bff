package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
	"github.com/vulnscale/vulnscale/internal/core/services/scoring"
)

// ScoreHandler exposes the scoring engine over HTTP.
type ScoreHandler struct {
	Service *scoring.Service
}

// NewScoreHandler creates a new ScoreHandler
func NewScoreHandler(service *scoring.Service) *ScoreHandler {
	return &ScoreHandler{Service: service}
}

// ScoreRequest is the body of POST /api/score.
type ScoreRequest struct {
	Vector string `json:"vector"`
	// Group is "base", "temporal", "environmental" or "auto" (default).
	Group string `json:"group,omitempty"`
}

// HandleScore parses a vector, computes its scores and stores the
// assessment.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	// Limit request body to 1MB
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !domain.IsPlausibleVector(req.Vector) {
		http.Error(w, "Invalid vector string", http.StatusBadRequest)
		return
	}

	assessment, err := h.Service.Score(r.Context(), req.Vector, cvss.Group(req.Group))
	if err != nil {
		writeScoringError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(assessment)
}

// HandlePreview computes scores without persisting anything.
func (h *ScoreHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !domain.IsPlausibleVector(req.Vector) {
		http.Error(w, "Invalid vector string", http.StatusBadRequest)
		return
	}

	assessment, err := h.Service.Evaluate(req.Vector, cvss.Group(req.Group))
	if err != nil {
		writeScoringError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessment)
}

// HandleMetricValues lists the legal value tokens of a metric, for UI
// dropdowns and CLI completion.
func (h *ScoreHandler) HandleMetricValues(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := vars["key"]

	values, ok := metricValues(key)
	if !ok {
		http.Error(w, "Unknown metric key", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"metric": key,
		"values": values,
	})
}

func metricValues(key string) ([]string, bool) {
	switch key {
	case "AV":
		return tokens(cvss.AccessVectorValues()), true
	case "AC":
		return tokens(cvss.AccessComplexityValues()), true
	case "Au":
		return tokens(cvss.AuthenticationValues()), true
	case "C":
		return tokens(cvss.ConfidentialityImpactValues()), true
	case "I":
		return tokens(cvss.IntegrityImpactValues()), true
	case "A":
		return tokens(cvss.AvailabilityImpactValues()), true
	case "E":
		return tokens(cvss.ExploitabilityValues()), true
	case "RL":
		return tokens(cvss.RemediationLevelValues()), true
	case "RC":
		return tokens(cvss.ReportConfidenceValues()), true
	case "CDP":
		return tokens(cvss.CollateralDamagePotentialValues()), true
	case "TD":
		return tokens(cvss.TargetDistributionValues()), true
	case "CR":
		return tokens(cvss.ConfidentialityRequirementValues()), true
	case "IR":
		return tokens(cvss.IntegrityRequirementValues()), true
	case "AR":
		return tokens(cvss.AvailabilityRequirementValues()), true
	}
	return nil, false
}

func tokens[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// writeScoringError maps engine errors to HTTP responses.
func writeScoringError(w http.ResponseWriter, err error) {
	kind := "internal"
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, cvss.ErrMissingInput):
		kind, status = "missing_input", http.StatusBadRequest
	case errors.Is(err, cvss.ErrMalformedSegment):
		kind, status = "malformed_segment", http.StatusBadRequest
	case errors.Is(err, cvss.ErrUnrecognizedMetricKey):
		kind, status = "unrecognized_key", http.StatusBadRequest
	case errors.Is(err, cvss.ErrInvalidMetricValue):
		kind, status = "invalid_value", http.StatusBadRequest
	case errors.Is(err, cvss.ErrIncompleteModel):
		kind, status = "incomplete_model", http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
		"kind":  kind,
	})
}
