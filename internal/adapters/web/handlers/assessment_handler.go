package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/vulnscale/vulnscale/internal/core/services/scoring"
	"gorm.io/gorm"
)

// AssessmentHandler serves stored assessments
type AssessmentHandler struct {
	Service *scoring.Service
}

// NewAssessmentHandler creates a new AssessmentHandler
func NewAssessmentHandler(service *scoring.Service) *AssessmentHandler {
	return &AssessmentHandler{Service: service}
}

// HandleList returns stored assessments, newest first. ?limit=N caps
// the result, default 100.
func (h *AssessmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	assessments, err := h.Service.ListAssessments(r.Context(), limit)
	if err != nil {
		http.Error(w, "Failed to list assessments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessments)
}

// HandleGet returns a single assessment by ID.
func (h *AssessmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	assessment, err := h.Service.GetAssessment(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Assessment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get assessment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessment)
}

// HandleStats returns severity and group counts over all stored
// assessments.
func (h *AssessmentHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		http.Error(w, "Failed to get stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
