package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
	"github.com/vulnscale/vulnscale/internal/core/ports"
)

// CVEHandler serves the CVE seed dataset
type CVEHandler struct {
	Repo ports.CVERepository
}

// NewCVEHandler creates a new CVEHandler
func NewCVEHandler(repo ports.CVERepository) *CVEHandler {
	return &CVEHandler{Repo: repo}
}

// HandleList returns stored CVE records, newest first.
func (h *CVEHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	cves, err := h.Repo.List(r.Context(), limit)
	if err != nil {
		http.Error(w, "Failed to list CVEs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cves)
}

// HandleGet returns a single CVE record.
func (h *CVEHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if !domain.IsValidCVEID(id) {
		http.Error(w, "Invalid CVE ID", http.StatusBadRequest)
		return
	}

	cve, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to get CVE: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if cve == nil {
		http.Error(w, "CVE not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cve)
}

// HandleRescore recomputes the score of one CVE from its stored vector
// and persists the result.
func (h *CVEHandler) HandleRescore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if !domain.IsValidCVEID(id) {
		http.Error(w, "Invalid CVE ID", http.StatusBadRequest)
		return
	}

	cve, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to get CVE: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if cve == nil {
		http.Error(w, "CVE not found", http.StatusNotFound)
		return
	}

	base, err := cvss.ParseBase(cve.Vector)
	if err != nil {
		writeScoringError(w, err)
		return
	}
	score, err := base.Score()
	if err != nil {
		writeScoringError(w, err)
		return
	}

	severity := domain.SeverityForScore(score)
	if err := h.Repo.UpdateComputedScore(r.Context(), id, score, severity); err != nil {
		http.Error(w, "Failed to store score: "+err.Error(), http.StatusInternalServerError)
		return
	}

	cve.ComputedScore = &score
	cve.Severity = severity

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cve)
}

// HandleStatus reports when the dataset was last loaded and how many
// records it holds.
func (h *CVEHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Repo.GetDatasetStatus(r.Context())
	if err != nil {
		http.Error(w, "Failed to get dataset status: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
