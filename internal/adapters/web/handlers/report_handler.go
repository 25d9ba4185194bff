package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	pdfreporting "github.com/vulnscale/vulnscale/internal/adapters/reporting"
	"github.com/vulnscale/vulnscale/internal/core/services/reporting"
)

const defaultReportTitle = "Severity Summary"

// ReportHandler generates severity reports
type ReportHandler struct {
	Generator   *reporting.Generator
	PDFExporter *pdfreporting.PDFExporter
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(generator *reporting.Generator, exporter *pdfreporting.PDFExporter) *ReportHandler {
	return &ReportHandler{
		Generator:   generator,
		PDFExporter: exporter,
	}
}

// HandleSeverityReport returns the severity report as JSON.
func (h *ReportHandler) HandleSeverityReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Generator.Generate(r.Context(), reportTitle(r))
	if err != nil {
		http.Error(w, "Failed to generate report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleSeverityReportPDF renders the severity report as a downloadable
// PDF.
func (h *ReportHandler) HandleSeverityReportPDF(w http.ResponseWriter, r *http.Request) {
	report, err := h.Generator.Generate(r.Context(), reportTitle(r))
	if err != nil {
		http.Error(w, "Failed to generate report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := h.PDFExporter.ExportSeverityReport(report)
	if err != nil {
		http.Error(w, "Failed to render PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("severity-report-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

func reportTitle(r *http.Request) string {
	if title := r.URL.Query().Get("title"); title != "" {
		return title
	}
	return defaultReportTitle
}
