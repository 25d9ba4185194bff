// Package reporting renders severity reports to PDF.
package reporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
)

// PDFExporter exports severity reports to PDF format
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter instance
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ExportSeverityReport generates a PDF from a severity report
func (e *PDFExporter) ExportSeverityReport(report *domain.SeverityReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	e.addHeader(pdf, report)
	e.addScoreSummary(pdf, report)
	e.addBreakdowns(pdf, report)
	e.addWorstAssessments(pdf, report)
	e.addFooter(pdf, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// addHeader adds the report header
func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, report *domain.SeverityReport) {
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(0, 51, 102) // Dark blue
	pdf.CellFormat(0, 15, report.Metadata.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	dateStr := fmt.Sprintf("Generated: %s", report.Metadata.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.CellFormat(0, 6, dateStr, "", 1, "L", false, 0, "")

	pdf.Ln(8)
}

// addScoreSummary adds the prominent max/average score display
func (e *PDFExporter) addScoreSummary(pdf *gofpdf.Fpdf, report *domain.SeverityReport) {
	r, g, b := e.scoreColor(report.MaxScore)

	pdf.SetFillColor(r, g, b)
	pdf.Rect(20, pdf.GetY(), 170, 30, "F")

	y := pdf.GetY()

	pdf.SetFont("Arial", "B", 36)
	pdf.SetTextColor(255, 255, 255) // White
	pdf.SetXY(25, y+5)
	pdf.CellFormat(80, 20, fmt.Sprintf("%.1f/10", report.MaxScore), "", 0, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 14)
	pdf.SetXY(110, y+4)
	pdf.CellFormat(80, 10, "Worst Score", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.SetXY(110, y+16)
	pdf.CellFormat(80, 10, fmt.Sprintf("Average: %.1f", report.AverageScore), "", 0, "L", false, 0, "")

	pdf.SetY(y + 35)
	pdf.Ln(5)
}

// addBreakdowns adds the severity and group count grids
func (e *PDFExporter) addBreakdowns(pdf *gofpdf.Fpdf, report *domain.SeverityReport) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "Assessment Overview", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	stats := []struct {
		label string
		value string
		color []int
	}{
		{"Total Assessments", fmt.Sprintf("%d", report.TotalAssessments), []int{0, 102, 204}},
		{"High", fmt.Sprintf("%d", report.SeverityBreakdown[domain.SeverityHigh]), []int{220, 53, 69}},
		{"Medium", fmt.Sprintf("%d", report.SeverityBreakdown[domain.SeverityMedium]), []int{255, 149, 0}},
		{"Low", fmt.Sprintf("%d", report.SeverityBreakdown[domain.SeverityLow]), []int{52, 199, 89}},
		{"Base Vectors", fmt.Sprintf("%d", report.GroupBreakdown[cvss.GroupBase]), []int{0, 102, 204}},
		{"Temporal Vectors", fmt.Sprintf("%d", report.GroupBreakdown[cvss.GroupTemporal]), []int{0, 102, 204}},
		{"Environmental Vectors", fmt.Sprintf("%d", report.GroupBreakdown[cvss.GroupEnvironmental]), []int{0, 102, 204}},
	}

	// Display in 2 columns
	colWidth := 85.0
	for i, stat := range stats {
		x := 20.0
		if i%2 == 1 {
			x = 105.0
		}

		pdf.SetXY(x, pdf.GetY())

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(50, 7, stat.label+":", "", 0, "L", false, 0, "")

		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(stat.color[0], stat.color[1], stat.color[2])
		pdf.CellFormat(colWidth-50, 7, stat.value, "", 0, "R", false, 0, "")

		if i%2 == 1 {
			pdf.Ln(7)
		}
	}

	pdf.Ln(12)
}

// addWorstAssessments adds the worst-assessments table
func (e *PDFExporter) addWorstAssessments(pdf *gofpdf.Fpdf, report *domain.SeverityReport) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "Highest Severity Assessments", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(report.WorstAssessments) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 7, "No assessments recorded", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	// Table header
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(60, 60, 60)

	pdf.CellFormat(15, 8, "Rank", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 8, "Vector", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Group", "1", 0, "C", true, 0, "")
	pdf.CellFormat(15, 8, "Score", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "Severity", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 9)
	for i, a := range report.WorstAssessments {
		score := a.EffectiveScore()
		r, g, b := e.scoreColor(score)

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")

		// Truncate vector if too long
		vector := a.Canonical
		if len(vector) > 58 {
			vector = vector[:55] + "..."
		}
		pdf.CellFormat(95, 7, vector, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, string(a.Group), "1", 0, "C", false, 0, "")

		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(15, 7, fmt.Sprintf("%.1f", score), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, string(a.Severity), "1", 1, "C", false, 0, "")
	}

	pdf.Ln(8)
}

// addFooter adds the footer line
func (e *PDFExporter) addFooter(pdf *gofpdf.Fpdf, report *domain.SeverityReport) {
	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	footer := fmt.Sprintf("%s | Report %s", report.Metadata.GeneratedBy, report.Metadata.ID)
	pdf.CellFormat(0, 6, footer, "", 1, "C", false, 0, "")
}

// scoreColor returns RGB color based on a 0-10 score
func (e *PDFExporter) scoreColor(score float64) (r, g, b int) {
	switch {
	case score >= 7.0:
		return 220, 53, 69 // Red
	case score >= 4.0:
		return 255, 149, 0 // Orange
	default:
		return 52, 199, 89 // Green
	}
}
