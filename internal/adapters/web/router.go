package web

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vulnscale/vulnscale/internal/adapters/web/middleware"
)

// SetupRoutes builds the HTTP route table.
func SetupRoutes(s *Server) http.Handler {
	r := mux.NewRouter()

	// Scoring is the write path, so it gets the rate limiter.
	scoreLimiter := middleware.NewRateLimiter(s.ScoreRateLimit, 1*time.Minute)
	limited := middleware.RateLimitMiddleware(scoreLimiter)

	r.Handle("/api/score", limited(http.HandlerFunc(s.ScoreHandler.HandleScore))).Methods(http.MethodPost)
	r.HandleFunc("/api/score/preview", s.ScoreHandler.HandlePreview).Methods(http.MethodPost)
	r.HandleFunc("/api/metrics/{key}/values", s.ScoreHandler.HandleMetricValues).Methods(http.MethodGet)

	// Assessments
	r.HandleFunc("/api/assessments", s.AssessmentHandler.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/api/assessments/stats", s.AssessmentHandler.HandleStats).Methods(http.MethodGet)
	r.HandleFunc("/api/assessments/{id}", s.AssessmentHandler.HandleGet).Methods(http.MethodGet)

	// Reports
	r.HandleFunc("/api/reports/severity", s.ReportHandler.HandleSeverityReport).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/severity/pdf", s.ReportHandler.HandleSeverityReportPDF).Methods(http.MethodGet)

	// CVE dataset
	r.HandleFunc("/api/cves", s.CVEHandler.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/api/cves/status", s.CVEHandler.HandleStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/cves/{id}", s.CVEHandler.HandleGet).Methods(http.MethodGet)
	r.HandleFunc("/api/cves/{id}/rescore", s.CVEHandler.HandleRescore).Methods(http.MethodPost)

	// Live assessment feed
	r.HandleFunc("/ws", s.WSManager.HandleWebSocket)

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
