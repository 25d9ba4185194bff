// Package web exposes the scoring engine over HTTP and WebSocket.
package web

import (
	"context"
	"log"
	"net/http"
	"time"

	pdfreporting "github.com/vulnscale/vulnscale/internal/adapters/reporting"
	"github.com/vulnscale/vulnscale/internal/adapters/web/handlers"
	"github.com/vulnscale/vulnscale/internal/adapters/web/websocket"
	"github.com/vulnscale/vulnscale/internal/core/ports"
	"github.com/vulnscale/vulnscale/internal/core/services/reporting"
	"github.com/vulnscale/vulnscale/internal/core/services/scoring"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server handles HTTP and WebSocket connections.
type Server struct {
	Addr           string
	ScoreRateLimit int

	WSManager         *websocket.WSManager
	ScoreHandler      *handlers.ScoreHandler
	AssessmentHandler *handlers.AssessmentHandler
	ReportHandler     *handlers.ReportHandler
	CVEHandler        *handlers.CVEHandler

	srv *http.Server
}

// NewServer creates a new web server.
func NewServer(
	addr string,
	scoreRateLimit int,
	wsManager *websocket.WSManager,
	scoringService *scoring.Service,
	reportGenerator *reporting.Generator,
	pdfExporter *pdfreporting.PDFExporter,
	cveRepo ports.CVERepository,
) *Server {
	return &Server{
		Addr:           addr,
		ScoreRateLimit: scoreRateLimit,

		WSManager:         wsManager,
		ScoreHandler:      handlers.NewScoreHandler(scoringService),
		AssessmentHandler: handlers.NewAssessmentHandler(scoringService),
		ReportHandler:     handlers.NewReportHandler(reportGenerator, pdfExporter),
		CVEHandler:        handlers.NewCVEHandler(cveRepo),
	}
}

// Run starts the server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	handler := SetupRoutes(s)

	// Instrument with OpenTelemetry
	instrumentedHandler := otelhttp.NewHandler(handler, "vulnscale-server")

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           instrumentedHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown implementation
	go func() {
		<-ctx.Done()
		log.Println("Web Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Web Server shutdown error: %v", err)
		}
	}()

	log.Printf("Web server listening on %s", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
