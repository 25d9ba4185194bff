// Package app wires the scoring engine, storage and the web server
// into a running application.
package app

import (
	"context"
	"fmt"

	"github.com/vulnscale/vulnscale/internal/adapters/cvedb"
	pdfreporting "github.com/vulnscale/vulnscale/internal/adapters/reporting"
	"github.com/vulnscale/vulnscale/internal/adapters/storage"
	"github.com/vulnscale/vulnscale/internal/adapters/web"
	"github.com/vulnscale/vulnscale/internal/adapters/web/websocket"
	"github.com/vulnscale/vulnscale/internal/config"
	"github.com/vulnscale/vulnscale/internal/core/services/reporting"
	"github.com/vulnscale/vulnscale/internal/core/services/scoring"
	"github.com/vulnscale/vulnscale/internal/telemetry"
)

// Application holds the core components of the application. It acts as
// the facade for the whole system.
type Application struct {
	Config          *config.Config
	ScoringService  *scoring.Service
	ReportGenerator *reporting.Generator
	WebServer       *web.Server

	assessmentStore *storage.SQLiteAdapter
	cveRepo         *cvedb.SQLiteRepository
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	// 1. Foundation & Infrastructure
	telemetry.InitMetrics()

	assessmentStore, err := storage.NewSQLiteAdapter(app.Config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open assessment store: %w", err)
	}
	app.assessmentStore = assessmentStore

	cveRepo, err := cvedb.NewSQLiteRepository(app.Config.CVEDBPath)
	if err != nil {
		return fmt.Errorf("failed to open CVE database: %w", err)
	}
	app.cveRepo = cveRepo

	// 2. Domain Services
	wsManager := websocket.NewWSManager()
	app.ScoringService = scoring.NewService(assessmentStore, wsManager)
	app.ReportGenerator = reporting.NewGenerator(assessmentStore, app.Config.ReportLimit)

	// 3. Transport
	app.WebServer = web.NewServer(
		app.Config.Addr,
		app.Config.ScoreRateLimit,
		wsManager,
		app.ScoringService,
		app.ReportGenerator,
		pdfreporting.NewPDFExporter(),
		cveRepo,
	)

	return nil
}

// Run starts the web server and blocks until ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	return app.WebServer.Run(ctx)
}

// Close releases database handles.
func (app *Application) Close() error {
	var firstErr error
	if app.assessmentStore != nil {
		if err := app.assessmentStore.Close(); err != nil {
			firstErr = err
		}
	}
	if app.cveRepo != nil {
		if err := app.cveRepo.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
