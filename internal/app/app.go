// Package app wires configuration, storage, clients and services together.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Fazlur4471/portfolio-tracker/internal/clients/yahoo"
	"github.com/Fazlur4471/portfolio-tracker/internal/common"
	"github.com/Fazlur4471/portfolio-tracker/internal/interfaces"
	"github.com/Fazlur4471/portfolio-tracker/internal/services/advisor"
	"github.com/Fazlur4471/portfolio-tracker/internal/services/planner"
	"github.com/Fazlur4471/portfolio-tracker/internal/services/portfolio"
	"github.com/Fazlur4471/portfolio-tracker/internal/storage/badger"
)

// App holds all initialized services, clients and storage.
// It is the shared core behind cmd/tracker-server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Store            *badger.Store
	MarketClient     interfaces.MarketClient
	PortfolioService interfaces.PortfolioService
	AdvisorService   interfaces.AdvisorService
	PlannerService   interfaces.PlannerService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, clients and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Config resolution: explicit path, TRACKER_CONFIG, binary dir, dev fallback
	if configPath == "" {
		configPath = os.Getenv("TRACKER_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "tracker.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/tracker.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative ledger path to the binary directory
	if config.Storage.Ledger.Path != "" && !filepath.IsAbs(config.Storage.Ledger.Path) {
		config.Storage.Ledger.Path = filepath.Join(binDir, config.Storage.Ledger.Path)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	store, err := badger.NewStore(logger, config.Storage.Ledger.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger store: %w", err)
	}
	ledger := badger.NewLedgerStorage(store)

	market := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithLogger(logger),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
	)

	portfolioService := portfolio.NewService(ledger, market, logger)
	advisorService := advisor.NewService(portfolioService, market, logger)
	plannerService := planner.NewService(logger)

	app := &App{
		Config:           config,
		Logger:           logger,
		Store:            store,
		MarketClient:     market,
		PortfolioService: portfolioService,
		AdvisorService:   advisorService,
		PlannerService:   plannerService,
		StartupTime:      time.Now(),
	}

	logger.Info().
		Str("version", common.GetFullVersion()).
		Str("environment", config.Environment).
		Str("ledger_path", config.Storage.Ledger.Path).
		Dur("startup", time.Since(startupStart)).
		Msg("Application initialized")

	return app, nil
}

// Close releases storage resources.
func (a *App) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Error closing ledger store")
		}
		a.Store = nil
	}
}
