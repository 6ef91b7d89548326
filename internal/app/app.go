// Package app wires configuration, storage, clients and services together
package app

import (
	"fmt"
	"time"

	"github.com/rathishpadman/stockpulse/internal/clients/agents"
	"github.com/rathishpadman/stockpulse/internal/common"
	"github.com/rathishpadman/stockpulse/internal/interfaces"
	agentsvc "github.com/rathishpadman/stockpulse/internal/services/agent"
	"github.com/rathishpadman/stockpulse/internal/services/report"
	"github.com/rathishpadman/stockpulse/internal/services/signal"
	"github.com/rathishpadman/stockpulse/internal/storage/surrealdb"
)

// App holds all application dependencies.
type App struct {
	Config *common.Config
	Logger *common.Logger

	Storage      interfaces.StorageManager
	AgentsClient interfaces.AgentsClient

	ReportService interfaces.ReportService
	SignalService interfaces.SignalService
	AgentService  interfaces.AgentService

	StartupTime time.Time
}

// NewApp creates the application container from a config file path. An
// empty path falls back to defaults plus environment overrides.
func NewApp(configPath string) (*App, error) {
	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	storage, err := surrealdb.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	agentsClient := agents.NewClient(
		agents.WithBaseURL(config.Clients.Agents.BaseURL),
		agents.WithRateLimit(config.Clients.Agents.RateLimit),
		agents.WithTimeout(config.Clients.Agents.GetTimeout()),
		agents.WithLogger(logger),
	)

	a := &App{
		Config:       config,
		Logger:       logger,
		Storage:      storage,
		AgentsClient: agentsClient,
		StartupTime:  time.Now(),
	}

	a.ReportService = report.NewService(storage, logger)
	a.SignalService = signal.NewService(storage, logger)
	a.AgentService = agentsvc.NewService(agentsClient, logger)

	logger.Info().
		Str("environment", config.Environment).
		Str("version", common.GetVersion()).
		Msg("Application initialized")

	return a, nil
}

// Close releases application resources.
func (a *App) Close() error {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Error closing storage")
			return err
		}
	}
	return nil
}
