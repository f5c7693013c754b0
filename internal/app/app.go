// Package app wires the review widget host's components together
package app

import (
	"fmt"

	"github.com/evertonthomazi/go-google-reviews/internal/clients/featurable"
	"github.com/evertonthomazi/go-google-reviews/internal/common"
	"github.com/evertonthomazi/go-google-reviews/internal/interfaces"
	"github.com/evertonthomazi/go-google-reviews/internal/services/widget"
	"github.com/evertonthomazi/go-google-reviews/internal/storage/widgetdb"
)

// App holds the application's wired components.
type App struct {
	Config  *common.Config
	Logger  *common.Logger
	Store   interfaces.WidgetStore
	Client  interfaces.FeaturableClient
	Widgets interfaces.WidgetService
}

// NewApp loads configuration and wires up storage, clients and services.
func NewApp(configPath string) (*App, error) {
	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	store, err := widgetdb.NewStore(logger, config.Storage.Widgets.Path)
	if err != nil {
		return nil, fmt.Errorf("open widget store: %w", err)
	}

	fc := config.Clients.Featurable
	client := featurable.NewClient(
		featurable.WithBaseURL(fc.BaseURL),
		featurable.WithRateLimit(fc.RateLimit),
		featurable.WithTimeout(fc.GetTimeout()),
		featurable.WithLogger(logger),
	)

	widgets := widget.NewService(store, client, logger)

	return &App{
		Config:  config,
		Logger:  logger,
		Store:   store,
		Client:  client,
		Widgets: widgets,
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Widget store close failed")
		}
	}
}
