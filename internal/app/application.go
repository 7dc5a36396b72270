package app

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/ChairFinder/internal/client"
	"github.com/Rorical/ChairFinder/internal/config"
	"github.com/Rorical/ChairFinder/internal/core"
	"github.com/Rorical/ChairFinder/internal/dispatcher"
	"github.com/Rorical/ChairFinder/internal/eventbus"
	"github.com/Rorical/ChairFinder/internal/logger"
	"github.com/Rorical/ChairFinder/internal/models"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.RecommendService
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// The TUI owns the terminal, so diagnostics go to a file
	if err := InitFileLogger(cfg); err != nil {
		return nil, err
	}
	log := logger.Get()

	recClient, err := client.New(cfg.GetBaseURL(), cfg.GetTimeout())
	if err != nil {
		log.Error("failed to create client", zap.String("base_url", cfg.GetBaseURL()), zap.Error(err))
		return nil, fmt.Errorf("profile %q: %w", cfg.ActiveProfile, err)
	}

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewRecommendService(cfg, recClient, recClient, eb, log)

	model := &AppModel{
		appModel:   createInitialAppModel(service),
		dispatcher: disp,
	}

	log.Info("application created",
		zap.String("profile", cfg.ActiveProfile),
		zap.String("base_url", cfg.GetBaseURL()),
		zap.Duration("timeout", cfg.GetTimeout()))

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

// InitFileLogger points the global logger at chairfinder.log in the config dir
func InitFileLogger(cfg *config.Config) error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("failed to resolve config dir: %w", err)
	}
	if err := logger.Init(cfg.GetLogLevel(), filepath.Join(dir, "chairfinder.log")); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.dispatcher.Stop()
	app.service.Stop()
	app.eventBus.Close()
	logger.Sync()
}

func createInitialAppModel(service *core.RecommendService) models.AppModel {
	// Cards and notices come from core as single source of truth
	return models.AppModel{
		Cards:        make([]models.Card, 0),
		Status:       "Ready",
		ServiceReady: service.IsReady(),
	}
}
