package cmd

import (
	"fmt"

	"github.com/avensia/inriver-bynder/core/bynder"
	"github.com/avensia/inriver-bynder/core/config"
	"github.com/avensia/inriver-bynder/core/database"
	"github.com/avensia/inriver-bynder/core/inriver"
	"github.com/avensia/inriver-bynder/core/logger"
	"github.com/avensia/inriver-bynder/core/state"
	syncfeature "github.com/avensia/inriver-bynder/feature/sync"

	"go.uber.org/zap"
)

// runtime bundles everything a command needs after wiring.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *syncfeature.Service
}

// wire loads configuration and connects all collaborators. Every command
// goes through the same order: config, logger, database, clients, engine.
func wire() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	settings, err := syncfeature.Compile(cfg.Sync, logg)
	if err != nil {
		return nil, fmt.Errorf("invalid sync configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to state database: %w", err)
	}

	states, err := state.NewStore(db)
	if err != nil {
		return nil, err
	}

	assets, err := bynder.NewClient(cfg.Bynder)
	if err != nil {
		return nil, err
	}

	store, err := inriver.NewClient(cfg.InRiver)
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:     cfg,
		logger:  logg,
		service: syncfeature.NewService(assets, store, states, settings, logg),
	}, nil
}
