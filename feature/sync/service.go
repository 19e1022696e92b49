package sync

import (
	"context"

	"github.com/avensia/inriver-bynder/core/bynder"
	"github.com/avensia/inriver-bynder/core/inriver"
	"github.com/avensia/inriver-bynder/core/state"

	"go.uber.org/zap"
)

// Service bundles the engine for the HTTP surface, the CLI and the
// notification intake.
type Service struct {
	scheduler *Scheduler
	worker    *Worker
	logger    *zap.Logger
}

// NewService wires the engine from its collaborators.
func NewService(assets bynder.Client, store inriver.Service, states state.Store, settings *Settings, logger *zap.Logger) *Service {
	worker := NewWorker(assets, store, settings, logger)
	return &Service{
		scheduler: NewScheduler(assets, worker, states, settings, logger),
		worker:    worker,
		logger:    logger,
	}
}

// Run executes one scheduler pass.
func (s *Service) Run(ctx context.Context, force bool) (*RunSummary, error) {
	return s.scheduler.Run(ctx, force)
}

// ReconcileAsset reconciles a single asset with no incremental threshold,
// as if it had been announced by a notification.
func (s *Service) ReconcileAsset(ctx context.Context, assetID string) (*Outcome, error) {
	return s.worker.Reconcile(ctx, assetID, nil)
}
