package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/avensia/inriver-bynder/core/bynder"
	"github.com/avensia/inriver-bynder/core/state"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunSummary reports one engine pass.
type RunSummary struct {
	RunID       string        `json:"runId"`
	ConnectorID string        `json:"connectorId"`
	Full        bool          `json:"full"`
	StartTime   time.Time     `json:"startTime"`
	Duration    time.Duration `json:"duration"`
	// Total is the collection size reported by the provider.
	Total int `json:"total"`
	// Processed counts assets that were applied to the entity store.
	Processed int `json:"processed"`
	// Skipped counts assets filtered out (threshold, pattern, data errors).
	Skipped int `json:"skipped"`
}

// Scheduler owns the watermark and drives paginated reconciliation runs.
type Scheduler struct {
	assets   bynder.Client
	worker   *Worker
	states   state.Store
	settings *Settings
	logger   *zap.Logger

	// now is the clock; replaceable in tests.
	now func() time.Time
}

// NewScheduler creates a scheduler around the worker and watermark store.
func NewScheduler(assets bynder.Client, worker *Worker, states state.Store, settings *Settings, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		assets:   assets,
		worker:   worker,
		states:   states,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one pass. force always triggers a full sync; otherwise the
// watermark and the configured daily schedule decide between full and
// incremental. The watermark advances to the run's start time only when
// every page succeeded, so an aborted run retries from the same threshold.
func (s *Scheduler) Run(ctx context.Context, force bool) (*RunSummary, error) {
	startTime := s.now()

	current, watermark, err := s.loadWatermark(ctx)
	if err != nil {
		return nil, err
	}

	full := force || watermark == nil || s.fullSyncDue(startTime, *watermark)

	var threshold *time.Time
	if !full {
		threshold = watermark
	}

	summary := &RunSummary{
		RunID:       uuid.NewString(),
		ConnectorID: s.settings.ConnectorID,
		Full:        full,
		StartTime:   startTime,
	}

	log := s.logger.With(zap.String("run_id", summary.RunID), zap.Bool("full", full))
	log.Info("Start loading assets", zap.String("query", s.settings.AssetQuery))

	if err := s.processPages(ctx, threshold, summary, log); err != nil {
		log.Error("Sync run aborted, watermark not advanced", zap.Error(err))
		return nil, err
	}

	// The start time, not the completion time: assets modified during a
	// long run must still fall after the next run's threshold.
	if err := current.SetTimestamp(startTime); err != nil {
		return nil, err
	}
	if err := s.states.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to persist watermark: %w", err)
	}

	summary.Duration = s.now().Sub(startTime)
	log.Info("Sync run successful",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}

// loadWatermark resolves the connector's single logical watermark. When no
// state exists an empty one is created; when several exist (legacy runs),
// the newest wins and the others are removed. A malformed payload degrades
// to "never ran" so the run can proceed as a full sync.
func (s *Scheduler) loadWatermark(ctx context.Context) (*state.ConnectorState, *time.Time, error) {
	states, err := s.states.AllForConnector(ctx, s.settings.ConnectorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load watermark: %w", err)
	}

	if len(states) == 0 {
		fresh := &state.ConnectorState{ConnectorID: s.settings.ConnectorID}
		if err := s.states.Add(ctx, fresh); err != nil {
			return nil, nil, fmt.Errorf("failed to create watermark: %w", err)
		}
		return fresh, nil, nil
	}

	current := states[len(states)-1]
	if len(states) > 1 {
		stale := make([]uint, 0, len(states)-1)
		for _, st := range states[:len(states)-1] {
			stale = append(stale, st.ID)
		}
		if err := s.states.Delete(ctx, stale); err != nil {
			return nil, nil, fmt.Errorf("failed to remove stale watermarks: %w", err)
		}
	}

	watermark, err := current.Timestamp()
	if err != nil {
		s.logger.Error("Malformed watermark payload, treating as never ran", zap.Error(err))
		watermark = nil
	}
	return &current, watermark, nil
}

// fullSyncDue reports whether the daily full sync should run now: the
// scheduled time has passed today and the watermark predates it (no full
// sync happened today yet). Without a schedule there is no full-sync cutoff.
func (s *Scheduler) fullSyncDue(now, watermark time.Time) bool {
	if s.settings.Schedule == nil {
		return false
	}
	cutoff := time.Date(now.Year(), now.Month(), now.Day(),
		s.settings.Schedule.Hour, s.settings.Schedule.Minute, 0, 0, now.Location())
	if now.Before(cutoff) {
		return false
	}
	return watermark.Before(cutoff)
}

// processPages walks the whole collection, reconciling every asset in page
// order. Any provider or store failure aborts the run.
func (s *Scheduler) processPages(ctx context.Context, threshold *time.Time, summary *RunSummary, log *zap.Logger) error {
	page := 1
	counted := 0

	for {
		collection, err := s.assets.Assets(ctx, s.settings.AssetQuery, page, s.settings.PageSize)
		if err != nil {
			return fmt.Errorf("failed to fetch asset page %d: %w", page, err)
		}

		if page == 1 {
			summary.Total = collection.Total.Count
			log.Info("Start processing assets", zap.Int("total", summary.Total))
		}

		for _, asset := range collection.Media {
			outcome, err := s.worker.Reconcile(ctx, asset.ID, threshold)
			if err != nil {
				return err
			}

			if outcome.Skipped {
				summary.Skipped++
				log.Info("Asset skipped",
					zap.String("asset_id", outcome.AssetID),
					zap.String("reason", outcome.Reason))
			} else {
				summary.Processed++
				log.Info("Asset processed",
					zap.String("asset_id", outcome.AssetID),
					zap.Strings("messages", outcome.Messages))
			}
		}

		counted += len(collection.Media)
		log.Info("Page processed", zap.Int("page", page), zap.Int("assets", counted))

		if collection.IsLastPage() {
			return nil
		}
		page = collection.NextPage()
	}
}
