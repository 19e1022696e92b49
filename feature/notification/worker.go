package notification

import (
	"context"
	"fmt"

	syncfeature "github.com/avensia/inriver-bynder/feature/sync"

	"go.uber.org/zap"
)

// Result reports how one notification was handled.
type Result struct {
	// Acted is true when the notification triggered a reconciliation.
	Acted    bool     `json:"acted"`
	Messages []string `json:"messages"`
	// Outcome is the reconciliation result when Acted is true.
	Outcome *syncfeature.Outcome `json:"outcome,omitempty"`
}

// Worker reacts to decoded notifications.
type Worker struct {
	sync   *syncfeature.Service
	logger *zap.Logger
}

// NewWorker creates a notification worker on top of the sync service.
func NewWorker(sync *syncfeature.Service, logger *zap.Logger) *Worker {
	return &Worker{sync: sync, logger: logger}
}

// Process handles one notification. Unknown subjects are acknowledged
// without action; media subjects reconcile the announced asset.
func (w *Worker) Process(ctx context.Context, n *Notification) (*Result, error) {
	result := &Result{}

	if n.Media == nil {
		result.Messages = append(result.Messages, fmt.Sprintf("not acting on subject %s", n.Subject))
		return result, nil
	}
	if n.Media.MediaID == "" {
		result.Messages = append(result.Messages, fmt.Sprintf("subject %s carried no media_id", n.Subject))
		return result, nil
	}

	w.logger.Info("Media update notification",
		zap.String("subject", n.Subject),
		zap.String("media_id", n.Media.MediaID))

	outcome, err := w.sync.ReconcileAsset(ctx, n.Media.MediaID)
	if err != nil {
		return nil, err
	}

	result.Acted = true
	result.Outcome = outcome
	result.Messages = append(result.Messages, fmt.Sprintf("media update for media_id '%s'", n.Media.MediaID))
	result.Messages = append(result.Messages, outcome.Messages...)
	return result, nil
}
