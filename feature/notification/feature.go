package notification

import (
	syncfeature "github.com/avensia/inriver-bynder/feature/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature bundles worker and handler for the loader.
type Feature struct {
	worker *Worker
	logger *zap.Logger
}

// NewFeature creates the notification feature on top of the sync service.
func NewFeature(sync *syncfeature.Service, logger *zap.Logger) *Feature {
	return &Feature{worker: NewWorker(sync, logger), logger: logger}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "notification"
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.worker, f.logger).RegisterRoutes(app)
	return nil
}
