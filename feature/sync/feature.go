package sync

import "github.com/gofiber/fiber/v2"

// Feature bundles service and handler for the loader.
type Feature struct {
	service *Service
}

// NewFeature creates the sync feature around an already wired service.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "sync"
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
