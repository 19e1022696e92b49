package cmd

import (
	"context"
	"time"

	"github.com/avensia/inriver-bynder/core/bynder"
	"github.com/avensia/inriver-bynder/core/config"
	"github.com/avensia/inriver-bynder/core/database"
	"github.com/avensia/inriver-bynder/core/inriver"
	"github.com/avensia/inriver-bynder/core/logger"
	syncfeature "github.com/avensia/inriver-bynder/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd checks configuration and collaborator connectivity.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and connectivity",
	Long: `Validates the connector configuration (filename pattern, property map,
schedule) and checks that the state database, the DAM and the PIM are
reachable. Intended as a smoke test after deployment or settings changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return err
		}
		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			return err
		}
		defer logg.Sync()

		settings, err := syncfeature.Compile(cfg.Sync, logg)
		if err != nil {
			return err
		}
		logg.Info("Sync configuration valid",
			zap.String("connector_id", settings.ConnectorID),
			zap.Bool("full_sync_scheduled", settings.Schedule != nil),
			zap.Int("pattern_fields", len(settings.PatternFields)),
			zap.Int("property_mappings", len(settings.Properties)))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := database.Connect(cfg.Database); err != nil {
			logg.Error("State database unreachable", zap.Error(err))
		} else {
			logg.Info("State database reachable")
		}

		if assets, err := bynder.NewClient(cfg.Bynder); err != nil {
			logg.Error("Bynder client misconfigured", zap.Error(err))
		} else if _, err := assets.Assets(ctx, settings.AssetQuery, 1, 1); err != nil {
			logg.Error("Bynder unreachable", zap.Error(err))
		} else {
			logg.Info("Bynder reachable")
		}

		if store, err := inriver.NewClient(cfg.InRiver); err != nil {
			logg.Error("inRiver client misconfigured", zap.Error(err))
		} else if _, err := store.LinkTypesFor(ctx, inriver.EntityTypeResource); err != nil {
			logg.Error("inRiver unreachable", zap.Error(err))
		} else {
			logg.Info("inRiver reachable")
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
