package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceFullSync bool

// syncCmd runs one reconciliation pass and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one synchronization pass",
	Long: `Runs one reconciliation pass against the DAM.

The pass is incremental (assets modified since the watermark) unless the
daily full-sync schedule is due, the connector has never run, or --force
is given.

Examples:
  # Regular pass (incremental when a watermark exists)
  inriver-bynder sync

  # Force a full pass, ignoring the watermark
  inriver-bynder sync --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := wire()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		summary, err := rt.service.Run(context.Background(), forceFullSync)
		if err != nil {
			return err
		}

		rt.logger.Info("Run finished",
			zap.String("run_id", summary.RunID),
			zap.Bool("full", summary.Full),
			zap.Int("total", summary.Total),
			zap.Int("processed", summary.Processed),
			zap.Int("skipped", summary.Skipped),
			zap.Duration("duration", summary.Duration))
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&forceFullSync, "force", false, "force a full sync regardless of the watermark")
	RootCmd.AddCommand(syncCmd)
}
