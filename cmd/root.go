package cmd

import (
	"fmt"
	"os"

	"github.com/avensia/inriver-bynder/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inriver-bynder",
	Short: "Bynder to inRiver connector",
	Long: `inriver-bynder reconciles assets from a Bynder DAM into resource
entities of an inRiver PIM. It supports scheduled full and incremental
synchronization runs plus a webhook surface for push notifications.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug config gives readable timestamps for a
		// CLI tool; this is only the fallback reporter for command errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
