package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/avensia/inriver-bynder/core/loader"
	"github.com/avensia/inriver-bynder/core/logger"
	"github.com/avensia/inriver-bynder/core/middleware/auth"
	"github.com/avensia/inriver-bynder/core/middleware/rayid"
	"github.com/avensia/inriver-bynder/feature/notification"
	syncfeature "github.com/avensia/inriver-bynder/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the HTTP surface of the connector.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the connector server",
	Long:  `Starts the HTTP server exposing the notification webhook and the manual sync trigger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := wire()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every log line of a request can be correlated.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		mgr := loader.NewManager()
		mgr.Register(syncfeature.NewFeature(rt.service))
		mgr.Register(notification.NewFeature(rt.service, logg))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
