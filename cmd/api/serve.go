package main

import (
	"os/signal"
	"syscall"

	"nexus_recycle/internal/adapter/http/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  "Restores the persisted profile and ledger, then serves the API until SIGINT or SIGTERM.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		deps, cleanup, err := routes.NewDependencies(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		zap.L().Info("[app][serve] starting", zap.String("store", cfg.Store.Driver), zap.String("places", cfg.Places.Provider))
		return routes.Run(ctx, cfg.Server, deps)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override server.port")
	rootCmd.AddCommand(serveCmd)
}
