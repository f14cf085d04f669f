package main

import (
	"fmt"
	"os"

	"nexus_recycle/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:generate swag init -d ../.. -g cmd/api/main.go -o ../../docs --parseInternal

// @title           Nexus Recycling API
// @version         1.0
// @description     Scan recyclable material, find nearby buyers, trade it and track the environmental impact.

// @host localhost:8080

// @BasePath  /v1

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Nexus recycling trade service",
	Long:  "Serves the Nexus API: smart scans of recyclable material, nearby buyer discovery, trade negotiation and the impact ledger.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
