// Package cmd holds the northern-oak command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/pkg/config"
	"github.com/FACorreiaa/northern-oak/internal/pkg/logger"
)

var (
	envFile string
	cfg     *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "northern-oak",
		Short:         "Northern Oak Joinery website",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("load %s: %w", envFile, err)
			}

			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded

			level, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			return logger.Init(level, zap.String("service", cfg.Observability.ServiceName))
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to read before the environment")

	root.AddCommand(serveCmd(), renderCmd(), exportCmd())
	return root
}

func Execute() error {
	err := newRootCmd().Execute()
	if logger.Log != nil {
		_ = logger.Log.Sync()
	}
	return err
}
