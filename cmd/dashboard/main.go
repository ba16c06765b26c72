// Command dashboard serves the portfolio admin dashboard.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"portfolio-dashboard/internal/config"
	"portfolio-dashboard/internal/observability/logging"
)

// Set at build time via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagEnvFile string
	flagConfig  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Admin dashboard for the portfolio content API",
		Long: `dashboard serves the admin screens for projects, skills, blogs and
contact messages stored behind the portfolio content API.

Examples:
  dashboard serve
  dashboard serve --config /etc/dashboard.yaml
  dashboard check`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file (default $DASHBOARD_CONFIG)")

	root.AddCommand(newServeCmd(), newCheckCmd(), newVersionCmd())
	return root
}

// loadConfig reads the configuration and builds the process logger.
// The version from ldflags wins over the configured one unless it is "dev".
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flagEnvFile, flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if Version != "dev" {
		cfg.Version = Version
	}
	logger := initLogger(cfg)
	return cfg, logger, nil
}

func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

func versionString() string {
	return fmt.Sprintf("dashboard %s (commit %s, built %s)", Version, Commit, BuildTime)
}
