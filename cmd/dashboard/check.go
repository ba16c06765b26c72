package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"portfolio-dashboard/internal/config"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and probe the content API once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd, cfg, logger)
		},
	}
}

func runCheck(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cache, err := newCache(cfg)
	if err != nil {
		return err
	}
	client := newAPIClient(cfg, cache)
	p := newProbe(cfg, client, cache, logger)

	if err := p.Run(ctx); err != nil {
		return fmt.Errorf("content API check failed: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s answers, cache %s reachable\n", client.BaseURL(), cfg.Cache.Backend)
	return err
}
