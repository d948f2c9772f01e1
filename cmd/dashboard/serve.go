package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentidash/config"
	"github.com/spacesedan/sentidash/internal/report"
	"github.com/spacesedan/sentidash/internal/web"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load both tables and serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			// Tables load before the listener starts; a bad table means no page.
			ds, err := loadDataset(ctx, *cfg)
			if err != nil {
				return fmt.Errorf("failed to load dashboard data: %w", err)
			}

			store, err := newStore(ctx, *cfg)
			if err != nil {
				return fmt.Errorf("failed to create session store: %w", err)
			}
			defer store.Close()

			server := web.NewServer(report.New(ds), store, web.Options{SessionTTL: cfg.SessionTTL})
			return server.Run(ctx, ":"+cfg.ServerPort)
		},
	}
}
