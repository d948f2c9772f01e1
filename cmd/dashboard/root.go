package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentidash/config"
	"github.com/spacesedan/sentidash/internal/clients"
	"github.com/spacesedan/sentidash/internal/dataset"
	"github.com/spacesedan/sentidash/internal/logging"
	"github.com/spacesedan/sentidash/internal/selection"
)

func newRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Sentiment & topic dashboard over precomputed review tables",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env := os.Getenv("APP_ENV")
			if env == "" {
				env = "dev"
			}
			config.LoadEnv(env)
			cfg = config.Load()
			logging.InitLogger(cfg.LogLevel)
		},
	}

	serve := newServeCmd(&cfg)
	root.AddCommand(serve, newSummaryCmd(&cfg))

	// Running the binary without a subcommand serves the dashboard.
	root.RunE = serve.RunE

	return root
}

func newSource(ctx context.Context, cfg config.Config) (dataset.Source, error) {
	switch cfg.DataSource {
	case config.DataSourceFile:
		return dataset.FileSource{
			ReviewsPath: cfg.ReviewsPath,
			TopicsPath:  cfg.TopicsPath,
		}, nil
	case config.DataSourceDynamoDB:
		client, err := clients.NewDynamoDBClient(ctx, cfg.AWSRegion, cfg.AWSEndpoint)
		if err != nil {
			return nil, err
		}
		return dataset.DynamoDBSource{
			Client:       client,
			ReviewsTable: cfg.ReviewsTableName,
			TopicsTable:  cfg.TopicsTableName,
		}, nil
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.DataSource)
	}
}

func loadDataset(ctx context.Context, cfg config.Config) (dataset.Dataset, error) {
	src, err := newSource(ctx, cfg)
	if err != nil {
		return dataset.Dataset{}, err
	}
	return dataset.Load(ctx, src)
}

func newStore(ctx context.Context, cfg config.Config) (selection.Store, error) {
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		return selection.NewMemoryStore(cfg.SessionTTL), nil
	case config.SessionStoreValkey:
		client, err := clients.NewValkeyClient(ctx, clients.ValkeyOptions{
			Address:  cfg.ValkeyAddress,
			Password: cfg.ValkeyPassword,
			TLS:      cfg.ValkeyTLS,
		})
		if err != nil {
			return nil, err
		}
		return selection.NewValkeyStore(client, cfg.SessionTTL), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}
}
