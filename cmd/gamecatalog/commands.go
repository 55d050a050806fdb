package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/gamecatalog-backend/internal/app"
	"github.com/heartmarshall/gamecatalog-backend/internal/config"
)

type envKey struct{}

type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func envFrom(cmd *cobra.Command) env {
	return cmd.Context().Value(envKey{}).(env)
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "gamecatalog",
		Short:         "Game catalog and review API",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			cfg, err := config.LoadFrom(cfgFile)
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, env{cfg: cfg, logger: logger}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newCleanupCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := envFrom(cmd)
			return app.Serve(cmd.Context(), e.cfg, e.logger, app.ServeOptions{Migrate: migrate})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down|status",
		Short:     "Manage the database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			return app.Migrate(ctx, e.cfg, e.logger, args[0])
		},
	}
}

func newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete read notifications past the retention period",
		Long: `Delete read notifications older than notification.retention_days.
Intended to be invoked by an external cron job, not as an in-process goroutine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := envFrom(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			_, err := app.CleanupNotifications(ctx, e.cfg, e.logger)
			return err
		},
	}
}
