package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/config"
)

// Migrate runs one goose command ("up", "down" or "status") and logs the result.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	switch command {
	case "up":
		applied, err := m.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	case "down":
		if err := m.Down(ctx); err != nil {
			return err
		}
		logger.Info("last migration rolled back")
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Version),
				slog.String("source", s.Source),
				slog.Bool("applied", s.Applied),
			)
		}
	default:
		return &UnknownCommandError{Command: command}
	}
	return nil
}

// UnknownCommandError is returned by Migrate for an unsupported command.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown migrate command %q", e.Command)
}

// CleanupNotifications deletes read notifications older than the retention
// period. It is meant to be run from an external scheduler.
func CleanupNotifications(ctx context.Context, cfg *config.Config, logger *slog.Logger) (int, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return 0, err
	}
	defer c.Close()

	removed, err := c.Notifications.Cleanup(ctx)
	if err != nil {
		logger.Error("notification cleanup failed", slog.String("error", err.Error()))
		return 0, err
	}
	logger.Info("notification cleanup completed",
		slog.Int("removed", removed),
		slog.Int("retention_days", cfg.Notification.RetentionDays),
	)
	return removed, nil
}
