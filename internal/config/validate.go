package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration
// and fills the parsed fields. Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.TelegramBotToken) == "" {
		return fmt.Errorf("auth.telegram_bot_token is required")
	}

	ids, err := parseIDs(c.Auth.AdminTelegramIDsRaw)
	if err != nil {
		return fmt.Errorf("auth.admin_telegram_ids: %w", err)
	}
	c.Auth.AdminTelegramIDs = ids
	c.Auth.RestrictedUsernames = parseNames(c.Auth.RestrictedRaw)

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Notification.ListLimit <= 0 {
		return fmt.Errorf("notification.list_limit must be > 0 (got %d)", c.Notification.ListLimit)
	}
	if c.Notification.RetentionDays <= 0 {
		return fmt.Errorf("notification.retention_days must be > 0 (got %d)", c.Notification.RetentionDays)
	}
	if c.Suggestion.Cooldown < 0 {
		return fmt.Errorf("suggestion.cooldown must be >= 0 (got %s)", c.Suggestion.Cooldown)
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.DSN == "" && (d.Host == "" || d.Name == "") {
		return fmt.Errorf("either dsn or host and name must be set")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be within [0, max_conns] (got %d)", d.MinConns)
	}
	if d.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be > 0 (got %s)", d.ConnectTimeout)
	}
	if d.AcquireTimeout < 0 {
		return fmt.Errorf("acquire_timeout must be >= 0 (got %s)", d.AcquireTimeout)
	}
	return nil
}
