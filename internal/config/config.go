package config

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Notification NotificationConfig `yaml:"notification"`
	Suggestion   SuggestionConfig   `yaml:"suggestion"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-ID,X-Total-Count"`
	// WebAppOrigins are allowed on top of AllowedOrigins so the Telegram
	// WebApp can call the API. A leading "*." in the host matches any
	// subdomain.
	WebAppOrigins string `yaml:"webapp_origins" env:"CORS_WEBAPP_ORIGINS" env-default:"https://web.telegram.org"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig holds PostgreSQL connection and pool settings.
// The POSTGRESQL_* variable names are kept for existing deployments.
type DatabaseConfig struct {
	DSN               string        `yaml:"dsn"                 env:"DATABASE_DSN"`
	Host              string        `yaml:"host"                env:"POSTGRESQL_HOST"              env-default:"localhost"`
	Port              int           `yaml:"port"                env:"POSTGRESQL_PORT"              env-default:"5432"`
	User              string        `yaml:"user"                env:"POSTGRESQL_USER"              env-default:"postgres"`
	Password          string        `yaml:"password"            env:"POSTGRESQL_PASSWORD"`
	Name              string        `yaml:"name"                env:"POSTGRESQL_DBNAME"            env-default:"gamecatalog"`
	SSLMode           string        `yaml:"ssl_mode"            env:"POSTGRESQL_SSLMODE"           env-default:"disable"`
	MaxConns          int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"20"`
	MinConns          int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-default:"0"`
	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30s"`
	ConnectTimeout    time.Duration `yaml:"connect_timeout"     env:"DATABASE_CONNECT_TIMEOUT"     env-default:"2s"`
	AcquireTimeout    time.Duration `yaml:"acquire_timeout"     env:"DATABASE_ACQUIRE_TIMEOUT"     env-default:"5s"`
	AtomicBatchInsert bool          `yaml:"atomic_batch_insert" env:"DATABASE_ATOMIC_BATCH_INSERT" env-default:"false"`
}

// ConnString returns DSN when set, otherwise a postgres URL assembled
// from the individual fields.
func (c DatabaseConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}

	q := url.Values{}
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	if c.ConnectTimeout > 0 {
		secs := int(c.ConnectTimeout.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		q.Set("connect_timeout", strconv.Itoa(secs))
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// AuthConfig holds token and Telegram login settings.
type AuthConfig struct {
	JWTSecret           string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer           string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"gamecatalog"`
	AccessTokenTTL      time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"24h"`
	TelegramBotToken    string        `yaml:"telegram_bot_token"   env:"AUTH_TELEGRAM_BOT_TOKEN"   env-required:"true"`
	InitDataMaxAge      time.Duration `yaml:"init_data_max_age"    env:"AUTH_INIT_DATA_MAX_AGE"    env-default:"24h"`
	AdminTelegramIDsRaw string        `yaml:"admin_telegram_ids"   env:"AUTH_ADMIN_TELEGRAM_IDS"`
	RestrictedRaw       string        `yaml:"restricted_usernames" env:"AUTH_RESTRICTED_USERNAMES" env-default:"testuser"`

	// AdminTelegramIDs is parsed from AdminTelegramIDsRaw during validation.
	AdminTelegramIDs []int64 `yaml:"-" env:"-"`
	// RestrictedUsernames is parsed from RestrictedRaw during validation.
	RestrictedUsernames []string `yaml:"-" env:"-"`
}

// IsAdmin reports whether the Telegram id belongs to an administrator.
func (c AuthConfig) IsAdmin(telegramID int64) bool {
	return slices.Contains(c.AdminTelegramIDs, telegramID)
}

// IsRestricted reports whether the username is read-only.
func (c AuthConfig) IsRestricted(username string) bool {
	return username != "" && slices.Contains(c.RestrictedUsernames, strings.ToLower(username))
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// NotificationConfig holds notification listing and retention settings.
type NotificationConfig struct {
	ListLimit     int `yaml:"list_limit"     env:"NOTIFICATION_LIST_LIMIT"     env-default:"50"`
	RetentionDays int `yaml:"retention_days" env:"NOTIFICATION_RETENTION_DAYS" env-default:"30"`
}

// Retention returns RetentionDays as a duration.
func (c NotificationConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// SuggestionConfig holds game suggestion settings.
type SuggestionConfig struct {
	// Cooldown is the minimum gap between two suggestions of one user.
	Cooldown time.Duration `yaml:"cooldown" env:"SUGGESTION_COOLDOWN" env-default:"3h"`
}

func parseIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid telegram id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseNames(raw string) []string {
	var names []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}
