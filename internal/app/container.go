package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/account"
	categoryrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/category"
	entryrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/entry"
	favoriterepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/favorite"
	notificationrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	ratingrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/rating"
	reactionrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/reaction"
	replyrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/reply"
	screenshotrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/screenshot"
	suggestionrepo "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/suggestion"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/provider/telegram"
	"github.com/heartmarshall/gamecatalog-backend/internal/auth"
	"github.com/heartmarshall/gamecatalog-backend/internal/config"
	"github.com/heartmarshall/gamecatalog-backend/internal/metrics"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/account"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/catalog"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/favorite"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/notification"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/review"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/suggestion"
	"github.com/heartmarshall/gamecatalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/gamecatalog-backend/internal/transport/rest"
)

// Container owns the pool and every long-lived component built on it.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Pool    *pgxpool.Pool
	Query   *query.Client
	Metrics *metrics.Metrics

	Accounts      *account.Service
	Catalog       *catalog.Service
	Reviews       *review.Service
	Favorites     *favorite.Service
	Notifications *notification.Service
	Suggestions   *suggestion.Service
}

// NewContainer connects to the database and wires repositories and
// services. Close releases the pool.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return newContainer(pool, cfg, logger), nil
}

func newContainer(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *Container {
	m := metrics.New()
	m.RegisterPool(pool)

	q := query.New(pool,
		query.WithAcquireTimeout(cfg.Database.AcquireTimeout),
		query.WithAtomicBatchInsert(cfg.Database.AtomicBatchInsert),
		query.WithObserver(m),
		query.WithLogger(logger),
	)

	accounts := accountrepo.New(q)
	entries := entryrepo.New(q)
	categories := categoryrepo.New(q)
	screenshots := screenshotrepo.New(q)
	ratings := ratingrepo.New(q)
	replies := replyrepo.New(q)
	reactions := reactionrepo.New(q)
	favorites := favoriterepo.New(q)
	notifications := notificationrepo.New(q)
	suggestions := suggestionrepo.New(q)

	verifier := telegram.NewVerifier(cfg.Auth.TelegramBotToken, cfg.Auth.InitDataMaxAge, logger)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Pool:    pool,
		Query:   q,
		Metrics: m,

		Accounts:      account.NewService(logger, accounts, ratings, favorites, verifier, jwt, cfg.Auth),
		Catalog:       catalog.NewService(logger, entries, categories, screenshots, ratings),
		Reviews:       review.NewService(logger, ratings, replies, reactions, accounts, entries, notifications, q, cfg.Auth),
		Favorites:     favorite.NewService(logger, favorites),
		Notifications: notification.NewService(logger, notifications, m, cfg.Notification),
		Suggestions:   suggestion.NewService(logger, suggestions, notifications, q, cfg.Suggestion.Cooldown),
	}
}

// Handler builds the HTTP API. The returned stop func ends the rate
// limiter's background sweep.
func (c *Container) Handler() (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(c.Config.RateLimit.CleanupInterval,
		middleware.WithLimitHook(c.Metrics.ObserveRateLimited),
	)

	h := rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(c.Pool, BuildVersion()),
		Auth:          rest.NewAuthHandler(c.Accounts, c.Logger),
		Users:         rest.NewUserHandler(c.Accounts, c.Logger),
		Catalog:       rest.NewCatalogHandler(c.Catalog, c.Logger),
		Reviews:       rest.NewReviewHandler(c.Reviews, c.Logger),
		Favorites:     rest.NewFavoriteHandler(c.Favorites, c.Logger),
		Notifications: rest.NewNotificationHandler(c.Notifications, c.Logger),
		Suggestions:   rest.NewSuggestionHandler(c.Suggestions, c.Logger),
	}, rest.RouterDeps{
		Logger:            c.Logger,
		CORS:              c.Config.CORS,
		Tokens:            c.Accounts,
		Observer:          c.Metrics,
		MetricsHandler:    c.Metrics.Handler(),
		RateLimiter:       limiter,
		RequestsPerMinute: c.Config.RateLimit.RequestsPerMinute,
	})
	return h, limiter.Stop
}

// Migrator returns a goose migrator over the container's pool.
func (c *Container) Migrator() (*postgres.Migrator, error) {
	return postgres.NewMigrator(c.Pool)
}

// Close releases the pool.
func (c *Container) Close() {
	c.Pool.Close()
}
