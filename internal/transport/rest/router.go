package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/config"
	"github.com/heartmarshall/gamecatalog-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

type httpObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
	ObservePanic(route string)
}

// Handlers groups every endpoint handler mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Users         *UserHandler
	Catalog       *CatalogHandler
	Reviews       *ReviewHandler
	Favorites     *FavoriteHandler
	Notifications *NotificationHandler
	Suggestions   *SuggestionHandler
}

// RouterDeps carries the cross-cutting pieces of the HTTP stack.
type RouterDeps struct {
	Logger            *slog.Logger
	CORS              config.CORSConfig
	Tokens            tokenValidator
	Observer          httpObserver
	MetricsHandler    http.Handler
	RateLimiter       *middleware.RateLimiter
	RequestsPerMinute int
}

// NewRouter builds the HTTP API. Probes and /metrics are mounted outside
// the rate limiter. Reads of the public catalog need no token; everything
// else requires authentication and catalog writes the admin role.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger, deps.Observer),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)
	if deps.Observer != nil {
		r.Use(middleware.Metrics(deps.Observer))
	}

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if deps.RateLimiter != nil {
			api.Use(deps.RateLimiter.Limit(deps.RequestsPerMinute))
		}
		api.Use(middleware.Auth(deps.Tokens))

		api.Post("/auth/telegram", h.Auth.TelegramLogin)

		// Public catalog reads.
		api.Get("/games", h.Catalog.ListGames)
		api.Get("/games/{id}", h.Catalog.GetGame)
		api.Get("/genres", h.Catalog.ListGenres)
		api.Get("/screenshots", h.Catalog.ListScreenshots)
		api.Get("/reviews", h.Reviews.ListReviews)
		api.Get("/review-replies", h.Reviews.ListReplies)
		api.Get("/review-reactions", h.Reviews.GetReactions)

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAuth())

			pr.Get("/users/me", h.Users.Me)
			pr.Get("/users/{id}", h.Users.Get)
			pr.Put("/users/{id}", h.Users.Update)

			pr.Post("/reviews", h.Reviews.SubmitReview)
			pr.Put("/reviews/{id}", h.Reviews.UpdateReview)
			pr.Delete("/reviews/{id}", h.Reviews.DeleteReview)

			pr.Post("/review-replies", h.Reviews.CreateReply)
			pr.Delete("/review-replies/{id}", h.Reviews.DeleteReply)

			pr.Post("/review-reactions", h.Reviews.React)
			pr.Delete("/review-reactions", h.Reviews.Unreact)

			pr.Get("/favorites", h.Favorites.List)
			pr.Get("/favorites/check", h.Favorites.Check)
			pr.Post("/favorites", h.Favorites.Add)
			pr.Delete("/favorites", h.Favorites.Remove)

			pr.Get("/notifications", h.Notifications.List)
			pr.Put("/notifications/read-all", h.Notifications.MarkAllRead)
			pr.Put("/notifications/{id}", h.Notifications.MarkRead)
			pr.Delete("/notifications", h.Notifications.DeleteAll)
			pr.Delete("/notifications/{id}", h.Notifications.Delete)

			pr.Get("/game-suggestions", h.Suggestions.List)
			pr.Post("/game-suggestions", h.Suggestions.Create)
		})

		api.Group(func(ad chi.Router) {
			ad.Use(middleware.RequireAdmin())

			ad.Get("/users", h.Users.List)

			ad.Post("/games", h.Catalog.CreateGame)
			ad.Put("/games/{id}", h.Catalog.UpdateGame)
			ad.Delete("/games/{id}", h.Catalog.DeleteGame)

			ad.Post("/genres", h.Catalog.CreateGenre)
			ad.Put("/genres/{id}", h.Catalog.RenameGenre)
			ad.Delete("/genres/{id}", h.Catalog.DeleteGenre)

			ad.Post("/screenshots", h.Catalog.AddScreenshots)
			ad.Delete("/screenshots/{id}", h.Catalog.DeleteScreenshot)

			ad.Put("/game-suggestions/{id}", h.Suggestions.Review)
		})

		api.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "route not found")
		})
	})

	return r
}
