package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

// MaxListLimit caps the number of games returned by one listing.
const MaxListLimit = 500

type entryRepo interface {
	List(ctx context.Context, limit int) ([]domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ratingStats interface {
	StatsByEntries(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error)
}

type screenshotRepo interface {
	ListByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.Screenshot, error)
	Create(ctx context.Context, entryID uuid.UUID, shots []domain.Screenshot) ([]domain.Screenshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service manages games, genres and screenshots.
type Service struct {
	log         *slog.Logger
	entries     entryRepo
	categories  categoryRepo
	screenshots screenshotRepo
	ratings     ratingStats
}

// NewService creates a new catalog service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	categories categoryRepo,
	screenshots screenshotRepo,
	ratings ratingStats,
) *Service {
	return &Service{
		log:         logger.With("service", "catalog"),
		entries:     entries,
		categories:  categories,
		screenshots: screenshots,
		ratings:     ratings,
	}
}

// requireAdmin returns the caller id when the caller is an administrator.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
