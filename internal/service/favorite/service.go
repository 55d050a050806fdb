package favorite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

type favoriteRepo interface {
	ListEntries(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error)
	Add(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) (*domain.Favorite, error)
	Remove(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) error
	Exists(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) (bool, error)
}

// Service manages an account's favorite games.
type Service struct {
	log       *slog.Logger
	favorites favoriteRepo
}

// NewService creates a new favorite service.
func NewService(logger *slog.Logger, favorites favoriteRepo) *Service {
	return &Service{
		log:       logger.With("service", "favorite"),
		favorites: favorites,
	}
}

// List returns the games an account marked as favorite, most recent first.
func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error) {
	entries, err := s.favorites.ListEntries(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("favorite.List: %w", err)
	}
	return entries, nil
}

// Add marks a game as favorite for the caller. Adding twice yields
// domain.ErrAlreadyExists; an unknown game domain.ErrNotFound.
func (s *Service) Add(ctx context.Context, entryID uuid.UUID) (*domain.Favorite, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("game_id", "required")
	}

	fav, err := s.favorites.Add(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("favorite.Add: %w", err)
	}

	s.log.InfoContext(ctx, "favorite added",
		slog.String("user_id", userID.String()),
		slog.String("game_id", entryID.String()),
	)
	return fav, nil
}

// Remove unmarks a game for the caller.
func (s *Service) Remove(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.favorites.Remove(ctx, userID, entryID); err != nil {
		return fmt.Errorf("favorite.Remove: %w", err)
	}
	return nil
}

// IsFavorite reports whether the caller marked the game.
func (s *Service) IsFavorite(ctx context.Context, entryID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	exists, err := s.favorites.Exists(ctx, userID, entryID)
	if err != nil {
		return false, fmt.Errorf("favorite.IsFavorite: %w", err)
	}
	return exists, nil
}
