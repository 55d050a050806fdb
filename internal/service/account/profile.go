package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

// Me returns the calling account with its statistics.
func (s *Service) Me(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.GetProfile(ctx, userID)
}

// GetProfile returns any account with its statistics.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account.GetProfile: %w", err)
	}

	stats, err := s.Stats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Profile{Account: acc, Stats: *stats, IsAdmin: s.cfg.IsAdmin(acc.TelegramID)}, nil
}

// Stats aggregates review and favorite counts for an account. Both
// aggregates are loaded concurrently.
func (s *Service) Stats(ctx context.Context, id uuid.UUID) (*domain.AccountStats, error) {
	var stats domain.AccountStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		avg, total, err := s.ratings.SummaryByAccount(gctx, id)
		if err != nil {
			return fmt.Errorf("review summary: %w", err)
		}
		stats.AverageRating = avg
		stats.TotalRatings = total
		return nil
	})
	g.Go(func() error {
		n, err := s.favorites.CountByAccount(gctx, id)
		if err != nil {
			return fmt.Errorf("favorite count: %w", err)
		}
		stats.TotalFavorites = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("account.Stats: %w", err)
	}

	return &stats, nil
}

// List returns every account. Admin only.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("account.List: %w", err)
	}
	return accounts, nil
}

// UpdateProfile edits display fields of an account. Users may edit only
// themselves; admins may edit anyone.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.Account, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if userID != id && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account.UpdateProfile get: %w", err)
	}

	patch := domain.AccountProfile{
		Username:  current.Username,
		FirstName: current.FirstName,
		LastName:  current.LastName,
		AvatarURL: current.AvatarURL,
	}
	if input.Username != nil {
		patch.Username = input.Username
	}
	if input.FirstName != nil {
		patch.FirstName = input.FirstName
	}
	if input.LastName != nil {
		patch.LastName = input.LastName
	}
	if input.AvatarURL != nil {
		patch.AvatarURL = input.AvatarURL
	}

	updated, err := s.accounts.UpdateProfile(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", id.String()),
		slog.String("by", userID.String()),
	)
	return updated, nil
}
