package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

// React records the caller's vote on a rating, replacing any previous vote.
func (s *Service) React(ctx context.Context, input ReactInput) (*domain.Reaction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reaction, err := s.reactions.Set(ctx, input.RatingID, userID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("review.React: %w", err)
	}
	return reaction, nil
}

// Unreact withdraws the caller's vote. Withdrawing a missing vote is a no-op.
func (s *Service) Unreact(ctx context.Context, ratingID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.reactions.Remove(ctx, ratingID, userID); err != nil {
		return fmt.Errorf("review.Unreact: %w", err)
	}
	return nil
}

// MyReaction returns the caller's vote on a rating, or nil when there is none.
func (s *Service) MyReaction(ctx context.Context, ratingID uuid.UUID) (*domain.Reaction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	reaction, err := s.reactions.Get(ctx, ratingID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("review.MyReaction: %w", err)
	}
	return reaction, nil
}

// ReactionSummary counts the likes and dislikes of a rating.
func (s *Service) ReactionSummary(ctx context.Context, ratingID uuid.UUID) (domain.ReactionSummary, error) {
	sum, err := s.reactions.Summary(ctx, ratingID)
	if err != nil {
		return domain.ReactionSummary{}, fmt.Errorf("review.ReactionSummary: %w", err)
	}
	return sum, nil
}
