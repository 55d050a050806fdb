package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

// ListRatings returns the ratings of a game with their authors, newest first.
func (s *Service) ListRatings(ctx context.Context, entryID uuid.UUID) ([]domain.RatingView, error) {
	views, err := s.ratings.ListByEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("review.ListRatings: %w", err)
	}
	return views, nil
}

// ListAccountRatings returns the ratings written by one account.
func (s *Service) ListAccountRatings(ctx context.Context, accountID uuid.UUID) ([]domain.Rating, error) {
	ratings, err := s.ratings.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("review.ListAccountRatings: %w", err)
	}
	return ratings, nil
}

// SubmitRating rates a game. A second submission for the same game
// rewrites the caller's existing rating instead of adding one. The first
// submission stores a review_submitted notification for the author in the
// same transaction.
func (s *Service) SubmitRating(ctx context.Context, input SubmitRatingInput) (*domain.Rating, error) {
	acc, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	comment := strings.TrimSpace(input.Comment)

	var result *domain.Rating
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, findErr := s.ratings.FindByAccountEntry(ctx, acc.ID, input.EntryID)
		switch {
		case findErr == nil:
			updated, updErr := s.ratings.Update(ctx, existing.ID, input.Score, comment)
			if updErr != nil {
				return fmt.Errorf("update rating: %w", updErr)
			}
			result = updated
			return nil
		case !errors.Is(findErr, domain.ErrNotFound):
			return fmt.Errorf("find rating: %w", findErr)
		}

		entry, getErr := s.entries.GetByID(ctx, input.EntryID)
		if getErr != nil {
			return fmt.Errorf("get game: %w", getErr)
		}

		created, createErr := s.ratings.Create(ctx, &domain.Rating{
			AccountID: acc.ID,
			EntryID:   input.EntryID,
			Score:     input.Score,
			Comment:   comment,
		})
		if createErr != nil {
			return fmt.Errorf("create rating: %w", createErr)
		}

		title := entry.Title
		if _, notifyErr := s.notifications.Create(ctx, &domain.Notification{
			AccountID:  acc.ID,
			Type:       domain.NotificationReviewSubmitted,
			Title:      "Review submitted",
			Message:    fmt.Sprintf("Your review of %s has been published.", title),
			EntryTitle: &title,
		}); notifyErr != nil {
			return fmt.Errorf("create notification: %w", notifyErr)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("review.SubmitRating: %w", err)
	}

	s.log.InfoContext(ctx, "rating submitted",
		slog.String("user_id", acc.ID.String()),
		slog.String("game_id", input.EntryID.String()),
		slog.String("review_id", result.ID.String()),
		slog.Int("rating", result.Score),
	)
	return result, nil
}

// UpdateRating rewrites a rating. Only its author may edit it.
func (s *Service) UpdateRating(ctx context.Context, id uuid.UUID, input UpdateRatingInput) (*domain.Rating, error) {
	acc, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review.UpdateRating get: %w", err)
	}
	if current.AccountID != acc.ID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.ratings.Update(ctx, id, input.Score, strings.TrimSpace(input.Comment))
	if err != nil {
		return nil, fmt.Errorf("review.UpdateRating: %w", err)
	}
	return updated, nil
}

// DeleteRating removes a rating with its replies and reactions. Authors
// delete their own ratings; admins delete any.
func (s *Service) DeleteRating(ctx context.Context, id uuid.UUID) error {
	current, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("review.DeleteRating get: %w", err)
	}

	ok, err := canModify(ctx, current.AccountID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}

	if err := s.ratings.Delete(ctx, id); err != nil {
		return fmt.Errorf("review.DeleteRating: %w", err)
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "rating deleted",
		slog.String("review_id", id.String()),
		slog.String("by", userID.String()),
	)
	return nil
}
