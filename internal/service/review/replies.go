package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// ListReplies returns the replies to a rating, oldest first.
func (s *Service) ListReplies(ctx context.Context, ratingID uuid.UUID) ([]domain.ReplyView, error) {
	views, err := s.replies.ListByRating(ctx, ratingID)
	if err != nil {
		return nil, fmt.Errorf("review.ListReplies: %w", err)
	}
	return views, nil
}

// CreateReply answers a rating. The rating's author receives a
// reply_received notification unless they are replying to themselves.
func (s *Service) CreateReply(ctx context.Context, input CreateReplyInput) (*domain.Reply, error) {
	acc, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var reply *domain.Reply
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rating, getErr := s.ratings.GetByID(ctx, input.RatingID)
		if getErr != nil {
			return fmt.Errorf("get rating: %w", getErr)
		}

		created, createErr := s.replies.Create(ctx, &domain.Reply{
			RatingID:  input.RatingID,
			AccountID: acc.ID,
			Comment:   strings.TrimSpace(input.Comment),
		})
		if createErr != nil {
			return fmt.Errorf("create reply: %w", createErr)
		}
		reply = created

		if rating.AccountID == acc.ID {
			return nil
		}

		entry, getErr := s.entries.GetByID(ctx, rating.EntryID)
		if getErr != nil {
			return fmt.Errorf("get game: %w", getErr)
		}

		from := acc.DisplayName()
		title := entry.Title
		if _, notifyErr := s.notifications.Create(ctx, &domain.Notification{
			AccountID:  rating.AccountID,
			Type:       domain.NotificationReplyReceived,
			Title:      "New reply",
			Message:    fmt.Sprintf("%s replied to your review of %s.", from, title),
			EntryTitle: &title,
			FromUser:   &from,
		}); notifyErr != nil {
			return fmt.Errorf("create notification: %w", notifyErr)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("review.CreateReply: %w", err)
	}

	s.log.InfoContext(ctx, "reply created",
		slog.String("user_id", acc.ID.String()),
		slog.String("review_id", input.RatingID.String()),
	)
	return reply, nil
}

// DeleteReply removes a reply. Authors delete their own replies; admins
// delete any.
func (s *Service) DeleteReply(ctx context.Context, id uuid.UUID) error {
	current, err := s.replies.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("review.DeleteReply get: %w", err)
	}

	ok, err := canModify(ctx, current.AccountID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}

	if err := s.replies.Delete(ctx, id); err != nil {
		return fmt.Errorf("review.DeleteReply: %w", err)
	}
	return nil
}
