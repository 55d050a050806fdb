package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/config"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

type ratingRepo interface {
	ListByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.RatingView, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Rating, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error)
	FindByAccountEntry(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) (*domain.Rating, error)
	Create(ctx context.Context, rt *domain.Rating) (*domain.Rating, error)
	Update(ctx context.Context, id uuid.UUID, score int, comment string) (*domain.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type replyRepo interface {
	ListByRating(ctx context.Context, ratingID uuid.UUID) ([]domain.ReplyView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error)
	Create(ctx context.Context, rp *domain.Reply) (*domain.Reply, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reactionRepo interface {
	Set(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID, kind domain.ReactionKind) (*domain.Reaction, error)
	Get(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID) (*domain.Reaction, error)
	Remove(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID) error
	Summary(ctx context.Context, ratingID uuid.UUID) (domain.ReactionSummary, error)
}

type accountReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

type entryReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
}

type notificationWriter interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages ratings, their replies and reactions.
type Service struct {
	log           *slog.Logger
	ratings       ratingRepo
	replies       replyRepo
	reactions     reactionRepo
	accounts      accountReader
	entries       entryReader
	notifications notificationWriter
	tx            txManager
	cfg           config.AuthConfig
}

// NewService creates a new review service.
func NewService(
	logger *slog.Logger,
	ratings ratingRepo,
	replies replyRepo,
	reactions reactionRepo,
	accounts accountReader,
	entries entryReader,
	notifications notificationWriter,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "review"),
		ratings:       ratings,
		replies:       replies,
		reactions:     reactions,
		accounts:      accounts,
		entries:       entries,
		notifications: notifications,
		tx:            tx,
		cfg:           cfg,
	}
}

// writer loads the calling account and rejects restricted usernames.
func (s *Service) writer(ctx context.Context) (*domain.Account, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	acc, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}
	if acc.Username != nil && s.cfg.IsRestricted(*acc.Username) {
		s.log.WarnContext(ctx, "restricted account attempted a write",
			slog.String("user_id", userID.String()),
			slog.String("username", *acc.Username),
		)
		return nil, domain.ErrForbidden
	}
	return acc, nil
}

// canModify reports whether the caller owns the resource or is an admin.
func canModify(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	return userID == ownerID || ctxutil.IsAdminCtx(ctx), nil
}
