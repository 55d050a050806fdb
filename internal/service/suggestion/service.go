package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

type suggestionRepo interface {
	List(ctx context.Context) ([]domain.SuggestionView, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.SuggestionView, error)
	LatestByAccount(ctx context.Context, accountID uuid.UUID) (*domain.Suggestion, error)
	Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)
	Review(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus, reviewerID uuid.UUID) (*domain.Suggestion, error)
}

type notificationWriter interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages game suggestions and their moderation.
type Service struct {
	log           *slog.Logger
	suggestions   suggestionRepo
	notifications notificationWriter
	tx            txManager
	cooldown      time.Duration
	now           func() time.Time
}

// NewService creates a new suggestion service. A user may suggest at
// most one game per cooldown; zero disables the limit.
func NewService(
	logger *slog.Logger,
	suggestions suggestionRepo,
	notifications notificationWriter,
	tx txManager,
	cooldown time.Duration,
) *Service {
	return &Service{
		log:           logger.With("service", "suggestion"),
		suggestions:   suggestions,
		notifications: notifications,
		tx:            tx,
		cooldown:      cooldown,
		now:           time.Now,
	}
}

// CreateInput holds the parameters for suggesting a game.
type CreateInput struct {
	Title       string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "game_title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "game_title", Message: "max 200 characters"})
	}
	desc := strings.TrimSpace(i.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(desc) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	return domain.NewValidationErrors(errs)
}

// Create stores a pending suggestion from the caller. Administrators add
// games directly and cannot suggest. A second suggestion within the
// cooldown yields domain.ErrTooEarly.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if s.cooldown > 0 {
		last, err := s.suggestions.LatestByAccount(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("suggestion.Create: %w", err)
		}
		if last != nil {
			if wait := last.CreatedAt.Add(s.cooldown).Sub(s.now()); wait > 0 {
				return nil, fmt.Errorf("suggestion.Create: next suggestion in %s: %w",
					wait.Round(time.Minute), domain.ErrTooEarly)
			}
		}
	}

	created, err := s.suggestions.Create(ctx, &domain.Suggestion{
		AccountID:   userID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.SuggestionPending,
	})
	if err != nil {
		return nil, fmt.Errorf("suggestion.Create: %w", err)
	}

	s.log.InfoContext(ctx, "suggestion created",
		slog.String("user_id", userID.String()),
		slog.String("suggestion_id", created.ID.String()),
		slog.String("game_title", created.Title),
	)
	return created, nil
}

// List returns every suggestion for admins and the caller's own otherwise.
func (s *Service) List(ctx context.Context) ([]domain.SuggestionView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		views []domain.SuggestionView
		err   error
	)
	if ctxutil.IsAdminCtx(ctx) {
		views, err = s.suggestions.List(ctx)
	} else {
		views, err = s.suggestions.ListByAccount(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("suggestion.List: %w", err)
	}
	return views, nil
}

// Review approves or rejects a pending suggestion and notifies its author.
// A suggestion is reviewed at most once; later attempts yield
// domain.ErrConflict. Admin only.
func (s *Service) Review(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if !status.IsFinal() {
		return nil, domain.NewValidationError("status", "must be approved or rejected")
	}

	var reviewed *domain.Suggestion
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sg, err := s.suggestions.Review(ctx, id, status, adminID)
		if err != nil {
			return err
		}
		reviewed = sg

		title := sg.Title
		_, err = s.notifications.Create(ctx, &domain.Notification{
			AccountID:  sg.AccountID,
			Type:       domain.NotificationSuggestionReviewed,
			Title:      "Suggestion " + status.String(),
			Message:    fmt.Sprintf("Your suggestion %q was %s.", title, status),
			EntryTitle: &title,
		})
		if err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("suggestion.Review: %w", err)
	}

	s.log.InfoContext(ctx, "suggestion reviewed",
		slog.String("suggestion_id", id.String()),
		slog.String("status", status.String()),
		slog.String("by", adminID.String()),
	)
	return reviewed, nil
}
