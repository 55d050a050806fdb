package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/auth"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// Login verifies Telegram init data, creates or refreshes the account and
// issues an access token.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.verifier.Verify(ctx, input.InitData)
	if err != nil {
		s.log.WarnContext(ctx, "telegram init data rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("verify init data: %w", err)
	}

	acc, err := s.upsertAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	role := s.roleFor(acc.TelegramID)
	token, err := s.jwt.GenerateAccessToken(acc.ID, acc.TelegramID, role)
	if err != nil {
		return nil, fmt.Errorf("account.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", acc.ID.String()),
		slog.Int64("telegram_id", acc.TelegramID),
		slog.String("role", role.String()),
	)

	return &LoginResult{AccessToken: token, Account: acc, IsAdmin: role.IsAdmin()}, nil
}

func (s *Service) upsertAccount(ctx context.Context, identity *auth.TelegramIdentity) (*domain.Account, error) {
	acc, err := s.accounts.GetByTelegramID(ctx, identity.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		lang := "en"
		if identity.LanguageCode != nil && *identity.LanguageCode != "" {
			lang = *identity.LanguageCode
		}
		created, createErr := s.accounts.Create(ctx, &domain.Account{
			TelegramID: identity.ID,
			Username:   identity.Username,
			FirstName:  identity.FirstName,
			LastName:   identity.LastName,
			AvatarURL:  identity.PhotoURL,
			Language:   lang,
		})
		if createErr != nil {
			return nil, fmt.Errorf("account.Login create user: %w", createErr)
		}
		s.log.InfoContext(ctx, "user registered", slog.String("user_id", created.ID.String()))
		return created, nil
	case err != nil:
		return nil, fmt.Errorf("account.Login get user: %w", err)
	}

	if !profileChanged(acc, identity) {
		return acc, nil
	}

	updated, err := s.accounts.UpdateProfile(ctx, acc.ID, domain.AccountProfile{
		Username:  identity.Username,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		AvatarURL: identity.PhotoURL,
	})
	if err != nil {
		return nil, fmt.Errorf("account.Login update profile: %w", err)
	}
	return updated, nil
}

// ValidateToken validates an access token and returns the account id and role.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	id, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return id, role.String(), nil
}
