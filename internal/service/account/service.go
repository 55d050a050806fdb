package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/auth"
	"github.com/heartmarshall/gamecatalog-backend/internal/config"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// accountRepo defines the user repository interface needed by the account service.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p domain.AccountProfile) (*domain.Account, error)
}

// ratingStats provides per-user review aggregates.
type ratingStats interface {
	SummaryByAccount(ctx context.Context, accountID uuid.UUID) (float64, int64, error)
}

// favoriteStats provides per-user favorite counts.
type favoriteStats interface {
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// identityVerifier checks Telegram Web App init data.
type identityVerifier interface {
	Verify(ctx context.Context, initData string) (*auth.TelegramIdentity, error)
}

// jwtManager defines the access token operations needed by the account service.
type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID, telegramID int64, role domain.Role) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.Role, error)
}

// Service implements login, profile and account statistics.
type Service struct {
	log       *slog.Logger
	accounts  accountRepo
	ratings   ratingStats
	favorites favoriteStats
	verifier  identityVerifier
	jwt       jwtManager
	cfg       config.AuthConfig
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	ratings ratingStats,
	favorites favoriteStats,
	verifier identityVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "account"),
		accounts:  accounts,
		ratings:   ratings,
		favorites: favorites,
		verifier:  verifier,
		jwt:       jwt,
		cfg:       cfg,
	}
}

func (s *Service) roleFor(telegramID int64) domain.Role {
	if s.cfg.IsAdmin(telegramID) {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func ptrStringNotEqual(a, b *string) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil || b == nil {
		return true
	}
	return *a != *b
}

func profileChanged(a *domain.Account, id *auth.TelegramIdentity) bool {
	return ptrStringNotEqual(a.Username, id.Username) ||
		ptrStringNotEqual(a.FirstName, id.FirstName) ||
		ptrStringNotEqual(a.LastName, id.LastName) ||
		ptrStringNotEqual(a.AvatarURL, id.PhotoURL)
}
