package account

import "github.com/heartmarshall/gamecatalog-backend/internal/domain"

// LoginResult is returned by a successful Telegram login.
type LoginResult struct {
	AccessToken string          `json:"token"`
	Account     *domain.Account `json:"user"`
	IsAdmin     bool            `json:"is_admin"`
}

// Profile is an account together with its activity summary.
type Profile struct {
	Account *domain.Account     `json:"user"`
	Stats   domain.AccountStats `json:"stats"`
	IsAdmin bool                `json:"is_admin"`
}
