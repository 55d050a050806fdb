package account

import (
	"strings"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// LoginInput carries the raw Telegram Web App init data.
type LoginInput struct {
	InitData string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	if strings.TrimSpace(i.InitData) == "" {
		return domain.NewValidationError("init_data", "required")
	}
	return nil
}

// UpdateProfileInput holds editable display fields. Nil leaves a field unchanged.
type UpdateProfileInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil && len(*i.Username) > 64 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 64 characters"})
	}
	if i.FirstName != nil && len(*i.FirstName) > 128 {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "max 128 characters"})
	}
	if i.LastName != nil && len(*i.LastName) > 128 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "max 128 characters"})
	}
	if i.AvatarURL != nil && *i.AvatarURL != "" && !strings.HasPrefix(*i.AvatarURL, "https://") {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "must be an https URL"})
	}

	return domain.NewValidationErrors(errs)
}
