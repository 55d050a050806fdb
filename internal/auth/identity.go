package auth

// TelegramIdentity is the user described by verified Telegram WebApp init data.
type TelegramIdentity struct {
	ID           int64
	Username     *string
	FirstName    *string
	LastName     *string
	PhotoURL     *string
	LanguageCode *string
}
