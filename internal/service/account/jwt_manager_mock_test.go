package account

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(accountID uuid.UUID, telegramID int64, role domain.Role) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, domain.Role, error)

	calls struct {
		GenerateAccessToken []struct {
			AccountID  uuid.UUID
			TelegramID int64
			Role       domain.Role
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(accountID uuid.UUID, telegramID int64, role domain.Role) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		AccountID  uuid.UUID
		TelegramID int64
		Role       domain.Role
	}{
		AccountID:  accountID,
		TelegramID: telegramID,
		Role:       role,
	}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(accountID, telegramID, role)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	AccountID  uuid.UUID
	TelegramID int64
	Role       domain.Role
} {
	var calls []struct {
		AccountID  uuid.UUID
		TelegramID int64
		Role       domain.Role
	}
	mock.lockGenerateAccessToken.RLock()
	calls = mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, domain.Role, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidateAccessToken.RLock()
	calls = mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
