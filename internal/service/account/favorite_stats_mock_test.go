package account

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ favoriteStats = &favoriteStatsMock{}

type favoriteStatsMock struct {
	CountByAccountFunc func(ctx context.Context, accountID uuid.UUID) (int64, error)

	calls struct {
		CountByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
	}
	lockCountByAccount sync.RWMutex
}

func (mock *favoriteStatsMock) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	if mock.CountByAccountFunc == nil {
		panic("favoriteStatsMock.CountByAccountFunc: method is nil but favoriteStats.CountByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
	}
	mock.lockCountByAccount.Lock()
	mock.calls.CountByAccount = append(mock.calls.CountByAccount, callInfo)
	mock.lockCountByAccount.Unlock()
	return mock.CountByAccountFunc(ctx, accountID)
}

func (mock *favoriteStatsMock) CountByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}
	mock.lockCountByAccount.RLock()
	calls = mock.calls.CountByAccount
	mock.lockCountByAccount.RUnlock()
	return calls
}
