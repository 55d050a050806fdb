package account

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ ratingStats = &ratingStatsMock{}

type ratingStatsMock struct {
	SummaryByAccountFunc func(ctx context.Context, accountID uuid.UUID) (float64, int64, error)

	calls struct {
		SummaryByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
	}
	lockSummaryByAccount sync.RWMutex
}

func (mock *ratingStatsMock) SummaryByAccount(ctx context.Context, accountID uuid.UUID) (float64, int64, error) {
	if mock.SummaryByAccountFunc == nil {
		panic("ratingStatsMock.SummaryByAccountFunc: method is nil but ratingStats.SummaryByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
	}
	mock.lockSummaryByAccount.Lock()
	mock.calls.SummaryByAccount = append(mock.calls.SummaryByAccount, callInfo)
	mock.lockSummaryByAccount.Unlock()
	return mock.SummaryByAccountFunc(ctx, accountID)
}

func (mock *ratingStatsMock) SummaryByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}
	mock.lockSummaryByAccount.RLock()
	calls = mock.calls.SummaryByAccount
	mock.lockSummaryByAccount.RUnlock()
	return calls
}
