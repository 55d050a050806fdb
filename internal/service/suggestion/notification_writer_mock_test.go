package suggestion

import (
	"context"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ notificationWriter = &notificationWriterMock{}

type notificationWriterMock struct {
	CreateFunc func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			N   *domain.Notification
		}
	}
	lockCreate sync.RWMutex
}

func (mock *notificationWriterMock) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if mock.CreateFunc == nil {
		panic("notificationWriterMock.CreateFunc: method is nil but notificationWriter.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Notification
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *notificationWriterMock) CreateCalls() []struct {
	Ctx context.Context
	N   *domain.Notification
} {
	var calls []struct {
		Ctx context.Context
		N   *domain.Notification
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
