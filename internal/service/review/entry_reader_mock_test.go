package review

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ entryReader = &entryReaderMock{}

type entryReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *entryReaderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryReaderMock.GetByIDFunc: method is nil but entryReader.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
