package catalog

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListFunc    func(ctx context.Context, limit int) ([]domain.Entry, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	CreateFunc  func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	UpdateFunc  func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	CountFunc   func(ctx context.Context) (int64, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Limit int
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			E   *domain.Entry
		}
		Update []struct {
			Ctx context.Context
			E   *domain.Entry
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *entryRepoMock) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
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

func (mock *entryRepoMock) GetByIDCalls() []struct {
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

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Entry
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Entry
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, e)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	E   *domain.Entry
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Entry
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) Count(ctx context.Context) (int64, error) {
	if mock.CountFunc == nil {
		panic("entryRepoMock.CountFunc: method is nil but entryRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *entryRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
