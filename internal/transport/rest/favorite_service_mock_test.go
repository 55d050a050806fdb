package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ favoriteService = &favoriteServiceMock{}

type favoriteServiceMock struct {
	ListFunc       func(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error)
	AddFunc        func(ctx context.Context, entryID uuid.UUID) (*domain.Favorite, error)
	RemoveFunc     func(ctx context.Context, entryID uuid.UUID) error
	IsFavoriteFunc func(ctx context.Context, entryID uuid.UUID) (bool, error)

	calls struct {
		List []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		Add []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		Remove []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		IsFavorite []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
	}
	lockList       sync.RWMutex
	lockAdd        sync.RWMutex
	lockRemove     sync.RWMutex
	lockIsFavorite sync.RWMutex
}

func (mock *favoriteServiceMock) List(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error) {
	if mock.ListFunc == nil {
		panic("favoriteServiceMock.ListFunc: method is nil but favoriteService.List was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, accountID)
}

func (mock *favoriteServiceMock) ListCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) Add(ctx context.Context, entryID uuid.UUID) (*domain.Favorite, error) {
	if mock.AddFunc == nil {
		panic("favoriteServiceMock.AddFunc: method is nil but favoriteService.Add was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, entryID)
}

func (mock *favoriteServiceMock) AddCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) Remove(ctx context.Context, entryID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("favoriteServiceMock.RemoveFunc: method is nil but favoriteService.Remove was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, entryID)
}

func (mock *favoriteServiceMock) RemoveCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) IsFavorite(ctx context.Context, entryID uuid.UUID) (bool, error) {
	if mock.IsFavoriteFunc == nil {
		panic("favoriteServiceMock.IsFavoriteFunc: method is nil but favoriteService.IsFavorite was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockIsFavorite.Lock()
	mock.calls.IsFavorite = append(mock.calls.IsFavorite, callInfo)
	mock.lockIsFavorite.Unlock()
	return mock.IsFavoriteFunc(ctx, entryID)
}

func (mock *favoriteServiceMock) IsFavoriteCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockIsFavorite.RLock()
	calls = mock.calls.IsFavorite
	mock.lockIsFavorite.RUnlock()
	return calls
}
