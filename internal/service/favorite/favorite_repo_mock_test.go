package favorite

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	ListEntriesFunc func(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error)
	AddFunc         func(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) (*domain.Favorite, error)
	RemoveFunc      func(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) error
	ExistsFunc      func(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) (bool, error)

	calls struct {
		ListEntries []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		Add []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			EntryID   uuid.UUID
		}
		Remove []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			EntryID   uuid.UUID
		}
		Exists []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			EntryID   uuid.UUID
		}
	}
	lockListEntries sync.RWMutex
	lockAdd         sync.RWMutex
	lockRemove      sync.RWMutex
	lockExists      sync.RWMutex
}

func (mock *favoriteRepoMock) ListEntries(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error) {
	if mock.ListEntriesFunc == nil {
		panic("favoriteRepoMock.ListEntriesFunc: method is nil but favoriteRepo.ListEntries was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
	}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, accountID)
}

func (mock *favoriteRepoMock) ListEntriesCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}
	mock.lockListEntries.RLock()
	calls = mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Add(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) (*domain.Favorite, error) {
	if mock.AddFunc == nil {
		panic("favoriteRepoMock.AddFunc: method is nil but favoriteRepo.Add was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		EntryID   uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
		EntryID:   entryID,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, accountID, entryID)
}

func (mock *favoriteRepoMock) AddCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	EntryID   uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
		EntryID   uuid.UUID
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Remove(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("favoriteRepoMock.RemoveFunc: method is nil but favoriteRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		EntryID   uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
		EntryID:   entryID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, accountID, entryID)
}

func (mock *favoriteRepoMock) RemoveCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	EntryID   uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
		EntryID   uuid.UUID
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Exists(ctx context.Context, accountID uuid.UUID, entryID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("favoriteRepoMock.ExistsFunc: method is nil but favoriteRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		EntryID   uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
		EntryID:   entryID,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, accountID, entryID)
}

func (mock *favoriteRepoMock) ExistsCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	EntryID   uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
		EntryID   uuid.UUID
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
