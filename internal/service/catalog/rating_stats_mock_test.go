package catalog

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ ratingStats = &ratingStatsMock{}

type ratingStatsMock struct {
	StatsByEntriesFunc func(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error)

	calls struct {
		StatsByEntries []struct {
			Ctx      context.Context
			EntryIDs []uuid.UUID
		}
	}
	lockStatsByEntries sync.RWMutex
}

func (mock *ratingStatsMock) StatsByEntries(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
	if mock.StatsByEntriesFunc == nil {
		panic("ratingStatsMock.StatsByEntriesFunc: method is nil but ratingStats.StatsByEntries was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		EntryIDs []uuid.UUID
	}{
		Ctx:      ctx,
		EntryIDs: entryIDs,
	}
	mock.lockStatsByEntries.Lock()
	mock.calls.StatsByEntries = append(mock.calls.StatsByEntries, callInfo)
	mock.lockStatsByEntries.Unlock()
	return mock.StatsByEntriesFunc(ctx, entryIDs)
}

func (mock *ratingStatsMock) StatsByEntriesCalls() []struct {
	Ctx      context.Context
	EntryIDs []uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		EntryIDs []uuid.UUID
	}
	mock.lockStatsByEntries.RLock()
	calls = mock.calls.StatsByEntries
	mock.lockStatsByEntries.RUnlock()
	return calls
}
