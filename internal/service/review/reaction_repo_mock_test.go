package review

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ reactionRepo = &reactionRepoMock{}

type reactionRepoMock struct {
	SetFunc     func(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID, kind domain.ReactionKind) (*domain.Reaction, error)
	GetFunc     func(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID) (*domain.Reaction, error)
	RemoveFunc  func(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID) error
	SummaryFunc func(ctx context.Context, ratingID uuid.UUID) (domain.ReactionSummary, error)

	calls struct {
		Set []struct {
			Ctx       context.Context
			RatingID  uuid.UUID
			AccountID uuid.UUID
			Kind      domain.ReactionKind
		}
		Get []struct {
			Ctx       context.Context
			RatingID  uuid.UUID
			AccountID uuid.UUID
		}
		Remove []struct {
			Ctx       context.Context
			RatingID  uuid.UUID
			AccountID uuid.UUID
		}
		Summary []struct {
			Ctx      context.Context
			RatingID uuid.UUID
		}
	}
	lockSet     sync.RWMutex
	lockGet     sync.RWMutex
	lockRemove  sync.RWMutex
	lockSummary sync.RWMutex
}

func (mock *reactionRepoMock) Set(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID, kind domain.ReactionKind) (*domain.Reaction, error) {
	if mock.SetFunc == nil {
		panic("reactionRepoMock.SetFunc: method is nil but reactionRepo.Set was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RatingID  uuid.UUID
		AccountID uuid.UUID
		Kind      domain.ReactionKind
	}{
		Ctx:       ctx,
		RatingID:  ratingID,
		AccountID: accountID,
		Kind:      kind,
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, ratingID, accountID, kind)
}

func (mock *reactionRepoMock) SetCalls() []struct {
	Ctx       context.Context
	RatingID  uuid.UUID
	AccountID uuid.UUID
	Kind      domain.ReactionKind
} {
	var calls []struct {
		Ctx       context.Context
		RatingID  uuid.UUID
		AccountID uuid.UUID
		Kind      domain.ReactionKind
	}
	mock.lockSet.RLock()
	calls = mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *reactionRepoMock) Get(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID) (*domain.Reaction, error) {
	if mock.GetFunc == nil {
		panic("reactionRepoMock.GetFunc: method is nil but reactionRepo.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RatingID  uuid.UUID
		AccountID uuid.UUID
	}{
		Ctx:       ctx,
		RatingID:  ratingID,
		AccountID: accountID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ratingID, accountID)
}

func (mock *reactionRepoMock) GetCalls() []struct {
	Ctx       context.Context
	RatingID  uuid.UUID
	AccountID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		RatingID  uuid.UUID
		AccountID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *reactionRepoMock) Remove(ctx context.Context, ratingID uuid.UUID, accountID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("reactionRepoMock.RemoveFunc: method is nil but reactionRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RatingID  uuid.UUID
		AccountID uuid.UUID
	}{
		Ctx:       ctx,
		RatingID:  ratingID,
		AccountID: accountID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, ratingID, accountID)
}

func (mock *reactionRepoMock) RemoveCalls() []struct {
	Ctx       context.Context
	RatingID  uuid.UUID
	AccountID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		RatingID  uuid.UUID
		AccountID uuid.UUID
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *reactionRepoMock) Summary(ctx context.Context, ratingID uuid.UUID) (domain.ReactionSummary, error) {
	if mock.SummaryFunc == nil {
		panic("reactionRepoMock.SummaryFunc: method is nil but reactionRepo.Summary was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RatingID uuid.UUID
	}{
		Ctx:      ctx,
		RatingID: ratingID,
	}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, ratingID)
}

func (mock *reactionRepoMock) SummaryCalls() []struct {
	Ctx      context.Context
	RatingID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		RatingID uuid.UUID
	}
	mock.lockSummary.RLock()
	calls = mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
