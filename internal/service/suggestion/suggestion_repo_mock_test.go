package suggestion

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"sync"
)

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	ListFunc            func(ctx context.Context) ([]domain.SuggestionView, error)
	ListByAccountFunc   func(ctx context.Context, accountID uuid.UUID) ([]domain.SuggestionView, error)
	LatestByAccountFunc func(ctx context.Context, accountID uuid.UUID) (*domain.Suggestion, error)
	CreateFunc          func(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)
	ReviewFunc          func(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus, reviewerID uuid.UUID) (*domain.Suggestion, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		ListByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		LatestByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Suggestion
		}
		Review []struct {
			Ctx        context.Context
			Id         uuid.UUID
			Status     domain.SuggestionStatus
			ReviewerID uuid.UUID
		}
	}
	lockList            sync.RWMutex
	lockListByAccount   sync.RWMutex
	lockLatestByAccount sync.RWMutex
	lockCreate          sync.RWMutex
	lockReview          sync.RWMutex
}

func (mock *suggestionRepoMock) List(ctx context.Context) ([]domain.SuggestionView, error) {
	if mock.ListFunc == nil {
		panic("suggestionRepoMock.ListFunc: method is nil but suggestionRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *suggestionRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.SuggestionView, error) {
	if mock.ListByAccountFunc == nil {
		panic("suggestionRepoMock.ListByAccountFunc: method is nil but suggestionRepo.ListByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
	}
	mock.lockListByAccount.Lock()
	mock.calls.ListByAccount = append(mock.calls.ListByAccount, callInfo)
	mock.lockListByAccount.Unlock()
	return mock.ListByAccountFunc(ctx, accountID)
}

func (mock *suggestionRepoMock) ListByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}
	mock.lockListByAccount.RLock()
	calls = mock.calls.ListByAccount
	mock.lockListByAccount.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) LatestByAccount(ctx context.Context, accountID uuid.UUID) (*domain.Suggestion, error) {
	if mock.LatestByAccountFunc == nil {
		panic("suggestionRepoMock.LatestByAccountFunc: method is nil but suggestionRepo.LatestByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{
		Ctx:       ctx,
		AccountID: accountID,
	}
	mock.lockLatestByAccount.Lock()
	mock.calls.LatestByAccount = append(mock.calls.LatestByAccount, callInfo)
	mock.lockLatestByAccount.Unlock()
	return mock.LatestByAccountFunc(ctx, accountID)
}

func (mock *suggestionRepoMock) LatestByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}
	mock.lockLatestByAccount.RLock()
	calls = mock.calls.LatestByAccount
	mock.lockLatestByAccount.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	if mock.CreateFunc == nil {
		panic("suggestionRepoMock.CreateFunc: method is nil but suggestionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Suggestion
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *suggestionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Suggestion
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.Suggestion
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) Review(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus, reviewerID uuid.UUID) (*domain.Suggestion, error) {
	if mock.ReviewFunc == nil {
		panic("suggestionRepoMock.ReviewFunc: method is nil but suggestionRepo.Review was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Id         uuid.UUID
		Status     domain.SuggestionStatus
		ReviewerID uuid.UUID
	}{
		Ctx:        ctx,
		Id:         id,
		Status:     status,
		ReviewerID: reviewerID,
	}
	mock.lockReview.Lock()
	mock.calls.Review = append(mock.calls.Review, callInfo)
	mock.lockReview.Unlock()
	return mock.ReviewFunc(ctx, id, status, reviewerID)
}

func (mock *suggestionRepoMock) ReviewCalls() []struct {
	Ctx        context.Context
	Id         uuid.UUID
	Status     domain.SuggestionStatus
	ReviewerID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		Id         uuid.UUID
		Status     domain.SuggestionStatus
		ReviewerID uuid.UUID
	}
	mock.lockReview.RLock()
	calls = mock.calls.Review
	mock.lockReview.RUnlock()
	return calls
}
