package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/catalog"
	"sync"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListEntriesFunc      func(ctx context.Context, input catalog.ListEntriesInput) ([]catalog.EntrySummary, error)
	CountEntriesFunc     func(ctx context.Context) (int64, error)
	GetEntryFunc         func(ctx context.Context, id uuid.UUID) (*catalog.EntryDetail, error)
	CreateEntryFunc      func(ctx context.Context, input catalog.EntryInput) (*domain.Entry, error)
	UpdateEntryFunc      func(ctx context.Context, id uuid.UUID, input catalog.EntryInput) (*domain.Entry, error)
	DeleteEntryFunc      func(ctx context.Context, id uuid.UUID) error
	ListGenresFunc       func(ctx context.Context) ([]domain.Category, error)
	CreateGenreFunc      func(ctx context.Context, input catalog.GenreInput) (*domain.Category, error)
	RenameGenreFunc      func(ctx context.Context, id uuid.UUID, input catalog.GenreInput) (*domain.Category, error)
	DeleteGenreFunc      func(ctx context.Context, id uuid.UUID) error
	ListScreenshotsFunc  func(ctx context.Context, entryID uuid.UUID) ([]domain.Screenshot, error)
	AddScreenshotsFunc   func(ctx context.Context, entryID uuid.UUID, input catalog.AddScreenshotsInput) ([]domain.Screenshot, error)
	DeleteScreenshotFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListEntries []struct {
			Ctx   context.Context
			Input catalog.ListEntriesInput
		}
		CountEntries []struct {
			Ctx context.Context
		}
		GetEntry []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateEntry []struct {
			Ctx   context.Context
			Input catalog.EntryInput
		}
		UpdateEntry []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input catalog.EntryInput
		}
		DeleteEntry []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListGenres []struct {
			Ctx context.Context
		}
		CreateGenre []struct {
			Ctx   context.Context
			Input catalog.GenreInput
		}
		RenameGenre []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input catalog.GenreInput
		}
		DeleteGenre []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListScreenshots []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		AddScreenshots []struct {
			Ctx     context.Context
			EntryID uuid.UUID
			Input   catalog.AddScreenshotsInput
		}
		DeleteScreenshot []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListEntries      sync.RWMutex
	lockCountEntries     sync.RWMutex
	lockGetEntry         sync.RWMutex
	lockCreateEntry      sync.RWMutex
	lockUpdateEntry      sync.RWMutex
	lockDeleteEntry      sync.RWMutex
	lockListGenres       sync.RWMutex
	lockCreateGenre      sync.RWMutex
	lockRenameGenre      sync.RWMutex
	lockDeleteGenre      sync.RWMutex
	lockListScreenshots  sync.RWMutex
	lockAddScreenshots   sync.RWMutex
	lockDeleteScreenshot sync.RWMutex
}

func (mock *catalogServiceMock) ListEntries(ctx context.Context, input catalog.ListEntriesInput) ([]catalog.EntrySummary, error) {
	if mock.ListEntriesFunc == nil {
		panic("catalogServiceMock.ListEntriesFunc: method is nil but catalogService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.ListEntriesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, input)
}

func (mock *catalogServiceMock) ListEntriesCalls() []struct {
	Ctx   context.Context
	Input catalog.ListEntriesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.ListEntriesInput
	}
	mock.lockListEntries.RLock()
	calls = mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CountEntries(ctx context.Context) (int64, error) {
	if mock.CountEntriesFunc == nil {
		panic("catalogServiceMock.CountEntriesFunc: method is nil but catalogService.CountEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountEntries.Lock()
	mock.calls.CountEntries = append(mock.calls.CountEntries, callInfo)
	mock.lockCountEntries.Unlock()
	return mock.CountEntriesFunc(ctx)
}

func (mock *catalogServiceMock) CountEntriesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountEntries.RLock()
	calls = mock.calls.CountEntries
	mock.lockCountEntries.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetEntry(ctx context.Context, id uuid.UUID) (*catalog.EntryDetail, error) {
	if mock.GetEntryFunc == nil {
		panic("catalogServiceMock.GetEntryFunc: method is nil but catalogService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, id)
}

func (mock *catalogServiceMock) GetEntryCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetEntry.RLock()
	calls = mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateEntry(ctx context.Context, input catalog.EntryInput) (*domain.Entry, error) {
	if mock.CreateEntryFunc == nil {
		panic("catalogServiceMock.CreateEntryFunc: method is nil but catalogService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.EntryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input catalog.EntryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.EntryInput
	}
	mock.lockCreateEntry.RLock()
	calls = mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateEntry(ctx context.Context, id uuid.UUID, input catalog.EntryInput) (*domain.Entry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("catalogServiceMock.UpdateEntryFunc: method is nil but catalogService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input catalog.EntryInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, id, input)
}

func (mock *catalogServiceMock) UpdateEntryCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input catalog.EntryInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input catalog.EntryInput
	}
	mock.lockUpdateEntry.RLock()
	calls = mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("catalogServiceMock.DeleteEntryFunc: method is nil but catalogService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteEntryCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDeleteEntry.RLock()
	calls = mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListGenres(ctx context.Context) ([]domain.Category, error) {
	if mock.ListGenresFunc == nil {
		panic("catalogServiceMock.ListGenresFunc: method is nil but catalogService.ListGenres was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListGenres.Lock()
	mock.calls.ListGenres = append(mock.calls.ListGenres, callInfo)
	mock.lockListGenres.Unlock()
	return mock.ListGenresFunc(ctx)
}

func (mock *catalogServiceMock) ListGenresCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListGenres.RLock()
	calls = mock.calls.ListGenres
	mock.lockListGenres.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateGenre(ctx context.Context, input catalog.GenreInput) (*domain.Category, error) {
	if mock.CreateGenreFunc == nil {
		panic("catalogServiceMock.CreateGenreFunc: method is nil but catalogService.CreateGenre was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.GenreInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateGenre.Lock()
	mock.calls.CreateGenre = append(mock.calls.CreateGenre, callInfo)
	mock.lockCreateGenre.Unlock()
	return mock.CreateGenreFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateGenreCalls() []struct {
	Ctx   context.Context
	Input catalog.GenreInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.GenreInput
	}
	mock.lockCreateGenre.RLock()
	calls = mock.calls.CreateGenre
	mock.lockCreateGenre.RUnlock()
	return calls
}

func (mock *catalogServiceMock) RenameGenre(ctx context.Context, id uuid.UUID, input catalog.GenreInput) (*domain.Category, error) {
	if mock.RenameGenreFunc == nil {
		panic("catalogServiceMock.RenameGenreFunc: method is nil but catalogService.RenameGenre was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input catalog.GenreInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockRenameGenre.Lock()
	mock.calls.RenameGenre = append(mock.calls.RenameGenre, callInfo)
	mock.lockRenameGenre.Unlock()
	return mock.RenameGenreFunc(ctx, id, input)
}

func (mock *catalogServiceMock) RenameGenreCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input catalog.GenreInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input catalog.GenreInput
	}
	mock.lockRenameGenre.RLock()
	calls = mock.calls.RenameGenre
	mock.lockRenameGenre.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteGenreFunc == nil {
		panic("catalogServiceMock.DeleteGenreFunc: method is nil but catalogService.DeleteGenre was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteGenre.Lock()
	mock.calls.DeleteGenre = append(mock.calls.DeleteGenre, callInfo)
	mock.lockDeleteGenre.Unlock()
	return mock.DeleteGenreFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteGenreCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDeleteGenre.RLock()
	calls = mock.calls.DeleteGenre
	mock.lockDeleteGenre.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListScreenshots(ctx context.Context, entryID uuid.UUID) ([]domain.Screenshot, error) {
	if mock.ListScreenshotsFunc == nil {
		panic("catalogServiceMock.ListScreenshotsFunc: method is nil but catalogService.ListScreenshots was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockListScreenshots.Lock()
	mock.calls.ListScreenshots = append(mock.calls.ListScreenshots, callInfo)
	mock.lockListScreenshots.Unlock()
	return mock.ListScreenshotsFunc(ctx, entryID)
}

func (mock *catalogServiceMock) ListScreenshotsCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockListScreenshots.RLock()
	calls = mock.calls.ListScreenshots
	mock.lockListScreenshots.RUnlock()
	return calls
}

func (mock *catalogServiceMock) AddScreenshots(ctx context.Context, entryID uuid.UUID, input catalog.AddScreenshotsInput) ([]domain.Screenshot, error) {
	if mock.AddScreenshotsFunc == nil {
		panic("catalogServiceMock.AddScreenshotsFunc: method is nil but catalogService.AddScreenshots was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
		Input   catalog.AddScreenshotsInput
	}{
		Ctx:     ctx,
		EntryID: entryID,
		Input:   input,
	}
	mock.lockAddScreenshots.Lock()
	mock.calls.AddScreenshots = append(mock.calls.AddScreenshots, callInfo)
	mock.lockAddScreenshots.Unlock()
	return mock.AddScreenshotsFunc(ctx, entryID, input)
}

func (mock *catalogServiceMock) AddScreenshotsCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
	Input   catalog.AddScreenshotsInput
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
		Input   catalog.AddScreenshotsInput
	}
	mock.lockAddScreenshots.RLock()
	calls = mock.calls.AddScreenshots
	mock.lockAddScreenshots.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteScreenshot(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteScreenshotFunc == nil {
		panic("catalogServiceMock.DeleteScreenshotFunc: method is nil but catalogService.DeleteScreenshot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteScreenshot.Lock()
	mock.calls.DeleteScreenshot = append(mock.calls.DeleteScreenshot, callInfo)
	mock.lockDeleteScreenshot.Unlock()
	return mock.DeleteScreenshotFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteScreenshotCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDeleteScreenshot.RLock()
	calls = mock.calls.DeleteScreenshot
	mock.lockDeleteScreenshot.RUnlock()
	return calls
}
