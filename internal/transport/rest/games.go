package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/catalog"
)

type catalogService interface {
	ListEntries(ctx context.Context, input catalog.ListEntriesInput) ([]catalog.EntrySummary, error)
	CountEntries(ctx context.Context) (int64, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*catalog.EntryDetail, error)
	CreateEntry(ctx context.Context, input catalog.EntryInput) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, input catalog.EntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	ListGenres(ctx context.Context) ([]domain.Category, error)
	CreateGenre(ctx context.Context, input catalog.GenreInput) (*domain.Category, error)
	RenameGenre(ctx context.Context, id uuid.UUID, input catalog.GenreInput) (*domain.Category, error)
	DeleteGenre(ctx context.Context, id uuid.UUID) error

	ListScreenshots(ctx context.Context, entryID uuid.UUID) ([]domain.Screenshot, error)
	AddScreenshots(ctx context.Context, entryID uuid.UUID, input catalog.AddScreenshotsInput) ([]domain.Screenshot, error)
	DeleteScreenshot(ctx context.Context, id uuid.UUID) error
}

// CatalogHandler serves games, genres and screenshots.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type gameRequest struct {
	Title         string   `json:"title"`
	DescriptionEN *string  `json:"description_en"`
	DescriptionRU *string  `json:"description_ru"`
	CoverURL      *string  `json:"cover_url"`
	DownloadLink  *string  `json:"download_link"`
	Platform      *string  `json:"platform"`
	Platforms     []string `json:"platforms"`
	Genres        []string `json:"genres"`
}

func (g gameRequest) input() catalog.EntryInput {
	return catalog.EntryInput{
		Title:         g.Title,
		DescriptionEN: g.DescriptionEN,
		DescriptionRU: g.DescriptionRU,
		CoverURL:      g.CoverURL,
		DownloadLink:  g.DownloadLink,
		Platform:      g.Platform,
		Platforms:     g.Platforms,
		Genres:        g.Genres,
	}
}

// ListGames handles GET /api/games. The catalog size goes in X-Total-Count.
func (h *CatalogHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	entries, err := h.svc.ListEntries(r.Context(), catalog.ListEntriesInput{Limit: limit})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	total, err := h.svc.CountEntries(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	writeJSON(w, http.StatusOK, entries)
}

// GetGame handles GET /api/games/{id}.
func (h *CatalogHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	detail, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// CreateGame handles POST /api/games.
func (h *CatalogHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entry, err := h.svc.CreateEntry(r.Context(), req.input())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// UpdateGame handles PUT /api/games/{id}.
func (h *CatalogHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req gameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entry, err := h.svc.UpdateEntry(r.Context(), id, req.input())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// DeleteGame handles DELETE /api/games/{id}.
func (h *CatalogHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListGenres handles GET /api/genres.
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.ListGenres(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

type genreRequest struct {
	Name string `json:"name"`
}

// CreateGenre handles POST /api/genres.
func (h *CatalogHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	genre, err := h.svc.CreateGenre(r.Context(), catalog.GenreInput{Name: req.Name})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, genre)
}

// RenameGenre handles PUT /api/genres/{id}.
func (h *CatalogHandler) RenameGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req genreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	genre, err := h.svc.RenameGenre(r.Context(), id, catalog.GenreInput{Name: req.Name})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}

// DeleteGenre handles DELETE /api/genres/{id}.
func (h *CatalogHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteGenre(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListScreenshots handles GET /api/screenshots?game_id=.
func (h *CatalogHandler) ListScreenshots(w http.ResponseWriter, r *http.Request) {
	entryID, err := queryUUID(r, "game_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	shots, err := h.svc.ListScreenshots(r.Context(), entryID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, shots)
}

type screenshotsRequest struct {
	GameID uuid.UUID `json:"game_id"`
	Images []struct {
		ImageURL   string `json:"image_url"`
		OrderIndex *int   `json:"order_index"`
	} `json:"images"`
}

// AddScreenshots handles POST /api/screenshots.
func (h *CatalogHandler) AddScreenshots(w http.ResponseWriter, r *http.Request) {
	var req screenshotsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.GameID == uuid.Nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("game_id", "required"))
		return
	}

	input := catalog.AddScreenshotsInput{Images: make([]catalog.ScreenshotInput, len(req.Images))}
	for i, img := range req.Images {
		input.Images[i] = catalog.ScreenshotInput{ImageURL: img.ImageURL, OrderIndex: img.OrderIndex}
	}

	shots, err := h.svc.AddScreenshots(r.Context(), req.GameID, input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, shots)
}

// DeleteScreenshot handles DELETE /api/screenshots/{id}.
func (h *CatalogHandler) DeleteScreenshot(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteScreenshot(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
