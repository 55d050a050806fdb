package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// EntrySummary is a game with its rating stats.
type EntrySummary struct {
	domain.Entry
	Rating domain.RatingStats `json:"rating"`
}

// EntryDetail is a game with its screenshots and rating stats.
type EntryDetail struct {
	*domain.Entry
	Rating      domain.RatingStats  `json:"rating"`
	Screenshots []domain.Screenshot `json:"screenshots"`
}

// ListEntries returns games with their rating stats, newest first.
// A zero limit returns all.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]EntrySummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	entries, err := s.entries.List(ctx, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListEntries: %w", err)
	}

	ids := make([]uuid.UUID, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID
	}
	stats, err := s.ratings.StatsByEntries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListEntries: %w", err)
	}

	out := make([]EntrySummary, len(entries))
	for i, e := range entries {
		out[i] = EntrySummary{Entry: e, Rating: stats[e.ID]}
	}
	return out, nil
}

// GetEntry returns one game together with its screenshots and rating stats.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*EntryDetail, error) {
	var (
		entry *domain.Entry
		shots []domain.Screenshot
		stats map[uuid.UUID]domain.RatingStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entry, err = s.entries.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		shots, err = s.screenshots.ListByEntry(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.ratings.StatsByEntries(gctx, []uuid.UUID{id})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catalog.GetEntry: %w", err)
	}

	return &EntryDetail{Entry: entry, Rating: stats[id], Screenshots: shots}, nil
}

// CountEntries returns the number of games in the catalog.
func (s *Service) CountEntries(ctx context.Context) (int64, error) {
	n, err := s.entries.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("catalog.CountEntries: %w", err)
	}
	return n, nil
}

// CreateEntry adds a game. Admin only.
func (s *Service) CreateEntry(ctx context.Context, input EntryInput) (*domain.Entry, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.entries.Create(ctx, input.entry())
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateEntry: %w", err)
	}

	s.log.InfoContext(ctx, "game created",
		slog.String("game_id", created.ID.String()),
		slog.String("title", created.Title),
		slog.String("by", adminID.String()),
	)
	return created, nil
}

// UpdateEntry rewrites a game. Admin only.
func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, input EntryInput) (*domain.Entry, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	e := input.entry()
	e.ID = id
	updated, err := s.entries.Update(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateEntry: %w", err)
	}

	s.log.InfoContext(ctx, "game updated",
		slog.String("game_id", id.String()),
		slog.String("by", adminID.String()),
	)
	return updated, nil
}

// DeleteEntry removes a game and everything attached to it. Admin only.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteEntry: %w", err)
	}

	s.log.InfoContext(ctx, "game deleted",
		slog.String("game_id", id.String()),
		slog.String("by", adminID.String()),
	)
	return nil
}
