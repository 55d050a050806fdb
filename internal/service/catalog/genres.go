package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// ListGenres returns all genres ordered by name.
func (s *Service) ListGenres(ctx context.Context) ([]domain.Category, error) {
	genres, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListGenres: %w", err)
	}
	return genres, nil
}

// CreateGenre adds a genre. Admin only.
func (s *Service) CreateGenre(ctx context.Context, input GenreInput) (*domain.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	genre, err := s.categories.Create(ctx, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateGenre: %w", err)
	}
	s.log.InfoContext(ctx, "genre created", slog.String("name", genre.Name))
	return genre, nil
}

// RenameGenre changes a genre's name. Admin only.
func (s *Service) RenameGenre(ctx context.Context, id uuid.UUID, input GenreInput) (*domain.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	genre, err := s.categories.Update(ctx, id, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, fmt.Errorf("catalog.RenameGenre: %w", err)
	}
	s.log.InfoContext(ctx, "genre renamed",
		slog.String("genre_id", id.String()),
		slog.String("name", genre.Name),
	)
	return genre, nil
}

// DeleteGenre removes a genre. Admin only.
func (s *Service) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteGenre: %w", err)
	}
	return nil
}
