package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// ListScreenshots returns the screenshots of a game in display order.
func (s *Service) ListScreenshots(ctx context.Context, entryID uuid.UUID) ([]domain.Screenshot, error) {
	shots, err := s.screenshots.ListByEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListScreenshots: %w", err)
	}
	return shots, nil
}

// AddScreenshots attaches images to a game. Images without an explicit
// order are numbered by their position in the batch. Admin only.
func (s *Service) AddScreenshots(ctx context.Context, entryID uuid.UUID, input AddScreenshotsInput) ([]domain.Screenshot, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	shots := make([]domain.Screenshot, len(input.Images))
	for i, img := range input.Images {
		order := i
		if img.OrderIndex != nil {
			order = *img.OrderIndex
		}
		shots[i] = domain.Screenshot{ImageURL: strings.TrimSpace(img.ImageURL), OrderIndex: order}
	}

	created, err := s.screenshots.Create(ctx, entryID, shots)
	if err != nil {
		return nil, fmt.Errorf("catalog.AddScreenshots: %w", err)
	}

	s.log.InfoContext(ctx, "screenshots added",
		slog.String("game_id", entryID.String()),
		slog.Int("count", len(created)),
	)
	return created, nil
}

// DeleteScreenshot removes one image. Admin only.
func (s *Service) DeleteScreenshot(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.screenshots.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteScreenshot: %w", err)
	}
	return nil
}
