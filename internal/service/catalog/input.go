package catalog

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// ListEntriesInput holds the parameters for listing games.
type ListEntriesInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxListLimit)})
	}
	return domain.NewValidationErrors(errs)
}

// EntryInput holds the editable fields of a game.
type EntryInput struct {
	Title         string
	DescriptionEN *string
	DescriptionRU *string
	CoverURL      *string
	DownloadLink  *string
	Platform      *string
	Platforms     []string
	Genres        []string
}

// Validate checks all fields and collects all errors.
func (i EntryInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(trimAll(i.Platforms)) == 0 {
		errs = append(errs, domain.FieldError{Field: "platforms", Message: "at least one required"})
	}
	if p := trimOrNil(i.Platform); p != nil && len(*p) > 64 {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "max 64 characters"})
	}
	if !isURL(i.CoverURL) {
		errs = append(errs, domain.FieldError{Field: "cover_url", Message: "must be an http(s) URL"})
	}
	if !isURL(i.DownloadLink) {
		errs = append(errs, domain.FieldError{Field: "download_link", Message: "must be an http(s) URL"})
	}

	return domain.NewValidationErrors(errs)
}

// entry builds the stored game. The primary platform defaults to the
// first tag when the caller does not name one.
func (i EntryInput) entry() *domain.Entry {
	e := &domain.Entry{
		Title:         strings.TrimSpace(i.Title),
		DescriptionEN: trimOrNil(i.DescriptionEN),
		DescriptionRU: trimOrNil(i.DescriptionRU),
		CoverURL:      trimOrNil(i.CoverURL),
		DownloadLink:  trimOrNil(i.DownloadLink),
		Platform:      trimOrNil(i.Platform),
		Platforms:     trimAll(i.Platforms),
		Genres:        trimAll(i.Genres),
	}
	e.NormalizePlatforms()
	return e
}

// GenreInput holds the parameters for creating or renaming a genre.
type GenreInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i GenreInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(name) > 64 {
		return domain.NewValidationError("name", "max 64 characters")
	}
	return nil
}

// ScreenshotInput is one image to attach to a game.
type ScreenshotInput struct {
	ImageURL   string
	OrderIndex *int
}

// AddScreenshotsInput holds a batch of images for one game.
type AddScreenshotsInput struct {
	Images []ScreenshotInput
}

// Validate checks all fields and collects all errors.
func (i AddScreenshotsInput) Validate() error {
	var errs []domain.FieldError
	if len(i.Images) == 0 {
		errs = append(errs, domain.FieldError{Field: "images", Message: "at least one required"})
	}
	if len(i.Images) > 20 {
		errs = append(errs, domain.FieldError{Field: "images", Message: "max 20 per request"})
	}
	for n, img := range i.Images {
		u := strings.TrimSpace(img.ImageURL)
		if u == "" || !isURL(&u) {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d].image_url", n), Message: "must be an http(s) URL"})
		}
		if img.OrderIndex != nil && *img.OrderIndex < 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d].order_index", n), Message: "must be non-negative"})
		}
	}
	return domain.NewValidationErrors(errs)
}

// isURL accepts nil, blank and http(s) values.
func isURL(s *string) bool {
	if s == nil {
		return true
	}
	v := strings.TrimSpace(*s)
	return v == "" || strings.HasPrefix(v, "https://") || strings.HasPrefix(v, "http://")
}
