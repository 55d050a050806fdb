package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a cataloged game.
type Entry struct {
	ID            uuid.UUID `db:"id"             json:"id"`
	Title         string    `db:"title"          json:"title"`
	DescriptionEN *string   `db:"description_en" json:"description_en"`
	DescriptionRU *string   `db:"description_ru" json:"description_ru"`
	CoverURL      *string   `db:"cover_url"      json:"cover_url"`
	DownloadLink  *string   `db:"download_link"  json:"download_link"`
	Platform      *string   `db:"platform"       json:"platform"`
	Platforms     []string  `db:"platforms"      json:"platforms"`
	Genres        []string  `db:"genres"         json:"genres"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"     json:"updated_at"`
}

// PlatformList returns the platform tags, falling back to the primary
// platform for rows written before the list column existed.
func (e *Entry) PlatformList() []string {
	if len(e.Platforms) > 0 {
		return e.Platforms
	}
	if e.Platform != nil && *e.Platform != "" {
		return []string{*e.Platform}
	}
	return []string{}
}

// NormalizePlatforms applies PlatformList in place and keeps Platform in
// sync with the first tag when it is missing.
func (e *Entry) NormalizePlatforms() {
	e.Platforms = e.PlatformList()
	if (e.Platform == nil || *e.Platform == "") && len(e.Platforms) > 0 {
		p := e.Platforms[0]
		e.Platform = &p
	}
	if e.Genres == nil {
		e.Genres = []string{}
	}
}

// Screenshot is an ordered image attached to an entry.
type Screenshot struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	EntryID    uuid.UUID `db:"game_id"     json:"game_id"`
	ImageURL   string    `db:"image_url"   json:"image_url"`
	OrderIndex int       `db:"order_index" json:"order_index"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

// Category is a named genre.
type Category struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
