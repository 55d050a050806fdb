package review

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const maxCommentLen = 2000

// SubmitRatingInput holds the parameters for rating a game.
type SubmitRatingInput struct {
	EntryID uuid.UUID
	Score   int
	Comment string
}

// Validate checks all fields and collects all errors.
func (i SubmitRatingInput) Validate() error {
	var errs []domain.FieldError
	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	errs = append(errs, validateScore(i.Score)...)
	errs = append(errs, validateComment(i.Comment, false)...)
	return domain.NewValidationErrors(errs)
}

// UpdateRatingInput holds the new score and comment of a rating.
type UpdateRatingInput struct {
	Score   int
	Comment string
}

// Validate checks all fields and collects all errors.
func (i UpdateRatingInput) Validate() error {
	errs := validateScore(i.Score)
	errs = append(errs, validateComment(i.Comment, false)...)
	return domain.NewValidationErrors(errs)
}

// CreateReplyInput holds the parameters for replying to a rating.
type CreateReplyInput struct {
	RatingID uuid.UUID
	Comment  string
}

// Validate checks all fields and collects all errors.
func (i CreateReplyInput) Validate() error {
	var errs []domain.FieldError
	if i.RatingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "review_id", Message: "required"})
	}
	errs = append(errs, validateComment(i.Comment, true)...)
	return domain.NewValidationErrors(errs)
}

// ReactInput holds a vote on a rating.
type ReactInput struct {
	RatingID uuid.UUID
	Kind     domain.ReactionKind
}

// Validate checks all fields and collects all errors.
func (i ReactInput) Validate() error {
	var errs []domain.FieldError
	if i.RatingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "review_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reaction_type", Message: "must be like or dislike"})
	}
	return domain.NewValidationErrors(errs)
}

func validateScore(score int) []domain.FieldError {
	if score < domain.MinScore || score > domain.MaxScore {
		return []domain.FieldError{{
			Field:   "rating",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinScore, domain.MaxScore),
		}}
	}
	return nil
}

func validateComment(comment string, required bool) []domain.FieldError {
	c := strings.TrimSpace(comment)
	switch {
	case required && c == "":
		return []domain.FieldError{{Field: "comment", Message: "required"}}
	case len(c) > maxCommentLen:
		return []domain.FieldError{{Field: "comment", Message: fmt.Sprintf("max %d characters", maxCommentLen)}}
	}
	return nil
}
