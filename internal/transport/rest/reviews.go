package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/review"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

type reviewService interface {
	ListRatings(ctx context.Context, entryID uuid.UUID) ([]domain.RatingView, error)
	ListAccountRatings(ctx context.Context, accountID uuid.UUID) ([]domain.Rating, error)
	SubmitRating(ctx context.Context, input review.SubmitRatingInput) (*domain.Rating, error)
	UpdateRating(ctx context.Context, id uuid.UUID, input review.UpdateRatingInput) (*domain.Rating, error)
	DeleteRating(ctx context.Context, id uuid.UUID) error

	ListReplies(ctx context.Context, ratingID uuid.UUID) ([]domain.ReplyView, error)
	CreateReply(ctx context.Context, input review.CreateReplyInput) (*domain.Reply, error)
	DeleteReply(ctx context.Context, id uuid.UUID) error

	React(ctx context.Context, input review.ReactInput) (*domain.Reaction, error)
	Unreact(ctx context.Context, ratingID uuid.UUID) error
	MyReaction(ctx context.Context, ratingID uuid.UUID) (*domain.Reaction, error)
	ReactionSummary(ctx context.Context, ratingID uuid.UUID) (domain.ReactionSummary, error)
}

// ReviewHandler serves reviews, their replies and reactions.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "reviews")}
}

// ListReviews handles GET /api/reviews with either ?game_id= or ?user_id=.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("game_id") != "":
		entryID, err := queryUUID(r, "game_id")
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		views, err := h.svc.ListRatings(r.Context(), entryID)
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, views)
	case q.Get("user_id") != "":
		accountID, err := queryUUID(r, "user_id")
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		ratings, err := h.svc.ListAccountRatings(r.Context(), accountID)
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, ratings)
	default:
		writeDomainError(w, r, h.log, domain.NewValidationError("game_id", "game_id or user_id required"))
	}
}

type submitReviewRequest struct {
	GameID  uuid.UUID `json:"game_id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

// SubmitReview handles POST /api/reviews.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rating, err := h.svc.SubmitRating(r.Context(), review.SubmitRatingInput{
		EntryID: req.GameID,
		Score:   req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

type updateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpdateReview handles PUT /api/reviews/{id}.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req updateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rating, err := h.svc.UpdateRating(r.Context(), id, review.UpdateRatingInput{Score: req.Rating, Comment: req.Comment})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

// DeleteReview handles DELETE /api/reviews/{id}.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteRating(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListReplies handles GET /api/review-replies?review_id=.
func (h *ReviewHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	ratingID, err := queryUUID(r, "review_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	replies, err := h.svc.ListReplies(r.Context(), ratingID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, replies)
}

type replyRequest struct {
	ReviewID uuid.UUID `json:"review_id"`
	Comment  string    `json:"comment"`
}

// CreateReply handles POST /api/review-replies.
func (h *ReviewHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reply, err := h.svc.CreateReply(r.Context(), review.CreateReplyInput{RatingID: req.ReviewID, Comment: req.Comment})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, reply)
}

// DeleteReply handles DELETE /api/review-replies/{id}.
func (h *ReviewHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteReply(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reactionsResponse struct {
	domain.ReactionSummary
	UserReaction *domain.ReactionKind `json:"user_reaction"`
}

// GetReactions handles GET /api/review-reactions?review_id=. The caller's own
// vote is included only for authenticated requests.
func (h *ReviewHandler) GetReactions(w http.ResponseWriter, r *http.Request) {
	ratingID, err := queryUUID(r, "review_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	summary, err := h.svc.ReactionSummary(r.Context(), ratingID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := reactionsResponse{ReactionSummary: summary}
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		mine, err := h.svc.MyReaction(r.Context(), ratingID)
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		if mine != nil {
			resp.UserReaction = &mine.Kind
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type reactRequest struct {
	ReviewID     uuid.UUID           `json:"review_id"`
	ReactionType domain.ReactionKind `json:"reaction_type"`
}

// React handles POST /api/review-reactions.
func (h *ReviewHandler) React(w http.ResponseWriter, r *http.Request) {
	var req reactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reaction, err := h.svc.React(r.Context(), review.ReactInput{RatingID: req.ReviewID, Kind: req.ReactionType})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, reaction)
}

// Unreact handles DELETE /api/review-reactions?review_id=.
func (h *ReviewHandler) Unreact(w http.ResponseWriter, r *http.Request) {
	ratingID, err := queryUUID(r, "review_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.Unreact(r.Context(), ratingID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
