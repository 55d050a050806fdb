package domain

// Role is the access level carried in access tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// ReactionKind is the binary vote cast on a rating.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

func (k ReactionKind) String() string { return string(k) }

func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionLike, ReactionDislike:
		return true
	}
	return false
}

// SuggestionStatus is the moderation state of a suggestion.
type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "pending"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionRejected SuggestionStatus = "rejected"
)

func (s SuggestionStatus) String() string { return string(s) }

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionPending, SuggestionApproved, SuggestionRejected:
		return true
	}
	return false
}

// IsFinal reports whether the status is the result of a review.
func (s SuggestionStatus) IsFinal() bool {
	return s == SuggestionApproved || s == SuggestionRejected
}

// NotificationType tags what produced a notification.
type NotificationType string

const (
	NotificationReviewSubmitted    NotificationType = "review_submitted"
	NotificationReplyReceived      NotificationType = "reply_received"
	NotificationSuggestionReviewed NotificationType = "suggestion_reviewed"
)

func (t NotificationType) String() string { return string(t) }
