package domain

import (
	"context"
	"time"
)

// Session represents a talk, keynote or workshop within a conference.
// swagger:model Session
type Session struct {
	ID              string     `json:"id"`
	ConferenceID    string     `json:"conference_id"`
	SpeakerID       string     `json:"speaker_id"`
	Name            string     `json:"name"`
	Highlights      string     `json:"highlights"`
	TypeOfSession   string     `json:"type_of_session"`
	StartDate       *time.Time `json:"start_date"`
	StartTime       *time.Time `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SessionDetail bundles a session with the denormalized display names its
// wire form carries.
type SessionDetail struct {
	Session        *Session
	ConferenceName string
	SpeakerName    string
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, sess *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*SessionDetail, error)
	ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*SessionDetail, error)
	ListBySpeakerID(ctx context.Context, speakerID string) ([]*SessionDetail, error)
	// ListByTypeNot returns sessions whose type differs from the given one,
	// across all conferences. Time-of-day filtering is left to the caller.
	ListByTypeNot(ctx context.Context, typeOfSession string) ([]*SessionDetail, error)
	ListByProfileWishlist(ctx context.Context, profileID string) ([]*SessionDetail, error)
	CountByConferenceAndSpeaker(ctx context.Context, conferenceID, speakerID string) (int, error)
}

// SessionService defines session creation and read queries.
type SessionService interface {
	// CreateSession requires the caller to own the conference; on success a
	// featured-speaker recompute task is enqueued.
	CreateSession(ctx context.Context, conferenceKey string, sess *Session, speakerKey string, caller Identity) (*SessionDetail, error)
	ListByConference(ctx context.Context, conferenceKey string) ([]*SessionDetail, error)
	ListByConferenceAndType(ctx context.Context, conferenceKey, typeOfSession string) ([]*SessionDetail, error)
	ListBySpeaker(ctx context.Context, speakerKey string) ([]*SessionDetail, error)
	// ListDaytimeNonWorkshops returns sessions that are not workshops and
	// start before 19:00.
	ListDaytimeNonWorkshops(ctx context.Context) ([]*SessionDetail, error)
}

// WishlistRepository defines storage for per-profile session wishlists.
type WishlistRepository interface {
	Add(ctx context.Context, profileID, sessionID string) error
	Remove(ctx context.Context, profileID, sessionID string) error
}

// WishlistService defines wishlist operations. Add of a wishlisted session
// and Remove of an absent one both conflict; this asymmetry with
// unregistration is intentional and preserved.
type WishlistService interface {
	Add(ctx context.Context, sessionKey string, caller Identity) (bool, error)
	Remove(ctx context.Context, sessionKey string, caller Identity) (bool, error)
	List(ctx context.Context, caller Identity) ([]*SessionDetail, error)
}
