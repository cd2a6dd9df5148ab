package domain

import (
	"context"
	"time"
)

// Speaker represents a speaker, shared across conferences.
// swagger:model Speaker
type Speaker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker with the given fields. ID is set by the
// repository on create.
func NewSpeaker(name, bio, email string, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		Name:      name,
		Bio:       bio,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SpeakerRepository defines the interface for speaker storage
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id string) (*Speaker, error)
	List(ctx context.Context) ([]*Speaker, error)
	// ListByConferenceID returns the distinct speakers with at least one
	// session at the conference.
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Speaker, error)
}

// SpeakerService defines speaker registration and lookup.
type SpeakerService interface {
	AddSpeaker(ctx context.Context, speaker *Speaker, caller Identity) error
	ListSpeakers(ctx context.Context) ([]*Speaker, error)
	ListPresenters(ctx context.Context, conferenceKey string) ([]*Speaker, error)
}
