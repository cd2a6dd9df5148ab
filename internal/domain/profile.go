package domain

import (
	"context"
	"time"
)

// Identity is the authenticated caller as resolved from a verified token.
// Identity resolution itself is an external concern; this is all the
// application ever sees of it.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// TokenIssuer issues tokens (e.g. JWT) for an identity.
type TokenIssuer interface {
	Issue(identity Identity, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// Tee-shirt sizes a profile may declare.
const TeeShirtNotSpecified = "NOT_SPECIFIED"

var TeeShirtSizes = []string{
	TeeShirtNotSpecified,
	"XS_M", "XS_W",
	"S_M", "S_W",
	"M_M", "M_W",
	"L_M", "L_W",
	"XL_M", "XL_W",
	"XXL_M", "XXL_W",
	"XXXL_M", "XXXL_W",
}

// ValidTeeShirtSize reports whether s is one of the declared sizes.
func ValidTeeShirtSize(s string) bool {
	for _, v := range TeeShirtSizes {
		if v == s {
			return true
		}
	}
	return false
}

// Profile represents an attendee or organizer account. The ID is the external
// identity subject, not a generated one.
// swagger:model Profile
type Profile struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"display_name"`
	MainEmail    string    `json:"main_email"`
	TeeShirtSize string    `json:"tee_shirt_size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProfile returns a new Profile for the given identity with the default
// tee-shirt size.
func NewProfile(identity Identity, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		ID:           identity.Subject,
		DisplayName:  identity.Name,
		MainEmail:    identity.Email,
		TeeShirtSize: TeeShirtNotSpecified,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Profile, error)
}

// ProfileService defines the business logic for caller profiles.
type ProfileService interface {
	// GetOrCreate returns the caller's profile, creating it from the identity
	// claims on first contact.
	GetOrCreate(ctx context.Context, identity Identity) (*Profile, error)
	// Save updates displayName and/or teeShirtSize; nil fields are unchanged.
	Save(ctx context.Context, identity Identity, displayName, teeShirtSize *string) (*Profile, error)
}
