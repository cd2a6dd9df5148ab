package domain

import (
	"context"
	"time"
)

// Defaults applied on conference creation for fields the caller left unset.
const (
	DefaultCity         = "Default City"
	DefaultMaxAttendees = 0
)

// DefaultTopics returns the default topic list. A fresh slice each call so
// callers can't mutate the defaults.
func DefaultTopics() []string {
	return []string{"Default", "Topic"}
}

// Conference represents a conference a profile organizes.
// swagger:model Conference
type Conference struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	OrganizerID    string     `json:"organizer_id"`
	Topics         []string   `json:"topics"`
	City           string     `json:"city"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Month          int        `json:"month"`
	MaxAttendees   int        `json:"max_attendees"`
	SeatsAvailable int        `json:"seats_available"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ConferenceWithOrganizer bundles a conference with its organizer's display
// name, which is not stored on the conference row.
type ConferenceWithOrganizer struct {
	Conference           *Conference
	OrganizerDisplayName string
}

// Query filter whitelists. Filter fields and operators arrive as symbolic
// names and are mapped to columns and SQL operators here; anything outside
// the maps is a client error.
var (
	FilterFields = map[string]string{
		"CITY":          "city",
		"TOPIC":         "topics",
		"MONTH":         "month",
		"MAX_ATTENDEES": "max_attendees",
	}
	FilterOperators = map[string]string{
		"EQ":   "=",
		"GT":   ">",
		"GTEQ": ">=",
		"LT":   "<",
		"LTEQ": "<=",
		"NE":   "!=",
	}
)

// QueryFilter is one caller-supplied (field, operator, value) triple.
type QueryFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// ConferenceQuery is a validated, normalized query ready for the repository:
// Filters hold column names, SQL operators and coerced values; OrderBy is the
// inequality column, if any.
type ConferenceQuery struct {
	Filters []NormalizedFilter
	OrderBy string
}

// NormalizedFilter is a whitelisted filter with its value coerced to the
// column's type.
type NormalizedFilter struct {
	Column   string
	Operator string
	Value    any
}

// ConferenceRepository defines the interface for conference storage
type ConferenceRepository interface {
	Create(ctx context.Context, conf *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Conference, error)
	ListByAttendeeID(ctx context.Context, profileID string) ([]*Conference, error)
	Query(ctx context.Context, q ConferenceQuery) ([]*Conference, error)
	// ListNearlySoldOut returns conferences with 1 to 5 seats remaining.
	ListNearlySoldOut(ctx context.Context) ([]*Conference, error)
}

// RegistrationRepository owns the seat-accounting transaction. Register and
// Unregister must apply the registration row and the seat counter atomically;
// a partial write must never be observable.
type RegistrationRepository interface {
	// Register returns ErrNotFound, ErrAlreadyRegistered or
	// ErrNoSeatsAvailable; on success one seat is taken.
	Register(ctx context.Context, conferenceID, profileID string) error
	// Unregister returns (false, nil) when the profile was not registered;
	// on (true, nil) one seat was returned.
	Unregister(ctx context.Context, conferenceID, profileID string) (bool, error)
}

// ConferenceService defines conference creation and query operations.
type ConferenceService interface {
	// CreateConference validates, applies defaults, derives month, forces
	// seatsAvailable to maxAttendees when maxAttendees > 0, persists, and
	// enqueues a confirmation email task.
	CreateConference(ctx context.Context, conf *Conference, organizer Identity) error
	GetConference(ctx context.Context, key string) (*ConferenceWithOrganizer, error)
	QueryConferences(ctx context.Context, filters []QueryFilter) ([]*ConferenceWithOrganizer, error)
	ListCreated(ctx context.Context, organizer Identity) ([]*ConferenceWithOrganizer, error)
	ListAttending(ctx context.Context, caller Identity) ([]*ConferenceWithOrganizer, error)
	// ListAttendees is owner-only.
	ListAttendees(ctx context.Context, key string, caller Identity) ([]*Profile, error)
}

// AttendeeService defines conference registration operations.
type AttendeeService interface {
	Register(ctx context.Context, key string, caller Identity) (bool, error)
	Unregister(ctx context.Context, key string, caller Identity) (bool, error)
}
