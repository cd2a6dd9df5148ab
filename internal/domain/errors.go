package domain

import "errors"

// Sentinel errors shared across services. Repositories return these so the
// delivery layer can translate them to HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyRegistered is returned when a profile registers twice for the
	// same conference.
	ErrAlreadyRegistered = errors.New("already registered for this conference")

	// ErrNoSeatsAvailable is returned when a conference has no seats left.
	ErrNoSeatsAvailable = errors.New("no seats available")

	ErrAlreadyInWishlist = errors.New("session already in wishlist")
	ErrNotInWishlist     = errors.New("session not in wishlist")
)
