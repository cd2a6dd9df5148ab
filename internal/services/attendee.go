package services

import (
	"context"
	"errors"
	"fmt"

	"confcentral/internal/domain"
	"confcentral/internal/monitoring"
)

type attendeeService struct {
	registrationRepo domain.RegistrationRepository
	profileRepo      domain.ProfileRepository
}

// NewAttendeeService creates the service for conference registration. The
// seat-accounting atomicity lives in the registration repository; this layer
// resolves keys and profiles.
func NewAttendeeService(
	registrationRepo domain.RegistrationRepository,
	profileRepo domain.ProfileRepository,
) domain.AttendeeService {
	return &attendeeService{
		registrationRepo: registrationRepo,
		profileRepo:      profileRepo,
	}
}

func (s *attendeeService) Register(ctx context.Context, key string, caller domain.Identity) (bool, error) {
	profile, err := ensureProfile(ctx, s.profileRepo, caller)
	if err != nil {
		return false, err
	}
	id, err := domain.DecodeKey(domain.KindConference, key)
	if err != nil {
		return false, domain.ErrNotFound
	}
	if err := s.registrationRepo.Register(ctx, id, profile.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyRegistered) || errors.Is(err, domain.ErrNoSeatsAvailable) {
			monitoring.RecordRegistration("register", "rejected")
			return false, err
		}
		return false, fmt.Errorf("register for conference: %w", err)
	}
	monitoring.RecordRegistration("register", "ok")
	return true, nil
}

func (s *attendeeService) Unregister(ctx context.Context, key string, caller domain.Identity) (bool, error) {
	profile, err := ensureProfile(ctx, s.profileRepo, caller)
	if err != nil {
		return false, err
	}
	id, err := domain.DecodeKey(domain.KindConference, key)
	if err != nil {
		return false, domain.ErrNotFound
	}
	removed, err := s.registrationRepo.Unregister(ctx, id, profile.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("unregister from conference: %w", err)
	}
	monitoring.RecordRegistration("unregister", "ok")
	return removed, nil
}
