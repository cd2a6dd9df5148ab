package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"confcentral/internal/domain"
)

type profileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(profileRepo domain.ProfileRepository) domain.ProfileService {
	return &profileService{
		profileRepo: profileRepo,
	}
}

// ensureProfile returns the profile for the identity, creating it from the
// identity claims on first contact. Shared by every service that needs the
// caller's profile row to exist.
func ensureProfile(ctx context.Context, repo domain.ProfileRepository, identity domain.Identity) (*domain.Profile, error) {
	profile, err := repo.GetByID(ctx, identity.Subject)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	now := time.Now()
	profile = domain.NewProfile(identity, now, now)
	if err := repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetOrCreate(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	return ensureProfile(ctx, s.profileRepo, identity)
}

func (s *profileService) Save(ctx context.Context, identity domain.Identity, displayName, teeShirtSize *string) (*domain.Profile, error) {
	profile, err := ensureProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}
	if displayName != nil && *displayName != "" {
		profile.DisplayName = *displayName
	}
	if teeShirtSize != nil && *teeShirtSize != "" {
		if !domain.ValidTeeShirtSize(*teeShirtSize) {
			return nil, fmt.Errorf("%w: unknown tee shirt size %q", domain.ErrInvalidInput, *teeShirtSize)
		}
		profile.TeeShirtSize = *teeShirtSize
	}
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
