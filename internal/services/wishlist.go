package services

import (
	"context"
	"errors"
	"fmt"

	"confcentral/internal/domain"
)

type wishlistService struct {
	wishlistRepo domain.WishlistRepository
	sessionRepo  domain.SessionRepository
	profileRepo  domain.ProfileRepository
}

func NewWishlistService(
	wishlistRepo domain.WishlistRepository,
	sessionRepo domain.SessionRepository,
	profileRepo domain.ProfileRepository,
) domain.WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		sessionRepo:  sessionRepo,
		profileRepo:  profileRepo,
	}
}

func (s *wishlistService) resolve(ctx context.Context, sessionKey string, caller domain.Identity) (profileID, sessionID string, err error) {
	profile, err := ensureProfile(ctx, s.profileRepo, caller)
	if err != nil {
		return "", "", err
	}
	id, err := domain.DecodeKey(domain.KindSession, sessionKey)
	if err != nil {
		return "", "", domain.ErrNotFound
	}
	if _, err := s.sessionRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", "", domain.ErrNotFound
		}
		return "", "", fmt.Errorf("get session: %w", err)
	}
	return profile.ID, id, nil
}

func (s *wishlistService) Add(ctx context.Context, sessionKey string, caller domain.Identity) (bool, error) {
	profileID, sessionID, err := s.resolve(ctx, sessionKey, caller)
	if err != nil {
		return false, err
	}
	if err := s.wishlistRepo.Add(ctx, profileID, sessionID); err != nil {
		if errors.Is(err, domain.ErrAlreadyInWishlist) {
			return false, domain.ErrAlreadyInWishlist
		}
		return false, fmt.Errorf("add to wishlist: %w", err)
	}
	return true, nil
}

func (s *wishlistService) Remove(ctx context.Context, sessionKey string, caller domain.Identity) (bool, error) {
	profileID, sessionID, err := s.resolve(ctx, sessionKey, caller)
	if err != nil {
		return false, err
	}
	if err := s.wishlistRepo.Remove(ctx, profileID, sessionID); err != nil {
		// Removing an absent session conflicts, unlike unregistration.
		if errors.Is(err, domain.ErrNotInWishlist) {
			return false, domain.ErrNotInWishlist
		}
		return false, fmt.Errorf("remove from wishlist: %w", err)
	}
	return true, nil
}

func (s *wishlistService) List(ctx context.Context, caller domain.Identity) ([]*domain.SessionDetail, error) {
	profile, err := ensureProfile(ctx, s.profileRepo, caller)
	if err != nil {
		return nil, err
	}
	details, err := s.sessionRepo.ListByProfileWishlist(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return details, nil
}
