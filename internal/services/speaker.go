package services

import (
	"context"
	"fmt"
	"time"

	"confcentral/internal/domain"
)

type speakerService struct {
	speakerRepo domain.SpeakerRepository
	profileRepo domain.ProfileRepository
}

func NewSpeakerService(speakerRepo domain.SpeakerRepository, profileRepo domain.ProfileRepository) domain.SpeakerService {
	return &speakerService{
		speakerRepo: speakerRepo,
		profileRepo: profileRepo,
	}
}

func (s *speakerService) AddSpeaker(ctx context.Context, speaker *domain.Speaker, caller domain.Identity) error {
	if speaker.Name == "" {
		return fmt.Errorf("%w: speaker name is required", domain.ErrInvalidInput)
	}
	if _, err := ensureProfile(ctx, s.profileRepo, caller); err != nil {
		return err
	}
	now := time.Now()
	speaker.CreatedAt = now
	speaker.UpdatedAt = now
	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return fmt.Errorf("create speaker: %w", err)
	}
	return nil
}

func (s *speakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	speakers, err := s.speakerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}

func (s *speakerService) ListPresenters(ctx context.Context, conferenceKey string) ([]*domain.Speaker, error) {
	confID, err := domain.DecodeKey(domain.KindConference, conferenceKey)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	speakers, err := s.speakerRepo.ListByConferenceID(ctx, confID)
	if err != nil {
		return nil, fmt.Errorf("list presenters: %w", err)
	}
	return speakers, nil
}
