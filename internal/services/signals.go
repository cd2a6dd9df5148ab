package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"confcentral/internal/domain"
)

const announcementPrefix = "Last chance to attend! The following conferences are nearly sold out: "
const featuredSpeakerPrefix = "The featured speaker for this conference is: "

type signalService struct {
	confRepo    domain.ConferenceRepository
	sessionRepo domain.SessionRepository
	speakerRepo domain.SpeakerRepository
	cache       domain.SignalCache
}

// NewSignalService creates the service for the derived announcement and
// featured-speaker signals. The cache is an injected collaborator so tests
// can substitute an in-memory one.
func NewSignalService(
	confRepo domain.ConferenceRepository,
	sessionRepo domain.SessionRepository,
	speakerRepo domain.SpeakerRepository,
	cache domain.SignalCache,
) domain.SignalService {
	return &signalService{
		confRepo:    confRepo,
		sessionRepo: sessionRepo,
		speakerRepo: speakerRepo,
		cache:       cache,
	}
}

func (s *signalService) RecomputeAnnouncement(ctx context.Context) (string, error) {
	confs, err := s.confRepo.ListNearlySoldOut(ctx)
	if err != nil {
		return "", fmt.Errorf("list nearly sold out conferences: %w", err)
	}
	if len(confs) == 0 {
		// No qualifying conferences clears the entry rather than storing "".
		if err := s.cache.Delete(ctx, domain.AnnouncementCacheKey); err != nil {
			return "", fmt.Errorf("delete announcement: %w", err)
		}
		return "", nil
	}
	names := make([]string, 0, len(confs))
	for _, conf := range confs {
		names = append(names, conf.Name)
	}
	announcement := announcementPrefix + strings.Join(names, ", ")
	if err := s.cache.Set(ctx, domain.AnnouncementCacheKey, announcement); err != nil {
		return "", fmt.Errorf("set announcement: %w", err)
	}
	return announcement, nil
}

func (s *signalService) Announcement(ctx context.Context) (string, error) {
	return s.cache.Get(ctx, domain.AnnouncementCacheKey)
}

func (s *signalService) SetFeaturedSpeaker(ctx context.Context, speakerKey, conferenceKey string) (string, error) {
	speakerID, err := domain.DecodeKey(domain.KindSpeaker, speakerKey)
	if err != nil {
		return "", fmt.Errorf("%w: bad speaker key", domain.ErrInvalidInput)
	}
	confID, err := domain.DecodeKey(domain.KindConference, conferenceKey)
	if err != nil {
		return "", fmt.Errorf("%w: bad conference key", domain.ErrInvalidInput)
	}
	count, err := s.sessionRepo.CountByConferenceAndSpeaker(ctx, confID, speakerID)
	if err != nil {
		return "", fmt.Errorf("count sessions: %w", err)
	}
	if count <= 1 {
		// A single session does not feature the speaker; any previously
		// cached value stays as-is.
		return "", nil
	}
	speaker, err := s.speakerRepo.GetByID(ctx, speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get speaker: %w", err)
	}
	featured := featuredSpeakerPrefix + speaker.Name
	if err := s.cache.Set(ctx, domain.FeaturedSpeakerCacheKey, featured); err != nil {
		return "", fmt.Errorf("set featured speaker: %w", err)
	}
	return featured, nil
}

func (s *signalService) FeaturedSpeaker(ctx context.Context) (string, error) {
	return s.cache.Get(ctx, domain.FeaturedSpeakerCacheKey)
}
