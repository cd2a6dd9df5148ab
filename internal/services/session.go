package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"confcentral/internal/domain"
)

// Sessions starting at or after this hour fall outside the "daytime" query.
const eveningHour = 19

type sessionService struct {
	sessionRepo domain.SessionRepository
	confRepo    domain.ConferenceRepository
	speakerRepo domain.SpeakerRepository
	queue       domain.TaskQueue
	logger      *slog.Logger
}

func NewSessionService(
	sessionRepo domain.SessionRepository,
	confRepo domain.ConferenceRepository,
	speakerRepo domain.SpeakerRepository,
	queue domain.TaskQueue,
	logger *slog.Logger,
) domain.SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		confRepo:    confRepo,
		speakerRepo: speakerRepo,
		queue:       queue,
		logger:      logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, conferenceKey string, sess *domain.Session, speakerKey string, caller domain.Identity) (*domain.SessionDetail, error) {
	if sess.Name == "" {
		return nil, fmt.Errorf("%w: session name is required", domain.ErrInvalidInput)
	}

	confID, err := domain.DecodeKey(domain.KindConference, conferenceKey)
	if err != nil {
		return nil, fmt.Errorf("%w: no conference found with key %q", domain.ErrInvalidInput, conferenceKey)
	}
	conf, err := s.confRepo.GetByID(ctx, confID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no conference found with key %q", domain.ErrInvalidInput, conferenceKey)
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerID != caller.Subject {
		return nil, domain.ErrForbidden
	}

	speakerID, err := domain.DecodeKey(domain.KindSpeaker, speakerKey)
	if err != nil {
		return nil, fmt.Errorf("%w: no speaker found with key %q", domain.ErrInvalidInput, speakerKey)
	}
	speaker, err := s.speakerRepo.GetByID(ctx, speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no speaker found with key %q", domain.ErrInvalidInput, speakerKey)
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}

	sess.ConferenceID = conf.ID
	sess.SpeakerID = speaker.ID
	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// Featured-speaker recompute runs asynchronously; a failed enqueue does
	// not roll back the session.
	task, err := domain.NewTask(domain.TaskTypeFeaturedSpeaker, domain.FeaturedSpeakerPayload{
		SpeakerKey:    speakerKey,
		ConferenceKey: conferenceKey,
	})
	if err == nil {
		err = s.queue.Enqueue(ctx, task)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "enqueue featured speaker task failed", "session_id", sess.ID, "err", err)
	}

	return &domain.SessionDetail{
		Session:        sess,
		ConferenceName: conf.Name,
		SpeakerName:    speaker.Name,
	}, nil
}

// resolveConferenceID decodes the key and confirms the conference exists.
func (s *sessionService) resolveConferenceID(ctx context.Context, conferenceKey string) (string, error) {
	confID, err := domain.DecodeKey(domain.KindConference, conferenceKey)
	if err != nil {
		return "", domain.ErrNotFound
	}
	if _, err := s.confRepo.GetByID(ctx, confID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get conference: %w", err)
	}
	return confID, nil
}

func (s *sessionService) ListByConference(ctx context.Context, conferenceKey string) ([]*domain.SessionDetail, error) {
	confID, err := s.resolveConferenceID(ctx, conferenceKey)
	if err != nil {
		return nil, err
	}
	details, err := s.sessionRepo.ListByConferenceID(ctx, confID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return details, nil
}

func (s *sessionService) ListByConferenceAndType(ctx context.Context, conferenceKey, typeOfSession string) ([]*domain.SessionDetail, error) {
	confID, err := s.resolveConferenceID(ctx, conferenceKey)
	if err != nil {
		return nil, err
	}
	details, err := s.sessionRepo.ListByConferenceIDAndType(ctx, confID, typeOfSession)
	if err != nil {
		return nil, fmt.Errorf("list sessions by type: %w", err)
	}
	return details, nil
}

func (s *sessionService) ListBySpeaker(ctx context.Context, speakerKey string) ([]*domain.SessionDetail, error) {
	speakerID, err := domain.DecodeKey(domain.KindSpeaker, speakerKey)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	details, err := s.sessionRepo.ListBySpeakerID(ctx, speakerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by speaker: %w", err)
	}
	return details, nil
}

func (s *sessionService) ListDaytimeNonWorkshops(ctx context.Context) ([]*domain.SessionDetail, error) {
	// The storage engine allows one inequality dimension per query; the type
	// filter takes it, so the time-of-day cut happens here.
	details, err := s.sessionRepo.ListByTypeNot(ctx, "workshop")
	if err != nil {
		return nil, fmt.Errorf("list non-workshop sessions: %w", err)
	}
	daytime := make([]*domain.SessionDetail, 0, len(details))
	for _, d := range details {
		if d.Session.StartTime == nil {
			continue
		}
		if d.Session.StartTime.Hour() < eveningHour {
			daytime = append(daytime, d)
		}
	}
	return daytime, nil
}
