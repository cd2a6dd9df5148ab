package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"confcentral/internal/domain"
)

type conferenceService struct {
	confRepo    domain.ConferenceRepository
	profileRepo domain.ProfileRepository
	queue       domain.TaskQueue
	logger      *slog.Logger
}

func NewConferenceService(
	confRepo domain.ConferenceRepository,
	profileRepo domain.ProfileRepository,
	queue domain.TaskQueue,
	logger *slog.Logger,
) domain.ConferenceService {
	return &conferenceService{
		confRepo:    confRepo,
		profileRepo: profileRepo,
		queue:       queue,
		logger:      logger,
	}
}

func (s *conferenceService) CreateConference(ctx context.Context, conf *domain.Conference, organizer domain.Identity) error {
	if conf.Name == "" {
		return fmt.Errorf("%w: conference name is required", domain.ErrInvalidInput)
	}

	profile, err := ensureProfile(ctx, s.profileRepo, organizer)
	if err != nil {
		return err
	}
	conf.OrganizerID = profile.ID

	// Defaults for unset optional fields.
	if conf.City == "" {
		conf.City = domain.DefaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = domain.DefaultTopics()
	}
	if conf.MaxAttendees < 0 {
		conf.MaxAttendees = domain.DefaultMaxAttendees
	}

	// Month is derived from the start date, 0 when absent.
	if conf.StartDate != nil {
		conf.Month = int(conf.StartDate.Month())
	} else {
		conf.Month = 0
	}

	// On creation every seat is open; any caller-supplied seatsAvailable is
	// overridden. The rule only triggers for a positive capacity.
	if conf.MaxAttendees > 0 {
		conf.SeatsAvailable = conf.MaxAttendees
	}

	now := time.Now()
	conf.CreatedAt = now
	conf.UpdatedAt = now

	if err := s.confRepo.Create(ctx, conf); err != nil {
		return fmt.Errorf("create conference: %w", err)
	}

	// The confirmation email is an asynchronous side task; a failed enqueue
	// must not roll back the conference.
	task, err := domain.NewTask(domain.TaskTypeConfirmationEmail, domain.ConfirmationEmailPayload{
		Email:          organizer.Email,
		ConferenceName: conf.Name,
		ConferenceInfo: fmt.Sprintf("%s in %s", conf.Name, conf.City),
	})
	if err == nil {
		err = s.queue.Enqueue(ctx, task)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "enqueue confirmation email failed", "conference_id", conf.ID, "err", err)
	}
	return nil
}

func (s *conferenceService) GetConference(ctx context.Context, key string) (*domain.ConferenceWithOrganizer, error) {
	id, err := domain.DecodeKey(domain.KindConference, key)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	conf, err := s.confRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return &domain.ConferenceWithOrganizer{
		Conference:           conf,
		OrganizerDisplayName: s.organizerName(ctx, conf.OrganizerID),
	}, nil
}

// normalizeFilters validates caller filters against the whitelists, coerces
// numeric values, and enforces the single-inequality-field rule the storage
// engine's sort order depends on.
func normalizeFilters(filters []domain.QueryFilter) (domain.ConferenceQuery, error) {
	var q domain.ConferenceQuery
	inequalityField := ""
	for _, f := range filters {
		column, ok := domain.FilterFields[f.Field]
		if !ok {
			return q, fmt.Errorf("%w: unknown filter field %q", domain.ErrInvalidInput, f.Field)
		}
		operator, ok := domain.FilterOperators[f.Operator]
		if !ok {
			return q, fmt.Errorf("%w: unknown filter operator %q", domain.ErrInvalidInput, f.Operator)
		}

		var value any = f.Value
		if column == "month" || column == "max_attendees" {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return q, fmt.Errorf("%w: filter value %q is not a number", domain.ErrInvalidInput, f.Value)
			}
			value = n
		}

		// Every operator except "=" is an inequality; only one field may
		// carry one.
		if operator != "=" {
			if inequalityField != "" && inequalityField != column {
				return q, fmt.Errorf("%w: inequality filter is allowed on only one field", domain.ErrInvalidInput)
			}
			inequalityField = column
		}

		q.Filters = append(q.Filters, domain.NormalizedFilter{
			Column:   column,
			Operator: operator,
			Value:    value,
		})
	}
	q.OrderBy = inequalityField
	return q, nil
}

func (s *conferenceService) QueryConferences(ctx context.Context, filters []domain.QueryFilter) ([]*domain.ConferenceWithOrganizer, error) {
	query, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	confs, err := s.confRepo.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query conferences: %w", err)
	}
	return s.withOrganizers(ctx, confs), nil
}

func (s *conferenceService) ListCreated(ctx context.Context, organizer domain.Identity) ([]*domain.ConferenceWithOrganizer, error) {
	profile, err := ensureProfile(ctx, s.profileRepo, organizer)
	if err != nil {
		return nil, err
	}
	confs, err := s.confRepo.ListByOrganizerID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list created conferences: %w", err)
	}
	result := make([]*domain.ConferenceWithOrganizer, 0, len(confs))
	for _, conf := range confs {
		result = append(result, &domain.ConferenceWithOrganizer{
			Conference:           conf,
			OrganizerDisplayName: profile.DisplayName,
		})
	}
	return result, nil
}

func (s *conferenceService) ListAttending(ctx context.Context, caller domain.Identity) ([]*domain.ConferenceWithOrganizer, error) {
	profile, err := ensureProfile(ctx, s.profileRepo, caller)
	if err != nil {
		return nil, err
	}
	confs, err := s.confRepo.ListByAttendeeID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list attending conferences: %w", err)
	}
	return s.withOrganizers(ctx, confs), nil
}

func (s *conferenceService) ListAttendees(ctx context.Context, key string, caller domain.Identity) ([]*domain.Profile, error) {
	id, err := domain.DecodeKey(domain.KindConference, key)
	if err != nil {
		return nil, fmt.Errorf("%w: no conference found with key %q", domain.ErrInvalidInput, key)
	}
	conf, err := s.confRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no conference found with key %q", domain.ErrInvalidInput, key)
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerID != caller.Subject {
		return nil, domain.ErrForbidden
	}
	attendees, err := s.profileRepo.ListByConferenceID(ctx, conf.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return attendees, nil
}

// withOrganizers attaches organizer display names, memoizing lookups.
// Fetching one by one keeps the implementation simple; we can batch later if
// needed.
func (s *conferenceService) withOrganizers(ctx context.Context, confs []*domain.Conference) []*domain.ConferenceWithOrganizer {
	names := make(map[string]string)
	result := make([]*domain.ConferenceWithOrganizer, 0, len(confs))
	for _, conf := range confs {
		name, ok := names[conf.OrganizerID]
		if !ok {
			name = s.organizerName(ctx, conf.OrganizerID)
			names[conf.OrganizerID] = name
		}
		result = append(result, &domain.ConferenceWithOrganizer{
			Conference:           conf,
			OrganizerDisplayName: name,
		})
	}
	return result
}

func (s *conferenceService) organizerName(ctx context.Context, organizerID string) string {
	profile, err := s.profileRepo.GetByID(ctx, organizerID)
	if err != nil {
		return ""
	}
	return profile.DisplayName
}
