package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"confcentral/internal/domain"
)

func sessionTestFixtures() (*fakeSessionRepo, *fakeConferenceRepo, *fakeSpeakerRepo, *fakeQueue, domain.SessionService) {
	sessionRepo := newFakeSessionRepo()
	confRepo := newFakeConferenceRepo()
	speakerRepo := newFakeSpeakerRepo()
	queue := &fakeQueue{}
	confRepo.confs["42"] = &domain.Conference{ID: "42", Name: "GopherCon", OrganizerID: "owner"}
	speakerRepo.speakers["7"] = &domain.Speaker{ID: "7", Name: "Rob"}
	svc := NewSessionService(sessionRepo, confRepo, speakerRepo, queue, testLogger())
	return sessionRepo, confRepo, speakerRepo, queue, svc
}

func TestCreateSession(t *testing.T) {
	_, _, _, queue, svc := sessionTestFixtures()
	confKey := domain.EncodeKey(domain.KindConference, "42")
	speakerKey := domain.EncodeKey(domain.KindSpeaker, "7")

	detail, err := svc.CreateSession(context.Background(), confKey, &domain.Session{Name: "Generics"}, speakerKey, domain.Identity{Subject: "owner"})
	require.NoError(t, err)
	require.Equal(t, "GopherCon", detail.ConferenceName)
	require.Equal(t, "Rob", detail.SpeakerName)
	require.Equal(t, "42", detail.Session.ConferenceID)
	require.Equal(t, "7", detail.Session.SpeakerID)

	require.Len(t, queue.tasks, 1)
	require.Equal(t, domain.TaskTypeFeaturedSpeaker, queue.tasks[0].Type)
}

func TestCreateSessionNonOwnerForbidden(t *testing.T) {
	_, _, _, _, svc := sessionTestFixtures()

	_, err := svc.CreateSession(
		context.Background(),
		domain.EncodeKey(domain.KindConference, "42"),
		&domain.Session{Name: "Generics"},
		domain.EncodeKey(domain.KindSpeaker, "7"),
		domain.Identity{Subject: "stranger"},
	)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateSessionUnknownConference(t *testing.T) {
	_, _, _, _, svc := sessionTestFixtures()
	speakerKey := domain.EncodeKey(domain.KindSpeaker, "7")

	_, err := svc.CreateSession(context.Background(), domain.EncodeKey(domain.KindConference, "99"), &domain.Session{Name: "X"}, speakerKey, domain.Identity{Subject: "owner"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateSession(context.Background(), "junk", &domain.Session{Name: "X"}, speakerKey, domain.Identity{Subject: "owner"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSessionUnknownSpeaker(t *testing.T) {
	_, _, _, _, svc := sessionTestFixtures()
	confKey := domain.EncodeKey(domain.KindConference, "42")

	_, err := svc.CreateSession(context.Background(), confKey, &domain.Session{Name: "X"}, domain.EncodeKey(domain.KindSpeaker, "99"), domain.Identity{Subject: "owner"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSessionRequiresName(t *testing.T) {
	_, _, _, _, svc := sessionTestFixtures()

	_, err := svc.CreateSession(
		context.Background(),
		domain.EncodeKey(domain.KindConference, "42"),
		&domain.Session{},
		domain.EncodeKey(domain.KindSpeaker, "7"),
		domain.Identity{Subject: "owner"},
	)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByConferenceAndType(t *testing.T) {
	sessionRepo, _, _, _, svc := sessionTestFixtures()
	sessionRepo.details = []*domain.SessionDetail{
		{Session: &domain.Session{ID: "1", ConferenceID: "42", TypeOfSession: "keynote"}},
		{Session: &domain.Session{ID: "2", ConferenceID: "42", TypeOfSession: "workshop"}},
		{Session: &domain.Session{ID: "3", ConferenceID: "9", TypeOfSession: "keynote"}},
	}
	confKey := domain.EncodeKey(domain.KindConference, "42")

	all, err := svc.ListByConference(context.Background(), confKey)
	require.NoError(t, err)
	require.Len(t, all, 2)

	keynotes, err := svc.ListByConferenceAndType(context.Background(), confKey, "keynote")
	require.NoError(t, err)
	require.Len(t, keynotes, 1)
	require.Equal(t, "1", keynotes[0].Session.ID)
}

func TestListByConferenceUnknownConference(t *testing.T) {
	_, _, _, _, svc := sessionTestFixtures()
	ghostKey := domain.EncodeKey(domain.KindConference, "99")

	_, err := svc.ListByConference(context.Background(), ghostKey)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ListByConferenceAndType(context.Background(), ghostKey, "keynote")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListDaytimeNonWorkshops(t *testing.T) {
	at := func(hour int) *time.Time {
		ts := time.Date(2026, time.June, 10, hour, 0, 0, 0, time.UTC)
		return &ts
	}
	sessionRepo, _, _, _, svc := sessionTestFixtures()
	sessionRepo.details = []*domain.SessionDetail{
		{Session: &domain.Session{ID: "1", TypeOfSession: "keynote", StartTime: at(10)}},
		{Session: &domain.Session{ID: "2", TypeOfSession: "workshop", StartTime: at(10)}},
		{Session: &domain.Session{ID: "3", TypeOfSession: "keynote", StartTime: at(19)}},
		{Session: &domain.Session{ID: "4", TypeOfSession: "keynote", StartTime: at(18)}},
		{Session: &domain.Session{ID: "5", TypeOfSession: "keynote"}},
	}

	got, err := svc.ListDaytimeNonWorkshops(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].Session.ID)
	require.Equal(t, "4", got[1].Session.ID)
}
