package services

import (
	"context"
	"sort"

	"confcentral/internal/domain"
)

// Hand-rolled fakes shared by the service tests. Each fake keeps its state in
// maps and exposes err fields to force failures.

type fakeProfileRepo struct {
	profiles  map[string]*domain.Profile
	attendees map[string][]*domain.Profile
	getErr    error
	createErr error
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:  make(map[string]*domain.Profile),
		attendees: make(map[string][]*domain.Profile),
	}
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.profiles[profile.ID]; !ok {
		return domain.ErrNotFound
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Profile, error) {
	return f.attendees[conferenceID], nil
}

type fakeConferenceRepo struct {
	confs       map[string]*domain.Conference
	nextID      int
	queryResult []*domain.Conference
	lastQuery   domain.ConferenceQuery
	createErr   error
	queryErr    error
}

func newFakeConferenceRepo() *fakeConferenceRepo {
	return &fakeConferenceRepo{confs: make(map[string]*domain.Conference), nextID: 1}
}

func (f *fakeConferenceRepo) Create(ctx context.Context, conf *domain.Conference) error {
	if f.createErr != nil {
		return f.createErr
	}
	conf.ID = string(rune('0' + f.nextID))
	f.nextID++
	f.confs[conf.ID] = conf
	return nil
}

func (f *fakeConferenceRepo) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	conf, ok := f.confs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return conf, nil
}

func (f *fakeConferenceRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	var result []*domain.Conference
	for _, conf := range f.confs {
		if conf.OrganizerID == organizerID {
			result = append(result, conf)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeConferenceRepo) ListByAttendeeID(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	return nil, nil
}

func (f *fakeConferenceRepo) Query(ctx context.Context, q domain.ConferenceQuery) ([]*domain.Conference, error) {
	f.lastQuery = q
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.queryResult, nil
}

func (f *fakeConferenceRepo) ListNearlySoldOut(ctx context.Context) ([]*domain.Conference, error) {
	var result []*domain.Conference
	for _, conf := range f.confs {
		if conf.SeatsAvailable >= 1 && conf.SeatsAvailable <= 5 {
			result = append(result, conf)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// fakeRegistrationRepo applies the real seat semantics against the shared
// conference fake so registration tests exercise the arithmetic.
type fakeRegistrationRepo struct {
	confs      *fakeConferenceRepo
	registered map[string]map[string]bool
}

func newFakeRegistrationRepo(confs *fakeConferenceRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{confs: confs, registered: make(map[string]map[string]bool)}
}

func (f *fakeRegistrationRepo) Register(ctx context.Context, conferenceID, profileID string) error {
	conf, ok := f.confs.confs[conferenceID]
	if !ok {
		return domain.ErrNotFound
	}
	if f.registered[conferenceID][profileID] {
		return domain.ErrAlreadyRegistered
	}
	if conf.SeatsAvailable <= 0 {
		return domain.ErrNoSeatsAvailable
	}
	if f.registered[conferenceID] == nil {
		f.registered[conferenceID] = make(map[string]bool)
	}
	f.registered[conferenceID][profileID] = true
	conf.SeatsAvailable--
	return nil
}

func (f *fakeRegistrationRepo) Unregister(ctx context.Context, conferenceID, profileID string) (bool, error) {
	conf, ok := f.confs.confs[conferenceID]
	if !ok {
		return false, domain.ErrNotFound
	}
	if !f.registered[conferenceID][profileID] {
		return false, nil
	}
	delete(f.registered[conferenceID], profileID)
	conf.SeatsAvailable++
	return true, nil
}

type fakeSessionRepo struct {
	sessions  map[string]*domain.Session
	details   []*domain.SessionDetail
	wishlists map[string][]*domain.SessionDetail
	counts    map[string]int
	nextID    int
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions:  make(map[string]*domain.Session),
		wishlists: make(map[string][]*domain.SessionDetail),
		counts:    make(map[string]int),
		nextID:    1,
	}
}

func (f *fakeSessionRepo) Create(ctx context.Context, sess *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	sess.ID = string(rune('0' + f.nextID))
	f.nextID++
	f.sessions[sess.ID] = sess
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sess, nil
}

func (f *fakeSessionRepo) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.SessionDetail, error) {
	var result []*domain.SessionDetail
	for _, d := range f.details {
		if d.Session.ConferenceID == conferenceID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeSessionRepo) ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.SessionDetail, error) {
	var result []*domain.SessionDetail
	for _, d := range f.details {
		if d.Session.ConferenceID == conferenceID && d.Session.TypeOfSession == typeOfSession {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeSessionRepo) ListBySpeakerID(ctx context.Context, speakerID string) ([]*domain.SessionDetail, error) {
	var result []*domain.SessionDetail
	for _, d := range f.details {
		if d.Session.SpeakerID == speakerID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeSessionRepo) ListByTypeNot(ctx context.Context, typeOfSession string) ([]*domain.SessionDetail, error) {
	var result []*domain.SessionDetail
	for _, d := range f.details {
		if d.Session.TypeOfSession != typeOfSession {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeSessionRepo) ListByProfileWishlist(ctx context.Context, profileID string) ([]*domain.SessionDetail, error) {
	return f.wishlists[profileID], nil
}

func (f *fakeSessionRepo) CountByConferenceAndSpeaker(ctx context.Context, conferenceID, speakerID string) (int, error) {
	return f.counts[conferenceID+"/"+speakerID], nil
}

type fakeSpeakerRepo struct {
	speakers   map[string]*domain.Speaker
	presenters map[string][]*domain.Speaker
	nextID     int
	createErr  error
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{
		speakers:   make(map[string]*domain.Speaker),
		presenters: make(map[string][]*domain.Speaker),
		nextID:     1,
	}
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, speaker *domain.Speaker) error {
	if f.createErr != nil {
		return f.createErr
	}
	speaker.ID = string(rune('0' + f.nextID))
	f.nextID++
	f.speakers[speaker.ID] = speaker
	return nil
}

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	speaker, ok := f.speakers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return speaker, nil
}

func (f *fakeSpeakerRepo) List(ctx context.Context) ([]*domain.Speaker, error) {
	var result []*domain.Speaker
	for _, sp := range f.speakers {
		result = append(result, sp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeSpeakerRepo) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Speaker, error) {
	return f.presenters[conferenceID], nil
}

type fakeWishlistRepo struct {
	entries map[string]map[string]bool
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: make(map[string]map[string]bool)}
}

func (f *fakeWishlistRepo) Add(ctx context.Context, profileID, sessionID string) error {
	if f.entries[profileID][sessionID] {
		return domain.ErrAlreadyInWishlist
	}
	if f.entries[profileID] == nil {
		f.entries[profileID] = make(map[string]bool)
	}
	f.entries[profileID][sessionID] = true
	return nil
}

func (f *fakeWishlistRepo) Remove(ctx context.Context, profileID, sessionID string) error {
	if !f.entries[profileID][sessionID] {
		return domain.ErrNotInWishlist
	}
	delete(f.entries[profileID], sessionID)
	return nil
}

type fakeQueue struct {
	tasks      []*domain.Task
	enqueueErr error
}

func (f *fakeQueue) Enqueue(ctx context.Context, task *domain.Task) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.tasks = append(f.tasks, task)
	return nil
}

type fakeCache struct {
	values  map[string]string
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	delete(f.values, key)
	return nil
}
