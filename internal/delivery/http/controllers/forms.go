package controllers

import (
	"time"

	"confcentral/internal/domain"
)

// Wire layouts for dates and times of day.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ConferenceForm is the wire representation of a conference. The websafe_key
// is the opaque token clients pass back to address the conference.
// swagger:model ConferenceForm
type ConferenceForm struct {
	WebsafeKey           string   `json:"websafe_key"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	OrganizerDisplayName string   `json:"organizer_display_name"`
	Topics               []string `json:"topics"`
	City                 string   `json:"city"`
	StartDate            string   `json:"start_date,omitempty"`
	EndDate              string   `json:"end_date,omitempty"`
	Month                int      `json:"month"`
	MaxAttendees         int      `json:"max_attendees"`
	SeatsAvailable       int      `json:"seats_available"`
}

// NewConferenceForm maps a conference with its organizer name to the wire form.
func NewConferenceForm(cwo *domain.ConferenceWithOrganizer) ConferenceForm {
	conf := cwo.Conference
	form := ConferenceForm{
		WebsafeKey:           domain.EncodeKey(domain.KindConference, conf.ID),
		Name:                 conf.Name,
		Description:          conf.Description,
		OrganizerDisplayName: cwo.OrganizerDisplayName,
		Topics:               conf.Topics,
		City:                 conf.City,
		Month:                conf.Month,
		MaxAttendees:         conf.MaxAttendees,
		SeatsAvailable:       conf.SeatsAvailable,
	}
	if conf.StartDate != nil {
		form.StartDate = conf.StartDate.Format(dateLayout)
	}
	if conf.EndDate != nil {
		form.EndDate = conf.EndDate.Format(dateLayout)
	}
	return form
}

// NewConferenceForms maps a slice of conferences to wire forms. Never nil.
func NewConferenceForms(cwos []*domain.ConferenceWithOrganizer) []ConferenceForm {
	forms := make([]ConferenceForm, 0, len(cwos))
	for _, cwo := range cwos {
		forms = append(forms, NewConferenceForm(cwo))
	}
	return forms
}

// SessionForm is the wire representation of a session with its denormalized
// conference and speaker names.
// swagger:model SessionForm
type SessionForm struct {
	WebsafeKey      string `json:"websafe_key"`
	ConferenceKey   string `json:"conference_key"`
	ConferenceName  string `json:"conference_name"`
	SpeakerKey      string `json:"speaker_key"`
	SpeakerName     string `json:"speaker_name"`
	Name            string `json:"name"`
	Highlights      string `json:"highlights"`
	TypeOfSession   string `json:"type_of_session"`
	StartDate       string `json:"start_date,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
}

// NewSessionForm maps a session detail to the wire form.
func NewSessionForm(detail *domain.SessionDetail) SessionForm {
	sess := detail.Session
	form := SessionForm{
		WebsafeKey:      domain.EncodeKey(domain.KindSession, sess.ID),
		ConferenceKey:   domain.EncodeKey(domain.KindConference, sess.ConferenceID),
		ConferenceName:  detail.ConferenceName,
		SpeakerKey:      domain.EncodeKey(domain.KindSpeaker, sess.SpeakerID),
		SpeakerName:     detail.SpeakerName,
		Name:            sess.Name,
		Highlights:      sess.Highlights,
		TypeOfSession:   sess.TypeOfSession,
		DurationMinutes: sess.DurationMinutes,
	}
	if sess.StartDate != nil {
		form.StartDate = sess.StartDate.Format(dateLayout)
	}
	if sess.StartTime != nil {
		form.StartTime = sess.StartTime.Format(timeLayout)
	}
	return form
}

// NewSessionForms maps a slice of session details to wire forms. Never nil.
func NewSessionForms(details []*domain.SessionDetail) []SessionForm {
	forms := make([]SessionForm, 0, len(details))
	for _, d := range details {
		forms = append(forms, NewSessionForm(d))
	}
	return forms
}

// SpeakerForm is the wire representation of a speaker.
// swagger:model SpeakerForm
type SpeakerForm struct {
	WebsafeKey string `json:"websafe_key"`
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Email      string `json:"email"`
}

// NewSpeakerForm maps a speaker to the wire form.
func NewSpeakerForm(speaker *domain.Speaker) SpeakerForm {
	return SpeakerForm{
		WebsafeKey: domain.EncodeKey(domain.KindSpeaker, speaker.ID),
		Name:       speaker.Name,
		Bio:        speaker.Bio,
		Email:      speaker.Email,
	}
}

// NewSpeakerForms maps a slice of speakers to wire forms. Never nil.
func NewSpeakerForms(speakers []*domain.Speaker) []SpeakerForm {
	forms := make([]SpeakerForm, 0, len(speakers))
	for _, sp := range speakers {
		forms = append(forms, NewSpeakerForm(sp))
	}
	return forms
}

// ProfileForm is the wire representation of a profile.
// swagger:model ProfileForm
type ProfileForm struct {
	DisplayName  string `json:"display_name"`
	MainEmail    string `json:"main_email"`
	TeeShirtSize string `json:"tee_shirt_size"`
}

// NewProfileForm maps a profile to the wire form.
func NewProfileForm(profile *domain.Profile) ProfileForm {
	return ProfileForm{
		DisplayName:  profile.DisplayName,
		MainEmail:    profile.MainEmail,
		TeeShirtSize: profile.TeeShirtSize,
	}
}

// NewProfileForms maps a slice of profiles to wire forms. Never nil.
func NewProfileForms(profiles []*domain.Profile) []ProfileForm {
	forms := make([]ProfileForm, 0, len(profiles))
	for _, p := range profiles {
		forms = append(forms, NewProfileForm(p))
	}
	return forms
}

// parseOptionalDate parses a wire date string; "" maps to nil.
func parseOptionalDate(value, layout string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
