package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"confcentral/internal/delivery/http/helpers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/domain"
)

// CreateSessionRequest is the request body for POST /conferences/{conferenceKey}/sessions.
type CreateSessionRequest struct {
	Name            string `json:"name"`
	Highlights      string `json:"highlights"`
	TypeOfSession   string `json:"type_of_session"`
	SpeakerKey      string `json:"speaker_key"`
	StartDate       string `json:"start_date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.SpeakerKey == "" {
		errs = append(errs, "speaker_key is required")
	}
	if c.DurationMinutes < 0 {
		errs = append(errs, "duration_minutes must be non-negative")
	}
	return errs
}

// CreateSessionSuccessResponse is the success response envelope for POST /conferences/{conferenceKey}/sessions (201).
type CreateSessionSuccessResponse struct {
	Data  SessionForm       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSessionsSuccessResponse is the success response envelope for session list endpoints (200).
type ListSessionsSuccessResponse struct {
	Data  []SessionForm     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSession godoc
// @Summary Create a session in a conference
// @Description Create a session. Only the conference organizer can create sessions. An unknown conference or speaker key is a 400. On success a featured-speaker recompute is queued.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceKey path string true "Conference key"
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} controllers.CreateSessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceKey}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	conferenceKey := r.PathValue("conferenceKey")
	if conferenceKey == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceKey")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	startDate, err := parseOptionalDate(req.StartDate, dateLayout)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	startTime, err := parseOptionalDate(req.StartTime, timeLayout)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "start_time must be HH:MM")
		return
	}
	sess := &domain.Session{
		Name:            req.Name,
		Highlights:      req.Highlights,
		TypeOfSession:   req.TypeOfSession,
		StartDate:       startDate,
		StartTime:       startTime,
		DurationMinutes: req.DurationMinutes,
	}
	detail, err := c.Service.CreateSession(r.Context(), conferenceKey, sess, req.SpeakerKey, identity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, NewSessionForm(detail))
}

// ListByConference godoc
// @Summary List sessions of a conference
// @Description Returns all sessions of the conference with conference and speaker names.
// @Tags sessions
// @Produce json
// @Param conferenceKey path string true "Conference key"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceKey}/sessions [get]
func (c *SessionController) ListByConference(w http.ResponseWriter, r *http.Request) {
	conferenceKey := r.PathValue("conferenceKey")
	if conferenceKey == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceKey")
		return
	}
	details, err := c.Service.ListByConference(r.Context(), conferenceKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewSessionForms(details))
}

// ListByConferenceAndType godoc
// @Summary List sessions of a conference by type
// @Description Returns the conference's sessions with the given type (e.g. keynote, lecture, workshop).
// @Tags sessions
// @Produce json
// @Param conferenceKey path string true "Conference key"
// @Param type path string true "Session type"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceKey}/sessions/{type} [get]
func (c *SessionController) ListByConferenceAndType(w http.ResponseWriter, r *http.Request) {
	conferenceKey := r.PathValue("conferenceKey")
	typeOfSession := r.PathValue("type")
	if conferenceKey == "" || typeOfSession == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceKey or type")
		return
	}
	details, err := c.Service.ListByConferenceAndType(r.Context(), conferenceKey, typeOfSession)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewSessionForms(details))
}

// ListBySpeaker godoc
// @Summary List sessions by a speaker
// @Description Returns all sessions by the speaker across all conferences.
// @Tags sessions
// @Produce json
// @Param speakerKey path string true "Speaker key"
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerKey}/sessions [get]
func (c *SessionController) ListBySpeaker(w http.ResponseWriter, r *http.Request) {
	speakerKey := r.PathValue("speakerKey")
	if speakerKey == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speakerKey")
		return
	}
	details, err := c.Service.ListBySpeaker(r.Context(), speakerKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "speaker not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewSessionForms(details))
}

// ListDaytimeNonWorkshops godoc
// @Summary List daytime non-workshop sessions
// @Description Returns sessions that are not workshops and start before 19:00, across all conferences.
// @Tags sessions
// @Produce json
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/daytime-non-workshops [get]
func (c *SessionController) ListDaytimeNonWorkshops(w http.ResponseWriter, r *http.Request) {
	details, err := c.Service.ListDaytimeNonWorkshops(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewSessionForms(details))
}
