package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"confcentral/internal/delivery/http/helpers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/domain"
)

// AddSpeakerRequest is the request body for POST /speakers.
type AddSpeakerRequest struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Email string `json:"email"`
}

// Validate implements Validator.
func (a AddSpeakerRequest) Validate() []string {
	var errs []string
	if a.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// AddSpeakerSuccessResponse is the success response envelope for POST /speakers (201).
type AddSpeakerSuccessResponse struct {
	Data  SpeakerForm       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSpeakersSuccessResponse is the success response envelope for speaker list endpoints (200).
type ListSpeakersSuccessResponse struct {
	Data  []SpeakerForm     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// AddSpeaker godoc
// @Summary Register a speaker
// @Description Create a speaker. Speakers are shared across conferences and are not tied to a profile.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param speaker body AddSpeakerRequest true "Speaker data"
// @Success 201 {object} controllers.AddSpeakerSuccessResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) AddSpeaker(w http.ResponseWriter, r *http.Request) {
	var req AddSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	speaker := &domain.Speaker{
		Name:  req.Name,
		Bio:   req.Bio,
		Email: req.Email,
	}
	if err := c.Service.AddSpeaker(r.Context(), speaker, identity); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, NewSpeakerForm(speaker))
}

// ListSpeakers godoc
// @Summary List all speakers
// @Description Returns every registered speaker.
// @Tags speakers
// @Produce json
// @Success 200 {object} controllers.ListSpeakersSuccessResponse "data is an array of speakers"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.ListSpeakers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewSpeakerForms(speakers))
}

// ListPresenters godoc
// @Summary List speakers presenting at a conference
// @Description Returns the distinct speakers with at least one session at the conference.
// @Tags speakers
// @Produce json
// @Param conferenceKey path string true "Conference key"
// @Success 200 {object} controllers.ListSpeakersSuccessResponse "data is an array of speakers"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceKey}/speakers [get]
func (c *SpeakerController) ListPresenters(w http.ResponseWriter, r *http.Request) {
	conferenceKey := r.PathValue("conferenceKey")
	if conferenceKey == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceKey")
		return
	}
	speakers, err := c.Service.ListPresenters(r.Context(), conferenceKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewSpeakerForms(speakers))
}
