package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"confcentral/internal/delivery/http/helpers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/domain"
)

// RegistrationResponse is the data payload for registration endpoints.
type RegistrationResponse struct {
	Registered bool `json:"registered"`
}

// RegistrationSuccessResponse is the success response envelope for POST /conferences/{conferenceKey}/registration (200).
type RegistrationSuccessResponse struct {
	Data  RegistrationResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// UnregistrationResponse is the data payload for DELETE /conferences/{conferenceKey}/registration (200).
type UnregistrationResponse struct {
	Removed bool `json:"removed"`
}

// UnregistrationSuccessResponse is the success response envelope for DELETE /conferences/{conferenceKey}/registration (200).
type UnregistrationSuccessResponse struct {
	Data  UnregistrationResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for a conference
// @Description Registers the authenticated caller for the conference and takes one seat. The registration and the seat update happen in a single transaction.
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Param conferenceKey path string true "Conference key"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains registered flag"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered or sold out)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceKey}/registration [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("conferenceKey")
	if key == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceKey")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	registered, err := c.Service.Register(r.Context(), key, identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "already registered for this conference")
			return
		}
		if errors.Is(err, domain.ErrNoSeatsAvailable) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "no seats available")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationResponse{Registered: registered})
}

// Unregister godoc
// @Summary Unregister from a conference
// @Description Removes the authenticated caller's registration and returns the seat. Unregistering without a registration is a no-op with removed=false.
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Param conferenceKey path string true "Conference key"
// @Success 200 {object} controllers.UnregistrationSuccessResponse "data contains removed flag"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceKey}/registration [delete]
func (c *AttendeeController) Unregister(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("conferenceKey")
	if key == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceKey")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	removed, err := c.Service.Unregister(r.Context(), key, identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, UnregistrationResponse{Removed: removed})
}
