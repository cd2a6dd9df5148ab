package controllers

import (
	"log/slog"
	"net/http"

	"confcentral/internal/delivery/http/helpers"
	"confcentral/internal/domain"
)

// SignalResponse is the data payload for the cached signal endpoints. An empty
// message means no signal is currently set.
type SignalResponse struct {
	Message string `json:"message"`
}

// SignalSuccessResponse is the success response envelope for signal endpoints (200).
type SignalSuccessResponse struct {
	Data  SignalResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SignalController struct {
	Logger  *slog.Logger
	Service domain.SignalService
}

func NewSignalController(logger *slog.Logger, svc domain.SignalService) *SignalController {
	return &SignalController{
		Logger:  logger,
		Service: svc,
	}
}

// GetAnnouncement godoc
// @Summary Get the current announcement
// @Description Returns the cached near-sold-out announcement, or an empty message when none is set.
// @Tags signals
// @Produce json
// @Success 200 {object} controllers.SignalSuccessResponse "data contains the announcement"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /announcement [get]
func (c *SignalController) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	message, err := c.Service.Announcement(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SignalResponse{Message: message})
}

// RecomputeAnnouncement godoc
// @Summary Recompute the announcement
// @Description Rebuilds the near-sold-out announcement from conferences with 1 to 5 seats remaining and caches it. Meant to be called from a scheduler.
// @Tags signals
// @Produce json
// @Success 200 {object} controllers.SignalSuccessResponse "data contains the recomputed announcement"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /announcement/recompute [post]
func (c *SignalController) RecomputeAnnouncement(w http.ResponseWriter, r *http.Request) {
	message, err := c.Service.RecomputeAnnouncement(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SignalResponse{Message: message})
}

// GetFeaturedSpeaker godoc
// @Summary Get the featured speaker
// @Description Returns the cached featured-speaker message, or an empty message when none is set.
// @Tags signals
// @Produce json
// @Success 200 {object} controllers.SignalSuccessResponse "data contains the featured speaker"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /featured-speaker [get]
func (c *SignalController) GetFeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	message, err := c.Service.FeaturedSpeaker(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SignalResponse{Message: message})
}
