package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"confcentral/internal/delivery/http/helpers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/domain"
)

// WishlistAddResponse is the data payload for POST /wishlist/{sessionKey} (200).
type WishlistAddResponse struct {
	Added bool `json:"added"`
}

// WishlistAddSuccessResponse is the success response envelope for POST /wishlist/{sessionKey} (200).
type WishlistAddSuccessResponse struct {
	Data  WishlistAddResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// WishlistRemoveResponse is the data payload for DELETE /wishlist/{sessionKey} (200).
type WishlistRemoveResponse struct {
	Removed bool `json:"removed"`
}

// WishlistRemoveSuccessResponse is the success response envelope for DELETE /wishlist/{sessionKey} (200).
type WishlistRemoveSuccessResponse struct {
	Data  WishlistRemoveResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type WishlistController struct {
	Logger  *slog.Logger
	Service domain.WishlistService
}

func NewWishlistController(logger *slog.Logger, svc domain.WishlistService) *WishlistController {
	return &WishlistController{
		Logger:  logger,
		Service: svc,
	}
}

// Add godoc
// @Summary Add a session to the caller's wishlist
// @Description Adds the session to the authenticated caller's wishlist. Adding a session already in the wishlist is a conflict.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param sessionKey path string true "Session key"
// @Success 200 {object} controllers.WishlistAddSuccessResponse "data contains added flag"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already in wishlist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist/{sessionKey} [post]
func (c *WishlistController) Add(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.PathValue("sessionKey")
	if sessionKey == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionKey")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	added, err := c.Service.Add(r.Context(), sessionKey, identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyInWishlist) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "session already in wishlist")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, WishlistAddResponse{Added: added})
}

// Remove godoc
// @Summary Remove a session from the caller's wishlist
// @Description Removes the session from the authenticated caller's wishlist. Removing a session that is not in the wishlist is a conflict.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param sessionKey path string true "Session key"
// @Success 200 {object} controllers.WishlistRemoveSuccessResponse "data contains removed flag"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not in wishlist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist/{sessionKey} [delete]
func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.PathValue("sessionKey")
	if sessionKey == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionKey")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	removed, err := c.Service.Remove(r.Context(), sessionKey, identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
			return
		}
		if errors.Is(err, domain.ErrNotInWishlist) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "session not in wishlist")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, WishlistRemoveResponse{Removed: removed})
}

// List godoc
// @Summary List the caller's wishlist
// @Description Returns the sessions in the authenticated caller's wishlist.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSessionsSuccessResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist [get]
func (c *WishlistController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	details, err := c.Service.List(r.Context(), identity)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewSessionForms(details))
}
