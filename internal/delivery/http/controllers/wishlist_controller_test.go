package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"confcentral/internal/domain"
)

type mockWishlistService struct {
	added   bool
	removed bool
	details []*domain.SessionDetail
	err     error
}

func (m *mockWishlistService) Add(ctx context.Context, sessionKey string, caller domain.Identity) (bool, error) {
	return m.added, m.err
}

func (m *mockWishlistService) Remove(ctx context.Context, sessionKey string, caller domain.Identity) (bool, error) {
	return m.removed, m.err
}

func (m *mockWishlistService) List(ctx context.Context, caller domain.Identity) ([]*domain.SessionDetail, error) {
	return m.details, m.err
}

func TestWishlistController_Add_Unauthorized(t *testing.T) {
	ctrl := NewWishlistController(discardLogger(), &mockWishlistService{})

	req := httptest.NewRequest(http.MethodPost, "/wishlist/abc", nil)
	req.SetPathValue("sessionKey", "abc")
	w := httptest.NewRecorder()

	ctrl.Add(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestWishlistController_Add_SessionNotFound(t *testing.T) {
	ctrl := NewWishlistController(discardLogger(), &mockWishlistService{err: domain.ErrNotFound})

	req := authedRequest(httptest.NewRequest(http.MethodPost, "/wishlist/abc", nil))
	req.SetPathValue("sessionKey", "abc")
	w := httptest.NewRecorder()

	ctrl.Add(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWishlistController_Add_AlreadyInWishlist(t *testing.T) {
	ctrl := NewWishlistController(discardLogger(), &mockWishlistService{err: domain.ErrAlreadyInWishlist})

	req := authedRequest(httptest.NewRequest(http.MethodPost, "/wishlist/abc", nil))
	req.SetPathValue("sessionKey", "abc")
	w := httptest.NewRecorder()

	ctrl.Add(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestWishlistController_Remove_NotInWishlist(t *testing.T) {
	ctrl := NewWishlistController(discardLogger(), &mockWishlistService{err: domain.ErrNotInWishlist})

	req := authedRequest(httptest.NewRequest(http.MethodDelete, "/wishlist/abc", nil))
	req.SetPathValue("sessionKey", "abc")
	w := httptest.NewRecorder()

	ctrl.Remove(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestWishlistController_Add_Success(t *testing.T) {
	ctrl := NewWishlistController(discardLogger(), &mockWishlistService{added: true})

	req := authedRequest(httptest.NewRequest(http.MethodPost, "/wishlist/abc", nil))
	req.SetPathValue("sessionKey", "abc")
	w := httptest.NewRecorder()

	ctrl.Add(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var resp WishlistAddSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !resp.Data.Added {
		t.Fatalf("expected added=true")
	}
}
