package postgres

import (
	"context"
	"database/sql"

	"confcentral/internal/domain"
)

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepository(db *sql.DB) domain.WishlistRepository {
	return &wishlistRepository{
		DB: db,
	}
}

func (r *wishlistRepository) Add(ctx context.Context, profileID, sessionID string) error {
	query := `
		INSERT INTO session_wishlist (profile_id, session_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (profile_id, session_id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, profileID, sessionID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAlreadyInWishlist
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, profileID, sessionID string) error {
	query := `DELETE FROM session_wishlist WHERE profile_id = $1 AND session_id = $2`
	result, err := r.DB.ExecContext(ctx, query, profileID, sessionID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotInWishlist
	}
	return nil
}
