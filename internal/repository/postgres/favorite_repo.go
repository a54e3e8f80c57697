// internal/repository/postgres/favorite_repo.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add marks an ad as a favorite for a user. Adding twice is a no-op.
func (r *FavoriteRepository) Add(ctx context.Context, userID int64, adID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO favorites (user_id, ad_id) VALUES ($1, $2)
		ON CONFLICT (user_id, ad_id) DO NOTHING
	`, userID, adID)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove unmarks a favorite. Removing a non-favorite is a no-op.
func (r *FavoriteRepository) Remove(ctx context.Context, userID int64, adID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND ad_id = $2`, userID, adID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListAdIDs returns the ids of a user's favorite ads, newest first.
func (r *FavoriteRepository) ListAdIDs(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ad_id FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// IsFavorite reports whether a user has favorited an ad.
func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID int64, adID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND ad_id = $2)`, userID, adID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}
