// internal/repository/postgres/ad_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tradeyardgit/TradeYard/internal/domain/ad"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type AdRepository struct {
	db *pgxpool.Pool
}

func NewAdRepository(db *pgxpool.Pool) *AdRepository {
	return &AdRepository{db: db}
}

const adColumns = `id, seller_id, title, description, price, category_id, subcategory,
	location_id, images, condition, negotiable, featured, status, posted_at, updated_at`

// scanAdRow scans a single ad row.
func (r *AdRepository) scanAdRow(scanner interface {
	Scan(dest ...interface{}) error
}) (*ad.Ad, error) {
	var a ad.Ad
	var images []string

	err := scanner.Scan(
		&a.ID, &a.SellerID, &a.Title, &a.Description, &a.Price, &a.CategoryID, &a.Subcategory,
		&a.LocationID, pq.Array(&images), &a.Condition, &a.Negotiable, &a.Featured, &a.Status,
		&a.PostedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan ad row: %w", err)
	}

	a.Images = images
	return &a, nil
}

// Create inserts a new ad. The caller assigns the id.
func (r *AdRepository) Create(ctx context.Context, a *ad.Ad) error {
	query := `
		INSERT INTO ads (
			id, seller_id, title, description, price, category_id, subcategory,
			location_id, images, condition, negotiable, featured, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING posted_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		a.ID, a.SellerID, a.Title, a.Description, a.Price, a.CategoryID, a.Subcategory,
		a.LocationID, pq.Array(a.Images), a.Condition, a.Negotiable, a.Featured, a.Status,
	).Scan(&a.PostedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ad: %w", err)
	}

	return nil
}

// FindByID retrieves an ad by id.
func (r *AdRepository) FindByID(ctx context.Context, id string) (*ad.Ad, error) {
	query := fmt.Sprintf(`SELECT %s FROM ads WHERE id = $1`, adColumns)
	return r.scanAdRow(r.db.QueryRow(ctx, query, id))
}

// ListActive returns the bulk active ad set, newest first. Filtering happens
// in the caller's filter engine, not in SQL.
func (r *AdRepository) ListActive(ctx context.Context) ([]ad.Ad, error) {
	query := fmt.Sprintf(`SELECT %s FROM ads WHERE status = $1 ORDER BY posted_at DESC`, adColumns)
	return r.listQuery(ctx, query, ad.AdStatusActive)
}

// ListAll returns every ad regardless of status (admin view).
func (r *AdRepository) ListAll(ctx context.Context) ([]ad.Ad, error) {
	query := fmt.Sprintf(`SELECT %s FROM ads ORDER BY posted_at DESC`, adColumns)
	return r.listQuery(ctx, query)
}

// ListBySeller returns a seller's ads, newest first.
func (r *AdRepository) ListBySeller(ctx context.Context, sellerID int64) ([]ad.Ad, error) {
	query := fmt.Sprintf(`SELECT %s FROM ads WHERE seller_id = $1 ORDER BY posted_at DESC`, adColumns)
	return r.listQuery(ctx, query, sellerID)
}

// ListFeatured returns active featured ads, newest first.
func (r *AdRepository) ListFeatured(ctx context.Context, limit int) ([]ad.Ad, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM ads WHERE status = $1 AND featured = TRUE ORDER BY posted_at DESC LIMIT $2`,
		adColumns,
	)
	return r.listQuery(ctx, query, ad.AdStatusActive, limit)
}

func (r *AdRepository) listQuery(ctx context.Context, query string, args ...interface{}) ([]ad.Ad, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}
	defer rows.Close()

	ads := make([]ad.Ad, 0)
	for rows.Next() {
		a, err := r.scanAdRow(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, *a)
	}

	return ads, rows.Err()
}

// Update replaces exactly the fields named in req. Nil fields keep their
// current value.
func (r *AdRepository) Update(ctx context.Context, id string, req *ad.UpdateAdRequest) error {
	set := []string{}
	args := []interface{}{}
	idx := 1

	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Price != nil {
		add("price", *req.Price)
	}
	if req.CategoryID != nil {
		add("category_id", *req.CategoryID)
	}
	if req.Subcategory != nil {
		add("subcategory", *req.Subcategory)
	}
	if req.LocationID != nil {
		add("location_id", *req.LocationID)
	}
	if req.Images != nil {
		add("images", pq.Array(*req.Images))
	}
	if req.Condition != nil {
		add("condition", *req.Condition)
	}
	if req.Negotiable != nil {
		add("negotiable", *req.Negotiable)
	}
	if req.Featured != nil {
		add("featured", *req.Featured)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}

	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE ads SET %s WHERE id = $%d`, strings.Join(set, ", "), idx)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update ad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// SetStatus updates only the status of an ad.
func (r *AdRepository) SetStatus(ctx context.Context, id string, status ad.AdStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE ads SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to set ad status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SetFeatured toggles the featured flag of an ad.
func (r *AdRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE ads SET featured = $1, updated_at = NOW() WHERE id = $2`, featured, id)
	if err != nil {
		return fmt.Errorf("failed to set ad featured flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes an ad permanently. There is no soft delete.
func (r *AdRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Stats aggregates dashboard counts.
func (r *AdRepository) Stats(ctx context.Context) (*ad.AdStats, error) {
	stats := &ad.AdStats{AdsByCategory: map[string]int64{}}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'active'),
		       COUNT(*) FILTER (WHERE featured)
		FROM ads
	`).Scan(&stats.TotalAds, &stats.ActiveAds, &stats.FeaturedAds)
	if err != nil {
		return nil, fmt.Errorf("failed to count ads: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT category_id, COUNT(*) FROM ads GROUP BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to count ads by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var categoryID string
		var count int64
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		stats.AdsByCategory[categoryID] = count
	}

	return stats, rows.Err()
}
