// internal/repository/postgres/user_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tradeyardgit/TradeYard/internal/domain/user"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, phone, avatar, location_id, role, status,
	password_hash, joined_at, updated_at`

func (r *UserRepository) scanUserRow(scanner interface {
	Scan(dest ...interface{}) error
}) (*user.User, error) {
	var u user.User
	err := scanner.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Avatar, &u.LocationID, &u.Role, &u.Status,
		&u.PasswordHash, &u.JoinedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (name, email, phone, avatar, location_id, role, status, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, joined_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		u.Name, u.Email, u.Phone, u.Avatar, u.LocationID, u.Role, u.Status, u.PasswordHash,
	).Scan(&u.ID, &u.JoinedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return r.scanUserRow(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(email) = LOWER($1)`, userColumns)
	return r.scanUserRow(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY joined_at DESC`, userColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := r.scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}

	return users, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// UpdateProfile replaces exactly the profile fields named in req.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, req *user.UpdateProfileRequest) error {
	set := []string{}
	args := []interface{}{}
	idx := 1

	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Avatar != nil {
		add("avatar", *req.Avatar)
	}
	if req.Location != nil {
		add("location_id", *req.Location)
	}

	if len(set) == 0 {
		return nil
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(set, ", "), idx)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetStatus(ctx context.Context, id int64, status user.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to set user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
