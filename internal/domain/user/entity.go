// internal/domain/user/entity.go
package user

import (
	"database/sql"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

type User struct {
	ID           int64          `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Email        string         `json:"email" db:"email"`
	Phone        sql.NullString `json:"phone,omitempty" db:"phone"`
	Avatar       sql.NullString `json:"avatar,omitempty" db:"avatar"`
	LocationID   sql.NullString `json:"location,omitempty" db:"location_id"`
	Role         Role           `json:"role" db:"role"`
	Status       Status         `json:"status" db:"status"`
	PasswordHash string         `json:"-" db:"password_hash"`
	JoinedAt     time.Time      `json:"joined_at" db:"joined_at"`
	UpdatedAt    time.Time      `json:"-" db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
