// internal/repository/postgres/message_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Message is a buyer-to-seller note about a listing.
type Message struct {
	ID        string    `json:"id" db:"id"`
	AdID      string    `json:"ad_id" db:"ad_id"`
	SenderID  int64     `json:"sender_id" db:"sender_id"`
	SellerID  int64     `json:"seller_id" db:"seller_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *Message) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO messages (id, ad_id, sender_id, seller_id, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, m.ID, m.AdID, m.SenderID, m.SellerID, m.Body).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// ListForSeller returns messages received by a seller, newest first.
func (r *MessageRepository) ListForSeller(ctx context.Context, sellerID int64) ([]Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, ad_id, sender_id, seller_id, body, created_at
		FROM messages WHERE seller_id = $1 ORDER BY created_at DESC
	`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	msgs := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.AdID, &m.SenderID, &m.SellerID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msgs = append(msgs, m)
	}

	return msgs, rows.Err()
}
