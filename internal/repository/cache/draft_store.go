// internal/repository/cache/draft_store.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradeyardgit/TradeYard/internal/domain/draft"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
)

// Drafts are ephemeral editing state, so they live in redis rather than
// postgres. An untouched draft disappears after a week.
const draftTTL = 7 * 24 * time.Hour

type DraftStore struct {
	client *redis.Client
}

func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client}
}

func draftKey(ownerID int64, draftID string) string {
	return fmt.Sprintf("draft:%d:%s", ownerID, draftID)
}

func (s *DraftStore) Get(ctx context.Context, ownerID int64, draftID string) (*draft.Draft, error) {
	data, err := s.client.Get(ctx, draftKey(ownerID, draftID)).Bytes()
	if err == redis.Nil {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var d draft.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &d, nil
}

func (s *DraftStore) Save(ctx context.Context, d *draft.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(d.OwnerID, d.ID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *DraftStore) Delete(ctx context.Context, ownerID int64, draftID string) error {
	return s.client.Del(ctx, draftKey(ownerID, draftID)).Err()
}
