// internal/repository/cache/ad_cache.go
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradeyardgit/TradeYard/internal/domain/ad"
)

// AdCache sits in front of the ad repository for single-ad reads. Entries
// expire after an hour and are dropped eagerly on any write.
type AdCache struct {
	client *redis.Client
}

func NewAdCache(client *redis.Client) *AdCache {
	return &AdCache{client: client}
}

func (c *AdCache) GetAd(ctx context.Context, id string) (*ad.Ad, error) {
	data, err := c.client.Get(ctx, "ad:"+id).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}
	var a ad.Ad
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *AdCache) SetAd(ctx context.Context, a *ad.Ad) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "ad:"+a.ID, data, 1*time.Hour).Err()
}

func (c *AdCache) DeleteAd(ctx context.Context, id string) error {
	return c.client.Del(ctx, "ad:"+id).Err()
}
