package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gearshare/internal/metrics"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const itemViewKeyPrefix = "item:view:"

// ItemViewCache keeps viewer-independent item projections in Redis. The
// cached copy never carries lastBooking/nextBooking, so owner-only data
// cannot leak through it. A miss is (nil, nil).
type ItemViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewItemViewCache(rdb *redis.Client, ttl time.Duration) *ItemViewCache {
	return &ItemViewCache{rdb: rdb, ttl: ttl}
}

func (c *ItemViewCache) Get(ctx context.Context, itemID uuid.UUID) (*queries.ItemView, error) {
	raw, err := c.rdb.Get(ctx, itemViewKey(itemID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.IncItemCacheLookup(false)
			return nil, nil
		}
		return nil, err
	}

	var view queries.ItemView
	if err := json.Unmarshal(raw, &view); err != nil {
		// A corrupt entry behaves like a miss; the next Set repairs it.
		_ = c.rdb.Del(ctx, itemViewKey(itemID)).Err()
		metrics.IncItemCacheLookup(false)
		return nil, nil
	}

	metrics.IncItemCacheLookup(true)
	return &view, nil
}

func (c *ItemViewCache) Set(ctx context.Context, view *queries.ItemView) error {
	stripped := *view
	stripped.LastBooking = nil
	stripped.NextBooking = nil

	raw, err := json.Marshal(&stripped)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, itemViewKey(view.ID), raw, c.ttl).Err()
}

func (c *ItemViewCache) Invalidate(ctx context.Context, itemID uuid.UUID) error {
	return c.rdb.Del(ctx, itemViewKey(itemID)).Err()
}

func itemViewKey(id uuid.UUID) string {
	return itemViewKeyPrefix + id.String()
}
