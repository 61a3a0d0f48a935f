package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached marketplace items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "marketplace_item"
)

// CachedItem is the denormalized read model stored in Redis, keyed by the
// surrogate item id. The entry is stored as one JSON value: the item carries
// eighteen attributes, most of them nullable, and a single marshal
// round-trips all of them without a per-field codec.
type CachedItem struct {
	ID             int64     `json:"id"`
	ExternalItemID string    `json:"external_item_id"`
	Title          string    `json:"title"`
	PlatformID     int64     `json:"platform_id"`
	SearchTerm     *string   `json:"search_term,omitempty"`
	QuantityText   *string   `json:"quantity_text,omitempty"`
	QuantityNumber *int64    `json:"quantity_number,omitempty"`
	PriceText      *string   `json:"price_text,omitempty"`
	PriceUSD       *float64  `json:"price_usd,omitempty"`
	ProductID      *string   `json:"product_id,omitempty"`
	SellerID       *string   `json:"seller_id,omitempty"`
	SellerName     *string   `json:"seller_name,omitempty"`
	SellerURL      *string   `json:"seller_url,omitempty"`
	SellerLocation *string   `json:"seller_location,omitempty"`
	ItemImageURL   *string   `json:"item_image_url,omitempty"`
	ItemURL        *string   `json:"item_url,omitempty"`
	DetectedDate   time.Time `json:"detected_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ItemCache provides read/write operations for marketplace item cache entries.
// Key format: "marketplace_item:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID int64) (*CachedItem, error) {
	data, err := c.client.Client().Get(ctx, c.key(itemID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil // key not found
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var item CachedItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("cache unmarshal: %w", err)
	}
	return &item, nil
}

// Set writes a cached item with a 24-hour TTL.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(item.ID), data, ItemCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item.
func (c *ItemCache) Delete(ctx context.Context, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "marketplace_item:{itemID}"
func (c *ItemCache) key(itemID int64) string {
	return fmt.Sprintf("%s:%d", itemCacheKeyPrefix, itemID)
}
