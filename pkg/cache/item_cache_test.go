package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Integration tests — skipped unless REDIS_URL is set.
func TestItemCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ic := NewItemCache(rc)
	ctx := context.Background()

	priceText := "$10.00"
	item := &CachedItem{
		ID:             987654321,
		ExternalItemID: "EBAY-CACHE-TEST",
		Title:          "Cache Test Item",
		PlatformID:     1,
		PriceText:      &priceText,
		DetectedDate:   time.Now().UTC().Truncate(time.Second),
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
		UpdatedAt:      time.Now().UTC().Truncate(time.Second),
	}

	t.Run("Set_Get_RoundTrip", func(t *testing.T) {
		if err := ic.Set(ctx, item); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := ic.Get(ctx, item.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ExternalItemID != item.ExternalItemID {
			t.Errorf("ExternalItemID: got %q, want %q", got.ExternalItemID, item.ExternalItemID)
		}
		if got.PriceText == nil || *got.PriceText != priceText {
			t.Errorf("PriceText: got %v, want %q", got.PriceText, priceText)
		}
		if got.SellerID != nil {
			t.Errorf("expected nil SellerID to survive the round trip, got %v", got.SellerID)
		}
	})

	t.Run("Delete_Then_Get_Misses", func(t *testing.T) {
		if err := ic.Delete(ctx, item.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, err := ic.Get(ctx, item.ID)
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})

	t.Run("Get_MissingKey", func(t *testing.T) {
		_, err := ic.Get(ctx, -1)
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil for missing key, got %v", err)
		}
	})
}
