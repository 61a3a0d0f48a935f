package models

import (
	"errors"
	"testing"
	"time"

	itemdomain "github.com/ghuser/marketscout/services/marketplaceitem/domain"
)

func strptr(s string) *string       { return &s }
func f64ptr(f float64) *float64     { return &f }
func i64ptr(i int64) *int64         { return &i }
func timeptr(t time.Time) *time.Time { return &t }

func TestNewMarketplaceItem(t *testing.T) {
	t.Run("sets required fields", func(t *testing.T) {
		item, err := NewMarketplaceItem("EBAY-123", "Wireless Earbuds", 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ExternalItemID != "EBAY-123" {
			t.Fatalf("expected ExternalItemID EBAY-123, got %q", item.ExternalItemID)
		}
		if item.Title != "Wireless Earbuds" {
			t.Fatalf("expected Title Wireless Earbuds, got %q", item.Title)
		}
		if item.PlatformID != 1 {
			t.Fatalf("expected PlatformID 1, got %d", item.PlatformID)
		}
	})

	t.Run("ID is zero until storage assigns it", func(t *testing.T) {
		item, err := NewMarketplaceItem("EBAY-123", "Wireless Earbuds", 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 0 {
			t.Fatalf("expected zero ID before insert, got %d", item.ID)
		}
	})

	t.Run("defaults DetectedDate to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item, err := NewMarketplaceItem("EBAY-123", "Wireless Earbuds", 1, nil)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.DetectedDate.Before(before) || item.DetectedDate.After(after) {
			t.Fatalf("DetectedDate %v not between %v and %v", item.DetectedDate, before, after)
		}
	})

	t.Run("keeps an explicit DetectedDate", func(t *testing.T) {
		detected := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		item, err := NewMarketplaceItem("EBAY-123", "Wireless Earbuds", 1, timeptr(detected))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.DetectedDate.Equal(detected) {
			t.Fatalf("expected DetectedDate %v, got %v", detected, item.DetectedDate)
		}
	})

	t.Run("normalizes DetectedDate to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		detected := time.Date(2024, 1, 15, 15, 30, 0, 0, loc)
		item, err := NewMarketplaceItem("EBAY-123", "Wireless Earbuds", 1, timeptr(detected))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.DetectedDate.Location() != time.UTC {
			t.Fatalf("expected UTC location, got %v", item.DetectedDate.Location())
		}
		if !item.DetectedDate.Equal(detected) {
			t.Fatalf("UTC conversion changed the instant: %v vs %v", item.DetectedDate, detected)
		}
	})

	t.Run("rejects blank external item id", func(t *testing.T) {
		_, err := NewMarketplaceItem("   ", "Wireless Earbuds", 1, nil)
		if !errors.Is(err, itemdomain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := NewMarketplaceItem("EBAY-123", "", 1, nil)
		if !errors.Is(err, itemdomain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("rejects non-positive platform id", func(t *testing.T) {
		for _, platformID := range []int64{0, -1} {
			_, err := NewMarketplaceItem("EBAY-123", "Wireless Earbuds", platformID, nil)
			if !errors.Is(err, itemdomain.ErrInvalidArgument) {
				t.Fatalf("platformID=%d: expected ErrInvalidArgument, got %v", platformID, err)
			}
		}
	})
}

func TestMarketplaceItem_UpdateGroups(t *testing.T) {
	newItem := func(t *testing.T) *MarketplaceItem {
		t.Helper()
		item, err := NewMarketplaceItem("EBAY-123", "Wireless Earbuds", 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return item
	}

	t.Run("UpdatePricing replaces the whole group", func(t *testing.T) {
		item := newItem(t)
		item.UpdatePricing(strptr("$10.00"), f64ptr(10))

		if item.PriceText == nil || *item.PriceText != "$10.00" {
			t.Fatalf("expected PriceText $10.00, got %v", item.PriceText)
		}
		if item.PriceUSD == nil || *item.PriceUSD != 10 {
			t.Fatalf("expected PriceUSD 10, got %v", item.PriceUSD)
		}

		item.UpdatePricing(nil, f64ptr(12.5))
		if item.PriceText != nil {
			t.Fatalf("expected PriceText cleared, got %q", *item.PriceText)
		}
		if item.PriceUSD == nil || *item.PriceUSD != 12.5 {
			t.Fatalf("expected PriceUSD 12.5, got %v", item.PriceUSD)
		}
	})

	t.Run("UpdateSellerInfo replaces all four fields", func(t *testing.T) {
		item := newItem(t)
		item.UpdateSellerInfo(strptr("s1"), strptr("ACME"), strptr("https://x.test/s1"), strptr("US"))
		item.UpdateSellerInfo(strptr("s2"), nil, nil, nil)

		if item.SellerID == nil || *item.SellerID != "s2" {
			t.Fatalf("expected SellerID s2, got %v", item.SellerID)
		}
		if item.SellerName != nil || item.SellerURL != nil || item.SellerLocation != nil {
			t.Fatal("expected omitted seller fields cleared")
		}
	})

	t.Run("UpdateMedia replaces both URLs", func(t *testing.T) {
		item := newItem(t)
		item.UpdateMedia(strptr("https://img.test/1.jpg"), strptr("https://x.test/item/1"))
		item.UpdateMedia(nil, strptr("https://x.test/item/2"))

		if item.ItemImageURL != nil {
			t.Fatalf("expected ItemImageURL cleared, got %q", *item.ItemImageURL)
		}
		if item.ItemURL == nil || *item.ItemURL != "https://x.test/item/2" {
			t.Fatalf("expected ItemURL replaced, got %v", item.ItemURL)
		}
	})

	t.Run("UpdateQuantity replaces text and number together", func(t *testing.T) {
		item := newItem(t)
		item.UpdateQuantity(strptr("3 available"), i64ptr(3))

		if item.QuantityText == nil || *item.QuantityText != "3 available" {
			t.Fatalf("expected QuantityText, got %v", item.QuantityText)
		}
		if item.QuantityNumber == nil || *item.QuantityNumber != 3 {
			t.Fatalf("expected QuantityNumber 3, got %v", item.QuantityNumber)
		}
	})

	t.Run("update groups advance UpdatedAt", func(t *testing.T) {
		item := newItem(t)
		item.UpdatedAt = item.UpdatedAt.Add(-time.Minute)
		before := item.UpdatedAt

		item.UpdateQuantity(nil, nil)
		if !item.UpdatedAt.After(before) {
			t.Fatalf("expected UpdatedAt to advance past %v, got %v", before, item.UpdatedAt)
		}
	})
}

func TestMarketplaceItem_LifecycleHooks(t *testing.T) {
	item, err := NewMarketplaceItem("EBAY-123", "Wireless Earbuds", 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("MarkCreated stamps both timestamps to the same instant", func(t *testing.T) {
		now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		item.MarkCreated(now)

		if !item.CreatedAt.Equal(now) {
			t.Fatalf("expected CreatedAt %v, got %v", now, item.CreatedAt)
		}
		if !item.UpdatedAt.Equal(item.CreatedAt) {
			t.Fatalf("expected UpdatedAt == CreatedAt, got %v vs %v", item.UpdatedAt, item.CreatedAt)
		}
	})

	t.Run("MarkUpdated leaves CreatedAt alone", func(t *testing.T) {
		created := item.CreatedAt
		later := created.Add(time.Hour)
		item.MarkUpdated(later)

		if !item.CreatedAt.Equal(created) {
			t.Fatalf("CreatedAt changed on update: %v vs %v", item.CreatedAt, created)
		}
		if !item.UpdatedAt.Equal(later) {
			t.Fatalf("expected UpdatedAt %v, got %v", later, item.UpdatedAt)
		}
	})
}
