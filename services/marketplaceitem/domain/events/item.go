package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for marketplace item lifecycle events.
const (
	TopicItemCreated = "marketplace_item.created"
	TopicItemDeleted = "marketplace_item.deleted"
)

// ItemCreatedEvent is published after a new MarketplaceItem is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated);
// cmd/worker uses it to warm the redis read model.
type ItemCreatedEvent struct {
	EventID        uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version        int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID         int64     `json:"item_id"`
	ExternalItemID string    `json:"external_item_id"`
	PlatformID     int64     `json:"platform_id"`
	Title          string    `json:"title"`
	DetectedDate   time.Time `json:"detected_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after a MarketplaceItem row is removed.
// Deletion is permanent; consumers evict any derived read models.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
