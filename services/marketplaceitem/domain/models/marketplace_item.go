package models

import (
	"fmt"
	"strings"
	"time"

	itemdomain "github.com/ghuser/marketscout/services/marketplaceitem/domain"
)

// MarketplaceItem is the core aggregate for this bounded context: one scraped
// observation of an item on a platform segment (marketplace, social media,
// website, domain, NFT, app store).
//
// ID is assigned by storage on insert and immutable afterwards. ExternalItemID
// is the identifier the source platform assigned; it links repeated scrapes of
// the same item and is unique across the collection.
type MarketplaceItem struct {
	ID             int64
	ExternalItemID string
	Title          string
	PlatformID     int64 // opaque reference into the platform/segment catalog
	SearchTerm     *string

	QuantityText   *string
	QuantityNumber *int64

	PriceText *string
	PriceUSD  *float64

	ProductID *string

	SellerID       *string
	SellerName     *string
	SellerURL      *string
	SellerLocation *string

	ItemImageURL *string
	ItemURL      *string

	DetectedDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewMarketplaceItem constructs a valid MarketplaceItem aggregate.
// externalItemID and title must be non-blank and platformID positive;
// violations are reported as ErrInvalidArgument. When detectedDate is nil
// the observation is stamped with the current time.
func NewMarketplaceItem(externalItemID, title string, platformID int64, detectedDate *time.Time) (*MarketplaceItem, error) {
	if strings.TrimSpace(externalItemID) == "" {
		return nil, fmt.Errorf("%w: external_item_id must not be empty", itemdomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", itemdomain.ErrInvalidArgument)
	}
	if platformID <= 0 {
		return nil, fmt.Errorf("%w: platform_id must be positive", itemdomain.ErrInvalidArgument)
	}

	detected := time.Now().UTC()
	if detectedDate != nil {
		detected = detectedDate.UTC()
	}

	now := time.Now().UTC()
	return &MarketplaceItem{
		ExternalItemID: externalItemID,
		Title:          title,
		PlatformID:     platformID,
		DetectedDate:   detected,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// UpdatePricing replaces the pricing group. Passing nil clears a field —
// the group is a full replacement, not a merge.
func (m *MarketplaceItem) UpdatePricing(priceText *string, priceUSD *float64) {
	m.PriceText = priceText
	m.PriceUSD = priceUSD
	m.touch()
}

// UpdateSellerInfo replaces the seller attribution group.
func (m *MarketplaceItem) UpdateSellerInfo(sellerID, sellerName, sellerURL, sellerLocation *string) {
	m.SellerID = sellerID
	m.SellerName = sellerName
	m.SellerURL = sellerURL
	m.SellerLocation = sellerLocation
	m.touch()
}

// UpdateMedia replaces the media/link group.
func (m *MarketplaceItem) UpdateMedia(itemImageURL, itemURL *string) {
	m.ItemImageURL = itemImageURL
	m.ItemURL = itemURL
	m.touch()
}

// UpdateQuantity replaces the quantity group.
func (m *MarketplaceItem) UpdateQuantity(quantityText *string, quantityNumber *int64) {
	m.QuantityText = quantityText
	m.QuantityNumber = quantityNumber
	m.touch()
}

// MarkCreated is the persistence hook invoked by storage on insert: both
// lifecycle timestamps are set to the same instant.
func (m *MarketplaceItem) MarkCreated(now time.Time) {
	m.CreatedAt = now.UTC()
	m.UpdatedAt = m.CreatedAt
}

// MarkUpdated is the persistence hook invoked by storage on update.
// CreatedAt is never touched after insert.
func (m *MarketplaceItem) MarkUpdated(now time.Time) {
	m.UpdatedAt = now.UTC()
}

func (m *MarketplaceItem) touch() {
	m.UpdatedAt = time.Now().UTC()
}
