package repositories

import (
	"context"

	"github.com/ghuser/marketscout/services/marketplaceitem/domain/models"
)

// ListFilter narrows List and Count to a platform and/or a search-term
// substring. Both fields are optional; nil means no constraint. The same
// filter value passed to List and Count always evaluates the same predicate,
// so page totals stay consistent with page contents.
type ListFilter struct {
	PlatformID *int64
	// SearchTerm matches items whose stored search term contains this
	// substring (case-insensitive).
	SearchTerm *string
}

// Page contains offset pagination parameters for List queries.
// Offset = (page number − 1) × Size; callers clamp before constructing.
type Page struct {
	Offset int
	Size   int
}

// ItemRepository is the persistence interface for the MarketplaceItem
// aggregate. The domain layer owns this interface; infrastructure implements
// it. All list-shaped queries return items ordered by detected date
// descending. Implementations must observe ctx cancellation and never leave
// a mutation partially applied.
type ItemRepository interface {
	// FindByID returns the item with the given surrogate id, or
	// ErrItemNotFound.
	FindByID(ctx context.Context, id int64) (*models.MarketplaceItem, error)

	// FindByExternalID returns the item carrying the given platform-assigned
	// external id, or ErrItemNotFound.
	FindByExternalID(ctx context.Context, externalItemID string) (*models.MarketplaceItem, error)

	// List returns one page of the filtered collection.
	List(ctx context.Context, filter ListFilter, page Page) ([]*models.MarketplaceItem, error)

	// Count returns the total number of items matching filter, independent
	// of pagination.
	Count(ctx context.Context, filter ListFilter) (int64, error)

	// Insert persists a new item, assigns its ID, and stamps both lifecycle
	// timestamps. Returns ErrDuplicateExternalID when the external id is
	// already taken.
	Insert(ctx context.Context, item *models.MarketplaceItem) error

	// Update replaces all columns of an existing row and stamps UpdatedAt.
	// Returns ErrItemNotFound when no row matches the item's ID.
	Update(ctx context.Context, item *models.MarketplaceItem) error

	// Delete removes an item permanently. Reports true iff a row existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// FindBySellerID returns all items attributed to the given seller.
	FindBySellerID(ctx context.Context, sellerID string) ([]*models.MarketplaceItem, error)

	// FindByPriceRange returns items whose normalized USD price lies within
	// the inclusive bounds; nil bounds are open ends. Items without a
	// normalized price are excluded.
	FindByPriceRange(ctx context.Context, minUSD, maxUSD *float64) ([]*models.MarketplaceItem, error)

	// FindRecentlyDetected returns items observed within the last hoursAgo
	// hours.
	FindRecentlyDetected(ctx context.Context, hoursAgo int) ([]*models.MarketplaceItem, error)
}
