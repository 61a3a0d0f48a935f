package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/marketscout/pkg/cache"
	itemdomain "github.com/ghuser/marketscout/services/marketplaceitem/domain"
	"github.com/ghuser/marketscout/services/marketplaceitem/domain/models"
	"github.com/ghuser/marketscout/services/marketplaceitem/domain/repositories"
)

// Pagination bounds enforced by ListPage. Out-of-range page sizes fall back
// to DefaultPageSize rather than clamping to the nearest bound.
const (
	DefaultPageSize = 50
	MaxPageSize     = 100

	// DefaultRecentHours is the lookback window for ListRecentlyDetected
	// when the caller does not specify one.
	DefaultRecentHours = 24
)

// CreateItemInput is the payload for ItemService.Create. Optional fields are
// pointers; nil means the scraper did not observe that attribute.
type CreateItemInput struct {
	ExternalItemID string
	Title          string
	PlatformID     int64
	SearchTerm     *string
	DetectedDate   *time.Time

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
}

// UpdateItemInput carries the four update groups for ItemService.Update.
// Update is a full replacement: every group is applied as-is, so a nil field
// clears the stored value.
type UpdateItemInput struct {
	QuantityText   *string
	QuantityNumber *int64

	PriceText *string
	PriceUSD  *float64

	SellerID       *string
	SellerName     *string
	SellerURL      *string
	SellerLocation *string

	ItemImageURL *string
	ItemURL      *string
}

// ItemService orchestrates marketplace item use cases. It is stateless: all
// durable state lives behind the repository, reads of single items are served
// from the redis read model when available. Event publishing is handled by
// the repository layer (outbox pattern).
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// Create validates and persists a new observation.
//
// The early FindByExternalID check exists to return a friendly conflict
// before touching the insert path; the database unique constraint remains the
// authoritative guard, so a concurrent creator racing past this check still
// surfaces ErrDuplicateExternalID from the repository.
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*models.MarketplaceItem, error) {
	if strings.TrimSpace(in.ExternalItemID) == "" {
		return nil, fmt.Errorf("%w: external_item_id must not be empty", itemdomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", itemdomain.ErrInvalidArgument)
	}

	_, err := s.repo.FindByExternalID(ctx, in.ExternalItemID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", itemdomain.ErrDuplicateExternalID, in.ExternalItemID)
	case !errors.Is(err, itemdomain.ErrItemNotFound):
		return nil, fmt.Errorf("check external id: %w", err)
	}

	item, err := models.NewMarketplaceItem(in.ExternalItemID, in.Title, in.PlatformID, in.DetectedDate)
	if err != nil {
		return nil, err
	}
	item.SearchTerm = in.SearchTerm
	item.ProductID = in.ProductID

	// Groups are applied only when the scraper observed at least one field
	// of the group; an all-empty group stays unset on a fresh item.
	if hasText(in.PriceText) || in.PriceUSD != nil {
		item.UpdatePricing(in.PriceText, in.PriceUSD)
	}
	if hasText(in.SellerID) || hasText(in.SellerName) || hasText(in.SellerURL) || hasText(in.SellerLocation) {
		item.UpdateSellerInfo(in.SellerID, in.SellerName, in.SellerURL, in.SellerLocation)
	}
	if hasText(in.ItemImageURL) || hasText(in.ItemURL) {
		item.UpdateMedia(in.ItemImageURL, in.ItemURL)
	}
	if hasText(in.QuantityText) || in.QuantityNumber != nil {
		item.UpdateQuantity(in.QuantityText, in.QuantityNumber)
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

// GetByID retrieves an item using a read-through cache pattern:
//  1. Check the redis read model first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.MarketplaceItem, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return fromCachedItem(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache errors fall through to Postgres; the boundary logs them.
			_ = err
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), toCachedItem(item))
		}()
	}

	return item, nil
}

// GetByExternalID retrieves an item by the id the source platform assigned.
func (s *ItemService) GetByExternalID(ctx context.Context, externalItemID string) (*models.MarketplaceItem, error) {
	item, err := s.repo.FindByExternalID(ctx, externalItemID)
	if err != nil {
		return nil, fmt.Errorf("get item by external id: %w", err)
	}
	return item, nil
}

// ListPage returns one page of the filtered collection plus the total count
// for the same filter. Page numbers below 1 become 1; page sizes outside
// [1,MaxPageSize] become DefaultPageSize.
func (s *ItemService) ListPage(ctx context.Context, platformID *int64, searchTerm *string, pageNumber, pageSize int) ([]*models.MarketplaceItem, int64, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	filter := repositories.ListFilter{PlatformID: platformID, SearchTerm: searchTerm}
	page := repositories.Page{Offset: (pageNumber - 1) * pageSize, Size: pageSize}

	items, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}
	return items, total, nil
}

// Update replaces all four optional groups of an existing item. This is
// deliberate full-replacement semantics: a group whose fields are all nil is
// cleared, and UpdatedAt is refreshed even then. Returns ErrItemNotFound when
// the id does not exist; nothing is mutated in that case.
func (s *ItemService) Update(ctx context.Context, id int64, in UpdateItemInput) (*models.MarketplaceItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}

	item.UpdatePricing(in.PriceText, in.PriceUSD)
	item.UpdateSellerInfo(in.SellerID, in.SellerName, in.SellerURL, in.SellerLocation)
	item.UpdateMedia(in.ItemImageURL, in.ItemURL)
	item.UpdateQuantity(in.QuantityText, in.QuantityNumber)

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return item, nil
}

// Delete removes an item permanently. Reports true iff a row existed;
// deleting a missing id is a no-op, not an error.
func (s *ItemService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	if removed && s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return removed, nil
}

// ListBySeller returns all items attributed to the given seller.
func (s *ItemService) ListBySeller(ctx context.Context, sellerID string) ([]*models.MarketplaceItem, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, fmt.Errorf("%w: seller_id must not be empty", itemdomain.ErrInvalidArgument)
	}
	items, err := s.repo.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list items by seller: %w", err)
	}
	return items, nil
}

// ListByPriceRange returns items whose normalized USD price lies within the
// inclusive bounds; nil bounds are open ends.
func (s *ItemService) ListByPriceRange(ctx context.Context, minUSD, maxUSD *float64) ([]*models.MarketplaceItem, error) {
	if minUSD != nil && maxUSD != nil && *minUSD > *maxUSD {
		return nil, fmt.Errorf("%w: min_usd must not exceed max_usd", itemdomain.ErrInvalidArgument)
	}
	items, err := s.repo.FindByPriceRange(ctx, minUSD, maxUSD)
	if err != nil {
		return nil, fmt.Errorf("list items by price range: %w", err)
	}
	return items, nil
}

// ListRecentlyDetected returns items observed within the last hoursAgo hours.
// Callers that have no preference pass DefaultRecentHours.
func (s *ItemService) ListRecentlyDetected(ctx context.Context, hoursAgo int) ([]*models.MarketplaceItem, error) {
	if hoursAgo <= 0 {
		return nil, fmt.Errorf("%w: hours must be positive", itemdomain.ErrInvalidArgument)
	}
	items, err := s.repo.FindRecentlyDetected(ctx, hoursAgo)
	if err != nil {
		return nil, fmt.Errorf("list recently detected items: %w", err)
	}
	return items, nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
