package services

import (
	pkgcache "github.com/ghuser/marketscout/pkg/cache"
	"github.com/ghuser/marketscout/services/marketplaceitem/domain/models"
)

// toCachedItem projects the aggregate into the redis read model. The
// projection is lossless; every attribute survives a cache round-trip.
func toCachedItem(item *models.MarketplaceItem) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:             item.ID,
		ExternalItemID: item.ExternalItemID,
		Title:          item.Title,
		PlatformID:     item.PlatformID,
		SearchTerm:     item.SearchTerm,
		QuantityText:   item.QuantityText,
		QuantityNumber: item.QuantityNumber,
		PriceText:      item.PriceText,
		PriceUSD:       item.PriceUSD,
		ProductID:      item.ProductID,
		SellerID:       item.SellerID,
		SellerName:     item.SellerName,
		SellerURL:      item.SellerURL,
		SellerLocation: item.SellerLocation,
		ItemImageURL:   item.ItemImageURL,
		ItemURL:        item.ItemURL,
		DetectedDate:   item.DetectedDate,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func fromCachedItem(cached *pkgcache.CachedItem) *models.MarketplaceItem {
	return &models.MarketplaceItem{
		ID:             cached.ID,
		ExternalItemID: cached.ExternalItemID,
		Title:          cached.Title,
		PlatformID:     cached.PlatformID,
		SearchTerm:     cached.SearchTerm,
		QuantityText:   cached.QuantityText,
		QuantityNumber: cached.QuantityNumber,
		PriceText:      cached.PriceText,
		PriceUSD:       cached.PriceUSD,
		ProductID:      cached.ProductID,
		SellerID:       cached.SellerID,
		SellerName:     cached.SellerName,
		SellerURL:      cached.SellerURL,
		SellerLocation: cached.SellerLocation,
		ItemImageURL:   cached.ItemImageURL,
		ItemURL:        cached.ItemURL,
		DetectedDate:   cached.DetectedDate,
		CreatedAt:      cached.CreatedAt,
		UpdatedAt:      cached.UpdatedAt,
	}
}
