package handlers

import (
	"time"

	"github.com/ghuser/marketscout/services/marketplaceitem/domain/models"
)

// ItemResponse is the external representation of a marketplace item. The
// projection is lossless: every entity attribute appears under its JSON name.
type ItemResponse struct {
	ID             int64     `json:"id"               example:"42"`
	ExternalItemID string    `json:"external_item_id" example:"EBAY-112233"`
	Title          string    `json:"title"            example:"Wireless Earbuds Pro"`
	PlatformID     int64     `json:"platform_id"      example:"1"`
	SearchTerm     *string   `json:"search_term"`
	QuantityText   *string   `json:"quantity_text"`
	QuantityNumber *int64    `json:"quantity_number"`
	PriceText      *string   `json:"price_text"       example:"$10.00"`
	PriceUSD       *float64  `json:"price_usd"        example:"10.00"`
	ProductID      *string   `json:"product_id"`
	SellerID       *string   `json:"seller_id"`
	SellerName     *string   `json:"seller_name"`
	SellerURL      *string   `json:"seller_url"`
	SellerLocation *string   `json:"seller_location"`
	ItemImageURL   *string   `json:"item_image_url"`
	ItemURL        *string   `json:"item_url"`
	DetectedDate   time.Time `json:"detected_date"    example:"2024-01-15T10:30:00Z"`
	CreatedAt      time.Time `json:"created_at"       example:"2024-01-15T10:30:00Z"`
	UpdatedAt      time.Time `json:"updated_at"       example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ItemListResponse wraps a page of items with the total matching count.
type ItemListResponse struct {
	Items    []ItemResponse `json:"items"`
	Total    int64          `json:"total"     example:"1312"`
	Page     int            `json:"page"      example:"1"`
	PageSize int            `json:"page_size" example:"50"`
} // @name ItemListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"marketplace item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.MarketplaceItem) ItemResponse {
	return ItemResponse{
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

func toItemResponses(items []*models.MarketplaceItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}
