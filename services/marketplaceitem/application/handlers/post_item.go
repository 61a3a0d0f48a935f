package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/marketscout/pkg/errhttp"
	"github.com/ghuser/marketscout/pkg/httpx"
	"github.com/ghuser/marketscout/pkg/logger"
	pkgvalidator "github.com/ghuser/marketscout/pkg/validator"
	appsvcs "github.com/ghuser/marketscout/services/marketplaceitem/application/services"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	ExternalItemID string     `json:"external_item_id" validate:"required,max=255" example:"EBAY-112233"`
	Title          string     `json:"title" validate:"required,max=500" example:"Wireless Earbuds Pro"`
	PlatformID     int64      `json:"platform_id" validate:"required,gt=0" example:"1"`
	SearchTerm     *string    `json:"search_term" validate:"omitempty,max=255" example:"earbuds"`
	DetectedDate   *time.Time `json:"detected_date" validate:"omitempty,not_far_future" example:"2024-01-15T10:30:00Z"`

	QuantityText   *string `json:"quantity_text" validate:"omitempty,max=100" example:"3 available"`
	QuantityNumber *int64  `json:"quantity_number" validate:"omitempty,gte=0" example:"3"`

	PriceText *string  `json:"price_text" validate:"omitempty,max=100" example:"$10.00"`
	PriceUSD  *float64 `json:"price_usd" validate:"omitempty,gte=0" example:"10.00"`

	ProductID *string `json:"product_id" validate:"omitempty,max=255"`

	SellerID       *string `json:"seller_id" validate:"omitempty,max=255"`
	SellerName     *string `json:"seller_name" validate:"omitempty,max=255"`
	SellerURL      *string `json:"seller_url" validate:"omitempty,http_url,max=1000"`
	SellerLocation *string `json:"seller_location" validate:"omitempty,max=255"`

	ItemImageURL *string `json:"item_image_url" validate:"omitempty,http_url,max=1000"`
	ItemURL      *string `json:"item_url" validate:"omitempty,http_url,max=1000"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{svc: svc, log: log}
}

// Execute records a new scraped observation.
//
//	@Summary		Create marketplace item
//	@Description	Records a new scraped marketplace item observation
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item observation"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), appsvcs.CreateItemInput{
		ExternalItemID: req.ExternalItemID,
		Title:          req.Title,
		PlatformID:     req.PlatformID,
		SearchTerm:     req.SearchTerm,
		DetectedDate:   req.DetectedDate,
		QuantityText:   req.QuantityText,
		QuantityNumber: req.QuantityNumber,
		PriceText:      req.PriceText,
		PriceUSD:       req.PriceUSD,
		ProductID:      req.ProductID,
		SellerID:       req.SellerID,
		SellerName:     req.SellerName,
		SellerURL:      req.SellerURL,
		SellerLocation: req.SellerLocation,
		ItemImageURL:   req.ItemImageURL,
		ItemURL:        req.ItemURL,
	})
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "create item",
			err, "external_item_id", req.ExternalItemID)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
