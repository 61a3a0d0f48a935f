package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/marketscout/pkg/errhttp"
	"github.com/ghuser/marketscout/pkg/httpx"
	"github.com/ghuser/marketscout/pkg/logger"
	pkgvalidator "github.com/ghuser/marketscout/pkg/validator"
	appsvcs "github.com/ghuser/marketscout/services/marketplaceitem/application/services"
)

// UpdateItemRequest is the request body for PUT /items/{id}. The four optional
// groups (pricing, seller info, media, quantity) are replaced in full:
// omitted or null fields are cleared, not preserved. Callers that want to
// keep a group must echo its current values.
type UpdateItemRequest struct {
	QuantityText   *string `json:"quantity_text" validate:"omitempty,max=100" example:"3 available"`
	QuantityNumber *int64  `json:"quantity_number" validate:"omitempty,gte=0" example:"3"`

	PriceText *string  `json:"price_text" validate:"omitempty,max=100" example:"$12.50"`
	PriceUSD  *float64 `json:"price_usd" validate:"omitempty,gte=0" example:"12.50"`

	SellerID       *string `json:"seller_id" validate:"omitempty,max=255"`
	SellerName     *string `json:"seller_name" validate:"omitempty,max=255"`
	SellerURL      *string `json:"seller_url" validate:"omitempty,http_url,max=1000"`
	SellerLocation *string `json:"seller_location" validate:"omitempty,max=255"`

	ItemImageURL *string `json:"item_image_url" validate:"omitempty,http_url,max=1000"`
	ItemURL      *string `json:"item_url" validate:"omitempty,http_url,max=1000"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, log logger.Logger) *PutItemHandler {
	return &PutItemHandler{svc: svc, log: log}
}

// Execute replaces the four optional groups of an existing item.
//
//	@Summary		Update marketplace item
//	@Description	Replaces the pricing, seller, media, and quantity groups as a whole; omitted fields are cleared
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Replacement values"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, appsvcs.UpdateItemInput{
		QuantityText:   req.QuantityText,
		QuantityNumber: req.QuantityNumber,
		PriceText:      req.PriceText,
		PriceUSD:       req.PriceUSD,
		SellerID:       req.SellerID,
		SellerName:     req.SellerName,
		SellerURL:      req.SellerURL,
		SellerLocation: req.SellerLocation,
		ItemImageURL:   req.ItemImageURL,
		ItemURL:        req.ItemURL,
	})
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "update item", err, "item_id", id)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
