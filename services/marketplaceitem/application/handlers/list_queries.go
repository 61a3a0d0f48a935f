package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/marketscout/pkg/errhttp"
	"github.com/ghuser/marketscout/pkg/httpx"
	"github.com/ghuser/marketscout/pkg/logger"
	appsvcs "github.com/ghuser/marketscout/services/marketplaceitem/application/services"
)

// ListBySellerHandler handles GET /items/seller/{sellerId} requests.
type ListBySellerHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewListBySellerHandler returns a ListBySellerHandler backed by the given services.
func NewListBySellerHandler(svc *appsvcs.Services, log logger.Logger) *ListBySellerHandler {
	return &ListBySellerHandler{svc: svc, log: log}
}

// Execute lists all items attributed to a seller, newest detections first.
//
//	@Summary		List items by seller
//	@Tags			items
//	@Produce		json
//	@Param			sellerId	path		string	true	"Seller ID"
//	@Success		200			{array}		ItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/items/seller/{sellerId} [get]
func (h *ListBySellerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerId")

	items, err := h.svc.Item.ListBySeller(r.Context(), sellerID)
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "list items by seller",
			err, "seller_id", sellerID)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

// ListByPriceRangeHandler handles GET /items/price-range requests.
type ListByPriceRangeHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewListByPriceRangeHandler returns a ListByPriceRangeHandler backed by the given services.
func NewListByPriceRangeHandler(svc *appsvcs.Services, log logger.Logger) *ListByPriceRangeHandler {
	return &ListByPriceRangeHandler{svc: svc, log: log}
}

// Execute lists items whose normalized USD price falls within the inclusive
// bounds. Both bounds are optional.
//
//	@Summary		List items by price range
//	@Tags			items
//	@Produce		json
//	@Param			min_usd	query		number	false	"Inclusive lower bound"
//	@Param			max_usd	query		number	false	"Inclusive upper bound"
//	@Success		200		{array}		ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/items/price-range [get]
func (h *ListByPriceRangeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minUSD, ok := floatQueryParam(w, q.Get("min_usd"), "min_usd")
	if !ok {
		return
	}
	maxUSD, ok := floatQueryParam(w, q.Get("max_usd"), "max_usd")
	if !ok {
		return
	}

	items, err := h.svc.Item.ListByPriceRange(r.Context(), minUSD, maxUSD)
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "list items by price range", err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

// ListRecentHandler handles GET /items/recent requests.
type ListRecentHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewListRecentHandler returns a ListRecentHandler backed by the given services.
func NewListRecentHandler(svc *appsvcs.Services, log logger.Logger) *ListRecentHandler {
	return &ListRecentHandler{svc: svc, log: log}
}

// Execute lists items detected within the lookback window (default 24 h).
//
//	@Summary		List recently detected items
//	@Tags			items
//	@Produce		json
//	@Param			hours	query		int	false	"Lookback window in hours (default 24)"
//	@Success		200		{array}		ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/items/recent [get]
func (h *ListRecentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hours := appsvcs.DefaultRecentHours
	if raw := r.URL.Query().Get("hours"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "hours must be an integer")
			return
		}
		hours = v
	}

	items, err := h.svc.Item.ListRecentlyDetected(r.Context(), hours)
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "list recently detected items",
			err, "hours", hours)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

// floatQueryParam parses an optional float query parameter. Reports false
// after writing a 400 response when the value is present but malformed.
func floatQueryParam(w http.ResponseWriter, raw, name string) (*float64, bool) {
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, name+" must be a number")
		return nil, false
	}
	return &v, true
}
