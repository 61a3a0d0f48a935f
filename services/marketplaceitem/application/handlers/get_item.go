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

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, log logger.Logger) *GetItemHandler {
	return &GetItemHandler{svc: svc, log: log}
}

// Execute fetches one item by surrogate id.
//
//	@Summary		Get marketplace item
//	@Tags			items
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "get item", err, "item_id", id)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// GetItemByExternalIDHandler handles GET /items/external/{externalItemId}.
type GetItemByExternalIDHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemByExternalIDHandler returns a handler backed by the given services.
func NewGetItemByExternalIDHandler(svc *appsvcs.Services, log logger.Logger) *GetItemByExternalIDHandler {
	return &GetItemByExternalIDHandler{svc: svc, log: log}
}

// Execute fetches one item by the id the source platform assigned.
//
//	@Summary		Get marketplace item by external id
//	@Tags			items
//	@Produce		json
//	@Param			externalItemId	path		string	true	"External item ID"
//	@Success		200				{object}	ItemResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/items/external/{externalItemId} [get]
func (h *GetItemByExternalIDHandler) Execute(w http.ResponseWriter, r *http.Request) {
	externalItemID := chi.URLParam(r, "externalItemId")

	item, err := h.svc.Item.GetByExternalID(r.Context(), externalItemID)
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "get item by external id",
			err, "external_item_id", externalItemID)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
