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

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, log logger.Logger) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, log: log}
}

// Execute permanently removes an item. There is no soft delete.
//
//	@Summary		Delete marketplace item
//	@Tags			items
//	@Param			id	path	int	true	"Item ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	removed, err := h.svc.Item.Delete(r.Context(), id)
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "delete item", err, "item_id", id)
		return
	}
	if !removed {
		httpx.JSONError(w, http.StatusNotFound, "marketplace item not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
