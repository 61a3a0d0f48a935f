package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/marketscout/pkg/errhttp"
	"github.com/ghuser/marketscout/pkg/httpx"
	"github.com/ghuser/marketscout/pkg/logger"
	appsvcs "github.com/ghuser/marketscout/services/marketplaceitem/application/services"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services, log logger.Logger) *ListItemsHandler {
	return &ListItemsHandler{svc: svc, log: log}
}

// Execute lists one page of the filtered collection, newest detections first.
// Out-of-range page and page_size values fall back to the service defaults
// rather than failing the request.
//
//	@Summary		List marketplace items
//	@Tags			items
//	@Produce		json
//	@Param			platform_id	query		int		false	"Filter by platform"
//	@Param			search_term	query		string	false	"Substring match against the stored search term"
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			page_size	query		int		false	"Page size 1-100 (default 50)"
//	@Success		200			{object}	ItemListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var platformID *int64
	if raw := q.Get("platform_id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "platform_id must be an integer")
			return
		}
		platformID = &v
	}

	var searchTerm *string
	if raw := q.Get("search_term"); raw != "" {
		searchTerm = &raw
	}

	page := intQueryParam(q.Get("page"), 1)
	pageSize := intQueryParam(q.Get("page_size"), appsvcs.DefaultPageSize)

	items, total, err := h.svc.Item.ListPage(r.Context(), platformID, searchTerm, page, pageSize)
	if err != nil {
		errhttp.LogAndWriteError(r.Context(), h.log, w, "list items", err,
			"page", page, "page_size", pageSize)
		return
	}

	// Echo the clamped values the service actually used.
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > appsvcs.MaxPageSize {
		pageSize = appsvcs.DefaultPageSize
	}

	httpx.JSON(w, http.StatusOK, ItemListResponse{
		Items:    toItemResponses(items),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// intQueryParam parses a numeric query parameter, falling back to def when the
// parameter is absent or not a number. Range clamping is the service's job.
func intQueryParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
