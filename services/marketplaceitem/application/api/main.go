package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/marketscout/pkg/app"
	"github.com/ghuser/marketscout/services/marketplaceitem/application/handlers"
	appsvcs "github.com/ghuser/marketscout/services/marketplaceitem/application/services"
)

// ItemRoutes registers marketplace item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	log := a.Logger

	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs, log).Execute)
			r.Get("/", handlers.NewListItemsHandler(svcs, log).Execute)

			// Fixed segments before the {id} wildcard.
			r.Get("/external/{externalItemId}", handlers.NewGetItemByExternalIDHandler(svcs, log).Execute)
			r.Get("/seller/{sellerId}", handlers.NewListBySellerHandler(svcs, log).Execute)
			r.Get("/price-range", handlers.NewListByPriceRangeHandler(svcs, log).Execute)
			r.Get("/recent", handlers.NewListRecentHandler(svcs, log).Execute)

			r.Get("/{id}", handlers.NewGetItemHandler(svcs, log).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs, log).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs, log).Execute)
		})
	})
}
