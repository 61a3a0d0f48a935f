package services

import (
	"github.com/ghuser/marketscout/pkg/app"
	"github.com/ghuser/marketscout/pkg/cache"
	"github.com/ghuser/marketscout/services/marketplaceitem/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all marketplace item application services with infrastructure
// from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewItemRepository(a.Db, a.EventBus)
	itemCache := cache.NewItemCache(a.Redis)
	return &Services{
		Item: NewItemService(repo, itemCache),
	}
}
