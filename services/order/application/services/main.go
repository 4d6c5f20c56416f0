package services

import (
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/services/order/domain/models"
	domainsvc "github.com/ghuser/backoffice/services/order/domain/services"
)

const (
	Domain = "orders"
	Route  = "order"
)

// Store is the order entity store.
type Store = entitystore.Store[models.Order]

// NewStore wires an order store onto the backend gateway.
func NewStore(c *gateway.Client, deps entitystore.Deps) *Store {
	return entitystore.New(entitystore.Config[models.Order]{
		Domain:   Domain,
		Backend:  gateway.NewResource[models.Order](c, Route),
		Validate: domainsvc.ValidateOrder,
		Deps:     deps,
	})
}
