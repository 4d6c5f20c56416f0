package services

import (
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/services/product/domain/models"
	domainsvc "github.com/ghuser/backoffice/services/product/domain/services"
)

// Domain names the store in logs, metrics and notices.
const Domain = "products"

// Route is the backend resource path.
const Route = "products"

// Store is the product entity store.
type Store = entitystore.Store[models.Product]

// NewStore wires a product store onto the backend gateway.
func NewStore(c *gateway.Client, deps entitystore.Deps) *Store {
	return entitystore.New(entitystore.Config[models.Product]{
		Domain:   Domain,
		Backend:  gateway.NewResource[models.Product](c, Route),
		Validate: domainsvc.ValidateProduct,
		Deps:     deps,
	})
}
