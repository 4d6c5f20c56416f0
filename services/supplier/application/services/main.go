package services

import (
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/services/supplier/domain/models"
	domainsvc "github.com/ghuser/backoffice/services/supplier/domain/services"
)

const (
	Domain = "suppliers"
	Route  = "supplier"
)

// Store is the supplier entity store.
type Store = entitystore.Store[models.Supplier]

// NewStore wires a supplier store onto the backend gateway. Edits are sent
// without the create-time check; the backend is the judge of a partial edit.
func NewStore(c *gateway.Client, deps entitystore.Deps) *Store {
	return entitystore.New(entitystore.Config[models.Supplier]{
		Domain:             Domain,
		Backend:            gateway.NewResource[models.Supplier](c, Route),
		Validate:           domainsvc.ValidateSupplier,
		SkipEditValidation: true,
		Deps:               deps,
	})
}
