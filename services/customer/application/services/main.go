package services

import (
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/services/customer/domain/models"
	domainsvc "github.com/ghuser/backoffice/services/customer/domain/services"
)

const (
	Domain = "customers"
	Route  = "customer"
)

// Store is the customer entity store.
type Store = entitystore.Store[models.Customer]

func NewStore(c *gateway.Client, deps entitystore.Deps) *Store {
	return entitystore.New(entitystore.Config[models.Customer]{
		Domain:   Domain,
		Backend:  gateway.NewResource[models.Customer](c, Route),
		Validate: domainsvc.ValidateCustomer,
		Deps:     deps,
	})
}
