package services

import (
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/services/employee/domain/models"
	domainsvc "github.com/ghuser/backoffice/services/employee/domain/services"
)

const (
	Domain = "employees"
	Route  = "employee"
)

// Store is the employee entity store.
type Store = entitystore.Store[models.Employee]

func NewStore(c *gateway.Client, deps entitystore.Deps) *Store {
	return entitystore.New(entitystore.Config[models.Employee]{
		Domain:   Domain,
		Backend:  gateway.NewResource[models.Employee](c, Route),
		Validate: validate,
		Deps:     deps,
	})
}

// validate asks unsaved employees for an initial password.
func validate(e models.Employee) error {
	if e.ID.IsZero() {
		return domainsvc.ValidateNewEmployee(e)
	}
	return domainsvc.ValidateEmployee(e)
}
