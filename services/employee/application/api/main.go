package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/entityhttp"
	"github.com/ghuser/backoffice/pkg/viewmodel"
	"github.com/ghuser/backoffice/services/employee/domain/models"
)

// EmployeeRoutes registers the employee store endpoints on the provided chi router.
func EmployeeRoutes(r chi.Router, a *app.Application) {
	entityhttp.Mount(r, "/employees", func(req *http.Request) (entityhttp.Target[models.Employee], error) {
		ws, err := a.WorkspaceFor(req)
		if err != nil {
			return entityhttp.Target[models.Employee]{}, err
		}
		return entityhttp.Target[models.Employee]{Store: ws.Employees, Details: ws.Details}, nil
	}, entityhttp.Options{Kind: viewmodel.KindEmployee})
}
