package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/entityhttp"
	"github.com/ghuser/backoffice/pkg/viewmodel"
	"github.com/ghuser/backoffice/services/supplier/domain/models"
)

// SupplierRoutes registers the supplier store endpoints on the provided chi router.
func SupplierRoutes(r chi.Router, a *app.Application) {
	entityhttp.Mount(r, "/suppliers", func(req *http.Request) (entityhttp.Target[models.Supplier], error) {
		ws, err := a.WorkspaceFor(req)
		if err != nil {
			return entityhttp.Target[models.Supplier]{}, err
		}
		return entityhttp.Target[models.Supplier]{Store: ws.Suppliers, Details: ws.Details}, nil
	}, entityhttp.Options{Kind: viewmodel.KindSupplier})
}
