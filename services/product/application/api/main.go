package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/entityhttp"
	"github.com/ghuser/backoffice/pkg/viewmodel"
	"github.com/ghuser/backoffice/services/product/domain/models"
)

// ProductRoutes registers the product store endpoints on the provided chi router.
func ProductRoutes(r chi.Router, a *app.Application) {
	entityhttp.Mount(r, "/products", func(req *http.Request) (entityhttp.Target[models.Product], error) {
		ws, err := a.WorkspaceFor(req)
		if err != nil {
			return entityhttp.Target[models.Product]{}, err
		}
		return entityhttp.Target[models.Product]{Store: ws.Products, Details: ws.Details}, nil
	}, entityhttp.Options{Kind: viewmodel.KindProduct})
}
