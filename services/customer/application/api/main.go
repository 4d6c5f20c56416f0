package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/entityhttp"
	"github.com/ghuser/backoffice/pkg/viewmodel"
	"github.com/ghuser/backoffice/services/customer/application/handlers"
	appsvcs "github.com/ghuser/backoffice/services/customer/application/services"
	"github.com/ghuser/backoffice/services/customer/domain/models"
)

// CustomerRoutes registers the customer store endpoints and the counter sale
// endpoints on the provided chi router.
func CustomerRoutes(r chi.Router, a *app.Application) {
	entityhttp.Mount(r, "/customers", func(req *http.Request) (entityhttp.Target[models.Customer], error) {
		ws, err := a.WorkspaceFor(req)
		if err != nil {
			return entityhttp.Target[models.Customer]{}, err
		}
		return entityhttp.Target[models.Customer]{Store: ws.Customers, Details: ws.Details}, nil
	}, entityhttp.Options{Kind: viewmodel.KindCustomer})

	sale := handlers.NewSaleBillHandler(func(req *http.Request) (*appsvcs.SaleBill, error) {
		ws, err := a.WorkspaceFor(req)
		if err != nil {
			return nil, err
		}
		return ws.SaleBill, nil
	})
	r.Route("/sale-bill", sale.Routes)
}
