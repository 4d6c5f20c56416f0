package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/entityhttp"
	"github.com/ghuser/backoffice/pkg/viewmodel"
	"github.com/ghuser/backoffice/services/order/application/handlers"
	appsvcs "github.com/ghuser/backoffice/services/order/application/services"
	"github.com/ghuser/backoffice/services/order/domain/models"
)

// OrderRoutes registers the order store endpoints and the order composition
// endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	entityhttp.Mount(r, "/orders", func(req *http.Request) (entityhttp.Target[models.Order], error) {
		ws, err := a.WorkspaceFor(req)
		if err != nil {
			return entityhttp.Target[models.Order]{}, err
		}
		return entityhttp.Target[models.Order]{Store: ws.Orders, Details: ws.Details}, nil
	}, entityhttp.Options{Kind: viewmodel.KindOrder})

	draft := handlers.NewOrderDraftHandler(func(req *http.Request) (*appsvcs.Aggregator, error) {
		ws, err := a.WorkspaceFor(req)
		if err != nil {
			return nil, err
		}
		return ws.OrderDraft, nil
	})
	r.Route("/order-draft", draft.Routes)
}
