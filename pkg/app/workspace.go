package app

import (
	"github.com/google/uuid"

	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/notice"
	"github.com/ghuser/backoffice/pkg/viewmodel"
	customersvc "github.com/ghuser/backoffice/services/customer/application/services"
	customermodels "github.com/ghuser/backoffice/services/customer/domain/models"
	employeesvc "github.com/ghuser/backoffice/services/employee/application/services"
	ordersvc "github.com/ghuser/backoffice/services/order/application/services"
	ordermodels "github.com/ghuser/backoffice/services/order/domain/models"
	productsvc "github.com/ghuser/backoffice/services/product/application/services"
	suppliersvc "github.com/ghuser/backoffice/services/supplier/application/services"
)

// Workspace is everything one browser session sees: its token, the surfaced
// notice, the details pane and one store per domain.
type Workspace struct {
	ID      uuid.UUID
	Tokens  auth.SessionTokens
	Banner  *notice.Banner
	Details *viewmodel.Details

	Products   *productsvc.Store
	Suppliers  *suppliersvc.Store
	Employees  *employeesvc.Store
	Customers  *customersvc.Store
	Orders     *ordersvc.Store
	OrderDraft *ordersvc.Aggregator
	Bills      *customersvc.BillStore
	SaleBill   *customersvc.SaleBill
}

// WorkspaceDeps are the process-wide collaborators every workspace shares.
type WorkspaceDeps struct {
	Gateway  *gateway.Client
	Tokens   func(id uuid.UUID) auth.SessionTokens
	Events   entitystore.Emitter // nil disables change events
	Reporter errhttp.Reporter
	Log      logger.Logger
}

// NewWorkspace wires a fresh workspace. All stores start empty.
func NewWorkspace(id uuid.UUID, deps WorkspaceDeps) *Workspace {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	tokens := deps.Tokens(id)
	banner := notice.NewBanner(deps.Events)

	shared := entitystore.Deps{
		Tokens: tokens,
		Effects: errhttp.SideEffects{
			Session:  tokens,
			Notifier: banner,
			Reporter: deps.Reporter,
			Log:      log,
		},
		Events: deps.Events,
		Log:    log,
	}

	ws := &Workspace{
		ID:        id,
		Tokens:    tokens,
		Banner:    banner,
		Details:   &viewmodel.Details{},
		Products:  productsvc.NewStore(deps.Gateway, shared),
		Suppliers: suppliersvc.NewStore(deps.Gateway, shared),
		Employees: employeesvc.NewStore(deps.Gateway, shared),
		Customers: customersvc.NewStore(deps.Gateway, shared),
		Orders:    ordersvc.NewStore(deps.Gateway, shared),
		Bills:     customersvc.NewBillStore(deps.Gateway, shared),
	}
	ws.OrderDraft = ordersvc.NewAggregator(ws.Orders, productCatalog{ws.Products})
	ws.SaleBill = customersvc.NewSaleBill(ws.Bills, productStock{ws.Products})
	return ws
}

// productCatalog resolves order lines against the fetched product list.
type productCatalog struct {
	products *productsvc.Store
}

func (c productCatalog) Lookup(id entity.ID) (ordermodels.ProductRef, bool) {
	p, ok := c.products.Find(id)
	if !ok {
		return ordermodels.ProductRef{}, false
	}
	return ordermodels.ProductRef{ID: p.ID, Name: p.Name, PurchasePrice: p.PurchasePrice}, true
}

// productStock resolves bill items, with retail price and stock, against the
// fetched product list.
type productStock struct {
	products *productsvc.Store
}

func (c productStock) Lookup(id entity.ID) (customermodels.BillProduct, bool) {
	p, ok := c.products.Find(id)
	if !ok {
		return customermodels.BillProduct{}, false
	}
	return customermodels.BillProduct{ID: p.ID, Name: p.Name, RetailPrice: p.RetailPrice, AmountInStock: p.AmountInStock}, true
}
