package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/entityhttp"
	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/order/application/services"
	"github.com/ghuser/backoffice/services/order/domain/models"
)

// BeginRequest is the request body for POST /order-draft/begin.
type BeginRequest struct {
	Supplier models.SupplierRef `json:"supplier" validate:"required"`
} // @name BeginOrderRequest

// AddLineRequest is the request body for POST /order-draft/lines.
type AddLineRequest struct {
	ProductID entity.ID `json:"productId" example:"12"`
	Quantity  int       `json:"quantity" example:"3"`
} // @name AddLineRequest

// DraftResponse reports whether a draft operation took effect, with the
// resulting draft.
type DraftResponse struct {
	Accepted bool         `json:"accepted"`
	Draft    appsvcs.View `json:"draft"`
} // @name DraftResponse

// ReceiveResponse is returned by POST /order-draft/receive.
type ReceiveResponse struct {
	Applied bool         `json:"applied"`
	Result  any          `json:"result,omitempty"`
	Draft   appsvcs.View `json:"draft"`
} // @name ReceiveResponse

// Resolver finds the caller's aggregator.
type Resolver func(r *http.Request) (*appsvcs.Aggregator, error)

// OrderDraftHandler serves the order composition endpoints.
type OrderDraftHandler struct {
	resolve Resolver
}

// NewOrderDraftHandler returns an OrderDraftHandler backed by resolve.
func NewOrderDraftHandler(resolve Resolver) *OrderDraftHandler {
	return &OrderDraftHandler{resolve: resolve}
}

func (h *OrderDraftHandler) aggregator(w http.ResponseWriter, r *http.Request) (*appsvcs.Aggregator, bool) {
	a, err := h.resolve(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return nil, false
	}
	return a, true
}

// Get returns the draft.
//
//	@Summary	Order draft
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	appsvcs.View
//	@Failure	401	{object}	entityhttp.ErrorResponse
//	@Router		/order-draft [get]
func (h *OrderDraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.aggregator(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, a.Snapshot())
}

// Begin starts an order to a supplier.
//
//	@Summary	Begin order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		BeginRequest	true	"Supplier to order from"
//	@Success	200		{object}	DraftResponse
//	@Failure	422		{object}	entityhttp.ErrorResponse
//	@Router		/order-draft/begin [post]
func (h *OrderDraftHandler) Begin(w http.ResponseWriter, r *http.Request) {
	a, ok := h.aggregator(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[BeginRequest](w, r)
	if !ok {
		return
	}
	accepted := a.Begin(req.Supplier)
	httpx.JSON(w, http.StatusOK, DraftResponse{Accepted: accepted, Draft: a.Snapshot()})
}

// AddLine appends a product line. Unknown products and non-positive
// quantities are ignored and reported as not accepted.
//
//	@Summary	Add order line
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddLineRequest	true	"Product and quantity"
//	@Success	200		{object}	DraftResponse
//	@Router		/order-draft/lines [post]
func (h *OrderDraftHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	a, ok := h.aggregator(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.DecodeRequest[AddLineRequest](w, r)
	if !ok {
		return
	}
	accepted := a.AddLine(req.ProductID, req.Quantity)
	httpx.JSON(w, http.StatusOK, DraftResponse{Accepted: accepted, Draft: a.Snapshot()})
}

// RemoveLine drops a line by index.
//
//	@Summary	Remove order line
//	@Tags		orders
//	@Produce	json
//	@Param		index	path		int	true	"Line index"
//	@Success	200		{object}	DraftResponse
//	@Failure	400		{object}	entityhttp.ErrorResponse
//	@Router		/order-draft/lines/{index} [delete]
func (h *OrderDraftHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	a, ok := h.aggregator(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid line index")
		return
	}
	accepted := a.RemoveLine(index)
	httpx.JSON(w, http.StatusOK, DraftResponse{Accepted: accepted, Draft: a.Snapshot()})
}

// Submit persists the draft as a PENDING order.
//
//	@Summary	Submit order
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	401	{object}	map[string]any
//	@Failure	422	{object}	map[string]any
//	@Failure	502	{object}	map[string]any
//	@Router		/order-draft/submit [post]
func (h *OrderDraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	a, ok := h.aggregator(w, r)
	if !ok {
		return
	}
	entityhttp.WriteResult(w, a.Submit(r.Context()))
}

// Receive marks the submitted order as received. Outside the submitted
// PENDING state it answers 200 with applied=false.
//
//	@Summary	Receive order
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	ReceiveResponse
//	@Failure	502	{object}	ReceiveResponse
//	@Router		/order-draft/receive [post]
func (h *OrderDraftHandler) Receive(w http.ResponseWriter, r *http.Request) {
	a, ok := h.aggregator(w, r)
	if !ok {
		return
	}
	res, applied := a.MarkReceived(r.Context())
	if !applied {
		httpx.JSON(w, http.StatusOK, ReceiveResponse{Draft: a.Snapshot()})
		return
	}
	httpx.JSON(w, errhttp.StatusFor(res.Outcome), ReceiveResponse{Applied: true, Result: res, Draft: a.Snapshot()})
}

// Reset discards the draft.
//
//	@Summary	Reset order draft
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	appsvcs.View
//	@Router		/order-draft/reset [post]
func (h *OrderDraftHandler) Reset(w http.ResponseWriter, r *http.Request) {
	a, ok := h.aggregator(w, r)
	if !ok {
		return
	}
	a.Reset()
	httpx.JSON(w, http.StatusOK, a.Snapshot())
}

// Load mirrors a persisted order into the draft.
//
//	@Summary	Load order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	map[string]any
//	@Failure	400	{object}	entityhttp.ErrorResponse
//	@Router		/order-draft/load/{id} [post]
func (h *OrderDraftHandler) Load(w http.ResponseWriter, r *http.Request) {
	a, ok := h.aggregator(w, r)
	if !ok {
		return
	}
	id, err := entity.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	entityhttp.WriteResult(w, a.Load(r.Context(), id))
}

// Routes mounts the handler under the current router.
func (h *OrderDraftHandler) Routes(r chi.Router) {
	r.Get("/", h.Get)
	r.Post("/begin", h.Begin)
	r.Post("/lines", h.AddLine)
	r.Delete("/lines/{index}", h.RemoveLine)
	r.Post("/submit", h.Submit)
	r.Post("/receive", h.Receive)
	r.Post("/reset", h.Reset)
	r.Post("/load/{id}", h.Load)
}
