package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/entityhttp"
	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/customer/application/services"
)

// BillResponse reports whether a quantity step took effect, with the
// resulting bill.
type BillResponse struct {
	Accepted bool             `json:"accepted"`
	Bill     appsvcs.BillView `json:"bill"`
} // @name BillResponse

// Resolver finds the caller's sale bill.
type Resolver func(r *http.Request) (*appsvcs.SaleBill, error)

// SaleBillHandler serves the counter sale endpoints.
type SaleBillHandler struct {
	resolve Resolver
}

func NewSaleBillHandler(resolve Resolver) *SaleBillHandler {
	return &SaleBillHandler{resolve: resolve}
}

func (h *SaleBillHandler) bill(w http.ResponseWriter, r *http.Request) (*appsvcs.SaleBill, bool) {
	b, err := h.resolve(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return nil, false
	}
	return b, true
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (entity.ID, bool) {
	id, err := entity.ParseID(chi.URLParam(r, param))
	if err != nil {
		errhttp.WriteError(w, err)
		return "", false
	}
	return id, true
}

// Get returns the bill.
//
//	@Summary	Sale bill
//	@Tags		sales
//	@Produce	json
//	@Success	200	{object}	appsvcs.BillView
//	@Failure	401	{object}	entityhttp.ErrorResponse
//	@Router		/sale-bill [get]
func (h *SaleBillHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bill(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, b.Snapshot())
}

// Open lists saved bills that are not paid yet.
//
//	@Summary	Open bills
//	@Tags		sales
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	401	{object}	map[string]any
//	@Failure	502	{object}	map[string]any
//	@Router		/sale-bill/open [get]
func (h *SaleBillHandler) Open(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bill(w, r)
	if !ok {
		return
	}
	entityhttp.WriteResult(w, b.OpenBills(r.Context()))
}

// Increase adds one of a product, up to its stock.
//
//	@Summary	Add one to bill
//	@Tags		sales
//	@Produce	json
//	@Param		productId	path		string	true	"Product id"
//	@Success	200			{object}	BillResponse
//	@Router		/sale-bill/items/{productId}/increase [post]
func (h *SaleBillHandler) Increase(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bill(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "productId")
	if !ok {
		return
	}
	accepted := b.Increase(id)
	httpx.JSON(w, http.StatusOK, BillResponse{Accepted: accepted, Bill: b.Snapshot()})
}

// Decrease takes one of a product off the bill.
//
//	@Summary	Remove one from bill
//	@Tags		sales
//	@Produce	json
//	@Param		productId	path		string	true	"Product id"
//	@Success	200			{object}	BillResponse
//	@Router		/sale-bill/items/{productId}/decrease [post]
func (h *SaleBillHandler) Decrease(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bill(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "productId")
	if !ok {
		return
	}
	accepted := b.Decrease(id)
	httpx.JSON(w, http.StatusOK, BillResponse{Accepted: accepted, Bill: b.Snapshot()})
}

// Save parks the bill as OPEN.
//
//	@Summary	Save bill
//	@Tags		sales
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	422	{object}	map[string]any
//	@Failure	502	{object}	map[string]any
//	@Router		/sale-bill/save [post]
func (h *SaleBillHandler) Save(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bill(w, r)
	if !ok {
		return
	}
	entityhttp.WriteResult(w, b.Save(r.Context()))
}

// Cashout marks the bill PAID. A paid or empty bill answers 422.
//
//	@Summary	Cash out bill
//	@Tags		sales
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	401	{object}	map[string]any
//	@Failure	422	{object}	map[string]any
//	@Failure	502	{object}	map[string]any
//	@Router		/sale-bill/cashout [post]
func (h *SaleBillHandler) Cashout(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bill(w, r)
	if !ok {
		return
	}
	entityhttp.WriteResult(w, b.Cashout(r.Context()))
}

// Reset discards the bill.
//
//	@Summary	Reset bill
//	@Tags		sales
//	@Produce	json
//	@Success	200	{object}	appsvcs.BillView
//	@Router		/sale-bill/reset [post]
func (h *SaleBillHandler) Reset(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bill(w, r)
	if !ok {
		return
	}
	b.Reset()
	httpx.JSON(w, http.StatusOK, b.Snapshot())
}

// Load resumes a saved bill.
//
//	@Summary	Load bill
//	@Tags		sales
//	@Produce	json
//	@Param		id	path		string	true	"Bill id"
//	@Success	200	{object}	map[string]any
//	@Failure	502	{object}	map[string]any
//	@Router		/sale-bill/load/{id} [post]
func (h *SaleBillHandler) Load(w http.ResponseWriter, r *http.Request) {
	b, ok := h.bill(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entityhttp.WriteResult(w, b.Load(r.Context(), id))
}

// Routes mounts the handler under the current router.
func (h *SaleBillHandler) Routes(r chi.Router) {
	r.Get("/", h.Get)
	r.Get("/open", h.Open)
	r.Post("/items/{productId}/increase", h.Increase)
	r.Post("/items/{productId}/decrease", h.Decrease)
	r.Post("/save", h.Save)
	r.Post("/cashout", h.Cashout)
	r.Post("/reset", h.Reset)
	r.Post("/load/{id}", h.Load)
}
