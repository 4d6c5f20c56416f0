package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/services/order/domain"
	"github.com/ghuser/backoffice/services/order/domain/models"
	domainsvc "github.com/ghuser/backoffice/services/order/domain/services"
)

// Phase is where the draft sits in its lifecycle.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseComposing
	PhaseSubmitted
	PhaseReceived
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseComposing:
		return "composing"
	case PhaseSubmitted:
		return "submitted"
	case PhaseReceived:
		return "received"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Phase) UnmarshalText(b []byte) error {
	for _, c := range []Phase{PhaseEmpty, PhaseComposing, PhaseSubmitted, PhaseReceived} {
		if c.String() == string(b) {
			*p = c
			return nil
		}
	}
	return fmt.Errorf("unknown order phase %q", b)
}

// Catalog resolves product references against the fetched product list.
type Catalog interface {
	Lookup(id entity.ID) (models.ProductRef, bool)
}

// Persister is the slice of the order entity store the aggregator drives.
type Persister interface {
	SetDraft(v models.Order)
	Create(ctx context.Context, opts ...entitystore.Option[models.Order]) entitystore.Result[models.Order]
	Edit(ctx context.Context, v models.Order, opts ...entitystore.Option[models.Order]) entitystore.Result[models.Order]
	FetchOne(ctx context.Context, id entity.ID, opts ...entitystore.Option[models.Order]) entitystore.Result[models.Order]
}

// Aggregator composes one order to a supplier and carries it through
// submission and receipt:
//
//	Empty -> Composing -> Submitted (PENDING) -> Received
//
// Persistence goes through the order store, so outcomes are classified and
// side effects run exactly as for any other store operation. The lock is not
// held across backend calls.
type Aggregator struct {
	store   Persister
	catalog Catalog

	mu    sync.Mutex
	phase Phase
	order models.Order
}

// NewAggregator returns an Empty aggregator.
func NewAggregator(store Persister, catalog Catalog) *Aggregator {
	return &Aggregator{store: store, catalog: catalog}
}

// Begin starts composing an order to supplier. While composing it replaces
// the supplier and keeps the lines. It reports false once submitted.
func (a *Aggregator) Begin(supplier models.SupplierRef) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseEmpty && a.phase != PhaseComposing {
		return false
	}
	a.order.Supplier = &supplier
	a.phase = PhaseComposing
	return true
}

// AddLine appends a line for productID when the product is known and
// quantity is positive. Repeated products become separate lines. Adding to
// an Empty aggregator starts composing.
func (a *Aggregator) AddLine(productID entity.ID, quantity int) bool {
	if quantity <= 0 || productID.IsZero() {
		return false
	}
	ref, ok := a.catalog.Lookup(productID)
	if !ok {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseEmpty && a.phase != PhaseComposing {
		return false
	}
	a.order.Items = append(a.order.Items, models.LineItem{Product: ref, Quantity: quantity})
	a.phase = PhaseComposing
	return true
}

// RemoveLine drops the line at index while composing.
func (a *Aggregator) RemoveLine(index int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseComposing || index < 0 || index >= len(a.order.Items) {
		return false
	}
	a.order.Items = slices.Delete(slices.Clone(a.order.Items), index, index+1)
	return true
}

// Reset discards the draft or the mirrored order.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	a.phase = PhaseEmpty
	a.order = models.Order{}
	a.mu.Unlock()
}

// Submit persists the composed order with status PENDING. An incomplete
// order is rejected by the store before anything is sent. On any failure the
// aggregator stays Composing with its lines intact.
func (a *Aggregator) Submit(ctx context.Context, opts ...entitystore.Option[models.Order]) entitystore.Result[models.Order] {
	a.mu.Lock()
	switch a.phase {
	case PhaseSubmitted, PhaseReceived:
		a.mu.Unlock()
		return entitystore.Result[models.Order]{
			Classification: errhttp.NotSent(errhttp.ValidationFailed, domain.ErrNotComposing.Error()),
		}
	}
	draft := a.order
	draft.ID = ""
	draft.Status = models.StatusPending
	draft.Items = slices.Clone(draft.Items)
	a.mu.Unlock()

	a.store.SetDraft(draft)
	res := a.store.Create(ctx, opts...)
	if !res.OK() {
		return res
	}

	persisted := draft
	persisted.ID = res.ID
	if !res.Data.ID.IsZero() {
		persisted = res.Data
	}
	if persisted.Status == "" {
		persisted.Status = models.StatusPending
	}

	a.mu.Lock()
	a.order = persisted
	a.phase = phaseFor(persisted.Status)
	a.mu.Unlock()
	return res
}

// MarkReceived marks a submitted PENDING order as RECEIVED. In any other
// state, or while the backend id of the order is unknown, it does nothing and
// reports false. When the backend rejects the edit the order stays PENDING.
func (a *Aggregator) MarkReceived(ctx context.Context) (entitystore.Result[models.Order], bool) {
	a.mu.Lock()
	if !a.receivable() {
		a.mu.Unlock()
		return entitystore.Result[models.Order]{}, false
	}
	received := a.order
	received.Items = slices.Clone(received.Items)
	received.Status = models.StatusReceived
	a.mu.Unlock()

	res := a.store.Edit(ctx, received)
	if res.OK() {
		a.mu.Lock()
		a.order = received
		a.phase = PhaseReceived
		a.mu.Unlock()
	}
	return res, true
}

// Load mirrors a persisted order so it can be received. The aggregator is
// left untouched when the fetch fails.
func (a *Aggregator) Load(ctx context.Context, id entity.ID) entitystore.Result[models.Order] {
	res := a.store.FetchOne(ctx, id, entitystore.WithSelect[models.Order]())
	if !res.OK() {
		return res
	}
	a.mu.Lock()
	a.order = res.Data
	a.phase = phaseFor(res.Data.Status)
	a.mu.Unlock()
	return res
}

// receivable reports whether the mirrored order can be marked received. A
// submitted order whose create reply carried no id has to be loaded first.
// Callers hold a.mu.
func (a *Aggregator) receivable() bool {
	return a.phase == PhaseSubmitted && a.order.Status == models.StatusPending && !a.order.ID.IsZero()
}

func phaseFor(s models.Status) Phase {
	if s == models.StatusReceived {
		return PhaseReceived
	}
	return PhaseSubmitted
}

// LineView is one rendered line. Total is not rounded.
type LineView struct {
	Index     int             `json:"index"`
	ProductID entity.ID       `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// View is the aggregator as the order form and preview render it.
type View struct {
	Phase      Phase               `json:"phase"`
	ID         entity.ID           `json:"id,omitempty"`
	Supplier   *models.SupplierRef `json:"supplier"`
	Status     models.Status       `json:"status,omitempty"`
	Lines      []LineView          `json:"lines"`
	Total      decimal.Decimal     `json:"total"`
	CanReceive bool                `json:"canReceive"`
	// NeedsLoad is set when the order was persisted but its id is unknown.
	NeedsLoad bool `json:"needsLoad"`
}

// Snapshot renders the current state. Total rounds each line up to the cent
// before summing.
func (a *Aggregator) Snapshot() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := View{
		Phase:      a.phase,
		ID:         a.order.ID,
		Status:     a.order.Status,
		Lines:      make([]LineView, 0, len(a.order.Items)),
		Total:      domainsvc.OrderTotal(a.order.Items),
		CanReceive: a.receivable(),
		NeedsLoad:  a.phase == PhaseSubmitted && a.order.ID.IsZero(),
	}
	if a.order.Supplier != nil {
		s := *a.order.Supplier
		v.Supplier = &s
	}
	for i, it := range a.order.Items {
		v.Lines = append(v.Lines, LineView{
			Index:     i,
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			UnitPrice: domainsvc.UnitPrice(it.Product),
			Quantity:  it.Quantity,
			Total:     domainsvc.LineTotal(it),
		})
	}
	return v
}
