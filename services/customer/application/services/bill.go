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
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/services/customer/domain"
	"github.com/ghuser/backoffice/services/customer/domain/models"
	domainsvc "github.com/ghuser/backoffice/services/customer/domain/services"
)

const (
	BillDomain = "sales"
	BillRoute  = "orders_customers"
)

// BillStore is the entity store of customer bills.
type BillStore = entitystore.Store[models.Bill]

// NewBillStore wires a bill store onto the backend gateway.
func NewBillStore(c *gateway.Client, deps entitystore.Deps) *BillStore {
	return entitystore.New(entitystore.Config[models.Bill]{
		Domain:   BillDomain,
		Backend:  gateway.NewResource[models.Bill](c, BillRoute),
		Validate: domainsvc.ValidateBill,
		Deps:     deps,
	})
}

// BillPhase is where the sale sits in its lifecycle.
type BillPhase int

const (
	BillEmpty BillPhase = iota
	BillOpen
	BillPaid
)

func (p BillPhase) String() string {
	switch p {
	case BillEmpty:
		return "empty"
	case BillOpen:
		return "open"
	case BillPaid:
		return "paid"
	default:
		return fmt.Sprintf("bill_phase(%d)", int(p))
	}
}

func (p BillPhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *BillPhase) UnmarshalText(b []byte) error {
	for _, c := range []BillPhase{BillEmpty, BillOpen, BillPaid} {
		if c.String() == string(b) {
			*p = c
			return nil
		}
	}
	return fmt.Errorf("unknown bill phase %q", b)
}

// Stock resolves products with their retail price and the amount in stock.
type Stock interface {
	Lookup(id entity.ID) (models.BillProduct, bool)
}

// BillPersister is the slice of the bill store a SaleBill drives.
type BillPersister interface {
	SetDraft(v models.Bill)
	Create(ctx context.Context, opts ...entitystore.Option[models.Bill]) entitystore.Result[models.Bill]
	Edit(ctx context.Context, v models.Bill, opts ...entitystore.Option[models.Bill]) entitystore.Result[models.Bill]
	FetchOne(ctx context.Context, id entity.ID, opts ...entitystore.Option[models.Bill]) entitystore.Result[models.Bill]
	FetchAll(ctx context.Context) entitystore.Result[[]models.Bill]
}

// SaleBill rings up one sale at the counter:
//
//	Empty -> Open -> Paid
//
// Quantities step up and down one at a time and never exceed the stock seen
// in the product list. A paid bill is frozen. The lock is not held across
// backend calls.
type SaleBill struct {
	store BillPersister
	stock Stock

	mu    sync.Mutex
	phase BillPhase
	bill  models.Bill
}

// NewSaleBill returns an Empty bill.
func NewSaleBill(store BillPersister, stock Stock) *SaleBill {
	return &SaleBill{store: store, stock: stock}
}

// Increase adds one of productID. It reports false for unknown products, when
// the stock is exhausted or once the bill is paid.
func (s *SaleBill) Increase(productID entity.ID) bool {
	if productID.IsZero() {
		return false
	}
	p, ok := s.stock.Lookup(productID)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == BillPaid {
		return false
	}
	items := slices.Clone(s.bill.Items)
	i := slices.IndexFunc(items, func(it models.BillItem) bool { return it.Product.ID == productID })
	if i < 0 {
		items = append(items, models.BillItem{Product: p})
		i = len(items) - 1
	}
	if items[i].Quantity >= p.AmountInStock {
		return false
	}
	items[i].Product = p
	items[i].Quantity++
	s.bill.Items = items
	s.phase = BillOpen
	if s.bill.Status == "" {
		s.bill.Status = models.BillOpen
	}
	return true
}

// Decrease takes one of productID off the bill and drops the item at zero.
func (s *SaleBill) Decrease(productID entity.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != BillOpen {
		return false
	}
	i := slices.IndexFunc(s.bill.Items, func(it models.BillItem) bool { return it.Product.ID == productID })
	if i < 0 {
		return false
	}
	items := slices.Clone(s.bill.Items)
	items[i].Quantity--
	if items[i].Quantity == 0 {
		items = slices.Delete(items, i, i+1)
	}
	s.bill.Items = items
	return true
}

// Reset discards the bill.
func (s *SaleBill) Reset() {
	s.mu.Lock()
	s.phase = BillEmpty
	s.bill = models.Bill{}
	s.mu.Unlock()
}

// Save parks the bill on the backend as OPEN so it can be resumed later. A
// new bill is created, a saved one is edited.
func (s *SaleBill) Save(ctx context.Context) entitystore.Result[models.Bill] {
	s.mu.Lock()
	if s.phase == BillPaid {
		s.mu.Unlock()
		return notSent(domain.ErrBillPaid)
	}
	b := s.copyLocked()
	b.Status = models.BillOpen
	s.mu.Unlock()

	res := s.persist(ctx, b)
	if res.OK() {
		s.adopt(b, res, BillOpen)
	}
	return res
}

// Cashout persists the bill as PAID. A bill that is already paid or has no
// items is refused before anything is sent. On failure the bill stays open.
func (s *SaleBill) Cashout(ctx context.Context) entitystore.Result[models.Bill] {
	s.mu.Lock()
	switch {
	case s.phase == BillPaid:
		s.mu.Unlock()
		return notSent(domain.ErrBillPaid)
	case len(s.bill.Items) == 0:
		s.mu.Unlock()
		return notSent(domain.ErrEmptyBill)
	}
	b := s.copyLocked()
	b.Status = models.BillPaid
	s.mu.Unlock()

	res := s.persist(ctx, b)
	if res.OK() {
		s.adopt(b, res, BillPaid)
	}
	return res
}

// Load resumes a saved bill. The current bill is left untouched when the
// fetch fails.
func (s *SaleBill) Load(ctx context.Context, id entity.ID) entitystore.Result[models.Bill] {
	res := s.store.FetchOne(ctx, id, entitystore.WithSelect[models.Bill]())
	if !res.OK() {
		return res
	}
	s.mu.Lock()
	s.bill = res.Data
	s.phase = billPhaseFor(res.Data.Status)
	s.mu.Unlock()
	return res
}

// OpenBills lists the saved bills that have not been paid.
func (s *SaleBill) OpenBills(ctx context.Context) entitystore.Result[[]models.Bill] {
	res := s.store.FetchAll(ctx)
	if !res.OK() {
		return res
	}
	open := make([]models.Bill, 0, len(res.Data))
	for _, b := range res.Data {
		if b.Status == models.BillOpen {
			open = append(open, b)
		}
	}
	res.Data = open
	return res
}

func (s *SaleBill) persist(ctx context.Context, b models.Bill) entitystore.Result[models.Bill] {
	if b.ID.IsZero() {
		s.store.SetDraft(b)
		return s.store.Create(ctx)
	}
	return s.store.Edit(ctx, b)
}

// adopt mirrors a persisted bill. A reply without an id keeps the one sent.
func (s *SaleBill) adopt(sent models.Bill, res entitystore.Result[models.Bill], phase BillPhase) {
	persisted := sent
	if !res.Data.ID.IsZero() {
		persisted = res.Data
	} else if !res.ID.IsZero() {
		persisted.ID = res.ID
	}
	persisted.Status = sent.Status

	s.mu.Lock()
	s.bill = persisted
	s.phase = phase
	s.mu.Unlock()
}

// copyLocked returns the bill with its own item slice. Callers hold s.mu.
func (s *SaleBill) copyLocked() models.Bill {
	b := s.bill
	b.Items = slices.Clone(b.Items)
	return b
}

func notSent(err error) entitystore.Result[models.Bill] {
	return entitystore.Result[models.Bill]{
		Classification: errhttp.NotSent(errhttp.ValidationFailed, err.Error()),
	}
}

func billPhaseFor(s models.BillStatus) BillPhase {
	if s == models.BillPaid {
		return BillPaid
	}
	return BillOpen
}

// BillLineView is one rendered item. Total is not rounded.
type BillLineView struct {
	ProductID entity.ID       `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	InStock   int             `json:"inStock"`
	Total     decimal.Decimal `json:"total"`
}

// BillView is the bill as the sales pane and bill preview render it.
type BillView struct {
	Phase      BillPhase         `json:"phase"`
	ID         entity.ID         `json:"id,omitempty"`
	Status     models.BillStatus `json:"status,omitempty"`
	Lines      []BillLineView    `json:"lines"`
	Total      decimal.Decimal   `json:"total"`
	CanCashout bool              `json:"canCashout"`
}

// Snapshot renders the current bill. Total rounds each item up to the cent
// before summing.
func (s *SaleBill) Snapshot() BillView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := BillView{
		Phase:      s.phase,
		ID:         s.bill.ID,
		Status:     s.bill.Status,
		Lines:      make([]BillLineView, 0, len(s.bill.Items)),
		Total:      domainsvc.BillTotal(s.bill.Items),
		CanCashout: s.phase == BillOpen && len(s.bill.Items) > 0,
	}
	for _, it := range s.bill.Items {
		v.Lines = append(v.Lines, BillLineView{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			UnitPrice: decimal.NewFromFloat(it.Product.RetailPrice),
			Quantity:  it.Quantity,
			InStock:   it.Product.AmountInStock,
			Total:     domainsvc.BillLineTotal(it),
		})
	}
	return v
}
