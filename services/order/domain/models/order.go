package models

import (
	"strings"

	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/viewmodel"
)

// Status is the backend lifecycle of a persisted order.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusReceived Status = "RECEIVED"
)

// SupplierRef names the supplier an order goes to.
type SupplierRef struct {
	ID        entity.ID `json:"id" validate:"required"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
}

// ProductRef is the ordered product with its unit price at the time the line
// was added.
type ProductRef struct {
	ID            entity.ID `json:"id" validate:"required"`
	Name          string    `json:"name,omitempty"`
	PurchasePrice float64   `json:"purchasePrice"`
}

// LineItem is one product and a strictly positive quantity.
type LineItem struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity" validate:"gt=0"`
}

// Order to a supplier. An order without ID is a draft.
type Order struct {
	ID       entity.ID    `json:"id,omitempty"`
	Supplier *SupplierRef `json:"supplier" validate:"required"`
	Status   Status       `json:"status,omitempty" validate:"omitempty,oneof=PENDING RECEIVED"`
	Items    []LineItem   `json:"orderItems" validate:"required,min=1,dive"`
}

func (o Order) EntityID() entity.ID { return o.ID }

// SupplierName is "first last" of the supplier, or empty without one.
func (o Order) SupplierName() string {
	if o.Supplier == nil {
		return ""
	}
	return strings.TrimSpace(o.Supplier.FirstName + " " + o.Supplier.LastName)
}

func (o Order) Thumbnail() viewmodel.Thumbnail {
	return viewmodel.Thumbnail{
		Kind:   viewmodel.KindOrder,
		ID:     o.ID,
		Title:  "order to " + o.SupplierName(),
		Status: string(o.Status),
	}
}
