package models

import "github.com/ghuser/backoffice/pkg/entity"

// BillStatus is the backend lifecycle of a sale to a walk-in customer.
type BillStatus string

const (
	BillOpen BillStatus = "OPEN"
	BillPaid BillStatus = "PAID"
)

// BillProduct is the sold product as the bill needs it: what it costs the
// customer and how many are left.
type BillProduct struct {
	ID            entity.ID `json:"id" validate:"required"`
	Name          string    `json:"name,omitempty"`
	RetailPrice   float64   `json:"retailPrice"`
	AmountInStock int       `json:"amountInStock"`
}

// BillItem is one product on the bill. A product appears at most once.
type BillItem struct {
	Product  BillProduct `json:"product"`
	Quantity int         `json:"quantity" validate:"gt=0"`
}

// Bill is an order to a customer. A bill without ID has not been saved yet.
type Bill struct {
	ID     entity.ID  `json:"id,omitempty"`
	Status BillStatus `json:"status" validate:"required,oneof=OPEN PAID"`
	Items  []BillItem `json:"orderItems" validate:"dive"`
}

func (b Bill) EntityID() entity.ID { return b.ID }

// Quantity returns how many of product id are on the bill.
func (b Bill) Quantity(id entity.ID) int {
	for _, it := range b.Items {
		if it.Product.ID == id {
			return it.Quantity
		}
	}
	return 0
}
