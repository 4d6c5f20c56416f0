package models

import (
	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/viewmodel"
)

// SupplierRef is the supplier a product can be ordered from.
type SupplierRef struct {
	ID        entity.ID `json:"id" validate:"required"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
}

// Product is a sellable article. Prices are the backend's decimal numbers;
// money arithmetic on them happens in the order domain.
type Product struct {
	ID            entity.ID     `json:"id,omitempty"`
	Name          string        `json:"name" validate:"required"`
	Description   string        `json:"description,omitempty"`
	Picture       string        `json:"picture,omitempty"`
	Category      string        `json:"category,omitempty"`
	Suppliers     []SupplierRef `json:"suppliers" validate:"required,min=1,dive"`
	PurchasePrice float64       `json:"purchasePrice" validate:"required,gt=0"`
	RetailPrice   float64       `json:"retailPrice,omitempty" validate:"gte=0"`
	UnitSize      string        `json:"unitSize" validate:"required"`
	AmountInStock int           `json:"amountInStock"`
	MinAmount     int           `json:"minAmount" validate:"gte=0"`
}

func (p Product) EntityID() entity.ID { return p.ID }

// StatusLowStock marks thumbnails of products below their reorder threshold.
const StatusLowStock = "low_stock"

// Thumbnail shows the name over the category.
func (p Product) Thumbnail() viewmodel.Thumbnail {
	t := viewmodel.Thumbnail{
		Kind:     viewmodel.KindProduct,
		ID:       p.ID,
		Title:    p.Name,
		Subtitle: p.Category,
		Picture:  p.Picture,
	}
	if p.BelowMinimum() {
		t.Status = StatusLowStock
	}
	return t
}

// BelowMinimum reports whether stock has dropped under the reorder threshold.
func (p Product) BelowMinimum() bool {
	return p.MinAmount > 0 && p.AmountInStock < p.MinAmount
}
