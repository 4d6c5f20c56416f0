package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	"github.com/ghuser/backoffice/services/customer/domain"
	"github.com/ghuser/backoffice/services/customer/domain/models"
	ordersvc "github.com/ghuser/backoffice/services/order/domain/services"
)

// ValidateBill gates saving a bill: a known status and positive quantities.
// An open bill may be empty.
func ValidateBill(b models.Bill) error {
	if err := pkgvalidator.Validate(&b); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBill, err)
	}
	return nil
}

// BillLineTotal is the unrounded retail price of one item.
func BillLineTotal(it models.BillItem) decimal.Decimal {
	return decimal.NewFromFloat(it.Product.RetailPrice).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// BillTotal rounds each item up to the cent before summing, the same rule as
// supplier orders.
func BillTotal(items []models.BillItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(ordersvc.RoundUpCents(BillLineTotal(it)))
	}
	return total
}
