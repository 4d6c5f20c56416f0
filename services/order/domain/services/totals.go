// Package services holds the order money rules and the submit check.
//
// Amounts are exact decimals. A line total is unit price times quantity. The
// order total rounds every line up to the cent before summing, so it does not
// change when lines are reordered but does when identical lines are merged:
// two lines of 1.005 x 1 total 2.02, one line of 1.005 x 2 totals 2.01.
package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	"github.com/ghuser/backoffice/services/order/domain"
	"github.com/ghuser/backoffice/services/order/domain/models"
)

// UnitPrice converts the backend's float price to a decimal using its
// shortest representation, so 19.99 stays 19.99.
func UnitPrice(p models.ProductRef) decimal.Decimal {
	return decimal.NewFromFloat(p.PurchasePrice)
}

// LineTotal is the unrounded price of one line.
func LineTotal(it models.LineItem) decimal.Decimal {
	return UnitPrice(it.Product).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// RoundUpCents rounds d toward positive infinity at two decimal places.
func RoundUpCents(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Ceil().Shift(-2)
}

// OrderTotal sums the per-line totals, each rounded up to the cent.
func OrderTotal(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(RoundUpCents(LineTotal(it)))
	}
	return total
}

// ValidateOrder gates submission: a supplier and at least one line, every
// line with a product and a positive quantity.
func ValidateOrder(o models.Order) error {
	if err := pkgvalidator.Validate(&o); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidOrder, err)
	}
	return nil
}
