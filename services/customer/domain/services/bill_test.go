package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/services/customer/domain"
	"github.com/ghuser/backoffice/services/customer/domain/models"
)

func item(price float64, qty int) models.BillItem {
	return models.BillItem{Product: models.BillProduct{ID: "1", RetailPrice: price, AmountInStock: 10}, Quantity: qty}
}

func TestValidateBill(t *testing.T) {
	tests := []struct {
		name    string
		bill    models.Bill
		wantErr bool
	}{
		{"empty open bill", models.Bill{Status: models.BillOpen}, false},
		{"paid with items", models.Bill{Status: models.BillPaid, Items: []models.BillItem{item(2.5, 1)}}, false},
		{"no status", models.Bill{}, true},
		{"unknown status", models.Bill{Status: "REFUNDED"}, true},
		{"zero quantity", models.Bill{Status: models.BillOpen, Items: []models.BillItem{item(2.5, 0)}}, true},
		{"item without product", models.Bill{Status: models.BillOpen, Items: []models.BillItem{{Quantity: 1}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBill(tt.bill)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateBill() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidBill) {
				t.Errorf("expected ErrInvalidBill, got %v", err)
			}
		})
	}
}

func TestBillTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.BillItem
		want  string
	}{
		{"empty", nil, "0"},
		{"whole cents", []models.BillItem{item(4.99, 3)}, "14.97"},
		{"rounds each line up", []models.BillItem{item(1.005, 1), item(1.005, 1)}, "2.02"},
		{"one line rounds once", []models.BillItem{item(1.005, 2)}, "2.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BillTotal(tt.items); !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("BillTotal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBillQuantity(t *testing.T) {
	b := models.Bill{Items: []models.BillItem{item(1, 4)}}
	if got := b.Quantity("1"); got != 4 {
		t.Errorf("Quantity(1) = %d, want 4", got)
	}
	if got := b.Quantity("2"); got != 0 {
		t.Errorf("Quantity(2) = %d, want 0", got)
	}
}
