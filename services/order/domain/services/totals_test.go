package services

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/services/order/domain"
	"github.com/ghuser/backoffice/services/order/domain/models"
)

func line(price float64, qty int) models.LineItem {
	return models.LineItem{Product: models.ProductRef{ID: "1", PurchasePrice: price}, Quantity: qty}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name string
		item models.LineItem
		want string
	}{
		{"whole cents", line(19.99, 3), "59.97"},
		{"sub-cent price", line(1.005, 1), "1.005"},
		{"sub-cent doubled", line(1.005, 2), "2.01"},
		{"float-unfriendly", line(0.1, 3), "0.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.want)
			if got := LineTotal(tt.item); !got.Equal(want) {
				t.Errorf("LineTotal() = %s, want %s", got, want)
			}
		})
	}
}

func TestRoundUpCents(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1.005", "1.01"},
		{"1.001", "1.01"},
		{"1.00", "1.00"},
		{"59.97", "59.97"},
		{"0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundUpCents(decimal.RequireFromString(tt.in))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("RoundUpCents(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.LineItem
		want  string
	}{
		{"empty", nil, "0"},
		{"single line", []models.LineItem{line(19.99, 3)}, "59.97"},
		{"two identical lines", []models.LineItem{line(19.99, 3), line(19.99, 3)}, "119.94"},
		{"sub-cent split over two lines", []models.LineItem{line(1.005, 1), line(1.005, 1)}, "2.02"},
		{"sub-cent merged into one line", []models.LineItem{line(1.005, 2)}, "2.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderTotal(tt.items)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("OrderTotal() = %s, want %s", got, tt.want)
			}
			if got.StringFixed(2) != decimal.RequireFromString(tt.want).StringFixed(2) {
				t.Errorf("formatted total = %s", got.StringFixed(2))
			}
		})
	}
}

func TestOrderTotal_IgnoresLineOrder(t *testing.T) {
	items := []models.LineItem{line(1.005, 1), line(19.99, 3), line(0.333, 7), line(2.5, 2), line(1.005, 1)}
	want := OrderTotal(items)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.LineItem(nil), items...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := OrderTotal(shuffled); !got.Equal(want) {
			t.Fatalf("permutation %d: total %s, want %s", i, got, want)
		}
	}
}

func TestValidateOrder(t *testing.T) {
	supplier := &models.SupplierRef{ID: "2"}
	tests := []struct {
		name    string
		order   models.Order
		wantErr bool
	}{
		{"valid", models.Order{Supplier: supplier, Items: []models.LineItem{line(1, 1)}}, false},
		{"no supplier", models.Order{Items: []models.LineItem{line(1, 1)}}, true},
		{"no lines", models.Order{Supplier: supplier}, true},
		{"zero quantity", models.Order{Supplier: supplier, Items: []models.LineItem{line(1, 0)}}, true},
		{"line without product", models.Order{Supplier: supplier, Items: []models.LineItem{{Quantity: 1}}}, true},
		{"unknown status", models.Order{Supplier: supplier, Status: "OPEN", Items: []models.LineItem{line(1, 1)}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrder(tt.order)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOrder() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got %v", err)
			}
		})
	}
}
