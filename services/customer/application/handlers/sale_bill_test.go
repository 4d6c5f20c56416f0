package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/gateway"
	appsvcs "github.com/ghuser/backoffice/services/customer/application/services"
	"github.com/ghuser/backoffice/services/customer/domain/models"
)

type oneProduct struct{}

func (oneProduct) Lookup(id entity.ID) (models.BillProduct, bool) {
	if id != "10" {
		return models.BillProduct{}, false
	}
	return models.BillProduct{ID: "10", Name: "Espresso beans", RetailPrice: 24.90, AmountInStock: 2}, true
}

// billBackend echoes bills posted or put to /orders_customers with id 9.
func billBackend(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/orders_customers" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var b map[string]any
		_ = json.Unmarshal(body, &b)
		b["id"] = 9
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(b)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRouter(t *testing.T) (*chi.Mux, *atomic.Int32) {
	t.Helper()
	calls := &atomic.Int32{}
	srv := billBackend(t, calls)
	client, err := gateway.NewWithHTTPClient(srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}
	bill := appsvcs.NewSaleBill(
		appsvcs.NewBillStore(client, entitystore.Deps{Tokens: auth.NewMemoryTokens("tok")}),
		oneProduct{},
	)

	r := chi.NewRouter()
	r.Route("/sale-bill", NewSaleBillHandler(func(*http.Request) (*appsvcs.SaleBill, error) {
		return bill, nil
	}).Routes)
	return r, calls
}

func post(r http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, http.NoBody))
	return rr
}

func decodeBill(t *testing.T, rr *httptest.ResponseRecorder) BillResponse {
	t.Helper()
	var resp BillResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestSaleBillFlow(t *testing.T) {
	r, calls := newRouter(t)

	post(r, "/sale-bill/items/10/increase")
	post(r, "/sale-bill/items/10/increase")
	resp := decodeBill(t, post(r, "/sale-bill/items/10/increase"))
	if resp.Accepted {
		t.Fatal("a third item exceeds the stock of two")
	}
	if got := resp.Bill.Total.StringFixed(2); got != "49.80" {
		t.Errorf("total: got %s", got)
	}

	resp = decodeBill(t, post(r, "/sale-bill/items/10/decrease"))
	if !resp.Accepted || resp.Bill.Lines[0].Quantity != 1 {
		t.Fatalf("decrease: %+v", resp)
	}
	if calls.Load() != 0 {
		t.Fatalf("backend called %d times before cashout", calls.Load())
	}

	if rr := post(r, "/sale-bill/cashout"); rr.Code != http.StatusOK {
		t.Fatalf("cashout: %d %s", rr.Code, rr.Body)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sale-bill", http.NoBody))
	var v appsvcs.BillView
	_ = json.NewDecoder(rr.Body).Decode(&v)
	if v.ID != "9" || v.Status != models.BillPaid || v.Phase != appsvcs.BillPaid {
		t.Fatalf("after cashout: %+v", v)
	}

	if rr := post(r, "/sale-bill/cashout"); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("second cashout: expected 422, got %d", rr.Code)
	}
	if calls.Load() != 1 {
		t.Errorf("backend calls: got %d, want 1", calls.Load())
	}
}

func TestCashout_EmptyBillIsRejectedLocally(t *testing.T) {
	r, calls := newRouter(t)

	if rr := post(r, "/sale-bill/cashout"); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls: got %d, want 0", calls.Load())
	}
}

func TestIncrease_UnknownProduct(t *testing.T) {
	r, _ := newRouter(t)
	if resp := decodeBill(t, post(r, "/sale-bill/items/99/increase")); resp.Accepted {
		t.Fatal("unknown product must not be accepted")
	}
}

func TestResetBill(t *testing.T) {
	r, _ := newRouter(t)
	post(r, "/sale-bill/items/10/increase")

	var v appsvcs.BillView
	_ = json.NewDecoder(post(r, "/sale-bill/reset").Body).Decode(&v)
	if v.Phase != appsvcs.BillEmpty || len(v.Lines) != 0 {
		t.Fatalf("after reset: %+v", v)
	}
}
