package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/shop-backoffice/internal/http/handlers"
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

func TestDashboardEndpoints_RequireAdmin(t *testing.T) {
	for _, path := range []string{"stats", "pie", "bar", "line"} {
		t.Run(path, func(t *testing.T) {
			if w := do(http.MethodGet, "/api/v1/dashboard/"+path, nil, "", ""); w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 without token, got %d", w.Code)
			}
			if w := do(http.MethodGet, "/api/v1/dashboard/"+path, nil, customerToken, ""); w.Code != http.StatusForbidden {
				t.Errorf("expected 403 for customer, got %d", w.Code)
			}
			if w := do(http.MethodGet, "/api/v1/dashboard/"+path, nil, adminToken, ""); w.Code != http.StatusOK {
				t.Errorf("expected 200 for admin, got %d", w.Code)
			}
		})
	}
}

func TestDashboardStatsHandler(t *testing.T) {
	t.Cleanup(clearCatalog)
	laptop := seedProduct(t, "Laptop", "electronics", 100, 10)
	seedProduct(t, "Novel", "books", 10, 0)
	for i := 0; i < 2; i++ {
		if w := doJSON(http.MethodPost, "/api/v1/order/new", orderRequest(models.LineItem{ProductID: laptop.ID, Quantity: 1}), ""); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	}

	w := do(http.MethodGet, "/api/v1/dashboard/stats", nil, adminToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode[handler.StatsResponse](t, w)
	s := resp.Stats

	if !resp.Success {
		t.Error("expected success=true")
	}
	if s.Count.Order != 2 || s.Count.Product != 2 || s.Count.User != 2 {
		t.Errorf("unexpected counts %+v", s.Count)
	}
	if s.Count.Revenue != 452 {
		t.Errorf("expected revenue 452, got %v", s.Count.Revenue)
	}
	if len(s.Chart.Order) != 6 || s.Chart.Order[5] != 2 {
		t.Errorf("expected both orders in the current month bucket, got %v", s.Chart.Order)
	}
	if s.UserRatio.Male != 1 || s.UserRatio.Female != 1 {
		t.Errorf("unexpected user ratio %+v", s.UserRatio)
	}
	if len(s.LatestTransaction) != 2 || s.LatestTransaction[0].Quantity != 1 {
		t.Errorf("unexpected latest transactions %+v", s.LatestTransaction)
	}
}

func TestDashboardPieHandler_WireFormat(t *testing.T) {
	t.Cleanup(clearCatalog)
	seedProduct(t, "Laptop", "electronics", 100, 0)

	w := do(http.MethodGet, "/api/v1/dashboard/pie", nil, adminToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var raw struct {
		Success bool                       `json:"success"`
		Charts  map[string]json.RawMessage `json:"charts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	for _, key := range []string{"orderFullfillment", "productCategories", "stockAvailablity", "revenueDistribution", "usersAgeGroup", "adminCustomer"} {
		if _, ok := raw.Charts[key]; !ok {
			t.Errorf("expected key %q in pie charts", key)
		}
	}

	var stock struct {
		InStock    int `json:"inStock"`
		OutOfStock int `json:"outOfStock"`
	}
	_ = json.Unmarshal(raw.Charts["stockAvailablity"], &stock)
	if stock.InStock != 0 || stock.OutOfStock != 1 {
		t.Errorf("unexpected stock availability %+v", stock)
	}
}

func TestDashboardBarAndLineHandlers(t *testing.T) {
	bar := decode[handler.BarChartsResponse](t, do(http.MethodGet, "/api/v1/dashboard/bar", nil, adminToken, ""))
	if len(bar.Charts.Products) != 6 || len(bar.Charts.Users) != 6 || len(bar.Charts.Orders) != 12 {
		t.Errorf("unexpected bar chart lengths %+v", bar.Charts)
	}
	if bar.Charts.Users[5] != 2 {
		t.Errorf("expected both seeded users in the current month, got %v", bar.Charts.Users)
	}

	line := decode[handler.LineChartsResponse](t, do(http.MethodGet, "/api/v1/dashboard/line", nil, adminToken, ""))
	if len(line.Charts.Revenue) != 12 || len(line.Charts.Discount) != 12 {
		t.Errorf("unexpected line chart lengths %+v", line.Charts)
	}
}
