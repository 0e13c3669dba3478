package handlers_test

import (
	"context"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/shop-backoffice/internal/http/handlers"
)

func TestImportProductsHandler(t *testing.T) {
	t.Cleanup(clearCatalog)

	csvContent := "name,price,stock,category\n" +
		"Mouse,25,10,Peripherals\n" +
		"Laptop,900,4,electronics\n" +
		",10,1,misc\n" +
		"Keyboard,-3,1,peripherals\n"

	tests := []struct {
		name         string
		mode         string
		wantImported int
		wantErrors   int
		laptopStock  int
	}{
		{"skip existing", "", 1, 3, 1},
		{"update existing", "update", 2, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo.Clear()
			seedProduct(t, "Laptop", "electronics", 100, 1)

			body, ct := multipartCSV(csvContent, "products.csv")
			w := do(http.MethodPost, "/api/v1/product/import?mode="+tt.mode, body, adminToken, ct)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}

			resp := decode[handler.ImportProductsResult](t, w)
			if resp.ImportedProductsCount != tt.wantImported {
				t.Errorf("expected %d imported, got %d", tt.wantImported, resp.ImportedProductsCount)
			}
			if len(resp.Errors) != tt.wantErrors {
				t.Errorf("expected %d errors, got %+v", tt.wantErrors, resp.Errors)
			}

			laptop, err := productRepo.GetByName(context.Background(), "Laptop")
			if err != nil {
				t.Fatal(err)
			}
			if laptop.Stock != tt.laptopStock {
				t.Errorf("expected laptop stock %d, got %d", tt.laptopStock, laptop.Stock)
			}
		})
	}
}

func TestImportProductsHandler_BadInput(t *testing.T) {
	if w := do(http.MethodPost, "/api/v1/product/import", nil, adminToken, ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without file, got %d", w.Code)
	}

	body, ct := multipartCSV("name,price\nMouse,25\n", "products.csv")
	if w := do(http.MethodPost, "/api/v1/product/import", body, adminToken, ct); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing columns, got %d", w.Code)
	}
}
