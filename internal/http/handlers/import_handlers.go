package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/shop-backoffice/internal/cache"
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

var csvColumns = []string{"name", "price", "stock", "category"}

type csvRow struct {
	Name     string
	Price    float64
	Stock    int
	Category string
}

func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", col)
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Name:     strings.TrimSpace(record[index["name"]]),
			Price:    parseFloat(record[index["price"]]),
			Stock:    parseInt(record[index["stock"]]),
			Category: strings.ToLower(strings.TrimSpace(record[index["category"]])),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if r.Name == "" {
		return errors.New("missing name")
	}
	if r.Price <= 0 {
		return errors.New("invalid price")
	}
	if r.Stock < 0 {
		return errors.New("invalid stock")
	}
	if r.Category == "" {
		return errors.New("missing category")
	}
	return nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns: name, price, stock, category. Existing names are skipped or updated.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} ErrorResponse
// @Router /product/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var imported int
	errorsList := []ValidationError{}
	touched := []int{}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1
		field := fmt.Sprintf("row %d", rowNum)

		if err := validateRow(rec); err != nil {
			errorsList = append(errorsList, ValidationError{Field: field, Description: err.Error()})
			continue
		}

		existing, err := productRepo.GetByName(r.Context(), rec.Name)
		if err == nil {
			if mode == "skip" {
				errorsList = append(errorsList, ValidationError{Field: field, Description: fmt.Sprintf("product '%s' already exists", rec.Name)})
				continue
			}
			existing.Price = rec.Price
			existing.Stock = rec.Stock
			existing.Category = rec.Category
			if _, err := productRepo.Update(r.Context(), existing); err != nil {
				errorsList = append(errorsList, ValidationError{Field: field, Description: fmt.Sprintf("failed to update '%s'", rec.Name)})
				continue
			}
			touched = append(touched, existing.ID)
			imported++
			continue
		}
		if !errors.Is(err, repo.ErrProductNotFound) {
			errorsList = append(errorsList, ValidationError{Field: field, Description: "could not look up product"})
			continue
		}

		if _, err := productRepo.Create(r.Context(), models.Product{
			Name:     rec.Name,
			Price:    rec.Price,
			Stock:    rec.Stock,
			Category: rec.Category,
		}); err != nil {
			errorsList = append(errorsList, ValidationError{Field: field, Description: err.Error()})
			continue
		}
		imported++
	}

	if imported > 0 {
		invalidate(r, cache.ProductKeys(touched...))
	}
	respond(w, r, http.StatusOK, envelope{
		"imported": imported,
		"errors":   errorsList,
	})
}
