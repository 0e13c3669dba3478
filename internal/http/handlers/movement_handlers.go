package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

// parseTimestamp reads an RFC3339 query value. A "+" in the offset arrives
// as a space after query decoding and is restored first.
func parseTimestamp(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func movementFilter(r *http.Request) (repo.MovementFilter, error) {
	q := r.URL.Query()
	var (
		mf  repo.MovementFilter
		err error
	)
	if mf.Since, err = parseTimestamp(q.Get("since")); err != nil {
		return mf, fmt.Errorf("invalid since date format")
	}
	if mf.Until, err = parseTimestamp(q.Get("until")); err != nil {
		return mf, fmt.Errorf("invalid until date format")
	}
	if s := q.Get("limit"); s != "" {
		if mf.Limit = parseIntPtr(s); mf.Limit == nil || *mf.Limit <= 0 {
			return mf, fmt.Errorf("limit must be greater than zero")
		}
	}
	if s := q.Get("offset"); s != "" {
		if mf.Offset = parseIntPtr(s); mf.Offset == nil || *mf.Offset < 0 {
			return mf, fmt.Errorf("offset must be zero or positive")
		}
	}
	return mf, nil
}

// GetMovementsHandler godoc
// @Summary Get product stock movements
// @Tags movements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /product/{id}/movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}
	if _, err := productRepo.GetByID(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "could not fetch product")
		return
	}

	mf, err := movementFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	movements, total, err := movementRepo.GetByProductID(r.Context(), id, mf)
	if err != nil {
		writeStoreError(w, r, err, "could not retrieve movements")
		return
	}
	respond(w, r, http.StatusOK, envelope{
		"data": movements,
		"meta": Meta{TotalCount: total},
	})
}

// ExportMovementsHandler godoc
// @Summary Export product stock movements
// @Tags movements
// @Produce text/csv,application/json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /product/{id}/movements/export [get]
func ExportMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		writeError(w, http.StatusBadRequest, "format must be 'csv' or 'json'")
		return
	}

	mf, err := movementFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	mf.Offset, mf.Limit = nil, nil

	movements, _, err := movementRepo.GetByProductID(r.Context(), id, mf)
	if err != nil {
		writeStoreError(w, r, err, "could not retrieve movements")
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.json"`)
		_ = json.NewEncoder(w).Encode(movements)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "product_id", "delta", "reason", "created_at"})
		for _, m := range movements {
			_ = csvWriter.Write([]string{
				strconv.Itoa(m.ID),
				strconv.Itoa(m.ProductID),
				strconv.Itoa(m.Delta),
				m.Reason,
				m.CreatedAt.Format(time.RFC3339),
			})
		}
		csvWriter.Flush()
	}
}
