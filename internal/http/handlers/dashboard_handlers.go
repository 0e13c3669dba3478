package handlers

import (
	"net/http"
)

// DashboardStatsHandler godoc
// @Summary Dashboard summary
// @Description Month-over-month changes, totals, six-month order chart, category shares, gender ratio and the latest transactions
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/stats [get]
func DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	s, err := statsAssembler.DashboardSummary(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not assemble dashboard stats")
		return
	}
	respond(w, r, http.StatusOK, envelope{"stats": s})
}

// DashboardPieHandler godoc
// @Summary Dashboard pie charts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PieChartsResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/pie [get]
func DashboardPieHandler(w http.ResponseWriter, r *http.Request) {
	charts, err := statsAssembler.PieCharts(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not assemble pie charts")
		return
	}
	respond(w, r, http.StatusOK, envelope{"charts": charts})
}

// DashboardBarHandler godoc
// @Summary Dashboard bar charts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BarChartsResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/bar [get]
func DashboardBarHandler(w http.ResponseWriter, r *http.Request) {
	charts, err := statsAssembler.BarCharts(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not assemble bar charts")
		return
	}
	respond(w, r, http.StatusOK, envelope{"charts": charts})
}

// DashboardLineHandler godoc
// @Summary Dashboard line charts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} LineChartsResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/line [get]
func DashboardLineHandler(w http.ResponseWriter, r *http.Request) {
	charts, err := statsAssembler.LineCharts(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not assemble line charts")
		return
	}
	respond(w, r, http.StatusOK, envelope{"charts": charts})
}
