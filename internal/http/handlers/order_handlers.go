package handlers

import (
	"net/http"
	"strings"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

// NewOrderHandler godoc
// @Summary Place an order
// @Description Reserves stock for every line item, all or nothing, then stores the order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body OrderRequest true "Order to place"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationResponse
// @Failure 404 {object} ErrorResponse "Unknown product"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Router /order/new [post]
func NewOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateOrder(req); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	_, err := orderService.Place(r.Context(), models.Order{
		ShippingInfo:    req.ShippingInfo,
		User:            req.User,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		ShippingCharges: req.ShippingCharges,
		Discount:        req.Discount,
		Total:           req.Total,
		OrderItems:      req.OrderItems,
	})
	if err != nil {
		writeStoreError(w, r, err, "could not place order")
		return
	}
	respond(w, r, http.StatusCreated, envelope{"message": "Order Placed Successfully"})
}

// MyOrdersHandler godoc
// @Summary List a user's orders
// @Tags orders
// @Produce json
// @Param id query string true "User ID"
// @Success 200 {object} OrdersResponse
// @Failure 400 {object} ErrorResponse
// @Router /order/my [get]
func MyOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(r.URL.Query().Get("id"))
	if user == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	orders, err := orderService.Mine(r.Context(), user)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch orders")
		return
	}
	respond(w, r, http.StatusOK, envelope{"orders": orders})
}

// AllOrdersHandler godoc
// @Summary List every order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OrdersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /order/all [get]
func AllOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderService.All(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not fetch orders")
		return
	}
	respond(w, r, http.StatusOK, envelope{"orders": orders})
}

// GetOrderHandler godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /order/{id} [get]
func GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	order, err := orderService.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch order")
		return
	}
	respond(w, r, http.StatusOK, envelope{"order": order})
}

// ProcessOrderHandler godoc
// @Summary Advance an order's status
// @Description Processing becomes Shipped, Shipped becomes Delivered, Delivered stays Delivered
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /order/{id} [put]
func ProcessOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	if _, err := orderService.Process(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "could not process order")
		return
	}
	respond(w, r, http.StatusOK, envelope{"message": "Order Processed Successfully"})
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /order/{id} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	if err := orderService.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "could not delete order")
		return
	}
	respond(w, r, http.StatusOK, envelope{"message": "Order Deleted Successfully"})
}
