package handlers

import (
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/stats"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ValidationResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UserRequest struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Photo  string `json:"photo"`
	Gender string `json:"gender"`
	DOB    string `json:"dob"` // YYYY-MM-DD or RFC3339
}

type LoginRequest struct {
	ID string `json:"_id"`
}

type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type UserResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}

type UsersResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
}

type ProductRequest struct {
	Name     string
	Price    float64
	Stock    int
	Category string
}

type ProductResponse struct {
	Success bool           `json:"success"`
	Product models.Product `json:"product"`
}

type ProductsResponse struct {
	Success  bool             `json:"success"`
	Products []models.Product `json:"products"`
}

type ProductsSearchResult struct {
	Success   bool             `json:"success"`
	Products  []models.Product `json:"products"`
	TotalPage int              `json:"totalPage"`
}

type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type OrderRequest struct {
	ShippingInfo    models.ShippingInfo `json:"shippingInfo"`
	OrderItems      []models.LineItem   `json:"orderItems"`
	User            string              `json:"user"`
	Subtotal        float64             `json:"subtotal"`
	Tax             float64             `json:"tax"`
	ShippingCharges float64             `json:"shippingCharges"`
	Discount        float64             `json:"discount"`
	Total           float64             `json:"total"`
}

type OrderResponse struct {
	Success bool         `json:"success"`
	Order   models.Order `json:"order"`
}

type OrdersResponse struct {
	Success bool           `json:"success"`
	Orders  []models.Order `json:"orders"`
}

type StatsResponse struct {
	Success bool        `json:"success"`
	Stats   stats.Stats `json:"stats"`
}

type PieChartsResponse struct {
	Success bool            `json:"success"`
	Charts  stats.PieCharts `json:"charts"`
}

type BarChartsResponse struct {
	Success bool            `json:"success"`
	Charts  stats.BarCharts `json:"charts"`
}

type LineChartsResponse struct {
	Success bool             `json:"success"`
	Charts  stats.LineCharts `json:"charts"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MovementsSearchResult struct {
	Success bool              `json:"success"`
	Data    []models.Movement `json:"data"`
	Meta    Meta              `json:"meta"`
}

type ImportProductsResult struct {
	Success               bool              `json:"success"`
	ImportedProductsCount int               `json:"imported"`
	Errors                []ValidationError `json:"errors"`
}
