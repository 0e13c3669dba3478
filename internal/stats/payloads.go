package stats

import "github.com/rogerio-castellano/shop-backoffice/internal/models"

// Stats is the dashboard summary payload.
type Stats struct {
	CategoryCount     []CategoryCount `json:"categoryCount"`
	ChangePercent     ChangePercent   `json:"changePercent"`
	Count             Count           `json:"count"`
	Chart             MonthlyChart    `json:"chart"`
	UserRatio         UserRatio       `json:"userRatio"`
	LatestTransaction []Transaction   `json:"latestTransaction"`
}

// ChangePercent compares this month with the previous calendar month.
type ChangePercent struct {
	Revenue float64 `json:"revenue"`
	Product float64 `json:"product"`
	User    float64 `json:"user"`
	Order   float64 `json:"order"`
}

// Count holds all-time totals.
type Count struct {
	Revenue float64 `json:"revenue"`
	Product int     `json:"product"`
	User    int     `json:"user"`
	Order   int     `json:"order"`
}

// MonthlyChart is the six-month order count and revenue series.
type MonthlyChart struct {
	Order   []int     `json:"order"`
	Revenue []float64 `json:"revenue"`
}

// UserRatio splits all users by gender.
type UserRatio struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// Transaction previews one order in the latest transactions list.
type Transaction struct {
	ID       int                `json:"_id"`
	Discount float64            `json:"discount"`
	Amount   float64            `json:"amount"`
	Quantity int                `json:"quantity"`
	Status   models.OrderStatus `json:"status"`
}

// The misspelled JSON keys are what dashboard clients read.
type PieCharts struct {
	OrderFulfillment    OrderFulfillment    `json:"orderFullfillment"`
	ProductCategories   []CategoryCount     `json:"productCategories"`
	StockAvailability   StockAvailability   `json:"stockAvailablity"`
	RevenueDistribution RevenueDistribution `json:"revenueDistribution"`
	UsersAgeGroup       AgeGroups           `json:"usersAgeGroup"`
	AdminCustomer       AdminCustomer       `json:"adminCustomer"`
}

type OrderFulfillment struct {
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
}

type StockAvailability struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

type AdminCustomer struct {
	Admin    int `json:"admin"`
	Customer int `json:"customer"`
}

// BarCharts holds six-month product/user counts and twelve-month order counts.
type BarCharts struct {
	Users    []int `json:"users"`
	Products []int `json:"products"`
	Orders   []int `json:"orders"`
}

// LineCharts holds twelve-month series over one shared window.
type LineCharts struct {
	Users    []int     `json:"users"`
	Products []int     `json:"products"`
	Discount []float64 `json:"discount"`
	Revenue  []float64 `json:"revenue"`
}
