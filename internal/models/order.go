package models

import "time"

type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// Next returns the status an order moves to when it is processed.
// Delivered is terminal.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusProcessing:
		return StatusShipped
	default:
		return StatusDelivered
	}
}

type ShippingInfo struct {
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PinCode      string `json:"pinCode"`
	DeliveryMode string `json:"deliveryMode"`
}

// LineItem is one purchased product inside an order.
type LineItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID              int          `json:"_id"`
	ShippingInfo    ShippingInfo `json:"shippingInfo"`
	User            string       `json:"user"`
	Subtotal        float64      `json:"subtotal"`
	Tax             float64      `json:"tax"`
	ShippingCharges float64      `json:"shippingCharges"`
	Discount        float64      `json:"discount"`
	Total           float64      `json:"total"`
	Status          OrderStatus  `json:"status"`
	OrderItems      []LineItem   `json:"orderItems"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func (o Order) Created() time.Time {
	return o.CreatedAt
}
