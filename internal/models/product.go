package models

import "time"

// Product represents a catalog item with its current stock level.
type Product struct {
	ID        int       `json:"_id"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p Product) Created() time.Time {
	return p.CreatedAt
}
