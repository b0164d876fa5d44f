package entities

import "time"

// Product is a catalog product with quantity on hand.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Stock must never go negative. Work order creation decrements it with a
// conditional update inside a transaction, so two concurrent orders cannot
// both take the last unit.

type Product struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Brand       string    `json:"brand,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
