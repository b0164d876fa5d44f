package entities

import "time"

// Service is a catalog service offered by the shop.
//
// Storage model (DynamoDB):
//   - PK: id
//
// IsOffer marks the service as loyalty-eligible: every such service on a
// newly created work order with a vehicle bumps that vehicle's ServiceCount.
// Count is an informational usage counter for offer services.

type Service struct {
	ID          string    `json:"id"`
	ServiceName string    `json:"service_name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	IsOffer     bool      `json:"is_offer"`
	Count       int       `json:"count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
