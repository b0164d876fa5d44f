package entities

import "time"

// Customer is a shop customer persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (phone-index): phone
//
// Phone is the natural key used by the front desk; it is required and unique.
// Vehicles reference the customer by id, the customer record itself carries no
// vehicle list.

type Customer struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
