package entities

import "time"

// FreeServiceThreshold is the loyalty count at which a vehicle qualifies for a
// free offer-eligible service. The stored counter is not capped; display
// capping is a presentation concern.
const FreeServiceThreshold = 10

// Vehicle is a customer vehicle persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// ServiceCount counts completed offer-eligible services across all work
// orders for this vehicle. It is incremented atomically inside the work order
// creation transaction and decremented on cancel/delete compensation.

type Vehicle struct {
	ID                 string    `json:"id"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registration_number"`
	CustomerID         string    `json:"customer_id"`
	ServiceCount       int       `json:"service_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (v Vehicle) FreeServiceDue() bool {
	return v.ServiceCount >= FreeServiceThreshold
}
