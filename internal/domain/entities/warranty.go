package entities

import "time"

// Warranty is a warranty issued for work done on a vehicle.

type Warranty struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	VehicleID   string    `json:"vehicle_id,omitempty"`
	Description string    `json:"description"`
	IssuedAt    time.Time `json:"issued_at"`
	ValidUntil  time.Time `json:"valid_until"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (w Warranty) Active(at time.Time) bool {
	return !at.Before(w.IssuedAt) && at.Before(w.ValidUntil)
}
