package request

import "garagemate/internal/domain/entities"

type CustomerRequest struct {
	Phone string `json:"phone" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{Phone: r.Phone, Name: r.Name, Email: r.Email}
}

type VerifyPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type VehicleRequest struct {
	Model              string `json:"model"`
	RegistrationNumber string `json:"registration_number" binding:"required"`
	CustomerID         string `json:"customer_id"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		Model:              r.Model,
		RegistrationNumber: r.RegistrationNumber,
		CustomerID:         r.CustomerID,
	}
}
