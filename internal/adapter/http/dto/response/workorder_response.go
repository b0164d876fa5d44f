package response

import (
	"time"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase"
)

type CustomerRef struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
	Name  string `json:"name,omitempty"`
}

type VehicleRef struct {
	ID                 string `json:"id"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"registration_number"`
	ServiceCount       int    `json:"service_count"`
	FreeServiceDue     bool   `json:"free_service_due"`
}

type WorkOrderResponse struct {
	ID             string                   `json:"id"`
	Serial         string                   `json:"serial"`
	CustomerID     string                   `json:"customer_id"`
	VehicleID      string                   `json:"vehicle_id,omitempty"`
	Customer       *CustomerRef             `json:"customer,omitempty"`
	Vehicle        *VehicleRef              `json:"vehicle,omitempty"`
	Services       []entities.ServiceLine   `json:"services"`
	Products       []entities.ProductLine   `json:"products"`
	ServiceCharges []entities.ServiceCharge `json:"service_charges"`
	Discount       entities.Discount        `json:"discount"`

	TotalServiceCharge float64 `json:"total_service_charge"`
	TotalProductCost   float64 `json:"total_product_cost"`
	TotalAmount        float64 `json:"total_amount"`

	Status  string                  `json:"status"`
	Payment entities.PaymentDetails `json:"payment_details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                 o.ID,
		Serial:             o.Serial,
		CustomerID:         o.CustomerID,
		VehicleID:          o.VehicleID,
		Services:           o.Services,
		Products:           o.Products,
		ServiceCharges:     o.ServiceCharges,
		Discount:           o.Discount,
		TotalServiceCharge: o.TotalServiceCharge,
		TotalProductCost:   o.TotalProductCost,
		TotalAmount:        o.TotalAmount,
		Status:             string(o.Status),
		Payment:            o.Payment,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// FromWorkOrderResult includes the resolved customer and vehicle references.
func FromWorkOrderResult(r usecase.WorkOrderResult) WorkOrderResponse {
	resp := FromWorkOrder(r.Order)
	if r.Customer.ID != "" {
		resp.Customer = &CustomerRef{ID: r.Customer.ID, Phone: r.Customer.Phone, Name: r.Customer.Name}
	}
	if r.Vehicle != nil {
		resp.Vehicle = &VehicleRef{
			ID:                 r.Vehicle.ID,
			Model:              r.Vehicle.Model,
			RegistrationNumber: r.Vehicle.RegistrationNumber,
			ServiceCount:       r.Vehicle.ServiceCount,
			FreeServiceDue:     r.Vehicle.FreeServiceDue(),
		}
	}
	return resp
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}
