package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase"
)

var (
	ErrInvalidDiscountField = errors.New("invalid discount field")
	ErrInvalidStatusField   = errors.New("invalid status field")
	ErrInvalidDateField     = errors.New("invalid date field")
)

type ServiceLineRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ProductLineRequest struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity"`
}

type ServiceChargeRequest struct {
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ForServiceID string  `json:"for_service_id"`
}

type PaymentDetailsRequest struct {
	Method     string  `json:"method" binding:"required"`
	CashAmount float64 `json:"cash_amount"`
	UPIAmount  float64 `json:"upi_amount"`
}

// WorkOrderRequest is the create payload. The discount field accepts either
// the structured form {"type":"flat|percent","value":n} or, for older
// clients, a bare JSON number/string treated as a flat amount. Free text that
// is not a number is rejected rather than silently ignored.
type WorkOrderRequest struct {
	CustomerID     string                 `json:"customer_id" binding:"required"`
	VehicleID      string                 `json:"vehicle_id"`
	Services       []ServiceLineRequest   `json:"services"`
	Products       []ProductLineRequest   `json:"products"`
	ServiceCharges []ServiceChargeRequest `json:"service_charges"`
	Discount       json.RawMessage        `json:"discount"`
	Payment        PaymentDetailsRequest  `json:"payment_details" binding:"required"`
	Status         string                 `json:"status"`
	CreatedAt      string                 `json:"created_at"`
}

func (r WorkOrderRequest) ToInput() (usecase.WorkOrderCreateInput, error) {
	discount, err := resolveDiscount(r.Discount)
	if err != nil {
		return usecase.WorkOrderCreateInput{}, err
	}
	createdAt, err := resolveTimestamp(r.CreatedAt)
	if err != nil {
		return usecase.WorkOrderCreateInput{}, err
	}

	return usecase.WorkOrderCreateInput{
		CustomerID:     r.CustomerID,
		VehicleID:      r.VehicleID,
		Services:       resolveServiceSelections(r.Services),
		Products:       resolveProductSelections(r.Products),
		ServiceCharges: resolveServiceCharges(r.ServiceCharges),
		Discount:       discount,
		Payment:        r.Payment.toEntity(),
		Status:         entities.WorkOrderStatus(strings.TrimSpace(r.Status)),
		CreatedAt:      createdAt,
	}, nil
}

// WorkOrderPatchRequest is the partial update payload. Absent fields leave
// the stored order untouched; pointer fields distinguish absent from empty.
type WorkOrderPatchRequest struct {
	Status         *string                 `json:"status"`
	Services       *[]ServiceLineRequest   `json:"services"`
	Products       *[]ProductLineRequest   `json:"products"`
	ServiceCharges *[]ServiceChargeRequest `json:"service_charges"`
	Discount       json.RawMessage         `json:"discount"`
	Payment        *PaymentDetailsRequest  `json:"payment_details"`
	CreatedAt      *string                 `json:"created_at"`
}

func (r WorkOrderPatchRequest) ToPatch() (usecase.WorkOrderPatch, error) {
	var patch usecase.WorkOrderPatch

	if r.Status != nil {
		s := entities.WorkOrderStatus(strings.TrimSpace(*r.Status))
		if !s.Valid() {
			return usecase.WorkOrderPatch{}, ErrInvalidStatusField
		}
		patch.Status = &s
	}
	if r.Services != nil {
		sel := resolveServiceSelections(*r.Services)
		patch.Services = &sel
	}
	if r.Products != nil {
		sel := resolveProductSelections(*r.Products)
		patch.Products = &sel
	}
	if r.ServiceCharges != nil {
		charges := resolveServiceCharges(*r.ServiceCharges)
		patch.ServiceCharges = &charges
	}
	if len(r.Discount) > 0 && string(r.Discount) != "null" {
		d, err := resolveDiscount(r.Discount)
		if err != nil {
			return usecase.WorkOrderPatch{}, err
		}
		patch.Discount = &d
	}
	if r.Payment != nil {
		p := r.Payment.toEntity()
		patch.Payment = &p
	}
	if r.CreatedAt != nil {
		t, err := resolveTimestamp(*r.CreatedAt)
		if err != nil {
			return usecase.WorkOrderPatch{}, err
		}
		patch.CreatedAt = &t
	}
	return patch, nil
}

func (p PaymentDetailsRequest) toEntity() entities.PaymentDetails {
	return entities.PaymentDetails{
		Method:     entities.PaymentMethod(strings.ToLower(strings.TrimSpace(p.Method))),
		CashAmount: p.CashAmount,
		UPIAmount:  p.UPIAmount,
	}
}

func resolveServiceSelections(reqs []ServiceLineRequest) []usecase.ServiceSelection {
	out := make([]usecase.ServiceSelection, 0, len(reqs))
	for _, s := range reqs {
		out = append(out, usecase.ServiceSelection{
			ServiceID:   s.ID,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
		})
	}
	return out
}

func resolveProductSelections(reqs []ProductLineRequest) []usecase.ProductSelection {
	out := make([]usecase.ProductSelection, 0, len(reqs))
	for _, p := range reqs {
		out = append(out, usecase.ProductSelection{ProductID: p.ID, Quantity: p.Quantity})
	}
	return out
}

func resolveServiceCharges(reqs []ServiceChargeRequest) []entities.ServiceCharge {
	out := make([]entities.ServiceCharge, 0, len(reqs))
	for _, c := range reqs {
		out = append(out, entities.ServiceCharge{
			Description:  c.Description,
			Price:        c.Price,
			ForServiceID: c.ForServiceID,
		})
	}
	return out
}

// resolveDiscount accepts the structured discount object, a bare number, or a
// quoted numeric string. Empty input is a zero discount.
func resolveDiscount(raw json.RawMessage) (entities.Discount, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return entities.Discount{}, nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var payload struct {
			Type  string  `json:"type"`
			Value float64 `json:"value"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return entities.Discount{}, ErrInvalidDiscountField
		}
		t := entities.DiscountType(strings.TrimSpace(payload.Type))
		switch t {
		case "", entities.DiscountTypeFlat:
			t = entities.DiscountTypeFlat
		case entities.DiscountTypePercent:
		default:
			return entities.Discount{}, ErrInvalidDiscountField
		}
		if payload.Value < 0 {
			return entities.Discount{}, ErrInvalidDiscountField
		}
		return entities.Discount{Type: t, Value: payload.Value}, nil
	}

	var legacy string
	if strings.HasPrefix(trimmed, `"`) {
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return entities.Discount{}, ErrInvalidDiscountField
		}
	} else {
		legacy = trimmed
	}
	d, ok := entities.ParseLegacyDiscount(legacy)
	if !ok || d.Value < 0 {
		return entities.Discount{}, ErrInvalidDiscountField
	}
	return d, nil
}

// resolveTimestamp accepts RFC3339 or a bare "2006-01-02" bill date.
func resolveTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDateField
}
