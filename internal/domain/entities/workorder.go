package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WorkOrderStatus is the lifecycle state of a work order.
//
// pending -> in_progress -> paid is the happy path; cancelled may be entered
// from pending or in_progress. paid and cancelled are terminal.

type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "pending"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusPaid       WorkOrderStatus = "paid"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusPaid, WorkOrderStatusCancelled:
		return true
	}
	return false
}

func (s WorkOrderStatus) Terminal() bool {
	return s == WorkOrderStatusPaid || s == WorkOrderStatusCancelled
}

// PaymentMethod is how the customer settled the bill.

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodBoth PaymentMethod = "both"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodBoth:
		return true
	}
	return false
}

// PaymentDetails records how the total was settled. When Method is "both" the
// split amounts must sum to the order total.

type PaymentDetails struct {
	Method     PaymentMethod `json:"method"`
	CashAmount float64       `json:"cash_amount"`
	UPIAmount  float64       `json:"upi_amount"`
}

// SplitMatches reports whether a method=both split adds up to total. Amounts
// are currency values, so equality is checked to the cent.
func (p PaymentDetails) SplitMatches(total float64) bool {
	diff := p.CashAmount + p.UPIAmount - total
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.005
}

// ServiceLine is a catalog service snapshotted onto a work order at creation
// time. Later catalog edits never change a persisted order.

type ServiceLine struct {
	ServiceID   string  `json:"service_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	IsOffer     bool    `json:"is_offer"`
}

// ProductLine is a catalog product snapshotted onto a work order. Name and
// unit Price are copied from the catalog at creation time; Quantity is owned
// by the order.

type ProductLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (l ProductLine) Cost() float64 {
	return l.Price * float64(l.Quantity)
}

// ServiceCharge is an ad-hoc billed line that is not backed by the catalog.
// ForServiceID optionally attributes the charge to a service line on the same
// order; it never affects that service's price.

type ServiceCharge struct {
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ForServiceID string  `json:"for_service_id,omitempty"`
}

// DiscountType selects how Discount.Value is applied.

type DiscountType string

const (
	DiscountTypeFlat    DiscountType = "flat"
	DiscountTypePercent DiscountType = "percent"
)

// Discount is an explicit discount: a flat currency amount or a percentage of
// the pre-discount subtotal.

type Discount struct {
	Type  DiscountType `json:"type,omitempty"`
	Value float64      `json:"value,omitempty"`
}

func (d Discount) IsZero() bool {
	return d.Value == 0
}

// AmountOn resolves the discount into a currency amount for the given
// subtotal. Negative values never increase the bill.
func (d Discount) AmountOn(subtotal float64) float64 {
	if d.Value <= 0 {
		return 0
	}
	switch d.Type {
	case DiscountTypePercent:
		return subtotal * d.Value / 100
	default:
		return d.Value
	}
}

// ParseLegacyDiscount accepts the old free-text discount field: a bare number
// treated as a flat currency amount. Empty input is a zero discount. Anything
// else ("10%", prose) is rejected instead of silently becoming zero.
func ParseLegacyDiscount(s string) (Discount, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Discount{}, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Discount{}, false
	}
	return Discount{Type: DiscountTypeFlat, Value: v}, true
}

// StockAdjustment is a per-product stock delta applied with the order
// transaction.

type StockAdjustment struct {
	ProductID string
	Quantity  int
}

// OrderSideEffects are the writes applied atomically together with the order
// document: stock decrements for every product line and a loyalty increment
// on the vehicle. Compensation on cancel/delete applies the same deltas with
// the sign flipped.

type OrderSideEffects struct {
	Stock        []StockAdjustment
	VehicleID    string
	LoyaltyDelta int
}

func (fx OrderSideEffects) Empty() bool {
	return len(fx.Stock) == 0 && fx.LoyaltyDelta == 0
}

// WorkOrder is the central billing aggregate: one customer visit priced from
// snapshotted service/product lines plus ad-hoc charges.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//
// Totals are stored at write time, never recomputed on read, so historical
// bills stay stable when the catalog or the pricing logic changes.

type WorkOrder struct {
	ID             string          `json:"id"`
	Serial         string          `json:"serial"`
	CustomerID     string          `json:"customer_id"`
	VehicleID      string          `json:"vehicle_id,omitempty"`
	Services       []ServiceLine   `json:"services"`
	Products       []ProductLine   `json:"products"`
	ServiceCharges []ServiceCharge `json:"service_charges"`
	Discount       Discount        `json:"discount"`

	TotalServiceCharge float64 `json:"total_service_charge"`
	TotalProductCost   float64 `json:"total_product_cost"`
	TotalAmount        float64 `json:"total_amount"`

	Status  WorkOrderStatus `json:"status"`
	Payment PaymentDetails  `json:"payment_details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recalculate derives the stored totals from the line items:
//
//	totalServiceCharge = sum(service.price) + sum(charge.price)
//	totalProductCost   = sum(product.price * quantity)
//	totalAmount        = max(0, serviceCharge + productCost - discount)
func (o *WorkOrder) Recalculate() {
	serviceTotal := 0.0
	for _, s := range o.Services {
		serviceTotal += s.Price
	}
	for _, c := range o.ServiceCharges {
		serviceTotal += c.Price
	}

	productTotal := 0.0
	for _, p := range o.Products {
		productTotal += p.Cost()
	}

	o.TotalServiceCharge = serviceTotal
	o.TotalProductCost = productTotal

	subtotal := serviceTotal + productTotal
	total := subtotal - o.Discount.AmountOn(subtotal)
	if total < 0 {
		total = 0
	}
	o.TotalAmount = total
}

// OfferServiceCount counts loyalty-eligible service lines on the order.
func (o WorkOrder) OfferServiceCount() int {
	n := 0
	for _, s := range o.Services {
		if s.IsOffer {
			n++
		}
	}
	return n
}

// SideEffects builds the stock/loyalty deltas that must be committed in the
// same transaction as the order document.
func (o WorkOrder) SideEffects() OrderSideEffects {
	fx := OrderSideEffects{}
	for _, p := range o.Products {
		if p.Quantity > 0 {
			fx.Stock = append(fx.Stock, StockAdjustment{ProductID: p.ProductID, Quantity: p.Quantity})
		}
	}
	if o.VehicleID != "" {
		fx.VehicleID = o.VehicleID
		fx.LoyaltyDelta = o.OfferServiceCount()
	}
	return fx
}

// Reversed flips the side effect deltas for cancel/delete compensation.
func (fx OrderSideEffects) Reversed() OrderSideEffects {
	rev := OrderSideEffects{VehicleID: fx.VehicleID, LoyaltyDelta: -fx.LoyaltyDelta}
	for _, s := range fx.Stock {
		rev.Stock = append(rev.Stock, StockAdjustment{ProductID: s.ProductID, Quantity: -s.Quantity})
	}
	return rev
}

// WorkOrderCounter is the counter name used to mint work order serials.
const WorkOrderCounter = "work_order_sequence"

// FormatSerial renders a counter value as the human-readable order serial,
// zero-padded to three digits and simply widening beyond 999.
func FormatSerial(n int64) string {
	return fmt.Sprintf("INV-%03d", n)
}
