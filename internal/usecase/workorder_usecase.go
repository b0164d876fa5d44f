package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerRequired     = errors.New("customer required")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrInvalidServiceLine   = errors.New("service entry needs an id or a name")
	ErrServiceNotFound      = errors.New("service not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidDiscount      = errors.New("invalid discount")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentSplitMismatch = errors.New("cash and upi amounts must add up to the total")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrWorkOrderNotFound    = errors.New("work order not found")
	ErrInvalidStatus        = errors.New("invalid work order status")
	ErrOrderFinalized       = errors.New("work order already finalized")
)

// ServiceSelection is a service chosen for an order. Entries carrying a real
// catalog id are snapshotted from the catalog; entries created client-side
// before a catalog id exists keep their placeholder id until creation strips
// it and the client-supplied name/price become the snapshot.
type ServiceSelection struct {
	ServiceID   string
	Name        string
	Description string
	Price       float64
}

// ProductSelection is a product line request: catalog product plus quantity.
// Quantities at or below zero default to 1.
type ProductSelection struct {
	ProductID string
	Quantity  int
}

// WorkOrderCreateInput carries everything needed to price and persist a new
// order. CreatedAt is the bill date and may differ from the insert time.
type WorkOrderCreateInput struct {
	CustomerID     string
	VehicleID      string
	Services       []ServiceSelection
	Products       []ProductSelection
	ServiceCharges []entities.ServiceCharge
	Discount       entities.Discount
	Payment        entities.PaymentDetails
	Status         entities.WorkOrderStatus
	CreatedAt      time.Time
}

// WorkOrderPatch is a partial update. Nil fields are left untouched. Line or
// discount changes recompute the stored totals server-side; they do not
// re-apply stock or loyalty side effects. Setting status to cancelled applies
// stock/loyalty compensation atomically with the write.
type WorkOrderPatch struct {
	Status         *entities.WorkOrderStatus
	Services       *[]ServiceSelection
	Products       *[]ProductSelection
	ServiceCharges *[]entities.ServiceCharge
	Discount       *entities.Discount
	Payment        *entities.PaymentDetails
	CreatedAt      *time.Time
}

// WorkOrderResult is an order with its foreign keys resolved for display.
type WorkOrderResult struct {
	Order    entities.WorkOrder
	Customer entities.Customer
	Vehicle  *entities.Vehicle
}

// IWorkOrderUseCase is the work order engine: it validates and prices a
// prospective order, applies inventory/loyalty side effects atomically with
// creation, and manages status over the order's life.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, input WorkOrderCreateInput) (WorkOrderResult, error)
	Update(ctx context.Context, id string, patch WorkOrderPatch) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (WorkOrderResult, error)
	List(ctx context.Context, filter entities.DateFilter) ([]entities.WorkOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	orders    interfaces.IWorkOrderRepository
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
	services  interfaces.IServiceRepository
	products  interfaces.IProductRepository
	counter   interfaces.ICounterRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	orders interfaces.IWorkOrderRepository,
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	services interfaces.IServiceRepository,
	products interfaces.IProductRepository,
	counter interfaces.ICounterRepository,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		orders:    orders,
		customers: customers,
		vehicles:  vehicles,
		services:  services,
		products:  products,
		counter:   counter,
	}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, input WorkOrderCreateInput) (WorkOrderResult, error) {
	customerID := strings.TrimSpace(input.CustomerID)
	if customerID == "" {
		return WorkOrderResult{}, ErrCustomerRequired
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return WorkOrderResult{}, err
	}
	if customer.ID == "" {
		return WorkOrderResult{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}

	var vehicle *entities.Vehicle
	vehicleID := strings.TrimSpace(input.VehicleID)
	if vehicleID != "" {
		v, err := u.vehicles.GetByID(ctx, vehicleID)
		if err != nil {
			return WorkOrderResult{}, err
		}
		if v.ID == "" {
			return WorkOrderResult{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
		}
		vehicle = &v
	}

	serviceLines, err := u.resolveServiceLines(ctx, input.Services)
	if err != nil {
		return WorkOrderResult{}, err
	}
	productLines, err := u.resolveProductLines(ctx, input.Products)
	if err != nil {
		return WorkOrderResult{}, err
	}

	status := input.Status
	if status == "" {
		status = entities.WorkOrderStatusPending
	}
	if !status.Valid() {
		return WorkOrderResult{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if !input.Payment.Method.Valid() {
		return WorkOrderResult{}, ErrInvalidPaymentMethod
	}

	now := time.Now().UTC()
	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	order := entities.WorkOrder{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		Services:       serviceLines,
		Products:       productLines,
		ServiceCharges: input.ServiceCharges,
		Discount:       input.Discount,
		Status:         status,
		Payment:        input.Payment,
		CreatedAt:      createdAt.UTC(),
		UpdatedAt:      now,
	}
	order.Recalculate()

	if order.Payment.Method == entities.PaymentMethodBoth && !order.Payment.SplitMatches(order.TotalAmount) {
		return WorkOrderResult{}, ErrPaymentSplitMismatch
	}

	seq, err := u.counter.Next(ctx, entities.WorkOrderCounter)
	if err != nil {
		return WorkOrderResult{}, err
	}
	order.Serial = entities.FormatSerial(seq)

	created, err := u.orders.CreateAtomic(ctx, order, order.SideEffects())
	if err != nil {
		var stockErr *interfaces.InsufficientStockError
		if errors.As(err, &stockErr) {
			name := stockErr.ProductID
			for _, l := range productLines {
				if l.ProductID == stockErr.ProductID && l.Name != "" {
					name = l.Name
				}
			}
			return WorkOrderResult{}, fmt.Errorf("%w: %s", ErrInsufficientStock, name)
		}
		return WorkOrderResult{}, err
	}
	log.Printf("[workorder][usecase] created serial=%s customer_id=%s total=%.2f", created.Serial, created.CustomerID, created.TotalAmount)

	// Informational offer usage counters; failures must not fail the order.
	for _, l := range created.Services {
		if l.IsOffer && l.ServiceID != "" {
			if err := u.services.IncrementUsage(ctx, l.ServiceID, 1); err != nil {
				log.Printf("[workorder][usecase] offer usage bump failed service_id=%s err=%v", l.ServiceID, err)
			}
		}
	}

	if vehicle != nil && created.OfferServiceCount() > 0 {
		vehicle.ServiceCount += created.OfferServiceCount()
	}
	return WorkOrderResult{Order: created, Customer: customer, Vehicle: vehicle}, nil
}

func (u *WorkOrderUseCase) resolveServiceLines(ctx context.Context, selections []ServiceSelection) ([]entities.ServiceLine, error) {
	lines := make([]entities.ServiceLine, 0, len(selections))
	for _, sel := range selections {
		id := stripPlaceholderID(sel.ServiceID)
		name := strings.TrimSpace(sel.Name)
		if id == "" && name == "" {
			return nil, ErrInvalidServiceLine
		}
		if id == "" {
			// Ad-hoc entry created client-side; the client fields are the snapshot.
			lines = append(lines, entities.ServiceLine{
				Name:        name,
				Description: sel.Description,
				Price:       sel.Price,
			})
			continue
		}
		svc, err := u.services.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if svc.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		lines = append(lines, entities.ServiceLine{
			ServiceID:   svc.ID,
			Name:        svc.ServiceName,
			Description: svc.Description,
			Price:       svc.Price,
			IsOffer:     svc.IsOffer,
		})
	}
	return lines, nil
}

func (u *WorkOrderUseCase) resolveProductLines(ctx context.Context, selections []ProductSelection) ([]entities.ProductLine, error) {
	lines := make([]entities.ProductLine, 0, len(selections))
	for _, sel := range selections {
		id := strings.TrimSpace(sel.ProductID)
		if id == "" {
			return nil, fmt.Errorf("%w: missing product id", ErrProductNotFound)
		}
		qty := sel.Quantity
		if qty <= 0 {
			qty = 1
		}
		prod, err := u.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if prod.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		lines = append(lines, entities.ProductLine{
			ProductID: prod.ID,
			Name:      prod.ProductName,
			Price:     prod.Price,
			Quantity:  qty,
		})
	}
	return lines, nil
}

// stripPlaceholderID drops client-generated temporary identifiers. Real
// catalog ids are UUIDs; anything that does not parse as one is a client
// placeholder and must never be persisted.
func stripPlaceholderID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	return id
}

func (u *WorkOrderUseCase) Update(ctx context.Context, id string, patch WorkOrderPatch) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	existing, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if existing.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	if existing.Status.Terminal() {
		return entities.WorkOrder{}, fmt.Errorf("%w: %s", ErrOrderFinalized, existing.Status)
	}

	order := existing
	linesChanged := false

	if patch.Services != nil {
		lines, err := u.resolveServiceLines(ctx, *patch.Services)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		order.Services = lines
		linesChanged = true
	}
	if patch.Products != nil {
		lines, err := u.resolveProductLines(ctx, *patch.Products)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		order.Products = lines
		linesChanged = true
	}
	if patch.ServiceCharges != nil {
		order.ServiceCharges = *patch.ServiceCharges
		linesChanged = true
	}
	if patch.Discount != nil {
		order.Discount = *patch.Discount
		linesChanged = true
	}
	if patch.Payment != nil {
		if !patch.Payment.Method.Valid() {
			return entities.WorkOrder{}, ErrInvalidPaymentMethod
		}
		order.Payment = *patch.Payment
	}
	if patch.CreatedAt != nil {
		order.CreatedAt = patch.CreatedAt.UTC()
	}

	cancelling := false
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.WorkOrder{}, fmt.Errorf("%w: %s", ErrInvalidStatus, *patch.Status)
		}
		order.Status = *patch.Status
		cancelling = order.Status == entities.WorkOrderStatusCancelled
	}

	// Totals are recomputed here, not trusted from the client; status-only
	// patches leave the stored totals byte-identical.
	if linesChanged {
		order.Recalculate()
	}
	if order.Payment.Method == entities.PaymentMethodBoth && !order.Payment.SplitMatches(order.TotalAmount) {
		return entities.WorkOrder{}, ErrPaymentSplitMismatch
	}

	// Cancellation compensates the side effects that creation applied, based
	// on the lines as stored; plain edits never touch stock or loyalty.
	fx := entities.OrderSideEffects{}
	if cancelling {
		fx = existing.SideEffects().Reversed()
	}

	order.UpdatedAt = time.Now().UTC()
	updated, err := u.orders.SaveAtomic(ctx, order, fx)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	log.Printf("[workorder][usecase] updated serial=%s status=%s total=%.2f", updated.Serial, updated.Status, updated.TotalAmount)
	return updated, nil
}

func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrWorkOrderNotFound
	}

	existing, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrWorkOrderNotFound
	}

	// Cancelled orders were compensated when they were cancelled.
	fx := entities.OrderSideEffects{}
	if existing.Status != entities.WorkOrderStatusCancelled {
		fx = existing.SideEffects().Reversed()
	}

	ok, err := u.orders.DeleteAtomic(ctx, id, fx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkOrderNotFound
	}
	log.Printf("[workorder][usecase] deleted serial=%s", existing.Serial)
	return nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (WorkOrderResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return WorkOrderResult{}, ErrWorkOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return WorkOrderResult{}, err
	}
	if order.ID == "" {
		return WorkOrderResult{}, ErrWorkOrderNotFound
	}

	res := WorkOrderResult{Order: order}
	if c, err := u.customers.GetByID(ctx, order.CustomerID); err == nil {
		res.Customer = c
	}
	if order.VehicleID != "" {
		if v, err := u.vehicles.GetByID(ctx, order.VehicleID); err == nil && v.ID != "" {
			res.Vehicle = &v
		}
	}
	return res, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context, filter entities.DateFilter) ([]entities.WorkOrder, error) {
	return u.orders.List(ctx, filter)
}

func (u *WorkOrderUseCase) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.WorkOrder, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, ErrVehicleNotFound
	}
	return u.orders.ListByVehicleID(ctx, vehicleID)
}
