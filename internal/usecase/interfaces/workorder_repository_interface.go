package interfaces

import (
	"context"
	"fmt"

	"garagemate/internal/domain/entities"
)

// InsufficientStockError reports the product whose stock would go negative.
// The repository raises it when a conditional stock decrement fails inside
// the order transaction; nothing is persisted in that case.

type InsufficientStockError struct {
	ProductID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// The *Atomic operations commit the order document and its stock/loyalty
// side effects as one transaction: either all writes land or none do.
//   - CreateAtomic puts a new order (id must not exist) plus fx.
//   - SaveAtomic replaces an existing order (id must exist) plus fx; used for
//     patches (empty fx) and for cancellation (reversed fx).
//   - DeleteAtomic removes the order plus fx; false when the id is unknown.

type IWorkOrderRepository interface {
	CreateAtomic(ctx context.Context, o entities.WorkOrder, fx entities.OrderSideEffects) (entities.WorkOrder, error)
	SaveAtomic(ctx context.Context, o entities.WorkOrder, fx entities.OrderSideEffects) (entities.WorkOrder, error)
	DeleteAtomic(ctx context.Context, id string, fx entities.OrderSideEffects) (bool, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context, filter entities.DateFilter) ([]entities.WorkOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.WorkOrder, error)
}
