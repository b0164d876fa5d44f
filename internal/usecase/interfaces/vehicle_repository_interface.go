package interfaces

import (
	"context"
	"garagemate/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// ServiceCount is never written through Update by callers; the loyalty
// counter changes only inside work order transactions (see
// IWorkOrderRepository).

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetByRegistrationNumber(ctx context.Context, regNo string) (entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) (bool, error)
}
