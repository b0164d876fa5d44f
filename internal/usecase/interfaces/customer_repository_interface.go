package interfaces

import (
	"context"
	"garagemate/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Lookups return a zero-ID entity (not an error) when nothing matches; the
// usecase layer maps that to its not-found sentinel.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByPhone(ctx context.Context, phone string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}
