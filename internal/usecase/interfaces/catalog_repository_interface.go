package interfaces

import (
	"context"
	"garagemate/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for catalog services.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
	// IncrementUsage bumps the informational offer usage counter.
	IncrementUsage(ctx context.Context, id string, delta int) error
}

// IProductRepository abstracts DynamoDB persistence for catalog products.
//
// Stock is adjusted only through work order transactions; Update replaces
// catalog fields of an existing product.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
