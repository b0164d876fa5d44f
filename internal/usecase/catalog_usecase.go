package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNameRequired = errors.New("service name required")
	ErrProductNameRequired = errors.New("product name required")
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrNegativeStock       = errors.New("stock must not be negative")
)

// ICatalogUseCase maintains the service and product catalogs. Edits here
// never change persisted work orders: order lines are snapshots.

type ICatalogUseCase interface {
	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	GetServiceByID(ctx context.Context, id string) (entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	UpdateService(ctx context.Context, id string, s entities.Service) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	GetProductByID(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, id string, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	services interfaces.IServiceRepository
	products interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository, products interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services, products: products}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ServiceName = strings.TrimSpace(s.ServiceName)
	if s.ServiceName == "" {
		return entities.Service{}, ErrServiceNameRequired
	}
	if s.Price < 0 {
		return entities.Service{}, ErrNegativePrice
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.Count = 0
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.services.Create(ctx, s)
}

func (u *CatalogUseCase) GetServiceByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.services.List(ctx)
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, s entities.Service) (entities.Service, error) {
	existing, err := u.GetServiceByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}

	name := strings.TrimSpace(s.ServiceName)
	if name == "" {
		return entities.Service{}, ErrServiceNameRequired
	}
	if s.Price < 0 {
		return entities.Service{}, ErrNegativePrice
	}

	existing.ServiceName = name
	existing.Description = s.Description
	existing.Price = s.Price
	existing.IsOffer = s.IsOffer
	existing.UpdatedAt = time.Now().UTC()
	return u.services.Update(ctx, existing)
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrServiceNotFound
	}
	ok, err := u.services.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrServiceNotFound
	}
	return nil
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ProductName = strings.TrimSpace(p.ProductName)
	if p.ProductName == "" {
		return entities.Product{}, ErrProductNameRequired
	}
	if p.Price < 0 {
		return entities.Product{}, ErrNegativePrice
	}
	if p.Stock < 0 {
		return entities.Product{}, ErrNegativeStock
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.products.Create(ctx, p)
}

func (u *CatalogUseCase) GetProductByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrProductNotFound
	}
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.products.List(ctx)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id string, p entities.Product) (entities.Product, error) {
	existing, err := u.GetProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	name := strings.TrimSpace(p.ProductName)
	if name == "" {
		return entities.Product{}, ErrProductNameRequired
	}
	if p.Price < 0 {
		return entities.Product{}, ErrNegativePrice
	}
	if p.Stock < 0 {
		return entities.Product{}, ErrNegativeStock
	}

	existing.ProductName = name
	existing.Description = p.Description
	existing.Price = p.Price
	existing.Stock = p.Stock
	existing.Brand = p.Brand
	existing.UpdatedAt = time.Now().UTC()
	return u.products.Update(ctx, existing)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrProductNotFound
	}
	ok, err := u.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}
