package usecase

import (
	"context"
	"errors"
	"testing"

	"garagemate/internal/domain/entities"
	mock_interfaces "garagemate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_Services(t *testing.T) {
	t.Run("create requires name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateService(context.Background(), entities.Service{ServiceName: "  "})
		if !errors.Is(err, ErrServiceNameRequired) {
			t.Fatalf("expected ErrServiceNameRequired, got %v", err)
		}
	})

	t.Run("create rejects negative price", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateService(context.Background(), entities.Service{ServiceName: "Wash", Price: -1})
		if !errors.Is(err, ErrNegativePrice) {
			t.Fatalf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("create resets usage counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(services, nil)

		services.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.Count != 0 {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		_, err := uc.CreateService(context.Background(), entities.Service{ServiceName: " Full wash ", Price: 500, IsOffer: true, Count: 12})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update keeps usage counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(services, nil)

		services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", ServiceName: "Wash", Count: 8}, nil)
		services.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Count != 8 {
					t.Fatalf("usage counter must survive edits, got %d", s.Count)
				}
				if s.Price != 600 {
					t.Fatalf("expected price update, got %v", s.Price)
				}
				return s, nil
			},
		)

		_, err := uc.UpdateService(context.Background(), "svc-1", entities.Service{ServiceName: "Wash", Price: 600})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(services, nil)

		services.EXPECT().Delete(gomock.Any(), "svc-1").Return(false, nil)

		if err := uc.DeleteService(context.Background(), "svc-1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_Products(t *testing.T) {
	t.Run("create requires name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{ProductName: ""})
		if !errors.Is(err, ErrProductNameRequired) {
			t.Fatalf("expected ErrProductNameRequired, got %v", err)
		}
	})

	t.Run("create rejects negative stock", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{ProductName: "Wax", Stock: -1})
		if !errors.Is(err, ErrNegativeStock) {
			t.Fatalf("expected ErrNegativeStock, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(nil, products)

		products.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.CreateProduct(context.Background(), entities.Product{ProductName: " Wax ", Price: 250, Stock: 10, Brand: "3M"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProductName != "Wax" {
			t.Fatalf("expected trimmed name, got %q", res.ProductName)
		}
	})

	t.Run("update replaces stock level", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", ProductName: "Wax", Stock: 3}, nil)
		products.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.Stock != 20 {
					t.Fatalf("expected restocked level, got %d", p.Stock)
				}
				return p, nil
			},
		)

		_, err := uc.UpdateProduct(context.Background(), "prod-1", entities.Product{ProductName: "Wax", Stock: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		_, err := uc.GetProductByID(context.Background(), "prod-1")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
