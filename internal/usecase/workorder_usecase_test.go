package usecase

import (
	"context"
	"errors"
	"testing"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase/interfaces"
	mock_interfaces "garagemate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workOrderMocks struct {
	orders    *mock_interfaces.MockIWorkOrderRepository
	customers *mock_interfaces.MockICustomerRepository
	vehicles  *mock_interfaces.MockIVehicleRepository
	services  *mock_interfaces.MockIServiceRepository
	products  *mock_interfaces.MockIProductRepository
	counter   *mock_interfaces.MockICounterRepository
}

func newWorkOrderUseCase(ctrl *gomock.Controller) (*WorkOrderUseCase, workOrderMocks) {
	m := workOrderMocks{
		orders:    mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		products:  mock_interfaces.NewMockIProductRepository(ctrl),
		counter:   mock_interfaces.NewMockICounterRepository(ctrl),
	}
	uc := NewWorkOrderUseCase(m.orders, m.customers, m.vehicles, m.services, m.products, m.counter)
	return uc, m
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("customer required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCase(ctrl)

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{CustomerID: "   "})
		if !errors.Is(err, ErrCustomerRequired) {
			t.Fatalf("expected ErrCustomerRequired, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID: "cust-1",
			Payment:    entities.PaymentDetails{Method: entities.PaymentMethodCash},
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID: "cust-1",
			VehicleID:  "veh-1",
			Payment:    entities.PaymentDetails{Method: entities.PaymentMethodCash},
		})
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("invalid payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID: "cust-1",
			Payment:    entities.PaymentDetails{Method: "cheque"},
		})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("service line without id or name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID: "cust-1",
			Services:   []ServiceSelection{{ServiceID: "  ", Name: "  "}},
			Payment:    entities.PaymentDetails{Method: entities.PaymentMethodCash},
		})
		if !errors.Is(err, ErrInvalidServiceLine) {
			t.Fatalf("expected ErrInvalidServiceLine, got %v", err)
		}
	})

	t.Run("split mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID:     "cust-1",
			ServiceCharges: []entities.ServiceCharge{{Description: "Labour", Price: 1000}},
			Payment:        entities.PaymentDetails{Method: entities.PaymentMethodBoth, CashAmount: 500, UPIAmount: 400},
		})
		if !errors.Is(err, ErrPaymentSplitMismatch) {
			t.Fatalf("expected ErrPaymentSplitMismatch, got %v", err)
		}
	})

	t.Run("insufficient stock names the product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", ProductName: "Engine Oil", Price: 450, Stock: 1}, nil)
		m.counter.EXPECT().Next(gomock.Any(), entities.WorkOrderCounter).Return(int64(7), nil)
		m.orders.EXPECT().CreateAtomic(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.WorkOrder{}, &interfaces.InsufficientStockError{ProductID: "prod-1"})

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID: "cust-1",
			Products:   []ProductSelection{{ProductID: "prod-1", Quantity: 3}},
			Payment:    entities.PaymentDetails{Method: entities.PaymentMethodCash},
		})
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if got := err.Error(); got != "insufficient stock: Engine Oil" {
			t.Fatalf("expected product name in error, got %q", got)
		}
	})

	t.Run("full create with catalog snapshots and side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", Phone: "9999"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", ServiceCount: 4}, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "8b7f4f7e-6d41-4a4a-9a9e-27d3f5f3a111").
			Return(entities.Service{ID: "8b7f4f7e-6d41-4a4a-9a9e-27d3f5f3a111", ServiceName: "Full wash", Price: 500, IsOffer: true}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").
			Return(entities.Product{ID: "prod-1", ProductName: "Wax", Price: 250, Stock: 10}, nil)
		m.counter.EXPECT().Next(gomock.Any(), entities.WorkOrderCounter).Return(int64(12), nil)

		m.orders.EXPECT().CreateAtomic(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder, fx entities.OrderSideEffects) (entities.WorkOrder, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Serial != "INV-012" {
					t.Fatalf("expected serial INV-012, got %s", o.Serial)
				}
				if len(o.Services) != 1 || o.Services[0].Name != "Full wash" || !o.Services[0].IsOffer {
					t.Fatalf("unexpected service snapshot: %+v", o.Services)
				}
				if len(o.Products) != 1 || o.Products[0].Quantity != 2 || o.Products[0].Price != 250 {
					t.Fatalf("unexpected product snapshot: %+v", o.Products)
				}
				// 500 + 100 charge + 2*250 product, minus 100 flat.
				if o.TotalAmount != 1000 {
					t.Fatalf("expected total 1000, got %v", o.TotalAmount)
				}
				if len(fx.Stock) != 1 || fx.Stock[0].Quantity != 2 {
					t.Fatalf("unexpected stock fx: %+v", fx.Stock)
				}
				if fx.VehicleID != "veh-1" || fx.LoyaltyDelta != 1 {
					t.Fatalf("unexpected loyalty fx: %+v", fx)
				}
				return o, nil
			},
		)
		m.services.EXPECT().IncrementUsage(gomock.Any(), "8b7f4f7e-6d41-4a4a-9a9e-27d3f5f3a111", 1).Return(nil)

		res, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID:     "cust-1",
			VehicleID:      "veh-1",
			Services:       []ServiceSelection{{ServiceID: "8b7f4f7e-6d41-4a4a-9a9e-27d3f5f3a111"}},
			Products:       []ProductSelection{{ProductID: "prod-1", Quantity: 2}},
			ServiceCharges: []entities.ServiceCharge{{Description: "Pickup", Price: 100}},
			Discount:       entities.Discount{Type: entities.DiscountTypeFlat, Value: 100},
			Payment:        entities.PaymentDetails{Method: entities.PaymentMethodBoth, CashAmount: 600, UPIAmount: 400},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.WorkOrderStatusPending {
			t.Fatalf("expected default pending status, got %s", res.Order.Status)
		}
		if res.Customer.ID != "cust-1" {
			t.Fatalf("expected resolved customer")
		}
		if res.Vehicle == nil || res.Vehicle.ServiceCount != 5 {
			t.Fatalf("expected vehicle loyalty reflected in result, got %+v", res.Vehicle)
		}
	})

	t.Run("placeholder service id becomes ad hoc line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.counter.EXPECT().Next(gomock.Any(), entities.WorkOrderCounter).Return(int64(3), nil)
		m.orders.EXPECT().CreateAtomic(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder, _ entities.OrderSideEffects) (entities.WorkOrder, error) {
				if len(o.Services) != 1 {
					t.Fatalf("expected one line, got %+v", o.Services)
				}
				if o.Services[0].ServiceID != "" {
					t.Fatalf("placeholder id must not be persisted: %+v", o.Services[0])
				}
				if o.Services[0].Name != "Headlight restore" || o.Services[0].Price != 350 {
					t.Fatalf("expected client fields as snapshot: %+v", o.Services[0])
				}
				return o, nil
			},
		)

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID: "cust-1",
			Services:   []ServiceSelection{{ServiceID: "temp-17", Name: "Headlight restore", Price: 350}},
			Payment:    entities.PaymentDetails{Method: entities.PaymentMethodCash},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("product quantity defaults to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", ProductName: "Wax", Price: 250}, nil)
		m.counter.EXPECT().Next(gomock.Any(), entities.WorkOrderCounter).Return(int64(4), nil)
		m.orders.EXPECT().CreateAtomic(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder, _ entities.OrderSideEffects) (entities.WorkOrder, error) {
				if o.Products[0].Quantity != 1 {
					t.Fatalf("expected quantity 1, got %d", o.Products[0].Quantity)
				}
				return o, nil
			},
		)

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID: "cust-1",
			Products:   []ProductSelection{{ProductID: "prod-1", Quantity: 0}},
			Payment:    entities.PaymentDetails{Method: entities.PaymentMethodCash},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("offer usage bump failure does not fail the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "8b7f4f7e-6d41-4a4a-9a9e-27d3f5f3a111").
			Return(entities.Service{ID: "8b7f4f7e-6d41-4a4a-9a9e-27d3f5f3a111", ServiceName: "Full wash", Price: 500, IsOffer: true}, nil)
		m.counter.EXPECT().Next(gomock.Any(), entities.WorkOrderCounter).Return(int64(5), nil)
		m.orders.EXPECT().CreateAtomic(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder, _ entities.OrderSideEffects) (entities.WorkOrder, error) {
				return o, nil
			},
		)
		m.services.EXPECT().IncrementUsage(gomock.Any(), "8b7f4f7e-6d41-4a4a-9a9e-27d3f5f3a111", 1).Return(errors.New("throttled"))

		_, err := uc.Create(context.Background(), WorkOrderCreateInput{
			CustomerID: "cust-1",
			Services:   []ServiceSelection{{ServiceID: "8b7f4f7e-6d41-4a4a-9a9e-27d3f5f3a111"}},
			Payment:    entities.PaymentDetails{Method: entities.PaymentMethodCash},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.WorkOrder{}, nil)

		_, err := uc.Update(context.Background(), "ord-1", WorkOrderPatch{})
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("finalized order rejects edits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.WorkOrder{ID: "ord-1", Status: entities.WorkOrderStatusPaid}, nil)

		status := entities.WorkOrderStatusCancelled
		_, err := uc.Update(context.Background(), "ord-1", WorkOrderPatch{Status: &status})
		if !errors.Is(err, ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.WorkOrder{ID: "ord-1", Status: entities.WorkOrderStatusPending}, nil)

		status := entities.WorkOrderStatus("done")
		_, err := uc.Update(context.Background(), "ord-1", WorkOrderPatch{Status: &status})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("status only patch keeps stored totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		existing := entities.WorkOrder{
			ID:     "ord-1",
			Status: entities.WorkOrderStatusPending,
			// Deliberately inconsistent with the lines: stored totals must win.
			Services:           []entities.ServiceLine{{Name: "Wash", Price: 500}},
			TotalServiceCharge: 499,
			TotalAmount:        499,
			Payment:            entities.PaymentDetails{Method: entities.PaymentMethodCash},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(existing, nil)
		m.orders.EXPECT().SaveAtomic(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder, fx entities.OrderSideEffects) (entities.WorkOrder, error) {
				if o.TotalAmount != 499 {
					t.Fatalf("status-only patch must not recompute totals, got %v", o.TotalAmount)
				}
				if !fx.Empty() {
					t.Fatalf("plain status move must not touch side effects: %+v", fx)
				}
				return o, nil
			},
		)

		status := entities.WorkOrderStatusInProgress
		updated, err := uc.Update(context.Background(), "ord-1", WorkOrderPatch{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.WorkOrderStatusInProgress {
			t.Fatalf("expected in_progress, got %s", updated.Status)
		}
	})

	t.Run("line patch recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		existing := entities.WorkOrder{
			ID:      "ord-1",
			Status:  entities.WorkOrderStatusPending,
			Payment: entities.PaymentDetails{Method: entities.PaymentMethodCash},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(existing, nil)
		m.orders.EXPECT().SaveAtomic(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder, fx entities.OrderSideEffects) (entities.WorkOrder, error) {
				if o.TotalServiceCharge != 750 || o.TotalAmount != 750 {
					t.Fatalf("expected recomputed totals, got %+v", o)
				}
				if !fx.Empty() {
					t.Fatalf("line edits must not touch stock or loyalty: %+v", fx)
				}
				return o, nil
			},
		)

		charges := []entities.ServiceCharge{{Description: "Labour", Price: 750}}
		_, err := uc.Update(context.Background(), "ord-1", WorkOrderPatch{ServiceCharges: &charges})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancel compensates creation side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		existing := entities.WorkOrder{
			ID:        "ord-1",
			Status:    entities.WorkOrderStatusInProgress,
			VehicleID: "veh-1",
			Services:  []entities.ServiceLine{{ServiceID: "svc-1", IsOffer: true}},
			Products:  []entities.ProductLine{{ProductID: "prod-1", Price: 250, Quantity: 2}},
			Payment:   entities.PaymentDetails{Method: entities.PaymentMethodCash},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(existing, nil)
		m.orders.EXPECT().SaveAtomic(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder, fx entities.OrderSideEffects) (entities.WorkOrder, error) {
				if o.Status != entities.WorkOrderStatusCancelled {
					t.Fatalf("expected cancelled, got %s", o.Status)
				}
				if len(fx.Stock) != 1 || fx.Stock[0].Quantity != -2 {
					t.Fatalf("expected stock restored, got %+v", fx.Stock)
				}
				if fx.VehicleID != "veh-1" || fx.LoyaltyDelta != -1 {
					t.Fatalf("expected loyalty rolled back, got %+v", fx)
				}
				return o, nil
			},
		)

		status := entities.WorkOrderStatusCancelled
		_, err := uc.Update(context.Background(), "ord-1", WorkOrderPatch{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("split mismatch after patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		existing := entities.WorkOrder{
			ID:                 "ord-1",
			Status:             entities.WorkOrderStatusPending,
			TotalAmount:        1000,
			TotalServiceCharge: 1000,
			Payment:            entities.PaymentDetails{Method: entities.PaymentMethodCash},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(existing, nil)

		payment := entities.PaymentDetails{Method: entities.PaymentMethodBoth, CashAmount: 100, UPIAmount: 100}
		_, err := uc.Update(context.Background(), "ord-1", WorkOrderPatch{Payment: &payment})
		if !errors.Is(err, ErrPaymentSplitMismatch) {
			t.Fatalf("expected ErrPaymentSplitMismatch, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.WorkOrder{}, nil)

		if err := uc.Delete(context.Background(), "ord-1"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("delete compensates side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		existing := entities.WorkOrder{
			ID:        "ord-1",
			Status:    entities.WorkOrderStatusPaid,
			VehicleID: "veh-1",
			Services:  []entities.ServiceLine{{ServiceID: "svc-1", IsOffer: true}},
			Products:  []entities.ProductLine{{ProductID: "prod-1", Quantity: 3}},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(existing, nil)
		m.orders.EXPECT().DeleteAtomic(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fx entities.OrderSideEffects) (bool, error) {
				if len(fx.Stock) != 1 || fx.Stock[0].Quantity != -3 || fx.LoyaltyDelta != -1 {
					t.Fatalf("expected reversed side effects, got %+v", fx)
				}
				return true, nil
			},
		)

		if err := uc.Delete(context.Background(), "ord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancelled order deletes without compensation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		existing := entities.WorkOrder{
			ID:       "ord-1",
			Status:   entities.WorkOrderStatusCancelled,
			Products: []entities.ProductLine{{ProductID: "prod-1", Quantity: 3}},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(existing, nil)
		m.orders.EXPECT().DeleteAtomic(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fx entities.OrderSideEffects) (bool, error) {
				if !fx.Empty() {
					t.Fatalf("cancelled order was already compensated: %+v", fx)
				}
				return true, nil
			},
		)

		if err := uc.Delete(context.Background(), "ord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Getters(t *testing.T) {
	t.Run("GetByID resolves references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		order := entities.WorkOrder{ID: "ord-1", CustomerID: "cust-1", VehicleID: "veh-1"}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(order, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", Name: "Asha"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", ServiceCount: 10}, nil)

		res, err := uc.GetByID(context.Background(), " ord-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Customer.Name != "Asha" {
			t.Fatalf("expected resolved customer, got %+v", res.Customer)
		}
		if res.Vehicle == nil || !res.Vehicle.FreeServiceDue() {
			t.Fatalf("expected vehicle with free service due, got %+v", res.Vehicle)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.WorkOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "ord-1")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("List passes the filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkOrderUseCase(ctrl)

		filter := entities.DateFilter{Month: 3, Year: 2025}
		m.orders.EXPECT().List(gomock.Any(), filter).Return([]entities.WorkOrder{{ID: "ord-1"}}, nil)

		orders, err := uc.List(context.Background(), filter)
		if err != nil || len(orders) != 1 {
			t.Fatalf("unexpected result: %v %v", orders, err)
		}
	})

	t.Run("ListByVehicleID requires an id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkOrderUseCase(ctrl)

		_, err := uc.ListByVehicleID(context.Background(), "  ")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}
