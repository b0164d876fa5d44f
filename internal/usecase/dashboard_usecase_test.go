package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"garagemate/internal/domain/entities"
	mock_interfaces "garagemate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	orders   *mock_interfaces.MockIWorkOrderRepository
	expenses *mock_interfaces.MockIExpenseRepository
	salaries *mock_interfaces.MockISalaryRepository
	products *mock_interfaces.MockIProductRepository
	reports  *mock_interfaces.MockIReportWriter
}

func newDashboardUseCase(ctrl *gomock.Controller) (*DashboardUseCase, dashboardMocks) {
	m := dashboardMocks{
		orders:   mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		expenses: mock_interfaces.NewMockIExpenseRepository(ctrl),
		salaries: mock_interfaces.NewMockISalaryRepository(ctrl),
		products: mock_interfaces.NewMockIProductRepository(ctrl),
		reports:  mock_interfaces.NewMockIReportWriter(ctrl),
	}
	uc := NewDashboardUseCase(m.orders, m.expenses, m.salaries, m.products, m.reports)
	return uc, m
}

func TestDashboardUseCase_Summarize(t *testing.T) {
	t.Run("full rollup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCase(ctrl)

		filter := entities.DateFilter{Month: 3, Year: 2025}

		orders := []entities.WorkOrder{
			{
				Status:      entities.WorkOrderStatusPaid,
				TotalAmount: 1000,
				Payment:     entities.PaymentDetails{Method: entities.PaymentMethodCash},
				Services:    []entities.ServiceLine{{Price: 600}, {Price: 200}},
				Products:    []entities.ProductLine{{Quantity: 2}},
			},
			{
				Status:      entities.WorkOrderStatusInProgress,
				TotalAmount: 500,
				Payment:     entities.PaymentDetails{Method: entities.PaymentMethodUPI},
			},
			{
				Status:      entities.WorkOrderStatusPending,
				TotalAmount: 900,
				Payment:     entities.PaymentDetails{Method: entities.PaymentMethodBoth, CashAmount: 300, UPIAmount: 600},
				Products:    []entities.ProductLine{{Quantity: 1}},
			},
			{
				// Cancelled orders contribute nothing.
				Status:      entities.WorkOrderStatusCancelled,
				TotalAmount: 9999,
				Payment:     entities.PaymentDetails{Method: entities.PaymentMethodCash},
				Products:    []entities.ProductLine{{Quantity: 50}},
			},
		}

		m.orders.EXPECT().List(gomock.Any(), filter).Return(orders, nil)
		m.expenses.EXPECT().List(gomock.Any(), filter).Return([]entities.Expense{{Amount: 300}, {Amount: 200}}, nil)
		m.salaries.EXPECT().List(gomock.Any(), filter).Return([]entities.Salary{{BaseSalary: 1500, Bonus: 100}}, nil)
		m.products.EXPECT().List(gomock.Any()).Return([]entities.Product{{Stock: 7}, {Stock: 3}}, nil)

		stats, err := uc.Summarize(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if stats.TotalIncome != 2400 {
			t.Fatalf("expected income 2400, got %v", stats.TotalIncome)
		}
		if stats.CashIncome != 1300 {
			t.Fatalf("expected cash 1300, got %v", stats.CashIncome)
		}
		if stats.UPIIncome != 1100 {
			t.Fatalf("expected upi 1100, got %v", stats.UPIIncome)
		}
		if stats.TotalExpenses != 2000 {
			t.Fatalf("expected expenses 2000, got %v", stats.TotalExpenses)
		}
		if stats.TotalProfit != 400 {
			t.Fatalf("expected profit 400, got %v", stats.TotalProfit)
		}
		if stats.OrderCount != 3 {
			t.Fatalf("expected 3 counted orders, got %d", stats.OrderCount)
		}
		if stats.TotalSold != 3 {
			t.Fatalf("expected 3 units sold, got %d", stats.TotalSold)
		}
		if stats.TotalServices != 2 {
			t.Fatalf("expected 2 services, got %d", stats.TotalServices)
		}
		if stats.ServicesIncome != 800 {
			t.Fatalf("expected services income 800, got %v", stats.ServicesIncome)
		}
		if stats.TotalStock != 10 {
			t.Fatalf("expected stock 10, got %d", stats.TotalStock)
		}
	})

	t.Run("order list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCase(ctrl)

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Summarize(context.Background(), entities.DateFilter{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDashboardUseCase_Export(t *testing.T) {
	t.Run("delegates to the report writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDashboardUseCase(ctrl)

		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.WorkOrder{{ID: "ord-1", Status: entities.WorkOrderStatusPaid, TotalAmount: 100, Payment: entities.PaymentDetails{Method: entities.PaymentMethodCash}}}, nil)
		m.expenses.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.salaries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.products.EXPECT().List(gomock.Any()).Return(nil, nil)

		want := []byte("xlsx-bytes")
		m.reports.EXPECT().DashboardWorkbook(gomock.Any(), gomock.Any()).DoAndReturn(
			func(stats entities.DashboardStats, orders []entities.WorkOrder) ([]byte, error) {
				if stats.TotalIncome != 100 || len(orders) != 1 {
					t.Fatalf("unexpected export input: %+v %d orders", stats, len(orders))
				}
				return want, nil
			},
		)

		got, err := uc.Export(context.Background(), entities.DateFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("unexpected workbook bytes: %q", got)
		}
	})

	t.Run("no report writer configured", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Export(context.Background(), entities.DateFilter{})
		if !errors.Is(err, ErrReportWriterNotConfigured) {
			t.Fatalf("expected ErrReportWriterNotConfigured, got %v", err)
		}
	})
}
