package usecase

import (
	"context"
	"errors"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase/interfaces"
)

var ErrReportWriterNotConfigured = errors.New("report writer not configured")

// IDashboardUseCase aggregates filtered expenses, salaries and work orders
// (income) plus current product stock into summary statistics, and exports
// the same view as a spreadsheet.

type IDashboardUseCase interface {
	Summarize(ctx context.Context, filter entities.DateFilter) (entities.DashboardStats, error)
	Export(ctx context.Context, filter entities.DateFilter) ([]byte, error)
}

type DashboardUseCase struct {
	orders   interfaces.IWorkOrderRepository
	expenses interfaces.IExpenseRepository
	salaries interfaces.ISalaryRepository
	products interfaces.IProductRepository
	reports  interfaces.IReportWriter
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	orders interfaces.IWorkOrderRepository,
	expenses interfaces.IExpenseRepository,
	salaries interfaces.ISalaryRepository,
	products interfaces.IProductRepository,
	reports interfaces.IReportWriter,
) *DashboardUseCase {
	return &DashboardUseCase{
		orders:   orders,
		expenses: expenses,
		salaries: salaries,
		products: products,
		reports:  reports,
	}
}

func (u *DashboardUseCase) Summarize(ctx context.Context, filter entities.DateFilter) (entities.DashboardStats, error) {
	stats, _, err := u.summarize(ctx, filter)
	return stats, err
}

func (u *DashboardUseCase) Export(ctx context.Context, filter entities.DateFilter) ([]byte, error) {
	if u.reports == nil {
		return nil, ErrReportWriterNotConfigured
	}
	stats, orders, err := u.summarize(ctx, filter)
	if err != nil {
		return nil, err
	}
	return u.reports.DashboardWorkbook(stats, orders)
}

func (u *DashboardUseCase) summarize(ctx context.Context, filter entities.DateFilter) (entities.DashboardStats, []entities.WorkOrder, error) {
	var stats entities.DashboardStats

	orders, err := u.orders.List(ctx, filter)
	if err != nil {
		return stats, nil, err
	}
	expenses, err := u.expenses.List(ctx, filter)
	if err != nil {
		return stats, nil, err
	}
	salaries, err := u.salaries.List(ctx, filter)
	if err != nil {
		return stats, nil, err
	}
	// Stock is a point-in-time count; the date filter does not apply.
	products, err := u.products.List(ctx)
	if err != nil {
		return stats, nil, err
	}

	for _, o := range orders {
		if o.Status == entities.WorkOrderStatusCancelled {
			continue
		}
		stats.OrderCount++
		stats.TotalIncome += o.TotalAmount

		switch o.Payment.Method {
		case entities.PaymentMethodCash:
			stats.CashIncome += o.TotalAmount
		case entities.PaymentMethodUPI:
			stats.UPIIncome += o.TotalAmount
		case entities.PaymentMethodBoth:
			stats.CashIncome += o.Payment.CashAmount
			stats.UPIIncome += o.Payment.UPIAmount
		}

		for _, p := range o.Products {
			stats.TotalSold += p.Quantity
		}
		stats.TotalServices += len(o.Services)
		for _, s := range o.Services {
			stats.ServicesIncome += s.Price
		}
	}

	for _, e := range expenses {
		stats.TotalExpenses += e.Amount
	}
	for _, s := range salaries {
		stats.TotalExpenses += s.BaseSalary
	}
	stats.TotalProfit = stats.TotalIncome - stats.TotalExpenses

	for _, p := range products {
		stats.TotalStock += p.Stock
	}

	return stats, orders, nil
}
