package interfaces

import (
	"context"
	"garagemate/internal/domain/entities"
)

// IEmployeeRepository abstracts DynamoDB persistence for Employee.

type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ISalaryRepository abstracts DynamoDB persistence for Salary payouts.
// List narrows by the payout date.

type ISalaryRepository interface {
	Create(ctx context.Context, s entities.Salary) (entities.Salary, error)
	GetByID(ctx context.Context, id string) (entities.Salary, error)
	List(ctx context.Context, filter entities.DateFilter) ([]entities.Salary, error)
	Update(ctx context.Context, s entities.Salary) (entities.Salary, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IExpenseRepository abstracts DynamoDB persistence for Expense records.
// List narrows by the expense date.

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context, filter entities.DateFilter) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IWarrantyRepository abstracts DynamoDB persistence for Warranty records.
// List narrows by the issue date.

type IWarrantyRepository interface {
	Create(ctx context.Context, w entities.Warranty) (entities.Warranty, error)
	GetByID(ctx context.Context, id string) (entities.Warranty, error)
	List(ctx context.Context, filter entities.DateFilter) ([]entities.Warranty, error)
	Update(ctx context.Context, w entities.Warranty) (entities.Warranty, error)
	Delete(ctx context.Context, id string) (bool, error)
}
