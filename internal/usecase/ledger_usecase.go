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
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNameRequired = errors.New("employee name required")
	ErrSalaryNotFound       = errors.New("salary record not found")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrExpenseTitleRequired = errors.New("expense title required")
	ErrWarrantyNotFound     = errors.New("warranty not found")
	ErrInvalidAmount        = errors.New("amount must not be negative")
)

// ILedgerUseCase groups the bookkeeping CRUD: employees, salary payouts,
// expenses and warranties. Salaries and expenses feed the dashboard expense
// rollup.

type ILedgerUseCase interface {
	CreateEmployee(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (entities.Employee, error)
	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	UpdateEmployee(ctx context.Context, id string, e entities.Employee) (entities.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	CreateSalary(ctx context.Context, s entities.Salary) (entities.Salary, error)
	ListSalaries(ctx context.Context, filter entities.DateFilter) ([]entities.Salary, error)
	DeleteSalary(ctx context.Context, id string) error

	CreateExpense(ctx context.Context, e entities.Expense) (entities.Expense, error)
	ListExpenses(ctx context.Context, filter entities.DateFilter) ([]entities.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	CreateWarranty(ctx context.Context, w entities.Warranty) (entities.Warranty, error)
	ListWarranties(ctx context.Context, filter entities.DateFilter) ([]entities.Warranty, error)
	DeleteWarranty(ctx context.Context, id string) error
}

type LedgerUseCase struct {
	employees  interfaces.IEmployeeRepository
	salaries   interfaces.ISalaryRepository
	expenses   interfaces.IExpenseRepository
	warranties interfaces.IWarrantyRepository
	customers  interfaces.ICustomerRepository
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	employees interfaces.IEmployeeRepository,
	salaries interfaces.ISalaryRepository,
	expenses interfaces.IExpenseRepository,
	warranties interfaces.IWarrantyRepository,
	customers interfaces.ICustomerRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		employees:  employees,
		salaries:   salaries,
		expenses:   expenses,
		warranties: warranties,
		customers:  customers,
	}
}

func (u *LedgerUseCase) CreateEmployee(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return entities.Employee{}, ErrEmployeeNameRequired
	}
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.employees.Create(ctx, e)
}

func (u *LedgerUseCase) GetEmployeeByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	e, err := u.employees.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *LedgerUseCase) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	return u.employees.List(ctx)
}

func (u *LedgerUseCase) UpdateEmployee(ctx context.Context, id string, e entities.Employee) (entities.Employee, error) {
	existing, err := u.GetEmployeeByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return entities.Employee{}, ErrEmployeeNameRequired
	}
	existing.Name = name
	existing.Phone = e.Phone
	existing.Role = e.Role
	existing.UpdatedAt = time.Now().UTC()
	return u.employees.Update(ctx, existing)
}

func (u *LedgerUseCase) DeleteEmployee(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmployeeNotFound
	}
	ok, err := u.employees.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEmployeeNotFound
	}
	return nil
}

func (u *LedgerUseCase) CreateSalary(ctx context.Context, s entities.Salary) (entities.Salary, error) {
	if s.BaseSalary < 0 || s.Bonus < 0 {
		return entities.Salary{}, ErrInvalidAmount
	}
	if _, err := u.GetEmployeeByID(ctx, s.EmployeeID); err != nil {
		return entities.Salary{}, err
	}
	now := time.Now().UTC()
	s.ID = uuid.NewString()
	if s.Date.IsZero() {
		s.Date = now
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.salaries.Create(ctx, s)
}

func (u *LedgerUseCase) ListSalaries(ctx context.Context, filter entities.DateFilter) ([]entities.Salary, error) {
	return u.salaries.List(ctx, filter)
}

func (u *LedgerUseCase) DeleteSalary(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrSalaryNotFound
	}
	ok, err := u.salaries.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSalaryNotFound
	}
	return nil
}

func (u *LedgerUseCase) CreateExpense(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return entities.Expense{}, ErrExpenseTitleRequired
	}
	if e.Amount < 0 {
		return entities.Expense{}, ErrInvalidAmount
	}
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	if e.Date.IsZero() {
		e.Date = now
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.expenses.Create(ctx, e)
}

func (u *LedgerUseCase) ListExpenses(ctx context.Context, filter entities.DateFilter) ([]entities.Expense, error) {
	return u.expenses.List(ctx, filter)
}

func (u *LedgerUseCase) DeleteExpense(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrExpenseNotFound
	}
	ok, err := u.expenses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrExpenseNotFound
	}
	return nil
}

func (u *LedgerUseCase) CreateWarranty(ctx context.Context, w entities.Warranty) (entities.Warranty, error) {
	w.CustomerID = strings.TrimSpace(w.CustomerID)
	if w.CustomerID == "" {
		return entities.Warranty{}, ErrCustomerRequired
	}
	if c, err := u.customers.GetByID(ctx, w.CustomerID); err != nil {
		return entities.Warranty{}, err
	} else if c.ID == "" {
		return entities.Warranty{}, ErrCustomerNotFound
	}

	now := time.Now().UTC()
	w.ID = uuid.NewString()
	if w.IssuedAt.IsZero() {
		w.IssuedAt = now
	}
	w.CreatedAt = now
	w.UpdatedAt = now
	return u.warranties.Create(ctx, w)
}

func (u *LedgerUseCase) ListWarranties(ctx context.Context, filter entities.DateFilter) ([]entities.Warranty, error) {
	return u.warranties.List(ctx, filter)
}

func (u *LedgerUseCase) DeleteWarranty(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrWarrantyNotFound
	}
	ok, err := u.warranties.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWarrantyNotFound
	}
	return nil
}
