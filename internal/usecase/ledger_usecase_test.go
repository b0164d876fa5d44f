package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"garagemate/internal/domain/entities"
	mock_interfaces "garagemate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type ledgerMocks struct {
	employees  *mock_interfaces.MockIEmployeeRepository
	salaries   *mock_interfaces.MockISalaryRepository
	expenses   *mock_interfaces.MockIExpenseRepository
	warranties *mock_interfaces.MockIWarrantyRepository
	customers  *mock_interfaces.MockICustomerRepository
}

func newLedgerUseCase(ctrl *gomock.Controller) (*LedgerUseCase, ledgerMocks) {
	m := ledgerMocks{
		employees:  mock_interfaces.NewMockIEmployeeRepository(ctrl),
		salaries:   mock_interfaces.NewMockISalaryRepository(ctrl),
		expenses:   mock_interfaces.NewMockIExpenseRepository(ctrl),
		warranties: mock_interfaces.NewMockIWarrantyRepository(ctrl),
		customers:  mock_interfaces.NewMockICustomerRepository(ctrl),
	}
	uc := NewLedgerUseCase(m.employees, m.salaries, m.expenses, m.warranties, m.customers)
	return uc, m
}

func TestLedgerUseCase_Employees(t *testing.T) {
	t.Run("create requires name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLedgerUseCase(ctrl)

		_, err := uc.CreateEmployee(context.Background(), entities.Employee{Name: "  "})
		if !errors.Is(err, ErrEmployeeNameRequired) {
			t.Fatalf("expected ErrEmployeeNameRequired, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.employees.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) {
				if e.ID == "" || e.Name != "Ravi" {
					t.Fatalf("unexpected employee: %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.CreateEmployee(context.Background(), entities.Employee{Name: " Ravi ", Role: "detailer"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.employees.EXPECT().Delete(gomock.Any(), "emp-1").Return(false, nil)

		if err := uc.DeleteEmployee(context.Background(), "emp-1"); !errors.Is(err, ErrEmployeeNotFound) {
			t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
		}
	})
}

func TestLedgerUseCase_Salaries(t *testing.T) {
	t.Run("negative amounts rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLedgerUseCase(ctrl)

		_, err := uc.CreateSalary(context.Background(), entities.Salary{EmployeeID: "emp-1", BaseSalary: -100})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("employee must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{}, nil)

		_, err := uc.CreateSalary(context.Background(), entities.Salary{EmployeeID: "emp-1", BaseSalary: 1500})
		if !errors.Is(err, ErrEmployeeNotFound) {
			t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
		}
	})

	t.Run("create defaults the payout date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{ID: "emp-1"}, nil)
		m.salaries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Salary) (entities.Salary, error) {
				if s.ID == "" || s.Date.IsZero() {
					t.Fatalf("expected id and date: %+v", s)
				}
				return s, nil
			},
		)

		_, err := uc.CreateSalary(context.Background(), entities.Salary{EmployeeID: "emp-1", BaseSalary: 1500, Bonus: 200})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit payout date kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		payday := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
		m.employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{ID: "emp-1"}, nil)
		m.salaries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Salary) (entities.Salary, error) {
				if !s.Date.Equal(payday) {
					t.Fatalf("expected payout date kept, got %v", s.Date)
				}
				return s, nil
			},
		)

		_, err := uc.CreateSalary(context.Background(), entities.Salary{EmployeeID: "emp-1", BaseSalary: 1500, Date: payday})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list passes filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		filter := entities.DateFilter{Month: 1, Year: 2025}
		m.salaries.EXPECT().List(gomock.Any(), filter).Return([]entities.Salary{{ID: "sal-1"}}, nil)

		res, err := uc.ListSalaries(context.Background(), filter)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}

func TestLedgerUseCase_Expenses(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLedgerUseCase(ctrl)

		_, err := uc.CreateExpense(context.Background(), entities.Expense{Title: " "})
		if !errors.Is(err, ErrExpenseTitleRequired) {
			t.Fatalf("expected ErrExpenseTitleRequired, got %v", err)
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLedgerUseCase(ctrl)

		_, err := uc.CreateExpense(context.Background(), entities.Expense{Title: "Rent", Amount: -1})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.expenses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.ID == "" || e.Date.IsZero() {
					t.Fatalf("expected id and defaulted date: %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.CreateExpense(context.Background(), entities.Expense{Title: "Rent", Amount: 5000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.expenses.EXPECT().Delete(gomock.Any(), "exp-1").Return(false, nil)

		if err := uc.DeleteExpense(context.Background(), "exp-1"); !errors.Is(err, ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}

func TestLedgerUseCase_Warranties(t *testing.T) {
	t.Run("customer required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLedgerUseCase(ctrl)

		_, err := uc.CreateWarranty(context.Background(), entities.Warranty{CustomerID: " "})
		if !errors.Is(err, ErrCustomerRequired) {
			t.Fatalf("expected ErrCustomerRequired, got %v", err)
		}
	})

	t.Run("customer must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.CreateWarranty(context.Background(), entities.Warranty{CustomerID: "cust-1"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("create defaults issued date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.warranties.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Warranty) (entities.Warranty, error) {
				if w.ID == "" || w.IssuedAt.IsZero() {
					t.Fatalf("expected id and issued date: %+v", w)
				}
				return w, nil
			},
		)

		_, err := uc.CreateWarranty(context.Background(), entities.Warranty{
			CustomerID:  "cust-1",
			Description: "Ceramic coating 2 years",
			ValidUntil:  time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLedgerUseCase(ctrl)

		m.warranties.EXPECT().Delete(gomock.Any(), "war-1").Return(false, nil)

		if err := uc.DeleteWarranty(context.Background(), "war-1"); !errors.Is(err, ErrWarrantyNotFound) {
			t.Fatalf("expected ErrWarrantyNotFound, got %v", err)
		}
	})
}
