package request

import "garagemate/internal/domain/entities"

type EmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (r EmployeeRequest) ToEntity() entities.Employee {
	return entities.Employee{Name: r.Name, Phone: r.Phone, Role: r.Role}
}

type SalaryRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	Date       string  `json:"date"`
}

func (r SalaryRequest) ToEntity() (entities.Salary, error) {
	date, err := resolveTimestamp(r.Date)
	if err != nil {
		return entities.Salary{}, err
	}
	return entities.Salary{
		EmployeeID: r.EmployeeID,
		BaseSalary: r.BaseSalary,
		Bonus:      r.Bonus,
		Date:       date,
	}, nil
}

type ExpenseRequest struct {
	Title  string  `json:"title" binding:"required"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

func (r ExpenseRequest) ToEntity() (entities.Expense, error) {
	date, err := resolveTimestamp(r.Date)
	if err != nil {
		return entities.Expense{}, err
	}
	return entities.Expense{Title: r.Title, Amount: r.Amount, Date: date}, nil
}

type WarrantyRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	VehicleID   string `json:"vehicle_id"`
	Description string `json:"description"`
	IssuedAt    string `json:"issued_at"`
	ValidUntil  string `json:"valid_until" binding:"required"`
}

func (r WarrantyRequest) ToEntity() (entities.Warranty, error) {
	issuedAt, err := resolveTimestamp(r.IssuedAt)
	if err != nil {
		return entities.Warranty{}, err
	}
	validUntil, err := resolveTimestamp(r.ValidUntil)
	if err != nil {
		return entities.Warranty{}, err
	}
	return entities.Warranty{
		CustomerID:  r.CustomerID,
		VehicleID:   r.VehicleID,
		Description: r.Description,
		IssuedAt:    issuedAt,
		ValidUntil:  validUntil,
	}, nil
}
