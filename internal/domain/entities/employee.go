package entities

import "time"

// Employee is a shop employee.

type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Salary is a salary payout record for an employee. BaseSalary feeds the
// dashboard expense rollup; Date is the payout date used by time filters.

type Salary struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	BaseSalary float64   `json:"base_salary"`
	Bonus      float64   `json:"bonus,omitempty"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
