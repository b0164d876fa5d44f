package handlers

import (
	"errors"
	"log"
	"net/http"

	request "garagemate/internal/adapter/http/dto/request"
	response "garagemate/internal/adapter/http/dto/response"
	"garagemate/internal/usecase"
	"garagemate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLedgerPayload = pkg.NewDomainErrorSimple("INVALID_LEDGER_INPUT", "Invalid payload", http.StatusBadRequest)

// LedgerHandler handles the bookkeeping endpoints: employees, salaries,
// expenses and warranties.

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewLedgerHandler(uc usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

func (h *LedgerHandler) CreateEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLedgerPayload.HTTPStatus, errInvalidLedgerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateEmployee(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[ledger][handler] create employee failed err=%v", err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK("Employee created", created))
}

func (h *LedgerHandler) GetEmployee(c *gin.Context) {
	employee, err := h.usecase.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Employee found", employee))
}

func (h *LedgerHandler) ListEmployees(c *gin.Context) {
	employees, err := h.usecase.ListEmployees(c.Request.Context())
	if err != nil {
		log.Printf("[ledger][handler] list employees failed err=%v", err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Employees listed", employees))
}

func (h *LedgerHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")

	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLedgerPayload.HTTPStatus, errInvalidLedgerPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateEmployee(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		log.Printf("[ledger][handler] update employee failed employee_id=%s err=%v", id, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Employee updated", updated))
}

func (h *LedgerHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteEmployee(c.Request.Context(), id); err != nil {
		log.Printf("[ledger][handler] delete employee failed employee_id=%s err=%v", id, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Employee deleted", nil))
}

func (h *LedgerHandler) CreateSalary(c *gin.Context) {
	var payload request.SalaryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLedgerPayload.HTTPStatus, errInvalidLedgerPayload.ToHTTPError())
		return
	}

	salary, err := payload.ToEntity()
	if err == nil {
		salary, err = h.usecase.CreateSalary(c.Request.Context(), salary)
	}
	if err != nil {
		log.Printf("[ledger][handler] create salary failed employee_id=%s err=%v", payload.EmployeeID, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK("Salary recorded", salary))
}

func (h *LedgerHandler) ListSalaries(c *gin.Context) {
	filter, err := request.ParseDateFilter(c.Query("date"), c.Query("month"), c.Query("year"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	salaries, err := h.usecase.ListSalaries(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[ledger][handler] list salaries failed err=%v", err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Salaries listed", salaries))
}

func (h *LedgerHandler) DeleteSalary(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteSalary(c.Request.Context(), id); err != nil {
		log.Printf("[ledger][handler] delete salary failed salary_id=%s err=%v", id, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Salary deleted", nil))
}

func (h *LedgerHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLedgerPayload.HTTPStatus, errInvalidLedgerPayload.ToHTTPError())
		return
	}

	expense, err := payload.ToEntity()
	if err == nil {
		expense, err = h.usecase.CreateExpense(c.Request.Context(), expense)
	}
	if err != nil {
		log.Printf("[ledger][handler] create expense failed title=%s err=%v", payload.Title, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK("Expense recorded", expense))
}

func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	filter, err := request.ParseDateFilter(c.Query("date"), c.Query("month"), c.Query("year"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	expenses, err := h.usecase.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[ledger][handler] list expenses failed err=%v", err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Expenses listed", expenses))
}

func (h *LedgerHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteExpense(c.Request.Context(), id); err != nil {
		log.Printf("[ledger][handler] delete expense failed expense_id=%s err=%v", id, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Expense deleted", nil))
}

func (h *LedgerHandler) CreateWarranty(c *gin.Context) {
	var payload request.WarrantyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLedgerPayload.HTTPStatus, errInvalidLedgerPayload.ToHTTPError())
		return
	}

	warranty, err := payload.ToEntity()
	if err == nil {
		warranty, err = h.usecase.CreateWarranty(c.Request.Context(), warranty)
	}
	if err != nil {
		log.Printf("[ledger][handler] create warranty failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK("Warranty created", warranty))
}

func (h *LedgerHandler) ListWarranties(c *gin.Context) {
	filter, err := request.ParseDateFilter(c.Query("date"), c.Query("month"), c.Query("year"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	warranties, err := h.usecase.ListWarranties(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[ledger][handler] list warranties failed err=%v", err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Warranties listed", warranties))
}

func (h *LedgerHandler) DeleteWarranty(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteWarranty(c.Request.Context(), id); err != nil {
		log.Printf("[ledger][handler] delete warranty failed warranty_id=%s err=%v", id, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Warranty deleted", nil))
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDateField):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNameRequired), errors.Is(err, usecase.ErrExpenseTitleRequired),
		errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrCustomerRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSalaryNotFound):
		return pkg.NewDomainErrorSimple("SALARY_NOT_FOUND", "Salary record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWarrantyNotFound):
		return pkg.NewDomainErrorSimple("WARRANTY_NOT_FOUND", "Warranty not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
